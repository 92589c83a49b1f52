package memory

import (
	"context"
	"testing"
	"time"

	"cafemap/internal/domain/entity"
	domainerrors "cafemap/internal/domain/errors"
	"cafemap/internal/domain/repository"
	"cafemap/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	store *Store
	clock time.Time
	user  *entity.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{clock: baseTime}
	f.store = New(WithClock(func() time.Time { return f.clock }))
	f.user = &entity.User{Email: "alice@example.com", Name: "alice"}
	require.NoError(t, f.store.UpsertUser(context.Background(), f.user))

	return f
}

func (f *fixture) cafe(t *testing.T, name, lat, lng string) *entity.Cafe {
	t.Helper()

	c := &entity.Cafe{
		Name:      name,
		Latitude:  decimal.RequireFromString(lat),
		Longitude: decimal.RequireFromString(lng),
	}
	require.NoError(t, f.store.UpsertCafe(context.Background(), c))

	return c
}

func (f *fixture) report(t *testing.T, cafeID uuid.UUID, seats entity.SeatStatus) *entity.Report {
	t.Helper()

	r := &entity.Report{
		CafeID:     cafeID,
		UserID:     f.user.ID,
		SeatStatus: seats,
		Quietness:  entity.QuietnessQuiet,
		Wifi:       entity.WifiFast,
	}
	require.NoError(t, f.store.CreateReport(context.Background(), r))

	return r
}

func TestStore_FindCafesInBounds(t *testing.T) {
	f := newFixture(t)
	inside := f.cafe(t, "inside", "35.68", "139.76")
	edge := f.cafe(t, "edge", "35.67", "139.75")
	f.cafe(t, "outside", "35.70", "139.76")

	bounds := entity.Bounds{
		NorthEast: entity.Coordinate{Lat: 35.69, Lng: 139.77},
		SouthWest: entity.Coordinate{Lat: 35.67, Lng: 139.75},
	}
	cafes, err := f.store.FindCafesInBounds(context.Background(), bounds)
	require.NoError(t, err)

	var names []string
	for _, c := range cafes {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{inside.Name, edge.Name}, names)
}

func TestStore_CreateReport(t *testing.T) {
	f := newFixture(t)
	cafe := f.cafe(t, "A", "35.68", "139.76")

	r := f.report(t, cafe.ID, entity.SeatStatusAvailable)
	assert.NotEqual(t, uuid.Nil, r.ID)
	assert.Equal(t, baseTime, r.CreatedAt)

	err := f.store.CreateReport(context.Background(), &entity.Report{CafeID: uuid.New(), UserID: f.user.ID})
	assert.ErrorIs(t, err, domainerrors.ErrReferenceInvalid)

	err = f.store.CreateReport(context.Background(), &entity.Report{CafeID: cafe.ID, UserID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrReferenceInvalid)
}

func TestStore_FindLatest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cafeA := f.cafe(t, "A", "35.68", "139.76")
	cafeB := f.cafe(t, "B", "35.68", "139.76")
	silent := f.cafe(t, "silent", "35.68", "139.76")

	f.report(t, cafeA.ID, entity.SeatStatusFull)
	f.clock = baseTime.Add(time.Hour)
	newestA := f.report(t, cafeA.ID, entity.SeatStatusAvailable)
	tie1 := f.report(t, cafeB.ID, entity.SeatStatusCrowded)
	tie2 := f.report(t, cafeB.ID, entity.SeatStatusFull)

	latest, err := f.store.FindLatestPerCafe(ctx, []uuid.UUID{cafeA.ID, cafeB.ID, silent.ID})
	require.NoError(t, err)
	assert.Len(t, latest, 2)
	assert.Equal(t, newestA.ID, latest[cafeA.ID].ID)
	want := tie1
	if tie2.NewerThan(tie1) {
		want = tie2
	}
	assert.Equal(t, want.ID, latest[cafeB.ID].ID)
	assert.NotContains(t, latest, silent.ID)

	history, err := f.store.FindLatestByCafe(ctx, cafeA.ID, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, newestA.ID, history[0].ID)
	require.NotNil(t, history[0].Author)
	assert.Equal(t, "alice", history[0].Author.Name)

	limited, err := f.store.FindLatestByCafe(ctx, cafeA.ID, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestStore_UpsertCafeByPlaceID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	placeID := "place-1"

	first := &entity.Cafe{Name: "old", PlaceID: &placeID}
	require.NoError(t, f.store.UpsertCafe(ctx, first))
	second := &entity.Cafe{Name: "new", PlaceID: &placeID}
	require.NoError(t, f.store.UpsertCafe(ctx, second))

	assert.Equal(t, first.ID, second.ID)
	stored, err := f.store.FindCafeByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", stored.Name)
}

func TestStore_ReturnsCopies(t *testing.T) {
	f := newFixture(t)
	cafe := f.cafe(t, "A", "35.68", "139.76")

	got, err := f.store.FindCafeByID(context.Background(), cafe.ID)
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := f.store.FindCafeByID(context.Background(), cafe.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", again.Name)
}

func TestStore_ExecuteRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cafe := f.cafe(t, "A", "35.68", "139.76")
	errAbort := errors.New("abort")

	err := f.store.Execute(ctx, func(rf repository.RepositoryFactory) error {
		if err := rf.NewCafeRepository().UpsertCafe(ctx, &entity.Cafe{Name: "ghost"}); err != nil {
			return err
		}
		r := &entity.Report{CafeID: cafe.ID, UserID: f.user.ID, SeatStatus: entity.SeatStatusFull}
		if err := rf.NewReportRepository().CreateReport(ctx, r); err != nil {
			return err
		}

		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	latest, err := f.store.FindLatestPerCafe(ctx, []uuid.UUID{cafe.ID})
	require.NoError(t, err)
	assert.Empty(t, latest)

	everywhere := entity.Bounds{
		NorthEast: entity.Coordinate{Lat: 90, Lng: 180},
		SouthWest: entity.Coordinate{Lat: -90, Lng: -180},
	}
	cafes, err := f.store.FindCafesInBounds(ctx, everywhere)
	require.NoError(t, err)
	assert.Len(t, cafes, 1)
}
