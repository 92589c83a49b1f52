package seed

import (
	"context"
	"testing"

	"cafemap/internal/domain/entity"
	"cafemap/internal/infra/persistence/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_TokyoStationOnly(t *testing.T) {
	store := memory.New()

	result, err := Run(context.Background(), store, false)
	require.NoError(t, err)

	assert.Len(t, result.Cafes, len(tokyoStationCafes))
	assert.Nil(t, result.User)
	assert.Empty(t, result.Reports)
}

func TestRun_Demo(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	result, err := Run(ctx, store, true)
	require.NoError(t, err)

	require.NotNil(t, result.User)
	assert.Equal(t, DemoUserID, result.User.ID)
	require.Len(t, result.Cafes, len(tokyoStationCafes)+len(shibuyaCafes))
	require.Len(t, result.Reports, len(demoReports))

	ids := make([]uuid.UUID, 0, len(result.Cafes))
	for _, cafe := range result.Cafes {
		ids = append(ids, cafe.ID)
	}
	latest, err := store.FindLatestPerCafe(ctx, ids)
	require.NoError(t, err)
	assert.Len(t, latest, len(demoReports))

	marunouchi := result.Cafes[0]
	require.Contains(t, latest, marunouchi.ID)
	assert.Equal(t, entity.SeatStatusAvailable, latest[marunouchi.ID].SeatStatus)
	assert.NotContains(t, latest, result.Cafes[1].ID)
}

func TestRun_IsIdempotentForCafes(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	first, err := Run(ctx, store, true)
	require.NoError(t, err)
	second, err := Run(ctx, store, true)
	require.NoError(t, err)

	require.Len(t, second.Cafes, len(first.Cafes))
	for i := range first.Cafes {
		assert.Equal(t, first.Cafes[i].ID, second.Cafes[i].ID)
	}

	history, err := store.FindLatestByCafe(ctx, first.Cafes[0].ID, 10)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
