package postgres

import (
	"context"
	"testing"
	"time"

	"cafemap/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with foreign keys
// enforced and the schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every pooled connection would otherwise get its own empty database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) *entity.User {
	t.Helper()

	user := &entity.User{Email: name + "@example.com", Name: name, Image: "https://example.com/" + name + ".png"}
	require.NoError(t, NewUserRepository(db).UpsertUser(context.Background(), user))

	return user
}

func seedCafe(t *testing.T, db *gorm.DB, name, lat, lng string) *entity.Cafe {
	t.Helper()

	cafe := &entity.Cafe{
		Name:      name,
		Address:   "東京都",
		Latitude:  decimal.RequireFromString(lat),
		Longitude: decimal.RequireFromString(lng),
	}
	require.NoError(t, NewCafeRepository(db).UpsertCafe(context.Background(), cafe))

	return cafe
}

// steppingClock returns successive instants one minute apart.
func steppingClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		current := next
		next = next.Add(time.Minute)
		return current
	}
}

func newReport(cafeID, userID uuid.UUID, seats entity.SeatStatus) *entity.Report {
	return &entity.Report{
		CafeID:       cafeID,
		UserID:       userID,
		SeatStatus:   seats,
		Quietness:    entity.QuietnessNormal,
		Wifi:         entity.WifiFast,
		PowerOutlets: true,
	}
}
