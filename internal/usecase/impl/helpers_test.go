package impl

import (
	"io"
	"log/slog"
	"time"

	"cafemap/config"
	"cafemap/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func cafeAt(lat, lng string) *entity.Cafe {
	return &entity.Cafe{
		ID:        uuid.New(),
		Name:      "cafe " + lat + "," + lng,
		Latitude:  decimal.RequireFromString(lat),
		Longitude: decimal.RequireFromString(lng),
	}
}

func reportAt(cafeID uuid.UUID, createdAt time.Time, seats entity.SeatStatus, power bool) *entity.Report {
	return &entity.Report{
		ID:           uuid.New(),
		CafeID:       cafeID,
		UserID:       uuid.New(),
		SeatStatus:   seats,
		Quietness:    entity.QuietnessNormal,
		Wifi:         entity.WifiNormal,
		PowerOutlets: power,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}

var tokyoBounds = entity.Bounds{
	NorthEast: entity.Coordinate{Lat: 35.70, Lng: 139.78},
	SouthWest: entity.Coordinate{Lat: 35.67, Lng: 139.75},
}
