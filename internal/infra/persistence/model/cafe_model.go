package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CafeModel mirrors the 'cafes' table. Coordinates are stored as
// decimal(10,7) and indexed together for the viewport range scan.
type CafeModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Address   string          `gorm:"type:text;not null"`
	Latitude  decimal.Decimal `gorm:"type:decimal(10,7);not null;index:idx_cafes_location,priority:1"`
	Longitude decimal.Decimal `gorm:"type:decimal(10,7);not null;index:idx_cafes_location,priority:2"`
	PlaceID   *string         `gorm:"type:varchar(255);uniqueIndex:idx_cafes_place_id"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CafeModel) TableName() string {
	return "cafes"
}
