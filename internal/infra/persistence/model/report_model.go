package model

import (
	"time"

	"github.com/google/uuid"
)

// ReportModel mirrors the 'reports' table. (cafe_id, created_at) backs both
// the history read and the latest-per-café window query.
type ReportModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CafeID       uuid.UUID `gorm:"type:uuid;not null;index:idx_reports_cafe_created,priority:1"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_reports_user_id"`
	SeatStatus   string    `gorm:"type:varchar(16);not null"`
	Quietness    string    `gorm:"type:varchar(16);not null"`
	Wifi         string    `gorm:"column:wifi;type:varchar(16);not null"`
	PowerOutlets bool      `gorm:"not null;default:false"`
	Comment      *string   `gorm:"type:varchar(50)"`
	CreatedAt    time.Time `gorm:"not null;index:idx_reports_cafe_created,priority:2,sort:desc"`
	UpdatedAt    time.Time

	Cafe *CafeModel `gorm:"foreignKey:CafeID;constraint:OnDelete:CASCADE"`
	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ReportModel) TableName() string {
	return "reports"
}
