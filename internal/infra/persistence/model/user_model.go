package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Rows are provisioned by the identity
// provider (or the seeding CLI); ids are assigned outside the database.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name      string    `gorm:"type:varchar(100);not null;default:''"`
	Image     string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
