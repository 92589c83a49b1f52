package postgres

import (
	"testing"

	"cafemap/internal/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintClassifiers(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		notNull    bool
	}{
		{
			name:   "translated duplicate key",
			err:    errors.Wrap(gorm.ErrDuplicatedKey, "insert"),
			unique: true,
		},
		{
			name:       "translated foreign key",
			err:        gorm.ErrForeignKeyViolated,
			foreignKey: true,
		},
		{
			name:       "untranslated pgx foreign key",
			err:        errors.New(`ERROR: insert or update on table "reports" violates foreign key constraint "fk_reports_cafe" (SQLSTATE 23503)`),
			foreignKey: true,
		},
		{
			name:    "untranslated sqlite not null",
			err:     errors.New("NOT NULL constraint failed: reports.seat_status"),
			notNull: true,
		},
		{
			name: "unrelated",
			err:  errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
		})
	}
}
