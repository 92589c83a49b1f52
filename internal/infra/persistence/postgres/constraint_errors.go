package postgres

import (
	"strings"

	"cafemap/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation relies on GORM's translated error when the
// dialector translates, and on the SQLSTATE in the message otherwise.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "sqlstate 23505") ||
		strings.Contains(errMsg, "unique constraint failed")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "sqlstate 23503") || // foreign_key_violation
		strings.Contains(errMsg, "foreign key constraint failed")
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "sqlstate 23502") ||
		strings.Contains(errMsg, "not null constraint failed")
}
