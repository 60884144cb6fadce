package models

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes surfaced by lib/pq.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqNotNullViolation    = "23502"
	pqStringTooLong       = "22001"
	pqNumericOutOfRange   = "22003"
)

// translateError maps store errors onto the package error taxonomy.
// notFound is used for gorm.ErrRecordNotFound; the original error is
// returned when nothing matches.
func translateError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) && notFound != nil {
		return notFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateCategoryName
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrInvalidCategoryReference
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqUniqueViolation:
			return ErrDuplicateCategoryName
		case pqForeignKeyViolation:
			return ErrInvalidCategoryReference
		case pqNotNullViolation:
			return ErrRequiredField
		case pqStringTooLong, pqNumericOutOfRange:
			return ErrValueOutOfRange
		}
	}

	return err
}
