package service

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrInvalidPrice      = errors.New("price must be greater than zero")
	ErrNegativeQuantity  = errors.New("quantity cannot be negative")
	ErrInvalidCategory   = errors.New("category not found")
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateName     = errors.New("name already in use")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrConflict          = errors.New("concurrent commit conflict")
)

// IsUniqueViolation catches postgres 23505 directly (gorm error translation
// is off on the postgres driver) and gorm's translated form for drivers that
// enable it, e.g. the sqlite test database.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// isSerializationFailure reports retryable transaction aborts:
// serialization_failure and deadlock_detected.
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}
