package dberrors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the storage layer classifies.
const (
	ForeignKeyViolation = "23503"
	UniqueViolation     = "23505"
	CheckViolation      = "23514"
	NotNullViolation    = "23502"
)

// ErrNotFound matches every *NotFoundError via errors.Is.
var ErrNotFound = errors.New("entity not found")

// NotFoundError reports that a lookup by key matched no row.
type NotFoundError struct {
	Entity string
	Field  string
	Value  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with %s='%s' not found", e.Entity, e.Field, e.Value)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFound builds the not-found signal for entity looked up by field=value.
func NewNotFound(entity, field, value string) error {
	return &NotFoundError{Entity: entity, Field: field, Value: value}
}

// IsNotFound reports whether err carries the not-found signal.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// SQLState returns the SQLSTATE of a PostgreSQL error, or "" for anything else.
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
