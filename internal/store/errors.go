package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// ConflictError reports a unique-constraint violation, naming the offending
// field when it can be determined.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	if e.Field == "" {
		return "duplicate value violates a unique constraint"
	}
	return fmt.Sprintf("duplicate value for %s", e.Field)
}

// ReferenceError reports a referential-integrity violation: inserting a row
// that points at a nonexistent parent, or deleting a parent a constraint
// still protects.
type ReferenceError struct {
	Detail string
}

func (e *ReferenceError) Error() string {
	if e.Detail == "" {
		return "operation violates a foreign key constraint"
	}
	return fmt.Sprintf("operation violates a foreign key constraint: %s", e.Detail)
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateErr maps driver errors onto the store taxonomy. uniqueField names
// the entity's single unique column, used when the driver cannot tell us.
// Validation errors (models.FieldError) and anything unrecognized pass
// through unchanged; the caller owns retry policy.
func translateErr(err error, uniqueField string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &ConflictError{Field: uniqueField}
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &ReferenceError{}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &ConflictError{Field: uniqueField}
		case pgForeignKeyViolation:
			return &ReferenceError{Detail: pgErr.ConstraintName}
		}
	}
	// SQLite (tests) reports constraint failures as plain messages.
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") {
		return &ConflictError{Field: uniqueField}
	}
	if strings.Contains(msg, "FOREIGN KEY constraint failed") {
		return &ReferenceError{}
	}
	return err
}
