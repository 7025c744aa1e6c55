package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes for the constraint violations the services map
// onto domain errors.
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// IsUniqueViolation reports whether err is a unique-constraint violation
// on the named constraint or index.
func IsUniqueViolation(err error, constraint string) bool {
	return isConstraintViolation(err, pgUniqueViolation, constraint)
}

// IsExclusionViolation reports whether err is an exclusion-constraint
// violation on the named constraint.
func IsExclusionViolation(err error, constraint string) bool {
	return isConstraintViolation(err, pgExclusionViolation, constraint)
}

func isConstraintViolation(err error, code, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == code && pgErr.ConstraintName == constraint
}
