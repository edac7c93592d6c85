package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
	pgDuplicateObject    = "42710"
)

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint violation
// on the named constraint. The name is ignored when empty.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// IsOverlapViolation reports whether err is the bookings_no_overlap exclusion
// constraint firing. This is the storage-level backstop for the no-double-booking
// invariant under concurrent creates.
func IsOverlapViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgExclusionViolation &&
		pgErr.ConstraintName == "bookings_no_overlap"
}

func isDuplicateObject(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgDuplicateObject
}
