package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the stores care about.
const (
	pgForeignKeyViolationCode       = "23503"
	pgInvalidTextRepresentationCode = "22P02"
)

// isForeignKeyViolation checks if the given error is a PostgreSQL
// foreign key constraint violation, e.g. inserting a comment whose
// author does not exist.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolationCode
}

// isInvalidTextRepresentation checks if the given error is a
// PostgreSQL invalid-text-representation error, raised when a literal
// cannot be converted to the column type (e.g. a non-numeric id).
func isInvalidTextRepresentation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRepresentationCode
}
