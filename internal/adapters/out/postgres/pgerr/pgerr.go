// Package pgerr classifies errors returned by the postgres driver.
package pgerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the adapters react to.
const (
	UniqueViolation     = "23505"
	ForeignKeyViolation = "23503"
)

// IsUniqueViolation reports whether err is a unique violation of the named
// constraint or index. An empty name matches any unique violation.
func IsUniqueViolation(err error, constraint string) bool {
	return is(err, UniqueViolation, constraint)
}

// IsForeignKeyViolation reports whether err is a foreign key violation of
// the named constraint. An empty name matches any foreign key violation.
func IsForeignKeyViolation(err error, constraint string) bool {
	return is(err, ForeignKeyViolation, constraint)
}

func is(err error, code, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != code {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
