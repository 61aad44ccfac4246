package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the usecases react to.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsUniqueViolation reports a unique_violation whose constraint name contains constraint.
// An empty constraint matches any unique violation.
func IsUniqueViolation(err error, constraint string) bool {
	pgErr, ok := pgError(err)
	if !ok || pgErr.Code != codeUniqueViolation {
		return false
	}
	return strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraint))
}

func IsForeignKeyViolation(err error, constraint string) bool {
	pgErr, ok := pgError(err)
	if !ok || pgErr.Code != codeForeignKeyViolation {
		return false
	}
	return strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraint))
}

// IsRetryable reports serialization failures and deadlocks; the transaction may be rerun.
func IsRetryable(err error) bool {
	pgErr, ok := pgError(err)
	if !ok {
		return false
	}
	return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
}
