package postgres

import (
	"adreach/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes the repositories react to.
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgNotNullViolation     = "23502"
	pgCheckViolation       = "23514"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || pgErrorCode(err) == pgUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || pgErrorCode(err) == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	return pgErrorCode(err) == pgNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || pgErrorCode(err) == pgCheckViolation
}

// isConcurrencyConflict reports errors caused by a concurrent writer. Retrying the
// whole unit of work is safe for all of them.
func isConcurrencyConflict(err error) bool {
	switch pgErrorCode(err) {
	case pgUniqueViolation, pgSerializationFailure, pgDeadlockDetected:
		return true
	}

	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// wrapWriteError maps conflicts to repository.ErrConflict and wraps everything else.
func wrapWriteError(err error, message string) error {
	if err == nil {
		return nil
	}
	if isConcurrencyConflict(err) {
		return errors.Wrapf(repository.ErrConflict, "%s: %v", message, err)
	}

	return errors.Wrap(err, message)
}
