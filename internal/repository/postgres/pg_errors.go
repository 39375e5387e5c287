package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kirinyoku/adslot-go/internal/repository"
)

const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeUniqueViolation      = "23505"
)

// IsRetryable reports serialization failures and deadlocks, which succeed on a fresh attempt.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected:
			return true
		}
	}

	return false
}

func translateDBErr(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}

	var pge *pgconn.PgError
	if errors.As(err, &pge) {
		if pge.Code == codeUniqueViolation {
			return fmt.Errorf("%w: %s", repository.ErrConflict, pge.ConstraintName)
		}
	}

	return err
}

func isUniqueViolation(err error, constraint string) bool {
	var pge *pgconn.PgError
	return errors.As(err, &pge) && pge.Code == codeUniqueViolation && pge.ConstraintName == constraint
}

// wrapDBErr maps common DB errors to repository-level errors and wraps them with
// the provided operation name. Retryable pg errors keep their original type.
func wrapDBErr(op string, err error) error {
	if err == nil {
		return nil
	}

	if IsRetryable(err) {
		return fmt.Errorf("%s:%w", op, err)
	}

	return fmt.Errorf("%s:%w", op, translateDBErr(err))
}
