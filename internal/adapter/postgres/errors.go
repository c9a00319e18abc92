package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/bizcrm-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors. The entity and id
// only label the message; id 0 is omitted.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}

	label := entity
	if id != 0 {
		label = fmt.Sprintf("%s %d", entity, id)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", label, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", label, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505", // unique_violation
			"23503", // foreign_key_violation
			"23514", // check_violation
			"23502": // not_null_violation
			return fmt.Errorf("%s: %s: %w", label, pgErr.ConstraintName, domain.ErrConstraintViolation)
		}
		// Class 22: the value itself is unacceptable (bad encoding, NUL byte,
		// numeric overflow), so the caller sent bad data.
		if strings.HasPrefix(pgErr.Code, "22") {
			return fmt.Errorf("%s: %w: %s", label, domain.ErrValidation, pgErr.Code)
		}
		if isUnavailableClass(pgErr.Code) {
			return fmt.Errorf("%s: %w: %s", label, domain.ErrStorageUnavailable, pgErr.Code)
		}
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%s: %w", label, domain.ErrStorageUnavailable)
	}

	return fmt.Errorf("%s: %w", label, err)
}

// isUnavailableClass reports SQLSTATE classes that mean the server cannot
// serve the request at all: connection exceptions, insufficient resources,
// operator intervention, system errors and internal errors.
func isUnavailableClass(code string) bool {
	switch {
	case strings.HasPrefix(code, "08"),
		strings.HasPrefix(code, "53"),
		strings.HasPrefix(code, "57P"),
		strings.HasPrefix(code, "58"),
		strings.HasPrefix(code, "XX"):
		return true
	}
	return false
}
