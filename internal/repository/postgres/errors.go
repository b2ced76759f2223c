package postgres

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	ierr "github.com/techAMA2025/NewCRM-sub003/internal/errors"
)

const pqUniqueViolation = "23505"

// wrapErr maps driver errors onto the domain error taxonomy
func wrapErr(err error, entity string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ierr.WithError(err).
			WithHintf("%s not found", entity).
			Mark(ierr.ErrNotFound)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return ierr.WithError(err).
			WithHintf("%s already exists", entity).
			Mark(ierr.ErrAlreadyExists)
	}

	return ierr.WithError(err).
		WithHintf("Failed to query %s", entity).
		Mark(ierr.ErrDatabase)
}

// sortColumn whitelists user-supplied sort fields; anything unknown falls
// back to created_at.
func sortColumn(requested string, allowed map[string]bool) string {
	if allowed[requested] {
		return requested
	}
	return "created_at"
}

// sortOrder normalizes the order keyword
func sortOrder(requested string) string {
	if requested == "asc" {
		return "ASC"
	}
	return "DESC"
}

// bindNamed expands :name placeholders and rebinds them to $N for postgres
func bindNamed(query string, arg interface{}) (string, []interface{}, error) {
	q, args, err := sqlx.Named(query, arg)
	if err != nil {
		return "", nil, err
	}
	return sqlx.Rebind(sqlx.DOLLAR, q), args, nil
}
