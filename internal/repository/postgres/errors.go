package postgres

import (
	"errors"

	"placement-portal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// translateError maps driver errors onto domain errors. Unknown errors pass through.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &domain.ConstraintError{Kind: domain.ErrDuplicate, Constraint: pgErr.ConstraintName}
		case pgForeignKeyViolation:
			return &domain.ConstraintError{Kind: domain.ErrForeignKey, Constraint: pgErr.ConstraintName}
		case pgCheckViolation:
			return &domain.ConstraintError{Kind: domain.ErrCheckViolation, Constraint: pgErr.ConstraintName}
		}
	}
	return err
}

// nullString turns "" into NULL.
func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
