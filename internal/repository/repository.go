// Package repository implements the PostgreSQL persistence for users and
// cars. Every statement is a single parameterized INSERT/SELECT/UPDATE/
// DELETE; row-level atomicity is all the concurrency discipline needed.
package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the slice of a connection pool the repositories use. It is
// satisfied by *pgxpool.Pool and by pgxmock.PgxPoolIface in tests.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const uniqueViolationCode = "23505"

func uniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == uniqueViolationCode &&
		(constraint == "" || pgErr.ConstraintName == constraint)
}
