// Package sql sources query sequences from database rows using
// database/sql. Rows are fully materialized into the returned query, so
// the database connection is free as soon as the call returns.
package sql

import (
	"context"
	"database/sql"

	"github.com/awalsh128/fluentgo/query/core"
)

// Scanner is a function that scans a row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Query executes the statement and materializes every row, via the
// scanner, into a query sequence in row order.
func Query[T any](ctx context.Context, db *sql.DB, stmt string, scanner Scanner[T], args ...any) (*core.Query[T], error) {
	rows, err := db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		value, err := scanner(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, value)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return core.New(items), nil
}

// QueryRow executes a statement expected to produce a single row and
// returns a one-item query sequence.
func QueryRow[T any](ctx context.Context, db *sql.DB, stmt string, scanner func(*sql.Row) (T, error), args ...any) (*core.Query[T], error) {
	value, err := scanner(db.QueryRowContext(ctx, stmt, args...))
	if err != nil {
		return nil, err
	}
	return core.New([]T{value}), nil
}
