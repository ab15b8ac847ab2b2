// Package sql provides deferred call adapters for database operations using
// database/sql. A handle defers a query whose bind arguments arrive later;
// the matching future delivers the scanned rows wherever the outcome is
// inspected.
package sql

import (
	"context"
	"database/sql"

	"github.com/lguimbarda/min-call/call"
)

// Args is the bind-argument list of a deferred statement. It is the second
// argument slot of every handle built by this package; set it (together
// with the context) via CallWith or SetArg when the values become known.
type Args []any

// Scanner is a function that scans a row into a value.
type Scanner[T any] func(*sql.Rows) (T, error)

// Query builds a deferred query. The handle's arguments are
// (context.Context, Args); the future delivers every scanned row.
func Query[T any](p call.Policy, db *sql.DB, query string, scanner Scanner[T], opts ...call.Option) (call.Handle, call.Future[[]T]) {
	return call.Func2(p, func(ctx context.Context, args Args) ([]T, error) {
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		var values []T
		for rows.Next() {
			value, err := scanner(rows)
			if err != nil {
				return nil, err
			}
			values = append(values, value)
		}
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return values, nil
	}, opts...)
}

// QueryRow builds a deferred query expecting a single row.
func QueryRow[T any](p call.Policy, db *sql.DB, query string, scanner func(*sql.Row) (T, error), opts ...call.Option) (call.Handle, call.Future[T]) {
	return call.Func2(p, func(ctx context.Context, args Args) (T, error) {
		return scanner(db.QueryRowContext(ctx, query, args...))
	}, opts...)
}

// ExecResult contains the result of an exec operation.
type ExecResult struct {
	LastInsertId int64
	RowsAffected int64
}

// Exec builds a deferred statement execution.
func Exec(p call.Policy, db *sql.DB, query string, opts ...call.Option) (call.Handle, call.Future[ExecResult]) {
	return call.Func2(p, func(ctx context.Context, args Args) (ExecResult, error) {
		result, err := db.ExecContext(ctx, query, args...)
		if err != nil {
			return ExecResult{}, err
		}
		lastID, _ := result.LastInsertId()
		rowsAffected, _ := result.RowsAffected()
		return ExecResult{
			LastInsertId: lastID,
			RowsAffected: rowsAffected,
		}, nil
	}, opts...)
}

// Transaction builds a deferred function running within a database
// transaction. If the function returns an error, the transaction is rolled
// back. Otherwise, it is committed. The handle's sole argument is the
// context.Context to run under.
func Transaction[T any](p call.Policy, db *sql.DB, fn func(tx *sql.Tx) (T, error), opts ...call.Option) (call.Handle, call.Future[T]) {
	return call.Func1(p, func(ctx context.Context) (T, error) {
		var zero T
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return zero, err
		}
		value, err := fn(tx)
		if err != nil {
			tx.Rollback()
			return zero, err
		}
		if err := tx.Commit(); err != nil {
			return zero, err
		}
		return value, nil
	}, opts...)
}
