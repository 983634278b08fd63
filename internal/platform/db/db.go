package db

import (
	"context"
	"database/sql"
)

// Executor is the subset of database/sql used by repositories. Both *sql.DB
// and *sql.Tx satisfy it.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type TxManager interface {
	// RunInTx executes the given function within a database transaction.
	// It begins a transaction, calls the function with a new context
	// containing the transaction, and then commits or rolls back
	// based on the function's return value.
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ExecutorFrom returns the transaction stored in ctx if there is one,
// otherwise the fallback executor.
//
//nolint:ireturn //Repositories need the interface to stay tx-agnostic.
func ExecutorFrom(ctx context.Context, fallback Executor) Executor {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return fallback
}
