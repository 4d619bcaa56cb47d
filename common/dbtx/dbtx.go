// Package dbtx gives the transaction engine a single way to name its
// unit of work: RunInTransaction owns begin/commit/rollback, and repository
// methods pull whichever executor (a *sql.Tx if one is running, the pool
// otherwise) is active from the context instead of taking it as a parameter.
// This is the only sanctioned way a command reaches across repository
// boundaries inside one database transaction; nested RunInTransaction calls
// are not supported — the first caller that opens a transaction is the only
// one that may commit or roll it back.
package dbtx

import (
	"context"
	"database/sql"
)

type txKey struct{}

// Executor is the common surface of *sql.DB and *sql.Tx that repositories
// need.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ContextWithTx returns a context carrying tx. A nil tx is stored as no tx
// at all, so TxFromContext(ContextWithTx(ctx, nil)) == nil.
func ContextWithTx(ctx context.Context, tx *sql.Tx) context.Context {
	if tx == nil {
		return ctx
	}

	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromContext returns the *sql.Tx carried by ctx, or nil if none.
func TxFromContext(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txKey{}).(*sql.Tx)
	return tx
}

// GetExecutor returns the transaction in ctx if one is running, otherwise db
// itself. Repositories call this instead of being handed a *sql.Tx directly.
func GetExecutor(ctx context.Context, db *sql.DB) Executor {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}

	return db
}

// RunInTransaction begins a transaction on db, runs fn with a context that
// carries it, and commits on success. fn's error (or a panic) triggers a
// rollback; panics are re-raised after rollback so the caller's recover (if
// any) still sees them. This is the engine's only exit: every public
// operation in internal/services/command wraps its pipeline in exactly one
// call to RunInTransaction.
func RunInTransaction(ctx context.Context, db *sql.DB, fn func(ctx context.Context) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(ContextWithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return nil
}
