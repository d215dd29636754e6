package duckdb

import (
	"context"
	"database/sql"
	"fmt"
)

type txKey struct{}

// WithTransaction returns a context carrying tx. Catalog store writes pick
// the transaction up and join it instead of writing through the pool.
func WithTransaction(ctx context.Context, tx *sql.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func GetTransaction(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txKey{}).(*sql.Tx)
	return tx
}

// RunInTransaction runs fn with a transaction carried in the context, so a
// multi-statement catalog write is applied atomically. Commits when fn
// returns nil, rolls back otherwise.
func RunInTransaction(ctx context.Context, db *sql.DB, fn func(ctx context.Context) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(WithTransaction(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}
