package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/farmcart/internal/db"
	"github.com/nikolayk812/farmcart/internal/port"
	"golang.org/x/text/currency"
)

func withTx[T any](ctx context.Context, pool *pgxpool.Pool, q *db.Queries, fn func(q *db.Queries) (T, error)) (_ T, txErr error) {
	var zero T

	// If we're already in a transaction (pool is nil), just use the existing queries
	if pool == nil {
		return fn(q)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return zero, fmt.Errorf("pool.Begin: %w", err)
	}

	defer func() {
		if txErr != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				txErr = errors.Join(txErr, fmt.Errorf("tx.Rollback: %w", rollbackErr))
			}
		}
	}()

	result, err := fn(db.New(tx))
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(ctx); err != nil {
		return zero, fmt.Errorf("tx.Commit: %w", err)
	}

	return result, nil
}

type transactor struct {
	pool     *pgxpool.Pool
	currency currency.Unit
}

// NewTransactor binds cart and farm waste repositories to a single transaction per call.
func NewTransactor(pool *pgxpool.Pool, cur currency.Unit) port.Transactor {
	return &transactor{
		pool:     pool,
		currency: cur,
	}
}

func (t *transactor) WithinTx(ctx context.Context, fn func(repos port.Repositories) error) error {
	_, err := withTx(ctx, t.pool, nil, func(q *db.Queries) (struct{}, error) {
		repos := port.Repositories{
			Carts:      &cartRepository{q: q, currency: t.currency},
			FarmWastes: &farmWasteRepository{q: q},
		}

		return struct{}{}, fn(repos)
	})

	return err
}
