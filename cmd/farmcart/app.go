package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/farmcart/internal/repository"
	"github.com/nikolayk812/farmcart/internal/service"
)

// app is the wired service graph shared by the commands.
type app struct {
	pool    *pgxpool.Pool
	carts   *service.Cart
	catalog *service.Catalog
}

func newApp(ctx context.Context) (*app, error) {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pool.Ping: %w", err)
	}

	transactor := repository.NewTransactor(pool, cfg.Currency)

	return &app{
		pool:    pool,
		carts:   service.NewCart(transactor, cfg.Currency, cfg.ShippingFlatFee, logger),
		catalog: service.NewCatalog(repository.NewFarmWaste(pool), logger),
	}, nil
}

func (a *app) Close() {
	a.pool.Close()
}
