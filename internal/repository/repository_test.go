package repository_test

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/nikolayk812/farmcart/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/text/currency"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			"../migrations/01_cart_items.up.sql"),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return postgresContainer, connStr, nil
}

// randomFarmWaste returns a product sold per kg (base) and per ton.
func randomFarmWaste() domain.FarmWaste {
	return domain.FarmWaste{
		StoreID: uuid.MustParse(gofakeit.UUID()),
		Name:    gofakeit.ProductName(),
		UnitPrices: []domain.UnitPrice{
			{
				Unit:         "kg",
				PricePerUnit: idr(1000),
				IsBaseUnit:   true,
				Stock:        decimal.NewNullDecimal(decimal.NewFromInt(int64(gofakeit.IntRange(10, 500)))),
				EqualWith:    decimal.NewFromInt(1),
			},
			{
				Unit:         "ton",
				PricePerUnit: idr(900_000),
				Stock:        decimal.NewNullDecimal(decimal.NewFromInt(int64(gofakeit.IntRange(1, 5)))),
				EqualWith:    decimal.NewFromInt(1000),
			},
		},
	}
}

func idr(amount int64) domain.Money {
	return domain.Money{Amount: decimal.NewFromInt(amount), Currency: currency.IDR}
}
