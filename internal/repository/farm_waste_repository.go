package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/farmcart/internal/db"
	"github.com/nikolayk812/farmcart/internal/domain"
	"github.com/nikolayk812/farmcart/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var decimalOne = decimal.NewFromInt(1)

type farmWasteRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewFarmWaste(pool *pgxpool.Pool) port.FarmWasteRepository {
	return &farmWasteRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func (r *farmWasteRepository) GetFarmWaste(ctx context.Context, id uuid.UUID) (domain.FarmWaste, error) {
	row, err := r.q.GetFarmWaste(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.FarmWaste{}, fmt.Errorf("farm waste[%s]: %w", id, port.ErrNotFound)
	}
	if err != nil {
		return domain.FarmWaste{}, fmt.Errorf("q.GetFarmWaste: %w", err)
	}

	unitRows, err := r.q.ListUnitPrices(ctx, id)
	if err != nil {
		return domain.FarmWaste{}, fmt.Errorf("q.ListUnitPrices: %w", err)
	}

	units, err := mapUnitPriceRowsToDomain(unitRows)
	if err != nil {
		return domain.FarmWaste{}, fmt.Errorf("mapUnitPriceRowsToDomain: %w", err)
	}

	return domain.FarmWaste{
		ID:         row.ID,
		StoreID:    row.StoreID,
		Name:       row.Name,
		UnitPrices: units,
		CreatedAt:  row.CreatedAt,
	}, nil
}

// CreateFarmWaste stores the product and its unit prices. Missing IDs are generated.
func (r *farmWasteRepository) CreateFarmWaste(ctx context.Context, farmWaste domain.FarmWaste) (domain.FarmWaste, error) {
	if err := farmWaste.Validate(); err != nil {
		return domain.FarmWaste{}, fmt.Errorf("farmWaste.Validate: %w", err)
	}

	if farmWaste.ID == uuid.Nil {
		farmWaste.ID = uuid.New()
	}
	farmWaste.UnitPrices = withUnitPriceIDs(farmWaste.UnitPrices)

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.FarmWaste, error) {
		createdAt, err := q.InsertFarmWaste(ctx, db.InsertFarmWasteParams{
			ID:      farmWaste.ID,
			StoreID: farmWaste.StoreID,
			Name:    farmWaste.Name,
		})
		if err != nil {
			return domain.FarmWaste{}, fmt.Errorf("q.InsertFarmWaste: %w", err)
		}
		farmWaste.CreatedAt = createdAt

		if err := upsertUnitPrices(ctx, q, farmWaste.ID, farmWaste.UnitPrices); err != nil {
			return domain.FarmWaste{}, fmt.Errorf("upsertUnitPrices: %w", err)
		}

		return farmWaste, nil
	})
}

// UpdateUnitPrices replaces the unit set of a product. Cart lines of removed units are dropped.
func (r *farmWasteRepository) UpdateUnitPrices(ctx context.Context, farmWasteID uuid.UUID, units []domain.UnitPrice) error {
	if err := domain.ValidateUnitPrices(units); err != nil {
		return fmt.Errorf("domain.ValidateUnitPrices: %w", err)
	}

	units = withUnitPriceIDs(units)

	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		if _, err := q.GetFarmWaste(ctx, farmWasteID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return struct{}{}, fmt.Errorf("farm waste[%s]: %w", farmWasteID, port.ErrNotFound)
			}
			return struct{}{}, fmt.Errorf("q.GetFarmWaste: %w", err)
		}

		keep := make([]uuid.UUID, 0, len(units))
		for _, u := range units {
			keep = append(keep, u.ID)
		}

		if _, err := q.DeleteUnitPricesExcept(ctx, db.DeleteUnitPricesExceptParams{
			FarmWasteID: farmWasteID,
			KeepIds:     keep,
		}); err != nil {
			return struct{}{}, fmt.Errorf("q.DeleteUnitPricesExcept: %w", err)
		}

		if err := upsertUnitPrices(ctx, q, farmWasteID, units); err != nil {
			return struct{}{}, fmt.Errorf("upsertUnitPrices: %w", err)
		}

		return struct{}{}, nil
	})

	return err
}

func upsertUnitPrices(ctx context.Context, q *db.Queries, farmWasteID uuid.UUID, units []domain.UnitPrice) error {
	for i, u := range units {
		n, err := q.UpsertUnitPrice(ctx, db.UpsertUnitPriceParams{
			ID:            u.ID,
			FarmWasteID:   farmWasteID,
			Position:      int32(i),
			Unit:          u.Unit,
			PriceAmount:   u.PricePerUnit.Amount,
			PriceCurrency: u.PricePerUnit.Currency.String(),
			IsBaseUnit:    u.IsBaseUnit,
			Stock:         u.Stock,
			EqualWith:     u.EqualWith,
		})
		if err != nil {
			return fmt.Errorf("q.UpsertUnitPrice[%s]: %w", u.Unit, err)
		}
		// the conflict clause only updates rows of this farm waste
		if n == 0 {
			return domain.NewValidationErrorf("%s: %s", domain.ErrMsgUnitPriceTaken, u.ID)
		}
	}

	return nil
}

func withUnitPriceIDs(units []domain.UnitPrice) []domain.UnitPrice {
	result := make([]domain.UnitPrice, len(units))
	for i, u := range units {
		if u.ID == uuid.Nil {
			u.ID = uuid.New()
		}
		if u.IsBaseUnit {
			u.EqualWith = decimalOne
		}
		result[i] = u
	}

	return result
}

func mapUnitPriceRowToDomain(row db.UnitPrice) (domain.UnitPrice, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.UnitPrice{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.UnitPrice{
		ID:           row.ID,
		Unit:         row.Unit,
		PricePerUnit: domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		IsBaseUnit:   row.IsBaseUnit,
		Stock:        row.Stock,
		EqualWith:    row.EqualWith,
	}, nil
}

func mapUnitPriceRowsToDomain(rows []db.UnitPrice) ([]domain.UnitPrice, error) {
	var units []domain.UnitPrice

	for _, row := range rows {
		unit, err := mapUnitPriceRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapUnitPriceRowToDomain: %w", err)
		}

		units = append(units, unit)
	}

	return units, nil
}
