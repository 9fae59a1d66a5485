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
	"golang.org/x/text/currency"
)

type cartRepository struct {
	q        *db.Queries
	currency currency.Unit
}

func NewCart(pool *pgxpool.Pool, cur currency.Unit) port.CartRepository {
	return &cartRepository{
		q:        db.New(pool),
		currency: cur,
	}
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	rows, err := r.q.GetCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetCart: %w", err)
	}

	items, err := mapGetCartRowsToDomain(rows)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapGetCartRowsToDomain: %w", err)
	}

	cart, err := domain.RestoreCart(ownerID, r.currency, items)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("domain.RestoreCart: %w", err)
	}

	return cart, nil
}

func (r *cartRepository) SaveItem(ctx context.Context, ownerID string, item domain.CartItem) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}
	if item.ID == uuid.Nil {
		return fmt.Errorf("item ID is empty")
	}

	err := r.q.UpsertItem(ctx, db.UpsertItemParams{
		ID:          item.ID,
		OwnerID:     ownerID,
		FarmWasteID: item.FarmWasteID,
		StoreID:     item.StoreID,
		UnitPriceID: item.UnitPrice.ID,
		Quantity:    item.Quantity,
		CreatedAt:   item.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("q.UpsertItem: %w", err)
	}

	return nil
}

func (r *cartRepository) DeleteItem(ctx context.Context, ownerID string, itemID uuid.UUID) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	rowsAffected, err := r.q.DeleteItem(ctx, db.DeleteItemParams{
		OwnerID: ownerID,
		ID:      itemID,
	})
	if err != nil {
		return false, fmt.Errorf("q.DeleteItem: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *cartRepository) ClearCart(ctx context.Context, ownerID string) (int64, error) {
	if ownerID == "" {
		return 0, fmt.Errorf("ownerID is empty")
	}

	rowsAffected, err := r.q.ClearCart(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("q.ClearCart: %w", err)
	}

	return rowsAffected, nil
}

func (r *cartRepository) FindItemOwner(ctx context.Context, itemID uuid.UUID) (string, error) {
	ownerID, err := r.q.GetItemOwner(ctx, itemID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("cart item[%s]: %w", itemID, port.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("q.GetItemOwner: %w", err)
	}

	return ownerID, nil
}

func mapGetCartRowToDomain(row db.GetCartRow) (domain.CartItem, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.CartItem{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.CartItem{
		ID:          row.ID,
		FarmWasteID: row.FarmWasteID,
		StoreID:     row.StoreID,
		UnitPrice: domain.UnitPrice{
			ID:           row.UnitPriceID,
			Unit:         row.Unit,
			PricePerUnit: domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
			IsBaseUnit:   row.IsBaseUnit,
			Stock:        row.Stock,
			EqualWith:    row.EqualWith,
		},
		Quantity:  row.Quantity,
		CreatedAt: row.CreatedAt,
	}, nil
}

func mapGetCartRowsToDomain(rows []db.GetCartRow) ([]domain.CartItem, error) {
	var items []domain.CartItem

	for _, row := range rows {
		item, err := mapGetCartRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapGetCartRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
