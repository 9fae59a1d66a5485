// Package service runs cart and catalog operations against storage. Each cart mutation
// loads the aggregates, applies the domain operation and persists the changed line in one
// transaction.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/farmcart/internal/domain"
	"github.com/nikolayk812/farmcart/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

type Cart struct {
	tx          port.Transactor
	shippingFee domain.Money
	logger      *zap.Logger
}

func NewCart(tx port.Transactor, cur currency.Unit, shippingFlatFee decimal.Decimal, logger *zap.Logger) *Cart {
	return &Cart{
		tx:          tx,
		shippingFee: domain.Money{Amount: shippingFlatFee, Currency: cur},
		logger:      logger.Named("cart"),
	}
}

func (s *Cart) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, domain.NewValidationError(domain.ErrMsgOwnerIDRequired)
	}

	var cart domain.Cart
	err := s.tx.WithinTx(ctx, func(repos port.Repositories) error {
		var err error
		cart, err = repos.Carts.GetCart(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("repos.Carts.GetCart: %w", err)
		}
		return nil
	})

	return cart, err
}

func (s *Cart) AddItem(ctx context.Context, ownerID string, farmWasteID, unitPriceID uuid.UUID, quantity int64) (domain.Cart, error) {
	return s.mutate(ctx, ownerID, "add item", func(repos port.Repositories, cart *domain.Cart) error {
		farmWaste, err := repos.FarmWastes.GetFarmWaste(ctx, farmWasteID)
		if err != nil {
			return fmt.Errorf("repos.FarmWastes.GetFarmWaste: %w", err)
		}

		unit, ok := farmWaste.UnitPrice(unitPriceID)
		if !ok {
			unit = domain.UnitPrice{ID: unitPriceID}
		}

		item, err := cart.AddItem(farmWaste, unit, quantity)
		if err != nil {
			return fmt.Errorf("cart.AddItem: %w", err)
		}

		if err := repos.Carts.SaveItem(ctx, ownerID, item); err != nil {
			return fmt.Errorf("repos.Carts.SaveItem: %w", err)
		}

		s.logger.Info("item added",
			zap.String("owner_id", ownerID),
			zap.Stringer("item_id", item.ID),
			zap.Stringer("farm_waste_id", farmWasteID),
			zap.String("unit", item.UnitPrice.Unit),
			zap.Int64("quantity", item.Quantity))

		return nil
	})
}

func (s *Cart) UpdateQuantity(ctx context.Context, ownerID string, itemID uuid.UUID, quantity int64) (domain.Cart, error) {
	return s.mutate(ctx, ownerID, "update quantity", func(repos port.Repositories, cart *domain.Cart) error {
		item, err := cart.UpdateQuantity(itemID, quantity)
		if err != nil {
			return fmt.Errorf("cart.UpdateQuantity: %w", err)
		}

		if err := repos.Carts.SaveItem(ctx, ownerID, item); err != nil {
			return fmt.Errorf("repos.Carts.SaveItem: %w", err)
		}

		s.logger.Info("quantity updated",
			zap.String("owner_id", ownerID),
			zap.Stringer("item_id", itemID),
			zap.Int64("quantity", quantity))

		return nil
	})
}

func (s *Cart) RemoveItem(ctx context.Context, ownerID string, itemID uuid.UUID) (domain.Cart, error) {
	return s.mutate(ctx, ownerID, "remove item", func(repos port.Repositories, cart *domain.Cart) error {
		if _, err := cart.RemoveItem(itemID); err != nil {
			return fmt.Errorf("cart.RemoveItem: %w", err)
		}

		if _, err := repos.Carts.DeleteItem(ctx, ownerID, itemID); err != nil {
			return fmt.Errorf("repos.Carts.DeleteItem: %w", err)
		}

		s.logger.Info("item removed", zap.String("owner_id", ownerID), zap.Stringer("item_id", itemID))

		return nil
	})
}

// Clear empties the cart without loading it, so a cart whose stored lines no longer
// restore (a line priced in another currency) can still be emptied.
func (s *Cart) Clear(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, domain.NewValidationError(domain.ErrMsgOwnerIDRequired)
	}

	err := s.tx.WithinTx(ctx, func(repos port.Repositories) error {
		cleared, err := repos.Carts.ClearCart(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("repos.Carts.ClearCart: %w", err)
		}

		s.logger.Info("cart cleared", zap.String("owner_id", ownerID), zap.Int64("items", cleared))

		return nil
	})
	if err != nil {
		return domain.Cart{}, err
	}

	return domain.NewCart(ownerID, s.shippingFee.Currency), nil
}

// Summary prices the cart with the configured flat shipping fee.
func (s *Cart) Summary(ctx context.Context, ownerID string) (domain.OrderSummary, error) {
	cart, err := s.GetCart(ctx, ownerID)
	if err != nil {
		return domain.OrderSummary{}, err
	}

	summary, err := cart.Summary(s.shippingFee)
	if err != nil {
		return domain.OrderSummary{}, fmt.Errorf("cart.Summary: %w", err)
	}

	return summary, nil
}

// ItemOwner returns the owner of the cart holding itemID.
func (s *Cart) ItemOwner(ctx context.Context, itemID uuid.UUID) (string, error) {
	var ownerID string
	err := s.tx.WithinTx(ctx, func(repos port.Repositories) error {
		var err error
		ownerID, err = repos.Carts.FindItemOwner(ctx, itemID)
		if err != nil {
			return fmt.Errorf("repos.Carts.FindItemOwner: %w", err)
		}
		return nil
	})

	return ownerID, err
}

func (s *Cart) mutate(ctx context.Context, ownerID, op string, fn func(repos port.Repositories, cart *domain.Cart) error) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, domain.NewValidationError(domain.ErrMsgOwnerIDRequired)
	}

	var result domain.Cart
	err := s.tx.WithinTx(ctx, func(repos port.Repositories) error {
		cart, err := repos.Carts.GetCart(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("repos.Carts.GetCart: %w", err)
		}

		if err := fn(repos, &cart); err != nil {
			return err
		}

		result = cart
		return nil
	})
	if err != nil {
		if domain.IsKind(err, domain.KindValidation) || domain.IsKind(err, domain.KindConfiguration) {
			s.logger.Debug(op+" rejected", zap.String("owner_id", ownerID), zap.Error(err))
		}
		return domain.Cart{}, err
	}

	return result, nil
}
