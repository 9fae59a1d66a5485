package port

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nikolayk812/farmcart/internal/domain"
)

var ErrNotFound = errors.New("not found")

type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)
	SaveItem(ctx context.Context, ownerID string, item domain.CartItem) error
	DeleteItem(ctx context.Context, ownerID string, itemID uuid.UUID) (bool, error)
	ClearCart(ctx context.Context, ownerID string) (int64, error)
	// FindItemOwner resolves the cart an item belongs to.
	FindItemOwner(ctx context.Context, itemID uuid.UUID) (string, error)
}

type FarmWasteRepository interface {
	GetFarmWaste(ctx context.Context, id uuid.UUID) (domain.FarmWaste, error)
	CreateFarmWaste(ctx context.Context, farmWaste domain.FarmWaste) (domain.FarmWaste, error)
	UpdateUnitPrices(ctx context.Context, farmWasteID uuid.UUID, units []domain.UnitPrice) error
}

// Repositories is the set of repositories bound to one transaction.
type Repositories struct {
	Carts      CartRepository
	FarmWastes FarmWasteRepository
}

type Transactor interface {
	WithinTx(ctx context.Context, fn func(repos Repositories) error) error
}
