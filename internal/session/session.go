// Package session holds the signed-in user's state: token, user ID and the last known cart.
// A Session is opened explicitly and cleared on Close; it is not safe for concurrent use.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/farmcart/internal/domain"
	"go.uber.org/zap"
)

var ErrClosed = errors.New("session is closed")

type CartService interface {
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)
	AddItem(ctx context.Context, ownerID string, farmWasteID, unitPriceID uuid.UUID, quantity int64) (domain.Cart, error)
	UpdateQuantity(ctx context.Context, ownerID string, itemID uuid.UUID, quantity int64) (domain.Cart, error)
	RemoveItem(ctx context.Context, ownerID string, itemID uuid.UUID) (domain.Cart, error)
	Clear(ctx context.Context, ownerID string) (domain.Cart, error)
	Summary(ctx context.Context, ownerID string) (domain.OrderSummary, error)
}

type Session struct {
	carts  CartService
	logger *zap.Logger

	token  string
	userID string
	cart   domain.Cart
	open   bool
}

// Open starts a session for userID and loads the user's cart.
func Open(ctx context.Context, carts CartService, userID, token string, logger *zap.Logger) (*Session, error) {
	if userID == "" {
		return nil, domain.NewValidationError(domain.ErrMsgOwnerIDRequired)
	}

	cart, err := carts.GetCart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("carts.GetCart: %w", err)
	}

	s := &Session{
		carts:  carts,
		logger: logger.With(zap.String("user_id", userID)),
		token:  token,
		userID: userID,
		cart:   cart,
		open:   true,
	}
	s.logger.Debug("session opened", zap.Int("items", len(cart.Items)))

	return s, nil
}

func (s *Session) UserID() string { return s.userID }

func (s *Session) Token() string { return s.token }

// Cart returns the cart as of the last successful operation.
func (s *Session) Cart() domain.Cart { return s.cart }

func (s *Session) IsOpen() bool { return s.open }

func (s *Session) Refresh(ctx context.Context) error {
	return s.apply(func() (domain.Cart, error) {
		return s.carts.GetCart(ctx, s.userID)
	})
}

func (s *Session) AddItem(ctx context.Context, farmWasteID, unitPriceID uuid.UUID, quantity int64) error {
	return s.apply(func() (domain.Cart, error) {
		return s.carts.AddItem(ctx, s.userID, farmWasteID, unitPriceID, quantity)
	})
}

func (s *Session) UpdateQuantity(ctx context.Context, itemID uuid.UUID, quantity int64) error {
	return s.apply(func() (domain.Cart, error) {
		return s.carts.UpdateQuantity(ctx, s.userID, itemID, quantity)
	})
}

func (s *Session) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	return s.apply(func() (domain.Cart, error) {
		return s.carts.RemoveItem(ctx, s.userID, itemID)
	})
}

func (s *Session) ClearCart(ctx context.Context) error {
	return s.apply(func() (domain.Cart, error) {
		return s.carts.Clear(ctx, s.userID)
	})
}

func (s *Session) Summary(ctx context.Context) (domain.OrderSummary, error) {
	if !s.open {
		return domain.OrderSummary{}, ErrClosed
	}

	return s.carts.Summary(ctx, s.userID)
}

// Close logs the user out and drops all held state.
func (s *Session) Close() {
	if !s.open {
		return
	}

	s.logger.Debug("session closed")

	s.open = false
	s.token = ""
	s.userID = ""
	s.cart = domain.Cart{}
}

// apply replaces the held cart only when the remote operation succeeded.
func (s *Session) apply(op func() (domain.Cart, error)) error {
	if !s.open {
		return ErrClosed
	}

	cart, err := op()
	if err != nil {
		return err
	}

	s.cart = cart
	return nil
}
