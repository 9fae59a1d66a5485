package service_test

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"
	"github.com/nikolayk812/farmcart/internal/domain"
	"github.com/nikolayk812/farmcart/internal/port"
	"golang.org/x/text/currency"
)

// memStore is an in-memory port.Transactor. A failing transaction restores the previous state.
type memStore struct {
	items      map[string][]domain.CartItem
	farmWastes map[uuid.UUID]domain.FarmWaste
	failSave   error
}

func newMemStore() *memStore {
	return &memStore{
		items:      make(map[string][]domain.CartItem),
		farmWastes: make(map[uuid.UUID]domain.FarmWaste),
	}
}

func (m *memStore) WithinTx(_ context.Context, fn func(repos port.Repositories) error) error {
	itemsBefore := make(map[string][]domain.CartItem, len(m.items))
	for owner, items := range m.items {
		itemsBefore[owner] = slices.Clone(items)
	}
	farmWastesBefore := maps.Clone(m.farmWastes)

	err := fn(port.Repositories{Carts: memCarts{m}, FarmWastes: memFarmWastes{m}})
	if err != nil {
		m.items = itemsBefore
		m.farmWastes = farmWastesBefore
	}

	return err
}

type memCarts struct{ m *memStore }

func (r memCarts) GetCart(_ context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}
	return domain.RestoreCart(ownerID, currency.IDR, slices.Clone(r.m.items[ownerID]))
}

func (r memCarts) SaveItem(_ context.Context, ownerID string, item domain.CartItem) error {
	if r.m.failSave != nil {
		return r.m.failSave
	}

	items := r.m.items[ownerID]
	idx := slices.IndexFunc(items, func(i domain.CartItem) bool { return i.UnitPrice.ID == item.UnitPrice.ID })
	if idx >= 0 {
		items[idx].Quantity = item.Quantity
	} else {
		items = append(items, item)
	}
	r.m.items[ownerID] = items

	return nil
}

func (r memCarts) DeleteItem(_ context.Context, ownerID string, itemID uuid.UUID) (bool, error) {
	items := r.m.items[ownerID]
	idx := slices.IndexFunc(items, func(i domain.CartItem) bool { return i.ID == itemID })
	if idx < 0 {
		return false, nil
	}
	r.m.items[ownerID] = slices.Delete(items, idx, idx+1)
	return true, nil
}

func (r memCarts) ClearCart(_ context.Context, ownerID string) (int64, error) {
	n := int64(len(r.m.items[ownerID]))
	delete(r.m.items, ownerID)
	return n, nil
}

func (r memCarts) FindItemOwner(_ context.Context, itemID uuid.UUID) (string, error) {
	for owner, items := range r.m.items {
		for _, item := range items {
			if item.ID == itemID {
				return owner, nil
			}
		}
	}
	return "", fmt.Errorf("cart item[%s]: %w", itemID, port.ErrNotFound)
}

type memFarmWastes struct{ m *memStore }

func (r memFarmWastes) GetFarmWaste(_ context.Context, id uuid.UUID) (domain.FarmWaste, error) {
	f, ok := r.m.farmWastes[id]
	if !ok {
		return domain.FarmWaste{}, fmt.Errorf("farm waste[%s]: %w", id, port.ErrNotFound)
	}
	return f, nil
}

func (r memFarmWastes) CreateFarmWaste(_ context.Context, f domain.FarmWaste) (domain.FarmWaste, error) {
	if err := f.Validate(); err != nil {
		return domain.FarmWaste{}, fmt.Errorf("farmWaste.Validate: %w", err)
	}
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	for i := range f.UnitPrices {
		if f.UnitPrices[i].ID == uuid.Nil {
			f.UnitPrices[i].ID = uuid.New()
		}
	}
	r.m.farmWastes[f.ID] = f
	return f, nil
}

func (r memFarmWastes) UpdateUnitPrices(_ context.Context, id uuid.UUID, units []domain.UnitPrice) error {
	if err := domain.ValidateUnitPrices(units); err != nil {
		return fmt.Errorf("domain.ValidateUnitPrices: %w", err)
	}
	f, ok := r.m.farmWastes[id]
	if !ok {
		return fmt.Errorf("farm waste[%s]: %w", id, port.ErrNotFound)
	}
	f.UnitPrices = units
	r.m.farmWastes[id] = f
	return nil
}

// farmWasteRepo exposes the farm waste side of memStore to the catalog service.
func (m *memStore) farmWasteRepo() port.FarmWasteRepository {
	return memFarmWastes{m}
}
