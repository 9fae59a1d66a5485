package service_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/nikolayk812/farmcart/internal/domain"
	"github.com/nikolayk812/farmcart/internal/port"
	"github.com/nikolayk812/farmcart/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
	"golang.org/x/text/currency"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func idr(amount int64) domain.Money {
	return domain.Money{Amount: decimal.NewFromInt(amount), Currency: currency.IDR}
}

func seedFarmWaste(t *testing.T, store *memStore) domain.FarmWaste {
	t.Helper()

	f, err := store.farmWasteRepo().CreateFarmWaste(t.Context(), domain.FarmWaste{
		StoreID: uuid.New(),
		Name:    gofakeit.ProductName(),
		UnitPrices: []domain.UnitPrice{
			{
				Unit:         "ton",
				PricePerUnit: idr(900_000),
				Stock:        decimal.NewNullDecimal(decimal.NewFromInt(2)),
				EqualWith:    decimal.NewFromInt(1000),
			},
			{
				Unit:         "kg",
				PricePerUnit: idr(1000),
				IsBaseUnit:   true,
				Stock:        decimal.NewNullDecimal(decimal.NewFromInt(100)),
				EqualWith:    decimal.NewFromInt(1),
			},
		},
	})
	require.NoError(t, err)

	return f
}

func newCartService(t *testing.T, store *memStore) *service.Cart {
	return service.NewCart(store, currency.IDR, decimal.NewFromInt(15_000), zaptest.NewLogger(t))
}

func TestCart_AddItemMergesAndPersists(t *testing.T) {
	store := newMemStore()
	product := seedFarmWaste(t, store)
	ton := product.UnitPrices[0]
	svc := newCartService(t, store)
	ownerID := gofakeit.UUID()

	_, err := svc.AddItem(t.Context(), ownerID, product.ID, ton.ID, 1)
	require.NoError(t, err)

	cart, err := svc.AddItem(t.Context(), ownerID, product.ID, ton.ID, 2)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.EqualValues(t, 3, cart.Items[0].Quantity)
	assert.True(t, idr(2_700_000).Equal(cart.TotalPrice))

	stored, err := svc.GetCart(t.Context(), ownerID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.EqualValues(t, 3, stored.Items[0].Quantity)
	assert.True(t, idr(2_700_000).Equal(stored.TotalPrice))
}

func TestCart_AddItemErrors(t *testing.T) {
	store := newMemStore()
	product := seedFarmWaste(t, store)
	ton := product.UnitPrices[0]
	svc := newCartService(t, store)

	tests := []struct {
		name        string
		ownerID     string
		farmWasteID uuid.UUID
		unitID      uuid.UUID
		quantity    int64
		wantKind    *domain.ErrorKind
		wantIs      error
	}{
		{
			name:        "empty owner",
			ownerID:     "",
			farmWasteID: product.ID,
			unitID:      ton.ID,
			quantity:    1,
			wantKind:    ptr(domain.KindValidation),
		},
		{
			name:        "unknown farm waste",
			ownerID:     gofakeit.UUID(),
			farmWasteID: uuid.New(),
			unitID:      ton.ID,
			quantity:    1,
			wantIs:      port.ErrNotFound,
		},
		{
			name:        "unknown unit",
			ownerID:     gofakeit.UUID(),
			farmWasteID: product.ID,
			unitID:      uuid.New(),
			quantity:    1,
			wantKind:    ptr(domain.KindValidation),
		},
		{
			name:        "insufficient stock",
			ownerID:     gofakeit.UUID(),
			farmWasteID: product.ID,
			unitID:      ton.ID,
			quantity:    3,
			wantKind:    ptr(domain.KindValidation),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddItem(t.Context(), tt.ownerID, tt.farmWasteID, tt.unitID, tt.quantity)
			require.Error(t, err)
			if tt.wantKind != nil {
				assert.True(t, domain.IsKind(err, *tt.wantKind), err.Error())
			}
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			assert.Empty(t, store.items[tt.ownerID])
		})
	}
}

func TestCart_FailedSaveLeavesCartUnchanged(t *testing.T) {
	store := newMemStore()
	product := seedFarmWaste(t, store)
	svc := newCartService(t, store)
	ownerID := gofakeit.UUID()

	_, err := svc.AddItem(t.Context(), ownerID, product.ID, product.UnitPrices[1].ID, 4)
	require.NoError(t, err)

	store.failSave = assert.AnError
	_, err = svc.AddItem(t.Context(), ownerID, product.ID, product.UnitPrices[0].ID, 1)
	require.ErrorIs(t, err, assert.AnError)

	cart, err := svc.GetCart(t.Context(), ownerID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.True(t, idr(4000).Equal(cart.TotalPrice))
}

func TestCart_UpdateRemoveClear(t *testing.T) {
	store := newMemStore()
	product := seedFarmWaste(t, store)
	svc := newCartService(t, store)
	ownerID := gofakeit.UUID()
	ctx := t.Context()

	cart, err := svc.AddItem(ctx, ownerID, product.ID, product.UnitPrices[1].ID, 4)
	require.NoError(t, err)
	kgItem := cart.Items[0]

	cart, err = svc.AddItem(ctx, ownerID, product.ID, product.UnitPrices[0].ID, 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)

	cart, err = svc.UpdateQuantity(ctx, ownerID, kgItem.ID, 10)
	require.NoError(t, err)
	assert.True(t, idr(910_000).Equal(cart.TotalPrice))

	_, err = svc.UpdateQuantity(ctx, ownerID, kgItem.ID, 0)
	require.ErrorContains(t, err, domain.ErrMsgQuantityPositive)

	owner, err := svc.ItemOwner(ctx, kgItem.ID)
	require.NoError(t, err)
	assert.Equal(t, ownerID, owner)

	_, err = svc.RemoveItem(ctx, ownerID, uuid.New())
	require.ErrorContains(t, err, domain.ErrMsgItemNotInCart)

	cart, err = svc.RemoveItem(ctx, ownerID, kgItem.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.True(t, idr(900_000).Equal(cart.TotalPrice))

	summary, err := svc.Summary(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.ItemCount)
	assert.True(t, idr(915_000).Equal(summary.Total))

	cart, err = svc.Clear(ctx, ownerID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.True(t, idr(0).Equal(cart.TotalPrice))

	_, err = svc.ItemOwner(ctx, kgItem.ID)
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestCatalog(t *testing.T) {
	store := newMemStore()
	product := seedFarmWaste(t, store)
	catalog := service.NewCatalog(store.farmWasteRepo(), zaptest.NewLogger(t))

	view, err := catalog.GetFarmWaste(t.Context(), product.ID)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(2100).Equal(view.TotalStockInBaseUnits))
	require.NotNil(t, view.DefaultUnit)
	assert.Equal(t, "kg", view.DefaultUnit.Unit)
	assert.Equal(t, "kg", view.DisplayUnits[0].Unit)
	assert.Equal(t, "ton", view.UnitPrices[0].Unit)
	assert.Empty(t, view.UnitsProblem)

	_, err = catalog.UpdateUnitPrices(t.Context(), product.ID, product.UnitPrices[:1])
	require.ErrorContains(t, err, domain.ErrMsgNoBaseUnit)

	_, err = catalog.GetFarmWaste(t.Context(), uuid.New())
	require.ErrorIs(t, err, port.ErrNotFound)
}

func TestNewFarmWasteView_MalformedUnits(t *testing.T) {
	units := []domain.UnitPrice{
		{ID: uuid.New(), Unit: "sack", PricePerUnit: idr(5), EqualWith: decimal.NewFromInt(50)},
		{ID: uuid.New(), Unit: "ton", PricePerUnit: idr(9), EqualWith: decimal.NewFromInt(1000)},
	}

	view := service.NewFarmWasteView(domain.FarmWaste{ID: uuid.New(), Name: "husk", UnitPrices: units})

	assert.Equal(t, domain.ErrMsgNoBaseUnit, view.UnitsProblem)
	assert.True(t, view.TotalStockInBaseUnits.IsZero())
	require.NotNil(t, view.DefaultUnit)
	assert.Equal(t, "sack", view.DefaultUnit.Unit)
}

func ptr[T any](v T) *T {
	return &v
}

func TestCart_ClearCartWithForeignCurrencyLine(t *testing.T) {
	store := newMemStore()
	product := seedFarmWaste(t, store)
	svc := newCartService(t, store)
	ownerID := gofakeit.UUID()

	kg := product.UnitPrices[1]
	kg.PricePerUnit.Currency = currency.USD
	store.items[ownerID] = []domain.CartItem{{
		ID:          uuid.New(),
		FarmWasteID: product.ID,
		StoreID:     product.StoreID,
		UnitPrice:   kg,
		Quantity:    1,
	}}

	_, err := svc.GetCart(t.Context(), ownerID)
	require.ErrorContains(t, err, domain.ErrMsgCurrencyMismatch)

	cart, err := svc.Clear(t.Context(), ownerID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, currency.IDR, cart.Currency())
	assert.True(t, idr(0).Equal(cart.TotalPrice))
	assert.Empty(t, store.items[ownerID])

	cart, err = svc.GetCart(t.Context(), ownerID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}
