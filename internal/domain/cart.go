package domain

import (
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Cart is a user's mutable set of line items. TotalPrice always equals the sum of
// the items' TotalPriceItem; every method that rejects an operation leaves the cart as it was.
type Cart struct {
	OwnerID    string
	Items      []CartItem
	TotalPrice Money
}

// CartItem is one product + unit selection. Quantity is expressed in UnitPrice.Unit.
type CartItem struct {
	ID             uuid.UUID
	FarmWasteID    uuid.UUID
	StoreID        uuid.UUID
	UnitPrice      UnitPrice
	Quantity       int64
	TotalPriceItem Money

	CreatedAt time.Time
}

func NewCart(ownerID string, cur currency.Unit) Cart {
	return Cart{
		OwnerID:    ownerID,
		TotalPrice: ZeroMoney(cur),
	}
}

// RestoreCart rebuilds a cart from stored items, deriving every total.
func RestoreCart(ownerID string, cur currency.Unit, items []CartItem) (Cart, error) {
	cart := NewCart(ownerID, cur)

	for _, item := range items {
		if item.UnitPrice.PricePerUnit.Currency != cur {
			return Cart{}, NewValidationErrorf("%s: item %s is priced in %s, cart in %s",
				ErrMsgCurrencyMismatch, item.ID, item.UnitPrice.PricePerUnit.Currency, cur)
		}
		item.TotalPriceItem = lineTotal(item.UnitPrice, item.Quantity)
		cart.Items = append(cart.Items, item)
	}

	cart.recalculate()

	return cart, nil
}

func (c Cart) Currency() currency.Unit {
	return c.TotalPrice.Currency
}

func (c Cart) Item(itemID uuid.UUID) (CartItem, bool) {
	idx := c.indexOf(itemID)
	if idx < 0 {
		return CartItem{}, false
	}

	return c.Items[idx], true
}

// AddItem puts quantity of unit into the cart. Adding a product + unit already in the cart
// merges into that line; the stock check applies to the requested quantity.
func (c *Cart) AddItem(product FarmWaste, unit UnitPrice, quantity int64) (CartItem, error) {
	if quantity < 1 {
		return CartItem{}, NewValidationError(ErrMsgQuantityPositive)
	}
	if product.ID == uuid.Nil {
		return CartItem{}, NewValidationError(ErrMsgProductIDRequired)
	}
	if err := ValidateUnitPrices(product.UnitPrices); err != nil {
		return CartItem{}, err
	}

	current, ok := product.UnitPrice(unit.ID)
	if !ok {
		return CartItem{}, NewValidationErrorf("%s: %s", ErrMsgUnitNotInProduct, unit.ID)
	}
	if err := checkStock(current, quantity); err != nil {
		return CartItem{}, err
	}
	if current.PricePerUnit.Currency != c.Currency() {
		return CartItem{}, NewValidationErrorf("%s: unit priced in %s, cart in %s",
			ErrMsgCurrencyMismatch, current.PricePerUnit.Currency, c.Currency())
	}

	for i, existing := range c.Items {
		if existing.FarmWasteID != product.ID || existing.UnitPrice.ID != current.ID {
			continue
		}

		if quantity > math.MaxInt64-existing.Quantity {
			return CartItem{}, NewValidationErrorf("%s: %d more on top of %d", ErrMsgQuantityTooLarge, quantity, existing.Quantity)
		}

		existing.UnitPrice = current
		existing.Quantity += quantity
		existing.TotalPriceItem = lineTotal(current, existing.Quantity)

		c.Items[i] = existing
		c.recalculate()

		return existing, nil
	}

	item := CartItem{
		ID:             uuid.New(),
		FarmWasteID:    product.ID,
		StoreID:        product.StoreID,
		UnitPrice:      current,
		Quantity:       quantity,
		TotalPriceItem: lineTotal(current, quantity),
		CreatedAt:      time.Now().UTC(),
	}

	c.Items = append(c.Items, item)
	c.recalculate()

	return item, nil
}

func (c *Cart) UpdateQuantity(itemID uuid.UUID, newQuantity int64) (CartItem, error) {
	if newQuantity < 1 {
		return CartItem{}, NewValidationError(ErrMsgQuantityPositive)
	}

	idx := c.indexOf(itemID)
	if idx < 0 {
		return CartItem{}, NewValidationErrorf("%s: %s", ErrMsgItemNotInCart, itemID)
	}

	item := c.Items[idx]
	if err := checkStock(item.UnitPrice, newQuantity); err != nil {
		return CartItem{}, err
	}

	item.Quantity = newQuantity
	item.TotalPriceItem = lineTotal(item.UnitPrice, newQuantity)

	c.Items[idx] = item
	c.recalculate()

	return item, nil
}

func (c *Cart) RemoveItem(itemID uuid.UUID) (CartItem, error) {
	idx := c.indexOf(itemID)
	if idx < 0 {
		return CartItem{}, NewValidationErrorf("%s: %s", ErrMsgItemNotInCart, itemID)
	}

	removed := c.Items[idx]
	c.Items = slices.Delete(c.Items, idx, idx+1)
	c.recalculate()

	return removed, nil
}

func (c *Cart) Clear() {
	c.Items = nil
	c.recalculate()
}

// Subtotal is ComputeSubtotal(c).
func (c Cart) Subtotal() Money {
	return ComputeSubtotal(c)
}

// ComputeSubtotal sums the line totals of the cart.
func ComputeSubtotal(cart Cart) Money {
	sum := decimal.Zero
	for _, item := range cart.Items {
		sum = sum.Add(item.TotalPriceItem.Amount)
	}

	return Money{Amount: sum, Currency: cart.Currency()}
}

// ComputeOrderTotal adds a flat shipping fee to a subtotal.
func ComputeOrderTotal(subtotal, shippingFlatFee Money) (Money, error) {
	if shippingFlatFee.Amount.IsNegative() {
		return Money{}, NewValidationError("shipping fee cannot be negative")
	}

	total, err := subtotal.Add(shippingFlatFee)
	if err != nil {
		return Money{}, NewValidationErrorf("%s: %v", ErrMsgCurrencyMismatch, err)
	}

	return total, nil
}

func (c *Cart) recalculate() {
	c.TotalPrice = ComputeSubtotal(*c)
}

func (c Cart) indexOf(itemID uuid.UUID) int {
	return slices.IndexFunc(c.Items, func(item CartItem) bool {
		return item.ID == itemID
	})
}

func lineTotal(unit UnitPrice, quantity int64) Money {
	return unit.PricePerUnit.Times(quantity)
}

func checkStock(unit UnitPrice, quantity int64) error {
	if !unit.Stock.Valid {
		return nil
	}

	if decimal.NewFromInt(quantity).GreaterThan(unit.Stock.Decimal) {
		return NewValidationErrorf("%s: requested %d %s, available %s",
			ErrMsgInsufficientStock, quantity, unit.Unit, unit.Stock.Decimal)
	}

	return nil
}
