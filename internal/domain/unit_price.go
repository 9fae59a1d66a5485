package domain

import (
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnitPrice is one sellable unit of a farm waste, e.g. "kg" or "ton".
// EqualWith is how many base units one of this unit equals; it is ignored for the base unit.
type UnitPrice struct {
	ID           uuid.UUID
	Unit         string
	PricePerUnit Money
	IsBaseUnit   bool
	Stock        decimal.NullDecimal
	EqualWith    decimal.Decimal
}

// ToBaseQuantity converts a quantity expressed in unit into base units.
func ToBaseQuantity(unit UnitPrice, quantity decimal.Decimal) decimal.Decimal {
	if unit.IsBaseUnit {
		return quantity
	}

	return quantity.Mul(unit.EqualWith)
}

// PricePerBaseUnit is the unit's price spread over the base units it contains.
func PricePerBaseUnit(unit UnitPrice) decimal.Decimal {
	baseQty := ToBaseQuantity(unit, decimal.NewFromInt(1))
	if baseQty.IsZero() {
		return decimal.Zero
	}

	return unit.PricePerUnit.Amount.Div(baseQty)
}

// ValidateUnitPrices checks that exactly one entry is the base unit and that every
// other entry converts to it with a positive ratio. An empty set is valid.
func ValidateUnitPrices(units []UnitPrice) error {
	if len(units) == 0 {
		return nil
	}

	baseUnits := 0
	seen := make(map[uuid.UUID]struct{}, len(units))

	for _, u := range units {
		if u.Unit == "" {
			return NewConfigurationError(ErrMsgUnitNameRequired)
		}
		if u.ID != uuid.Nil {
			if _, ok := seen[u.ID]; ok {
				return NewConfigurationErrorf("%s: %s", ErrMsgDuplicateUnitPrice, u.ID)
			}
			seen[u.ID] = struct{}{}
		}

		if u.IsBaseUnit {
			baseUnits++
		} else if !u.EqualWith.IsPositive() {
			return NewConfigurationErrorf("%s: unit %q has %s", ErrMsgEqualWithPositive, u.Unit, u.EqualWith)
		}

		if u.Stock.Valid && u.Stock.Decimal.IsNegative() {
			return NewConfigurationErrorf("%s: unit %q", ErrMsgNegativeStock, u.Unit)
		}
		if u.PricePerUnit.Amount.IsNegative() {
			return NewConfigurationErrorf("%s: unit %q", ErrMsgNegativePrice, u.Unit)
		}
	}

	switch {
	case baseUnits == 0:
		return NewConfigurationError(ErrMsgNoBaseUnit)
	case baseUnits > 1:
		return NewConfigurationError(ErrMsgMultipleBaseUnits)
	}

	return nil
}

// TotalStockInBaseUnits sums the stock of every unit expressed in base units.
// Units without a stock figure count as zero.
func TotalStockInBaseUnits(units []UnitPrice) (decimal.Decimal, error) {
	if len(units) == 0 {
		return decimal.Zero, nil
	}

	if err := ValidateUnitPrices(units); err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, u := range units {
		if !u.Stock.Valid {
			continue
		}
		total = total.Add(ToBaseQuantity(u, u.Stock.Decimal))
	}

	return total, nil
}

// DefaultUnit picks the unit shown first: the base unit, or the first entry when the
// data has none. The fallback does not make the set valid.
func DefaultUnit(units []UnitPrice) (UnitPrice, bool) {
	if len(units) == 0 {
		return UnitPrice{}, false
	}

	for _, u := range units {
		if u.IsBaseUnit {
			return u, true
		}
	}

	return units[0], true
}

// SortUnitsForDisplay returns a copy with the base unit first and the rest in their original order.
func SortUnitsForDisplay(units []UnitPrice) []UnitPrice {
	sorted := slices.Clone(units)

	slices.SortStableFunc(sorted, func(a, b UnitPrice) int {
		switch {
		case a.IsBaseUnit && !b.IsBaseUnit:
			return -1
		case !a.IsBaseUnit && b.IsBaseUnit:
			return 1
		default:
			return 0
		}
	})

	return sorted
}

func findUnitPrice(units []UnitPrice, id uuid.UUID) (UnitPrice, bool) {
	for _, u := range units {
		if u.ID == id {
			return u, true
		}
	}

	return UnitPrice{}, false
}
