package domain

import (
	"time"

	"github.com/google/uuid"
)

// FarmWaste is a listed product. It owns its unit prices exclusively.
type FarmWaste struct {
	ID         uuid.UUID
	StoreID    uuid.UUID
	Name       string
	UnitPrices []UnitPrice

	CreatedAt time.Time
}

func (f FarmWaste) Validate() error {
	if f.Name == "" {
		return NewConfigurationError(ErrMsgProductNameRequired)
	}

	return ValidateUnitPrices(f.UnitPrices)
}

func (f FarmWaste) UnitPrice(id uuid.UUID) (UnitPrice, bool) {
	return findUnitPrice(f.UnitPrices, id)
}
