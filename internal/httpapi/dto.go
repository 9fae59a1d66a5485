package httpapi

import (
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/farmcart/internal/domain"
	"github.com/nikolayk812/farmcart/internal/service"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type unitPriceDTO struct {
	ID           uuid.UUID        `json:"id"`
	Unit         string           `json:"unit"`
	PricePerUnit decimal.Decimal  `json:"pricePerUnit"`
	Currency     string           `json:"currency"`
	IsBaseUnit   bool             `json:"isBaseUnit"`
	Stock        *decimal.Decimal `json:"stock,omitempty"`
	EqualWith    decimal.Decimal  `json:"equalWith"`
}

type farmWasteDTO struct {
	ID                    uuid.UUID       `json:"id"`
	StoreID               uuid.UUID       `json:"storeId"`
	Name                  string          `json:"name"`
	UnitPrices            []unitPriceDTO  `json:"unitPrices"`
	DisplayUnits          []unitPriceDTO  `json:"displayUnits"`
	DefaultUnitID         *uuid.UUID      `json:"defaultUnitId,omitempty"`
	TotalStockInBaseUnits decimal.Decimal `json:"totalStockInBaseUnits"`
	UnitsProblem          string          `json:"unitsProblem,omitempty"`
	CreatedAt             time.Time       `json:"createdAt"`
}

type cartItemDTO struct {
	ID             uuid.UUID       `json:"id"`
	FarmWasteID    uuid.UUID       `json:"farmWasteId"`
	StoreID        uuid.UUID       `json:"storeId"`
	UnitPrice      unitPriceDTO    `json:"unitPrice"`
	Quantity       int64           `json:"quantity"`
	TotalPriceItem decimal.Decimal `json:"totalPriceItem"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type cartDTO struct {
	UserID     string          `json:"userId"`
	Items      []cartItemDTO   `json:"items"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Currency   string          `json:"currency"`
}

type updatedItemDTO struct {
	Item cartItemDTO `json:"item"`
	Cart cartDTO     `json:"cart"`
}

type summaryDTO struct {
	ItemCount int             `json:"itemCount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Total     decimal.Decimal `json:"total"`
	Currency  string          `json:"currency"`
}

type addItemRequest struct {
	FarmWasteID  uuid.UUID `json:"farmWasteId"`
	UnitsPriceID uuid.UUID `json:"unitsPriceId"`
	Quantity     int64     `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

type unitPriceRequest struct {
	ID           uuid.UUID        `json:"id"`
	Unit         string           `json:"unit"`
	PricePerUnit decimal.Decimal  `json:"pricePerUnit"`
	IsBaseUnit   bool             `json:"isBaseUnit"`
	Stock        *decimal.Decimal `json:"stock"`
	EqualWith    decimal.Decimal  `json:"equalWith"`
}

type createFarmWasteRequest struct {
	StoreID    uuid.UUID          `json:"storeId"`
	Name       string             `json:"name"`
	UnitPrices []unitPriceRequest `json:"unitPrices"`
}

type updateUnitPricesRequest struct {
	UnitPrices []unitPriceRequest `json:"unitPrices"`
}

func toUnitPriceDTO(u domain.UnitPrice) unitPriceDTO {
	dto := unitPriceDTO{
		ID:           u.ID,
		Unit:         u.Unit,
		PricePerUnit: u.PricePerUnit.Amount,
		Currency:     u.PricePerUnit.Currency.String(),
		IsBaseUnit:   u.IsBaseUnit,
		EqualWith:    u.EqualWith,
	}
	if u.Stock.Valid {
		stock := u.Stock.Decimal
		dto.Stock = &stock
	}

	return dto
}

func toUnitPriceDTOs(units []domain.UnitPrice) []unitPriceDTO {
	dtos := make([]unitPriceDTO, 0, len(units))
	for _, u := range units {
		dtos = append(dtos, toUnitPriceDTO(u))
	}
	return dtos
}

func toFarmWasteDTO(view service.FarmWasteView) farmWasteDTO {
	dto := farmWasteDTO{
		ID:                    view.ID,
		StoreID:               view.StoreID,
		Name:                  view.Name,
		UnitPrices:            toUnitPriceDTOs(view.UnitPrices),
		DisplayUnits:          toUnitPriceDTOs(view.DisplayUnits),
		TotalStockInBaseUnits: view.TotalStockInBaseUnits,
		UnitsProblem:          view.UnitsProblem,
		CreatedAt:             view.CreatedAt,
	}
	if view.DefaultUnit != nil {
		id := view.DefaultUnit.ID
		dto.DefaultUnitID = &id
	}

	return dto
}

func toCartItemDTO(item domain.CartItem) cartItemDTO {
	return cartItemDTO{
		ID:             item.ID,
		FarmWasteID:    item.FarmWasteID,
		StoreID:        item.StoreID,
		UnitPrice:      toUnitPriceDTO(item.UnitPrice),
		Quantity:       item.Quantity,
		TotalPriceItem: item.TotalPriceItem.Amount,
		CreatedAt:      item.CreatedAt,
	}
}

func toCartDTO(cart domain.Cart) cartDTO {
	items := make([]cartItemDTO, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, toCartItemDTO(item))
	}

	return cartDTO{
		UserID:     cart.OwnerID,
		Items:      items,
		TotalPrice: cart.TotalPrice.Amount,
		Currency:   cart.TotalPrice.Currency.String(),
	}
}

func toSummaryDTO(s domain.OrderSummary) summaryDTO {
	return summaryDTO{
		ItemCount: s.ItemCount,
		Subtotal:  s.Subtotal.Amount,
		Shipping:  s.Shipping.Amount,
		Total:     s.Total.Amount,
		Currency:  s.Total.Currency.String(),
	}
}

func toDomainUnitPrices(reqs []unitPriceRequest, cur currency.Unit) []domain.UnitPrice {
	units := make([]domain.UnitPrice, 0, len(reqs))
	for _, r := range reqs {
		u := domain.UnitPrice{
			ID:           r.ID,
			Unit:         r.Unit,
			PricePerUnit: domain.Money{Amount: r.PricePerUnit, Currency: cur},
			IsBaseUnit:   r.IsBaseUnit,
			EqualWith:    r.EqualWith,
		}
		if r.Stock != nil {
			u.Stock = decimal.NewNullDecimal(*r.Stock)
		}
		units = append(units, u)
	}
	return units
}
