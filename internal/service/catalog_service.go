package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/farmcart/internal/domain"
	"github.com/nikolayk812/farmcart/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// FarmWasteView is a product prepared for display.
type FarmWasteView struct {
	domain.FarmWaste

	TotalStockInBaseUnits decimal.Decimal
	DefaultUnit           *domain.UnitPrice
	DisplayUnits          []domain.UnitPrice
	// UnitsProblem is set when the unit configuration is malformed; stock is then zero.
	UnitsProblem string
}

type Catalog struct {
	farmWastes port.FarmWasteRepository
	logger     *zap.Logger
}

func NewCatalog(farmWastes port.FarmWasteRepository, logger *zap.Logger) *Catalog {
	return &Catalog{
		farmWastes: farmWastes,
		logger:     logger.Named("catalog"),
	}
}

func (s *Catalog) GetFarmWaste(ctx context.Context, id uuid.UUID) (FarmWasteView, error) {
	farmWaste, err := s.farmWastes.GetFarmWaste(ctx, id)
	if err != nil {
		return FarmWasteView{}, fmt.Errorf("farmWastes.GetFarmWaste: %w", err)
	}

	return NewFarmWasteView(farmWaste), nil
}

func (s *Catalog) CreateFarmWaste(ctx context.Context, farmWaste domain.FarmWaste) (FarmWasteView, error) {
	created, err := s.farmWastes.CreateFarmWaste(ctx, farmWaste)
	if err != nil {
		return FarmWasteView{}, fmt.Errorf("farmWastes.CreateFarmWaste: %w", err)
	}

	s.logger.Info("farm waste created",
		zap.Stringer("farm_waste_id", created.ID),
		zap.Stringer("store_id", created.StoreID),
		zap.Int("units", len(created.UnitPrices)))

	return NewFarmWasteView(created), nil
}

func (s *Catalog) UpdateUnitPrices(ctx context.Context, id uuid.UUID, units []domain.UnitPrice) (FarmWasteView, error) {
	if err := s.farmWastes.UpdateUnitPrices(ctx, id, units); err != nil {
		return FarmWasteView{}, fmt.Errorf("farmWastes.UpdateUnitPrices: %w", err)
	}

	s.logger.Info("unit prices updated", zap.Stringer("farm_waste_id", id), zap.Int("units", len(units)))

	return s.GetFarmWaste(ctx, id)
}

func NewFarmWasteView(farmWaste domain.FarmWaste) FarmWasteView {
	view := FarmWasteView{
		FarmWaste:    farmWaste,
		DisplayUnits: domain.SortUnitsForDisplay(farmWaste.UnitPrices),
	}

	if unit, ok := domain.DefaultUnit(farmWaste.UnitPrices); ok {
		view.DefaultUnit = &unit
	}

	total, err := domain.TotalStockInBaseUnits(farmWaste.UnitPrices)
	if err != nil {
		view.UnitsProblem = err.Error()
	}
	view.TotalStockInBaseUnits = total

	return view
}
