// Package httpapi serves the cart and farm waste endpoints over gorilla/mux.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/nikolayk812/farmcart/internal/domain"
	"github.com/nikolayk812/farmcart/internal/port"
	"github.com/nikolayk812/farmcart/internal/service"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

type CartService interface {
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)
	AddItem(ctx context.Context, ownerID string, farmWasteID, unitPriceID uuid.UUID, quantity int64) (domain.Cart, error)
	UpdateQuantity(ctx context.Context, ownerID string, itemID uuid.UUID, quantity int64) (domain.Cart, error)
	RemoveItem(ctx context.Context, ownerID string, itemID uuid.UUID) (domain.Cart, error)
	Clear(ctx context.Context, ownerID string) (domain.Cart, error)
	Summary(ctx context.Context, ownerID string) (domain.OrderSummary, error)
	ItemOwner(ctx context.Context, itemID uuid.UUID) (string, error)
}

type CatalogService interface {
	GetFarmWaste(ctx context.Context, id uuid.UUID) (service.FarmWasteView, error)
	CreateFarmWaste(ctx context.Context, farmWaste domain.FarmWaste) (service.FarmWasteView, error)
	UpdateUnitPrices(ctx context.Context, id uuid.UUID, units []domain.UnitPrice) (service.FarmWasteView, error)
}

type Handler struct {
	carts    CartService
	catalog  CatalogService
	currency currency.Unit
	logger   *zap.Logger
}

func NewHandler(carts CartService, catalog CatalogService, cur currency.Unit, logger *zap.Logger) *Handler {
	return &Handler{
		carts:    carts,
		catalog:  catalog,
		currency: cur,
		logger:   logger.Named("http"),
	}
}

func (h *Handler) GetFarmWaste(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	view, err := h.catalog.GetFarmWaste(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, response{Success: true, Data: toFarmWasteDTO(view)})
}

func (h *Handler) CreateFarmWaste(w http.ResponseWriter, r *http.Request) {
	var req createFarmWasteRequest
	if !h.decode(w, r, &req) {
		return
	}

	if !authorized(r.Context(), req.StoreID.String()) {
		h.writeJSON(w, http.StatusForbidden, response{Message: "Access denied"})
		return
	}

	view, err := h.catalog.CreateFarmWaste(r.Context(), domain.FarmWaste{
		StoreID:    req.StoreID,
		Name:       req.Name,
		UnitPrices: toDomainUnitPrices(req.UnitPrices, h.currency),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, response{Success: true, Message: "Farm waste created", Data: toFarmWasteDTO(view)})
}

func (h *Handler) UpdateUnitPrices(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateUnitPricesRequest
	if !h.decode(w, r, &req) {
		return
	}

	current, err := h.catalog.GetFarmWaste(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !authorized(r.Context(), current.StoreID.String()) {
		h.writeJSON(w, http.StatusForbidden, response{Message: "Access denied"})
		return
	}

	view, err := h.catalog.UpdateUnitPrices(r.Context(), id, toDomainUnitPrices(req.UnitPrices, h.currency))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, response{Success: true, Message: "Unit prices updated", Data: toFarmWasteDTO(view)})
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathUser(w, r)
	if !ok {
		return
	}

	cart, err := h.carts.GetCart(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, response{Success: true, Data: toCartDTO(cart)})
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathUser(w, r)
	if !ok {
		return
	}

	summary, err := h.carts.Summary(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, response{Success: true, Data: toSummaryDTO(summary)})
}

func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathUser(w, r)
	if !ok {
		return
	}

	var req addItemRequest
	if !h.decode(w, r, &req) {
		return
	}

	cart, err := h.carts.AddItem(r.Context(), userID, req.FarmWasteID, req.UnitsPriceID, req.Quantity)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, response{Success: true, Message: "Item added to cart", Data: toCartDTO(cart)})
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID, ownerID, ok := h.pathItem(w, r)
	if !ok {
		return
	}

	var req updateQuantityRequest
	if !h.decode(w, r, &req) {
		return
	}

	cart, err := h.carts.UpdateQuantity(r.Context(), ownerID, itemID, req.Quantity)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	item, _ := cart.Item(itemID)
	h.writeJSON(w, http.StatusOK, response{Success: true, Message: "Quantity updated", Data: updatedItemDTO{
		Item: toCartItemDTO(item),
		Cart: toCartDTO(cart),
	}})
}

func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, ownerID, ok := h.pathItem(w, r)
	if !ok {
		return
	}

	cart, err := h.carts.RemoveItem(r.Context(), ownerID, itemID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, response{Success: true, Message: "Item removed from cart", Data: toCartDTO(cart)})
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathUser(w, r)
	if !ok {
		return
	}

	cart, err := h.carts.Clear(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, response{Success: true, Message: "Cart cleared", Data: toCartDTO(cart)})
}

// pathUser returns the {userId} path variable once the caller is allowed to act on it.
func (h *Handler) pathUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := mux.Vars(r)["userId"]
	if !authorized(r.Context(), userID) {
		h.writeJSON(w, http.StatusForbidden, response{Message: "Access denied"})
		return "", false
	}

	return userID, true
}

// pathItem resolves {itemId} and the cart that holds it.
func (h *Handler) pathItem(w http.ResponseWriter, r *http.Request) (uuid.UUID, string, bool) {
	itemID, ok := h.pathUUID(w, r, "itemId")
	if !ok {
		return uuid.Nil, "", false
	}

	ownerID, err := h.carts.ItemOwner(r.Context(), itemID)
	if err != nil {
		h.writeError(w, r, err)
		return uuid.Nil, "", false
	}

	if !authorized(r.Context(), ownerID) {
		h.writeJSON(w, http.StatusForbidden, response{Message: "Access denied"})
		return uuid.Nil, "", false
	}

	return itemID, ownerID, true
}

func (h *Handler) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, response{Message: "Invalid " + name})
		return uuid.Nil, false
	}

	return id, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeJSON(w, http.StatusBadRequest, response{Message: "Invalid input"})
		return false
	}

	return true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.Error

	switch {
	case errors.As(err, &domainErr) && domainErr.Kind == domain.KindConfiguration:
		h.writeJSON(w, http.StatusUnprocessableEntity, response{Message: domainErr.Message})
	case errors.As(err, &domainErr):
		h.writeJSON(w, http.StatusBadRequest, response{Message: domainErr.Message})
	case errors.Is(err, port.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, response{Message: "Not found"})
	default:
		h.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, response{Message: "Internal server error"})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("encode response", zap.Error(err))
	}
}
