package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func NewRouter(h *Handler, jwtSecret []byte) *mux.Router {
	router := mux.NewRouter()
	router.Use(h.logRequests)

	// Public routes
	router.HandleFunc("/farm-wastes/{id}", h.GetFarmWaste).Methods(http.MethodGet)

	protected := router.PathPrefix("/").Subrouter()
	protected.Use(Authenticate(jwtSecret))

	protected.HandleFunc("/farm-wastes", h.CreateFarmWaste).Methods(http.MethodPost)
	protected.HandleFunc("/farm-wastes/{id}/unit-prices", h.UpdateUnitPrices).Methods(http.MethodPut)

	// Cart routes
	protected.HandleFunc("/cart/user/{userId}", h.GetCart).Methods(http.MethodGet)
	protected.HandleFunc("/cart/user/{userId}/summary", h.GetSummary).Methods(http.MethodGet)
	protected.HandleFunc("/cart/user/{userId}/add", h.AddItem).Methods(http.MethodPost)
	protected.HandleFunc("/cart/user/{userId}/clear", h.ClearCart).Methods(http.MethodDelete)
	protected.HandleFunc("/cart/item/{itemId}", h.UpdateItem).Methods(http.MethodPut)
	protected.HandleFunc("/cart/item/{itemId}", h.DeleteItem).Methods(http.MethodDelete)

	return router
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		h.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)))
	})
}
