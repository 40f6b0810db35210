package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dReyko-sff/herreria-backend1/internal/domain"
	"github.com/dReyko-sff/herreria-backend1/internal/service"
	"github.com/dReyko-sff/herreria-backend1/pkg/httputil"
)

// CartHandler handles HTTP requests for cart endpoints.
type CartHandler struct {
	service *service.CartService
	logger  *slog.Logger
}

// NewCartHandler creates a new cart HTTP handler.
func NewCartHandler(svc *service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateCart handles POST /api/carts
func (h *CartHandler) CreateCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.CreateCart(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, cart)
}

// GetCart handles GET /api/carts/{cid}
// The response body is the cart's line items, not the full cart.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.ParseID(w, chi.URLParam(r, "cid"))
	if !ok {
		return
	}

	cart, err := h.service.GetCart(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	items := cart.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	httputil.WriteJSON(w, http.StatusOK, items)
}

// AddProduct handles POST /api/carts/{cid}/product/{pid}
// Returns the full updated cart.
func (h *CartHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	cartID, ok := httputil.ParseID(w, chi.URLParam(r, "cid"))
	if !ok {
		return
	}
	productID, ok := httputil.ParseID(w, chi.URLParam(r, "pid"))
	if !ok {
		return
	}

	cart, err := h.service.AddProduct(r.Context(), cartID, productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, cart)
}
