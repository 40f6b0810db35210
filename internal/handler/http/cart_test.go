package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dReyko-sff/herreria-backend1/internal/domain"
	"github.com/dReyko-sff/herreria-backend1/internal/service"
	apperrors "github.com/dReyko-sff/herreria-backend1/pkg/errors"
)

// ============================================================================
// Mock CartRepository
// ============================================================================

type mockCartRepository struct {
	mock.Mock
}

func (m *mockCartRepository) List(ctx context.Context) ([]domain.Cart, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cart), args.Error(1)
}

func (m *mockCartRepository) Create(ctx context.Context) (*domain.Cart, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *mockCartRepository) GetByID(ctx context.Context, id int) (*domain.Cart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *mockCartRepository) AddProduct(ctx context.Context, cartID, productID int) (*domain.Cart, error) {
	args := m.Called(ctx, cartID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

// ============================================================================
// Test helpers
// ============================================================================

func testCartHandler(repo *mockCartRepository) *CartHandler {
	svc := service.NewCartService(repo, testLogger())
	return NewCartHandler(svc, testLogger())
}

// setupCartRouter creates a chi router matching the production route layout
// for the cart endpoints.
func setupCartRouter(handler *CartHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Route("/api/carts", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Post("/", handler.CreateCart)
		r.Get("/{cid}", handler.GetCart)
		r.Post("/{cid}/product/{pid}", handler.AddProduct)
	})
	return r
}

func sampleCart() *domain.Cart {
	return &domain.Cart{
		ID: 1,
		Items: []domain.CartItem{
			{ProductID: 7, Quantity: 2},
			{ProductID: 9, Quantity: 1},
		},
	}
}

// ============================================================================
// POST /api/carts - CreateCart
// ============================================================================

func TestCreateCart_Success(t *testing.T) {
	repo := new(mockCartRepository)
	router := setupCartRouter(testCartHandler(repo))

	repo.On("Create", mock.Anything).Return(&domain.Cart{ID: 1, Items: []domain.CartItem{}}, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/carts", nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"items":[]}`, rec.Body.String())

	repo.AssertExpectations(t)
}

func TestCreateCart_StorageError(t *testing.T) {
	repo := new(mockCartRepository)
	router := setupCartRouter(testCartHandler(repo))

	repo.On("Create", mock.Anything).Return(nil, apperrors.Storage(assert.AnError))

	rec := doJSON(t, router, http.MethodPost, "/api/carts", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "STORAGE_ERROR")
}

// ============================================================================
// GET /api/carts/{cid} - GetCart
// ============================================================================

func TestGetCart_ReturnsItemsOnly(t *testing.T) {
	repo := new(mockCartRepository)
	router := setupCartRouter(testCartHandler(repo))

	repo.On("GetByID", mock.Anything, 1).Return(sampleCart(), nil)

	rec := doJSON(t, router, http.MethodGet, "/api/carts/1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	// The body is the item sequence, not the full cart object.
	assert.JSONEq(t, `[{"productId":7,"quantity":2},{"productId":9,"quantity":1}]`, rec.Body.String())
}

func TestGetCart_EmptyItemsIsArray(t *testing.T) {
	repo := new(mockCartRepository)
	router := setupCartRouter(testCartHandler(repo))

	repo.On("GetByID", mock.Anything, 1).Return(&domain.Cart{ID: 1}, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/carts/1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetCart_NotFound(t *testing.T) {
	repo := new(mockCartRepository)
	router := setupCartRouter(testCartHandler(repo))

	repo.On("GetByID", mock.Anything, 42).Return(nil, apperrors.NotFound("cart", "42"))

	rec := doJSON(t, router, http.MethodGet, "/api/carts/42", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestGetCart_InvalidID(t *testing.T) {
	repo := new(mockCartRepository)
	router := setupCartRouter(testCartHandler(repo))

	rec := doJSON(t, router, http.MethodGet, "/api/carts/first", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_PARAMETER")
	repo.AssertNotCalled(t, "GetByID")
}

// ============================================================================
// POST /api/carts/{cid}/product/{pid} - AddProduct
// ============================================================================

func TestAddProduct_ReturnsFullCart(t *testing.T) {
	repo := new(mockCartRepository)
	router := setupCartRouter(testCartHandler(repo))

	repo.On("AddProduct", mock.Anything, 1, 7).Return(sampleCart(), nil)

	rec := doJSON(t, router, http.MethodPost, "/api/carts/1/product/7", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var cart domain.Cart
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&cart))
	assert.Equal(t, 1, cart.ID)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 7, cart.Items[0].ProductID)

	repo.AssertExpectations(t)
}

func TestAddProduct_CartNotFound(t *testing.T) {
	repo := new(mockCartRepository)
	router := setupCartRouter(testCartHandler(repo))

	repo.On("AddProduct", mock.Anything, 99, 7).Return(nil, apperrors.NotFound("cart", "99"))

	rec := doJSON(t, router, http.MethodPost, "/api/carts/99/product/7", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddProduct_InvalidProductID(t *testing.T) {
	repo := new(mockCartRepository)
	router := setupCartRouter(testCartHandler(repo))

	rec := doJSON(t, router, http.MethodPost, "/api/carts/1/product/axe", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "AddProduct")
}
