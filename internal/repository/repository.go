package repository

import (
	"context"

	"github.com/dReyko-sff/herreria-backend1/internal/domain"
)

// ProductPatch is a partial-record overlay for product updates. Every non-nil
// field replaces the corresponding field of the stored record; nil fields are
// untouched. The identifier is never part of the overlay.
type ProductPatch struct {
	Title       *string
	Description *string
	Price       *float64
	Stock       *int
	Category    *string
}

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	// List returns the entire product collection.
	List(ctx context.Context) ([]domain.Product, error)

	// GetByID retrieves a product by its identifier.
	GetByID(ctx context.Context, id int) (*domain.Product, error)

	// Create assigns a new identifier to the product, appends it to the
	// collection, and persists. Returns the created record.
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)

	// Update applies the patch to the product with the given identifier and
	// persists. Returns the updated record.
	Update(ctx context.Context, id int, patch ProductPatch) (*domain.Product, error)

	// Delete removes the product with the given identifier and persists.
	Delete(ctx context.Context, id int) error
}

// CartRepository defines the interface for cart persistence operations.
// Carts support creation and line-item mutation only; there is no delete.
type CartRepository interface {
	// List returns the entire cart collection.
	List(ctx context.Context) ([]domain.Cart, error)

	// Create appends a new empty cart to the collection and persists.
	Create(ctx context.Context) (*domain.Cart, error)

	// GetByID retrieves a cart by its identifier.
	GetByID(ctx context.Context, id int) (*domain.Cart, error)

	// AddProduct adds one unit of the product to the cart and persists.
	// Returns the updated cart.
	AddProduct(ctx context.Context, cartID, productID int) (*domain.Cart, error)
}
