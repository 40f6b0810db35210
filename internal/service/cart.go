package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dReyko-sff/herreria-backend1/internal/domain"
	"github.com/dReyko-sff/herreria-backend1/internal/repository"
)

// CartService implements the business logic for cart operations.
type CartService struct {
	repo   repository.CartRepository
	logger *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(repo repository.CartRepository, logger *slog.Logger) *CartService {
	return &CartService{
		repo:   repo,
		logger: logger,
	}
}

// CreateCart creates a new empty cart.
func (s *CartService) CreateCart(ctx context.Context) (*domain.Cart, error) {
	cart, err := s.repo.Create(ctx)
	if err != nil {
		return nil, fmt.Errorf("create cart: %w", err)
	}

	s.logger.InfoContext(ctx, "cart created", slog.Int("cart_id", cart.ID))

	return cart, nil
}

// GetCart retrieves a cart by its ID.
func (s *CartService) GetCart(ctx context.Context, id int) (*domain.Cart, error) {
	cart, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get cart by id: %w", err)
	}
	return cart, nil
}

// AddProduct adds one unit of the given product to the cart. The product id
// is taken at face value; no lookup against the product collection is made.
func (s *CartService) AddProduct(ctx context.Context, cartID, productID int) (*domain.Cart, error) {
	cart, err := s.repo.AddProduct(ctx, cartID, productID)
	if err != nil {
		return nil, fmt.Errorf("add product to cart: %w", err)
	}

	s.logger.InfoContext(ctx, "product added to cart",
		slog.Int("cart_id", cartID),
		slog.Int("product_id", productID),
		slog.Int("item_count", cart.ItemCount()),
	)

	return cart, nil
}
