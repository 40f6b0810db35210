package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dReyko-sff/herreria-backend1/internal/domain"
	"github.com/dReyko-sff/herreria-backend1/internal/repository"
	apperrors "github.com/dReyko-sff/herreria-backend1/pkg/errors"
)

// ProductService implements the business logic for product operations.
type ProductService struct {
	repo   repository.ProductRepository
	logger *slog.Logger
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository, logger *slog.Logger) *ProductService {
	return &ProductService{
		repo:   repo,
		logger: logger,
	}
}

// CreateProductInput holds the parameters for creating a product.
type CreateProductInput struct {
	Title       string
	Description string
	Price       float64
	Stock       int
	Category    string
}

// UpdateProductInput holds the parameters for updating a product.
// Nil fields are left untouched; the identifier can never be updated.
type UpdateProductInput struct {
	Title       *string
	Description *string
	Price       *float64
	Stock       *int
	Category    *string
}

// ListProducts returns the full product collection.
func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetProduct retrieves a product by its ID.
func (s *ProductService) GetProduct(ctx context.Context, id int) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return product, nil
}

// CreateProduct creates a new product with the given input.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*domain.Product, error) {
	if input.Title == "" {
		return nil, apperrors.InvalidInput("product title is required")
	}

	product, err := s.repo.Create(ctx, domain.Product{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Category:    input.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.logger.InfoContext(ctx, "product created",
		slog.Int("product_id", product.ID),
		slog.String("title", product.Title),
	)

	return product, nil
}

// UpdateProduct applies a partial update to the product with the given ID.
func (s *ProductService) UpdateProduct(ctx context.Context, id int, input *UpdateProductInput) (*domain.Product, error) {
	patch := repository.ProductPatch{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Category:    input.Category,
	}

	product, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	s.logger.InfoContext(ctx, "product updated", slog.Int("product_id", id))

	return product, nil
}

// DeleteProduct removes the product with the given ID.
func (s *ProductService) DeleteProduct(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	s.logger.InfoContext(ctx, "product deleted", slog.Int("product_id", id))

	return nil
}
