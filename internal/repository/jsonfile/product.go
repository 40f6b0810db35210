package jsonfile

import (
	"context"
	"strconv"
	"sync"

	"github.com/dReyko-sff/herreria-backend1/internal/domain"
	"github.com/dReyko-sff/herreria-backend1/internal/repository"
	apperrors "github.com/dReyko-sff/herreria-backend1/pkg/errors"
)

// ProductStore persists the product collection in a single JSON file.
type ProductStore struct {
	path string
	mu   sync.Mutex
}

// compile-time interface check
var _ repository.ProductRepository = (*ProductStore)(nil)

// NewProductStore creates a product store backed by the file at path.
// The file does not need to exist yet; it is created on the first mutation.
func NewProductStore(path string) *ProductStore {
	return &ProductStore{path: path}
}

// List returns the entire product collection. A missing backing file yields
// an empty collection.
func (s *ProductStore) List(ctx context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// GetByID retrieves a product by its identifier.
func (s *ProductStore) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, apperrors.NotFound("product", strconv.Itoa(id))
}

// Create assigns a new identifier, appends the product to the collection, and
// persists. Identifiers are one more than the current maximum so deleting the
// highest-numbered product never reintroduces a freed id.
func (s *ProductStore) Create(ctx context.Context, product domain.Product) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return nil, err
	}

	product.ID = nextID(productIDs(products))
	products = append(products, product)

	if err := writeCollection(s.path, products); err != nil {
		return nil, apperrors.Storage(err)
	}
	return &product, nil
}

// Update applies the patch to the product with the given identifier and
// persists. The identifier itself can never change.
func (s *ProductStore) Update(ctx context.Context, id int, patch repository.ProductPatch) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range products {
		if products[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, apperrors.NotFound("product", strconv.Itoa(id))
	}

	p := &products[idx]
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}

	if err := writeCollection(s.path, products); err != nil {
		return nil, apperrors.Storage(err)
	}

	updated := *p
	return &updated, nil
}

// Delete removes the product with the given identifier and persists. A no-op
// delete returns not-found without rewriting the file.
func (s *ProductStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return err
	}

	remaining := products[:0:0]
	for _, p := range products {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == len(products) {
		return apperrors.NotFound("product", strconv.Itoa(id))
	}

	if err := writeCollection(s.path, remaining); err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

// load reads the collection without taking the mutex; callers hold it.
func (s *ProductStore) load() ([]domain.Product, error) {
	products := []domain.Product{}
	if err := readCollection(s.path, &products); err != nil {
		return nil, apperrors.Storage(err)
	}
	return products, nil
}

func productIDs(products []domain.Product) []int {
	ids := make([]int, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

// nextID returns one more than the maximum existing id, or 1 for an empty
// collection.
func nextID(ids []int) int {
	max := 0
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}
