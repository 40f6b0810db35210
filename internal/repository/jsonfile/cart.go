package jsonfile

import (
	"context"
	"strconv"
	"sync"

	"github.com/dReyko-sff/herreria-backend1/internal/domain"
	"github.com/dReyko-sff/herreria-backend1/internal/repository"
	apperrors "github.com/dReyko-sff/herreria-backend1/pkg/errors"
)

// CartStore persists the cart collection in a single JSON file.
type CartStore struct {
	path string
	mu   sync.Mutex
}

var _ repository.CartRepository = (*CartStore)(nil)

// NewCartStore creates a cart store backed by the file at path.
func NewCartStore(path string) *CartStore {
	return &CartStore{path: path}
}

// List returns the entire cart collection. A missing backing file yields an
// empty collection.
func (s *CartStore) List(ctx context.Context) ([]domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Create appends a new cart with an empty item sequence and persists.
func (s *CartStore) Create(ctx context.Context) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	carts, err := s.load()
	if err != nil {
		return nil, err
	}

	cart := domain.Cart{
		ID:    nextID(cartIDs(carts)),
		Items: []domain.CartItem{},
	}
	carts = append(carts, cart)

	if err := writeCollection(s.path, carts); err != nil {
		return nil, apperrors.Storage(err)
	}
	return &cart, nil
}

// GetByID retrieves a cart by its identifier.
func (s *CartStore) GetByID(ctx context.Context, id int) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	carts, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range carts {
		if carts[i].ID == id {
			return &carts[i], nil
		}
	}
	return nil, apperrors.NotFound("cart", strconv.Itoa(id))
}

// AddProduct adds one unit of the product to the cart's line items and
// persists the full collection. An absent cart returns not-found without
// touching the file. The product id is not checked against the product
// collection.
func (s *CartStore) AddProduct(ctx context.Context, cartID, productID int) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	carts, err := s.load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range carts {
		if carts[i].ID == cartID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, apperrors.NotFound("cart", strconv.Itoa(cartID))
	}

	carts[idx].AddProduct(productID)

	if err := writeCollection(s.path, carts); err != nil {
		return nil, apperrors.Storage(err)
	}

	updated := carts[idx]
	return &updated, nil
}

// load reads the collection without taking the mutex; callers hold it.
func (s *CartStore) load() ([]domain.Cart, error) {
	carts := []domain.Cart{}
	if err := readCollection(s.path, &carts); err != nil {
		return nil, apperrors.Storage(err)
	}
	return carts, nil
}

func cartIDs(carts []domain.Cart) []int {
	ids := make([]int, len(carts))
	for i, c := range carts {
		ids[i] = c.ID
	}
	return ids
}
