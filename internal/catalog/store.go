package catalog

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"storefront-service/internal/model"
	"storefront-service/prometheus"
)

// ErrNotFound is returned by Get when no product has the id
var ErrNotFound = errors.New("product not found")

// Hook receives a snapshot of the full catalog after every mutation
type Hook func(ctx context.Context, products []model.Product)

// Store holds the ordered product catalog
type Store struct {
	mu       sync.RWMutex
	products []model.Product
	onChange Hook
}

// NewStore creates a catalog holding initial, calling onChange after each
// mutation. onChange may be nil.
func NewStore(initial []model.Product, onChange Hook) *Store {
	products := make([]model.Product, 0, len(initial))
	for _, p := range initial {
		products = append(products, p.Clone())
	}
	return &Store{products: products, onChange: onChange}
}

// List returns the catalog in order
func (s *Store) List() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Len returns the number of products
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Get returns the product with the given id
func (s *Store) Get(id string) (model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.products[i].Clone(), nil
	}
	return model.Product{}, ErrNotFound
}

// Add prepends p. Identifier uniqueness is the caller's responsibility.
func (s *Store) Add(ctx context.Context, p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append([]model.Product{p.Clone()}, s.products...)
	s.changed(ctx, "create")
}

// Update replaces the product with the same id. It reports whether a
// product matched; no match leaves the catalog untouched.
func (s *Store) Update(ctx context.Context, p model.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(p.ID)
	if i < 0 {
		return false
	}
	s.products[i] = p.Clone()
	s.changed(ctx, "update")
	return true
}

// Delete removes the product with the given id and reports whether one was
// removed. Callers gate this behind an explicit confirmation.
func (s *Store) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.products = append(s.products[:i:i], s.products[i+1:]...)
	s.changed(ctx, "delete")
	return true
}

func (s *Store) indexOf(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshot() []model.Product {
	out := make([]model.Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out
}

// changed runs under the write lock so the hook observes mutations in order
func (s *Store) changed(ctx context.Context, op string) {
	prometheus.RecordCatalogOperation(op, len(s.products))
	if s.onChange != nil {
		s.onChange(ctx, s.snapshot())
	}
}

// NewID returns a time-based identifier: the decimal Unix time in
// milliseconds. Two creations within the same millisecond collide.
func NewID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}
