package cart

import (
	"context"
	"errors"
	"sync"

	"storefront-service/internal/model"
	"storefront-service/prometheus"
)

// ErrItemNotFound is returned when the cart has no line for a product id
var ErrItemNotFound = errors.New("cart item not found")

// Hook receives a snapshot of the cart after every mutation
type Hook func(ctx context.Context, items []model.CartItem)

// AddResult is returned by AddToCart. Open tells the caller to show the cart.
type AddResult struct {
	Item model.CartItem `json:"item"`
	Open bool           `json:"open"`
}

// Store is one shopper's cart. There is at most one item per product id
// and every quantity is at least 1.
type Store struct {
	mu       sync.RWMutex
	items    []model.CartItem
	onChange Hook
}

// NewStore creates a cart holding initial. Items with a repeated product id
// are merged and quantities below 1 are raised to 1.
func NewStore(initial []model.CartItem, onChange Hook) *Store {
	s := &Store{onChange: onChange}
	for _, it := range initial {
		if i := s.indexOf(it.Product.ID); i >= 0 {
			s.items[i].Quantity += clamp(it.Quantity)
			continue
		}
		s.items = append(s.items, model.CartItem{Product: it.Product.Clone(), Quantity: clamp(it.Quantity)})
	}
	return s
}

// AddToCart increments the quantity of the line for p, or inserts a new
// line with quantity 1.
func (s *Store) AddToCart(ctx context.Context, p model.Product) AddResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(p.ID)
	if i >= 0 {
		s.items[i].Quantity++
	} else {
		s.items = append(s.items, model.CartItem{Product: p.Clone(), Quantity: 1})
		i = len(s.items) - 1
	}
	item := cloneItem(s.items[i])
	s.changed(ctx, "add")
	return AddResult{Item: item, Open: true}
}

// Remove deletes the line for id. Removing an absent id is a no-op that
// reports false.
func (s *Store) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	s.changed(ctx, "remove")
	return true
}

// SetQuantity sets the line for id to max(1, q)
func (s *Store) SetQuantity(ctx context.Context, id string, q int) (model.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.CartItem{}, ErrItemNotFound
	}
	s.items[i].Quantity = clamp(q)
	item := cloneItem(s.items[i])
	s.changed(ctx, "set_quantity")
	return item, nil
}

// Items returns the lines in insertion order
func (s *Store) Items() []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// TotalCount is the sum of all quantities
func (s *Store) TotalCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// TotalPrice is the sum of price times quantity over all lines
func (s *Store) TotalPrice() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, it := range s.items {
		total += it.LineTotal()
	}
	return total
}

func (s *Store) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].Product.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshot() []model.CartItem {
	out := make([]model.CartItem, len(s.items))
	for i, it := range s.items {
		out[i] = cloneItem(it)
	}
	return out
}

func (s *Store) changed(ctx context.Context, op string) {
	prometheus.RecordCartOperation(op)
	if s.onChange != nil {
		s.onChange(ctx, s.snapshot())
	}
}

func cloneItem(it model.CartItem) model.CartItem {
	return model.CartItem{Product: it.Product.Clone(), Quantity: it.Quantity}
}

func clamp(q int) int {
	if q < 1 {
		return 1
	}
	return q
}
