package cart

import (
	"context"
	"errors"
	"sync"

	"storefront-service/internal/model"
	"storefront-service/internal/storage"

	"github.com/google/uuid"
)

// Registry hands out carts by id. Carts are loaded from storage on first
// use and persisted under their own key. Only stored or mutated carts are
// held in memory.
type Registry struct {
	mu      sync.Mutex
	storage storage.Storage
	carts   map[string]*Store
	newID   func() string
}

// NewRegistry creates a registry over s
func NewRegistry(s storage.Storage) *Registry {
	return &Registry{
		storage: s,
		carts:   make(map[string]*Store),
		newID:   func() string { return uuid.New().String() },
	}
}

// Create starts an empty cart and returns its id. Like any cart with
// nothing stored, it is kept only once it changes.
func (r *Registry) Create(ctx context.Context) (string, *Store) {
	id := r.newID()
	return id, r.Get(ctx, id)
}

// Get returns the cart with the given id, loading it from storage. When
// nothing is stored the cart is returned empty and joins the registry on
// its first mutation, so lookups of unknown ids hold no memory.
func (r *Registry) Get(ctx context.Context, id string) *Store {
	r.mu.Lock()
	s, ok := r.carts[id]
	r.mu.Unlock()
	if ok {
		return s
	}

	key := storage.CartKey(id)
	p := storage.NewPersister[[]model.CartItem](r.storage, key)
	persist := p.Hook()

	if _, err := r.storage.Get(ctx, key); errors.Is(err, storage.ErrNotFound) {
		var fresh *Store
		fresh = NewStore(nil, func(ctx context.Context, items []model.CartItem) {
			r.adopt(id, fresh)
			persist(ctx, items)
		})
		return fresh
	}

	return r.adopt(id, NewStore(p.Load(ctx, nil), Hook(persist)))
}

// adopt registers s under id unless another cart got there first
func (r *Registry) adopt(id string, s *Store) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.carts[id]; ok {
		return cached
	}
	r.carts[id] = s
	return s
}

// Len returns the number of carts held in memory
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.carts)
}
