package admin

import (
	"context"
	"fmt"
	"time"

	"storefront-service/internal/catalog"
	"storefront-service/internal/model"
	"storefront-service/internal/settings"
)

// Service is what an unlocked console can do to the catalog and settings
type Service struct {
	catalog  *catalog.Store
	settings *settings.Store
	now      func() time.Time
}

// NewService creates the console operations over the two stores
func NewService(c *catalog.Store, s *settings.Store) *Service {
	return &Service{catalog: c, settings: s, now: time.Now}
}

// Stats returns the dashboard counts
func (s *Service) Stats() Stats {
	return StatsFor(s.catalog.List())
}

// Inventory returns the catalog in order
func (s *Service) Inventory() []model.Product {
	return s.catalog.List()
}

// CreateProduct adds a new product built from d with a fresh time-based id
func (s *Service) CreateProduct(ctx context.Context, d Draft) (model.Product, error) {
	if err := d.Validate(); err != nil {
		return model.Product{}, err
	}
	p := d.Product(catalog.NewID(s.now()), false)
	s.catalog.Add(ctx, p)
	return p, nil
}

// EditDraft returns the edit form pre-filled from the product with id
func (s *Service) EditDraft(id string) (Draft, error) {
	p, err := s.catalog.Get(id)
	if err != nil {
		return Draft{}, err
	}
	return DraftFromProduct(p), nil
}

// UpdateProduct replaces the product with id, keeping its identifier
func (s *Service) UpdateProduct(ctx context.Context, id string, d Draft) (model.Product, error) {
	if err := d.Validate(); err != nil {
		return model.Product{}, err
	}
	p := d.Product(id, true)
	if !s.catalog.Update(ctx, p) {
		return model.Product{}, fmt.Errorf("update %s: %w", id, catalog.ErrNotFound)
	}
	return p, nil
}

// DeleteProduct removes the product with id once confirmed. Without
// confirmation nothing changes.
func (s *Service) DeleteProduct(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	if !s.catalog.Delete(ctx, id) {
		return fmt.Errorf("delete %s: %w", id, catalog.ErrNotFound)
	}
	return nil
}

// Settings returns the current store settings
func (s *Service) Settings() model.Settings {
	return s.settings.Get()
}

// UpdateSettings validates and replaces the store settings
func (s *Service) UpdateSettings(ctx context.Context, next model.Settings) error {
	if err := settings.Validate(next); err != nil {
		return err
	}
	s.settings.Update(ctx, next)
	return nil
}
