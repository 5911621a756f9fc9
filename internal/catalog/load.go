package catalog

import (
	"context"

	"storefront-service/internal/model"
	"storefront-service/internal/storage"
)

// Open loads the catalog from s, falling back to the seed catalog, and
// wires persistence of every later mutation back to s.
func Open(ctx context.Context, s storage.Storage) *Store {
	p := storage.NewPersister[[]model.Product](s, storage.KeyProducts)
	products := p.Load(ctx, nil)
	if products == nil {
		products = Seed()
	}
	return NewStore(products, Hook(p.Hook()))
}
