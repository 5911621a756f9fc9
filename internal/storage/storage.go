// Package storage keeps the serialized store documents (catalog, carts,
// settings) under string keys, the way the storefront previously used
// browser local storage.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when nothing is stored under the key
var ErrNotFound = errors.New("storage: key not found")

// Document keys
const (
	KeyProducts = "tnd_products"
	KeySettings = "tnd_settings"
	keyCart     = "tnd_cart"
)

// CartKey returns the key a single cart is stored under
func CartKey(cartID string) string {
	return keyCart + ":" + cartID
}

// Storage is a key/value document store
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Prefixed namespaces every key of the wrapped storage
type Prefixed struct {
	Prefix string
	Inner  Storage
}

func (p Prefixed) Get(ctx context.Context, key string) ([]byte, error) {
	return p.Inner.Get(ctx, p.Prefix+key)
}

func (p Prefixed) Set(ctx context.Context, key string, value []byte) error {
	return p.Inner.Set(ctx, p.Prefix+key, value)
}
