package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"go.uber.org/zap"
)

// Persister binds one storage key to a typed value. Stores call Save from
// their write path after every mutation and Load once at startup.
type Persister[T any] struct {
	storage Storage
	key     string
}

// NewPersister creates a persister for key
func NewPersister[T any](s Storage, key string) *Persister[T] {
	return &Persister[T]{storage: s, key: key}
}

// Key returns the storage key
func (p *Persister[T]) Key() string {
	return p.key
}

// Load decodes the stored value. When nothing is stored, or the stored
// bytes do not decode, fallback is returned and the problem is only logged.
func (p *Persister[T]) Load(ctx context.Context, fallback T) T {
	log := logger.FromContext(ctx)

	raw, err := p.storage.Get(ctx, p.key)
	if errors.Is(err, ErrNotFound) {
		return fallback
	}
	if err != nil {
		log.Warn("Failed to read stored document, using default",
			zap.String("key", p.key), zap.Error(err))
		return fallback
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Warn("Stored document is not valid JSON, using default",
			zap.String("key", p.key), zap.Error(err))
		return fallback
	}
	return v
}

// Save encodes v and writes it under the key
func (p *Persister[T]) Save(ctx context.Context, v T) error {
	defer prometheus.TrackPersist(p.key)(time.Now())

	raw, err := json.Marshal(v)
	if err != nil {
		prometheus.RecordPersistFailure(p.key)
		return fmt.Errorf("encode %s: %w", p.key, err)
	}
	if err := p.storage.Set(ctx, p.key, raw); err != nil {
		prometheus.RecordPersistFailure(p.key)
		return err
	}
	return nil
}

// Hook adapts Save into a mutation hook that logs instead of failing. The
// mutation that triggered it has already been applied in memory.
func (p *Persister[T]) Hook() func(ctx context.Context, v T) {
	return func(ctx context.Context, v T) {
		if err := p.Save(ctx, v); err != nil {
			logger.FromContext(ctx).Error("Failed to persist document",
				zap.String("key", p.key), zap.Error(err))
		}
	}
}
