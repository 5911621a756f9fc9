package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront-service/pkg/database"
	"storefront-service/prometheus"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Document is one stored value in PostgreSQL
type Document struct {
	Key       string    `gorm:"primaryKey;type:varchar(255)"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName pins the table name
func (Document) TableName() string {
	return "storefront_documents"
}

// Postgres is a Storage backed by a GORM connection
type Postgres struct {
	db *gorm.DB
}

// NewPostgres wraps an open GORM connection. Run Migrate before first use.
func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{db: db}
}

// Migrate creates or updates the documents table
func (p *Postgres) Migrate() error {
	if err := database.MigrateModels(p.db, &Document{}); err != nil {
		return fmt.Errorf("migrate documents: %w", err)
	}
	return nil
}

// Ping reports whether the database answers
func (p *Postgres) Ping(_ context.Context) error {
	return database.Ping(p.db)
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	defer prometheus.TrackDBOperation("get")(time.Now())

	var doc Document
	err := p.db.WithContext(ctx).Where("key = ?", key).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return []byte(doc.Value), nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	defer prometheus.TrackDBOperation("set")(time.Now())

	doc := Document{Key: key, Value: string(value), UpdatedAt: time.Now()}
	err := p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
