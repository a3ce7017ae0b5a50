package repository

import (
	"context"

	"cadcam-storefront/internal/domain/entity"
)

// ProductRepository persists the whole catalog as one collection. Every
// mutation is a full read, an in-memory change and a full write; there is no
// locking across that cycle, so concurrent writers can lose updates.
type ProductRepository interface {
	// ReadAll returns the persisted collection in stored order. Read or parse
	// failures are logged and yield an empty slice, never an error.
	ReadAll(ctx context.Context) []entity.Product
	// WriteAll replaces the persisted collection.
	WriteAll(ctx context.Context, products []entity.Product) error
}
