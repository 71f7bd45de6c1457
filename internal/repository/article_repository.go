// Package repository defines the storage interfaces for domain entities.
// Concrete adapters live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"content-hub/internal/domain/entity"
)

// ArticleRepository is the storage contract for the article resource.
// Articles are append-only in the current handler set: created once, listed
// in reverse publish order, never updated or deleted.
type ArticleRepository interface {
	// Create inserts the article and fills in the generated ID and
	// server-side created_at on the passed entity.
	Create(ctx context.Context, article *entity.Article) error
	// List returns all articles ordered by publish_time descending.
	List(ctx context.Context) ([]*entity.Article, error)
}
