package repository

import (
	"context"

	"content-hub/internal/domain/entity"
)

// ItemFilters contains optional predicates for item listing.
// Nil fields are not applied.
type ItemFilters struct {
	// Category filters by exact category match.
	Category *string
	// Search filters by case-insensitive substring match against
	// title or description.
	Search *string
}

// ItemRepository is the storage contract for the item resource.
type ItemRepository interface {
	// Create inserts the item and fills in the generated ID and the
	// server-side created_at/updated_at on the passed entity.
	Create(ctx context.Context, item *entity.Item) error
	// Get returns the item with the given ID, or (nil, nil) if no row matches.
	Get(ctx context.Context, id int64) (*entity.Item, error)
	// List returns items matching the filters ordered by created_at
	// descending, windowed by offset and limit.
	List(ctx context.Context, filters ItemFilters, offset, limit int) ([]*entity.Item, error)
	// Count returns the number of items matching the filters, ignoring
	// pagination. Used for hasMore calculation.
	Count(ctx context.Context, filters ItemFilters) (int64, error)
	// Update persists all fields of the item. The caller is responsible
	// for loading the row first and applying partial changes.
	Update(ctx context.Context, item *entity.Item) error
	// Delete removes the item. Returns an error wrapping entity.ErrNotFound
	// when no row was deleted.
	Delete(ctx context.Context, id int64) error
}
