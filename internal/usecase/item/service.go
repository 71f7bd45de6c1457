// Package item provides use cases for the item resource, the fully
// mutable half of the content domain: items support creation, lookup,
// filtered listing, partial updates and deletion.
package item

import (
	"context"
	"errors"
	"fmt"
	"time"

	"content-hub/internal/common/pagination"
	"content-hub/internal/domain/entity"
	"content-hub/internal/repository"
)

// CreateInput represents the input parameters for creating a new item.
type CreateInput struct {
	Title       string
	Description string
	ImageURL    string
	Category    *string
}

// UpdateInput represents the input parameters for updating an existing item.
// Fields with nil values will not be updated. Category distinguishes an
// omitted field (left unchanged) from an explicit null (cleared).
type UpdateInput struct {
	ID          int64
	Title       *string
	Description *string
	ImageURL    *string
	Category    entity.Patch[string]
}

// ListResult represents one page of a filtered item listing.
type ListResult struct {
	Items   []*entity.Item
	Total   int64
	HasMore bool
}

// Service provides item management use cases.
// It handles business logic for item operations and delegates persistence to the repository.
type Service struct {
	Repo repository.ItemRepository
}

// Create validates the input and persists a new item.
// Returns *entity.ValidationError if any field fails validation.
func (s *Service) Create(ctx context.Context, input CreateInput) (*entity.Item, error) {
	if err := entity.ValidateTitle(input.Title); err != nil {
		return nil, err
	}
	if err := entity.ValidateDescription(input.Description); err != nil {
		return nil, err
	}
	if err := entity.ValidateImageURL(input.ImageURL); err != nil {
		return nil, err
	}

	it := &entity.Item{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
	}
	if err := s.Repo.Create(ctx, it); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return it, nil
}

// Get retrieves a single item by its ID.
// Returns ErrInvalidItemID if the ID is not positive.
// Returns ErrItemNotFound if the item does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Item, error) {
	if id <= 0 {
		return nil, ErrInvalidItemID
	}

	it, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if it == nil {
		return nil, ErrItemNotFound
	}
	return it, nil
}

// List retrieves one page of items matching the given filters, newest
// first, along with the total match count and a has-more flag.
func (s *Service) List(ctx context.Context, filters repository.ItemFilters, params pagination.Params) (*ListResult, error) {
	total, err := s.Repo.Count(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("count items: %w", err)
	}

	items, err := s.Repo.List(ctx, filters, params.Offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return &ListResult{
		Items:   items,
		Total:   total,
		HasMore: pagination.HasMore(params.Offset, params.Limit, total),
	}, nil
}

// Update applies a partial update to an existing item and refreshes its
// updated_at timestamp. Only non-nil fields are changed; Category is
// cleared when the input carries an explicit null.
// Returns ErrInvalidItemID if the ID is not positive.
// Returns ErrItemNotFound if the item does not exist.
// Returns *entity.ValidationError if any supplied field fails validation.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*entity.Item, error) {
	if input.ID <= 0 {
		return nil, ErrInvalidItemID
	}

	it, err := s.Repo.Get(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get item for update: %w", err)
	}
	if it == nil {
		return nil, ErrItemNotFound
	}

	if input.Title != nil {
		if err := entity.ValidateTitle(*input.Title); err != nil {
			return nil, err
		}
		it.Title = *input.Title
	}
	if input.Description != nil {
		if err := entity.ValidateDescription(*input.Description); err != nil {
			return nil, err
		}
		it.Description = *input.Description
	}
	if input.ImageURL != nil {
		if err := entity.ValidateImageURL(*input.ImageURL); err != nil {
			return nil, err
		}
		it.ImageURL = *input.ImageURL
	}
	if input.Category.Present {
		it.Category = input.Category.Ptr()
	}
	it.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, it); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("update item: %w", err)
	}
	return it, nil
}

// Delete removes an item by its ID.
// Returns ErrInvalidItemID if the ID is not positive.
// Returns ErrItemNotFound if the item does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidItemID
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
