package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"content-hub/internal/domain/entity"
	"content-hub/internal/repository"
)

type ItemRepo struct {
	db           *sql.DB
	queryBuilder *ItemQueryBuilder
}

func NewItemRepo(db *sql.DB) repository.ItemRepository {
	return &ItemRepo{
		db:           db,
		queryBuilder: NewItemQueryBuilder(),
	}
}

func (repo *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	const query = `
INSERT INTO items
       (title, description, image_url, category)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at, updated_at`
	err := repo.db.QueryRowContext(ctx, query,
		item.Title, item.Description, item.ImageURL, item.Category,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ItemRepo) Get(ctx context.Context, id int64) (*entity.Item, error) {
	const query = `
SELECT id, title, description, image_url, category, created_at, updated_at
FROM items
WHERE id = $1
LIMIT 1`
	var item entity.Item
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&item.ID, &item.Title, &item.Description, &item.ImageURL,
			&item.Category, &item.CreatedAt, &item.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &item, nil
}

func (repo *ItemRepo) List(ctx context.Context, filters repository.ItemFilters, offset, limit int) ([]*entity.Item, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(filters)

	paramIndex := len(args) + 1
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
SELECT id, title, description, image_url, category, created_at, updated_at
FROM items
%s
ORDER BY created_at DESC, id DESC
LIMIT $%d OFFSET $%d`, whereClause, paramIndex, paramIndex+1)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]*entity.Item, 0, limit)
	for rows.Next() {
		var item entity.Item
		if err := rows.Scan(&item.ID, &item.Title, &item.Description,
			&item.ImageURL, &item.Category, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

// Count returns the number of items matching the filters before pagination.
// It shares the WHERE clause with List so both agree on the row set.
func (repo *ItemRepo) Count(ctx context.Context, filters repository.ItemFilters) (int64, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(filters)

	query := "SELECT COUNT(*) FROM items " + whereClause

	var count int64
	err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	const query = `
UPDATE items SET
       title       = $1,
       description = $2,
       image_url   = $3,
       category    = $4,
       updated_at  = $5
WHERE id = $6`
	res, err := repo.db.ExecContext(ctx, query,
		item.Title, item.Description, item.ImageURL,
		item.Category, item.UpdatedAt, item.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	return nil
}

func (repo *ItemRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM items WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", entity.ErrNotFound)
	}
	return nil
}
