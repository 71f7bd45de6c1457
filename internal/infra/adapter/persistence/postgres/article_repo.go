package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"content-hub/internal/domain/entity"
	"content-hub/internal/repository"
)

type ArticleRepo struct {
	db *sql.DB
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	// New articles always start with zero comments.
	const query = `
INSERT INTO articles
       (title, content, author, publish_time, comment_count)
VALUES ($1, $2, $3, $4, 0)
RETURNING id, comment_count, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		article.Title, article.Content, article.Author, article.PublishTime,
	).Scan(&article.ID, &article.CommentCount, &article.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	// id DESC tie-break keeps the ordering deterministic for equal publish times.
	const query = `
SELECT id, title, content, author, publish_time, comment_count, created_at
FROM articles
ORDER BY publish_time DESC, id DESC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 100)
	for rows.Next() {
		var article entity.Article
		if err := rows.Scan(&article.ID, &article.Title, &article.Content,
			&article.Author, &article.PublishTime, &article.CommentCount,
			&article.CreatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, &article)
	}
	return articles, rows.Err()
}
