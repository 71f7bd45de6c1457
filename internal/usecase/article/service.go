// Package article provides use cases for the article resource.
// Articles are append-only: they are created and listed, never updated
// or deleted, so the service surface is deliberately small.
package article

import (
	"context"
	"fmt"
	"strings"
	"time"

	"content-hub/internal/domain/entity"
	"content-hub/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title       string
	Content     string
	Author      string
	PublishTime time.Time
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence to the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// Create validates the input and persists a new article.
// New articles always start with a comment count of zero.
// Returns *entity.ValidationError if any field is missing.
func (s *Service) Create(ctx context.Context, input CreateInput) (*entity.Article, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "title is required"}
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, &entity.ValidationError{Field: "content", Message: "content is required"}
	}
	if strings.TrimSpace(input.Author) == "" {
		return nil, &entity.ValidationError{Field: "author", Message: "author is required"}
	}
	if input.PublishTime.IsZero() {
		return nil, &entity.ValidationError{Field: "publish_time", Message: "publish_time is required"}
	}

	article := &entity.Article{
		Title:       input.Title,
		Content:     input.Content,
		Author:      input.Author,
		PublishTime: input.PublishTime,
	}
	if err := s.Repo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return article, nil
}

// List retrieves all articles, newest publish time first.
// Returns an error if the repository operation fails.
func (s *Service) List(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}
