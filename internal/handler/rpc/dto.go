// Package rpc provides the JSON-over-HTTP procedure endpoints of the
// content hub. Every procedure is mounted under /rpc/<name> and exchanges
// JSON bodies; reads and writes alike use POST, with healthcheck also
// answering GET for probes.
package rpc

import (
	"time"

	"content-hub/internal/domain/entity"
)

// ItemDTO represents the JSON structure for item data transfer.
type ItemDTO struct {
	ID          int64     `json:"id" example:"1"`
	Title       string    `json:"title" example:"Mechanical keyboard"`
	Description string    `json:"description" example:"Hot-swappable switches, PBT caps."`
	ImageURL    string    `json:"imageUrl" example:"https://example.com/kb.jpg"`
	Category    *string   `json:"category" example:"Hardware"`
	CreatedAt   time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2024-01-15T10:30:00Z"`
}

func itemDTO(it *entity.Item) ItemDTO {
	return ItemDTO{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		ImageURL:    it.ImageURL,
		Category:    it.Category,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

// ArticleDTO represents the JSON structure for article data transfer.
type ArticleDTO struct {
	ID           int64     `json:"id" example:"1"`
	Title        string    `json:"title" example:"Building Scalable APIs"`
	Content      string    `json:"content" example:"Long-form body text..."`
	Author       string    `json:"author" example:"Alex Johnson"`
	PublishTime  time.Time `json:"publish_time" example:"2024-01-15T10:30:00Z"`
	CommentCount int       `json:"comment_count" example:"0"`
	CreatedAt    time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
}

func articleDTO(a *entity.Article) ArticleDTO {
	return ArticleDTO{
		ID:           a.ID,
		Title:        a.Title,
		Content:      a.Content,
		Author:       a.Author,
		PublishTime:  a.PublishTime,
		CommentCount: a.CommentCount,
		CreatedAt:    a.CreatedAt,
	}
}
