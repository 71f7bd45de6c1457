package entity

import "time"

// Item represents a content card shown on the listing surface.
// Category is nullable: a nil pointer means the item carries no
// classification tag. UpdatedAt is refreshed on every update while
// CreatedAt is set once.
type Item struct {
	ID          int64
	Title       string
	Description string
	ImageURL    string
	Category    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
