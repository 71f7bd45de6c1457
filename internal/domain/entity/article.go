// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article and Item, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// Article represents a published article in the system.
// CommentCount is a denormalized counter; no operation mutates it after
// creation, where it starts at zero.
type Article struct {
	ID           int64
	Title        string
	Content      string
	Author       string
	PublishTime  time.Time
	CommentCount int
	CreatedAt    time.Time
}
