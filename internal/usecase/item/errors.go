package item

import "errors"

// Sentinel errors for item use case operations.
var (
	// ErrItemNotFound indicates that the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidItemID indicates that the provided item ID is invalid.
	// Item IDs must be positive integers.
	ErrInvalidItemID = errors.New("invalid item ID")
)
