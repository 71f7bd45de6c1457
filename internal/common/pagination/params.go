package pagination

import "fmt"

// Params represents normalized pagination parameters for a list query.
type Params struct {
	Limit  int // Items per page, 1..Config.MaxLimit
	Offset int // Number of rows to skip, >= 0
}

// FromInput builds Params from optional request fields.
// Nil fields take the configured defaults (limit) or zero (offset).
//
// Returns an error if:
//   - limit is less than 1 or greater than config.MaxLimit
//   - offset is negative
func FromInput(limit, offset *int, config Config) (Params, error) {
	params := Params{
		Limit:  config.DefaultLimit,
		Offset: 0,
	}

	if limit != nil {
		if *limit < 1 || *limit > config.MaxLimit {
			return params, fmt.Errorf("limit must be between 1 and %d", config.MaxLimit)
		}
		params.Limit = *limit
	}

	if offset != nil {
		if *offset < 0 {
			return params, fmt.Errorf("offset must be a non-negative integer")
		}
		params.Offset = *offset
	}

	return params, nil
}

// HasMore reports whether rows remain past the current window.
//
// Formula: offset + limit < total
//
// Examples:
//   - Total 50, Offset 0, Limit 20 -> true
//   - Total 50, Offset 40, Limit 20 -> false
//   - Total 0, any window -> false
func HasMore(offset, limit int, total int64) bool {
	return int64(offset+limit) < total
}
