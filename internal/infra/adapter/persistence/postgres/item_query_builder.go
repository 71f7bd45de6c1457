// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"
	"strings"

	"content-hub/internal/repository"
)

// ItemQueryBuilder builds WHERE clauses for item listing in PostgreSQL.
// The builder is shared between COUNT and SELECT queries so both always
// agree on the matching row set. It uses PostgreSQL-specific features:
// ILIKE for case-insensitive substring search and $N placeholders.
type ItemQueryBuilder struct{}

// NewItemQueryBuilder creates a new query builder instance.
func NewItemQueryBuilder() *ItemQueryBuilder {
	return &ItemQueryBuilder{}
}

// BuildWhereClause builds a WHERE clause and arguments for the given filters.
// Category is an equality predicate; Search matches title OR description
// case-insensitively. Returns an empty clause when no filter is set.
func (qb *ItemQueryBuilder) BuildWhereClause(filters repository.ItemFilters) (clause string, args []interface{}) {
	var conditions []string
	paramIndex := 1

	if filters.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", paramIndex))
		args = append(args, *filters.Category)
		paramIndex++
	}

	if filters.Search != nil && *filters.Search != "" {
		pattern := "%" + escapeILIKE(*filters.Search) + "%"
		conditions = append(conditions,
			fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", paramIndex, paramIndex))
		args = append(args, pattern)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// escapeILIKE escapes LIKE metacharacters so user input matches literally.
func escapeILIKE(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
