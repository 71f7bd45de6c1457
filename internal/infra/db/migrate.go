package db

import "database/sql"

// MigrateUp creates the schema. Statements are idempotent so the function
// can run on every startup.
func MigrateUp(pool *sql.DB) error {
	if _, err := pool.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id            SERIAL PRIMARY KEY,
    title         TEXT NOT NULL,
    content       TEXT NOT NULL,
    author        TEXT NOT NULL,
    publish_time  TIMESTAMPTZ NOT NULL,
    comment_count INTEGER NOT NULL DEFAULT 0 CHECK (comment_count >= 0),
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := pool.Exec(`
CREATE TABLE IF NOT EXISTS items (
    id          SERIAL PRIMARY KEY,
    title       TEXT NOT NULL,
    description TEXT NOT NULL,
    image_url   TEXT NOT NULL,
    category    TEXT,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// ORDER BY publish_time DESC on every article listing
		`CREATE INDEX IF NOT EXISTS idx_articles_publish_time ON articles(publish_time DESC)`,
		// Listing order for items
		`CREATE INDEX IF NOT EXISTS idx_items_created_at ON items(created_at DESC)`,
		// Category equality filter
		`CREATE INDEX IF NOT EXISTS idx_items_category ON items(category)`,
	}
	for _, idx := range indexes {
		if _, err := pool.Exec(idx); err != nil {
			return err
		}
	}

	// pg_trgm speeds up the ILIKE substring search. Ignore failures: the
	// extension may be unavailable without superuser rights, and the
	// search still works without the indexes.
	_, _ = pool.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)
	searchIndexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_items_title_gin ON items USING gin(title gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_items_description_gin ON items USING gin(description gin_trgm_ops)`,
	}
	for _, idx := range searchIndexes {
		_, _ = pool.Exec(idx)
	}

	return nil
}

// MigrateDown drops the schema in reverse order of creation.
// Use with caution: this deletes all data in both tables.
func MigrateDown(pool *sql.DB) error {
	dropStatements := []string{
		`DROP TABLE IF EXISTS items CASCADE`,
		`DROP TABLE IF EXISTS articles CASCADE`,
	}
	for _, stmt := range dropStatements {
		if _, err := pool.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
