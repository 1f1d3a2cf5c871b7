package db

import "database/sql"

// MigrateUp creates the schema. Every statement is idempotent so the
// migration can run on every boot.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS users (
    username      TEXT PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    bio           TEXT NOT NULL DEFAULT '',
    image         TEXT NOT NULL DEFAULT ''
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    slug          TEXT PRIMARY KEY,
    title         TEXT NOT NULL,
    description   TEXT NOT NULL,
    body          TEXT NOT NULL,
    author        TEXT NOT NULL REFERENCES users(username) ON DELETE CASCADE,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    search_vector TSVECTOR GENERATED ALWAYS AS (
        to_tsvector('english', title || ' ' || description || ' ' || body)
    ) STORED
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS article_tags (
    article_slug TEXT NOT NULL REFERENCES articles(slug) ON DELETE CASCADE,
    tag          TEXT NOT NULL,
    PRIMARY KEY (article_slug, tag)
)`); err != nil {
		return err
	}

	// The composite primary keys on the edge tables are what make
	// concurrent toggles safe: the losing insert of a race hits the
	// constraint instead of creating a duplicate edge.
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS follows (
    follower   TEXT NOT NULL REFERENCES users(username) ON DELETE CASCADE,
    influencer TEXT NOT NULL REFERENCES users(username) ON DELETE CASCADE,
    PRIMARY KEY (follower, influencer)
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS favorite_articles (
    username     TEXT NOT NULL REFERENCES users(username) ON DELETE CASCADE,
    article_slug TEXT NOT NULL REFERENCES articles(slug) ON DELETE CASCADE,
    PRIMARY KEY (username, article_slug)
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS comments (
    id           BIGSERIAL PRIMARY KEY,
    article_slug TEXT NOT NULL REFERENCES articles(slug) ON DELETE CASCADE,
    username     TEXT NOT NULL REFERENCES users(username) ON DELETE CASCADE,
    body         TEXT NOT NULL,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// Every feed query orders by created_at DESC.
		`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at DESC)`,
		// Profile feeds filter by author.
		`CREATE INDEX IF NOT EXISTS idx_articles_author ON articles(author)`,
		// Tag-filtered feed looks up memberships by tag.
		`CREATE INDEX IF NOT EXISTS idx_article_tags_tag ON article_tags(tag)`,
		// Favorited-profile feed and fav_count look up edges by slug.
		`CREATE INDEX IF NOT EXISTS idx_favorite_articles_slug ON favorite_articles(article_slug)`,
		// Comment listing per article.
		`CREATE INDEX IF NOT EXISTS idx_comments_article_slug ON comments(article_slug)`,
		// Full-text search over title, description and body.
		`CREATE INDEX IF NOT EXISTS idx_articles_search_vector ON articles USING gin(search_vector)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}
