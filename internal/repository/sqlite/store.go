// Package sqlite implements the repository interfaces on an embedded
// SQLite database (modernc.org/sqlite, no cgo). The store uses a single
// connection, so statements are serialized and each repository call is
// atomic.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id       TEXT PRIMARY KEY,
	username TEXT NOT NULL,
	bio      TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS posts (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT    NOT NULL,
	content    TEXT    NOT NULL,
	author_id  TEXT    NOT NULL,
	created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_posts_author_id ON posts (author_id, id);

CREATE TABLE IF NOT EXISTS ratings (
	post_id INTEGER NOT NULL REFERENCES posts (id),
	user_id TEXT    NOT NULL,
	value   INTEGER NOT NULL CHECK (value BETWEEN 1 AND 5),
	seq     INTEGER NOT NULL,
	PRIMARY KEY (post_id, user_id)
);`

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
// path may be ":memory:".
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply sqlite schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
