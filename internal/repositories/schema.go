package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-media-channels/internal/logger"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		phone VARCHAR(50) NOT NULL,
		gender VARCHAR(50),
		about TEXT,
		user_image VARCHAR(255),
		channel_name VARCHAR(255),
		channel_description TEXT,
		channel_media_links JSONB,
		user_role VARCHAR(50) NOT NULL DEFAULT 'appUser',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS categories (
		category_id BIGSERIAL PRIMARY KEY,
		category_name VARCHAR(255) NOT NULL,
		category_image VARCHAR(255),
		category_status INTEGER NOT NULL DEFAULT 1,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS media (
		media_id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		title VARCHAR(255) NOT NULL,
		description TEXT,
		category_id BIGINT REFERENCES categories(category_id),
		banner TEXT,
		audio TEXT,
		duration VARCHAR(50),
		language VARCHAR(50),
		tags TEXT,
		"cast" VARCHAR(255),
		crew VARCHAR(255),
		release_date TIMESTAMP DEFAULT NOW(),
		rating INTEGER NOT NULL DEFAULT 0,
		listener INTEGER NOT NULL DEFAULT 0,
		media_status INTEGER NOT NULL DEFAULT 2,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_media_category_status ON media (category_id, media_status);`,
	`CREATE INDEX IF NOT EXISTS idx_media_user ON media (user_id);`,
}

// EnsureSchema creates the tables the service needs if they are missing.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	logger.Log.Infow("schema ensured", "statements", len(schema))
	return nil
}

// logQuery logs a query on a single line together with its outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
