package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS administrators (
		id       BIGSERIAL PRIMARY KEY,
		email    TEXT NOT NULL,
		password TEXT NOT NULL,
		role     TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id    BIGSERIAL PRIMARY KEY,
		name  TEXT NOT NULL,
		brand TEXT NOT NULL,
		year  INT  NOT NULL
	)`,
}

// Migrate applies the schema statements in order. Statements are idempotent
// so repeated startups are safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("platform/db: migrate: %w", err)
		}
	}
	return nil
}
