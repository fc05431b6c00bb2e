// Package ratelimits provides a PostgreSQL-backed bucket repository.
package ratelimits

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/notevault/internal/dbx"
	"github.com/dmitrijs2005/notevault/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Acquire(ctx context.Context, key string) (*models.RateLimitBucket, error) {
	ensure := `
		INSERT INTO rate_limits (key, count, reset_at)
		VALUES ($1, 0, to_timestamp(0))
		ON CONFLICT (key) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, ensure, key); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	lock := `
		SELECT key, count, reset_at
		FROM rate_limits
		WHERE key = $1
		FOR UPDATE
	`
	b := &models.RateLimitBucket{}
	if err := r.db.QueryRowContext(ctx, lock, key).Scan(&b.Key, &b.Count, &b.ResetAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return b, nil
}

func (r *PostgresRepository) Save(ctx context.Context, b *models.RateLimitBucket) error {
	query := `
		UPDATE rate_limits
		SET count = $2, reset_at = $3
		WHERE key = $1
	`
	if _, err := r.db.ExecContext(ctx, query, b.Key, b.Count, b.ResetAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
