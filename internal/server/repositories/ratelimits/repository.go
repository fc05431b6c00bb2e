// Package ratelimits declares the repository contract for fixed-window
// rate-limit buckets.
package ratelimits

import (
	"context"

	"github.com/dmitrijs2005/notevault/internal/server/models"
)

type Repository interface {
	// Acquire returns the bucket for key, creating an empty, already-expired
	// one if none exists, and holds it locked until the surrounding
	// transaction ends. It must be called inside a transaction.
	Acquire(ctx context.Context, key string) (*models.RateLimitBucket, error)

	// Save writes back count and reset time.
	Save(ctx context.Context, b *models.RateLimitBucket) error
}
