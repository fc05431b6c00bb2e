// Package sessions declares the repository contract for server-side sessions.
// Sessions are addressed only by the hash of their bearer token.
package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/notevault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, s *models.Session) error

	// FindByHash returns common.ErrorNotFound for unknown hashes.
	FindByHash(ctx context.Context, tokenHash string) (*models.Session, error)

	// Rotate swaps oldHash for newHash and sets a new expiry, but only if
	// oldHash is still current. A lost race returns common.ErrorNotFound.
	Rotate(ctx context.Context, oldHash, newHash string, expiresAt time.Time) error

	// DeleteByHash is idempotent.
	DeleteByHash(ctx context.Context, tokenHash string) error

	// DeleteExpired removes the account's sessions that expired before now.
	DeleteExpired(ctx context.Context, accountID string, now time.Time) (int64, error)
}
