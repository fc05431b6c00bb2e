// Package loginlinks declares the repository contract for pending one-time
// sign-in links.
package loginlinks

import (
	"context"
	"time"

	"github.com/dmitrijs2005/notevault/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, l *models.LoginLink) error

	// Consume deletes and returns the link for (accountID, tokenHash) in one
	// step, so a link can be redeemed at most once. Expired links are
	// consumed too; the caller decides what expiry means. Missing links
	// return common.ErrorNotFound.
	Consume(ctx context.Context, accountID, tokenHash string) (*models.LoginLink, error)

	DeleteExpired(ctx context.Context, accountID string, now time.Time) (int64, error)
}
