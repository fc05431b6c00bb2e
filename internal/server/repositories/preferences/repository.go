// Package preferences declares the repository contract for per-account
// preferences.
package preferences

import (
	"context"

	"github.com/dmitrijs2005/notevault/internal/server/models"
)

type Repository interface {
	// Get returns common.ErrorNotFound when nothing was saved yet.
	Get(ctx context.Context, accountID string) (*models.Preferences, error)
	Upsert(ctx context.Context, p *models.Preferences) error
}
