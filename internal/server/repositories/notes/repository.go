// Package notes declares the repository contract for note metadata.
package notes

import (
	"context"

	"github.com/dmitrijs2005/notevault/internal/server/models"
)

type Repository interface {
	// Insert stores n. If (AccountID, ClientNoteID) already exists nothing is
	// written and common.ErrorConflict is returned.
	Insert(ctx context.Context, n *models.Note) error

	GetByClientID(ctx context.Context, accountID, clientNoteID string) (*models.Note, error)

	// List returns the account's notes, newest first.
	List(ctx context.Context, accountID string) ([]models.Note, error)
}
