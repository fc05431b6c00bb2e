// Package accounts declares the server-side repository contract for user
// accounts and their key material.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/notevault/internal/server/models"
)

// Repository stores accounts. Lookups of a missing account return
// common.ErrorNotFound; duplicate usernames or emails return
// common.ErrorConflict.
type Repository interface {
	Create(ctx context.Context, a *models.Account) error
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)

	// UpdateMasterWrappedDEK replaces the stored master-wrapped DEK.
	UpdateMasterWrappedDEK(ctx context.Context, id string, ciphertext, nonce []byte, version int) error

	// UpdatePassphrase replaces the e2ee salt, the master-wrapped DEK and the
	// verifier triple in one statement.
	UpdatePassphrase(ctx context.Context, id string, u PassphraseUpdate) error
}

// PassphraseUpdate is the full set of fields that change together when the
// passphrase changes.
type PassphraseUpdate struct {
	E2EESalt             []byte
	MasterWrappedDEK     []byte
	MasterWrappedNonce   []byte
	MasterWrappedVersion int
	Verifier             []byte
	VerifierSalt         []byte
	VerifierVersion      int
}
