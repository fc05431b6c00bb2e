package models

import "time"

// Note is client-encrypted note metadata. The ciphertext itself lives in the
// blob store under StorageKey.
type Note struct {
	ID           string
	AccountID    string
	ClientNoteID string
	StorageKey   string
	Nonce        []byte
	AAD          []byte
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Ciphertext is populated by the service layer, never by repositories.
	Ciphertext []byte
}
