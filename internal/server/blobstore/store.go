// Package blobstore keeps note ciphertext outside the relational store.
// Objects are opaque; the server never sees plaintext.
package blobstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Store saves and loads objects by key. Get returns common.ErrorNotFound for
// missing keys.
type Store interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}

// NewKey returns a fresh object key for an account's note.
func NewKey(accountID string, now time.Time) string {
	return fmt.Sprintf("notes/%s/%d/%d/%d/%v", accountID, now.Year(), now.Month(), now.Day(), uuid.New())
}
