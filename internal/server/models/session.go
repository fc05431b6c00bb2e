package models

import "time"

// Session is a server-side session. Only the hash of the bearer token is
// stored.
type Session struct {
	ID        string
	AccountID string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
