package models

import "time"

// LoginLink is a pending one-time sign-in link. The token itself is only
// ever sent to the account's email address.
type LoginLink struct {
	ID        string
	AccountID string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
