package models

import "time"

// RateLimitBucket is one fixed window for a key.
type RateLimitBucket struct {
	Key     string
	Count   int
	ResetAt time.Time
}
