package models

import "time"

// Device holds the DEK wrapped under one device's key. There is at most one
// row per (AccountID, DeviceID).
type Device struct {
	AccountID  string
	DeviceID   string
	WrappedDEK []byte
	Nonce      []byte
	Version    int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
