package metadata

import (
	"context"
)

// Key names a metadata entry.
type Key string

const (
	KeyAccountID       Key = "account_id"
	KeyUsername        Key = "username"
	KeySessionToken    Key = "session_token"
	KeyE2EESalt        Key = "e2ee_salt"
	KeyVerifierSalt    Key = "verifier_salt"
	KeyVerifierVersion Key = "verifier_version"

	// KeyDeviceID outlives sessions.
	KeyDeviceID Key = "device_id"
)

// SessionKeys are the entries that describe a signed-in session.
var SessionKeys = []Key{
	KeyAccountID, KeyUsername, KeySessionToken,
	KeyE2EESalt, KeyVerifierSalt, KeyVerifierVersion,
}

// Repository reads and writes metadata. Get returns (nil, nil) for a missing
// key.
type Repository interface {
	Get(ctx context.Context, key Key) ([]byte, error)
	GetString(ctx context.Context, key Key) (string, error)
	Set(ctx context.Context, key Key, value []byte) error
	SetString(ctx context.Context, key Key, value string) error
	Delete(ctx context.Context, keys ...Key) error
	List(ctx context.Context) (map[Key][]byte, error)
	Clear(ctx context.Context) error
}
