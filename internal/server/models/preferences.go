package models

import "time"

// AuthMethod is the sign-in challenge the user prefers.
type AuthMethod string

const (
	AuthMethodMagic AuthMethod = "magic"
	AuthMethodTOTP  AuthMethod = "totp"
)

// Valid reports whether m is a known method.
func (m AuthMethod) Valid() bool {
	return m == AuthMethodMagic || m == AuthMethodTOTP
}

// Preferences are per-account UI settings.
type Preferences struct {
	AccountID  string
	AuthMethod AuthMethod
	UpdatedAt  time.Time
}
