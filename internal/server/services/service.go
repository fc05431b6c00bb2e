// Package services contains server-side business logic: sessions, the two
// sign-in challenges, rate limiting and the key-material operations that sit
// behind an authenticated session.
package services

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/notevault/internal/cryptox"
	"github.com/dmitrijs2005/notevault/internal/server/models"
)

// Labels for the keys derived from the server secret.
const (
	labelTokenPepper = "notevault token pepper v1"
	labelTOTPKey     = "notevault totp secret key v1"
	labelLinkKey     = "notevault login link key v1"
)

// Secrets are the purpose-bound keys derived from the single server secret.
type Secrets struct {
	TokenPepper []byte
	TOTPKey     []byte
	LinkKey     []byte
}

// DeriveSecrets fans serverSecret out into Secrets.
func DeriveSecrets(serverSecret []byte) (*Secrets, error) {
	pepper, err := cryptox.DeriveSubkey(serverSecret, labelTokenPepper, cryptox.KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive token pepper: %w", err)
	}
	totpKey, err := cryptox.DeriveSubkey(serverSecret, labelTOTPKey, cryptox.KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive totp key: %w", err)
	}
	linkKey, err := cryptox.DeriveSubkey(serverSecret, labelLinkKey, cryptox.KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive link key: %w", err)
	}
	return &Secrets{TokenPepper: pepper, TOTPKey: totpKey, LinkKey: linkKey}, nil
}

// IssuedSession is a freshly minted bearer token.
type IssuedSession struct {
	Token     string
	ExpiresAt time.Time
}

// LoginResult is returned by every successful sign-in. It carries what a new
// device needs to derive the master key and the passphrase verifier.
type LoginResult struct {
	AccountID       string
	Username        string
	E2EESalt        []byte
	VerifierSalt    []byte
	VerifierVersion int
	Session         IssuedSession
}

func newLoginResult(a *models.Account, s *IssuedSession) *LoginResult {
	return &LoginResult{
		AccountID:       a.ID,
		Username:        a.Username,
		E2EESalt:        a.E2EESalt,
		VerifierSalt:    a.PassphraseVerifierSalt,
		VerifierVersion: a.PassphraseVerifierVersion,
		Session:         *s,
	}
}
