package models

import "time"

// Account is a registered user. Nothing here is enough to decrypt notes:
// the server holds the DEK only in wrapped form and the verifier is derived
// with a salt unrelated to the e2ee salt.
type Account struct {
	ID       string
	Username string
	// Email is empty when the account signs in with codes only.
	Email string

	E2EESalt []byte

	MasterWrappedDEK     []byte
	MasterWrappedNonce   []byte
	MasterWrappedVersion int

	PassphraseVerifier        []byte
	PassphraseVerifierSalt    []byte
	PassphraseVerifierVersion int

	TOTP TOTPState

	CreatedAt time.Time
}

// HasMasterWrappedDEK reports whether the DEK has been stored yet.
func (a *Account) HasMasterWrappedDEK() bool {
	return len(a.MasterWrappedDEK) > 0
}

// TOTPState is either TOTPEnabled or TOTPDisabled.
type TOTPState interface {
	totpState()
}

// TOTPEnabled carries the sealed TOTP secret.
type TOTPEnabled struct {
	Ciphertext []byte
	Nonce      []byte
}

// TOTPDisabled means the account has no code-based sign-in.
type TOTPDisabled struct{}

func (TOTPEnabled) totpState()  {}
func (TOTPDisabled) totpState() {}

// TOTPFromColumns maps the nullable storage columns onto a TOTPState.
func TOTPFromColumns(ciphertext, nonce []byte) TOTPState {
	if len(ciphertext) == 0 || len(nonce) == 0 {
		return TOTPDisabled{}
	}
	return TOTPEnabled{Ciphertext: ciphertext, Nonce: nonce}
}

// TOTPColumns is the inverse of TOTPFromColumns.
func TOTPColumns(s TOTPState) (ciphertext, nonce []byte) {
	switch v := s.(type) {
	case TOTPEnabled:
		return v.Ciphertext, v.Nonce
	default:
		return nil, nil
	}
}

// TOTPIsEnabled reports whether s is TOTPEnabled.
func TOTPIsEnabled(s TOTPState) bool {
	_, ok := s.(TOTPEnabled)
	return ok
}
