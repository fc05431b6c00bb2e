// Package keys implements the key hierarchy:
//
//	passphrase --Argon2id--> master key --wraps--> DEK, device keys
//	passphrase --Argon2id--> verifier (independent salt)
//	device key --wraps--> DEK (server-held copy)
//
// The data encryption key (DEK) never leaves this package unwrapped except
// to the caller that asked for it.
package keys

import (
	"fmt"

	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/cryptox"
)

const (
	// SaltLen is the length of both the e2ee salt and the verifier salt.
	SaltLen = 16
	// VerifierLen is the length of a passphrase verifier.
	VerifierLen = 32
	// DEKLen is the length of data and device keys.
	DEKLen = cryptox.KeySize

	// KDFVersion1 is Argon2id t=3, m=64MiB, p=1.
	KDFVersion1 = 1
	// CurrentKDFVersion is used for all new derivations.
	CurrentKDFVersion = KDFVersion1
)

var paramSets = map[int]cryptox.KDFParams{
	KDFVersion1: {Time: 3, Memory: 64 * 1024, Threads: 1, KeyLen: 32},
}

// ParamsFor returns the Argon2id parameters for a stored version number.
func ParamsFor(version int) (cryptox.KDFParams, error) {
	p, ok := paramSets[version]
	if !ok {
		return cryptox.KDFParams{}, fmt.Errorf("kdf version %d: %w", version, common.ErrUnsupportedVersion)
	}
	return p, nil
}

// SupportedVerifierVersion reports whether a verifier derived with version can
// be accepted.
func SupportedVerifierVersion(version int) bool {
	_, ok := paramSets[version]
	return ok
}

// NewSalt returns SaltLen random bytes.
func NewSalt() ([]byte, error) {
	return cryptox.RandomBytes(SaltLen)
}

// CheckLen rejects b unless it has exactly n bytes.
func CheckLen(name string, b []byte, n int) error {
	if len(b) != n {
		return fmt.Errorf("%s: want %d bytes, got %d: %w", name, n, len(b), common.ErrLengthMismatch)
	}
	return nil
}

// DeriveMasterKey derives the 32-byte master key from the passphrase and the
// account's e2ee salt using the current KDF version.
func DeriveMasterKey(passphrase []byte, salt []byte) ([]byte, error) {
	if err := CheckLen("e2ee salt", salt, SaltLen); err != nil {
		return nil, err
	}
	p, err := ParamsFor(CurrentKDFVersion)
	if err != nil {
		return nil, err
	}
	return cryptox.DeriveBits(passphrase, salt, p)
}

// DerivePassphraseVerifier derives the verifier that is shared with the server.
// Its salt must be independent of the e2ee salt, so the server never holds
// anything that yields the master key.
func DerivePassphraseVerifier(passphrase []byte, salt []byte, version int) ([]byte, error) {
	if err := CheckLen("verifier salt", salt, SaltLen); err != nil {
		return nil, err
	}
	p, err := ParamsFor(version)
	if err != nil {
		return nil, err
	}
	return cryptox.DeriveBits(passphrase, salt, p)
}

// GenerateDEK returns a fresh random data encryption key.
func GenerateDEK() ([]byte, error) {
	return cryptox.RandomBytes(DEKLen)
}
