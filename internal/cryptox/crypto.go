// Package cryptox is the only place that touches raw cryptographic
// primitives. Everything above it works with keys, ciphertexts and nonces as
// opaque byte slices.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/notevault/internal/common"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the length of every symmetric key (AES-256).
	KeySize = 32
	// NonceSize is the AES-GCM nonce length.
	NonceSize = 12
)

// KDFParams describes one Argon2id parameter set.
type KDFParams struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
}

// DeriveBits runs Argon2id over password and salt and returns p.KeyLen bytes.
// The output is deterministic for identical inputs.
func DeriveBits(password, salt []byte, p KDFParams) ([]byte, error) {
	if p.Time == 0 || p.Memory == 0 || p.Threads == 0 || p.KeyLen == 0 {
		return nil, errors.New("invalid kdf params")
	}
	if len(salt) == 0 {
		return nil, errors.New("empty salt")
	}
	return argon2.IDKey(password, salt, p.Time, p.Memory, p.Threads, p.KeyLen), nil
}

// RandomBytes returns n bytes from crypto/rand.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("random: %w", err)
	}
	return b, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, common.ErrorCryptoFailure
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, common.ErrorCryptoFailure
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, common.ErrorCryptoFailure
	}
	return aead, nil
}

// Seal encrypts plaintext with AES-256-GCM under key. A fresh random 12-byte
// nonce is generated for every call and returned separately from the
// ciphertext. aad is authenticated but not encrypted and may be nil.
//
// Example:
//
//	ct, nonce, err := cryptox.Seal(key, dek, []byte("device-key:laptop"))
//	if err != nil {
//	    return err
//	}
//	pt, err := cryptox.Open(key, ct, nonce, []byte("device-key:laptop"))
func Seal(key, plaintext, aad []byte) (ciphertext, nonce []byte, err error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce, err = RandomBytes(NonceSize)
	if err != nil {
		return nil, nil, err
	}

	ciphertext = aead.Seal(nil, nonce, plaintext, aad)
	return ciphertext, nonce, nil
}

// Open reverses Seal. Any failure (wrong key, tampered ciphertext, wrong
// nonce, mismatched aad) is reported as common.ErrorCryptoFailure and nothing
// more specific.
func Open(key, ciphertext, nonce, aad []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(nonce) != aead.NonceSize() {
		return nil, common.ErrorCryptoFailure
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, common.ErrorCryptoFailure
	}
	return plaintext, nil
}

// HMAC computes HMAC-SHA-256(key, message).
func HMAC(key, message []byte) []byte {
	m := hmac.New(sha256.New, key)
	m.Write(message)
	return m.Sum(nil)
}

// ConstantTimeEqual reports whether a and b are equal without an early exit
// on the first differing byte.
func ConstantTimeEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// HashToken returns the lookup index stored in place of a bearer token.
func HashToken(pepper []byte, token string) string {
	return hex.EncodeToString(HMAC(pepper, []byte(token)))
}

// DeriveSubkey expands secret into an n-byte key bound to label.
func DeriveSubkey(secret []byte, label string, n int) ([]byte, error) {
	if len(secret) == 0 {
		return nil, errors.New("empty secret")
	}
	out := make([]byte, n)
	r := hkdf.New(sha256.New, secret, nil, []byte(label))
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, fmt.Errorf("hkdf: %w", err)
	}
	return out, nil
}
