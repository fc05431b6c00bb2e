package cryptox

import (
	"github.com/dmitrijs2005/notevault/internal/common"
	"golang.org/x/crypto/chacha20poly1305"
)

// SealSecret encrypts a server-held secret (for example a TOTP seed) with
// XChaCha20-Poly1305. The 24-byte nonce is random and returned separately.
func SealSecret(key, plaintext []byte) (ciphertext, nonce []byte, err error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, nil, common.ErrorCryptoFailure
	}
	nonce, err = RandomBytes(chacha20poly1305.NonceSizeX)
	if err != nil {
		return nil, nil, err
	}
	return aead.Seal(nil, nonce, plaintext, nil), nonce, nil
}

// OpenSecret reverses SealSecret.
func OpenSecret(key, ciphertext, nonce []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, common.ErrorCryptoFailure
	}
	if len(nonce) != chacha20poly1305.NonceSizeX {
		return nil, common.ErrorCryptoFailure
	}
	pt, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, common.ErrorCryptoFailure
	}
	return pt, nil
}
