// Package proof binds knowledge of the passphrase verifier to a live session.
// A proof is HMAC-SHA-256(verifier, sessionToken); it is only meaningful for
// the session it was computed against.
package proof

import "github.com/dmitrijs2005/notevault/internal/cryptox"

// Create computes the proof for sessionToken.
func Create(verifier []byte, sessionToken string) []byte {
	return cryptox.HMAC(verifier, []byte(sessionToken))
}

// Verify recomputes the proof and compares it in constant time.
func Verify(verifier []byte, sessionToken string, proof []byte) bool {
	if len(verifier) == 0 || len(proof) == 0 {
		return false
	}
	return cryptox.ConstantTimeEqual(Create(verifier, sessionToken), proof)
}
