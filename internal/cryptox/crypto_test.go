package cryptox

import (
	"bytes"
	"testing"

	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// small params keep the tests fast; production params live in package keys.
var testParams = KDFParams{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32}

func mustKey(t *testing.T) []byte {
	t.Helper()
	k, err := RandomBytes(KeySize)
	require.NoError(t, err)
	return k
}

func TestDeriveBits_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt-16byt")

	key1, err := DeriveBits(password, salt, testParams)
	require.NoError(t, err)
	key2, err := DeriveBits(password, salt, testParams)
	require.NoError(t, err)

	assert.Equal(t, key1, key2)
	assert.Len(t, key1, 32)
}

func TestDeriveBits_DifferentSalts(t *testing.T) {
	password := []byte("secret-password")

	key1, err := DeriveBits(password, []byte("salt-1"), testParams)
	require.NoError(t, err)
	key2, err := DeriveBits(password, []byte("salt-2"), testParams)
	require.NoError(t, err)

	assert.NotEqual(t, key1, key2)
}

func TestDeriveBits_RejectsBadInput(t *testing.T) {
	_, err := DeriveBits([]byte("pw"), nil, testParams)
	require.Error(t, err)

	_, err = DeriveBits([]byte("pw"), []byte("salt"), KDFParams{})
	require.Error(t, err)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := mustKey(t)
	aad := []byte("device-key:laptop")

	ct, nonce, err := Seal(key, []byte("hello"), aad)
	require.NoError(t, err)
	require.Len(t, nonce, NonceSize)
	require.NotContains(t, string(ct), "hello")

	pt, err := Open(key, ct, nonce, aad)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), pt)
}

func TestSeal_FreshNoncePerCall(t *testing.T) {
	key := mustKey(t)
	_, n1, err := Seal(key, []byte("x"), nil)
	require.NoError(t, err)
	_, n2, err := Seal(key, []byte("x"), nil)
	require.NoError(t, err)
	assert.NotEqual(t, n1, n2)
}

func TestOpen_FailuresCollapseToCryptoFailure(t *testing.T) {
	key := mustKey(t)
	ct, nonce, err := Seal(key, []byte("payload"), []byte("aad-1"))
	require.NoError(t, err)

	tampered := bytes.Clone(ct)
	tampered[0] ^= 0xff

	cases := []struct {
		name  string
		key   []byte
		ct    []byte
		nonce []byte
		aad   []byte
	}{
		{"wrong key", mustKey(t), ct, nonce, []byte("aad-1")},
		{"wrong aad", key, ct, nonce, []byte("aad-2")},
		{"tampered", key, tampered, nonce, []byte("aad-1")},
		{"short nonce", key, ct, nonce[:4], []byte("aad-1")},
		{"short key", key[:16], ct, nonce, []byte("aad-1")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Open(tc.key, tc.ct, tc.nonce, tc.aad)
			require.ErrorIs(t, err, common.ErrorCryptoFailure)
		})
	}
}

func TestHMAC_AndConstantTimeEqual(t *testing.T) {
	a := HMAC([]byte("k"), []byte("m"))
	b := HMAC([]byte("k"), []byte("m"))
	c := HMAC([]byte("k2"), []byte("m"))

	assert.Len(t, a, 32)
	assert.True(t, ConstantTimeEqual(a, b))
	assert.False(t, ConstantTimeEqual(a, c))
	assert.False(t, ConstantTimeEqual(a, a[:31]))
}

func TestHashToken_PepperMatters(t *testing.T) {
	h1 := HashToken([]byte("pepper-1"), "tok")
	h2 := HashToken([]byte("pepper-1"), "tok")
	h3 := HashToken([]byte("pepper-2"), "tok")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 64)
}

func TestDeriveSubkey_LabelSeparation(t *testing.T) {
	secret := []byte("server-secret-server-secret-1234")
	a, err := DeriveSubkey(secret, "a", 32)
	require.NoError(t, err)
	b, err := DeriveSubkey(secret, "b", 32)
	require.NoError(t, err)
	a2, err := DeriveSubkey(secret, "a", 32)
	require.NoError(t, err)

	assert.Equal(t, a, a2)
	assert.NotEqual(t, a, b)

	_, err = DeriveSubkey(nil, "a", 32)
	require.Error(t, err)
}

func TestSealSecret_RoundTripAndTamper(t *testing.T) {
	key := mustKey(t)
	ct, nonce, err := SealSecret(key, []byte("JBSWY3DPEHPK3PXP"))
	require.NoError(t, err)

	pt, err := OpenSecret(key, ct, nonce)
	require.NoError(t, err)
	assert.Equal(t, "JBSWY3DPEHPK3PXP", string(pt))

	ct[0] ^= 1
	_, err = OpenSecret(key, ct, nonce)
	require.ErrorIs(t, err, common.ErrorCryptoFailure)

	_, err = OpenSecret(key[:10], ct, nonce)
	require.ErrorIs(t, err, common.ErrorCryptoFailure)
}
