package totp

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// base32 of the RFC 6238 SHA-1 seed "12345678901234567890".
const rfcSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

func TestCode_RFC6238Vectors(t *testing.T) {
	tests := []struct {
		unix int64
		want string
	}{
		{59, "287082"},
		{1111111109, "081804"},
		{1234567890, "005924"},
	}
	for _, tt := range tests {
		got, err := Code(rfcSecret, time.Unix(tt.unix, 0))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "t=%d", tt.unix)
	}
}

func TestVerify_Window(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	code, err := Code(rfcSecret, now)
	require.NoError(t, err)

	cases := []struct {
		offset time.Duration
		want   bool
	}{
		{0, true},
		{DefaultStep, true},
		{-DefaultStep, true},
		{2 * DefaultStep, false},
		{-2 * DefaultStep, false},
		{3 * DefaultStep, false},
		{-3 * DefaultStep, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Verify(code, rfcSecret, now.Add(tc.offset)), "offset %s", tc.offset)
	}
}

func TestVerify_RejectsMalformed(t *testing.T) {
	now := time.Now()
	assert.False(t, Verify("12345", rfcSecret, now))
	assert.False(t, Verify("abcdef", "not base32!", now))
	assert.False(t, Verify("", rfcSecret, now))
}

func TestVerify_IgnoresWhitespaceAndCase(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	code, err := Code(rfcSecret, now)
	require.NoError(t, err)

	spaced := code[:3] + " " + code[3:]
	assert.True(t, Verify(spaced, strings.ToLower(rfcSecret), now))
}

func TestGenerateSecret(t *testing.T) {
	s, err := GenerateSecret()
	require.NoError(t, err)
	assert.Len(t, s, SecretLen)
	for _, r := range s {
		assert.Contains(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567", string(r))
	}

	_, err = Code(s, time.Now())
	require.NoError(t, err)
}

func TestProvisionURI(t *testing.T) {
	uri := ProvisionURI("Note Vault", "alice", "ABC")
	assert.True(t, strings.HasPrefix(uri, "otpauth://totp/Note%20Vault:alice?"))
	assert.Contains(t, uri, "secret=ABC")
	assert.Contains(t, uri, "digits=6")
	assert.Contains(t, uri, "period=30")
}
