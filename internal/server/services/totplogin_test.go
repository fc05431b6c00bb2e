package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTOTPLogin_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	reg, _ := f.register(t, "alice", "", true)
	require.Len(t, reg.TOTPSecret, totp.SecretLen)
	assert.Contains(t, reg.TOTPURI, "otpauth://totp/")

	code, err := totp.Code(reg.TOTPSecret, f.clock.Now())
	require.NoError(t, err)

	res, err := f.codes.Login(ctx, " alice ", code)
	require.NoError(t, err)
	assert.Equal(t, reg.AccountID, res.AccountID)
	assert.NotEmpty(t, res.Session.Token)
}

func TestTOTPLogin_DriftWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	reg, _ := f.register(t, "alice", "", true)

	code, err := totp.Code(reg.TOTPSecret, f.clock.Now())
	require.NoError(t, err)

	f.clock.Advance(30 * time.Second)
	_, err = f.codes.Login(ctx, "alice", code)
	require.NoError(t, err)

	f.clock.Advance(60 * time.Second)
	_, err = f.codes.Login(ctx, "alice", code)
	require.ErrorIs(t, err, common.ErrInvalidCode)
}

func TestTOTPLogin_GenericFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "alice", "", true)
	f.register(t, "bob", "bob@example.com", false)

	for _, tc := range []struct{ user, code string }{
		{"alice", "000000x"},
		{"nobody", "123456"},
		{"bob", "123456"},
		{"", "123456"},
	} {
		_, err := f.codes.Login(ctx, tc.user, tc.code)
		require.ErrorIs(t, err, common.ErrInvalidCode, "%+v", tc)
		require.ErrorIs(t, err, common.ErrorUnauthorized)
	}
}

func TestTOTPLogin_RateLimited(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	reg, _ := f.register(t, "alice", "", true)

	for i := 0; i < TOTPLoginPolicy.Limit; i++ {
		_, err := f.codes.Login(ctx, "alice", "bad")
		require.ErrorIs(t, err, common.ErrInvalidCode)
	}

	code, err := totp.Code(reg.TOTPSecret, f.clock.Now())
	require.NoError(t, err)
	_, err = f.codes.Login(ctx, "alice", code)
	require.ErrorIs(t, err, common.ErrorRateLimited)

	f.clock.Advance(TOTPLoginPolicy.Window)
	code, err = totp.Code(reg.TOTPSecret, f.clock.Now())
	require.NoError(t, err)
	_, err = f.codes.Login(ctx, "alice", code)
	require.NoError(t, err)
}

func TestTOTPLogin_FailureTakesFloor(t *testing.T) {
	f := newFixture(t)
	f.codes.floor = 30 * time.Millisecond

	start := time.Now()
	_, err := f.codes.Login(context.Background(), "nobody", "123456")
	require.Error(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestTOTPLogin_ExistingAccountOutcomesTakeFloor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	reg, _ := f.register(t, "alice", "", true)

	floor := 40 * time.Millisecond
	f.codes.floor = floor

	code, err := totp.Code(reg.TOTPSecret, f.clock.Now())
	require.NoError(t, err)
	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}

	start := time.Now()
	_, err = f.codes.Login(ctx, "alice", wrong)
	require.ErrorIs(t, err, common.ErrInvalidCode)
	assert.GreaterOrEqual(t, time.Since(start), floor)

	start = time.Now()
	_, err = f.codes.Login(ctx, "alice", code)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), floor)
}
