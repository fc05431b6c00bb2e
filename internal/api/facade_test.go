package api_test

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/notevault/internal/api"
	"github.com/dmitrijs2005/notevault/internal/api/apitest"
	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/keys"
	"github.com/dmitrijs2005/notevault/internal/proof"
	"github.com/dmitrijs2005/notevault/internal/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func masterWrapped(t *testing.T) keys.Wrapped {
	t.Helper()
	dek, err := keys.GenerateDEK()
	require.NoError(t, err)
	mk, err := keys.GenerateDEK()
	require.NoError(t, err)
	w, err := keys.WrapDEKWithMaster(dek, mk)
	require.NoError(t, err)
	return w
}

func requireKind(t *testing.T, err error, kind error) *api.Error {
	t.Helper()
	require.Error(t, err)
	var pub *api.Error
	require.ErrorAs(t, err, &pub)
	require.ErrorIs(t, pub, kind)
	return pub
}

func TestFacade_MasterWrappedDEKRoundTrip(t *testing.T) {
	ctx := context.Background()
	env := apitest.New(t)

	req, verifier := apitest.RegisterRequest(t, "alice", "alice@example.com", false)
	reg, err := env.Facade.Register(ctx, req)
	require.NoError(t, err)
	assert.Len(t, reg.E2EESalt, keys.SaltLen)
	assert.Empty(t, reg.TOTPSecret)

	_, err = env.Facade.FetchMasterWrappedDEK(ctx, &api.SessionRequest{SessionToken: reg.SessionToken})
	requireKind(t, err, common.ErrorNotFound)

	w := masterWrapped(t)
	ok, err := env.Facade.StoreMasterWrappedDEK(ctx, &api.StoreMasterWrappedDEKRequest{
		SessionToken:    reg.SessionToken,
		WrappedDEK:      w.Ciphertext,
		WrapNonce:       w.Nonce,
		Version:         w.Version,
		PassphraseProof: proof.Create(verifier, reg.SessionToken),
	})
	require.NoError(t, err)
	assert.True(t, ok.OK)
	assert.Equal(t, reg.SessionToken, ok.SessionToken)

	got, err := env.Facade.FetchMasterWrappedDEK(ctx, &api.SessionRequest{SessionToken: reg.SessionToken})
	require.NoError(t, err)
	assert.Equal(t, w.Ciphertext, got.WrappedDEK)
	assert.Equal(t, w.Nonce, got.WrapNonce)
	assert.Equal(t, keys.MasterWrapVersion, got.Version)
}

func TestFacade_StoreWithWrongProofIsUnauthorized(t *testing.T) {
	ctx := context.Background()
	env := apitest.New(t)

	req, _ := apitest.RegisterRequest(t, "alice", "alice@example.com", false)
	reg, err := env.Facade.Register(ctx, req)
	require.NoError(t, err)

	other, _ := apitest.Credentials(t)
	w := masterWrapped(t)
	_, err = env.Facade.StoreMasterWrappedDEK(ctx, &api.StoreMasterWrappedDEKRequest{
		SessionToken:    reg.SessionToken,
		WrappedDEK:      w.Ciphertext,
		WrapNonce:       w.Nonce,
		Version:         w.Version,
		PassphraseProof: proof.Create(other, reg.SessionToken),
	})
	pub := requireKind(t, err, common.ErrorUnauthorized)
	assert.Equal(t, "unauthorized", pub.Message)
}

func TestFacade_ValidationBeforeAuthorization(t *testing.T) {
	ctx := context.Background()
	env := apitest.New(t)

	req, _ := apitest.RegisterRequest(t, "alice", "alice@example.com", false)
	reg, err := env.Facade.Register(ctx, req)
	require.NoError(t, err)

	_, err = env.Facade.StoreMasterWrappedDEK(ctx, &api.StoreMasterWrappedDEKRequest{
		SessionToken: reg.SessionToken,
		WrappedDEK:   []byte("x"),
		WrapNonce:    make([]byte, 11),
		Version:      keys.MasterWrapVersion,
	})
	requireKind(t, err, common.ErrorValidation)
}

func TestFacade_UnknownSession(t *testing.T) {
	env := apitest.New(t)

	_, err := env.Facade.ListNotes(context.Background(), &api.SessionRequest{SessionToken: "nope"})
	requireKind(t, err, common.ErrorUnauthorized)
}

func TestFacade_RegisterConflict(t *testing.T) {
	ctx := context.Background()
	env := apitest.New(t)

	req, _ := apitest.RegisterRequest(t, "alice", "alice@example.com", false)
	_, err := env.Facade.Register(ctx, req)
	require.NoError(t, err)

	again, _ := apitest.RegisterRequest(t, " alice ", "other@example.com", false)
	_, err = env.Facade.Register(ctx, again)
	requireKind(t, err, common.ErrorConflict)
}

func TestFacade_LoginLinkFlow(t *testing.T) {
	ctx := context.Background()
	env := apitest.New(t)

	req, _ := apitest.RegisterRequest(t, "alice", "alice@example.com", false)
	reg, err := env.Facade.Register(ctx, req)
	require.NoError(t, err)

	sent, err := env.Facade.RequestLoginLink(ctx, &api.RequestLoginLinkRequest{Email: "Alice@Example.com"})
	require.NoError(t, err)
	assert.True(t, sent.ExpiresAt.After(time.Now()))

	msg, ok := env.Outbox.Last()
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", msg.To)
	link := apitest.LinkFromMail(t, msg)

	login, err := env.Facade.VerifyLoginLink(ctx, &api.VerifyLoginLinkRequest{Link: link})
	require.NoError(t, err)
	assert.Equal(t, reg.AccountID, login.AccountID)
	assert.Equal(t, "alice", login.Username)
	assert.Equal(t, reg.E2EESalt, login.E2EESalt)
	assert.Equal(t, req.PassphraseVerifierSalt, login.PassphraseVerifierSalt)
	assert.NotEqual(t, reg.SessionToken, login.SessionToken)

	_, err = env.Facade.VerifyLoginLink(ctx, &api.VerifyLoginLinkRequest{Link: link})
	pub := requireKind(t, err, common.ErrorUnauthorized)
	assert.Equal(t, common.ErrInvalidOrExpired.Error(), pub.Message)
}

func TestFacade_LoginLinkUnknownEmailLooksTheSame(t *testing.T) {
	env := apitest.New(t)

	sent, err := env.Facade.RequestLoginLink(context.Background(), &api.RequestLoginLinkRequest{Email: "ghost@example.com"})
	require.NoError(t, err)
	assert.False(t, sent.ExpiresAt.IsZero())

	_, ok := env.Outbox.Last()
	assert.False(t, ok)
}

func TestFacade_LoginLinkRateLimited(t *testing.T) {
	ctx := context.Background()
	env := apitest.New(t)

	for i := 0; i < 5; i++ {
		_, err := env.Facade.RequestLoginLink(ctx, &api.RequestLoginLinkRequest{Email: "a@example.com"})
		require.NoError(t, err)
	}
	_, err := env.Facade.RequestLoginLink(ctx, &api.RequestLoginLinkRequest{Email: "a@example.com"})
	requireKind(t, err, common.ErrorRateLimited)
}

func TestFacade_LoginWithCode(t *testing.T) {
	ctx := context.Background()
	env := apitest.New(t)

	req, _ := apitest.RegisterRequest(t, "bob", "", true)
	reg, err := env.Facade.Register(ctx, req)
	require.NoError(t, err)
	require.Len(t, reg.TOTPSecret, totp.SecretLen)
	assert.Contains(t, reg.TOTPURI, "otpauth://totp/")

	code, err := totp.Code(reg.TOTPSecret, time.Now())
	require.NoError(t, err)

	login, err := env.Facade.LoginWithCode(ctx, &api.LoginWithCodeRequest{Username: " bob", Code: code})
	require.NoError(t, err)
	assert.Equal(t, reg.AccountID, login.AccountID)

	_, err = env.Facade.LoginWithCode(ctx, &api.LoginWithCodeRequest{Username: "bob", Code: "000000x"})
	pub := requireKind(t, err, common.ErrorUnauthorized)
	assert.Equal(t, common.ErrInvalidCode.Error(), pub.Message)
}

func TestFacade_UpdatePassphrase(t *testing.T) {
	ctx := context.Background()
	env := apitest.New(t)

	req, verifier := apitest.RegisterRequest(t, "alice", "alice@example.com", false)
	reg, err := env.Facade.Register(ctx, req)
	require.NoError(t, err)

	next, nextSalt := apitest.Credentials(t)
	newSalt, err := keys.NewSalt()
	require.NoError(t, err)
	w := masterWrapped(t)

	change := &api.UpdatePassphraseRequest{
		SessionToken:        reg.SessionToken,
		NewE2EESalt:         newSalt,
		NewWrappedDEK:       w.Ciphertext,
		NewWrapNonce:        w.Nonce,
		Version:             w.Version,
		PassphraseProof:     proof.Create(verifier, reg.SessionToken),
		NextVerifier:        next,
		NextVerifierSalt:    nextSalt,
		NextVerifierVersion: keys.KDFVersion1,
	}
	_, err = env.Facade.UpdatePassphrase(ctx, change)
	require.NoError(t, err)

	// the old verifier no longer proves anything
	_, err = env.Facade.UpdatePassphrase(ctx, change)
	requireKind(t, err, common.ErrorUnauthorized)

	got, err := env.Facade.FetchMasterWrappedDEK(ctx, &api.SessionRequest{SessionToken: reg.SessionToken})
	require.NoError(t, err)
	assert.Equal(t, w.Ciphertext, got.WrappedDEK)

	sent, err := env.Facade.RequestLoginLink(ctx, &api.RequestLoginLinkRequest{Email: "alice@example.com"})
	require.NoError(t, err)
	require.False(t, sent.ExpiresAt.IsZero())
	msg, _ := env.Outbox.Last()
	login, err := env.Facade.VerifyLoginLink(ctx, &api.VerifyLoginLinkRequest{Link: apitest.LinkFromMail(t, msg)})
	require.NoError(t, err)
	assert.Equal(t, newSalt, login.E2EESalt)
	assert.Equal(t, nextSalt, login.PassphraseVerifierSalt)
}

func TestFacade_Devices(t *testing.T) {
	ctx := context.Background()
	env := apitest.New(t)

	req, _ := apitest.RegisterRequest(t, "alice", "alice@example.com", false)
	reg, err := env.Facade.Register(ctx, req)
	require.NoError(t, err)

	devKey, err := keys.GenerateDEK()
	require.NoError(t, err)
	dek, err := keys.GenerateDEK()
	require.NoError(t, err)
	w, err := keys.WrapDEKForDevice(dek, devKey)
	require.NoError(t, err)

	_, err = env.Facade.FetchWrappedDEKForDevice(ctx, &api.FetchWrappedDEKForDeviceRequest{SessionToken: reg.SessionToken, DeviceID: "laptop"})
	requireKind(t, err, common.ErrorNotFound)

	resp, err := env.Facade.RegisterDevice(ctx, &api.RegisterDeviceRequest{
		SessionToken: reg.SessionToken,
		DeviceID:     "laptop",
		WrappedDEK:   w.Ciphertext,
		WrapNonce:    w.Nonce,
		Version:      w.Version,
	})
	require.NoError(t, err)
	assert.Equal(t, "laptop", resp.DeviceID)

	got, err := env.Facade.FetchWrappedDEKForDevice(ctx, &api.FetchWrappedDEKForDeviceRequest{SessionToken: reg.SessionToken, DeviceID: "laptop"})
	require.NoError(t, err)

	unwrapped, err := keys.UnwrapDEKForDevice(keys.Wrapped{
		Kind: keys.KindDevice, Version: got.Version, Ciphertext: got.WrappedDEK, Nonce: got.WrapNonce,
	}, devKey)
	require.NoError(t, err)
	assert.Equal(t, dek, unwrapped)
}

func TestFacade_Notes(t *testing.T) {
	ctx := context.Background()
	env := apitest.New(t)

	req, _ := apitest.RegisterRequest(t, "alice", "alice@example.com", false)
	reg, err := env.Facade.Register(ctx, req)
	require.NoError(t, err)

	dek, err := keys.GenerateDEK()
	require.NoError(t, err)
	sealed, err := keys.SealNote(dek, []byte("buy milk"), reg.AccountID, "n1")
	require.NoError(t, err)

	create := &api.CreateNoteRequest{
		SessionToken: reg.SessionToken,
		ClientNoteID: "n1",
		Ciphertext:   sealed.Ciphertext,
		Nonce:        sealed.Nonce,
		AAD:          sealed.AAD,
		Version:      sealed.Version,
		CreatedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	_, err = env.Facade.CreateNote(ctx, create)
	require.NoError(t, err)
	_, err = env.Facade.CreateNote(ctx, create)
	require.NoError(t, err)

	list, err := env.Facade.ListNotes(ctx, &api.SessionRequest{SessionToken: reg.SessionToken})
	require.NoError(t, err)
	require.Len(t, list.Notes, 1)

	n := list.Notes[0]
	assert.Equal(t, "n1", n.ID)
	pt, err := keys.OpenNote(dek, &keys.SealedNote{Ciphertext: n.Ciphertext, Nonce: n.Nonce, AAD: n.AAD, Version: n.Version})
	require.NoError(t, err)
	assert.Equal(t, "buy milk", string(pt))
}

func TestFacade_Preferences(t *testing.T) {
	ctx := context.Background()
	env := apitest.New(t)

	req, _ := apitest.RegisterRequest(t, "alice", "alice@example.com", false)
	reg, err := env.Facade.Register(ctx, req)
	require.NoError(t, err)

	p, err := env.Facade.GetPreferences(ctx, &api.SessionRequest{SessionToken: reg.SessionToken})
	require.NoError(t, err)
	assert.Equal(t, "magic", p.AuthMethod)
	assert.False(t, p.TOTPEnabled)

	_, err = env.Facade.UpdatePreferences(ctx, &api.UpdatePreferencesRequest{SessionToken: reg.SessionToken, AuthMethod: "totp"})
	requireKind(t, err, common.ErrorValidation)

	_, err = env.Facade.UpdatePreferences(ctx, &api.UpdatePreferencesRequest{SessionToken: reg.SessionToken, AuthMethod: "sms"})
	requireKind(t, err, common.ErrorValidation)
}

func TestFacade_RevokeSession(t *testing.T) {
	ctx := context.Background()
	env := apitest.New(t)

	req, _ := apitest.RegisterRequest(t, "alice", "alice@example.com", false)
	reg, err := env.Facade.Register(ctx, req)
	require.NoError(t, err)

	ok, err := env.Facade.RevokeSession(ctx, &api.SessionRequest{SessionToken: reg.SessionToken})
	require.NoError(t, err)
	assert.True(t, ok.OK)

	_, err = env.Facade.RevokeSession(ctx, &api.SessionRequest{SessionToken: reg.SessionToken})
	require.NoError(t, err)

	_, err = env.Facade.GetPreferences(ctx, &api.SessionRequest{SessionToken: reg.SessionToken})
	requireKind(t, err, common.ErrorUnauthorized)
}

func TestFacade_Ping(t *testing.T) {
	resp, err := apitest.New(t).Facade.Ping(context.Background(), &api.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)
}
