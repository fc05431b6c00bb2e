package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/notevault/internal/client/client"
	"github.com/dmitrijs2005/notevault/internal/client/config"
	"github.com/dmitrijs2005/notevault/internal/client/services"
	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVault struct {
	session *services.Session
	dek     []byte
	notes   []services.Note
	pingErr error

	registered struct {
		username, email string
		totp            bool
		passphrase      string
	}
	verifiedLink string
	unlockWith   string
	changed      [2]string
	closed       bool
}

func (f *fakeVault) Resume(context.Context) (*services.Session, error) {
	if f.session == nil {
		return nil, client.ErrNotSignedIn
	}
	return f.session, nil
}

func (f *fakeVault) Register(_ context.Context, username, email string, enableTOTP bool, passphrase []byte) (*services.RegisterResult, error) {
	f.registered.username, f.registered.email, f.registered.totp = username, email, enableTOTP
	f.registered.passphrase = string(passphrase)
	f.session = &services.Session{Username: username}
	res := &services.RegisterResult{AccountID: "acc-1"}
	if enableTOTP {
		res.TOTPSecret, res.TOTPURI = "SECRET", "otpauth://totp/x"
	}
	return res, nil
}

func (f *fakeVault) RequestLoginLink(context.Context, string) (time.Time, error) {
	return time.Now().Add(15 * time.Minute), nil
}

func (f *fakeVault) VerifyLoginLink(_ context.Context, link string) (*services.Session, error) {
	f.verifiedLink = link
	f.session = &services.Session{Username: "alice"}
	return f.session, nil
}

func (f *fakeVault) LoginWithCode(_ context.Context, username, code string) (*services.Session, error) {
	if code != "123456" {
		return nil, common.ErrInvalidCode
	}
	f.session = &services.Session{Username: username}
	return f.session, nil
}

func (f *fakeVault) Unlock(_ context.Context, passphrase []byte) ([]byte, error) {
	f.unlockWith = string(passphrase)
	if string(passphrase) != "pw" {
		return nil, common.ErrorCryptoFailure
	}
	return append([]byte(nil), f.dek...), nil
}

func (f *fakeVault) ChangePassphrase(_ context.Context, oldPassphrase, newPassphrase []byte) error {
	f.changed = [2]string{string(oldPassphrase), string(newPassphrase)}
	return nil
}

func (f *fakeVault) AddNote(_ context.Context, _ []byte, body []byte) (string, error) {
	f.notes = append(f.notes, services.Note{ID: "n1", Body: body, CreatedAt: time.Now()})
	return "n1", nil
}

func (f *fakeVault) ListNotes(context.Context, []byte) ([]services.Note, error) {
	return f.notes, nil
}

func (f *fakeVault) Logout(context.Context) error {
	f.session = nil
	return nil
}

func (f *fakeVault) Ping(context.Context) error { return f.pingErr }
func (f *fakeVault) Close() error              { f.closed = true; return nil }

func testApp(t *testing.T, v *fakeVault, input string) (*App, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	out := &bytes.Buffer{}
	log := logging.NewConsoleLogger(io.Discard, 0, true)
	return newApp(cfg, v, nil, log, strings.NewReader(input), out), out
}

func TestApp_RegisterWithTOTP(t *testing.T) {
	stubPasswords(t, "pw", "pw")
	v := &fakeVault{}
	a, out := testApp(t, v, "alice@example.com\ny\n")

	require.NoError(t, a.Register(context.Background(), []string{" alice "}))

	assert.Equal(t, " alice ", v.registered.username)
	assert.Equal(t, "alice@example.com", v.registered.email)
	assert.True(t, v.registered.totp)
	assert.Equal(t, "pw", v.registered.passphrase)
	assert.Equal(t, "alice", a.userName)
	assert.Contains(t, out.String(), "Authenticator secret: SECRET")
}

func TestApp_RegisterPassphraseMismatch(t *testing.T) {
	stubPasswords(t, "pw", "nope")
	v := &fakeVault{}
	a, _ := testApp(t, v, "\nn\n")

	err := a.Register(context.Background(), []string{"alice"})
	assert.ErrorIs(t, err, errPassphraseMismatch)
	assert.Empty(t, v.registered.username)
}

func TestApp_VerifyLinkAcceptsURL(t *testing.T) {
	v := &fakeVault{}
	a, out := testApp(t, v, "")

	require.NoError(t, a.VerifyLink(context.Background(), []string{"https://notes.example.com/login/verify?t=signed.jwt.token"}))
	assert.Equal(t, "signed.jwt.token", v.verifiedLink)
	assert.Equal(t, "alice", a.userName)
	assert.Contains(t, out.String(), "Signed in as alice")
}

func TestLinkToken(t *testing.T) {
	assert.Equal(t, "abc", linkToken("https://h/login/verify?t=abc"))
	assert.Equal(t, "abc", linkToken("abc"))
	assert.Equal(t, "https://h/other", linkToken("https://h/other"))
}

func TestApp_CodeLogin(t *testing.T) {
	v := &fakeVault{}
	a, _ := testApp(t, v, "bob\n654321\n")

	err := a.CodeLogin(context.Background(), nil)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	require.NoError(t, a.CodeLogin(context.Background(), []string{"bob", "123456"}))
	assert.Equal(t, "bob", a.userName)
}

func TestApp_AddNoteUnlocksFirst(t *testing.T) {
	stubPasswords(t, "pw")
	v := &fakeVault{session: &services.Session{Username: "alice"}, dek: []byte("0123456789abcdef0123456789abcdef")}
	a, out := testApp(t, v, "")

	require.NoError(t, a.AddNote(context.Background(), []string{"buy", "milk"}))
	assert.True(t, a.isUnlocked())
	require.Len(t, v.notes, 1)
	assert.Equal(t, "buy milk", string(v.notes[0].Body))

	require.NoError(t, a.List(context.Background()))
	assert.Contains(t, out.String(), "n1")
	assert.Contains(t, out.String(), "buy milk")
}

func TestApp_AddNoteMultiline(t *testing.T) {
	stubPasswords(t, "pw")
	v := &fakeVault{dek: []byte("k")}
	a, _ := testApp(t, v, "line one\nline two\n\n")

	require.NoError(t, a.AddNote(context.Background(), nil))
	assert.Equal(t, "line one\nline two", string(v.notes[0].Body))
}

func TestApp_UnlockWrongPassphrase(t *testing.T) {
	stubPasswords(t, "bad")
	a, _ := testApp(t, &fakeVault{}, "")

	assert.EqualError(t, a.Unlock(context.Background()), "wrong passphrase")
	assert.False(t, a.isUnlocked())
}

func TestApp_ChangePassphrase(t *testing.T) {
	stubPasswords(t, "old", "new", "new")
	v := &fakeVault{}
	a, _ := testApp(t, v, "")

	require.NoError(t, a.ChangePassphrase(context.Background()))
	assert.Equal(t, [2]string{"old", "new"}, v.changed)
}

func TestApp_LogoutForgetsDEK(t *testing.T) {
	v := &fakeVault{session: &services.Session{Username: "alice"}}
	a, _ := testApp(t, v, "")
	a.dek = []byte("key")
	a.userName = "alice"

	require.NoError(t, a.Logout(context.Background()))
	assert.False(t, a.isUnlocked())
	assert.Empty(t, a.userName)
	assert.Nil(t, v.session)
}

func TestApp_StatusAndMode(t *testing.T) {
	v := &fakeVault{pingErr: client.ErrUnavailable}
	a, out := testApp(t, v, "")

	require.NoError(t, a.Status(context.Background()))
	assert.Equal(t, ModeOffline, a.Mode())
	assert.Contains(t, out.String(), "Not signed in (offline)")

	v.pingErr = nil
	v.session = &services.Session{Username: "alice"}
	require.NoError(t, a.Status(context.Background()))
	assert.Equal(t, ModeOnline, a.Mode())
	assert.Contains(t, out.String(), "Signed in as alice (online)")
}

func TestApp_GetStatus(t *testing.T) {
	a, _ := testApp(t, &fakeVault{}, "")
	assert.Empty(t, a.getStatus())

	a.userName = "alice"
	a.dek = []byte("k")
	a.setMode(context.Background(), ModeOnline)
	assert.Equal(t, "(alice unlocked online)", a.getStatus())
}

func TestApp_RunSubcommand(t *testing.T) {
	v := &fakeVault{session: &services.Session{Username: "alice"}}
	a, out := testApp(t, v, "")

	require.NoError(t, a.Run(context.Background(), []string{"-a", "h:1", "status"}))
	assert.Contains(t, out.String(), "Signed in as alice")
	assert.True(t, v.closed)
}

func TestApp_RunUnknownSubcommand(t *testing.T) {
	a, _ := testApp(t, &fakeVault{}, "")
	assert.EqualError(t, a.Run(context.Background(), []string{"frobnicate"}), "unknown command: frobnicate")
}

func TestApp_RunREPLUntilExit(t *testing.T) {
	captureOutput(t)
	v := &fakeVault{}
	a, out := testApp(t, v, "status\nexit\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, a.Run(ctx, nil))
	assert.Contains(t, out.String(), "Not signed in")
	assert.True(t, v.closed)
}
