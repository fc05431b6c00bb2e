package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/notevault/internal/cryptox"
	"github.com/dmitrijs2005/notevault/internal/keys"
	"github.com/dmitrijs2005/notevault/internal/logging"
	"github.com/dmitrijs2005/notevault/internal/server/blobstore"
	"github.com/dmitrijs2005/notevault/internal/server/mailer"
	"github.com/dmitrijs2005/notevault/internal/server/models"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/memory"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type captureMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error
}

func (m *captureMailer) Send(_ context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return m.err
}

func (m *captureMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type fixture struct {
	store    *memory.Manager
	secrets  *Secrets
	clock    *fakeClock
	mail     *captureMailer
	blobs    *blobstore.Memory
	sessions *SessionService
	limiter  *StoreLimiter
	accounts *AccountService
	links    *LoginLinkService
	codes    *TOTPLoginService
	devices  *DeviceService
	notes    *NoteService
	prefs    *PreferencesService
}

func discardLogger() logging.Logger {
	return logging.Discard()
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	secret, err := cryptox.RandomBytes(32)
	require.NoError(t, err)
	secrets, err := DeriveSecrets(secret)
	require.NoError(t, err)

	f := &fixture{
		store:   memory.NewManager(),
		secrets: secrets,
		clock:   &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)},
		mail:    &captureMailer{},
		blobs:   blobstore.NewMemory(),
	}
	log := discardLogger()

	f.sessions = NewSessionService(f.store, f.store, log, secrets.TokenPepper, 7*24*time.Hour, 24*time.Hour)
	f.sessions.now = f.clock.Now

	f.limiter = NewStoreLimiter(f.store, f.store)
	f.limiter.now = f.clock.Now

	f.accounts = NewAccountService(f.store, f.store, f.sessions, log, secrets.TOTPKey, "notevault")
	f.accounts.now = f.clock.Now

	f.links = NewLoginLinkService(f.store, f.store, f.sessions, f.limiter, f.mail, log, LoginLinkConfig{
		TokenPepper:   secrets.TokenPepper,
		LinkKey:       secrets.LinkKey,
		TTL:           15 * time.Minute,
		PublicBaseURL: "https://notes.example.com/",
	})
	f.links.now = f.clock.Now

	f.codes = NewTOTPLoginService(f.store, f.store, f.sessions, f.limiter, log, secrets.TOTPKey, 0)
	f.codes.now = f.clock.Now

	f.devices = NewDeviceService(f.store, f.store)
	f.notes = NewNoteService(f.store, f.store, f.blobs)
	f.notes.now = f.clock.Now
	f.prefs = NewPreferencesService(f.store, f.store)

	return f
}

// verifierInput returns random verifier material of the right shape. The
// verifier is used directly as proof key in tests.
func verifierInput(t *testing.T) (verifier, salt []byte) {
	t.Helper()
	verifier, err := cryptox.RandomBytes(keys.VerifierLen)
	require.NoError(t, err)
	salt, err = keys.NewSalt()
	require.NoError(t, err)
	return verifier, salt
}

func (f *fixture) register(t *testing.T, username, email string, totpOn bool) (*Registered, []byte) {
	t.Helper()
	verifier, salt := verifierInput(t)
	reg, err := f.accounts.Register(context.Background(), RegisterInput{
		Username:        username,
		Email:           email,
		EnableTOTP:      totpOn,
		Verifier:        verifier,
		VerifierSalt:    salt,
		VerifierVersion: keys.KDFVersion1,
	})
	require.NoError(t, err)
	return reg, verifier
}

func hashFor(f *fixture, token string) string {
	return cryptox.HashToken(f.secrets.TokenPepper, token)
}

func accountByName(t *testing.T, f *fixture, username string) *models.Account {
	t.Helper()
	a, err := f.store.Accounts(f.store.Conn()).GetByUsername(context.Background(), username)
	require.NoError(t, err)
	return a
}
