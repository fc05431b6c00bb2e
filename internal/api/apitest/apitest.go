// Package apitest builds a Facade over in-memory stores for transport tests.
package apitest

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/notevault/internal/api"
	"github.com/dmitrijs2005/notevault/internal/cryptox"
	"github.com/dmitrijs2005/notevault/internal/keys"
	"github.com/dmitrijs2005/notevault/internal/logging"
	"github.com/dmitrijs2005/notevault/internal/server/blobstore"
	"github.com/dmitrijs2005/notevault/internal/server/mailer"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/memory"
	"github.com/dmitrijs2005/notevault/internal/server/services"
	"github.com/stretchr/testify/require"
)

// Outbox records every message instead of sending it.
type Outbox struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (o *Outbox) Send(_ context.Context, m mailer.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, m)
	return nil
}

// Last returns the most recent message, or false if none was sent.
func (o *Outbox) Last() (mailer.Message, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.sent) == 0 {
		return mailer.Message{}, false
	}
	return o.sent[len(o.sent)-1], true
}

// Env is a Facade with its in-memory collaborators exposed.
type Env struct {
	Facade *api.Facade
	Store  *memory.Manager
	Outbox *Outbox
	Log    logging.Logger
}

func Discard() logging.Logger {
	return logging.Discard()
}

// New returns an Env with no auth floor and production rate limits.
func New(t *testing.T) *Env {
	t.Helper()

	secret, err := cryptox.RandomBytes(32)
	require.NoError(t, err)
	secrets, err := services.DeriveSecrets(secret)
	require.NoError(t, err)

	store := memory.NewManager()
	outbox := &Outbox{}
	log := Discard()

	set := services.NewSet(services.Options{
		Tx:            store,
		Repos:         store,
		Secrets:       secrets,
		Limiter:       services.NewStoreLimiter(store, store),
		Mailer:        outbox,
		Blobs:         blobstore.NewMemory(),
		Log:           log,
		SessionTTL:    7 * 24 * time.Hour,
		RefreshWindow: 24 * time.Hour,
		LinkTTL:       15 * time.Minute,
		PublicBaseURL: "https://notes.example.com",
		TOTPIssuer:    "notevault",
	})

	return &Env{Facade: api.NewFacade(set, log), Store: store, Outbox: outbox, Log: log}
}

// Credentials returns random verifier material of the right shape.
func Credentials(t *testing.T) (verifier, salt []byte) {
	t.Helper()
	verifier, err := cryptox.RandomBytes(keys.VerifierLen)
	require.NoError(t, err)
	salt, err = keys.NewSalt()
	require.NoError(t, err)
	return verifier, salt
}

// RegisterRequest builds a valid request for username and returns the
// verifier it carries.
func RegisterRequest(t *testing.T, username, email string, totpOn bool) (*api.RegisterRequest, []byte) {
	t.Helper()
	verifier, salt := Credentials(t)
	return &api.RegisterRequest{
		Username:                  username,
		Email:                     email,
		EnableTOTP:                totpOn,
		PassphraseVerifier:        verifier,
		PassphraseVerifierSalt:    salt,
		PassphraseVerifierVersion: keys.KDFVersion1,
	}, verifier
}

// LinkFromMail extracts the signed token from an emailed login URL.
func LinkFromMail(t *testing.T, m mailer.Message) string {
	t.Helper()
	for _, word := range strings.Fields(m.Body) {
		u, err := url.Parse(word)
		if err != nil || u.Scheme != "https" {
			continue
		}
		if tok := u.Query().Get("t"); tok != "" {
			return tok
		}
	}
	t.Fatalf("no login link in message to %s", m.To)
	return ""
}
