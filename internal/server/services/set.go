package services

import (
	"time"

	"github.com/dmitrijs2005/notevault/internal/dbx"
	"github.com/dmitrijs2005/notevault/internal/logging"
	"github.com/dmitrijs2005/notevault/internal/server/blobstore"
	"github.com/dmitrijs2005/notevault/internal/server/mailer"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/repomanager"
)

// Options are the dependencies and settings shared by all services.
type Options struct {
	Tx      dbx.Transactor
	Repos   repomanager.RepositoryManager
	Secrets *Secrets
	Limiter Limiter
	Mailer  mailer.Mailer
	Blobs   blobstore.Store
	Log     logging.Logger

	SessionTTL    time.Duration
	RefreshWindow time.Duration
	LinkTTL       time.Duration
	AuthFloor     time.Duration
	PublicBaseURL string
	TOTPIssuer    string
}

// Set holds one instance of every service, sharing a single SessionService.
type Set struct {
	Sessions    *SessionService
	Accounts    *AccountService
	LoginLinks  *LoginLinkService
	TOTPLogin   *TOTPLoginService
	Devices     *DeviceService
	Notes       *NoteService
	Preferences *PreferencesService
}

func NewSet(o Options) *Set {
	sessions := NewSessionService(o.Tx, o.Repos, o.Log, o.Secrets.TokenPepper, o.SessionTTL, o.RefreshWindow)
	return &Set{
		Sessions: sessions,
		Accounts: NewAccountService(o.Tx, o.Repos, sessions, o.Log, o.Secrets.TOTPKey, o.TOTPIssuer),
		LoginLinks: NewLoginLinkService(o.Tx, o.Repos, sessions, o.Limiter, o.Mailer, o.Log, LoginLinkConfig{
			TokenPepper:   o.Secrets.TokenPepper,
			LinkKey:       o.Secrets.LinkKey,
			TTL:           o.LinkTTL,
			Floor:         o.AuthFloor,
			PublicBaseURL: o.PublicBaseURL,
		}),
		TOTPLogin:   NewTOTPLoginService(o.Tx, o.Repos, sessions, o.Limiter, o.Log, o.Secrets.TOTPKey, o.AuthFloor),
		Devices:     NewDeviceService(o.Tx, o.Repos),
		Notes:       NewNoteService(o.Tx, o.Repos, o.Blobs),
		Preferences: NewPreferencesService(o.Tx, o.Repos),
	}
}
