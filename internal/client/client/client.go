package client

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/notevault/internal/api"
)

var (
	// ErrUnavailable means the server could not be reached or did not answer
	// in time. Callers may retry or continue offline.
	ErrUnavailable = errors.New("notevault server unreachable")
	// ErrNotSignedIn means this data directory holds no session.
	ErrNotSignedIn = errors.New("no session on this device, sign in first")
	// ErrCorruptLocalState is returned when stored session metadata cannot be parsed.
	ErrCorruptLocalState = errors.New("local vault state is corrupt")
)

// Client is the remote API as seen by client services. Authenticated calls
// use the session token held by the client; SessionToken always returns the
// latest one, including rotations.
type Client interface {
	Register(ctx context.Context, req *api.RegisterRequest) (*api.RegisterResponse, error)
	RequestLoginLink(ctx context.Context, email string) (*api.RequestLoginLinkResponse, error)
	VerifyLoginLink(ctx context.Context, req *api.VerifyLoginLinkRequest) (*api.LoginResponse, error)
	LoginWithCode(ctx context.Context, username, code string) (*api.LoginResponse, error)

	StoreMasterWrappedDEK(ctx context.Context, req *api.StoreMasterWrappedDEKRequest) error
	FetchMasterWrappedDEK(ctx context.Context) (*api.WrappedDEKResponse, error)
	UpdatePassphrase(ctx context.Context, req *api.UpdatePassphraseRequest) error
	RegisterDevice(ctx context.Context, req *api.RegisterDeviceRequest) error
	FetchWrappedDEKForDevice(ctx context.Context, deviceID string) (*api.WrappedDEKResponse, error)
	RevokeSession(ctx context.Context) error

	CreateNote(ctx context.Context, req *api.CreateNoteRequest) error
	ListNotes(ctx context.Context) ([]api.Note, error)

	Ping(ctx context.Context) error

	SessionToken() string
	SetSessionToken(token string)
	Close() error
}
