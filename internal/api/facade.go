package api

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/keys"
	"github.com/dmitrijs2005/notevault/internal/logging"
	"github.com/dmitrijs2005/notevault/internal/server/models"
	"github.com/dmitrijs2005/notevault/internal/server/services"
)

// Facade exposes every external operation. Each method returns either a
// response or an *Error; transports only translate.
type Facade struct {
	sessions *services.SessionService
	accounts *services.AccountService
	links    *services.LoginLinkService
	codes    *services.TOTPLoginService
	devices  *services.DeviceService
	notes    *services.NoteService
	prefs    *services.PreferencesService
	log      logging.Logger
}

func NewFacade(s *services.Set, log logging.Logger) *Facade {
	return &Facade{
		sessions: s.Sessions,
		accounts: s.Accounts,
		links:    s.LoginLinks,
		codes:    s.TOTPLogin,
		devices:  s.Devices,
		notes:    s.Notes,
		prefs:    s.Preferences,
		log:      log.With("module", "api"),
	}
}

// fail classifies err and logs it when it is not one of the expected kinds.
func (f *Facade) fail(ctx context.Context, op string, err error) error {
	pub := Classify(err)
	if errors.Is(pub, common.ErrorInternal) {
		f.log.Error(ctx, "operation failed", "op", op, "error", err)
	}
	return pub
}

func (f *Facade) resolve(ctx context.Context, op, token string) (*services.Resolved, error) {
	res, err := f.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, f.fail(ctx, op, err)
	}
	return res, nil
}

func loginResponse(r *services.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccountID:                 r.AccountID,
		Username:                  r.Username,
		E2EESalt:                  r.E2EESalt,
		PassphraseVerifierSalt:    r.VerifierSalt,
		PassphraseVerifierVersion: r.VerifierVersion,
		SessionToken:              r.Session.Token,
	}
}

func (f *Facade) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	reg, err := f.accounts.Register(ctx, services.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		EnableTOTP:      req.EnableTOTP,
		Verifier:        req.PassphraseVerifier,
		VerifierSalt:    req.PassphraseVerifierSalt,
		VerifierVersion: req.PassphraseVerifierVersion,
	})
	if err != nil {
		return nil, f.fail(ctx, "register", err)
	}
	return &RegisterResponse{
		AccountID:    reg.AccountID,
		E2EESalt:     reg.E2EESalt,
		SessionToken: reg.Session.Token,
		TOTPSecret:   reg.TOTPSecret,
		TOTPURI:      reg.TOTPURI,
	}, nil
}

func (f *Facade) RequestLoginLink(ctx context.Context, req *RequestLoginLinkRequest) (*RequestLoginLinkResponse, error) {
	res, err := f.links.Request(ctx, req.Email)
	if err != nil {
		return nil, f.fail(ctx, "requestLoginLink", err)
	}
	return &RequestLoginLinkResponse{ExpiresAt: res.ExpiresAt}, nil
}

func (f *Facade) VerifyLoginLink(ctx context.Context, req *VerifyLoginLinkRequest) (*LoginResponse, error) {
	var (
		res *services.LoginResult
		err error
	)
	if req.Link != "" {
		res, err = f.links.VerifyLink(ctx, req.Link)
	} else {
		res, err = f.links.Verify(ctx, req.Email, req.Token)
	}
	if err != nil {
		return nil, f.fail(ctx, "verifyLoginLink", err)
	}
	return loginResponse(res), nil
}

func (f *Facade) LoginWithCode(ctx context.Context, req *LoginWithCodeRequest) (*LoginResponse, error) {
	res, err := f.codes.Login(ctx, req.Username, req.Code)
	if err != nil {
		return nil, f.fail(ctx, "loginWithCode", err)
	}
	return loginResponse(res), nil
}

func (f *Facade) StoreMasterWrappedDEK(ctx context.Context, req *StoreMasterWrappedDEKRequest) (*OKResponse, error) {
	const op = "storeMasterWrappedDek"
	sess, err := f.resolve(ctx, op, req.SessionToken)
	if err != nil {
		return nil, err
	}

	w := keys.Wrapped{Kind: keys.KindMaster, Version: req.Version, Ciphertext: req.WrappedDEK, Nonce: req.WrapNonce}
	if err := f.accounts.StoreMasterWrappedDEK(ctx, sess.AccountID, sess.Presented, w, req.PassphraseProof); err != nil {
		return nil, f.fail(ctx, op, err)
	}
	return &OKResponse{OK: true, SessionToken: sess.Token}, nil
}

func (f *Facade) FetchMasterWrappedDEK(ctx context.Context, req *SessionRequest) (*WrappedDEKResponse, error) {
	const op = "fetchMasterWrappedDek"
	sess, err := f.resolve(ctx, op, req.SessionToken)
	if err != nil {
		return nil, err
	}

	w, err := f.accounts.FetchMasterWrappedDEK(ctx, sess.AccountID)
	if err != nil {
		return nil, f.fail(ctx, op, err)
	}
	return &WrappedDEKResponse{WrappedDEK: w.Ciphertext, WrapNonce: w.Nonce, Version: w.Version, SessionToken: sess.Token}, nil
}

func (f *Facade) UpdatePassphrase(ctx context.Context, req *UpdatePassphraseRequest) (*OKResponse, error) {
	const op = "updatePassphrase"
	sess, err := f.resolve(ctx, op, req.SessionToken)
	if err != nil {
		return nil, err
	}

	err = f.accounts.UpdatePassphrase(ctx, sess.AccountID, sess.Presented, services.PassphraseChange{
		NewE2EESalt: req.NewE2EESalt,
		NewWrappedDEK: keys.Wrapped{
			Kind:       keys.KindMaster,
			Version:    req.Version,
			Ciphertext: req.NewWrappedDEK,
			Nonce:      req.NewWrapNonce,
		},
		Proof:               req.PassphraseProof,
		NextVerifier:        req.NextVerifier,
		NextVerifierSalt:    req.NextVerifierSalt,
		NextVerifierVersion: req.NextVerifierVersion,
	})
	if err != nil {
		return nil, f.fail(ctx, op, err)
	}
	return &OKResponse{OK: true, SessionToken: sess.Token}, nil
}

func (f *Facade) RegisterDevice(ctx context.Context, req *RegisterDeviceRequest) (*RegisterDeviceResponse, error) {
	const op = "registerDevice"
	sess, err := f.resolve(ctx, op, req.SessionToken)
	if err != nil {
		return nil, err
	}

	w := keys.Wrapped{Kind: keys.KindDevice, Version: req.Version, Ciphertext: req.WrappedDEK, Nonce: req.WrapNonce}
	if err := f.devices.RegisterDevice(ctx, sess.AccountID, req.DeviceID, w); err != nil {
		return nil, f.fail(ctx, op, err)
	}
	return &RegisterDeviceResponse{DeviceID: req.DeviceID, SessionToken: sess.Token}, nil
}

func (f *Facade) FetchWrappedDEKForDevice(ctx context.Context, req *FetchWrappedDEKForDeviceRequest) (*WrappedDEKResponse, error) {
	const op = "fetchWrappedDekForDevice"
	sess, err := f.resolve(ctx, op, req.SessionToken)
	if err != nil {
		return nil, err
	}

	w, err := f.devices.FetchWrappedDEKForDevice(ctx, sess.AccountID, req.DeviceID)
	if err != nil {
		return nil, f.fail(ctx, op, err)
	}
	return &WrappedDEKResponse{WrappedDEK: w.Ciphertext, WrapNonce: w.Nonce, Version: w.Version, SessionToken: sess.Token}, nil
}

// RevokeSession always succeeds, also for unknown tokens.
func (f *Facade) RevokeSession(ctx context.Context, req *SessionRequest) (*OKResponse, error) {
	if err := f.sessions.Revoke(ctx, req.SessionToken); err != nil {
		return nil, f.fail(ctx, "revokeSession", err)
	}
	return &OKResponse{OK: true}, nil
}

func (f *Facade) CreateNote(ctx context.Context, req *CreateNoteRequest) (*OKResponse, error) {
	const op = "createNote"
	sess, err := f.resolve(ctx, op, req.SessionToken)
	if err != nil {
		return nil, err
	}

	err = f.notes.CreateNote(ctx, sess.AccountID, services.NoteInput{
		ClientNoteID: req.ClientNoteID,
		Ciphertext:   req.Ciphertext,
		Nonce:        req.Nonce,
		AAD:          req.AAD,
		Version:      req.Version,
		CreatedAt:    req.CreatedAt,
	})
	if err != nil {
		return nil, f.fail(ctx, op, err)
	}
	return &OKResponse{OK: true, SessionToken: sess.Token}, nil
}

func (f *Facade) ListNotes(ctx context.Context, req *SessionRequest) (*ListNotesResponse, error) {
	const op = "listNotes"
	sess, err := f.resolve(ctx, op, req.SessionToken)
	if err != nil {
		return nil, err
	}

	list, err := f.notes.ListNotes(ctx, sess.AccountID)
	if err != nil {
		return nil, f.fail(ctx, op, err)
	}

	out := make([]Note, 0, len(list))
	for _, n := range list {
		out = append(out, Note{
			ID:         n.ClientNoteID,
			Ciphertext: n.Ciphertext,
			Nonce:      n.Nonce,
			AAD:        n.AAD,
			Version:    n.Version,
			CreatedAt:  n.CreatedAt,
		})
	}
	return &ListNotesResponse{Notes: out, SessionToken: sess.Token}, nil
}

func (f *Facade) GetPreferences(ctx context.Context, req *SessionRequest) (*PreferencesResponse, error) {
	const op = "getPreferences"
	sess, err := f.resolve(ctx, op, req.SessionToken)
	if err != nil {
		return nil, err
	}

	p, err := f.prefs.Get(ctx, sess.AccountID)
	if err != nil {
		return nil, f.fail(ctx, op, err)
	}
	return &PreferencesResponse{AuthMethod: string(p.AuthMethod), TOTPEnabled: p.TOTPEnabled, SessionToken: sess.Token}, nil
}

func (f *Facade) UpdatePreferences(ctx context.Context, req *UpdatePreferencesRequest) (*PreferencesResponse, error) {
	const op = "updatePreferences"
	sess, err := f.resolve(ctx, op, req.SessionToken)
	if err != nil {
		return nil, err
	}

	p, err := f.prefs.Update(ctx, sess.AccountID, models.AuthMethod(req.AuthMethod))
	if err != nil {
		return nil, f.fail(ctx, op, err)
	}
	return &PreferencesResponse{AuthMethod: string(p.AuthMethod), TOTPEnabled: p.TOTPEnabled, SessionToken: sess.Token}, nil
}

func (f *Facade) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return &PingResponse{Status: "OK"}, nil
}
