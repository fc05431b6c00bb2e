// Package services contains application services for the notevault client.
// VaultService drives the end-to-end flows: registration with DEK bootstrap,
// sign-in by login link or TOTP code, unlocking the DEK on this device,
// passphrase changes and encrypted notes.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/notevault/internal/api"
	"github.com/dmitrijs2005/notevault/internal/client/client"
	"github.com/dmitrijs2005/notevault/internal/client/repositories/devices"
	"github.com/dmitrijs2005/notevault/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/dbx"
	"github.com/dmitrijs2005/notevault/internal/keys"
	"github.com/dmitrijs2005/notevault/internal/proof"
	"github.com/google/uuid"
)

// Session is the signed-in state kept in local metadata.
type Session struct {
	AccountID       string
	Username        string
	Token           string
	E2EESalt        []byte
	VerifierSalt    []byte
	VerifierVersion int
}

type RegisterResult struct {
	AccountID  string
	TOTPSecret string
	TOTPURI    string
}

type Note struct {
	ID        string
	Body      []byte
	CreatedAt time.Time
}

type VaultService struct {
	client   client.Client
	db       *sql.DB
	deviceID string
	now      func() time.Time
}

func NewVaultService(c client.Client, db *sql.DB, deviceID string) *VaultService {
	return &VaultService{client: c, db: db, deviceID: deviceID, now: time.Now}
}

func (s *VaultService) metadataRepo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (s *VaultService) devicesRepo(db dbx.DBTX) devices.Repository {
	return devices.NewSQLiteRepository(db)
}

// Resume hands the stored session token to the client. It returns
// client.ErrNotSignedIn when there is none.
func (s *VaultService) Resume(ctx context.Context) (*Session, error) {
	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}
	s.client.SetSessionToken(sess.Token)
	return sess, nil
}

func (s *VaultService) session(ctx context.Context) (*Session, error) {
	m, err := s.metadataRepo(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	if len(m[metadata.KeySessionToken]) == 0 || len(m[metadata.KeyAccountID]) == 0 {
		return nil, client.ErrNotSignedIn
	}
	version, err := strconv.Atoi(string(m[metadata.KeyVerifierVersion]))
	if err != nil {
		return nil, fmt.Errorf("%w: bad verifier version", client.ErrCorruptLocalState)
	}
	return &Session{
		AccountID:       string(m[metadata.KeyAccountID]),
		Username:        string(m[metadata.KeyUsername]),
		Token:           string(m[metadata.KeySessionToken]),
		E2EESalt:        m[metadata.KeyE2EESalt],
		VerifierSalt:    m[metadata.KeyVerifierSalt],
		VerifierVersion: version,
	}, nil
}

func (s *VaultService) saveSession(ctx context.Context, sess *Session) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.metadataRepo(tx)
		values := map[metadata.Key][]byte{
			metadata.KeyAccountID:       []byte(sess.AccountID),
			metadata.KeyUsername:        []byte(sess.Username),
			metadata.KeySessionToken:    []byte(sess.Token),
			metadata.KeyE2EESalt:        sess.E2EESalt,
			metadata.KeyVerifierSalt:    sess.VerifierSalt,
			metadata.KeyVerifierVersion: []byte(strconv.Itoa(sess.VerifierVersion)),
		}
		for _, k := range metadata.SessionKeys {
			if err := repo.Set(ctx, k, values[k]); err != nil {
				return err
			}
		}
		return nil
	})
}

// syncToken stores the client's current token if the server rotated it.
func (s *VaultService) syncToken(ctx context.Context, sess *Session) error {
	token := s.client.SessionToken()
	if token == "" || token == sess.Token {
		return nil
	}
	sess.Token = token
	return s.metadataRepo(s.db).SetString(ctx, metadata.KeySessionToken, token)
}

func (s *VaultService) fromLogin(resp *api.LoginResponse) *Session {
	return &Session{
		AccountID:       resp.AccountID,
		Username:        resp.Username,
		Token:           resp.SessionToken,
		E2EESalt:        resp.E2EESalt,
		VerifierSalt:    resp.PassphraseVerifierSalt,
		VerifierVersion: resp.PassphraseVerifierVersion,
	}
}

// Register creates the account, signs in and stores a fresh master-wrapped
// DEK so the account is usable right away.
func (s *VaultService) Register(ctx context.Context, username, email string, enableTOTP bool, passphrase []byte) (*RegisterResult, error) {
	verifierSalt, err := keys.NewSalt()
	if err != nil {
		return nil, err
	}
	verifier, err := keys.DerivePassphraseVerifier(passphrase, verifierSalt, keys.CurrentKDFVersion)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Register(ctx, &api.RegisterRequest{
		Username:                  username,
		Email:                     email,
		EnableTOTP:                enableTOTP,
		PassphraseVerifier:        verifier,
		PassphraseVerifierSalt:    verifierSalt,
		PassphraseVerifierVersion: keys.CurrentKDFVersion,
	})
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}

	sess := &Session{
		AccountID:       resp.AccountID,
		Username:        common.NormalizeUsername(username),
		Token:           resp.SessionToken,
		E2EESalt:        resp.E2EESalt,
		VerifierSalt:    verifierSalt,
		VerifierVersion: keys.CurrentKDFVersion,
	}
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	dek, err := s.bootstrapDEK(ctx, sess, passphrase, verifier)
	if err != nil {
		return nil, err
	}
	common.WipeByteArray(dek)

	return &RegisterResult{AccountID: resp.AccountID, TOTPSecret: resp.TOTPSecret, TOTPURI: resp.TOTPURI}, nil
}

// bootstrapDEK creates the account's DEK, stores it wrapped under the master
// key and provisions this device.
func (s *VaultService) bootstrapDEK(ctx context.Context, sess *Session, passphrase, verifier []byte) ([]byte, error) {
	master, err := keys.DeriveMasterKey(passphrase, sess.E2EESalt)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(master)

	dek, err := keys.GenerateDEK()
	if err != nil {
		return nil, err
	}
	w, err := keys.WrapDEKWithMaster(dek, master)
	if err != nil {
		return nil, err
	}

	token := s.client.SessionToken()
	err = s.client.StoreMasterWrappedDEK(ctx, &api.StoreMasterWrappedDEKRequest{
		SessionToken:    token,
		WrappedDEK:      w.Ciphertext,
		WrapNonce:       w.Nonce,
		Version:         w.Version,
		PassphraseProof: proof.Create(verifier, token),
	})
	if err != nil {
		return nil, fmt.Errorf("store wrapped dek error: %w", err)
	}
	if err := s.syncToken(ctx, sess); err != nil {
		return nil, err
	}

	if err := s.provisionDevice(ctx, sess, master, dek); err != nil {
		return nil, err
	}
	return dek, nil
}

// provisionDevice creates a device key, registers the DEK wrapped under it
// and keeps the device key locally, wrapped under the master key.
func (s *VaultService) provisionDevice(ctx context.Context, sess *Session, master, dek []byte) error {
	bundle, err := keys.ProvisionDevice(master, s.deviceID)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(bundle.Key)

	w, err := keys.WrapDEKForDevice(dek, bundle.Key)
	if err != nil {
		return err
	}
	err = s.client.RegisterDevice(ctx, &api.RegisterDeviceRequest{
		DeviceID:   s.deviceID,
		WrappedDEK: w.Ciphertext,
		WrapNonce:  w.Nonce,
		Version:    w.Version,
	})
	if err != nil {
		return fmt.Errorf("register device error: %w", err)
	}
	if err := s.syncToken(ctx, sess); err != nil {
		return err
	}

	rec := &devices.Record{
		AccountID: sess.AccountID,
		Bundle: keys.DeviceBundle{
			DeviceID:     bundle.DeviceID,
			EncryptedKey: bundle.EncryptedKey,
			Nonce:        bundle.Nonce,
			Version:      bundle.Version,
		},
		CreatedAt: s.now().UTC(),
	}
	return s.devicesRepo(s.db).Save(ctx, rec)
}

func (s *VaultService) RequestLoginLink(ctx context.Context, email string) (time.Time, error) {
	resp, err := s.client.RequestLoginLink(ctx, email)
	if err != nil {
		return time.Time{}, err
	}
	return resp.ExpiresAt, nil
}

// VerifyLoginLink signs in with the link token from the emailed URL.
func (s *VaultService) VerifyLoginLink(ctx context.Context, link string) (*Session, error) {
	resp, err := s.client.VerifyLoginLink(ctx, &api.VerifyLoginLinkRequest{Link: link})
	if err != nil {
		return nil, err
	}
	sess := s.fromLogin(resp)
	return sess, s.saveSession(ctx, sess)
}

func (s *VaultService) LoginWithCode(ctx context.Context, username, code string) (*Session, error) {
	resp, err := s.client.LoginWithCode(ctx, username, code)
	if err != nil {
		return nil, err
	}
	sess := s.fromLogin(resp)
	return sess, s.saveSession(ctx, sess)
}

// Unlock recovers the DEK. The local device record is tried first; the
// master-wrapped copy is the fallback, and an account without one gets a new
// DEK. Either fallback provisions this device again.
func (s *VaultService) Unlock(ctx context.Context, passphrase []byte) ([]byte, error) {
	sess, err := s.Resume(ctx)
	if err != nil {
		return nil, err
	}
	master, err := keys.DeriveMasterKey(passphrase, sess.E2EESalt)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(master)

	dek, err := s.unlockWithDevice(ctx, sess, master)
	if err == nil {
		return dek, nil
	}
	if !errors.Is(err, common.ErrorNotFound) && !errors.Is(err, common.ErrorCryptoFailure) {
		return nil, err
	}

	resp, err := s.client.FetchMasterWrappedDEK(ctx)
	if errors.Is(err, common.ErrorNotFound) {
		verifier, err := keys.DerivePassphraseVerifier(passphrase, sess.VerifierSalt, sess.VerifierVersion)
		if err != nil {
			return nil, err
		}
		return s.bootstrapDEK(ctx, sess, passphrase, verifier)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch wrapped dek error: %w", err)
	}
	if err := s.syncToken(ctx, sess); err != nil {
		return nil, err
	}

	dek, err = keys.UnwrapDEKWithMaster(keys.Wrapped{
		Kind: keys.KindMaster, Version: resp.Version, Ciphertext: resp.WrappedDEK, Nonce: resp.WrapNonce,
	}, master)
	if err != nil {
		return nil, err
	}
	if err := s.provisionDevice(ctx, sess, master, dek); err != nil {
		return nil, err
	}
	return dek, nil
}

// unlockWithDevice returns common.ErrorNotFound when this device has no
// usable record and common.ErrorCryptoFailure when the record does not open
// under master, e.g. after a passphrase change on another device.
func (s *VaultService) unlockWithDevice(ctx context.Context, sess *Session, master []byte) ([]byte, error) {
	rec, err := s.devicesRepo(s.db).Get(ctx, sess.AccountID, s.deviceID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, common.ErrorNotFound
	}

	deviceKey, err := keys.OpenDevice(&rec.Bundle, master)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(deviceKey)

	resp, err := s.client.FetchWrappedDEKForDevice(ctx, s.deviceID)
	if err != nil {
		return nil, err
	}
	if err := s.syncToken(ctx, sess); err != nil {
		return nil, err
	}

	return keys.UnwrapDEKForDevice(keys.Wrapped{
		Kind: keys.KindDevice, Version: resp.Version, Ciphertext: resp.WrappedDEK, Nonce: resp.WrapNonce,
	}, deviceKey)
}

// ChangePassphrase rewraps the DEK under a key derived from newPassphrase,
// rotates both salts and the verifier, and provisions this device again.
func (s *VaultService) ChangePassphrase(ctx context.Context, oldPassphrase, newPassphrase []byte) error {
	sess, err := s.Resume(ctx)
	if err != nil {
		return err
	}

	resp, err := s.client.FetchMasterWrappedDEK(ctx)
	if err != nil {
		return fmt.Errorf("fetch wrapped dek error: %w", err)
	}
	if err := s.syncToken(ctx, sess); err != nil {
		return err
	}

	oldMaster, err := keys.DeriveMasterKey(oldPassphrase, sess.E2EESalt)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(oldMaster)

	dek, err := keys.UnwrapDEKWithMaster(keys.Wrapped{
		Kind: keys.KindMaster, Version: resp.Version, Ciphertext: resp.WrappedDEK, Nonce: resp.WrapNonce,
	}, oldMaster)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(dek)

	oldVerifier, err := keys.DerivePassphraseVerifier(oldPassphrase, sess.VerifierSalt, sess.VerifierVersion)
	if err != nil {
		return err
	}

	next := &Session{AccountID: sess.AccountID, Username: sess.Username, VerifierVersion: keys.CurrentKDFVersion}
	if next.E2EESalt, err = keys.NewSalt(); err != nil {
		return err
	}
	if next.VerifierSalt, err = keys.NewSalt(); err != nil {
		return err
	}
	newMaster, err := keys.DeriveMasterKey(newPassphrase, next.E2EESalt)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(newMaster)

	w, err := keys.WrapDEKWithMaster(dek, newMaster)
	if err != nil {
		return err
	}
	nextVerifier, err := keys.DerivePassphraseVerifier(newPassphrase, next.VerifierSalt, next.VerifierVersion)
	if err != nil {
		return err
	}

	token := s.client.SessionToken()
	err = s.client.UpdatePassphrase(ctx, &api.UpdatePassphraseRequest{
		SessionToken:        token,
		NewE2EESalt:         next.E2EESalt,
		NewWrappedDEK:       w.Ciphertext,
		NewWrapNonce:        w.Nonce,
		Version:             w.Version,
		PassphraseProof:     proof.Create(oldVerifier, token),
		NextVerifier:        nextVerifier,
		NextVerifierSalt:    next.VerifierSalt,
		NextVerifierVersion: next.VerifierVersion,
	})
	if err != nil {
		return fmt.Errorf("update passphrase error: %w", err)
	}

	next.Token = s.client.SessionToken()
	if err := s.saveSession(ctx, next); err != nil {
		return err
	}
	return s.provisionDevice(ctx, next, newMaster, dek)
}

// AddNote seals body under dek and uploads it. The returned id is the
// client note id.
func (s *VaultService) AddNote(ctx context.Context, dek, body []byte) (string, error) {
	sess, err := s.Resume(ctx)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	sealed, err := keys.SealNote(dek, body, sess.AccountID, id)
	if err != nil {
		return "", err
	}
	err = s.client.CreateNote(ctx, &api.CreateNoteRequest{
		ClientNoteID: id,
		Ciphertext:   sealed.Ciphertext,
		Nonce:        sealed.Nonce,
		AAD:          sealed.AAD,
		Version:      sealed.Version,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("create note error: %w", err)
	}
	return id, s.syncToken(ctx, sess)
}

func (s *VaultService) ListNotes(ctx context.Context, dek []byte) ([]Note, error) {
	sess, err := s.Resume(ctx)
	if err != nil {
		return nil, err
	}

	remote, err := s.client.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes error: %w", err)
	}
	if err := s.syncToken(ctx, sess); err != nil {
		return nil, err
	}

	notes := make([]Note, 0, len(remote))
	for _, n := range remote {
		body, err := keys.OpenNote(dek, &keys.SealedNote{Ciphertext: n.Ciphertext, Nonce: n.Nonce, AAD: n.AAD, Version: n.Version})
		if err != nil {
			return nil, fmt.Errorf("note %s: %w", n.ID, err)
		}
		notes = append(notes, Note{ID: n.ID, Body: body, CreatedAt: n.CreatedAt})
	}
	return notes, nil
}

// Logout revokes the session on the server and forgets it locally. Device
// records are kept so the next unlock on this device stays local.
func (s *VaultService) Logout(ctx context.Context) error {
	if _, err := s.Resume(ctx); err != nil {
		return err
	}
	if err := s.client.RevokeSession(ctx); err != nil && !errors.Is(err, client.ErrUnavailable) {
		return err
	}
	return s.metadataRepo(s.db).Delete(ctx, metadata.SessionKeys...)
}

func (s *VaultService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *VaultService) Close() error {
	return s.client.Close()
}

// LocalDeviceID returns the device id kept in db, generating one on first use.
func LocalDeviceID(ctx context.Context, db *sql.DB) (string, error) {
	repo := metadata.NewSQLiteRepository(db)
	id, err := repo.GetString(ctx, metadata.KeyDeviceID)
	if err != nil || id != "" {
		return id, err
	}
	id = "dev-" + uuid.NewString()
	return id, repo.SetString(ctx, metadata.KeyDeviceID, id)
}
