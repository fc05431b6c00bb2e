package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/cryptox"
	"github.com/dmitrijs2005/notevault/internal/dbx"
	"github.com/dmitrijs2005/notevault/internal/keys"
	"github.com/dmitrijs2005/notevault/internal/logging"
	"github.com/dmitrijs2005/notevault/internal/proof"
	"github.com/dmitrijs2005/notevault/internal/server/models"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/notevault/internal/totp"
	"github.com/google/uuid"
)

// RegisterInput is everything a client sends to create an account. The
// verifier is derived client-side; the passphrase never reaches the server.
type RegisterInput struct {
	Username        string
	Email           string
	EnableTOTP      bool
	Verifier        []byte
	VerifierSalt    []byte
	VerifierVersion int
}

// Registered is the result of Register. TOTPSecret and TOTPURI are empty
// unless TOTP was enabled; this is the only time the secret is disclosed.
type Registered struct {
	AccountID  string
	E2EESalt   []byte
	Session    IssuedSession
	TOTPSecret string
	TOTPURI    string
}

// PassphraseChange is the new key material sent on a passphrase change.
// Proof is computed with the current verifier.
type PassphraseChange struct {
	NewE2EESalt         []byte
	NewWrappedDEK       keys.Wrapped
	Proof               []byte
	NextVerifier        []byte
	NextVerifierSalt    []byte
	NextVerifierVersion int
}

// AccountService registers accounts and manages the master-wrapped DEK.
type AccountService struct {
	tx          dbx.Transactor
	repomanager repomanager.RepositoryManager
	sessions    *SessionService
	log         logging.Logger
	totpKey     []byte
	totpIssuer  string
	now         func() time.Time
}

func NewAccountService(tx dbx.Transactor, m repomanager.RepositoryManager, sessions *SessionService,
	log logging.Logger, totpKey []byte, totpIssuer string) *AccountService {
	return &AccountService{
		tx:          tx,
		repomanager: m,
		sessions:    sessions,
		log:         log.With("module", "accounts"),
		totpKey:     totpKey,
		totpIssuer:  totpIssuer,
		now:         time.Now,
	}
}

func validateVerifier(verifier, salt []byte, version int) error {
	if err := keys.CheckLen("passphrase verifier", verifier, keys.VerifierLen); err != nil {
		return err
	}
	if err := keys.CheckLen("passphrase verifier salt", salt, keys.SaltLen); err != nil {
		return err
	}
	if !keys.SupportedVerifierVersion(version) {
		return fmt.Errorf("verifier version %d: %w", version, common.ErrUnsupportedVersion)
	}
	return nil
}

// Register creates an account and signs it in.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*Registered, error) {
	username := common.NormalizeUsername(in.Username)
	email := common.NormalizeEmail(in.Email)

	if username == "" {
		return nil, common.ErrUsernameRequired
	}
	if email == "" && !in.EnableTOTP {
		return nil, common.ErrEmailRequired
	}
	if err := validateVerifier(in.Verifier, in.VerifierSalt, in.VerifierVersion); err != nil {
		return nil, err
	}

	e2eeSalt, err := keys.NewSalt()
	if err != nil {
		return nil, fmt.Errorf("error generating salt: %w", err)
	}

	account := &models.Account{
		ID:                        uuid.NewString(),
		Username:                  username,
		Email:                     email,
		E2EESalt:                  e2eeSalt,
		PassphraseVerifier:        in.Verifier,
		PassphraseVerifierSalt:    in.VerifierSalt,
		PassphraseVerifierVersion: in.VerifierVersion,
		TOTP:                      models.TOTPDisabled{},
	}

	out := &Registered{AccountID: account.ID, E2EESalt: e2eeSalt}
	method := models.AuthMethodMagic

	if in.EnableTOTP {
		secret, err := totp.GenerateSecret()
		if err != nil {
			return nil, fmt.Errorf("error generating totp secret: %w", err)
		}
		ct, nonce, err := cryptox.SealSecret(s.totpKey, []byte(secret))
		if err != nil {
			return nil, fmt.Errorf("error sealing totp secret: %w", err)
		}
		account.TOTP = models.TOTPEnabled{Ciphertext: ct, Nonce: nonce}
		out.TOTPSecret = secret
		out.TOTPURI = totp.ProvisionURI(s.totpIssuer, username, secret)
		method = models.AuthMethodTOTP
	}

	err = s.tx.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Accounts(tx).Create(ctx, account); err != nil {
			return err
		}
		if err := s.repomanager.Preferences(tx).Upsert(ctx, &models.Preferences{AccountID: account.ID, AuthMethod: method}); err != nil {
			return err
		}
		issued, err := s.sessions.Create(ctx, tx, account.ID)
		if err != nil {
			return err
		}
		out.Session = *issued
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	s.log.Info(ctx, "account registered", "account_id", account.ID, "totp", in.EnableTOTP)
	return out, nil
}

// StoreMasterWrappedDEK replaces the stored master-wrapped DEK. presented is
// the session token the proof was computed over.
func (s *AccountService) StoreMasterWrappedDEK(ctx context.Context, accountID, presented string, w keys.Wrapped, passphraseProof []byte) error {
	if w.Kind != keys.KindMaster {
		return fmt.Errorf("expected master wrap: %w", common.ErrorValidation)
	}
	if err := w.Validate(); err != nil {
		return err
	}

	return s.tx.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)
		account, err := s.loadAndProve(ctx, repo, accountID, presented, passphraseProof)
		if err != nil {
			return err
		}
		return repo.UpdateMasterWrappedDEK(ctx, account.ID, w.Ciphertext, w.Nonce, w.Version)
	})
}

// FetchMasterWrappedDEK returns common.ErrorNotFound until a DEK is stored.
func (s *AccountService) FetchMasterWrappedDEK(ctx context.Context, accountID string) (keys.Wrapped, error) {
	account, err := s.account(ctx, s.tx.Conn(), accountID)
	if err != nil {
		return keys.Wrapped{}, err
	}
	if !account.HasMasterWrappedDEK() {
		return keys.Wrapped{}, common.ErrorNotFound
	}
	return keys.Wrapped{
		Kind:       keys.KindMaster,
		Version:    account.MasterWrappedVersion,
		Ciphertext: account.MasterWrappedDEK,
		Nonce:      account.MasterWrappedNonce,
	}, nil
}

// UpdatePassphrase swaps the e2ee salt, the master-wrapped DEK and the
// verifier in one step. The proof must be made with the current verifier.
// Existing sessions stay valid.
func (s *AccountService) UpdatePassphrase(ctx context.Context, accountID, presented string, c PassphraseChange) error {
	if err := keys.CheckLen("e2ee salt", c.NewE2EESalt, keys.SaltLen); err != nil {
		return err
	}
	if c.NewWrappedDEK.Kind != keys.KindMaster {
		return fmt.Errorf("expected master wrap: %w", common.ErrorValidation)
	}
	if err := c.NewWrappedDEK.Validate(); err != nil {
		return err
	}
	if err := validateVerifier(c.NextVerifier, c.NextVerifierSalt, c.NextVerifierVersion); err != nil {
		return err
	}

	err := s.tx.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)
		account, err := s.loadAndProve(ctx, repo, accountID, presented, c.Proof)
		if err != nil {
			return err
		}
		return repo.UpdatePassphrase(ctx, account.ID, accounts.PassphraseUpdate{
			E2EESalt:             c.NewE2EESalt,
			MasterWrappedDEK:     c.NewWrappedDEK.Ciphertext,
			MasterWrappedNonce:   c.NewWrappedDEK.Nonce,
			MasterWrappedVersion: c.NewWrappedDEK.Version,
			Verifier:             c.NextVerifier,
			VerifierSalt:         c.NextVerifierSalt,
			VerifierVersion:      c.NextVerifierVersion,
		})
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "passphrase changed", "account_id", accountID)
	return nil
}

// Account returns the account behind a resolved session.
func (s *AccountService) Account(ctx context.Context, accountID string) (*models.Account, error) {
	return s.account(ctx, s.tx.Conn(), accountID)
}

func (s *AccountService) account(ctx context.Context, db dbx.DBTX, accountID string) (*models.Account, error) {
	account, err := s.repomanager.Accounts(db).GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// a session that outlived its account
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error loading account: %w", err)
	}
	return account, nil
}

func (s *AccountService) loadAndProve(ctx context.Context, repo accounts.Repository, accountID, presented string, passphraseProof []byte) (*models.Account, error) {
	account, err := repo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error loading account: %w", err)
	}
	if !proof.Verify(account.PassphraseVerifier, presented, passphraseProof) {
		return nil, common.ErrorUnauthorized
	}
	return account, nil
}
