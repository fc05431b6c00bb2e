package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/cryptox"
	"github.com/dmitrijs2005/notevault/internal/dbx"
	"github.com/dmitrijs2005/notevault/internal/logging"
	"github.com/dmitrijs2005/notevault/internal/server/models"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/notevault/internal/totp"
)

// TOTPLoginService implements sign-in with a time-based code.
type TOTPLoginService struct {
	tx          dbx.Transactor
	repomanager repomanager.RepositoryManager
	sessions    *SessionService
	limiter     Limiter
	log         logging.Logger
	totpKey     []byte
	floor       time.Duration
	now         func() time.Time
}

func NewTOTPLoginService(tx dbx.Transactor, m repomanager.RepositoryManager, sessions *SessionService,
	limiter Limiter, log logging.Logger, totpKey []byte, floor time.Duration) *TOTPLoginService {
	return &TOTPLoginService{
		tx:          tx,
		repomanager: m,
		sessions:    sessions,
		limiter:     limiter,
		log:         log.With("module", "totplogin"),
		totpKey:     totpKey,
		floor:       floor,
		now:         time.Now,
	}
}

// Login checks code against the account's secret. Every outcome takes at
// least the configured floor, and every failed check is common.ErrInvalidCode.
func (s *TOTPLoginService) Login(ctx context.Context, username, code string) (*LoginResult, error) {
	return Equalize(ctx, s.floor, func(ctx context.Context) (*LoginResult, error) {
		return s.login(ctx, common.NormalizeUsername(username), code)
	})
}

func (s *TOTPLoginService) login(ctx context.Context, username, code string) (*LoginResult, error) {
	if username == "" {
		return nil, common.ErrInvalidCode
	}

	if err := TOTPLoginPolicy.Enforce(ctx, s.limiter, username); err != nil {
		return nil, err
	}

	account, err := s.repomanager.Accounts(s.tx.Conn()).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCode
		}
		return nil, fmt.Errorf("error looking up account: %w", err)
	}

	enabled, ok := account.TOTP.(models.TOTPEnabled)
	if !ok {
		return nil, common.ErrInvalidCode
	}

	secret, err := cryptox.OpenSecret(s.totpKey, enabled.Ciphertext, enabled.Nonce)
	if err != nil {
		s.log.Error(ctx, "totp secret does not open", "account_id", account.ID)
		return nil, common.ErrInvalidCode
	}
	defer common.WipeByteArray(secret)

	if !totp.Verify(code, string(secret), s.now()) {
		return nil, common.ErrInvalidCode
	}

	var issued *IssuedSession
	err = s.tx.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		issued, err = s.sessions.Create(ctx, tx, account.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "signed in with code", "account_id", account.ID)
	return newLoginResult(account, issued), nil
}
