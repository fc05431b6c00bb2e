package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/cryptox"
	"github.com/dmitrijs2005/notevault/internal/dbx"
	"github.com/dmitrijs2005/notevault/internal/logging"
	"github.com/dmitrijs2005/notevault/internal/server/auth"
	"github.com/dmitrijs2005/notevault/internal/server/mailer"
	"github.com/dmitrijs2005/notevault/internal/server/models"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// LinkTokenSize is the number of random bytes in a login-link token.
const LinkTokenSize = 24

// LinkRequested is the uniform answer to a link request.
type LinkRequested struct {
	ExpiresAt time.Time
}

// LoginLinkConfig carries the settings LoginLinkService needs.
type LoginLinkConfig struct {
	TokenPepper   []byte
	LinkKey       []byte
	TTL           time.Duration
	Floor         time.Duration
	PublicBaseURL string
}

// LoginLinkService implements sign-in by one-time emailed link.
type LoginLinkService struct {
	tx          dbx.Transactor
	repomanager repomanager.RepositoryManager
	sessions    *SessionService
	limiter     Limiter
	mailer      mailer.Mailer
	log         logging.Logger
	cfg         LoginLinkConfig
	now         func() time.Time
}

func NewLoginLinkService(tx dbx.Transactor, m repomanager.RepositoryManager, sessions *SessionService,
	limiter Limiter, mail mailer.Mailer, log logging.Logger, cfg LoginLinkConfig) *LoginLinkService {
	return &LoginLinkService{
		tx:          tx,
		repomanager: m,
		sessions:    sessions,
		limiter:     limiter,
		mailer:      mail,
		log:         log.With("module", "loginlink"),
		cfg:         cfg,
		now:         time.Now,
	}
}

// Request issues a link for email. Neither the response nor its timing
// depends on whether the account exists: every call takes at least the
// configured floor, and only an existing account gets a stored token and a
// message.
func (s *LoginLinkService) Request(ctx context.Context, email string) (*LinkRequested, error) {
	email = common.NormalizeEmail(email)
	if email == "" {
		return nil, common.ErrEmailRequired
	}

	return Equalize(ctx, s.cfg.Floor, func(ctx context.Context) (*LinkRequested, error) {
		return s.request(ctx, email)
	})
}

func (s *LoginLinkService) request(ctx context.Context, email string) (*LinkRequested, error) {
	if err := LinkRequestPolicy.Enforce(ctx, s.limiter, email); err != nil {
		return nil, err
	}

	now := s.now()
	expiresAt := now.Add(s.cfg.TTL)
	resp := &LinkRequested{ExpiresAt: expiresAt}

	account, err := s.repomanager.Accounts(s.tx.Conn()).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return resp, nil
		}
		return nil, fmt.Errorf("error looking up account: %w", err)
	}

	token, err := common.MakeRandToken(LinkTokenSize)
	if err != nil {
		return nil, fmt.Errorf("error generating link token: %w", err)
	}

	err = s.tx.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.LoginLinks(tx)
		if _, err := repo.DeleteExpired(ctx, account.ID, now); err != nil {
			return err
		}
		return repo.Create(ctx, &models.LoginLink{
			ID:        uuid.NewString(),
			AccountID: account.ID,
			TokenHash: cryptox.HashToken(s.cfg.TokenPepper, token),
			ExpiresAt: expiresAt,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("error storing login link: %w", err)
	}

	link, err := s.buildLink(email, token, expiresAt)
	if err != nil {
		return nil, err
	}

	if err := s.mailer.Send(ctx, mailer.Message{
		To:      email,
		Subject: "Your notevault sign-in link",
		Body:    fmt.Sprintf("Open this link to sign in. It expires at %s.\n\n%s", expiresAt.UTC().Format(time.RFC1123), link),
	}); err != nil {
		s.log.Error(ctx, "login link delivery failed", "account_id", account.ID, "error", err)
	}

	return resp, nil
}

func (s *LoginLinkService) buildLink(email, token string, expiresAt time.Time) (string, error) {
	signed, err := auth.GenerateLinkToken(email, token, s.cfg.LinkKey, expiresAt)
	if err != nil {
		return "", fmt.Errorf("error signing link: %w", err)
	}
	return strings.TrimRight(s.cfg.PublicBaseURL, "/") + "/login/verify?t=" + url.QueryEscape(signed), nil
}

// Verify redeems a link token. Every outcome takes at least the configured
// floor, and every failure is common.ErrInvalidOrExpired.
func (s *LoginLinkService) Verify(ctx context.Context, email, token string) (*LoginResult, error) {
	return Equalize(ctx, s.cfg.Floor, func(ctx context.Context) (*LoginResult, error) {
		return s.verify(ctx, common.NormalizeEmail(email), token)
	})
}

// VerifyLink redeems the signed token carried by an emailed link.
func (s *LoginLinkService) VerifyLink(ctx context.Context, signed string) (*LoginResult, error) {
	return Equalize(ctx, s.cfg.Floor, func(ctx context.Context) (*LoginResult, error) {
		email, token, err := auth.ParseLinkToken(signed, s.cfg.LinkKey, s.now())
		if err != nil {
			return nil, common.ErrInvalidOrExpired
		}
		return s.verify(ctx, email, token)
	})
}

func (s *LoginLinkService) verify(ctx context.Context, email, token string) (*LoginResult, error) {
	if email == "" || token == "" {
		return nil, common.ErrInvalidOrExpired
	}

	if err := LinkVerifyPolicy.Enforce(ctx, s.limiter, email); err != nil {
		return nil, err
	}

	account, err := s.repomanager.Accounts(s.tx.Conn()).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidOrExpired
		}
		return nil, fmt.Errorf("error looking up account: %w", err)
	}

	var issued *IssuedSession
	err = s.tx.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		link, err := s.repomanager.LoginLinks(tx).Consume(ctx, account.ID, cryptox.HashToken(s.cfg.TokenPepper, token))
		if err != nil {
			return err
		}
		if s.now().After(link.ExpiresAt) {
			return errLinkExpired
		}
		issued, err = s.sessions.Create(ctx, tx, account.ID)
		return err
	})
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return nil, common.ErrInvalidOrExpired
	case errors.Is(err, errLinkExpired):
		// the rollback put the link back
		s.purgeExpired(ctx, account.ID)
		return nil, common.ErrInvalidOrExpired
	case err != nil:
		return nil, fmt.Errorf("error redeeming login link: %w", err)
	}

	s.log.Info(ctx, "signed in with login link", "account_id", account.ID)
	return newLoginResult(account, issued), nil
}

var errLinkExpired = errors.New("login link expired")

func (s *LoginLinkService) purgeExpired(ctx context.Context, accountID string) {
	if _, err := s.repomanager.LoginLinks(s.tx.Conn()).DeleteExpired(ctx, accountID, s.now()); err != nil {
		s.log.Warn(ctx, "purging expired login links failed", "account_id", accountID, "error", err)
	}
}
