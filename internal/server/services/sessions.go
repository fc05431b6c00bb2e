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
	"github.com/google/uuid"
)

// SessionTokenSize is the number of random bytes in a session token.
const SessionTokenSize = 32

// Resolved is the outcome of a successful Resolve. Token is the token the
// caller must use from now on; it differs from Presented after a rotation.
type Resolved struct {
	AccountID string
	SessionID string
	Presented string
	Token     string
	ExpiresAt time.Time
	Rotated   bool
}

// SessionService issues, resolves, rotates and revokes sessions. Only
// HMAC hashes of tokens are stored.
type SessionService struct {
	tx            dbx.Transactor
	repomanager   repomanager.RepositoryManager
	log           logging.Logger
	pepper        []byte
	ttl           time.Duration
	refreshWindow time.Duration
	now           func() time.Time
}

func NewSessionService(tx dbx.Transactor, m repomanager.RepositoryManager, log logging.Logger, pepper []byte, ttl, refreshWindow time.Duration) *SessionService {
	return &SessionService{
		tx:            tx,
		repomanager:   m,
		log:           log.With("module", "sessions"),
		pepper:        pepper,
		ttl:           ttl,
		refreshWindow: refreshWindow,
		now:           time.Now,
	}
}

// Create mints a session for accountID through db, which is usually the
// transaction of the sign-in that triggered it. The account's expired
// sessions are purged first.
func (s *SessionService) Create(ctx context.Context, db dbx.DBTX, accountID string) (*IssuedSession, error) {
	now := s.now()
	repo := s.repomanager.Sessions(db)

	if _, err := repo.DeleteExpired(ctx, accountID, now); err != nil {
		return nil, fmt.Errorf("error purging sessions: %w", err)
	}

	token, err := common.MakeRandToken(SessionTokenSize)
	if err != nil {
		return nil, fmt.Errorf("error generating session token: %w", err)
	}

	sess := &models.Session{
		ID:        uuid.NewString(),
		AccountID: accountID,
		TokenHash: cryptox.HashToken(s.pepper, token),
		ExpiresAt: now.Add(s.ttl),
	}
	if err := repo.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("error creating session: %w", err)
	}

	return &IssuedSession{Token: token, ExpiresAt: sess.ExpiresAt}, nil
}

// Resolve maps a presented token to its account. A token is valid up to and
// including its expiry instant. Close to expiry the session is rotated and
// the new token is returned in Resolved.Token; the presented one stops
// working. Losing a concurrent rotation is reported as unauthorized.
func (s *SessionService) Resolve(ctx context.Context, token string) (*Resolved, error) {
	if token == "" {
		return nil, common.ErrorUnauthorized
	}

	repo := s.repomanager.Sessions(s.tx.Conn())
	hash := cryptox.HashToken(s.pepper, token)

	sess, err := repo.FindByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error looking up session: %w", err)
	}

	now := s.now()
	if now.After(sess.ExpiresAt) {
		if err := repo.DeleteByHash(ctx, hash); err != nil && !errors.Is(err, common.ErrorNotFound) {
			s.log.Warn(ctx, "deleting expired session failed", "session_id", sess.ID, "error", err)
		}
		return nil, common.ErrorUnauthorized
	}

	res := &Resolved{
		AccountID: sess.AccountID,
		SessionID: sess.ID,
		Presented: token,
		Token:     token,
		ExpiresAt: sess.ExpiresAt,
	}

	if sess.ExpiresAt.Sub(now) >= s.refreshWindow {
		return res, nil
	}

	next, err := common.MakeRandToken(SessionTokenSize)
	if err != nil {
		return nil, fmt.Errorf("error generating session token: %w", err)
	}
	expiresAt := now.Add(s.ttl)
	if err := repo.Rotate(ctx, hash, cryptox.HashToken(s.pepper, next), expiresAt); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error rotating session: %w", err)
	}

	res.Token = next
	res.ExpiresAt = expiresAt
	res.Rotated = true
	return res, nil
}

// Revoke deletes the session for token. Unknown tokens are ignored.
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	repo := s.repomanager.Sessions(s.tx.Conn())
	if err := repo.DeleteByHash(ctx, cryptox.HashToken(s.pepper, token)); err != nil {
		return fmt.Errorf("error revoking session: %w", err)
	}
	return nil
}
