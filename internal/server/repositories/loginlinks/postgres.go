// Package loginlinks provides a PostgreSQL-backed login link repository.
package loginlinks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/dbx"
	"github.com/dmitrijs2005/notevault/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, l *models.LoginLink) error {
	query := `
		INSERT INTO login_links (id, account_id, token_hash, expires_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query, l.ID, l.AccountID, l.TokenHash, l.ExpiresAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Consume(ctx context.Context, accountID, tokenHash string) (*models.LoginLink, error) {
	query := `
		DELETE FROM login_links
		WHERE account_id = $1 AND token_hash = $2
		RETURNING id, account_id, token_hash, expires_at, created_at
	`
	l := &models.LoginLink{}
	err := r.db.QueryRowContext(ctx, query, accountID, tokenHash).
		Scan(&l.ID, &l.AccountID, &l.TokenHash, &l.ExpiresAt, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return l, nil
}

func (r *PostgresRepository) DeleteExpired(ctx context.Context, accountID string, now time.Time) (int64, error) {
	query := `
		DELETE FROM login_links
		WHERE account_id = $1 AND expires_at < $2
	`
	res, err := r.db.ExecContext(ctx, query, accountID, now)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
