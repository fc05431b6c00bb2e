// Package preferences provides a PostgreSQL-backed preferences repository.
package preferences

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

func (r *PostgresRepository) Get(ctx context.Context, accountID string) (*models.Preferences, error) {
	query := `
		SELECT account_id, auth_method, updated_at
		FROM preferences
		WHERE account_id = $1
	`
	p := &models.Preferences{}
	var method string
	if err := r.db.QueryRowContext(ctx, query, accountID).Scan(&p.AccountID, &method, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	p.AuthMethod = models.AuthMethod(method)
	return p, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, p *models.Preferences) error {
	query := `
		INSERT INTO preferences (account_id, auth_method)
		VALUES ($1, $2)
		ON CONFLICT (account_id)
		DO UPDATE SET auth_method = EXCLUDED.auth_method, updated_at = now()
		RETURNING updated_at
	`
	if err := r.db.QueryRowContext(ctx, query, p.AccountID, string(p.AuthMethod)).Scan(&p.UpdatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
