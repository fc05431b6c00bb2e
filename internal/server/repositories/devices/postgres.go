// Package devices provides a PostgreSQL-backed device repository.
package devices

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

func (r *PostgresRepository) Upsert(ctx context.Context, d *models.Device) error {
	query := `
		INSERT INTO devices (account_id, device_id, wrapped_dek, nonce, version)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (account_id, device_id)
		DO UPDATE SET
			wrapped_dek = EXCLUDED.wrapped_dek,
			nonce = EXCLUDED.nonce,
			version = EXCLUDED.version,
			updated_at = now()
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, d.AccountID, d.DeviceID, d.WrappedDEK, d.Nonce, d.Version).
		Scan(&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, accountID, deviceID string) (*models.Device, error) {
	query := `
		SELECT account_id, device_id, wrapped_dek, nonce, version, created_at, updated_at
		FROM devices
		WHERE account_id = $1 AND device_id = $2
	`
	d := &models.Device{}
	err := r.db.QueryRowContext(ctx, query, accountID, deviceID).
		Scan(&d.AccountID, &d.DeviceID, &d.WrappedDEK, &d.Nonce, &d.Version, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return d, nil
}
