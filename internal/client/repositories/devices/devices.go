// Package devices persists this client's device records: the device key
// wrapped under the account's master key, one row per account and device.
package devices

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/notevault/internal/dbx"
	"github.com/dmitrijs2005/notevault/internal/keys"
)

type Record struct {
	AccountID string
	Bundle    keys.DeviceBundle
	CreatedAt time.Time
}

type Repository interface {
	Get(ctx context.Context, accountID, deviceID string) (*Record, error)
	Save(ctx context.Context, r *Record) error
	Delete(ctx context.Context, accountID, deviceID string) error
}

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Get returns (nil, nil) when no record exists.
func (r *SQLiteRepository) Get(ctx context.Context, accountID, deviceID string) (*Record, error) {
	rec := &Record{AccountID: accountID, Bundle: keys.DeviceBundle{DeviceID: deviceID}}
	var created string

	err := r.db.QueryRowContext(ctx, `
		SELECT encrypted_key, nonce, version, created_at
		FROM device_records WHERE account_id = ? AND device_id = ?`,
		accountID, deviceID,
	).Scan(&rec.Bundle.EncryptedKey, &rec.Bundle.Nonce, &rec.Bundle.Version, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get device record %s: %w", deviceID, err)
	}

	rec.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return nil, fmt.Errorf("bad created_at for device %s: %w", deviceID, err)
	}
	return rec, nil
}

// Save inserts or replaces the record. The raw device key is never stored.
func (r *SQLiteRepository) Save(ctx context.Context, rec *Record) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO device_records (account_id, device_id, encrypted_key, nonce, version, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(account_id, device_id) DO UPDATE SET
			encrypted_key = excluded.encrypted_key,
			nonce = excluded.nonce,
			version = excluded.version,
			created_at = excluded.created_at`,
		rec.AccountID, rec.Bundle.DeviceID, rec.Bundle.EncryptedKey, rec.Bundle.Nonce,
		rec.Bundle.Version, rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to save device record %s: %w", rec.Bundle.DeviceID, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, accountID, deviceID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM device_records WHERE account_id = ? AND device_id = ?`, accountID, deviceID)
	if err != nil {
		return fmt.Errorf("failed to delete device record %s: %w", deviceID, err)
	}
	return nil
}
