// Package accounts provides a PostgreSQL-backed repository for accounts.
package accounts

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

const selectColumns = `id, username, email, e2ee_salt,
		master_wrapped_dek, master_wrapped_nonce, master_wrapped_version,
		passphrase_verifier, passphrase_verifier_salt, passphrase_verifier_version,
		totp_secret_ciphertext, totp_secret_nonce, created_at`

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.Account) error {
	query := `
		INSERT INTO accounts (id, username, email, e2ee_salt,
			passphrase_verifier, passphrase_verifier_salt, passphrase_verifier_version,
			totp_secret_ciphertext, totp_secret_nonce)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`
	totpCT, totpNonce := models.TOTPColumns(a.TOTP)

	err := r.db.QueryRowContext(ctx, query,
		a.ID, a.Username, nullString(a.Email), a.E2EESalt,
		a.PassphraseVerifier, a.PassphraseVerifierSalt, a.PassphraseVerifierVersion,
		totpCT, totpNonce,
	).Scan(&a.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err, "") {
			return common.ErrorConflict
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) getOne(ctx context.Context, where string, arg any) (*models.Account, error) {
	query := `SELECT ` + selectColumns + ` FROM accounts WHERE ` + where

	var (
		a         models.Account
		email     sql.NullString
		mwVersion sql.NullInt64
		totpCT    []byte
		totpNonce []byte
	)
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&a.ID, &a.Username, &email, &a.E2EESalt,
		&a.MasterWrappedDEK, &a.MasterWrappedNonce, &mwVersion,
		&a.PassphraseVerifier, &a.PassphraseVerifierSalt, &a.PassphraseVerifierVersion,
		&totpCT, &totpNonce, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	a.Email = email.String
	a.MasterWrappedVersion = int(mwVersion.Int64)
	a.TOTP = models.TOTPFromColumns(totpCT, totpNonce)
	return &a, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	return r.getOne(ctx, `id = $1`, id)
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	return r.getOne(ctx, `username = $1`, username)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.getOne(ctx, `email = $1`, email)
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) UpdateMasterWrappedDEK(ctx context.Context, id string, ciphertext, nonce []byte, version int) error {
	query := `
		UPDATE accounts
		SET master_wrapped_dek = $2, master_wrapped_nonce = $3, master_wrapped_version = $4
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id, ciphertext, nonce, version)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}

func (r *PostgresRepository) UpdatePassphrase(ctx context.Context, id string, u PassphraseUpdate) error {
	query := `
		UPDATE accounts
		SET e2ee_salt = $2,
			master_wrapped_dek = $3, master_wrapped_nonce = $4, master_wrapped_version = $5,
			passphrase_verifier = $6, passphrase_verifier_salt = $7, passphrase_verifier_version = $8
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id,
		u.E2EESalt,
		u.MasterWrappedDEK, u.MasterWrappedNonce, u.MasterWrappedVersion,
		u.Verifier, u.VerifierSalt, u.VerifierVersion,
	)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOne(res)
}
