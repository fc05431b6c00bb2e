// Package notes provides a PostgreSQL-backed note metadata repository.
package notes

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

func (r *PostgresRepository) Insert(ctx context.Context, n *models.Note) error {
	query := `
		INSERT INTO notes (id, account_id, client_note_id, storage_key, nonce, aad, version, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (account_id, client_note_id) DO NOTHING
	`
	res, err := r.db.ExecContext(ctx, query,
		n.ID, n.AccountID, n.ClientNoteID, n.StorageKey, n.Nonce, n.AAD, n.Version, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if affected == 0 {
		return common.ErrorConflict
	}
	return nil
}

const noteColumns = `id, account_id, client_note_id, storage_key, nonce, aad, version, created_at, updated_at`

func scanNote(row interface{ Scan(...any) error }, n *models.Note) error {
	return row.Scan(&n.ID, &n.AccountID, &n.ClientNoteID, &n.StorageKey, &n.Nonce, &n.AAD, &n.Version, &n.CreatedAt, &n.UpdatedAt)
}

func (r *PostgresRepository) GetByClientID(ctx context.Context, accountID, clientNoteID string) (*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE account_id = $1 AND client_note_id = $2`

	n := &models.Note{}
	if err := scanNote(r.db.QueryRowContext(ctx, query, accountID, clientNoteID), n); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) List(ctx context.Context, accountID string) ([]models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE account_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]models.Note, 0)
	for rows.Next() {
		var n models.Note
		if err := scanNote(rows, &n); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}
