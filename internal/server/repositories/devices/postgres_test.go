package devices

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func TestUpsert(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+devices\s*\(account_id,\s*device_id,\s*wrapped_dek,\s*nonce,\s*version\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*ON\s+CONFLICT\s*\(account_id,\s*device_id\)\s*DO\s+UPDATE\s+SET.*RETURNING\s+created_at,\s*updated_at\s*$`
	now := time.Now()
	mock.ExpectQuery(q).WithArgs("acc-1", "laptop", []byte("ct"), []byte("n"), 1).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	d := &models.Device{AccountID: "acc-1", DeviceID: "laptop", WrappedDEK: []byte("ct"), Nonce: []byte("n"), Version: 1}
	require.NoError(t, repo.Upsert(context.Background(), d))
	assert.Equal(t, now, d.UpdatedAt)

	mock.ExpectQuery(q).WillReturnError(errors.New("db err"))
	require.Error(t, repo.Upsert(context.Background(), d))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGet(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+account_id,\s*device_id,\s*wrapped_dek,\s*nonce,\s*version,\s*created_at,\s*updated_at\s+FROM\s+devices\s+WHERE\s+account_id\s*=\s*\$1\s+AND\s+device_id\s*=\s*\$2\s*$`
	now := time.Now()
	mock.ExpectQuery(q).WithArgs("acc-1", "laptop").
		WillReturnRows(sqlmock.NewRows([]string{"account_id", "device_id", "wrapped_dek", "nonce", "version", "created_at", "updated_at"}).
			AddRow("acc-1", "laptop", []byte("ct"), []byte("n"), 1, now, now))

	d, err := repo.Get(context.Background(), "acc-1", "laptop")
	require.NoError(t, err)
	assert.Equal(t, []byte("ct"), d.WrappedDEK)
	assert.Equal(t, 1, d.Version)

	mock.ExpectQuery(q).WithArgs("acc-1", "phone").WillReturnError(sql.ErrNoRows)
	_, err = repo.Get(context.Background(), "acc-1", "phone")
	require.ErrorIs(t, err, common.ErrorNotFound)
}
