package notes

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

var noteCols = []string{"id", "account_id", "client_note_id", "storage_key", "nonce", "aad", "version", "created_at", "updated_at"}

const insertQ = `(?s)^\s*INSERT\s+INTO\s+notes\s*\(id,\s*account_id,\s*client_note_id,\s*storage_key,\s*nonce,\s*aad,\s*version,\s*created_at\)\s*VALUES\s*\(.*\$8\)\s*ON\s+CONFLICT\s*\(account_id,\s*client_note_id\)\s*DO\s+NOTHING\s*$`

func TestInsert(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	created := time.Now()
	n := &models.Note{ID: "n-1", AccountID: "acc-1", ClientNoteID: "c-1", StorageKey: "acc-1/n-1",
		Nonce: []byte("nonce"), AAD: []byte("aad"), Version: 1, CreatedAt: created}

	mock.ExpectExec(insertQ).
		WithArgs("n-1", "acc-1", "c-1", "acc-1/n-1", []byte("nonce"), []byte("aad"), 1, created).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Insert(context.Background(), n))

	mock.ExpectExec(insertQ).WillReturnResult(sqlmock.NewResult(0, 0))
	require.ErrorIs(t, repo.Insert(context.Background(), n), common.ErrorConflict)

	mock.ExpectExec(insertQ).WillReturnError(errors.New("db err"))
	require.Error(t, repo.Insert(context.Background(), n))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByClientID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+notes\s+WHERE\s+account_id\s*=\s*\$1\s+AND\s+client_note_id\s*=\s*\$2$`
	now := time.Now()
	mock.ExpectQuery(q).WithArgs("acc-1", "c-1").
		WillReturnRows(sqlmock.NewRows(noteCols).AddRow("n-1", "acc-1", "c-1", "acc-1/n-1", []byte("nonce"), []byte("aad"), 1, now, now))

	n, err := repo.GetByClientID(context.Background(), "acc-1", "c-1")
	require.NoError(t, err)
	assert.Equal(t, "n-1", n.ID)
	assert.Equal(t, "acc-1/n-1", n.StorageKey)

	mock.ExpectQuery(q).WithArgs("acc-1", "c-2").WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByClientID(context.Background(), "acc-1", "c-2")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestList(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+notes\s+WHERE\s+account_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC$`
	now := time.Now()
	mock.ExpectQuery(q).WithArgs("acc-1").
		WillReturnRows(sqlmock.NewRows(noteCols).
			AddRow("n-2", "acc-1", "c-2", "k2", []byte("n"), []byte("a"), 1, now, now).
			AddRow("n-1", "acc-1", "c-1", "k1", []byte("n"), []byte("a"), 1, now.Add(-time.Hour), now))

	list, err := repo.List(context.Background(), "acc-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "n-2", list[0].ID)

	mock.ExpectQuery(q).WithArgs("acc-2").WillReturnRows(sqlmock.NewRows(noteCols))
	list, err = repo.List(context.Background(), "acc-2")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	mock.ExpectQuery(q).WithArgs("acc-3").WillReturnError(errors.New("db err"))
	_, err = repo.List(context.Background(), "acc-3")
	require.Error(t, err)
}
