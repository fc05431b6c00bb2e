package accounts

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var columns = []string{
	"id", "username", "email", "e2ee_salt",
	"master_wrapped_dek", "master_wrapped_nonce", "master_wrapped_version",
	"passphrase_verifier", "passphrase_verifier_salt", "passphrase_verifier_version",
	"totp_secret_ciphertext", "totp_secret_nonce", "created_at",
}

const insertQ = `(?s)^\s*INSERT\s+INTO\s+accounts\s*\(id,\s*username,\s*email,\s*e2ee_salt,.*totp_secret_nonce\)\s*VALUES\s*\(\$1,.*\$9\)\s*RETURNING\s+created_at\s*$`

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(insertQ).
		WithArgs("acc-1", "alice", "alice@example.com", []byte("salt"),
			[]byte("ver"), []byte("vsalt"), 1, []byte("ct"), []byte("nonce")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	a := &models.Account{
		ID: "acc-1", Username: "alice", Email: "alice@example.com", E2EESalt: []byte("salt"),
		PassphraseVerifier: []byte("ver"), PassphraseVerifierSalt: []byte("vsalt"), PassphraseVerifierVersion: 1,
		TOTP: models.TOTPEnabled{Ciphertext: []byte("ct"), Nonce: []byte("nonce")},
	}
	require.NoError(t, repo.Create(context.Background(), a))
	assert.Equal(t, now, a.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateIsConflict(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_username_key"})

	err := repo.Create(context.Background(), &models.Account{ID: "x", Username: "alice", TOTP: models.TOTPDisabled{}})
	require.ErrorIs(t, err, common.ErrorConflict)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(insertQ).WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), &models.Account{ID: "x", TOTP: models.TOTPDisabled{}})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByUsername_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*username,.*FROM\s+accounts\s+WHERE\s+username\s*=\s*\$1\s*$`
	rows := sqlmock.NewRows(columns).AddRow(
		"acc-1", "alice", nil, []byte("salt"),
		[]byte("wrapped"), []byte("wnonce"), int64(1),
		[]byte("ver"), []byte("vsalt"), int64(1),
		nil, nil, time.Now(),
	)
	mock.ExpectQuery(q).WithArgs("alice").WillReturnRows(rows)

	a, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", a.ID)
	assert.Equal(t, "", a.Email)
	assert.Equal(t, 1, a.MasterWrappedVersion)
	assert.True(t, a.HasMasterWrappedDEK())
	assert.Equal(t, models.TOTPDisabled{}, a.TOTP)
}

func TestGetByEmail_WithTOTP(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+accounts\s+WHERE\s+email\s*=\s*\$1\s*$`
	rows := sqlmock.NewRows(columns).AddRow(
		"acc-1", "alice", "alice@example.com", []byte("salt"),
		nil, nil, nil,
		[]byte("ver"), []byte("vsalt"), int64(1),
		[]byte("ct"), []byte("n"), time.Now(),
	)
	mock.ExpectQuery(q).WithArgs("alice@example.com").WillReturnRows(rows)

	a, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", a.Email)
	assert.False(t, a.HasMasterWrappedDEK())
	assert.Equal(t, 0, a.MasterWrappedVersion)
	assert.Equal(t, models.TOTPEnabled{Ciphertext: []byte("ct"), Nonce: []byte("n")}, a.TOTP)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,.*FROM\s+accounts\s+WHERE\s+id\s*=\s*\$1\s*$`
	mock.ExpectQuery(q).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdateMasterWrappedDEK(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+accounts\s+SET\s+master_wrapped_dek\s*=\s*\$2,\s*master_wrapped_nonce\s*=\s*\$3,\s*master_wrapped_version\s*=\s*\$4\s+WHERE\s+id\s*=\s*\$1\s*$`

	mock.ExpectExec(q).WithArgs("acc-1", []byte("ct"), []byte("n"), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdateMasterWrappedDEK(context.Background(), "acc-1", []byte("ct"), []byte("n"), 1))

	mock.ExpectExec(q).WithArgs("ghost", []byte("ct"), []byte("n"), 1).
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.UpdateMasterWrappedDEK(context.Background(), "ghost", []byte("ct"), []byte("n"), 1)
	require.ErrorIs(t, err, common.ErrorNotFound)

	mock.ExpectExec(q).WillReturnError(errors.New("db err"))
	err = repo.UpdateMasterWrappedDEK(context.Background(), "acc-1", []byte("ct"), []byte("n"), 1)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePassphrase(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*UPDATE\s+accounts\s+SET\s+e2ee_salt\s*=\s*\$2,.*passphrase_verifier_version\s*=\s*\$8\s+WHERE\s+id\s*=\s*\$1\s*$`
	u := PassphraseUpdate{
		E2EESalt: []byte("s2"), MasterWrappedDEK: []byte("ct2"), MasterWrappedNonce: []byte("n2"), MasterWrappedVersion: 1,
		Verifier: []byte("v2"), VerifierSalt: []byte("vs2"), VerifierVersion: 1,
	}
	mock.ExpectExec(q).
		WithArgs("acc-1", []byte("s2"), []byte("ct2"), []byte("n2"), 1, []byte("v2"), []byte("vs2"), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdatePassphrase(context.Background(), "acc-1", u))
	require.NoError(t, mock.ExpectationsWereMet())
}
