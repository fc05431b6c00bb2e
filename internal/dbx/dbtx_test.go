package dbx_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/notevault/internal/dbx"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deleteSessions = `DELETE\s+FROM\s+sessions`

func newTransactor(t *testing.T) (*dbx.SQLTransactor, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return dbx.NewSQLTransactor(db, nil), mock
}

// purgeAndDrop mirrors the session cleanup a sign-in performs before it
// mints a new token.
func purgeAndDrop(ctx context.Context, tx dbx.DBTX) error {
	repo := sessions.NewPostgresRepository(tx)
	if _, err := repo.DeleteExpired(ctx, "acc-1", time.Unix(1_700_000_000, 0)); err != nil {
		return err
	}
	return repo.DeleteByHash(ctx, "hash")
}

func TestSQLTransactor_CommitsSessionCleanup(t *testing.T) {
	tr, mock := newTransactor(t)

	mock.ExpectBegin()
	mock.ExpectExec(deleteSessions).WithArgs("acc-1", sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(deleteSessions).WithArgs("hash").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, tr.InTx(context.Background(), purgeAndDrop))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLTransactor_RollsBackWhenRepositoryFails(t *testing.T) {
	tr, mock := newTransactor(t)
	boom := errors.New("connection reset")

	mock.ExpectBegin()
	mock.ExpectExec(deleteSessions).WithArgs("acc-1", sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(deleteSessions).WithArgs("hash").WillReturnError(boom)
	mock.ExpectRollback()

	err := tr.InTx(context.Background(), purgeAndDrop)
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLTransactor_RollbackFailureIsJoined(t *testing.T) {
	tr, mock := newTransactor(t)
	boom := errors.New("constraint")
	lost := errors.New("rollback lost")

	mock.ExpectBegin()
	mock.ExpectRollback().WillReturnError(lost)

	err := tr.InTx(context.Background(), func(context.Context, dbx.DBTX) error { return boom })
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, err, lost)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLTransactor_PanicRollsBackAndPropagates(t *testing.T) {
	tr, mock := newTransactor(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "broken invariant", func() {
		_ = tr.InTx(context.Background(), func(context.Context, dbx.DBTX) error {
			panic("broken invariant")
		})
	})
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLTransactor_BeginAndCommitErrors(t *testing.T) {
	tr, mock := newTransactor(t)
	called := false

	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)
	err := tr.InTx(context.Background(), func(context.Context, dbx.DBTX) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, sql.ErrConnDone)
	assert.False(t, called)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(sql.ErrTxDone)
	err = tr.InTx(context.Background(), func(context.Context, dbx.DBTX) error { return nil })
	require.ErrorIs(t, err, sql.ErrTxDone)
	assert.Contains(t, err.Error(), "commit tx")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLTransactor_ConnIsThePool(t *testing.T) {
	tr, mock := newTransactor(t)

	mock.ExpectExec(deleteSessions).WithArgs("hash").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, sessions.NewPostgresRepository(tr.Conn()).DeleteByHash(context.Background(), "hash"))
	require.NoError(t, mock.ExpectationsWereMet())
}
