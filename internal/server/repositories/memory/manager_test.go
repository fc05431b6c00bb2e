package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/dbx"
	"github.com/dmitrijs2005/notevault/internal/server/models"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ repomanager.RepositoryManager = (*Manager)(nil)
	_ dbx.Transactor                = (*Manager)(nil)
)

func TestAccounts_UniqueUsernameAndEmail(t *testing.T) {
	ctx := context.Background()
	m := NewManager()
	repo := m.Accounts(m.Conn())

	require.NoError(t, repo.Create(ctx, &models.Account{ID: "a1", Username: "alice", Email: "a@x.io", TOTP: models.TOTPDisabled{}}))

	err := repo.Create(ctx, &models.Account{ID: "a2", Username: "alice", TOTP: models.TOTPDisabled{}})
	require.ErrorIs(t, err, common.ErrorConflict)

	err = repo.Create(ctx, &models.Account{ID: "a3", Username: "bob", Email: "a@x.io", TOTP: models.TOTPDisabled{}})
	require.ErrorIs(t, err, common.ErrorConflict)

	// two accounts without email do not collide
	require.NoError(t, repo.Create(ctx, &models.Account{ID: "a4", Username: "carol", TOTP: models.TOTPDisabled{}}))
	require.NoError(t, repo.Create(ctx, &models.Account{ID: "a5", Username: "dave", TOTP: models.TOTPDisabled{}}))

	got, err := repo.GetByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)

	_, err = repo.GetByEmail(ctx, "")
	require.ErrorIs(t, err, common.ErrorNotFound)
	_, err = repo.GetByUsername(ctx, "nobody")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestAccounts_ReturnedCopiesAreIsolated(t *testing.T) {
	ctx := context.Background()
	m := NewManager()
	repo := m.Accounts(m.Conn())

	require.NoError(t, repo.Create(ctx, &models.Account{
		ID: "a1", Username: "alice", E2EESalt: []byte{1, 2, 3},
		TOTP: models.TOTPEnabled{Ciphertext: []byte{9}, Nonce: []byte{8}},
	}))

	got, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	got.E2EESalt[0] = 42

	again, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, again.E2EESalt)
	assert.True(t, models.TOTPIsEnabled(again.TOTP))
}

func TestAccounts_UpdatePassphrase(t *testing.T) {
	ctx := context.Background()
	m := NewManager()
	repo := m.Accounts(m.Conn())
	require.NoError(t, repo.Create(ctx, &models.Account{ID: "a1", Username: "alice", TOTP: models.TOTPDisabled{}}))

	err := repo.UpdatePassphrase(ctx, "a1", accounts.PassphraseUpdate{
		E2EESalt: []byte("s"), MasterWrappedDEK: []byte("w"), MasterWrappedNonce: []byte("n"),
		MasterWrappedVersion: 1, Verifier: []byte("v"), VerifierSalt: []byte("vs"), VerifierVersion: 1,
	})
	require.NoError(t, err)

	a, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, []byte("w"), a.MasterWrappedDEK)
	assert.Equal(t, []byte("vs"), a.PassphraseVerifierSalt)

	require.ErrorIs(t, repo.UpdatePassphrase(ctx, "missing", accounts.PassphraseUpdate{}), common.ErrorNotFound)
	require.ErrorIs(t, repo.UpdateMasterWrappedDEK(ctx, "missing", nil, nil, 1), common.ErrorNotFound)
}

func TestInTx_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	m := NewManager()
	boom := errors.New("boom")

	err := m.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		require.NoError(t, m.Accounts(tx).Create(ctx, &models.Account{ID: "a1", Username: "alice", TOTP: models.TOTPDisabled{}}))
		require.NoError(t, m.Sessions(tx).Create(ctx, &models.Session{ID: "s1", AccountID: "a1", TokenHash: "h1"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = m.Accounts(m.Conn()).GetByID(ctx, "a1")
	require.ErrorIs(t, err, common.ErrorNotFound)
	_, err = m.Sessions(m.Conn()).FindByHash(ctx, "h1")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInTx_RollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	m := NewManager()

	require.Panics(t, func() {
		_ = m.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
			_ = m.Preferences(tx).Upsert(ctx, &models.Preferences{AccountID: "a1", AuthMethod: models.AuthMethodTOTP})
			panic("x")
		})
	})

	_, err := m.Preferences(m.Conn()).Get(ctx, "a1")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInTx_Commits(t *testing.T) {
	ctx := context.Background()
	m := NewManager()

	require.NoError(t, m.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		return m.Devices(tx).Upsert(ctx, &models.Device{AccountID: "a1", DeviceID: "d1", WrappedDEK: []byte{1}, Nonce: []byte{2}, Version: 1})
	}))

	d, err := m.Devices(m.Conn()).Get(ctx, "a1", "d1")
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, d.WrappedDEK)
	assert.False(t, d.CreatedAt.IsZero())
}

func TestSessions_RotateIsCompareAndSwap(t *testing.T) {
	ctx := context.Background()
	m := NewManager()
	repo := m.Sessions(m.Conn())
	exp := time.Now().Add(time.Hour)

	require.NoError(t, repo.Create(ctx, &models.Session{ID: "s1", AccountID: "a1", TokenHash: "old", ExpiresAt: exp}))
	require.NoError(t, repo.Rotate(ctx, "old", "new", exp.Add(time.Hour)))
	require.ErrorIs(t, repo.Rotate(ctx, "old", "newer", exp), common.ErrorNotFound)

	s, err := repo.FindByHash(ctx, "new")
	require.NoError(t, err)
	assert.Equal(t, "s1", s.ID)
	assert.True(t, s.ExpiresAt.Equal(exp.Add(time.Hour)))

	require.NoError(t, repo.DeleteByHash(ctx, "new"))
	require.NoError(t, repo.DeleteByHash(ctx, "new"))
}

func TestSessions_DeleteExpiredOnlyForAccount(t *testing.T) {
	ctx := context.Background()
	m := NewManager()
	repo := m.Sessions(m.Conn())
	now := time.Now()

	require.NoError(t, repo.Create(ctx, &models.Session{AccountID: "a1", TokenHash: "h1", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, repo.Create(ctx, &models.Session{AccountID: "a1", TokenHash: "h2", ExpiresAt: now.Add(time.Minute)}))
	require.NoError(t, repo.Create(ctx, &models.Session{AccountID: "a2", TokenHash: "h3", ExpiresAt: now.Add(-time.Minute)}))

	n, err := repo.DeleteExpired(ctx, "a1", now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = repo.FindByHash(ctx, "h3")
	require.NoError(t, err)
}

func TestLoginLinks_ConsumeOnce(t *testing.T) {
	ctx := context.Background()
	m := NewManager()
	repo := m.LoginLinks(m.Conn())

	require.NoError(t, repo.Create(ctx, &models.LoginLink{ID: "l1", AccountID: "a1", TokenHash: "h"}))

	_, err := repo.Consume(ctx, "a2", "h")
	require.ErrorIs(t, err, common.ErrorNotFound)

	l, err := repo.Consume(ctx, "a1", "h")
	require.NoError(t, err)
	assert.Equal(t, "l1", l.ID)

	_, err = repo.Consume(ctx, "a1", "h")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRateLimits_AcquireCreatesExpiredBucket(t *testing.T) {
	ctx := context.Background()
	m := NewManager()

	err := m.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := m.RateLimits(tx)
		b, err := repo.Acquire(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 0, b.Count)
		assert.False(t, time.Now().Before(b.ResetAt))

		b.Count = 3
		return repo.Save(ctx, b)
	})
	require.NoError(t, err)

	b, err := m.RateLimits(m.Conn()).Acquire(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 3, b.Count)
}

func TestNotes_InsertConflictAndOrder(t *testing.T) {
	ctx := context.Background()
	m := NewManager()
	repo := m.Notes(m.Conn())
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Insert(ctx, &models.Note{ID: "n1", AccountID: "a1", ClientNoteID: "c1", CreatedAt: t0}))
	require.NoError(t, repo.Insert(ctx, &models.Note{ID: "n2", AccountID: "a1", ClientNoteID: "c2", CreatedAt: t0.Add(time.Hour)}))
	require.NoError(t, repo.Insert(ctx, &models.Note{ID: "n3", AccountID: "a2", ClientNoteID: "c1", CreatedAt: t0}))

	require.ErrorIs(t, repo.Insert(ctx, &models.Note{ID: "n4", AccountID: "a1", ClientNoteID: "c1"}), common.ErrorConflict)

	list, err := repo.List(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "n2", list[0].ID)
	assert.Equal(t, "n1", list[1].ID)

	empty, err := repo.List(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	got, err := repo.GetByClientID(ctx, "a2", "c1")
	require.NoError(t, err)
	assert.Equal(t, "n3", got.ID)
}
