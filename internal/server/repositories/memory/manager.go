// Package memory is an in-process implementation of every repository plus a
// matching dbx.Transactor. It backs the server's memory:// mode and service
// tests and is meant for development, not production.
//
// Transactions are fully serialized behind one mutex. Every InTx copies the
// whole store up front so a failed transaction can restore it, which makes
// each transaction O(size of the store).
package memory

import (
	"context"
	"database/sql"
	"errors"
	"maps"
	"sync"

	"github.com/dmitrijs2005/notevault/internal/dbx"
	"github.com/dmitrijs2005/notevault/internal/server/models"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/devices"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/loginlinks"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/notes"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/preferences"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/ratelimits"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/sessions"
)

var errNoSQL = errors.New("memory store does not execute sql")

// txHandle is the DBTX handed to functions running inside InTx. Repositories
// only use it to tell whether the transaction lock is already held.
type txHandle struct{}

func (txHandle) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, errNoSQL
}

func (txHandle) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, errNoSQL
}

func (txHandle) QueryRowContext(context.Context, string, ...any) *sql.Row {
	return nil
}

type state struct {
	accounts map[string]models.Account     // by id
	sessions map[string]models.Session     // by token hash
	links    map[string]models.LoginLink   // by account id + token hash
	buckets  map[string]models.RateLimitBucket
	devices  map[string]models.Device      // by account id + device id
	notes    map[string]models.Note        // by account id + client note id
	prefs    map[string]models.Preferences // by account id
}

func newState() state {
	return state{
		accounts: map[string]models.Account{},
		sessions: map[string]models.Session{},
		links:    map[string]models.LoginLink{},
		buckets:  map[string]models.RateLimitBucket{},
		devices:  map[string]models.Device{},
		notes:    map[string]models.Note{},
		prefs:    map[string]models.Preferences{},
	}
}

func (s state) clone() state {
	return state{
		accounts: maps.Clone(s.accounts),
		sessions: maps.Clone(s.sessions),
		links:    maps.Clone(s.links),
		buckets:  maps.Clone(s.buckets),
		devices:  maps.Clone(s.devices),
		notes:    maps.Clone(s.notes),
		prefs:    maps.Clone(s.prefs),
	}
}

// Manager implements repomanager.RepositoryManager and dbx.Transactor.
type Manager struct {
	txMu sync.Mutex // held for a whole transaction or a single statement
	st   state
}

// NewManager returns an empty store.
func NewManager() *Manager {
	return &Manager{st: newState()}
}

// RunMigrations is a no-op; the schema is implicit.
func (m *Manager) RunMigrations(context.Context, *sql.DB) error { return nil }

// Conn returns a handle for statements outside a transaction.
func (m *Manager) Conn() dbx.DBTX { return nil }

// InTx runs fn with the store locked. It snapshots every table first; if fn
// fails or panics the snapshot replaces the store.
func (m *Manager) InTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) (err error) {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	snapshot := m.st.clone()
	defer func() {
		if p := recover(); p != nil {
			m.st = snapshot
			panic(p)
		}
		if err != nil {
			m.st = snapshot
		}
	}()

	return fn(ctx, txHandle{})
}

// lock serializes a standalone statement with transactions. Inside InTx the
// lock is already held.
func (m *Manager) lock(db dbx.DBTX) func() {
	if _, inTx := db.(txHandle); inTx {
		return func() {}
	}
	m.txMu.Lock()
	return m.txMu.Unlock
}

func (m *Manager) Accounts(db dbx.DBTX) accounts.Repository {
	return &accountRepo{m: m, db: db}
}

func (m *Manager) Sessions(db dbx.DBTX) sessions.Repository {
	return &sessionRepo{m: m, db: db}
}

func (m *Manager) LoginLinks(db dbx.DBTX) loginlinks.Repository {
	return &loginLinkRepo{m: m, db: db}
}

func (m *Manager) RateLimits(db dbx.DBTX) ratelimits.Repository {
	return &rateLimitRepo{m: m, db: db}
}

func (m *Manager) Devices(db dbx.DBTX) devices.Repository {
	return &deviceRepo{m: m, db: db}
}

func (m *Manager) Notes(db dbx.DBTX) notes.Repository {
	return &noteRepo{m: m, db: db}
}

func (m *Manager) Preferences(db dbx.DBTX) preferences.Repository {
	return &preferencesRepo{m: m, db: db}
}
