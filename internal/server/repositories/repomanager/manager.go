package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/notevault/internal/dbx"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/devices"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/loginlinks"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/notes"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/preferences"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/ratelimits"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/sessions"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code
// path works with a plain connection or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Accounts(db dbx.DBTX) accounts.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	LoginLinks(db dbx.DBTX) loginlinks.Repository
	RateLimits(db dbx.DBTX) ratelimits.Repository
	Devices(db dbx.DBTX) devices.Repository
	Notes(db dbx.DBTX) notes.Repository
	Preferences(db dbx.DBTX) preferences.Repository
}
