package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/notevault/internal/client/client"
	"github.com/dmitrijs2005/notevault/internal/client/config"
	"github.com/dmitrijs2005/notevault/internal/client/services"
	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/filex"
	"github.com/dmitrijs2005/notevault/internal/flagx"
	"github.com/dmitrijs2005/notevault/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// Vault is the part of services.VaultService the CLI drives.
type Vault interface {
	Resume(ctx context.Context) (*services.Session, error)
	Register(ctx context.Context, username, email string, enableTOTP bool, passphrase []byte) (*services.RegisterResult, error)
	RequestLoginLink(ctx context.Context, email string) (time.Time, error)
	VerifyLoginLink(ctx context.Context, link string) (*services.Session, error)
	LoginWithCode(ctx context.Context, username, code string) (*services.Session, error)
	Unlock(ctx context.Context, passphrase []byte) ([]byte, error)
	ChangePassphrase(ctx context.Context, oldPassphrase, newPassphrase []byte) error
	AddNote(ctx context.Context, dek, body []byte) (string, error)
	ListNotes(ctx context.Context, dek []byte) ([]services.Note, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

type App struct {
	config   *config.Config
	vault    Vault
	db       *sql.DB
	log      logging.Logger
	dek      []byte
	userName string
	reader   *bufio.Reader

	mu   sync.Mutex
	mode Mode

	out      io.Writer
}

// NewApp opens the local database under the data directory and connects to
// the server.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewConsoleLogger(os.Stderr, slog.LevelWarn, false)

	dir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dir, "vault.db"))
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	deviceID := c.DeviceID
	if deviceID == "" {
		if deviceID, err = services.LocalDeviceID(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	apiClient, err := client.NewNotevaultClient(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	vault := services.NewVaultService(apiClient, db, deviceID)
	return newApp(c, vault, db, log, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, v Vault, db *sql.DB, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{config: c, vault: v, db: db, log: log, reader: bufio.NewReader(in), out: out}
}

func (a *App) Close() error {
	common.WipeByteArray(a.dek)
	a.dek = nil
	err := a.vault.Close()
	if a.db != nil {
		if cerr := a.db.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Run executes the subcommand found in args, or starts the REPL when there
// is none.
func (a *App) Run(ctx context.Context, args []string) error {
	defer a.Close()

	if sess, err := a.vault.Resume(ctx); err == nil {
		a.userName = sess.Username
	}

	rest := flagx.Positional(args, config.ValueFlags)
	if len(rest) > 0 {
		return a.runCommand(ctx, rest[0], rest[1:])
	}

	fmt.Fprintln(a.out, "notevault CLI (type 'help' for commands)")
	go a.StartOnlineStatusWatcher(ctx, 5*time.Second)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
	return nil
}

func (a *App) runCommand(ctx context.Context, cmd string, args []string) error {
	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	done, err := dispatch(ctx, a, cmd, args)
	if err != nil {
		return err
	}
	if !done {
		return fmt.Errorf("unknown command: %s", cmd)
	}
	return nil
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) isUnlocked() bool {
	return a.dek != nil
}

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if a.isUnlocked() {
		s += "unlocked "
	}
	s += string(a.Mode())
	s = strings.TrimSpace(s)
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// StartOnlineStatusWatcher pings the server every interval until ctx ends.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.vault.Ping(pingCtx); err != nil {
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}
