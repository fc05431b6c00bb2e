// Package server wires configuration, storage and transports together and
// runs the gRPC and HTTP servers until a signal arrives.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/notevault/internal/api"
	"github.com/dmitrijs2005/notevault/internal/dbx"
	"github.com/dmitrijs2005/notevault/internal/logging"
	"github.com/dmitrijs2005/notevault/internal/server/blobstore"
	"github.com/dmitrijs2005/notevault/internal/server/config"
	"github.com/dmitrijs2005/notevault/internal/server/httpapi"
	"github.com/dmitrijs2005/notevault/internal/server/mailer"
	"github.com/dmitrijs2005/notevault/internal/server/peerlimit"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/memory"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/notevault/internal/server/services"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	gs "github.com/dmitrijs2005/notevault/internal/server/grpc"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	facade  *api.Facade
	closers []io.Closer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, err := logging.New(c.LogFormat, c.LogLevel, os.Stdout)
	if err != nil {
		return nil, err
	}

	app := &App{config: c, logger: logger}
	if err := app.init(ctx); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

func (app *App) init(ctx context.Context) error {
	c := app.config

	secret, err := c.Secret()
	if err != nil {
		return err
	}
	secrets, err := services.DeriveSecrets(secret)
	if err != nil {
		return err
	}

	tx, repos, err := app.initStore(ctx)
	if err != nil {
		return err
	}

	blobs, err := app.initBlobs(ctx)
	if err != nil {
		return err
	}

	set := services.NewSet(services.Options{
		Tx:            tx,
		Repos:         repos,
		Secrets:       secrets,
		Limiter:       app.initLimiter(tx, repos),
		Mailer:        app.initMailer(),
		Blobs:         blobs,
		Log:           app.logger,
		SessionTTL:    c.SessionTTL,
		RefreshWindow: c.SessionRefreshWindow,
		LinkTTL:       c.LinkTTL,
		AuthFloor:     c.AuthFloor,
		PublicBaseURL: c.PublicBaseURL,
		TOTPIssuer:    c.TOTPIssuer,
	})
	app.facade = api.NewFacade(set, app.logger)
	return nil
}

func (app *App) initStore(ctx context.Context) (dbx.Transactor, repomanager.RepositoryManager, error) {
	if app.config.DatabaseDSN == config.MemoryDSN {
		app.logger.Warn(ctx, "using in-memory store, data is lost on exit")
		m := memory.NewManager()
		return m, m, nil
	}

	db, err := sql.Open("pgx", app.config.DatabaseDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("db init error: %w", err)
	}
	app.closers = append(app.closers, db)

	if err := db.PingContext(ctx); err != nil {
		return nil, nil, fmt.Errorf("db ping error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		return nil, nil, fmt.Errorf("migrations error: %w", err)
	}
	return dbx.NewSQLTransactor(db, nil), m, nil
}

func (app *App) initLimiter(tx dbx.Transactor, repos repomanager.RepositoryManager) services.Limiter {
	if app.config.RedisAddr == "" {
		return services.NewStoreLimiter(tx, repos)
	}
	client := redis.NewClient(&redis.Options{Addr: app.config.RedisAddr})
	app.closers = append(app.closers, client)
	return services.NewRedisLimiter(client, "")
}

const mailQueueSize = 256

func (app *App) initMailer() mailer.Mailer {
	c := app.config
	if c.SMTPAddr == "" {
		// development: links are printed on stderr
		return mailer.NewWriterMailer(os.Stderr)
	}
	q := mailer.NewQueue(mailer.NewSMTPMailer(c.SMTPAddr, c.SMTPUser, c.SMTPPassword, c.SMTPFrom), mailQueueSize, app.logger)
	app.closers = append(app.closers, q)
	return q
}

func (app *App) initBlobs(ctx context.Context) (blobstore.Store, error) {
	c := app.config
	if c.BlobBackend != "s3" {
		return blobstore.NewMemory(), nil
	}
	s, err := blobstore.NewS3(ctx, blobstore.S3Config{
		Region:       c.S3Region,
		AccessKey:    c.S3RootUser,
		SecretKey:    c.S3RootPassword,
		Bucket:       c.S3Bucket,
		BaseEndpoint: c.S3BaseEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("blob store init error: %w", err)
	}
	return s, nil
}

// Close drains the mail queue and releases the database and Redis
// connections.
func (app *App) Close() {
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i].Close(); err != nil {
			app.logger.Warn(context.Background(), "close failed", "error", err)
		}
	}
	app.closers = nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) peers() *peerlimit.Limiter {
	return peerlimit.New(app.config.PeerRateLimit, app.config.PeerBurst, peerlimit.DefaultTTL)
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.facade, app.peers())

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	router := httpapi.NewRouter(app.facade, app.logger, app.peers(), app.config.CORSOrigins)
	s := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, router)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until a signal arrives or a server fails.
func (app *App) Run(ctx context.Context) {
	defer app.Close()

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	if app.config.EndpointAddrHTTP != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startHTTPServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()
}
