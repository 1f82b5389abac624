// Package server wires the bookmarks API together: configuration, storage,
// the optional rate limiter, tracing and the HTTP server. It also handles
// graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/bookmarks/internal/cryptox"
	"github.com/dmitrijs2005/bookmarks/internal/dbx"
	"github.com/dmitrijs2005/bookmarks/internal/logging"
	"github.com/dmitrijs2005/bookmarks/internal/server/auth"
	"github.com/dmitrijs2005/bookmarks/internal/server/config"
	"github.com/dmitrijs2005/bookmarks/internal/server/httpapi"
	"github.com/dmitrijs2005/bookmarks/internal/server/limiter"
	"github.com/dmitrijs2005/bookmarks/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/bookmarks/internal/server/services"
	"github.com/dmitrijs2005/bookmarks/internal/telemetry"
)

const (
	serviceName = "bookmarks-api"

	authRateLimit  = 20
	authRateWindow = time.Minute
)

var errDefaultSecret = errors.New("default secret key is not allowed with a database, set JWT_SECRET or -s")

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	counter *limiter.RedisCounter
	server  *httpapi.Server
}

// NewApp connects to the configured backends and builds the HTTP server.
// Without a DSN the API runs on in-memory storage.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)
	app := &App{config: c, logger: logger}

	if c.HasDefaultSecret() {
		if c.DatabaseDSN != "" {
			return nil, errDefaultSecret
		}
		logger.Warn(ctx, "using the default secret key, tokens can be forged by anyone who knows it")
	}

	var (
		m  repomanager.RepositoryManager
		db dbx.DBTX
	)
	checks := map[string]httpapi.Pinger{}

	if c.DatabaseDSN != "" {
		conn, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		pm := repomanager.NewPostgresRepositoryManager()
		if err := pm.RunMigrations(ctx, conn); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("migrations error: %w", err)
		}
		app.db, db = conn, conn
		m = pm
		checks["database"] = conn
	} else {
		logger.Warn(ctx, "no database configured, using in-memory storage")
		m = repomanager.NewInMemoryRepositoryManager()
	}

	var rl httpapi.RateLimiter
	if c.RedisAddr != "" {
		counter, err := limiter.NewRedisCounter(ctx, c.RedisAddr)
		if err != nil {
			app.close()
			return nil, fmt.Errorf("redis init error: %w", err)
		}
		app.counter = counter
		rl = limiter.New(counter, authRateLimit, authRateWindow)
		checks["redis"] = counter
	}

	tokens := auth.NewTokenService(c.SecretKey)

	users, err := services.NewUserService(db, m, cryptox.NewArgon2Hasher(), tokens)
	if err != nil {
		app.close()
		return nil, err
	}

	h := httpapi.NewHandler(httpapi.Deps{
		Users:      users,
		Bookmarks:  services.NewBookmarkService(db, m),
		Tokens:     tokens,
		Logger:     logger,
		Limiter:    rl,
		Checks:     checks,
		TrustProxy: c.TrustProxy,
	})

	app.server = httpapi.NewServer(c.EndpointAddrHTTP, h, logger, c.ShutdownTimeout)
	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until a termination signal arrives or ctx is cancelled.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "address", app.config.EndpointAddrHTTP)
	app.initSignalHandler(cancelFunc)

	shutdownTracing := telemetry.Setup(ctx, app.logger, serviceName, app.config.OTLPEndpoint, app.config.OTLPInsecure)
	defer func() {
		shCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(shCtx); err != nil {
			app.logger.Error(shCtx, "tracer shutdown error", "error", err)
		}
	}()
	defer app.close()

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, "server error", "error", err)
		return err
	}

	app.logger.Info(context.Background(), "App stopped")
	return nil
}

func (app *App) close() {
	if app.counter != nil {
		if err := app.counter.Close(); err != nil {
			app.logger.Error(context.Background(), "redis close error", "error", err)
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(context.Background(), "db close error", "error", err)
		}
	}
}
