// Package app wires the application together: configuration, logger,
// database and mail extensions, route groups, and error translation, in
// that order.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/nbportal/portal/internal/api/health"
	"github.com/nbportal/portal/internal/api/httpserver"
	"github.com/nbportal/portal/internal/api/router"
	"github.com/nbportal/portal/internal/config"
	"github.com/nbportal/portal/internal/database"
	"github.com/nbportal/portal/internal/frontend"
	"github.com/nbportal/portal/internal/mail"
	"github.com/nbportal/portal/internal/metrics"
	"github.com/nbportal/portal/pkg/logger"
)

// Application bundles the wired components and manages the HTTP server
// lifecycle.
type Application struct {
	cfg     *config.Config
	log     *logger.Logger
	db      *sql.DB
	mailer  *mail.Mailer
	server  *httpserver.Server
	handler http.Handler
}

type options struct {
	overlays   []config.Overlay
	blueprints []router.Blueprint
}

// Option customizes factory construction.
type Option func(*options)

// WithConfig layers a caller-supplied configuration source between the
// defaults and the config file.
func WithConfig(overlay config.Overlay) Option {
	return func(o *options) { o.overlays = append(o.overlays, overlay) }
}

// WithBlueprints replaces the default blueprint set.
func WithBlueprints(bps ...router.Blueprint) Option {
	return func(o *options) { o.blueprints = bps }
}

// New builds the application. Construction order is fixed: configuration,
// logger, database extension, mail extension, blueprints, error handlers.
func New(opts ...Option) (*Application, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cfg, err := config.Load(o.overlays...)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.LoggingConfig{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})

	var db *sql.DB
	if cfg.Database.Enabled {
		db, err = database.Open(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		if cfg.Database.PingOnStart {
			if err := database.Ping(context.Background(), db); err != nil {
				db.Close()
				return nil, err
			}
		}
	}

	mailer := mail.New(cfg.Mail)

	blueprints := o.blueprints
	if blueprints == nil {
		blueprints = []router.Blueprint{
			health.New(),
			frontend.New(cfg.Paths, log),
		}
	}

	mux := router.New(router.Options{
		Log:        log,
		StaticDir:  cfg.Paths.StaticDir,
		Blueprints: blueprints,
	})
	handler := metrics.InstrumentHandler(mux)

	return &Application{
		cfg:     cfg,
		log:     log,
		db:      db,
		mailer:  mailer,
		server:  httpserver.New(cfg.Server, handler),
		handler: handler,
	}, nil
}

// Config returns the resolved configuration.
func (a *Application) Config() *config.Config { return a.cfg }

// Log returns the application logger.
func (a *Application) Log() *logger.Logger { return a.log }

// Handler returns the root HTTP handler, for tests.
func (a *Application) Handler() http.Handler { return a.handler }

// DB returns the database pool, or nil when the extension is disabled.
func (a *Application) DB() *sql.DB { return a.db }

// Mailer returns the mail extension.
func (a *Application) Mailer() *mail.Mailer { return a.mailer }

// Run starts the HTTP server and blocks until the context is cancelled or
// the server fails.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.log.Infof("%s listening on %s in %s mode", a.cfg.App.Name, a.server.Addr(), a.cfg.Mode)
		if err := a.server.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Shutdown stops the server gracefully and closes the database handle.
func (a *Application) Shutdown(ctx context.Context) error {
	timeout := time.Duration(a.cfg.Server.ShutdownTimeout) * time.Second
	shutdownCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.WithError(err).Warn("error closing database connection")
		}
	}

	return nil
}

// InitDB drops and recreates the database schema.
func (a *Application) InitDB(ctx context.Context) error {
	if a.db == nil {
		return fmt.Errorf("database extension is disabled")
	}
	if err := database.Ping(ctx, a.db); err != nil {
		return err
	}
	return database.InitSchema(ctx, a.db)
}
