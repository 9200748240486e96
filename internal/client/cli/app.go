// Package cli implements the interactive CareerBridge client: a REPL over
// the auth, profile and job services. It contains presentation only; every
// decision of interest lives in the services it calls.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/careerbridge/careerbridge/internal/client/client"
	"github.com/careerbridge/careerbridge/internal/client/config"
	"github.com/careerbridge/careerbridge/internal/client/repositories/sessioncache"
	"github.com/careerbridge/careerbridge/internal/client/services"
	"github.com/careerbridge/careerbridge/internal/client/session"
	"github.com/careerbridge/careerbridge/internal/client/tabsync"
	"github.com/careerbridge/careerbridge/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	store    *session.Store
	auth     services.AuthService
	profiles services.ProfileService
	jobs     services.JobService
	guard    *services.RouteGuard
	watcher  *tabsync.Watcher
	log      logging.Logger

	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := sessioncache.OpenDatabase(ctx, cfg.CacheFile)
	if err != nil {
		return nil, err
	}

	cache := sessioncache.NewSQLiteRepository(db)
	store := session.NewStore(cache, log)

	apiClient, err := client.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout)
	if err != nil {
		db.Close()
		return nil, err
	}

	auth := services.NewAuthService(apiClient, store, log)
	guard := services.NewRouteGuard(auth, store, log)
	guard.RequireVerified = cfg.RequireVerified

	return &App{
		config:   cfg,
		store:    store,
		auth:     auth,
		profiles: services.NewProfileService(apiClient, auth, log),
		jobs:     services.NewJobService(apiClient, store),
		guard:    guard,
		watcher:  tabsync.NewWatcher(cache, store, cfg.SyncInterval, log),
		log:      log,
		db:       db,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run restores the cached session for instant first paint, starts the
// cross-context watcher, and enters the REPL until EOF or "exit".
func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)

	if u, err := a.store.Restore(ctx); err == nil && u != nil {
		a.log.Debug(ctx, "restored cached session", "username", u.Username)
	}
	a.watcher.Start(ctx)

	a.Root(ctx)
}

func (a *App) Close(ctx context.Context) {
	a.watcher.Close()
	if err := a.auth.Close(ctx); err != nil {
		a.log.Warn(ctx, "error closing client", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(ctx, "error closing cache database", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.store.Current() != nil
}
