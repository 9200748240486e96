// Package tabsync keeps concurrently running client contexts ("tabs")
// agreed on who is logged in. Each context polls the shared persisted cache
// for writes made by the others and rehydrates its own session store,
// deliberately without re-verifying against the backend on every change:
// one context already did, and a herd of verification calls from every open
// context would buy nothing.
package tabsync

import (
	"context"
	"encoding/json"
	"time"

	"github.com/careerbridge/careerbridge/internal/client/models"
	"github.com/careerbridge/careerbridge/internal/client/repositories/sessioncache"
	"github.com/careerbridge/careerbridge/internal/client/session"
	"github.com/careerbridge/careerbridge/internal/logging"
)

// Watcher polls the cache revision counter and, on a change it did not make
// itself, loads whatever is persisted (possibly nothing) into the store.
// Last writer by arrival time wins, even while a network call is in flight.
type Watcher struct {
	cache    sessioncache.Repository
	store    *session.Store
	interval time.Duration
	log      logging.Logger

	lastRev int64
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewWatcher(cache sessioncache.Repository, store *session.Store, interval time.Duration, log logging.Logger) *Watcher {
	return &Watcher{
		cache:    cache,
		store:    store,
		interval: interval,
		log:      log,
		done:     make(chan struct{}),
	}
}

// Start begins watching in a background goroutine until Close or ctx
// cancellation. The revision at start is taken as the baseline; only later
// writes trigger a rehydrate.
func (w *Watcher) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)

	rev, err := w.cache.Revision(ctx)
	if err != nil {
		w.log.Warn(ctx, "cache revision unavailable, starting from zero", "error", err)
	}
	w.lastRev = rev

	go w.run(ctx)
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.poll(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (w *Watcher) poll(ctx context.Context) {
	rev, err := w.cache.Revision(ctx)
	if err != nil {
		w.log.Warn(ctx, "cache revision check failed", "error", err)
		return
	}
	if rev == w.lastRev {
		return
	}
	w.lastRev = rev

	b, err := w.cache.Get(ctx, sessioncache.KeyUser)
	if err != nil {
		w.log.Warn(ctx, "cache read failed during sync", "error", err)
		return
	}

	var u *models.SessionUser
	if b != nil {
		var parsed models.SessionUser
		if err := json.Unmarshal(b, &parsed); err != nil {
			w.log.Warn(ctx, "ignoring unreadable session cache entry", "error", err)
			return
		}
		u = &parsed
	}

	// Skip the no-op case: this context's own write-through already put the
	// same user in memory.
	if cur := w.store.Current(); (cur == nil && u == nil) || (cur != nil && u != nil && *cur == *u) {
		return
	}

	w.log.Debug(ctx, "session changed in another context, rehydrating")
	w.store.Hydrate(u)
}

// Close stops the watcher and waits for the polling goroutine to exit.
func (w *Watcher) Close() {
	if w.cancel != nil {
		w.cancel()
		<-w.done
	}
}
