// Package session holds the client's single source of truth for "who is
// logged in": an in-memory session user plus a loading flag, with an
// observer-style subscribe interface and write-through to the persisted
// cache. The store is a constructed object, not a package global, so tests
// can run their own isolated instances.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/careerbridge/careerbridge/internal/client/models"
	"github.com/careerbridge/careerbridge/internal/client/repositories/sessioncache"
	"github.com/careerbridge/careerbridge/internal/logging"
)

// Store owns the current session user. All components read it through
// Current or change it through Set/Hydrate; nothing else keeps a private
// copy, except the persisted cache which is allowed to be stale.
type Store struct {
	mu      sync.RWMutex
	current *models.SessionUser
	loading bool

	cache sessioncache.Repository
	log   logging.Logger

	subMu  sync.Mutex
	nextID int
	subs   map[int]func(*models.SessionUser)
}

func NewStore(cache sessioncache.Repository, log logging.Logger) *Store {
	return &Store{
		cache: cache,
		log:   log,
		subs:  make(map[int]func(*models.SessionUser)),
	}
}

// Current returns the session user known to this context, or nil when
// anonymous. Synchronous; never touches the network or the cache.
func (s *Store) Current() *models.SessionUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// Loading reports whether a session-affecting call is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) SetLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Subscribe registers fn to be called after every change to the current
// user. The returned function unsubscribes.
func (s *Store) Subscribe(fn func(*models.SessionUser)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify(u *models.SessionUser) {
	s.subMu.Lock()
	fns := make([]func(*models.SessionUser), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(u)
	}
}

// Set replaces the current user and writes through to the persisted cache:
// a serialized copy for a user, a cleared entry for nil. A cache write
// failure degrades the cache to empty-or-stale but never blocks the
// in-memory update; the returned error is informational.
func (s *Store) Set(ctx context.Context, u *models.SessionUser) error {
	s.mu.Lock()
	s.current = u
	s.mu.Unlock()
	s.notify(u)

	if u == nil {
		if err := s.cache.Clear(ctx, sessioncache.KeyUser); err != nil {
			s.log.Warn(ctx, "failed to clear session cache", "error", err)
			return err
		}
		return nil
	}

	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := s.cache.Put(ctx, sessioncache.KeyUser, b); err != nil {
		s.log.Warn(ctx, "failed to persist session cache", "error", err)
		return err
	}
	return nil
}

// Hydrate replaces the current user in memory only, leaving the persisted
// cache untouched. Used by cross-context sync (the cache is already the
// source of the change) and by network-failure paths that must not purge a
// possibly still valid cached session.
func (s *Store) Hydrate(u *models.SessionUser) {
	s.mu.Lock()
	s.current = u
	s.mu.Unlock()
	s.notify(u)
}

// Cached reads the persisted copy of the session user without changing
// in-memory state. It may be stale or represent a revoked session; callers
// use it only as a fallback hint.
func (s *Store) Cached(ctx context.Context) (*models.SessionUser, error) {
	b, err := s.cache.Get(ctx, sessioncache.KeyUser)
	if err != nil || b == nil {
		return nil, err
	}
	var u models.SessionUser
	if err := json.Unmarshal(b, &u); err != nil {
		s.log.Warn(ctx, "discarding unreadable session cache entry", "error", err)
		return nil, nil
	}
	return &u, nil
}

// Restore loads the cached user into memory for instant first paint before
// any server confirmation. Returns what was loaded.
func (s *Store) Restore(ctx context.Context) (*models.SessionUser, error) {
	u, err := s.Cached(ctx)
	if err != nil {
		return nil, err
	}
	s.Hydrate(u)
	return u, nil
}
