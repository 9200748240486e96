package tabsync

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/careerbridge/careerbridge/internal/client/models"
	"github.com/careerbridge/careerbridge/internal/client/repositories/sessioncache"
	"github.com/careerbridge/careerbridge/internal/client/session"
	"github.com/careerbridge/careerbridge/internal/logging"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*Watcher, *session.Store, *sessioncache.MemoryRepository) {
	t.Helper()
	cache := sessioncache.NewMemoryRepository()
	store := session.NewStore(cache, logging.NewNop())
	w := NewWatcher(cache, store, time.Minute, logging.NewNop())
	return w, store, cache
}

func put(t *testing.T, cache sessioncache.Repository, u *models.SessionUser) {
	t.Helper()
	b, err := json.Marshal(u)
	require.NoError(t, err)
	require.NoError(t, cache.Put(context.Background(), sessioncache.KeyUser, b))
}

func TestWatcher_PicksUpLoginFromOtherContext(t *testing.T) {
	ctx := context.Background()
	w, store, cache := setup(t)

	u := &models.SessionUser{UserID: "u1", Role: models.RoleStudent}
	put(t, cache, u)

	w.poll(ctx)
	require.Equal(t, u, store.Current())
}

func TestWatcher_PicksUpLogoutFromOtherContext(t *testing.T) {
	ctx := context.Background()
	w, store, cache := setup(t)

	u := &models.SessionUser{UserID: "u1", Role: models.RoleStudent}
	require.NoError(t, store.Set(ctx, u))
	rev, err := cache.Revision(ctx)
	require.NoError(t, err)
	w.lastRev = rev

	// Another context logs out: it clears the shared cache.
	require.NoError(t, cache.Clear(ctx, sessioncache.KeyUser))

	w.poll(ctx)
	require.Nil(t, store.Current(), "logout in one context must log out the others")
}

func TestWatcher_NoChangeNoRehydrate(t *testing.T) {
	ctx := context.Background()
	w, store, _ := setup(t)

	notified := 0
	store.Subscribe(func(*models.SessionUser) { notified++ })

	w.poll(ctx)
	w.poll(ctx)
	require.Zero(t, notified)
}

func TestWatcher_OwnWriteIsNoOp(t *testing.T) {
	ctx := context.Background()
	w, store, cache := setup(t)

	u := &models.SessionUser{UserID: "u1", Role: models.RoleStudent}
	require.NoError(t, store.Set(ctx, u))

	notified := 0
	store.Subscribe(func(*models.SessionUser) { notified++ })

	// The revision moved because of this context's own write-through; the
	// cached user already matches memory, so no rehydrate should fire.
	w.poll(ctx)
	require.Zero(t, notified)
	rev, err := cache.Revision(ctx)
	require.NoError(t, err)
	require.Equal(t, rev, w.lastRev)
}

func TestWatcher_IgnoresUnreadableEntry(t *testing.T) {
	ctx := context.Background()
	w, store, cache := setup(t)

	u := &models.SessionUser{UserID: "u1", Role: models.RoleStudent}
	store.Hydrate(u)
	require.NoError(t, cache.Put(ctx, sessioncache.KeyUser, []byte("{broken")))

	w.poll(ctx)
	require.Equal(t, u, store.Current())
}

func TestWatcher_StartAndClose(t *testing.T) {
	cache := sessioncache.NewMemoryRepository()
	store := session.NewStore(cache, logging.NewNop())
	w := NewWatcher(cache, store, 10*time.Millisecond, logging.NewNop())

	w.Start(context.Background())

	u := &models.SessionUser{UserID: "u2", Role: models.RoleRecruiter}
	put(t, cache, u)

	require.Eventually(t, func() bool {
		cur := store.Current()
		return cur != nil && cur.UserID == "u2"
	}, 2*time.Second, 5*time.Millisecond)

	w.Close()
}
