package services

import (
	"context"
	"testing"

	"github.com/careerbridge/careerbridge/internal/client/models"
	"github.com/careerbridge/careerbridge/internal/client/repositories/sessioncache"
	"github.com/careerbridge/careerbridge/internal/client/session"
	"github.com/careerbridge/careerbridge/internal/logging"
	"github.com/stretchr/testify/require"
)

// fakeRefresher stands in for the auth gateway during guard tests.
type fakeRefresher struct {
	user  *models.SessionUser
	calls int
}

func (f *fakeRefresher) RefreshSession(ctx context.Context) *models.SessionUser {
	f.calls++
	return f.user
}

func newGuard(user *models.SessionUser) (*RouteGuard, *session.Store, *fakeRefresher) {
	cache := sessioncache.NewMemoryRepository()
	store := session.NewStore(cache, logging.NewNop())
	fr := &fakeRefresher{user: user}
	return NewRouteGuard(fr, store, logging.NewNop()), store, fr
}

func TestDecide_StudentGoesToStudentProfile(t *testing.T) {
	g, _, fr := newGuard(&models.SessionUser{UserID: "u1", Role: models.RoleStudent, IsVerified: true})

	require.Equal(t, RouteStudentProfile, g.Decide(context.Background()))
	require.Equal(t, 1, fr.calls, "every navigation re-verifies the session")
}

func TestDecide_RecruiterGoesToRecruiterProfile(t *testing.T) {
	g, _, _ := newGuard(&models.SessionUser{UserID: "u2", Role: models.RoleRecruiter, IsVerified: true})

	require.Equal(t, RouteRecruiterProfile, g.Decide(context.Background()))
}

func TestDecide_AnonymousGoesToLogin(t *testing.T) {
	g, _, _ := newGuard(nil)

	require.Equal(t, RouteLogin, g.Decide(context.Background()))
}

func TestDecide_UnknownRoleGoesToLogin(t *testing.T) {
	for _, role := range []models.Role{"admin", "moderator", ""} {
		g, _, _ := newGuard(&models.SessionUser{UserID: "u3", Role: role, IsVerified: true})
		require.Equal(t, RouteLogin, g.Decide(context.Background()), "role %q must not reach a profile", role)
	}
}

func TestDecide_FallsBackToCachedUserWhenRefreshYieldsNothing(t *testing.T) {
	ctx := context.Background()
	g, store, _ := newGuard(nil)

	// A previous successful check persisted the user; then the backend went
	// unreachable and the in-memory state was dropped.
	require.NoError(t, store.Set(ctx, &models.SessionUser{UserID: "u1", Role: models.RoleStudent, IsVerified: true}))
	store.Hydrate(nil)

	require.Equal(t, RouteStudentProfile, g.Decide(ctx))
}

func TestDecide_NoFallbackAfterPurge(t *testing.T) {
	ctx := context.Background()
	g, store, _ := newGuard(nil)

	// A rejected session check purges the cache before the guard runs.
	require.NoError(t, store.Set(ctx, &models.SessionUser{UserID: "u1", Role: models.RoleStudent}))
	require.NoError(t, store.Set(ctx, nil))

	require.Equal(t, RouteLogin, g.Decide(ctx))
}

func TestDecide_VerifiedEnforcement(t *testing.T) {
	unverified := &models.SessionUser{UserID: "u1", Role: models.RoleStudent, IsVerified: false}

	g, _, _ := newGuard(unverified)
	require.Equal(t, RouteStudentProfile, g.Decide(context.Background()),
		"verification is not enforced by default")

	g, _, _ = newGuard(unverified)
	g.RequireVerified = true
	require.Equal(t, RouteVerifyEmail, g.Decide(context.Background()))
}
