package services

import (
	"context"

	"github.com/careerbridge/careerbridge/internal/client/models"
	"github.com/careerbridge/careerbridge/internal/client/session"
	"github.com/careerbridge/careerbridge/internal/logging"
)

// Route is a navigation decision produced by the RouteGuard.
type Route string

const (
	RouteStudentProfile   Route = "/student-profile"
	RouteRecruiterProfile Route = "/recruiter-profile"
	RouteLogin            Route = "/login"
	RouteVerifyEmail      Route = "/verify-email"
)

// sessionRefresher is the slice of AuthService the guard needs.
type sessionRefresher interface {
	RefreshSession(ctx context.Context) *models.SessionUser
}

// RouteGuard decides, for every navigation to a protected view, whether to
// send the user to their role-specific profile, to login, or (when verified
// email is enforced) to the verification page.
//
// The decision is recomputed from scratch on every call: the authoritative
// session check runs first, and only when it yields nothing does the guard
// fall back to the last persisted user. That fallback is what lets an
// already authenticated user keep working through a transient backend
// outage; a revoked session cannot abuse it because a rejected check purges
// the persisted copy before the fallback is consulted.
type RouteGuard struct {
	auth  sessionRefresher
	store *session.Store
	log   logging.Logger

	// RequireVerified routes authenticated but unverified users to the
	// verify-email page instead of their profile. Off by default.
	RequireVerified bool
}

func NewRouteGuard(auth sessionRefresher, store *session.Store, log logging.Logger) *RouteGuard {
	return &RouteGuard{auth: auth, store: store, log: log}
}

// Decide runs one full decision cycle and returns the terminal route.
func (g *RouteGuard) Decide(ctx context.Context) Route {
	user := g.auth.RefreshSession(ctx)
	if user == nil {
		cached, err := g.store.Cached(ctx)
		if err != nil {
			g.log.Warn(ctx, "session cache unavailable", "error", err)
		}
		user = cached
	}

	if user == nil || !user.Role.Known() {
		if user != nil {
			g.log.Warn(ctx, "rejecting session with unrecognized role", "role", user.Role)
		}
		return RouteLogin
	}
	if g.RequireVerified && !user.IsVerified {
		return RouteVerifyEmail
	}

	if user.Role == models.RoleStudent {
		return RouteStudentProfile
	}
	return RouteRecruiterProfile
}
