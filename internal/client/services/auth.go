// Package services contains the application services of the CareerBridge
// client: the auth gateway binding the transport to the session store, the
// route guard, and the profile/job services.
package services

import (
	"context"
	"errors"

	"github.com/careerbridge/careerbridge/internal/client/client"
	"github.com/careerbridge/careerbridge/internal/client/models"
	"github.com/careerbridge/careerbridge/internal/client/session"
	"github.com/careerbridge/careerbridge/internal/logging"
)

// AuthService defines the session-affecting operations of the client.
//
// Contract:
//   - Login: authenticate, then refresh the session so the store holds the
//     authoritative, fully populated user. Reports success as a bool; the
//     reason for a failure is deliberately not exposed.
//   - Logout: best-effort server call; local state always ends logged out.
//   - RefreshSession: the single "who am I" check; nil means anonymous.
//   - Register / ResendVerification / VerifyEmail: account lifecycle calls
//     whose backend messages are surfaced to the caller.
//
// None of the expected failure modes panic or leak transport errors; callers
// branch on nil/false results.
type AuthService interface {
	Login(ctx context.Context, email, password string) bool
	Logout(ctx context.Context)
	RefreshSession(ctx context.Context) *models.SessionUser
	Register(ctx context.Context, req client.RegisterRequest) (string, error)
	ResendVerification(ctx context.Context, email string) (string, error)
	VerifyEmail(ctx context.Context, token string) (bool, string, error)
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client and the
// session Store.
type authService struct {
	client client.Client
	store  *session.Store
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given transport and store.
func NewAuthService(c client.Client, store *session.Store, log logging.Logger) AuthService {
	return &authService{client: c, store: store, log: log}
}

// Login sends credentials and, on acceptance, refreshes the session. The
// store ends authenticated on success and anonymous on failure; the
// persisted cache is not purged on failure since nothing was cached yet for
// this attempt.
func (a *authService) Login(ctx context.Context, email, password string) bool {
	a.store.SetLoading(true)
	defer a.store.SetLoading(false)

	if err := a.client.Login(ctx, email, password); err != nil {
		a.log.Debug(ctx, "login rejected", "error", err)
		a.store.Hydrate(nil)
		return false
	}

	// The login response body is not trusted for identity; the verify
	// endpoint is the single source of the session user.
	a.RefreshSession(ctx)
	return true
}

// Logout is fail-open on the client: even if the server call fails, local
// session state and the persisted cache are cleared, because a user-visible
// logout must always succeed locally.
func (a *authService) Logout(ctx context.Context) {
	if err := a.client.Logout(ctx); err != nil {
		a.log.Warn(ctx, "logout request failed, clearing local session anyway", "error", err)
	}
	if err := a.store.Set(ctx, nil); err != nil {
		a.log.Warn(ctx, "failed to clear persisted session", "error", err)
	}
}

// RefreshSession asks the backend who is logged in and makes the store agree.
//
// Outcomes:
//   - verified user: stored (and persisted) as current, returned;
//   - rejected or malformed answer: session revoked, so the store is cleared
//     and the persisted cache purged;
//   - no answer at all (network failure/timeout): in-memory state becomes
//     anonymous but the persisted cache is left alone, so an already
//     authenticated user survives a transient backend outage via the
//     stale-cache fallback in the route guard.
func (a *authService) RefreshSession(ctx context.Context) *models.SessionUser {
	a.store.SetLoading(true)
	defer a.store.SetLoading(false)

	u, err := a.client.Me(ctx)
	switch {
	case err == nil:
		if err := a.store.Set(ctx, u); err != nil {
			a.log.Warn(ctx, "session verified but not persisted", "error", err)
		}
		return u
	case errors.Is(err, client.ErrUnavailable):
		a.log.Debug(ctx, "session check unreachable", "error", err)
		a.store.Hydrate(nil)
		return nil
	default:
		a.log.Debug(ctx, "session check rejected", "error", err)
		if err := a.store.Set(ctx, nil); err != nil {
			a.log.Warn(ctx, "failed to purge session cache", "error", err)
		}
		return nil
	}
}

// Register passes the already validated payload to the backend.
func (a *authService) Register(ctx context.Context, req client.RegisterRequest) (string, error) {
	return a.client.Register(ctx, req)
}

// ResendVerification asks for another verification email.
func (a *authService) ResendVerification(ctx context.Context, email string) (string, error) {
	return a.client.ResendVerification(ctx, email)
}

// VerifyEmail redeems an emailed verification token.
func (a *authService) VerifyEmail(ctx context.Context, token string) (bool, string, error) {
	return a.client.VerifyEmail(ctx, token)
}

// Close releases the underlying transport.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
