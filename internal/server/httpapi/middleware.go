package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/careerbridge/careerbridge/internal/server/auth"
	"github.com/careerbridge/careerbridge/internal/server/users"
)

type contextKey string

const userContextKey = contextKey("user")

// sessionToken extracts the session token from the cookie, falling back to
// a bearer Authorization header (the client mirrors the cookie there).
func sessionToken(r *http.Request) string {
	if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

// requireSession resolves the session token to a user and stores it in the
// request context; requests without a valid session get 401.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := sessionToken(r)
		if token == "" {
			writeMessage(w, http.StatusUnauthorized, "authentication required")
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.secret)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "invalid or expired session")
			return
		}

		user, err := s.users.GetByID(r.Context(), userID)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "invalid or expired session")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userFromContext(ctx context.Context) *users.User {
	u, _ := ctx.Value(userContextKey).(*users.User)
	return u
}
