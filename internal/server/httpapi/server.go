// Package httpapi exposes the dev server's implementation of the backend
// HTTP JSON contract the client depends on: cookie-based auth endpoints,
// the profile resource, and the job board.
package httpapi

import (
	"net/http"
	"time"

	"github.com/careerbridge/careerbridge/internal/logging"
	"github.com/careerbridge/careerbridge/internal/server/config"
	"github.com/careerbridge/careerbridge/internal/server/jobs"
	"github.com/careerbridge/careerbridge/internal/server/users"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const sessionCookieName = "token"

type Server struct {
	users    *users.Service
	jobs     *jobs.MemoryRepository
	secret   []byte
	tokenTTL time.Duration
	log      logging.Logger
}

func NewServer(us *users.Service, jr *jobs.MemoryRepository, cfg *config.Config, log logging.Logger) *Server {
	return &Server{
		users:    us,
		jobs:     jr,
		secret:   []byte(cfg.SecretKey),
		tokenTTL: cfg.TokenValidityDuration,
		log:      log,
	}
}

// Router wires every endpoint of the contract.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.handleRegister)
			r.Post("/login", s.handleLogin)
			r.Post("/logout", s.handleLogout)
			r.Post("/resend-verification-email", s.handleResendVerification)
			r.Get("/verify/{token}", s.handleVerifyEmail)

			r.Group(func(r chi.Router) {
				r.Use(s.requireSession)
				r.Get("/me", s.handleMe)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(s.requireSession)
			r.Get("/profile", s.handleGetProfile)
			r.Put("/profile", s.handleUpdateProfile)
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", s.handleListJobs)
			r.Group(func(r chi.Router) {
				r.Use(s.requireSession)
				r.Post("/", s.handlePostJob)
			})
		})
	})

	return r
}
