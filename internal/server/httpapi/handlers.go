package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/careerbridge/careerbridge/internal/server/auth"
	"github.com/careerbridge/careerbridge/internal/server/jobs"
	"github.com/careerbridge/careerbridge/internal/server/users"
	"github.com/go-chi/chi/v5"
)

// sessionUser is the wire shape of the core session fields.
type sessionUser struct {
	UserID     string `json:"userId"`
	FullName   string `json:"fullname"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsVerified bool   `json:"isVerified"`
}

func toSessionUser(u *users.User) sessionUser {
	return sessionUser{
		UserID:     u.ID,
		FullName:   u.FullName,
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.Role,
		IsVerified: u.IsVerified,
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName string `json:"fullname"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.FullName == "" || req.Username == "" || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "all fields are required")
		return
	}

	_, err := s.users.Register(r.Context(), req.FullName, req.Username, req.Email, req.Password, req.Role)
	switch {
	case errors.Is(err, users.ErrConflict):
		writeMessage(w, http.StatusConflict, "email or username already registered")
	case errors.Is(err, users.ErrInvalidRole):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case err != nil:
		s.log.Error(r.Context(), "registration failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "registration failed")
	default:
		writeMessage(w, http.StatusCreated, "Registered successfully! Please check your email for verification.")
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.GenerateToken(user.ID, s.secret, s.tokenTTL)
	if err != nil {
		s.log.Error(r.Context(), "token generation failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "login failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.tokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeMessage(w, http.StatusOK, "logged in")
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	writeMessage(w, http.StatusOK, "logged out")
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	writeData(w, http.StatusOK, toSessionUser(user))
}

func (s *Server) handleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	_, err := s.users.Verify(r.Context(), token)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"isVerified": false,
			"message":    "Verification failed. Invalid or expired token.",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"isVerified": true})
}

func (s *Server) handleResendVerification(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeMessage(w, http.StatusBadRequest, "email is required")
		return
	}

	if err := s.users.ResendVerification(r.Context(), req.Email); err != nil {
		// Do not reveal whether the address is registered.
		s.log.Debug(r.Context(), "resend verification failed", "error", err)
	}
	writeMessage(w, http.StatusOK, "If the address is registered, a verification email has been sent.")
}

// profilePayload is the full profile as the client sees it: session fields
// plus the opaque extended data.
type profilePayload struct {
	sessionUser
	users.ProfileData
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	writeData(w, http.StatusOK, profilePayload{toSessionUser(user), user.Profile})
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var req struct {
		FullName string `json:"fullname"`
		users.ProfileData
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := s.users.UpdateProfile(r.Context(), user.ID, req.FullName, req.ProfileData)
	if err != nil {
		s.log.Error(r.Context(), "profile update failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "profile update failed")
		return
	}
	writeData(w, http.StatusOK, profilePayload{toSessionUser(updated), updated.Profile})
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	list, err := s.jobs.List(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "failed to list jobs")
		return
	}
	writeData(w, http.StatusOK, list)
}

func (s *Server) handlePostJob(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())
	if user.Role != "recruiter" {
		writeMessage(w, http.StatusForbidden, "only recruiters can post jobs")
		return
	}

	var job jobs.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if job.Title == "" || job.Company == "" {
		writeMessage(w, http.StatusBadRequest, "title and company are required")
		return
	}

	job.PostedBy = user.Username
	created, err := s.jobs.Create(r.Context(), &job)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "failed to create job")
		return
	}
	writeData(w, http.StatusCreated, created)
}
