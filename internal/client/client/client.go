package client

import (
	"context"

	"github.com/careerbridge/careerbridge/internal/client/models"
)

// RegisterRequest is the payload for account creation. Field names follow
// the backend contract.
type RegisterRequest struct {
	FullName string      `json:"fullname"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

// Client is the transport boundary to the CareerBridge backend.
//
// Expected failure modes are reported through the sentinel errors in this
// package: ErrUnauthorized for rejected or malformed responses,
// ErrUnavailable when no usable response was received at all. Callers are
// expected to branch on these rather than inspect HTTP details.
type Client interface {
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.SessionUser, error)
	Register(ctx context.Context, req RegisterRequest) (string, error)
	ResendVerification(ctx context.Context, email string) (string, error)
	VerifyEmail(ctx context.Context, token string) (bool, string, error)
	Profile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, p *models.Profile) error
	Jobs(ctx context.Context) ([]models.Job, error)
	PostJob(ctx context.Context, job models.Job) (*models.Job, error)
	Close() error
}
