package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/careerbridge/careerbridge/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("role must be student or recruiter")
	ErrTokenUnknown       = errors.New("invalid or expired verification token")
)

// Service implements the account lifecycle: registration with email
// verification, credential checks, and whole-profile updates. Verification
// emails are not actually sent; the token is logged so a developer can
// redeem it by hand.
type Service struct {
	repo Repository
	log  logging.Logger
}

func NewService(repo Repository, log logging.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func validRole(role string) bool {
	return role == "student" || role == "recruiter"
}

func (s *Service) Register(ctx context.Context, fullName, username, email, password, role string) (*User, error) {
	if !validRole(role) {
		return nil, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		ID:                uuid.NewString(),
		FullName:          fullName,
		Username:          username,
		Email:             email,
		PasswordHash:      hash,
		Role:              role,
		VerificationToken: uuid.NewString(),
		CreatedAt:         time.Now().UTC(),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	// Stand-in for the email delivery the real backend does.
	s.log.Info(ctx, "verification email (not sent)",
		"email", user.Email, "verifyToken", user.VerificationToken)
	return user, nil
}

// Authenticate checks email+password. Both "no such account" and "wrong
// password" collapse into ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Verify redeems a verification token, marking the account verified.
func (s *Service) Verify(ctx context.Context, token string) (*User, error) {
	user, err := s.repo.GetByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrTokenUnknown
		}
		return nil, err
	}

	user.IsVerified = true
	user.VerificationToken = ""
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ResendVerification rotates the token for an unverified account and "sends"
// it again.
func (s *Service) ResendVerification(ctx context.Context, email string) error {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.IsVerified {
		return errors.New("account is already verified")
	}

	user.VerificationToken = uuid.NewString()
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.log.Info(ctx, "verification email resent (not sent)",
		"email", user.Email, "verifyToken", user.VerificationToken)
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateProfile replaces the stored profile and the mutable identity fields.
// Role, credentials, and verification state are not touched through this path.
func (s *Service) UpdateProfile(ctx context.Context, id string, fullName string, profile ProfileData) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fullName != "" {
		user.FullName = fullName
	}
	user.Profile = profile
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
