package users

import (
	"context"
	"testing"

	"github.com/careerbridge/careerbridge/internal/logging"
	"github.com/stretchr/testify/require"
)

func newService() (*Service, *MemoryRepository) {
	repo := NewMemoryRepository()
	return NewService(repo, logging.NewNop()), repo
}

func TestRegister_CreatesUnverifiedAccount(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	u, err := svc.Register(ctx, "Jane Doe", "janed", "jane@example.com", "secret123", "student")
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.False(t, u.IsVerified)
	require.NotEmpty(t, u.VerificationToken)
	require.NotEqual(t, "secret123", string(u.PasswordHash))
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Register(context.Background(), "Eve", "eve", "eve@example.com", "secret123", "admin")
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestRegister_RejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()
	_, err := svc.Register(ctx, "Jane Doe", "janed", "jane@example.com", "secret123", "student")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other", "other", "JANE@example.com", "secret456", "student")
	require.ErrorIs(t, err, ErrConflict)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()
	_, err := svc.Register(ctx, "Jane Doe", "janed", "jane@example.com", "secret123", "student")
	require.NoError(t, err)

	u, err := svc.Authenticate(ctx, "jane@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, "janed", u.Username)

	_, err = svc.Authenticate(ctx, "jane@example.com", "wrongpass")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@example.com", "secret123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerify(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService()
	_, err := svc.Register(ctx, "Jane Doe", "janed", "jane@example.com", "secret123", "student")
	require.NoError(t, err)

	stored, err := repo.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)

	u, err := svc.Verify(ctx, stored.VerificationToken)
	require.NoError(t, err)
	require.True(t, u.IsVerified)
	require.Empty(t, u.VerificationToken)

	// A token is single use.
	_, err = svc.Verify(ctx, stored.VerificationToken)
	require.ErrorIs(t, err, ErrTokenUnknown)
}

func TestResendVerification_RotatesToken(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService()
	_, err := svc.Register(ctx, "Jane Doe", "janed", "jane@example.com", "secret123", "student")
	require.NoError(t, err)

	before, err := repo.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.ResendVerification(ctx, "jane@example.com"))

	after, err := repo.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	require.NotEqual(t, before.VerificationToken, after.VerificationToken)

	// The old token is dead, the new one works.
	_, err = svc.Verify(ctx, before.VerificationToken)
	require.ErrorIs(t, err, ErrTokenUnknown)
	_, err = svc.Verify(ctx, after.VerificationToken)
	require.NoError(t, err)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()
	u, err := svc.Register(ctx, "Jane Doe", "janed", "jane@example.com", "secret123", "student")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, u.ID, "Jane Q. Doe", ProfileData{Bio: "CS student"})
	require.NoError(t, err)
	require.Equal(t, "Jane Q. Doe", updated.FullName)
	require.Equal(t, "CS student", updated.Profile.Bio)
	require.Equal(t, "student", updated.Role, "profile updates must not change the role")
}
