package services

import (
	"context"

	"github.com/careerbridge/careerbridge/internal/client/client"
	"github.com/careerbridge/careerbridge/internal/client/models"
	"github.com/careerbridge/careerbridge/internal/logging"
)

// ProfileService reads and replaces the extended profile. Profile mutations
// round-trip to the backend and then re-derive the session user from the
// verify endpoint, so the store never holds a locally merged object.
type ProfileService interface {
	Get(ctx context.Context) (*models.Profile, error)
	Update(ctx context.Context, p *models.Profile) error
}

type profileService struct {
	client client.Client
	auth   AuthService
	log    logging.Logger
}

func NewProfileService(c client.Client, auth AuthService, log logging.Logger) ProfileService {
	return &profileService{client: c, auth: auth, log: log}
}

func (s *profileService) Get(ctx context.Context) (*models.Profile, error) {
	return s.client.Profile(ctx)
}

func (s *profileService) Update(ctx context.Context, p *models.Profile) error {
	if err := s.client.UpdateProfile(ctx, p); err != nil {
		return err
	}
	s.auth.RefreshSession(ctx)
	return nil
}
