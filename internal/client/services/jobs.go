package services

import (
	"context"
	"errors"

	"github.com/careerbridge/careerbridge/internal/client/client"
	"github.com/careerbridge/careerbridge/internal/client/models"
	"github.com/careerbridge/careerbridge/internal/client/session"
)

// ErrRecruiterOnly is returned when a non-recruiter tries to publish a job.
var ErrRecruiterOnly = errors.New("only recruiters can post jobs")

// JobService exposes the job feed and job posting.
type JobService interface {
	List(ctx context.Context) ([]models.Job, error)
	Post(ctx context.Context, job models.Job) (*models.Job, error)
}

type jobService struct {
	client client.Client
	store  *session.Store
}

func NewJobService(c client.Client, store *session.Store) JobService {
	return &jobService{client: c, store: store}
}

func (s *jobService) List(ctx context.Context) ([]models.Job, error) {
	return s.client.Jobs(ctx)
}

// Post publishes a job. The role check here is a UI courtesy; the backend
// enforces it again.
func (s *jobService) Post(ctx context.Context, job models.Job) (*models.Job, error) {
	u := s.store.Current()
	if u == nil || u.Role != models.RoleRecruiter {
		return nil, ErrRecruiterOnly
	}
	return s.client.PostJob(ctx, job)
}
