// Package jobs is the dev server's in-memory job board.
package jobs

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location,omitempty"`
	Type        string    `json:"type,omitempty"`
	Salary      string    `json:"salary,omitempty"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	PostedBy    string    `json:"postedBy,omitempty"`
	PostedAt    time.Time `json:"postedAt"`
}

type MemoryRepository struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{jobs: make(map[string]*Job)}
}

func (r *MemoryRepository) Create(ctx context.Context, job *Job) (*Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *job
	cp.ID = uuid.NewString()
	cp.PostedAt = time.Now().UTC()
	r.jobs[cp.ID] = &cp
	out := cp
	return &out, nil
}

// List returns all postings, newest first.
func (r *MemoryRepository) List(ctx context.Context) ([]Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, *j)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].PostedAt.After(out[k].PostedAt) })
	return out, nil
}
