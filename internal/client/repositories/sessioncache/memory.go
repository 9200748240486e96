package sessioncache

import (
	"context"
	"sync"
)

// MemoryRepository is a Repository living in process memory. It backs tests
// and the degraded mode where the cache file cannot be opened: the session
// still works within one context, it just is not shared or persisted.
type MemoryRepository struct {
	mu     sync.RWMutex
	values map[string][]byte
	rev    int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{values: make(map[string][]byte)}
}

func (r *MemoryRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.values[key]
	if !ok || len(v) == 0 {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (r *MemoryRepository) Put(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	r.values[key] = cp
	r.rev++
	return nil
}

func (r *MemoryRepository) Clear(ctx context.Context, key string) error {
	return r.Put(ctx, key, nil)
}

func (r *MemoryRepository) Revision(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rev, nil
}
