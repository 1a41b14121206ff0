package candidates

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo for dev and tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	data   map[int64]Candidate
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[int64]Candidate)}
}

// Create stores a candidate under the next id.
func (r *MemoryRepo) Create(ctx context.Context, cand Candidate) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	cand.ID = r.nextID
	r.data[cand.ID] = cand
	return cand.ID, nil
}

// GetByID returns a candidate by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Candidate, error) {
	if err := ctx.Err(); err != nil {
		return Candidate{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	cand, ok := r.data[id]
	if !ok {
		return Candidate{}, ErrNotFound
	}
	return cand, nil
}

var _ Repo = (*MemoryRepo)(nil)
