package interviews

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo for dev and tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	data   map[int64]Interview
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[int64]Interview)}
}

// Create stores an interview under the next id.
func (r *MemoryRepo) Create(ctx context.Context, iv Interview) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	iv.ID = r.nextID
	iv.Status = StatusInProgress
	r.data[iv.ID] = iv
	return iv.ID, nil
}

// GetByID returns an interview by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Interview, error) {
	if err := ctx.Err(); err != nil {
		return Interview{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	iv, ok := r.data[id]
	if !ok {
		return Interview{}, ErrNotFound
	}
	return iv, nil
}

// MarkCompleted moves an in_progress interview to completed.
func (r *MemoryRepo) MarkCompleted(ctx context.Context, id int64, at time.Time) (Interview, error) {
	if err := ctx.Err(); err != nil {
		return Interview{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	iv, ok := r.data[id]
	if !ok {
		return Interview{}, ErrNotFound
	}
	if iv.Status == StatusInProgress {
		iv.Status = StatusCompleted
		iv.CompletedAt = &at
		r.data[id] = iv
	}
	return iv, nil
}

// Exists reports whether an interview with the id is stored.
func (r *MemoryRepo) Exists(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.data[id]
	return ok, nil
}

// SetStatus moves the interview to the given status if that is a forward move.
func (r *MemoryRepo) SetStatus(ctx context.Context, id int64, status string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	iv, ok := r.data[id]
	if !ok {
		return ErrNotFound
	}
	if CanTransition(iv.Status, status) {
		iv.Status = status
		r.data[id] = iv
	}
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
