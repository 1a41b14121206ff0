package questions

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo for dev and tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	data   map[int64]Question
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[int64]Question)}
}

// Create stores a question under the next id.
func (r *MemoryRepo) Create(ctx context.Context, q Question) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	q.ID = r.nextID
	r.data[q.ID] = q
	return q.ID, nil
}

// GetByID returns a question by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Question, error) {
	if err := ctx.Err(); err != nil {
		return Question{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	q, ok := r.data[id]
	if !ok {
		return Question{}, ErrNotFound
	}
	return q, nil
}

// ListBySkill returns questions tagged with the skill, ordered by id.
func (r *MemoryRepo) ListBySkill(ctx context.Context, skill string) ([]Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Question
	for id := int64(1); id <= r.nextID; id++ {
		if q, ok := r.data[id]; ok && q.Skill == skill {
			out = append(out, q)
		}
	}
	return out, nil
}

// Count returns the number of stored questions.
func (r *MemoryRepo) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data), nil
}

var _ Repo = (*MemoryRepo)(nil)
