package answers

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo for dev and tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	data   map[int64]Answer
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[int64]Answer)}
}

// Create stores an answer under the next id.
func (r *MemoryRepo) Create(ctx context.Context, ans Answer) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	ans.ID = r.nextID
	r.data[ans.ID] = ans
	return ans.ID, nil
}

// GetByID returns an answer by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Answer, error) {
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	ans, ok := r.data[id]
	if !ok {
		return Answer{}, ErrNotFound
	}
	return ans, nil
}

// ListByInterview returns answers for an interview, oldest first.
func (r *MemoryRepo) ListByInterview(ctx context.Context, interviewID int64) ([]Answer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Answer
	for id := int64(1); id <= r.nextID; id++ {
		if ans, ok := r.data[id]; ok && ans.InterviewID == interviewID {
			out = append(out, ans)
		}
	}
	return out, nil
}

// UpdateScore writes the evaluation outcome onto the stored answer.
func (r *MemoryRepo) UpdateScore(ctx context.Context, id int64, score float64, notes string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	ans, ok := r.data[id]
	if !ok {
		return ErrNotFound
	}
	ans.Score = score
	ans.Scored = true
	ans.EvaluatorNotes = notes
	r.data[id] = ans
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
