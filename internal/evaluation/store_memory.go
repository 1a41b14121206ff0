package evaluation

import (
	"context"
	"sync"

	"interview-backend/internal/answers"
)

// InterviewSource is the slice of interview persistence the evaluator needs.
// interviews.MemoryRepo satisfies it.
type InterviewSource interface {
	Exists(ctx context.Context, id int64) (bool, error)
	SetStatus(ctx context.Context, id int64, status string) error
}

// MemoryStore is an in-memory implementation of Store for dev and tests.
type MemoryStore struct {
	Answers    *answers.MemoryRepo
	Interviews InterviewSource

	mu      sync.RWMutex
	nextID  int64
	results map[int64]Result
}

// NewMemoryStore constructs a MemoryStore over the shared in-memory repos.
func NewMemoryStore(ans *answers.MemoryRepo, ivs InterviewSource) *MemoryStore {
	return &MemoryStore{
		Answers:    ans,
		Interviews: ivs,
		results:    make(map[int64]Result),
	}
}

// InterviewExists reports whether the interview is stored.
func (s *MemoryStore) InterviewExists(ctx context.Context, interviewID int64) (bool, error) {
	return s.Interviews.Exists(ctx, interviewID)
}

// Finish applies the evaluation writes against the in-memory repos.
func (s *MemoryStore) Finish(ctx context.Context, interviewID int64, details []AnswerDetail, res Result) (Result, error) {
	for _, d := range details {
		if err := s.Answers.UpdateScore(ctx, d.AnswerID, d.Score, d.Notes); err != nil {
			return Result{}, err
		}
	}

	s.mu.Lock()
	existing, ok := s.results[interviewID]
	if ok {
		res.ID = existing.ID
	} else {
		s.nextID++
		res.ID = s.nextID
	}
	res.InterviewID = interviewID
	s.results[interviewID] = res
	s.mu.Unlock()

	if err := s.Interviews.SetStatus(ctx, interviewID, "done"); err != nil {
		return Result{}, err
	}
	return res, nil
}

// GetResult returns the stored result for an interview.
func (s *MemoryStore) GetResult(ctx context.Context, interviewID int64) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.results[interviewID]
	if !ok {
		return Result{}, ErrResultNotFound
	}
	return res, nil
}

var _ Store = (*MemoryStore)(nil)
