package candidates

import "context"

// Repo defines persistence operations for candidates.
type Repo interface {
	Create(ctx context.Context, cand Candidate) (int64, error)
	GetByID(ctx context.Context, id int64) (Candidate, error)
}
