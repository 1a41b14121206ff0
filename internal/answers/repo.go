package answers

import "context"

// Repo defines persistence operations for interview answers.
type Repo interface {
	Create(ctx context.Context, ans Answer) (int64, error)
	GetByID(ctx context.Context, id int64) (Answer, error)
	ListByInterview(ctx context.Context, interviewID int64) ([]Answer, error)
	UpdateScore(ctx context.Context, id int64, score float64, notes string) error
}
