package questions

import "context"

// Repo defines persistence operations for interview questions.
type Repo interface {
	Create(ctx context.Context, q Question) (int64, error)
	GetByID(ctx context.Context, id int64) (Question, error)
	ListBySkill(ctx context.Context, skill string) ([]Question, error)
	Count(ctx context.Context) (int, error)
}
