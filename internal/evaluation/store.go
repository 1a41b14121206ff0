package evaluation

import "context"

// Store persists evaluation outcomes. Finish applies every write of a
// per-interview evaluation as one unit: the per-answer score updates, the
// result upsert keyed by interview_id, and the interview's done status.
type Store interface {
	InterviewExists(ctx context.Context, interviewID int64) (bool, error)
	Finish(ctx context.Context, interviewID int64, details []AnswerDetail, res Result) (Result, error)
	GetResult(ctx context.Context, interviewID int64) (Result, error)
}
