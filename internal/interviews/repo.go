package interviews

import (
	"context"
	"time"
)

// Repo defines persistence operations for interviews.
type Repo interface {
	Create(ctx context.Context, iv Interview) (int64, error)
	GetByID(ctx context.Context, id int64) (Interview, error)
	// MarkCompleted sets the completed status and timestamp. It only moves the
	// interview forward; a later status is left untouched.
	MarkCompleted(ctx context.Context, id int64, at time.Time) (Interview, error)
}
