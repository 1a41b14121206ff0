package candidates

import "time"

// Candidate is a person being interviewed. Immutable after creation.
type Candidate struct {
	ID         int64
	Name       string
	Email      string
	ResumePath string
	CreatedAt  time.Time
}
