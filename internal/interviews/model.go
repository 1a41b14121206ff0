package interviews

import "time"

// Interview statuses. Transitions are monotonic: in_progress → completed →
// evaluating → done; an interview never moves backwards.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusEvaluating = "evaluating"
	StatusDone       = "done"
)

// Interview ties a candidate to a skill under assessment.
type Interview struct {
	ID          int64
	CandidateID int64
	Skill       string
	Status      string
	StartedAt   time.Time
	CompletedAt *time.Time
}

// statusRank orders statuses for the monotonic-transition guard.
func statusRank(status string) int {
	switch status {
	case StatusInProgress:
		return 0
	case StatusCompleted:
		return 1
	case StatusEvaluating:
		return 2
	case StatusDone:
		return 3
	default:
		return -1
	}
}

// CanTransition reports whether moving from one status to another goes forward.
func CanTransition(from, to string) bool {
	fromRank, toRank := statusRank(from), statusRank(to)
	return fromRank >= 0 && toRank > fromRank
}
