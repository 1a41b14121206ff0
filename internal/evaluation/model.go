package evaluation

import "time"

// Verdicts derived from the averaged interview score.
const (
	VerdictPass     = "pass"
	VerdictConsider = "consider"
	VerdictFail     = "fail"
)

// Result is the stored outcome of evaluating an interview; one row per
// interview, overwritten on re-evaluation.
type Result struct {
	ID          int64
	InterviewID int64
	TotalScore  float64
	Verdict     string
	Details     string
	CreatedAt   time.Time
}

// AnswerDetail is one answer's scoring outcome inside a result's detail blob.
type AnswerDetail struct {
	AnswerID   int64   `json:"answer_id"`
	QuestionID int64   `json:"question_id"`
	Score      float64 `json:"score"`
	Notes      string  `json:"notes"`
}

// VerdictFor maps an average score to a verdict.
func VerdictFor(avg float64) string {
	switch {
	case avg >= 75:
		return VerdictPass
	case avg >= 50:
		return VerdictConsider
	default:
		return VerdictFail
	}
}
