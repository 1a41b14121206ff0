package answers

// Answer is a candidate's submission for one question of an interview.
// Score, Scored, and EvaluatorNotes are written later by the evaluation step.
type Answer struct {
	ID               int64
	InterviewID      int64
	QuestionID       int64
	AnswerText       string
	UploadedFilePath string
	Scored           bool
	Score            float64
	EvaluatorNotes   string
}
