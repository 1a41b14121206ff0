package evaluation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"interview-backend/internal/answers"
	"interview-backend/internal/questions"
	"interview-backend/internal/shared/metrics"
	"interview-backend/internal/shared/telemetry"
)

// Service computes and persists deterministic answer and interview scores.
type Service struct {
	Answers   answers.Repo
	Questions questions.Repo
	Store     Store
}

// EvaluateAnswer scores a single answer and writes the outcome onto its row.
// A missing question degrades to zero keyword credit rather than failing.
func (s *Service) EvaluateAnswer(ctx context.Context, answerID int64) (AnswerDetail, error) {
	ans, err := s.Answers.GetByID(ctx, answerID)
	if err != nil {
		return AnswerDetail{}, err
	}

	score, notes := ScoreAnswer(ans.AnswerText, s.keywordsFor(ctx, ans.QuestionID))

	if err := s.Answers.UpdateScore(ctx, ans.ID, score, notes); err != nil {
		return AnswerDetail{}, err
	}

	return AnswerDetail{
		AnswerID:   ans.ID,
		QuestionID: ans.QuestionID,
		Score:      score,
		Notes:      notes,
	}, nil
}

// EvaluateInterview scores every answer of an interview, upserts the result
// row, and marks the interview done. All writes commit as one unit.
func (s *Service) EvaluateInterview(ctx context.Context, interviewID int64) (Result, []AnswerDetail, error) {
	metrics.IncEvaluationStarted()
	start := time.Now()

	res, details, err := s.evaluateInterview(ctx, interviewID)
	metrics.ObserveEvaluationDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncEvaluationFailed()
		return Result{}, nil, err
	}
	metrics.IncEvaluationCompleted()

	telemetry.Info("evaluation.complete", map[string]any{
		"interview_id": interviewID,
		"total_score":  res.TotalScore,
		"verdict":      res.Verdict,
		"answers":      len(details),
	})
	return res, details, nil
}

func (s *Service) evaluateInterview(ctx context.Context, interviewID int64) (Result, []AnswerDetail, error) {
	exists, err := s.Store.InterviewExists(ctx, interviewID)
	if err != nil {
		return Result{}, nil, err
	}
	if !exists {
		return Result{}, nil, ErrInterviewNotFound
	}

	answerRows, err := s.Answers.ListByInterview(ctx, interviewID)
	if err != nil {
		return Result{}, nil, err
	}
	if len(answerRows) == 0 {
		return Result{}, nil, ErrNoAnswers
	}

	details := make([]AnswerDetail, 0, len(answerRows))
	total := 0.0
	for _, ans := range answerRows {
		score, notes := ScoreAnswer(ans.AnswerText, s.keywordsFor(ctx, ans.QuestionID))
		total += score
		details = append(details, AnswerDetail{
			AnswerID:   ans.ID,
			QuestionID: ans.QuestionID,
			Score:      score,
			Notes:      notes,
		})
	}

	avg := round2(total / float64(len(answerRows)))

	blob, err := json.Marshal(details)
	if err != nil {
		return Result{}, nil, err
	}

	res := Result{
		InterviewID: interviewID,
		TotalScore:  avg,
		Verdict:     VerdictFor(avg),
		Details:     string(blob),
		CreatedAt:   time.Now().UTC(),
	}

	res, err = s.Store.Finish(ctx, interviewID, details, res)
	if err != nil {
		return Result{}, nil, err
	}
	return res, details, nil
}

// GetResult returns the stored result with its detail blob decoded. A blob
// that fails to decode is surfaced as raw text rather than an error.
func (s *Service) GetResult(ctx context.Context, interviewID int64) (Result, any, error) {
	res, err := s.Store.GetResult(ctx, interviewID)
	if err != nil {
		return Result{}, nil, err
	}
	return res, DecodeDetails(res.Details), nil
}

// DecodeDetails parses a detail blob, falling back to the raw text when the
// stored value is not valid JSON.
func DecodeDetails(blob string) any {
	var details []AnswerDetail
	if err := json.Unmarshal([]byte(blob), &details); err != nil {
		return blob
	}
	return details
}

func (s *Service) keywordsFor(ctx context.Context, questionID int64) string {
	q, err := s.Questions.GetByID(ctx, questionID)
	if err != nil {
		if !errors.Is(err, questions.ErrNotFound) {
			telemetry.Error("evaluation.question_lookup_failed", map[string]any{
				"question_id": questionID,
				"error":       err.Error(),
			})
		}
		return ""
	}
	return q.ExpectedKeywords
}
