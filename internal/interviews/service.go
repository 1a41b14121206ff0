package interviews

import (
	"context"
	"errors"
	"strings"
	"time"

	"interview-backend/internal/answers"
	"interview-backend/internal/candidates"
	"interview-backend/internal/evaluation"
	"interview-backend/internal/questions"
)

// ResultSource reads stored evaluation results; evaluation stores satisfy it.
type ResultSource interface {
	GetResult(ctx context.Context, interviewID int64) (evaluation.Result, error)
}

// Service contains business logic for interviews.
type Service struct {
	Repo       Repo
	Candidates candidates.Repo
	Questions  questions.Repo
	Answers    answers.Repo
	Results    ResultSource
}

// Create validates input and records a new in_progress interview.
func (s *Service) Create(ctx context.Context, candidateID int64, skill string) (Interview, error) {
	skill = strings.TrimSpace(skill)
	if candidateID <= 0 || skill == "" {
		return Interview{}, ErrInvalidInput
	}

	iv := Interview{
		CandidateID: candidateID,
		Skill:       skill,
		Status:      StatusInProgress,
		StartedAt:   time.Now().UTC(),
	}
	id, err := s.Repo.Create(ctx, iv)
	if err != nil {
		return Interview{}, err
	}
	iv.ID = id
	return iv, nil
}

// QuestionsFor returns the question bank entries matching the interview's skill.
func (s *Service) QuestionsFor(ctx context.Context, interviewID int64) ([]questions.Question, error) {
	iv, err := s.Repo.GetByID(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	return s.Questions.ListBySkill(ctx, iv.Skill)
}

// Complete marks the interview completed with the current timestamp. The
// write commits before any evaluation is attempted, so a failed evaluation
// still leaves the interview completed.
func (s *Service) Complete(ctx context.Context, interviewID int64) (Interview, error) {
	return s.Repo.MarkCompleted(ctx, interviewID, time.Now().UTC())
}

// Dashboard joins the interview with its candidate, answers, and result.
type Dashboard struct {
	Interview Interview
	Candidate candidates.Candidate
	Answers   []answers.Answer
	Result    *evaluation.Result
}

// GetDashboard assembles the dashboard view for an interview.
func (s *Service) GetDashboard(ctx context.Context, interviewID int64) (Dashboard, error) {
	iv, err := s.Repo.GetByID(ctx, interviewID)
	if err != nil {
		return Dashboard{}, err
	}

	cand, err := s.Candidates.GetByID(ctx, iv.CandidateID)
	if err != nil {
		return Dashboard{}, err
	}

	answerRows, err := s.Answers.ListByInterview(ctx, interviewID)
	if err != nil {
		return Dashboard{}, err
	}

	dash := Dashboard{
		Interview: iv,
		Candidate: cand,
		Answers:   answerRows,
	}

	res, err := s.Results.GetResult(ctx, interviewID)
	switch {
	case err == nil:
		dash.Result = &res
	case errors.Is(err, evaluation.ErrResultNotFound):
		// Not evaluated yet; dashboard carries a null result.
	default:
		return Dashboard{}, err
	}

	return dash, nil
}
