package evaluation

import (
	"context"
	"database/sql"
	"errors"
)

// PGStore implements Store using Postgres.
type PGStore struct {
	DB *sql.DB
}

// NewPGStore constructs a PGStore.
func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{DB: db}
}

// InterviewExists reports whether the interview row exists.
func (s *PGStore) InterviewExists(ctx context.Context, interviewID int64) (bool, error) {
	var one int
	err := s.DB.QueryRowContext(ctx, `SELECT 1 FROM interviews WHERE id = $1`, interviewID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Finish commits all writes of an interview evaluation in one transaction.
// The ON CONFLICT upsert keeps re-evaluation to a single result row even
// under concurrent triggers; the last commit wins.
func (s *PGStore) Finish(ctx context.Context, interviewID int64, details []AnswerDetail, res Result) (Result, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return Result{}, err
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	for _, d := range details {
		if _, err = tx.ExecContext(ctx, `
UPDATE interview_answers
SET score = $1, scored = TRUE, evaluator_notes = $2
WHERE id = $3`, d.Score, d.Notes, d.AnswerID); err != nil {
			return Result{}, err
		}
	}

	var id int64
	if err = tx.QueryRowContext(ctx, `
INSERT INTO interview_results (interview_id, total_score, verdict, details, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (interview_id) DO UPDATE
SET total_score = EXCLUDED.total_score,
    verdict     = EXCLUDED.verdict,
    details     = EXCLUDED.details,
    created_at  = EXCLUDED.created_at
RETURNING id`, interviewID, res.TotalScore, res.Verdict, res.Details, res.CreatedAt).Scan(&id); err != nil {
		return Result{}, err
	}

	if _, err = tx.ExecContext(ctx, `
UPDATE interviews
SET status = 'done'
WHERE id = $1 AND status <> 'done'`, interviewID); err != nil {
		return Result{}, err
	}

	if err = tx.Commit(); err != nil {
		return Result{}, err
	}
	committed = true

	res.ID = id
	res.InterviewID = interviewID
	return res, nil
}

// GetResult returns the stored result for an interview.
func (s *PGStore) GetResult(ctx context.Context, interviewID int64) (Result, error) {
	const query = `
SELECT id, interview_id, total_score, verdict, details, created_at
FROM interview_results
WHERE interview_id = $1`

	var res Result
	var details sql.NullString
	err := s.DB.QueryRowContext(ctx, query, interviewID).Scan(
		&res.ID,
		&res.InterviewID,
		&res.TotalScore,
		&res.Verdict,
		&details,
		&res.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Result{}, ErrResultNotFound
		}
		return Result{}, err
	}
	if details.Valid {
		res.Details = details.String
	}
	return res, nil
}

var _ Store = (*PGStore)(nil)
