package answers

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new answer and returns its assigned id.
func (r *PGRepo) Create(ctx context.Context, ans Answer) (int64, error) {
	const query = `
INSERT INTO interview_answers (interview_id, question_id, answer_text, uploaded_file_path, scored)
VALUES ($1, $2, $3, $4, FALSE)
RETURNING id`

	var text sql.NullString
	if ans.AnswerText != "" {
		text = sql.NullString{String: ans.AnswerText, Valid: true}
	}
	var filePath sql.NullString
	if ans.UploadedFilePath != "" {
		filePath = sql.NullString{String: ans.UploadedFilePath, Valid: true}
	}

	var id int64
	err := r.DB.QueryRowContext(ctx, query, ans.InterviewID, ans.QuestionID, text, filePath).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetByID fetches an answer by id.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Answer, error) {
	const query = `
SELECT id, interview_id, question_id, answer_text, uploaded_file_path, scored, score, evaluator_notes
FROM interview_answers
WHERE id = $1`

	ans, err := scanAnswer(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Answer{}, ErrNotFound
		}
		return Answer{}, err
	}
	return ans, nil
}

// ListByInterview returns all answers recorded for an interview, oldest first.
func (r *PGRepo) ListByInterview(ctx context.Context, interviewID int64) ([]Answer, error) {
	const query = `
SELECT id, interview_id, question_id, answer_text, uploaded_file_path, scored, score, evaluator_notes
FROM interview_answers
WHERE interview_id = $1
ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query, interviewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Answer
	for rows.Next() {
		ans, err := scanAnswer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ans)
	}
	return out, rows.Err()
}

// UpdateScore writes the evaluation outcome onto the answer row.
func (r *PGRepo) UpdateScore(ctx context.Context, id int64, score float64, notes string) error {
	const query = `
UPDATE interview_answers
SET score = $1, scored = TRUE, evaluator_notes = $2
WHERE id = $3`

	res, err := r.DB.ExecContext(ctx, query, score, notes, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnswer(row rowScanner) (Answer, error) {
	var ans Answer
	var text, filePath, notes sql.NullString
	var score sql.NullFloat64
	err := row.Scan(
		&ans.ID,
		&ans.InterviewID,
		&ans.QuestionID,
		&text,
		&filePath,
		&ans.Scored,
		&score,
		&notes,
	)
	if err != nil {
		return Answer{}, err
	}
	if text.Valid {
		ans.AnswerText = text.String
	}
	if filePath.Valid {
		ans.UploadedFilePath = filePath.String
	}
	if score.Valid {
		ans.Score = score.Float64
	}
	if notes.Valid {
		ans.EvaluatorNotes = notes.String
	}
	return ans, nil
}

var _ Repo = (*PGRepo)(nil)
