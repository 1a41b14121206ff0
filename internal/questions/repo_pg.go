package questions

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a question and returns its assigned id.
func (r *PGRepo) Create(ctx context.Context, q Question) (int64, error) {
	const query = `
INSERT INTO interview_questions (skill, text, expected_keywords)
VALUES ($1, $2, $3)
RETURNING id`

	var keywords sql.NullString
	if q.ExpectedKeywords != "" {
		keywords = sql.NullString{String: q.ExpectedKeywords, Valid: true}
	}

	var id int64
	if err := r.DB.QueryRowContext(ctx, query, q.Skill, q.Text, keywords).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// GetByID fetches a question by id.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Question, error) {
	const query = `
SELECT id, skill, text, expected_keywords
FROM interview_questions
WHERE id = $1`

	var q Question
	var keywords sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&q.ID, &q.Skill, &q.Text, &keywords)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Question{}, ErrNotFound
		}
		return Question{}, err
	}
	if keywords.Valid {
		q.ExpectedKeywords = keywords.String
	}
	return q, nil
}

// ListBySkill returns all questions tagged with the given skill.
func (r *PGRepo) ListBySkill(ctx context.Context, skill string) ([]Question, error) {
	const query = `
SELECT id, skill, text, expected_keywords
FROM interview_questions
WHERE skill = $1
ORDER BY id`

	rows, err := r.DB.QueryContext(ctx, query, skill)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Question
	for rows.Next() {
		var q Question
		var keywords sql.NullString
		if err := rows.Scan(&q.ID, &q.Skill, &q.Text, &keywords); err != nil {
			return nil, err
		}
		if keywords.Valid {
			q.ExpectedKeywords = keywords.String
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// Count returns the number of questions in the bank.
func (r *PGRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM interview_questions`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

var _ Repo = (*PGRepo)(nil)
