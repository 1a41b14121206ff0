package candidates

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new candidate and returns its assigned id.
func (r *PGRepo) Create(ctx context.Context, cand Candidate) (int64, error) {
	const query = `
INSERT INTO candidates (name, email, resume_path, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id`

	var resumePath sql.NullString
	if cand.ResumePath != "" {
		resumePath = sql.NullString{String: cand.ResumePath, Valid: true}
	}

	var id int64
	err := r.DB.QueryRowContext(ctx, query, cand.Name, cand.Email, resumePath, cand.CreatedAt).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetByID fetches a candidate by id.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Candidate, error) {
	const query = `
SELECT id, name, email, resume_path, created_at
FROM candidates
WHERE id = $1`

	var cand Candidate
	var resumePath sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&cand.ID,
		&cand.Name,
		&cand.Email,
		&resumePath,
		&cand.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Candidate{}, ErrNotFound
		}
		return Candidate{}, err
	}
	if resumePath.Valid {
		cand.ResumePath = resumePath.String
	}
	return cand, nil
}

var _ Repo = (*PGRepo)(nil)
