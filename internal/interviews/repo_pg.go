package interviews

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new interview in the in_progress status.
func (r *PGRepo) Create(ctx context.Context, iv Interview) (int64, error) {
	const query = `
INSERT INTO interviews (candidate_id, skill, status, started_at)
VALUES ($1, $2, $3, $4)
RETURNING id`

	var id int64
	err := r.DB.QueryRowContext(ctx, query, iv.CandidateID, iv.Skill, StatusInProgress, iv.StartedAt).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetByID fetches an interview by id.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Interview, error) {
	const query = `
SELECT id, candidate_id, skill, status, started_at, completed_at
FROM interviews
WHERE id = $1`

	var iv Interview
	var completedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&iv.ID,
		&iv.CandidateID,
		&iv.Skill,
		&iv.Status,
		&iv.StartedAt,
		&completedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Interview{}, ErrNotFound
		}
		return Interview{}, err
	}
	if completedAt.Valid {
		iv.CompletedAt = &completedAt.Time
	}
	return iv, nil
}

// MarkCompleted moves an in_progress interview to completed. The conditional
// update keeps the status machine monotonic under concurrent calls.
func (r *PGRepo) MarkCompleted(ctx context.Context, id int64, at time.Time) (Interview, error) {
	const query = `
UPDATE interviews
SET status = $1, completed_at = $2
WHERE id = $3 AND status = $4`

	if _, err := r.DB.ExecContext(ctx, query, StatusCompleted, at, id, StatusInProgress); err != nil {
		return Interview{}, err
	}
	return r.GetByID(ctx, id)
}

var _ Repo = (*PGRepo)(nil)
