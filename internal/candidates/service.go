package candidates

import (
	"context"
	"io"
	"strings"
	"time"

	"interview-backend/internal/shared/storage/object"
)

// Service contains business logic for candidates.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
}

// Create validates input, stores the optional resume file, and records the candidate.
func (s *Service) Create(ctx context.Context, name, email, resumeName string, resume io.Reader) (Candidate, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return Candidate{}, ErrInvalidInput
	}

	var resumePath string
	if resume != nil && resumeName != "" {
		key, _, _, err := s.Store.Save(ctx, resumeName, resume)
		if err != nil {
			return Candidate{}, err
		}
		resumePath = key
	}

	cand := Candidate{
		Name:       name,
		Email:      email,
		ResumePath: resumePath,
		CreatedAt:  time.Now().UTC(),
	}

	id, err := s.Repo.Create(ctx, cand)
	if err != nil {
		return Candidate{}, err
	}
	cand.ID = id
	return cand, nil
}

// Get returns a candidate by id.
func (s *Service) Get(ctx context.Context, id int64) (Candidate, error) {
	return s.Repo.GetByID(ctx, id)
}
