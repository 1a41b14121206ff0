package interviews

import "errors"

var (
	ErrNotFound     = errors.New("interview not found")
	ErrInvalidInput = errors.New("candidate_id and skill required")
)
