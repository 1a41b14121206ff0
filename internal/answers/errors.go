package answers

import "errors"

var (
	ErrNotFound     = errors.New("answer not found")
	ErrInvalidInput = errors.New("interview_id and question_id required")
)
