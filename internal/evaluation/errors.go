package evaluation

import "errors"

var (
	ErrInterviewNotFound = errors.New("interview not found")
	ErrResultNotFound    = errors.New("result not found")
	ErrNoAnswers         = errors.New("no answers submitted for this interview")
)
