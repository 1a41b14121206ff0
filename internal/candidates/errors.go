package candidates

import "errors"

var (
	ErrNotFound     = errors.New("candidate not found")
	ErrInvalidInput = errors.New("name and email required")
)
