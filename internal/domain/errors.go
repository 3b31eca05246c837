package domain

import "errors"

// Categorized upstream failures. Adapters wrap these so the interaction layer
// can pick one user-facing message per category with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrRateLimited  = errors.New("rate limited")
	ErrUnavailable  = errors.New("upstream unavailable")
)
