package tmdb

import "fmt"

// APIError covers statuses outside the categorized set in domain.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tmdb api status %d: %s", e.Status, e.Body)
}
