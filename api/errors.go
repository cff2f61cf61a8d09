package api

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the remote service has no entity for the
	// requested id. Callers distinguish it from transport failures so a
	// missing bet renders as "not found" rather than a generic error.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized is returned when a request still fails with 401 after
	// the single credential refresh attempt.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUpgradeRequired is returned on 403, which the backend uses for
	// plan-limit rejections (e.g. group cap on the free tier).
	ErrUpgradeRequired = errors.New("upgrade required")
)

// APIError carries the status code and message of a non-2xx response
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}
