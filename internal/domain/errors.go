package domain

import (
	"errors"
	"fmt"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrMalformedReading = errors.New("malformed weather reading")
	ErrEmptyCity        = errors.New("city is required")
)

// UpstreamError is a non-2xx answer from a remote service.
type UpstreamError struct {
	Service    string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s responded with status %d: %s", e.Service, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s responded with status %d", e.Service, e.StatusCode)
}
