// Package provider models a remote fetch as a value a view can render:
// Loading, Error with a user-facing message, or Success with a payload.
package provider

import (
	"context"
	"fmt"
)

type Status int

const (
	// StatusIdle means nothing has been requested yet.
	StatusIdle Status = iota
	StatusLoading
	StatusError
	StatusSuccess
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusSuccess:
		return "success"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// State is one snapshot of a fetch. Data is only meaningful on success;
// Message is the generic text shown in place of content on error, and Err
// keeps the cause for logging.
type State[T any] struct {
	Status  Status `json:"status"`
	Locator string `json:"locator,omitempty"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"error,omitempty"`
	Err     error  `json:"-"`
}

func (s State[T]) Loading() bool { return s.Status == StatusLoading }
func (s State[T]) Failed() bool  { return s.Status == StatusError }
func (s State[T]) Ok() bool      { return s.Status == StatusSuccess }

// Fetch runs fn once and folds the outcome into a State. Any error becomes
// StatusError carrying message.
func Fetch[T any](ctx context.Context, message string, fn func(ctx context.Context) (T, error)) State[T] {
	data, err := fn(ctx)
	if err != nil {
		return State[T]{Status: StatusError, Message: message, Err: err}
	}
	return State[T]{Status: StatusSuccess, Data: data}
}
