package event

import (
	"errors"
	"fmt"
)

var ErrAlreadyStarted = errors.New("listener already started")

// StreamError reports that the daemon event stream failed or ended.
type StreamError struct {
	cause error
}

func NewStreamError(cause error) *StreamError {
	return &StreamError{cause: cause}
}

func (e *StreamError) Error() string {
	if e.cause == nil {
		return "docker event stream closed"
	}
	return fmt.Sprintf("docker event stream failed: %v", e.cause)
}

func (e *StreamError) Unwrap() error {
	return e.cause
}
