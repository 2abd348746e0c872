package remote

import (
	"errors"
	"fmt"

	"github.com/google/go-github/v82/github"
)

// ErrNotInitialized is returned when an operation runs before Initialize.
var ErrNotInitialized = errors.New("remote client is not initialized")

// Error is a failed remote operation.
type Error struct {
	// Message is a human-readable description
	Message string

	// Code is the HTTP status code, or 0 if no response was received
	Code int

	// Retry reports whether the failure is server-side and worth retrying
	Retry bool

	// Err is the underlying transport or API error
	Err error
}

func (e *Error) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Code)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether err is a remote failure worth retrying.
func IsRetryable(err error) bool {
	var remoteErr *Error
	if errors.As(err, &remoteErr) {
		return remoteErr.Retry
	}

	return false
}

// newError classifies a go-github failure. The status comes from the API
// error when there is one, otherwise from the raw response.
func newError(fallback string, resp *github.Response, err error) *Error {
	e := &Error{
		Message: fallback,
		Err:     err,
	}

	var apiErr *github.ErrorResponse

	switch {
	case errors.As(err, &apiErr) && apiErr.Response != nil:
		e.Code = apiErr.Response.StatusCode
		if apiErr.Message != "" {
			e.Message = fmt.Sprintf("%s: %s", fallback, apiErr.Message)
		}
	case resp != nil && resp.Response != nil:
		e.Code = resp.StatusCode
		e.Message = fmt.Sprintf("%s: %v", fallback, err)
	default:
		e.Message = fmt.Sprintf("%s: %v", fallback, err)
	}

	e.Retry = e.Code >= 500

	return e
}
