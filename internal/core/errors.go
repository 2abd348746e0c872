package core

import (
	"errors"
	"fmt"

	"github.com/yasu691/fragmenta/internal/security"
)

var (
	// ErrNotConfigured is returned when no repository configuration is bound
	ErrNotConfigured = errors.New("GitHub repository is not configured (run: fragmenta config set)")

	// ErrEmptyInput is returned when the note has no non-whitespace content
	ErrEmptyInput = errors.New("note is empty")

	// ErrRepositoryUnreachable is returned when the token cannot read the repository
	ErrRepositoryUnreachable = errors.New("repository is not reachable with this token")
)

// SubmitError is a terminal remote failure, after Attempts tries
type SubmitError struct {
	Attempts int
	Err      error
}

func (e *SubmitError) Error() string {
	if e.Attempts == 1 {
		return fmt.Sprintf("submit failed: %v", e.Err)
	}

	return fmt.Sprintf("submit failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *SubmitError) Unwrap() error {
	return e.Err
}

// LeakError indicates the note looks like it contains a secret
type LeakError struct {
	Findings []security.Finding
}

func (e *LeakError) Error() string {
	return fmt.Sprintf("note contains %d potential secret(s); not submitted", len(e.Findings))
}
