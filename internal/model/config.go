package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrIncompleteConfig is returned when a credential is present but owner,
	// repository or branch is missing.
	ErrIncompleteConfig = errors.New("repository configuration is incomplete")

	// ErrInvalidSettings is returned when application settings are out of range
	ErrInvalidSettings = errors.New("invalid settings")
)

// RepositoryConfig describes where notes are committed.
//
// Token is the secret credential. It is never serialized together with the
// other fields; the store keeps it in the secret tier.
type RepositoryConfig struct {
	// Token is the GitHub personal access token (secret)
	Token string `json:"-"`

	// Owner is the user or organization that owns the repository
	Owner string `json:"owner"`

	// Repo is the repository name
	Repo string `json:"repo"`

	// FolderPath is the folder notes are written to; empty means repository root
	FolderPath string `json:"folder_path"`

	// Branch is the branch commits are made on
	Branch string `json:"branch"`
}

// DefaultBranch is used when no branch is given.
const DefaultBranch = "main"

// Validate checks that owner, repository and branch are set whenever a
// credential is present.
func (c *RepositoryConfig) Validate() error {
	if c == nil {
		return ErrIncompleteConfig
	}

	if c.Token == "" {
		return fmt.Errorf("%w: token is required", ErrIncompleteConfig)
	}

	var missing []string

	if strings.TrimSpace(c.Owner) == "" {
		missing = append(missing, "owner")
	}

	if strings.TrimSpace(c.Repo) == "" {
		missing = append(missing, "repo")
	}

	if strings.TrimSpace(c.Branch) == "" {
		missing = append(missing, "branch")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncompleteConfig, strings.Join(missing, ", "))
	}

	return nil
}

// FullName returns "owner/repo".
func (c *RepositoryConfig) FullName() string {
	return fmt.Sprintf("%s/%s", c.Owner, c.Repo)
}

// AppSettings holds user preferences for the submission pipeline
type AppSettings struct {
	// AutoSaveDraft enables debounced draft saving while composing
	AutoSaveDraft bool `json:"auto_save_draft"`

	// RetryAttempts is the total number of attempts for a retryable failure
	RetryAttempts int `json:"retry_attempts"`

	// RetryDelay is the fixed wait between attempts, in milliseconds
	RetryDelay int `json:"retry_delay"`
}

// DefaultSettings returns the settings used when none are persisted
func DefaultSettings() AppSettings {
	return AppSettings{
		AutoSaveDraft: true,
		RetryAttempts: 3,
		RetryDelay:    1000,
	}
}

// Validate rejects settings the retry loop cannot honor.
func (s AppSettings) Validate() error {
	if s.RetryAttempts < 1 {
		return fmt.Errorf("%w: retry attempts must be at least 1, got %d", ErrInvalidSettings, s.RetryAttempts)
	}

	if s.RetryDelay < 0 {
		return fmt.Errorf("%w: retry delay must not be negative, got %d", ErrInvalidSettings, s.RetryDelay)
	}

	return nil
}

// Delay returns RetryDelay as a duration.
func (s AppSettings) Delay() time.Duration {
	return time.Duration(s.RetryDelay) * time.Millisecond
}
