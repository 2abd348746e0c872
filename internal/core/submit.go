package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/yasu691/fragmenta/internal/frontmatter"
	"github.com/yasu691/fragmenta/internal/model"
	"github.com/yasu691/fragmenta/internal/remote"
	"github.com/yasu691/fragmenta/internal/security"
)

// Remote is the write side of the remote repository client.
type Remote interface {
	Configured() bool
	CreateFile(ctx context.Context, content string) (*remote.File, error)
}

// SubmitStore is the part of the local store a submission touches.
type SubmitStore interface {
	GetSettings() (model.AppSettings, error)
	AddHistory(entry model.HistoryEntry) (model.HistoryEntry, error)
	ClearDraft() error
}

// Scanner finds secrets in note content.
type Scanner interface {
	ScanContent(content string) []security.Finding
}

// Submitter commits notes: frontmatter, bounded retry, then history and draft bookkeeping.
//
// Submit must not be called concurrently.
type Submitter struct {
	remote  Remote
	store   SubmitStore
	scanner Scanner
	logger  *slog.Logger
	sleep   func(ctx context.Context, d time.Duration) error
}

// SubmitterOption configures a Submitter.
type SubmitterOption func(*Submitter)

// WithScanner rejects notes in which the scanner finds secrets.
func WithScanner(scanner Scanner) SubmitterOption {
	return func(s *Submitter) {
		s.scanner = scanner
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) SubmitterOption {
	return func(s *Submitter) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSleep replaces the wait between attempts.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) SubmitterOption {
	return func(s *Submitter) {
		s.sleep = sleep
	}
}

// NewSubmitter creates a Submitter.
func NewSubmitter(r Remote, st SubmitStore, opts ...SubmitterOption) *Submitter {
	s := &Submitter{
		remote: r,
		store:  st,
		logger: slog.Default(),
		sleep:  sleepContext,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Submit commits text with tags and records it in history.
//
// On failure the draft is left alone. If the commit succeeds but the local
// bookkeeping fails, the returned entry still carries the URL.
func (s *Submitter) Submit(ctx context.Context, text string, tags model.TagSelection) (model.HistoryEntry, error) {
	if s.remote == nil || !s.remote.Configured() {
		return model.HistoryEntry{}, ErrNotConfigured
	}

	if strings.TrimSpace(text) == "" {
		return model.HistoryEntry{}, ErrEmptyInput
	}

	if s.scanner != nil {
		if findings := s.scanner.ScanContent(text); len(findings) > 0 {
			return model.HistoryEntry{}, &LeakError{Findings: findings}
		}
	}

	settings, err := s.store.GetSettings()
	if err != nil {
		return model.HistoryEntry{}, fmt.Errorf("loading settings: %w", err)
	}

	file, err := s.createWithRetry(ctx, frontmatter.Encode(text, tags), settings)
	if err != nil {
		return model.HistoryEntry{}, err
	}

	entry := model.HistoryEntry{
		FileName: file.Name,
		Content:  text,
		URL:      file.URL,
	}

	if !tags.IsEmpty() {
		snapshot := tags
		entry.Tags = &snapshot
	}

	recorded, err := s.store.AddHistory(entry)
	if err != nil {
		return entry, fmt.Errorf("note committed to %s but not recorded in history: %w", file.Path, err)
	}

	if err := s.store.ClearDraft(); err != nil {
		return recorded, fmt.Errorf("note committed to %s but draft not cleared: %w", file.Path, err)
	}

	s.logger.Info("note submitted",
		slog.String("file", file.Path),
		slog.String("id", recorded.ID),
	)

	return recorded, nil
}

// createWithRetry calls CreateFile up to settings.RetryAttempts times,
// waiting settings.RetryDelay between attempts. Only retryable remote
// errors are retried.
func (s *Submitter) createWithRetry(ctx context.Context, content string, settings model.AppSettings) (*remote.File, error) {
	attempts := max(settings.RetryAttempts, 1)
	delay := settings.Delay()

	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		file, err := s.remote.CreateFile(ctx, content)
		if err == nil {
			return file, nil
		}

		lastErr = err

		if !remote.IsRetryable(err) || attempt == attempts {
			return nil, &SubmitError{Attempts: attempt, Err: err}
		}

		s.logger.Warn("remote write failed, retrying",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", attempts),
			slog.Duration("delay", delay),
			slog.String("error", err.Error()),
		)

		if err := s.sleep(ctx, delay); err != nil {
			return nil, &SubmitError{Attempts: attempt, Err: err}
		}
	}

	return nil, &SubmitError{Attempts: attempts, Err: lastErr}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
