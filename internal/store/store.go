package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/yasu691/fragmenta/internal/model"
	"github.com/yasu691/fragmenta/internal/tokenstore"
)

// Logical keys, one per entity.
const (
	KeyToken    = "github_token"
	KeyConfig   = "github_config"
	KeyDraft    = "draft_content"
	KeyHistory  = "submission_history"
	KeyTags     = "tag_catalog"
	KeySettings = "app_settings"
)

// Store persists configuration, draft, history, tags and settings.
type Store struct {
	general Backend
	secrets tokenstore.Store
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a Store over a general-tier backend and a secret-tier store.
func New(general Backend, secrets tokenstore.Store, opts ...Option) *Store {
	s := &Store{
		general: general,
		secrets: secrets,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Ping checks the general tier.
func (s *Store) Ping() error {
	return s.general.Ping()
}

// Close closes the general tier.
func (s *Store) Close() error {
	return s.general.Close()
}

// ========== Repository configuration ==========

// SaveToken stores the credential in the secret tier.
func (s *Store) SaveToken(token string) error {
	if err := s.secrets.Set(KeyToken, token); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}

	return nil
}

// GetToken returns the credential, or "" if none is stored.
func (s *Store) GetToken() (string, error) {
	token, ok, err := s.secrets.Get(KeyToken)
	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}

	if !ok {
		return "", nil
	}

	return token, nil
}

// SaveRepositoryConfig writes the token to the secret tier and the other
// fields to the general tier. The config must be complete.
func (s *Store) SaveRepositoryConfig(cfg *model.RepositoryConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := s.SaveToken(cfg.Token); err != nil {
		return err
	}

	return s.putJSON(KeyConfig, cfg)
}

// GetRepositoryConfig returns the stored configuration with its token, or
// nil if either half is missing.
func (s *Store) GetRepositoryConfig() (*model.RepositoryConfig, error) {
	token, err := s.GetToken()
	if err != nil {
		return nil, err
	}

	var cfg model.RepositoryConfig

	found, err := s.getJSON(KeyConfig, &cfg)
	if err != nil {
		return nil, err
	}

	if token == "" || !found {
		return nil, nil
	}

	cfg.Token = token

	return &cfg, nil
}

// GetRepositorySettings returns the non-secret configuration even when the
// token is gone (e.g. a session-scoped token store after a restart).
func (s *Store) GetRepositorySettings() (*model.RepositoryConfig, error) {
	var cfg model.RepositoryConfig

	found, err := s.getJSON(KeyConfig, &cfg)
	if err != nil || !found {
		return nil, err
	}

	return &cfg, nil
}

// HasRepositoryConfig reports whether a complete configuration is stored.
func (s *Store) HasRepositoryConfig() (bool, error) {
	cfg, err := s.GetRepositoryConfig()
	if err != nil {
		return false, err
	}

	return cfg != nil, nil
}

// ClearRepositoryConfig removes the token and the configuration.
func (s *Store) ClearRepositoryConfig() error {
	if err := s.secrets.Clear(KeyToken); err != nil {
		return fmt.Errorf("clearing token: %w", err)
	}

	return s.delete(KeyConfig)
}

// ========== Draft ==========

// SaveDraft overwrites the draft slot.
func (s *Store) SaveDraft(content string) (*model.Draft, error) {
	draft := &model.Draft{
		Content: content,
		SavedAt: s.now(),
	}

	if err := s.putJSON(KeyDraft, draft); err != nil {
		return nil, err
	}

	return draft, nil
}

// GetDraft returns the draft, or nil if there is none.
func (s *Store) GetDraft() (*model.Draft, error) {
	var draft model.Draft

	found, err := s.getJSON(KeyDraft, &draft)
	if err != nil || !found {
		return nil, err
	}

	return &draft, nil
}

// ClearDraft empties the draft slot.
func (s *Store) ClearDraft() error {
	return s.delete(KeyDraft)
}

// ========== Settings ==========

// GetSettings returns the stored settings, or the defaults if none are stored.
func (s *Store) GetSettings() (model.AppSettings, error) {
	settings := model.DefaultSettings()

	if _, err := s.getJSON(KeySettings, &settings); err != nil {
		return model.AppSettings{}, err
	}

	return settings, nil
}

// SaveSettings validates and stores settings.
func (s *Store) SaveSettings(settings model.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	return s.putJSON(KeySettings, settings)
}

// ========== All data ==========

// ClearAll removes every key this store owns, in both tiers.
func (s *Store) ClearAll() error {
	var errs []error

	if err := s.secrets.Clear(KeyToken); err != nil {
		errs = append(errs, fmt.Errorf("clearing token: %w", err))
	}

	for _, key := range []string{KeyConfig, KeyDraft, KeyHistory, KeyTags, KeySettings} {
		if err := s.delete(key); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// ========== helpers ==========

// getJSON decodes the value at key into v. found is false for a missing key.
func (s *Store) getJSON(key string, v any) (found bool, err error) {
	data, err := s.general.Get(key)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", key, err)
	}

	if data == nil {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decoding %s: %w", key, err)
	}

	return true, nil
}

func (s *Store) putJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}

	if err := s.general.Put(key, data); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}

	return nil
}

func (s *Store) delete(key string) error {
	if err := s.general.Delete(key); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}

	return nil
}
