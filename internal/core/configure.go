package core

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yasu691/fragmenta/internal/model"
)

// ConfigStore persists the repository configuration.
type ConfigStore interface {
	SaveRepositoryConfig(cfg *model.RepositoryConfig) error
	GetRepositoryConfig() (*model.RepositoryConfig, error)
	ClearRepositoryConfig() error
}

// ConfigRemote is the configuration side of the remote repository client.
type ConfigRemote interface {
	Initialize(cfg *model.RepositoryConfig) error
	ValidateConfig(ctx context.Context, cfg *model.RepositoryConfig) bool
	Reset()
}

// ConfigService keeps the stored configuration and the bound remote client in step.
type ConfigService struct {
	store  ConfigStore
	remote ConfigRemote
	logger *slog.Logger
}

// NewConfigService creates a ConfigService.
func NewConfigService(st ConfigStore, r ConfigRemote, logger *slog.Logger) *ConfigService {
	if logger == nil {
		logger = slog.Default()
	}

	return &ConfigService{store: st, remote: r, logger: logger}
}

// Save validates cfg against GitHub, persists it and binds the client to it.
// Nothing is written if validation fails.
func (s *ConfigService) Save(ctx context.Context, cfg *model.RepositoryConfig) error {
	if cfg.Branch == "" {
		cfg.Branch = model.DefaultBranch
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if !s.remote.ValidateConfig(ctx, cfg) {
		return fmt.Errorf("%w: %s", ErrRepositoryUnreachable, cfg.FullName())
	}

	if err := s.store.SaveRepositoryConfig(cfg); err != nil {
		return fmt.Errorf("saving configuration: %w", err)
	}

	if err := s.remote.Initialize(cfg); err != nil {
		return err
	}

	s.logger.Info("repository configured",
		slog.String("repo", cfg.FullName()),
		slog.String("branch", cfg.Branch),
		slog.String("folder", cfg.FolderPath),
	)

	return nil
}

// Load binds the client to the stored configuration. It returns nil, nil
// when nothing (or only half of the configuration) is stored.
func (s *ConfigService) Load() (*model.RepositoryConfig, error) {
	cfg, err := s.store.GetRepositoryConfig()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	if cfg == nil {
		return nil, nil
	}

	if err := s.remote.Initialize(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Clear removes the stored configuration and unbinds the client.
func (s *ConfigService) Clear() error {
	if err := s.store.ClearRepositoryConfig(); err != nil {
		return fmt.Errorf("clearing configuration: %w", err)
	}

	s.remote.Reset()

	return nil
}
