package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/yasu691/fragmenta/internal/application"
	"github.com/yasu691/fragmenta/internal/config"
	"github.com/yasu691/fragmenta/internal/core"
	"github.com/yasu691/fragmenta/internal/model"
	"github.com/yasu691/fragmenta/internal/remote"
	"github.com/yasu691/fragmenta/internal/security"
	"github.com/yasu691/fragmenta/internal/store"
	"github.com/yasu691/fragmenta/internal/tokenstore"
)

// app is everything a command needs, built once per invocation.
type app struct {
	cfg       *config.Config
	logger    *slog.Logger
	store     *store.Store
	remote    *remote.Client
	configSvc *core.ConfigService
}

type appKey struct{}

func withApp(ctx context.Context, a *app) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

func appFrom(cmd *cobra.Command) *app {
	if cmd.Context() == nil {
		return nil
	}

	a, _ := cmd.Context().Value(appKey{}).(*app)

	return a
}

func newApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	backend, err := store.OpenBackend(cfg.Store, cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("opening local store: %w", err)
	}

	secrets, err := tokenstore.New(cfg.TokenStore, application.KeyringService)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	rc, err := remote.NewClient(
		remote.WithBaseURL(cfg.APIURL),
		remote.WithLogger(logger),
	)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	st := store.New(backend, secrets)

	if err := st.Ping(); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("local store not usable: %w", err)
	}

	logger.Debug("local store opened",
		slog.String("backend", string(cfg.Store)),
		slog.String("secrets", string(cfg.TokenStore)),
		slog.String("dir", cfg.DataDir),
	)

	return &app{
		cfg:       cfg,
		logger:    logger,
		store:     st,
		remote:    rc,
		configSvc: core.NewConfigService(st, rc, logger),
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

// requireConfig binds the remote client to the stored configuration.
func (a *app) requireConfig() (*model.RepositoryConfig, error) {
	cfg, err := a.configSvc.Load()
	if err != nil {
		return nil, err
	}

	if cfg == nil {
		return nil, core.ErrNotConfigured
	}

	return cfg, nil
}

// submitter builds a Submitter bound to the stored configuration.
// A missing configuration is reported by Submit itself.
func (a *app) submitter(scan bool) (*core.Submitter, error) {
	if _, err := a.configSvc.Load(); err != nil {
		return nil, err
	}

	opts := []core.SubmitterOption{core.WithLogger(a.logger)}

	if scan && a.cfg.ScanSecrets {
		scanner, err := security.NewScanner()
		if err != nil {
			return nil, err
		}

		if err := scanner.LoadIgnore(".gitleaksignore"); err != nil {
			a.logger.Warn("ignoring .gitleaksignore", slog.String("error", err.Error()))
		}

		opts = append(opts, core.WithScanner(scanner))
	}

	return core.NewSubmitter(a.remote, a.store, opts...), nil
}

// resolveTags checks that the selected names exist in the tag catalog.
func (a *app) resolveTags(primary, secondary string) (model.TagSelection, error) {
	sel := model.TagSelection{}

	for _, slot := range []struct {
		t    model.TagType
		name string
		dst  *string
	}{
		{model.TagTypePrimary, primary, &sel.Primary},
		{model.TagTypeSecondary, secondary, &sel.Secondary},
	} {
		if slot.name == "" {
			continue
		}

		tag, err := a.store.FindTag(slot.t, slot.name)
		if err != nil {
			return model.TagSelection{}, err
		}

		if tag == nil {
			return model.TagSelection{}, fmt.Errorf("%w: unknown %s tag %q (add it with: fragmenta tag add %q --type %s)",
				store.ErrTagNotFound, slot.t, slot.name, slot.name, slot.t)
		}

		*slot.dst = tag.Name
	}

	return sel, nil
}

var errAborted = errors.New("aborted")
