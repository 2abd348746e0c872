package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yasu691/fragmenta/internal/model"
)

type fakeConfigRemote struct {
	valid bool
	bound *model.RepositoryConfig
}

func (f *fakeConfigRemote) Initialize(cfg *model.RepositoryConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	f.bound = cfg

	return nil
}

func (f *fakeConfigRemote) ValidateConfig(context.Context, *model.RepositoryConfig) bool {
	return f.valid
}

func (f *fakeConfigRemote) Reset() { f.bound = nil }

func TestConfigService_Save(t *testing.T) {
	st := newStore(t)
	r := &fakeConfigRemote{valid: true}
	svc := NewConfigService(st, r, nil)

	cfg := &model.RepositoryConfig{Token: "t", Owner: "alice", Repo: "notes"}
	require.NoError(t, svc.Save(context.Background(), cfg))

	assert.Equal(t, model.DefaultBranch, cfg.Branch)
	require.NotNil(t, r.bound)
	assert.Equal(t, "alice/notes", r.bound.FullName())

	stored, err := st.GetRepositoryConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg, stored)
}

func TestConfigService_SaveUnreachable(t *testing.T) {
	st := newStore(t)
	r := &fakeConfigRemote{valid: false}
	svc := NewConfigService(st, r, nil)

	err := svc.Save(context.Background(), &model.RepositoryConfig{Token: "t", Owner: "alice", Repo: "notes", Branch: "main"})
	require.ErrorIs(t, err, ErrRepositoryUnreachable)

	ok, err := st.HasRepositoryConfig()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, r.bound)
}

func TestConfigService_SaveIncomplete(t *testing.T) {
	svc := NewConfigService(newStore(t), &fakeConfigRemote{valid: true}, nil)

	err := svc.Save(context.Background(), &model.RepositoryConfig{Token: "t"})
	require.ErrorIs(t, err, model.ErrIncompleteConfig)
}

func TestConfigService_LoadAndClear(t *testing.T) {
	st := newStore(t)
	r := &fakeConfigRemote{valid: true}
	svc := NewConfigService(st, r, nil)

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Nil(t, cfg)
	assert.Nil(t, r.bound)

	require.NoError(t, st.SaveRepositoryConfig(&model.RepositoryConfig{Token: "t", Owner: "o", Repo: "r", Branch: "b"}))

	cfg, err = svc.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "o/r", r.bound.FullName())

	require.NoError(t, svc.Clear())
	assert.Nil(t, r.bound)

	cfg, err = svc.Load()
	require.NoError(t, err)
	assert.Nil(t, cfg)
}
