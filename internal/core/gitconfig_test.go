package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGitConfig(t *testing.T, body string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git", "config"), []byte(body), 0o644))

	return dir
}

func TestDetectRepository(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantOwner string
		wantRepo  string
	}{
		{name: "https", url: "https://github.com/alice/notes.git", wantOwner: "alice", wantRepo: "notes"},
		{name: "https without suffix", url: "https://github.com/alice/notes", wantOwner: "alice", wantRepo: "notes"},
		{name: "ssh", url: "git@github.com:alice/notes.git", wantOwner: "alice", wantRepo: "notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeGitConfig(t, `[core]
	repositoryformatversion = 0
	bare = false
[remote "upstream"]
	url = https://github.com/someone/else.git
	fetch = +refs/heads/*:refs/remotes/upstream/*
[remote "origin"]
	url = `+tt.url+`
	fetch = +refs/heads/*:refs/remotes/origin/*
[branch "main"]
	remote = origin
	merge = refs/heads/main
`)

			owner, repo, err := DetectRepository(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantRepo, repo)
		})
	}
}

func TestDetectRepository_Errors(t *testing.T) {
	t.Run("no git dir", func(t *testing.T) {
		_, _, err := DetectRepository(t.TempDir())
		require.ErrorIs(t, err, ErrNotGitHubRepository)
	})

	t.Run("no origin", func(t *testing.T) {
		dir := writeGitConfig(t, "[core]\n\tbare = false\n")

		_, _, err := DetectRepository(dir)
		require.ErrorIs(t, err, ErrNotGitHubRepository)
	})

	t.Run("not github", func(t *testing.T) {
		dir := writeGitConfig(t, "[remote \"origin\"]\n\turl = https://gitlab.com/alice/notes.git\n")

		_, _, err := DetectRepository(dir)
		require.ErrorIs(t, err, ErrNotGitHubRepository)
	})
}
