package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// ErrNotGitHubRepository is returned when a directory has no GitHub origin
var ErrNotGitHubRepository = errors.New("not a GitHub checkout")

type remoteSection struct {
	URL   string `ini:"url"`
	Fetch string `ini:"fetch"`
}

// readRemotes maps remote names to their sections in a .git/config file.
func readRemotes(path string) (map[string]remoteSection, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}

	remotes := make(map[string]remoteSection)

	for _, sec := range cfg.Sections() {
		name, ok := strings.CutPrefix(sec.Name(), `remote "`)
		if !ok || !sec.HasKey("url") {
			continue
		}

		var r remoteSection
		if err := sec.MapTo(&r); err != nil {
			return nil, err
		}

		remotes[strings.TrimSuffix(name, `"`)] = r
	}

	return remotes, nil
}

// DetectRepository reads owner and repository from the origin remote of
// the git checkout at dir.
func DetectRepository(dir string) (owner, repo string, err error) {
	gitDir := filepath.Join(dir, ".git")

	info, err := os.Stat(gitDir)
	if err != nil || !info.IsDir() {
		return "", "", fmt.Errorf("%w: no .git directory in %s", ErrNotGitHubRepository, dir)
	}

	remotes, err := readRemotes(filepath.Join(gitDir, "config"))
	if err != nil {
		return "", "", fmt.Errorf("failed to read git config: %w", err)
	}

	origin, ok := remotes["origin"]
	if !ok || origin.URL == "" {
		return "", "", fmt.Errorf("%w: no origin remote", ErrNotGitHubRepository)
	}

	return parseGitHubURL(origin.URL)
}

// parseGitHubURL extracts owner and repository from an https or scp-style URL.
func parseGitHubURL(repoURL string) (owner, repo string, err error) {
	u := strings.TrimSuffix(strings.TrimSpace(repoURL), ".git")
	u = strings.Replace(u, "git@github.com:", "https://github.com/", 1)

	_, path, ok := strings.Cut(u, "github.com/")
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrNotGitHubRepository, repoURL)
	}

	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: missing owner/repo in %s", ErrNotGitHubRepository, repoURL)
	}

	return parts[0], parts[1], nil
}
