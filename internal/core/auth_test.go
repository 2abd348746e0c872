package core

import (
	"errors"
	"testing"
)

func TestResolveToken_FlagPriority(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "env-token")

	token, source, err := ResolveToken("test-flag-token", "")
	if err != nil {
		t.Fatalf("ResolveToken() error = %v", err)
	}

	if token != "test-flag-token" {
		t.Errorf("token = %q, want %q", token, "test-flag-token")
	}

	if source != TokenSourceFlag {
		t.Errorf("source = %v, want %v", source, TokenSourceFlag)
	}
}

func TestResolveToken_Env(t *testing.T) {
	tests := []struct {
		name       string
		github     string
		gh         string
		wantToken  string
		wantSource TokenSource
	}{
		{name: "GITHUB_TOKEN", github: "a", gh: "", wantToken: "a", wantSource: TokenSourceEnvGitHub},
		{name: "GH_TOKEN", github: "", gh: "b", wantToken: "b", wantSource: TokenSourceEnvGH},
		{name: "GITHUB_TOKEN wins", github: "a", gh: "b", wantToken: "a", wantSource: TokenSourceEnvGitHub},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GITHUB_TOKEN", tt.github)
			t.Setenv("GH_TOKEN", tt.gh)

			token, source, err := ResolveToken("", "")
			if err != nil {
				t.Fatalf("ResolveToken() error = %v", err)
			}

			if token != tt.wantToken {
				t.Errorf("token = %q, want %q", token, tt.wantToken)
			}

			if source != tt.wantSource {
				t.Errorf("source = %v, want %v", source, tt.wantSource)
			}
		})
	}
}

func TestResolveToken_None(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GH_TOKEN", "")
	t.Setenv("GH_ENTERPRISE_TOKEN", "")
	t.Setenv("GITHUB_ENTERPRISE_TOKEN", "")
	t.Setenv("GH_CONFIG_DIR", t.TempDir())
	t.Setenv("PATH", "")

	_, source, err := ResolveToken("", "github.com")
	if !errors.Is(err, ErrTokenNotFound) {
		t.Fatalf("ResolveToken() error = %v, want ErrTokenNotFound", err)
	}

	if source != TokenSourceNone {
		t.Errorf("source = %v, want %v", source, TokenSourceNone)
	}
}
