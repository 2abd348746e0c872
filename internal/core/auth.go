package core

import (
	"errors"
	"os"

	"github.com/cli/go-gh/v2/pkg/auth"
)

// TokenSource indicates where the token was found
type TokenSource string

const (
	TokenSourceFlag      TokenSource = "flag"
	TokenSourceEnvGitHub TokenSource = "GITHUB_TOKEN"
	TokenSourceEnvGH     TokenSource = "GH_TOKEN"
	TokenSourceGHCLI     TokenSource = "gh-cli"
	TokenSourceNone      TokenSource = "none"
)

// ErrTokenNotFound is returned when no token source yields a token
var ErrTokenNotFound = errors.New(`GitHub token required

Provide a token via one of:
  * --token flag
  * GITHUB_TOKEN or GH_TOKEN env var
  * gh auth login             (auto-detected from gh CLI)
  * fragmenta config login    (device flow)

Create a token with "repo" scope at: https://github.com/settings/tokens`)

// ResolveToken finds a GitHub token for host.
// Priority order:
//  1. flagToken (explicit --token flag)
//  2. GITHUB_TOKEN environment variable
//  3. GH_TOKEN environment variable
//  4. gh CLI auth for the host
func ResolveToken(flagToken, host string) (token string, source TokenSource, err error) {
	if flagToken != "" {
		return flagToken, TokenSourceFlag, nil
	}

	if token = os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, TokenSourceEnvGitHub, nil
	}

	if token = os.Getenv("GH_TOKEN"); token != "" {
		return token, TokenSourceEnvGH, nil
	}

	if host == "" {
		host = "github.com"
	}

	if token, _ = auth.TokenForHost(host); token != "" {
		return token, TokenSourceGHCLI, nil
	}

	return "", TokenSourceNone, ErrTokenNotFound
}
