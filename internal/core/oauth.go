package core

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cli/oauth"
	"github.com/google/go-github/v82/github"
)

// DefaultScopes lets the token create files in private repositories.
var DefaultScopes = []string{"repo"}

// ErrOAuthClientID is returned when no OAuth App client ID is configured
var ErrOAuthClientID = errors.New("OAuth client ID is not set (FRAGMENTA_OAUTH_CLIENT_ID)")

// OAuthResult contains the result of an OAuth flow
type OAuthResult struct {
	Token    string
	Username string
	Scopes   []string
}

// OAuthFlow handles the OAuth device flow
type OAuthFlow struct {
	host         string
	clientID     string
	scopes       []string
	onDeviceCode func(code, verificationURL string)
}

// NewOAuthFlow creates a new OAuth flow
func NewOAuthFlow(host, clientID string, scopes []string) *OAuthFlow {
	if host == "" {
		host = "github.com"
	}

	if len(scopes) == 0 {
		scopes = DefaultScopes
	}

	return &OAuthFlow{
		host:     host,
		clientID: clientID,
		scopes:   scopes,
	}
}

// OnDeviceCode sets the callback for when a device code is received
func (f *OAuthFlow) OnDeviceCode(callback func(code, verificationURL string)) {
	f.onDeviceCode = callback
}

// Run executes the OAuth device flow and returns the result
func (f *OAuthFlow) Run(ctx context.Context) (*OAuthResult, error) {
	if f.clientID == "" {
		return nil, ErrOAuthClientID
	}

	host, err := oauth.NewGitHubHost("https://" + f.host)
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub host: %w", err)
	}

	flow := &oauth.Flow{
		Host:     host,
		ClientID: f.clientID,
		Scopes:   f.scopes,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	if f.onDeviceCode != nil {
		flow.DisplayCode = func(code, verificationURL string) error {
			f.onDeviceCode(code, verificationURL)

			return nil
		}
	}

	accessToken, err := flow.DeviceFlow()
	if err != nil {
		return nil, fmt.Errorf("OAuth flow failed: %w", err)
	}

	username, err := f.getUsername(ctx, accessToken.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to get username: %w", err)
	}

	return &OAuthResult{
		Token:    accessToken.Token,
		Username: username,
		Scopes:   f.scopes,
	}, nil
}

// getUsername fetches the authenticated user's username
func (f *OAuthFlow) getUsername(ctx context.Context, token string) (string, error) {
	client := github.NewClient(nil).WithAuthToken(token)

	if f.host != "github.com" {
		baseURL := fmt.Sprintf("https://%s/api/v3/", f.host)
		uploadURL := fmt.Sprintf("https://%s/api/uploads/", f.host)

		var err error

		client, err = client.WithEnterpriseURLs(baseURL, uploadURL)
		if err != nil {
			return "", fmt.Errorf("failed to configure enterprise client: %w", err)
		}
	}

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	return user.GetLogin(), nil
}
