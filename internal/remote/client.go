package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v82/github"
	"github.com/yasu691/fragmenta/internal/model"
	"golang.org/x/oauth2"
)

// File describes a file created by CreateFile.
type File struct {
	// Name is the generated file name (YYYYMMDDhhmmss.md)
	Name string

	// Path is the repository path, folder included
	Path string

	// URL is the web URL of the file; empty if GitHub did not return one
	URL string
}

// Client is bound to one repository configuration at a time.
type Client struct {
	cfg *model.RepositoryConfig
	gh  *github.Client

	baseURL    *url.URL
	httpClient *http.Client
	now        func() time.Time
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client) error

// WithBaseURL points the client at a GitHub Enterprise or test API root.
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		if raw == "" {
			return nil
		}

		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}

		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid API URL %q: %w", raw, err)
		}

		c.baseURL = u

		return nil
	}
}

// WithHTTPClient sets the HTTP client the token transport wraps.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		c.httpClient = hc
		return nil
	}
}

// WithClock overrides the time source used for file names.
func WithClock(now func() time.Time) Option {
	return func(c *Client) error {
		c.now = now
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}

// NewClient creates an unbound client.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		now:    time.Now,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c, nil
}

// Initialize binds the client to cfg. Later operations act on that repository.
func (c *Client) Initialize(cfg *model.RepositoryConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	bound := *cfg
	c.cfg = &bound
	c.gh = c.newGitHubClient(cfg.Token)

	c.logger.Debug("remote client initialized",
		slog.String("repo", cfg.FullName()),
		slog.String("branch", cfg.Branch),
	)

	return nil
}

// Reset unbinds the client.
func (c *Client) Reset() {
	c.cfg = nil
	c.gh = nil
}

// Configured reports whether Initialize has succeeded.
func (c *Client) Configured() bool {
	return c.gh != nil
}

// CreateFile commits content as a new Markdown file named after the current
// time, under the configured folder and branch.
func (c *Client) CreateFile(ctx context.Context, content string) (*File, error) {
	if !c.Configured() {
		return nil, ErrNotInitialized
	}

	name := FileName(c.now())
	path := FilePath(c.cfg.FolderPath, name)

	opts := &github.RepositoryContentFileOptions{
		Message: github.Ptr("Add markdown file: " + name),
		Content: []byte(content),
		Branch:  github.Ptr(c.cfg.Branch),
	}

	res, resp, err := c.gh.Repositories.CreateFile(ctx, c.cfg.Owner, c.cfg.Repo, path, opts)
	if err != nil {
		return nil, newError("failed to create file on GitHub", resp, err)
	}

	file := &File{Name: name, Path: path}
	if res != nil && res.Content != nil {
		file.URL = res.Content.GetHTMLURL()
	}

	c.logger.Debug("file created",
		slog.String("path", path),
		slog.String("url", file.URL),
	)

	return file, nil
}

// ListFiles returns the names of the Markdown files directly inside the
// configured folder. A missing folder yields an empty list.
func (c *Client) ListFiles(ctx context.Context) ([]string, error) {
	if !c.Configured() {
		return nil, ErrNotInitialized
	}

	opts := &github.RepositoryContentGetOptions{Ref: c.cfg.Branch}

	_, entries, resp, err := c.gh.Repositories.GetContents(ctx, c.cfg.Owner, c.cfg.Repo, c.cfg.FolderPath, opts)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return []string{}, nil
		}

		return nil, newError("failed to list files from GitHub", resp, err)
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.GetType() == "file" && strings.HasSuffix(entry.GetName(), ".md") {
			names = append(names, entry.GetName())
		}
	}

	return names, nil
}

// ValidateConfig reports whether cfg's token can read cfg's repository.
// Any failure, including an incomplete config, yields false.
func (c *Client) ValidateConfig(ctx context.Context, cfg *model.RepositoryConfig) bool {
	if err := cfg.Validate(); err != nil {
		return false
	}

	gh := c.newGitHubClient(cfg.Token)

	_, _, err := gh.Repositories.Get(ctx, cfg.Owner, cfg.Repo)
	if err != nil {
		var apiErr *github.ErrorResponse
		if errors.As(err, &apiErr) && apiErr.Response != nil {
			c.logger.Debug("repository probe failed",
				slog.String("repo", cfg.FullName()),
				slog.Int("status", apiErr.Response.StatusCode),
			)
		}

		return false
	}

	return true
}

func (c *Client) newGitHubClient(token string) *github.Client {
	ctx := context.Background()
	if c.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	gh := github.NewClient(oauth2.NewClient(ctx, ts))

	if c.baseURL != nil {
		u := *c.baseURL
		gh.BaseURL = &u
	}

	return gh
}

// FileName formats t as YYYYMMDDhhmmss.md.
func FileName(t time.Time) string {
	return t.Format("20060102150405") + ".md"
}

// FilePath joins folder and name with "/", or returns name alone when
// folder is empty.
func FilePath(folder, name string) string {
	if folder == "" {
		return name
	}

	return folder + "/" + name
}
