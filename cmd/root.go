package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/yasu691/fragmenta/internal/application"
	"github.com/yasu691/fragmenta/internal/config"
	"github.com/yasu691/fragmenta/internal/core"
	"github.com/yasu691/fragmenta/internal/remote"
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Capture notes as Markdown files in a GitHub repository",
	Long: `Fragmenta commits short notes to a GitHub repository as timestamped
Markdown files, optionally tagged with a primary and a secondary tag.

It keeps a local draft, a history of the last 100 submissions and a small
tag catalog. Configure the target repository once with "config set", then
submit notes from the command line or the compose screen.`,
	Version:            application.Version,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setupApp,
}

// Execute runs the root command.
func Execute() {
	if err := execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var submitErr *core.SubmitError
		if errors.As(err, &submitErr) && remote.IsRetryable(submitErr.Err) {
			_, _ = fmt.Fprintln(os.Stderr, "GitHub is having trouble; your draft was kept. Try again later.")
		}

		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("env-file", ".env", "Load environment variables from this file if it exists")
}

func setupApp(cmd *cobra.Command, _ []string) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	if verbose {
		cfg.LogLevel = slog.LevelDebug
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg)
	slog.SetDefault(logger)

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cmd.SetContext(withApp(ctx, a))

	return nil
}

// execute runs the command line and then closes the app. Cobra skips
// post-run hooks when RunE fails, so the store is released here instead.
func execute() error {
	c, err := rootCmd.ExecuteC()
	if c == nil {
		return err
	}

	if a := appFrom(c); a != nil {
		c.SetContext(withApp(c.Context(), nil))
		err = errors.Join(err, a.Close())
	}

	return err
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}

	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
