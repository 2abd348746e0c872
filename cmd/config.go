package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/yasu691/fragmenta/internal/core"
	"github.com/yasu691/fragmenta/internal/model"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the target GitHub repository",
	Long: `Configure where notes are committed.

The token is kept in the OS keyring (or only for this process when
FRAGMENTA_TOKEN_STORE=memory); owner, repository, folder and branch are kept
in the local store.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Validate and save the repository configuration",
	Long: `Validate the token against the repository and save the configuration.

Token lookup order: --token, GITHUB_TOKEN, GH_TOKEN, gh CLI, then an
interactive prompt. Owner and repository default to the origin remote of
the git checkout in the current directory.

Examples:
  fragmenta config set --owner alice --repo notes --folder inbox
  fragmenta config set --branch drafts          # inside a checkout of the repo`,
	Args: cobra.NoArgs,
	RunE: runConfigSet,
}

var configLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Get a token with the GitHub device flow and save the configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigLogin,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the repository configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the stored token can read the repository",
	Args:  cobra.NoArgs,
	RunE:  runConfigValidate,
}

var configClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the token and the repository configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigClear,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd, configLoginCmd, configShowCmd, configValidateCmd, configClearCmd)

	for _, c := range []*cobra.Command{configSetCmd, configLoginCmd} {
		c.Flags().String("owner", "", "Repository owner (user or organization)")
		c.Flags().String("repo", "", "Repository name")
		c.Flags().String("folder", "", "Folder for notes (empty = repository root)")
		c.Flags().String("branch", "", "Branch to commit to (default \"main\")")
	}

	configSetCmd.Flags().String("token", "", "GitHub personal access token")
	configClearCmd.Flags().BoolP("yes", "y", false, "Skip confirmation prompt")
}

// repositoryFlags fills the non-secret fields from flags, falling back to
// the stored configuration and then to the current git checkout.
func repositoryFlags(cmd *cobra.Command, a *app) (*model.RepositoryConfig, error) {
	cfg := &model.RepositoryConfig{}

	stored, err := a.store.GetRepositorySettings()
	if err != nil {
		return nil, err
	}

	if stored != nil {
		*cfg = *stored
	}

	if cmd.Flags().Changed("owner") {
		cfg.Owner, _ = cmd.Flags().GetString("owner")
	}

	if cmd.Flags().Changed("repo") {
		cfg.Repo, _ = cmd.Flags().GetString("repo")
	}

	if cmd.Flags().Changed("folder") {
		cfg.FolderPath, _ = cmd.Flags().GetString("folder")
	}

	if cmd.Flags().Changed("branch") {
		cfg.Branch, _ = cmd.Flags().GetString("branch")
	}

	if cfg.Owner == "" || cfg.Repo == "" {
		if wd, err := os.Getwd(); err == nil {
			if owner, repo, err := core.DetectRepository(wd); err == nil {
				a.logger.Debug("repository detected from git config", slog.String("owner", owner), slog.String("repo", repo))

				if cfg.Owner == "" {
					cfg.Owner = owner
				}

				if cfg.Repo == "" {
					cfg.Repo = repo
				}
			}
		}
	}

	return cfg, nil
}

func runConfigSet(cmd *cobra.Command, _ []string) error {
	a := appFrom(cmd)

	cfg, err := repositoryFlags(cmd, a)
	if err != nil {
		return err
	}

	tokenFlag, _ := cmd.Flags().GetString("token")

	token, source, err := core.ResolveToken(tokenFlag, a.cfg.Host)
	if err != nil {
		token, err = readSecret("GitHub token: ")
		if err != nil {
			return err
		}

		source = "prompt"
	}

	cfg.Token = token

	a.logger.Debug("token resolved", slog.String("source", string(source)))

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validating access to %s...\n", cfg.FullName())

	if err := a.configSvc.Save(cmd.Context(), cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved. Notes will be committed to %s on %q.\n", location(cfg), cfg.Branch)

	return nil
}

func runConfigLogin(cmd *cobra.Command, _ []string) error {
	a := appFrom(cmd)

	cfg, err := repositoryFlags(cmd, a)
	if err != nil {
		return err
	}

	flow := core.NewOAuthFlow(a.cfg.Host, a.cfg.OAuthClientID, core.DefaultScopes)
	flow.OnDeviceCode(func(code, verificationURL string) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Open %s and enter the code: %s\n", verificationURL, code)
	})

	result, err := flow.Run(cmd.Context())
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Authenticated as %s\n", result.Username)

	if cfg.Owner == "" {
		cfg.Owner = result.Username
	}

	cfg.Token = result.Token

	if err := a.configSvc.Save(cmd.Context(), cfg); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved. Notes will be committed to %s on %q.\n", location(cfg), cfg.Branch)

	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	a := appFrom(cmd)

	cfg, err := a.store.GetRepositorySettings()
	if err != nil {
		return err
	}

	if cfg == nil {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No repository configured.")
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Configure one with: fragmenta config set --owner <owner> --repo <repo>")

		return nil
	}

	token, err := a.store.GetToken()
	if err != nil {
		return err
	}

	folder := cfg.FolderPath
	if folder == "" {
		folder = "(repository root)"
	}

	printInfoBox(cmd.OutOrStdout(), "Repository", map[string]string{
		"Repository": cfg.FullName(),
		"Folder":     folder,
		"Branch":     cfg.Branch,
		"Token":      maskToken(token),
		"Store":      fmt.Sprintf("%s / %s", a.cfg.Store, a.cfg.TokenStore),
	}, []string{"Repository", "Folder", "Branch", "Token", "Store"})

	return nil
}

func runConfigValidate(cmd *cobra.Command, _ []string) error {
	a := appFrom(cmd)

	cfg, err := a.store.GetRepositoryConfig()
	if err != nil {
		return err
	}

	if cfg == nil {
		return core.ErrNotConfigured
	}

	if !a.remote.ValidateConfig(cmd.Context(), cfg) {
		return fmt.Errorf("%w: %s", core.ErrRepositoryUnreachable, cfg.FullName())
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "OK: %s is reachable\n", cfg.FullName())

	return nil
}

func runConfigClear(cmd *cobra.Command, _ []string) error {
	a := appFrom(cmd)

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes && !promptConfirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Remove the token and repository configuration? [y/N]: ") {
		return errAborted
	}

	if err := a.configSvc.Clear(); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Repository configuration removed.")

	return nil
}

func location(cfg *model.RepositoryConfig) string {
	if cfg.FolderPath == "" {
		return cfg.FullName()
	}

	return cfg.FullName() + "/" + cfg.FolderPath
}
