package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List the Markdown files in the configured folder on GitHub",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := appFrom(cmd)

		cfg, err := a.requireConfig()
		if err != nil {
			return err
		}

		names, err := a.remote.ListFiles(cmd.Context())
		if err != nil {
			return err
		}

		if len(names) == 0 {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "No notes in %s yet.\n", location(cfg))
			return nil
		}

		for _, name := range names {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
		}

		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all local data: token, configuration, draft, history, tags and settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !promptConfirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Delete ALL local fragmenta data? [y/N]: ") {
			return errAborted
		}

		if err := appFrom(cmd).store.ClearAll(); err != nil {
			return err
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "All local data removed.")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(resetCmd)

	resetCmd.Flags().BoolP("yes", "y", false, "Skip confirmation prompt")
}
