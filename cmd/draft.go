package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Manage the saved draft",
}

var draftShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved draft",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		draft, err := appFrom(cmd).store.GetDraft()
		if err != nil {
			return err
		}

		if draft == nil {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "No draft saved.")
			return nil
		}

		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Saved %s\n", draft.SavedAt.Local().Format(time.DateTime))
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), draft.Content)

		return nil
	},
}

var draftSaveCmd = &cobra.Command{
	Use:   "save <text|->",
	Short: "Replace the draft (\"-\" reads standard input)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := args[0]

		if text == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}

			text = string(data)
		}

		draft, err := appFrom(cmd).store.SaveDraft(text)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Draft saved (%d characters)\n", len([]rune(draft.Content)))

		return nil
	},
}

var draftClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the draft",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := appFrom(cmd).store.ClearDraft(); err != nil {
			return err
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Draft cleared.")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(draftCmd)
	draftCmd.AddCommand(draftShowCmd, draftSaveCmd, draftClearCmd)
}
