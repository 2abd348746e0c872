package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/yasu691/fragmenta/internal/model"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse past submissions",
	Long: `Browse the last 100 submitted notes, newest first.

Examples:
  fragmenta history list
  fragmenta history list --limit 5 --json
  fragmenta history show <id>
  fragmenta history delete <id>`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List submissions, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one submission",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove one submission from history (the GitHub file is kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := appFrom(cmd).store.DeleteHistoryEntry(args[0]); err != nil {
			return err
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")

		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all history (GitHub files are kept)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !promptConfirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Delete all history? [y/N]: ") {
			return errAborted
		}

		if err := appFrom(cmd).store.ClearHistory(); err != nil {
			return err
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyDeleteCmd, historyClearCmd)

	historyListCmd.Flags().IntP("limit", "n", 20, "Maximum number of entries (0 = all)")
	historyListCmd.Flags().Bool("json", false, "Output as JSON")
	historyShowCmd.Flags().Bool("json", false, "Output as JSON")
	historyClearCmd.Flags().BoolP("yes", "y", false, "Skip confirmation prompt")
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	history, err := appFrom(cmd).store.GetHistory()
	if err != nil {
		return err
	}

	if limit > 0 && len(history) > limit {
		history = history[:limit]
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		return enc.Encode(history)
	}

	if len(history) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No submissions yet.")
		return nil
	}

	now := time.Now()

	for _, e := range history {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %-20s %-10s %s%s\n",
			e.ID, e.FileName, formatAge(e.CreatedAt, now), firstLine(e.Content, 40), formatTags(e.Tags))
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	entry, err := appFrom(cmd).store.GetHistoryEntry(args[0])
	if err != nil {
		return err
	}

	if entry == nil {
		return fmt.Errorf("no history entry with id %s", args[0])
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		return enc.Encode(entry)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "File:    %s\n", entry.FileName)
	_, _ = fmt.Fprintf(out, "Created: %s\n", entry.CreatedAt.Local().Format(time.DateTime))

	if entry.URL != "" {
		_, _ = fmt.Fprintf(out, "URL:     %s\n", entry.URL)
	}

	if tags := formatTags(entry.Tags); tags != "" {
		_, _ = fmt.Fprintf(out, "Tags:   %s\n", tags)
	}

	_, _ = fmt.Fprintf(out, "\n%s\n", entry.Content)

	return nil
}

func formatTags(tags *model.TagSelection) string {
	if tags == nil || tags.IsEmpty() {
		return ""
	}

	return fmt.Sprintf(" [%s]", strings.Join(tags.Values(), ", "))
}
