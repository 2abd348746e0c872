package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yasu691/fragmenta/internal/cli"
	"github.com/yasu691/fragmenta/internal/core"
	"github.com/yasu691/fragmenta/internal/frontmatter"
	"github.com/yasu691/fragmenta/internal/security"
)

var submitCmd = &cobra.Command{
	Use:   "submit [text]",
	Short: "Commit a note to the configured repository",
	Long: `Commit a note as a new Markdown file named after the current time.

The note text comes from the argument, --file, standard input ("-"), or
the saved draft when nothing else is given. Tags must exist in the tag
catalog. Failed attempts caused by GitHub server errors are retried
according to the retry settings.

Examples:
  fragmenta submit "buy milk"
  fragmenta submit "standup notes" --primary work --secondary meeting
  fragmenta submit --file notes.md
  echo "from a pipe" | fragmenta submit -
  fragmenta submit                 # submit the saved draft`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSubmit,
}

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Write a note in an interactive editor",
	Long: `Open an editor for a new note. The saved draft is restored and edits
are saved back to it as you type (when auto-save is on). Press ctrl+s to
submit and esc to leave without submitting.`,
	Args: cobra.NoArgs,
	RunE: runCompose,
}

func init() {
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(composeCmd)

	for _, c := range []*cobra.Command{submitCmd, composeCmd} {
		c.Flags().StringP("primary", "p", "", "Primary tag")
		c.Flags().StringP("secondary", "s", "", "Secondary tag")
		c.Flags().Bool("no-scan", false, "Skip the secret scan")
	}

	submitCmd.Flags().StringP("file", "f", "", "Read the note from a file")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	a := appFrom(cmd)

	primary, _ := cmd.Flags().GetString("primary")
	secondary, _ := cmd.Flags().GetString("secondary")
	noScan, _ := cmd.Flags().GetBool("no-scan")
	file, _ := cmd.Flags().GetString("file")

	text, err := noteText(cmd, args, file)
	if err != nil {
		return err
	}

	tags, err := a.resolveTags(primary, secondary)
	if err != nil {
		return err
	}

	if frontmatter.HasHeader(text) {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Warning: the note already starts with a --- header; its tags will not be read back reliably.")
	}

	submitter, err := a.submitter(!noScan)
	if err != nil {
		return err
	}

	entry, err := submitter.Submit(cmd.Context(), text, tags)

	var leakErr *core.LeakError
	if errors.As(err, &leakErr) {
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), security.FormatFindings(leakErr.Findings))
		return fmt.Errorf("%w (use --no-scan to submit anyway)", err)
	}

	if err != nil {
		if entry.URL != "" {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Submitted: %s\n", entry.URL)
		}

		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Submitted %s\n", entry.FileName)

	if entry.URL != "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), entry.URL)
	}

	return nil
}

// noteText picks the note from the argument, a file, stdin or the draft.
func noteText(cmd *cobra.Command, args []string, file string) (string, error) {
	switch {
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading note: %w", err)
		}

		return string(data), nil

	case len(args) == 1 && args[0] == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading note: %w", err)
		}

		return string(data), nil

	case len(args) == 1:
		return args[0], nil
	}

	draft, err := appFrom(cmd).store.GetDraft()
	if err != nil {
		return "", err
	}

	if draft == nil || strings.TrimSpace(draft.Content) == "" {
		return "", fmt.Errorf("%w: pass the text as an argument or save a draft first", core.ErrEmptyInput)
	}

	return draft.Content, nil
}

func runCompose(cmd *cobra.Command, _ []string) error {
	a := appFrom(cmd)

	primary, _ := cmd.Flags().GetString("primary")
	secondary, _ := cmd.Flags().GetString("secondary")
	noScan, _ := cmd.Flags().GetBool("no-scan")

	tags, err := a.resolveTags(primary, secondary)
	if err != nil {
		return err
	}

	submitter, err := a.submitter(!noScan)
	if err != nil {
		return err
	}

	m, err := cli.NewComposeModel(a.store, submitter.Submit, tags)
	if err != nil {
		return err
	}

	final, err := cli.RunCompose(m)
	if err != nil {
		return err
	}

	if final.Entry == nil && final.Err != nil {
		return final.Err
	}

	return nil
}
