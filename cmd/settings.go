package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yasu691/fragmenta/internal/model"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change draft and retry settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := appFrom(cmd).store.GetSettings()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "auto-save draft: %t\n", s.AutoSaveDraft)
		_, _ = fmt.Fprintf(out, "retry attempts:  %d\n", s.RetryAttempts)
		_, _ = fmt.Fprintf(out, "retry delay:     %dms\n", s.RetryDelay)

		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change settings; unspecified ones are kept",
	Example: `  fragmenta settings set --retry-attempts 5 --retry-delay 2000
  fragmenta settings set --auto-save=false`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := appFrom(cmd)

		s, err := a.store.GetSettings()
		if err != nil {
			return err
		}

		applySettingsFlags(cmd.Flags(), &s)

		if err := a.store.SaveSettings(s); err != nil {
			return err
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Settings saved.")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd)

	settingsSetCmd.Flags().Bool("auto-save", true, "Save the draft while composing")
	settingsSetCmd.Flags().Int("retry-attempts", 3, "Total attempts for a GitHub server error")
	settingsSetCmd.Flags().Int("retry-delay", 1000, "Milliseconds to wait between attempts")
}

// applySettingsFlags overwrites only the settings whose flags were given.
func applySettingsFlags(fs *pflag.FlagSet, s *model.AppSettings) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "auto-save":
			s.AutoSaveDraft, _ = fs.GetBool(f.Name)
		case "retry-attempts":
			s.RetryAttempts, _ = fs.GetInt(f.Name)
		case "retry-delay":
			s.RetryDelay, _ = fs.GetInt(f.Name)
		}
	})
}
