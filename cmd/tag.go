package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yasu691/fragmenta/internal/model"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage the tag catalog",
	Long: `Manage the primary and secondary tags notes can be submitted with.

Names are unique within a type and cannot contain commas, brackets or
line breaks.

Examples:
  fragmenta tag add work --type primary
  fragmenta tag list
  fragmenta tag reorder --type primary <id> <id> <id>`,
}

var tagAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a tag at the end of its type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := tagTypeFlag(cmd, model.TagTypePrimary)
		if err != nil {
			return err
		}

		tag, err := appFrom(cmd).store.AddTag(args[0], t)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s tag %q (%s)\n", tag.Type, tag.Name, tag.ID)

		return nil
	},
}

var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tags in order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		types := []model.TagType{model.TagTypePrimary, model.TagTypeSecondary}

		if cmd.Flags().Changed("type") {
			t, err := tagTypeFlag(cmd, "")
			if err != nil {
				return err
			}

			types = []model.TagType{t}
		}

		for _, t := range types {
			tags, err := appFrom(cmd).store.GetTagsByType(t)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", t)

			if len(tags) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "  (none)")
			}

			for _, tag := range tags {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %d. %-20s %s\n", tag.Order+1, tag.Name, tag.ID)
			}
		}

		return nil
	},
}

var tagDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := appFrom(cmd).store.DeleteTag(args[0]); err != nil {
			return err
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")

		return nil
	},
}

var tagReorderCmd = &cobra.Command{
	Use:   "reorder <id>...",
	Short: "Set the order of all tags of one type",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := tagTypeFlag(cmd, "")
		if err != nil {
			return err
		}

		if err := appFrom(cmd).store.ReorderTags(t, args); err != nil {
			return err
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Reordered %d %s tags.\n", len(args), t)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagCmd)
	tagCmd.AddCommand(tagAddCmd, tagListCmd, tagDeleteCmd, tagReorderCmd)

	tagAddCmd.Flags().StringP("type", "t", string(model.TagTypePrimary), "Tag type: primary or secondary")
	tagListCmd.Flags().StringP("type", "t", "", "Only list this type")
	tagReorderCmd.Flags().StringP("type", "t", "", "Tag type to reorder (required)")
	_ = tagReorderCmd.MarkFlagRequired("type")
}

func tagTypeFlag(cmd *cobra.Command, fallback model.TagType) (model.TagType, error) {
	v, _ := cmd.Flags().GetString("type")
	if v == "" {
		v = string(fallback)
	}

	return model.ParseTagType(v)
}
