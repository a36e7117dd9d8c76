package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valksor/go-youtrack/youtrack"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List available tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		defer client.Close()

		tags, err := client.GetTags(cmd.Context(), nil)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), tags)
		}
		for _, tag := range tags {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", tag.ID.Or(""), tag.Name.Or(""))
		}
		return nil
	},
}

var tagAddCmd = &cobra.Command{
	Use:   "add <issue-id> <tag-id>",
	Short: "Attach a tag to an issue",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.AddIssueTag(cmd.Context(), args[0], youtrack.Tag{ID: youtrack.Set(args[1])}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Tagged %s\n", args[0])
		return nil
	},
}

func init() {
	tagsCmd.AddCommand(tagAddCmd)
	rootCmd.AddCommand(tagsCmd)
}
