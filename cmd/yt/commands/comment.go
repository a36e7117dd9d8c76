package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valksor/go-youtrack/youtrack"
)

var commentCmd = &cobra.Command{
	Use:   "comment <issue-id> [text]",
	Short: "List or add comments on an issue",
	Long: `With only an issue id, lists its comments. With text, posts a new
comment.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		defer client.Close()

		if len(args) == 1 {
			comments, err := client.GetIssueComments(cmd.Context(), args[0], nil)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), comments)
			}
			for _, comment := range comments {
				author, _ := comment.Author.Value()
				stamp := ""
				if created, ok := comment.Created.Value(); ok {
					stamp = created.Format("2006-01-02 15:04")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n%s\n\n",
					author.Login.Or("?"), stamp, comment.Text.Or(""))
			}
			return nil
		}

		created, err := client.CreateIssueComment(cmd.Context(), args[0], youtrack.IssueComment{
			Text: youtrack.Set(args[1]),
		})
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), created)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Commented on %s\n", args[0])
		return nil
	},
}

var commentHideCmd = &cobra.Command{
	Use:   "hide <issue-id> <comment-id>",
	Short: "Hide a comment without deleting it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.HideIssueComment(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Hid comment %s on %s\n", args[1], args[0])
		return nil
	},
}

func init() {
	commentCmd.AddCommand(commentHideCmd)
	rootCmd.AddCommand(commentCmd)
}
