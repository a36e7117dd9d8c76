package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valksor/go-youtrack/youtrack"
)

var issuesCmd = &cobra.Command{
	Use:   "issues",
	Short: "List issues matching a query",
	RunE: func(cmd *cobra.Command, args []string) error {
		queryStr, _ := cmd.Flags().GetString("query")
		top, _ := cmd.Flags().GetInt("top")
		skip, _ := cmd.Flags().GetInt("skip")

		client, err := newAPIClient()
		if err != nil {
			return err
		}
		defer client.Close()

		issues, err := client.GetIssues(cmd.Context(), &youtrack.IssueListOptions{
			Query:       queryStr,
			ListOptions: youtrack.ListOptions{Skip: skip, Top: top},
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), issues)
		}
		for _, issue := range issues {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", issue.IDReadable.Or(issue.ID.Or("?")), issue.Summary.Or(""))
		}
		return nil
	},
}

func init() {
	issuesCmd.Flags().StringP("query", "q", "", "YouTrack search query")
	issuesCmd.Flags().Int("top", 50, "Maximum number of issues to list")
	issuesCmd.Flags().Int("skip", 0, "Number of issues to skip")
	rootCmd.AddCommand(issuesCmd)
}
