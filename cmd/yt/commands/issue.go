package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valksor/go-youtrack/internal/log"
	"github.com/valksor/go-youtrack/youtrack"
)

var issueCmd = &cobra.Command{
	Use:   "issue <id>",
	Short: "Show an issue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		defer client.Close()

		issue, err := client.GetIssue(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), issue)
		}
		printIssue(cmd.OutOrStdout(), issue)
		return nil
	},
}

var issueCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an issue",
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, _ := cmd.Flags().GetString("project")
		summary, _ := cmd.Flags().GetString("summary")
		description, _ := cmd.Flags().GetString("description")

		if projectID == "" {
			projectID = cfg.Project
		}
		if projectID == "" {
			return fmt.Errorf("no project: pass --project or set project in config")
		}
		if summary == "" {
			return fmt.Errorf("--summary is required")
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}
		defer client.Close()

		issue := youtrack.Issue{
			Project: youtrack.Set(youtrack.Project{ID: youtrack.Set(projectID)}),
			Summary: youtrack.Set(summary),
		}
		if description != "" {
			issue.Description = youtrack.Set(description)
		}

		created, err := client.CreateIssue(cmd.Context(), issue)
		if err != nil {
			return err
		}
		log.Info("issue created", log.IssueID(created.IDReadable.Or("")))
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), created)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", created.IDReadable.Or(created.ID.Or("")))
		return nil
	},
}

var issueUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an issue's summary or description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, _ := cmd.Flags().GetString("summary")
		description, _ := cmd.Flags().GetString("description")
		clearDescription, _ := cmd.Flags().GetBool("clear-description")
		mute, _ := cmd.Flags().GetBool("mute")

		var issue youtrack.Issue
		if summary != "" {
			issue.Summary = youtrack.Set(summary)
		}
		if clearDescription {
			issue.Description = youtrack.Null[string]()
		} else if description != "" {
			issue.Description = youtrack.Set(description)
		}

		client, err := newAPIClient()
		if err != nil {
			return err
		}
		defer client.Close()

		updated, err := client.UpdateIssue(cmd.Context(), args[0], issue, mute)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), updated)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", updated.IDReadable.Or(args[0]))
		return nil
	},
}

var issueDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an issue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.DeleteIssue(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	issueCreateCmd.Flags().String("project", "", "Project id or short name")
	issueCreateCmd.Flags().String("summary", "", "Issue summary")
	issueCreateCmd.Flags().String("description", "", "Issue description")

	issueUpdateCmd.Flags().String("summary", "", "New summary")
	issueUpdateCmd.Flags().String("description", "", "New description")
	issueUpdateCmd.Flags().Bool("clear-description", false, "Clear the description")
	issueUpdateCmd.Flags().Bool("mute", false, "Do not notify subscribers")

	issueCmd.AddCommand(issueCreateCmd, issueUpdateCmd, issueDeleteCmd)
	rootCmd.AddCommand(issueCmd)
}
