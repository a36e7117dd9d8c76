package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/valksor/go-youtrack/internal/update"
)

var updateCheckCmd = &cobra.Command{
	Use:   "update-check",
	Short: "Check whether a newer yt release is available",
	RunE: func(cmd *cobra.Command, args []string) error {
		prerelease, _ := cmd.Flags().GetBool("prerelease")

		checker := update.NewChecker(os.Getenv("GITHUB_TOKEN"), cfg.Update.Owner, cfg.Update.Repo)
		status, err := checker.Check(cmd.Context(), update.CheckOptions{
			CurrentVersion:    Version,
			IncludePreRelease: prerelease,
		})

		out := cmd.OutOrStdout()
		switch {
		case errors.Is(err, update.ErrDevBuild):
			fmt.Fprintln(out, "Running a dev build; update checks are skipped.")
			return nil
		case errors.Is(err, update.ErrNoUpdateAvailable):
			fmt.Fprintf(out, "yt %s is up to date.\n", Version)
			return nil
		case err != nil:
			return err
		}

		fmt.Fprintf(out, "yt %s is available (current: %s)\n", status.LatestVersion, status.CurrentVersion)
		if status.ReleaseURL != "" {
			fmt.Fprintf(out, "  %s\n", status.ReleaseURL)
		}
		return nil
	},
}

func init() {
	updateCheckCmd.Flags().Bool("prerelease", false, "Consider pre-release versions")
	rootCmd.AddCommand(updateCheckCmd)
}
