package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		defer client.Close()

		users, err := client.GetUsers(cmd.Context(), nil)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), users)
		}
		for _, u := range users {
			fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", u.Login.Or(""), u.Name.Or(""))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
}
