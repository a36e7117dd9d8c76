package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		defer client.Close()

		projects, err := client.GetProjects(cmd.Context(), nil)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), projects)
		}
		for _, p := range projects {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-10s %s\n", p.ID.Or(""), p.ShortName.Or(""), p.Name.Or(""))
		}
		return nil
	},
}

var projectFieldsCmd = &cobra.Command{
	Use:   "fields <project-id>",
	Short: "List the custom fields attached to a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		defer client.Close()

		fields, err := client.GetProjectCustomFields(cmd.Context(), args[0], nil)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), fields)
		}
		for _, f := range fields {
			name := "?"
			typeID := ""
			if info, ok := f.FieldInfo(); ok {
				name = info.Name.Or("?")
				if ft, ok := info.FieldType.Value(); ok {
					typeID = ft.ID.Or("")
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-16s %s\n", titleCaser.String(name), typeID, f.TypeName())
		}
		return nil
	},
}

func init() {
	projectsCmd.AddCommand(projectFieldsCmd)
	rootCmd.AddCommand(projectsCmd)
}
