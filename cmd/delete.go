package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <instance>",
		Aliases: []string{"del"},
		Short:   "Delete an instance directory",
		Long:    "Delete an instance and everything in its directory. Shared libraries and assets are kept.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.instances.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return err
		},
	}
}
