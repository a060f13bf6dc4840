package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVerifyCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <instance>",
		Short: "Report missing or corrupt files of an instance",
		Long:  "Check every file an instance needs without downloading anything. Run download again to repair it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := app.instances.Verify(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if set.Empty() {
				_, err = fmt.Fprintf(out, "%s: all files present\n", args[0])
				return err
			}

			_, _ = fmt.Fprintf(out, "%s: %d files missing or corrupt\n", args[0], set.Len())
			for _, entry := range set.Entries {
				_, _ = fmt.Fprintf(out, "  %s\n", entry.Path)
			}
			return nil
		},
	}
}
