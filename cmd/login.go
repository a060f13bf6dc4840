package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign in with a Microsoft account",
		Long: "Open the Microsoft sign-in page in a browser and store the resulting game account. " +
			"When the local callback port is busy the redirect URL can be pasted instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			account, err := app.accounts.Login(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", account.Name, account.UUID)
			return err
		},
	}
}
