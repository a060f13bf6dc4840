package cmd

import (
	"fmt"

	"github.com/bnema/mcli/internal/application"
	"github.com/spf13/cobra"
)

func newLaunchCmd(app *app) *cobra.Command {
	var (
		gameOutput bool
		offline    bool
	)

	cmd := &cobra.Command{
		Use:     "launch <instance> <username>",
		Aliases: []string{"l"},
		Short:   "Launch an installed instance",
		Long: "Launch an installed instance as a signed-in account. With --offline no account is " +
			"needed and the player gets a name based identity.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := app.accounts.Player(cmd.Context(), args[1], offline)
			if err != nil {
				return err
			}

			pid, err := app.instances.Launch(cmd.Context(), application.LaunchCommand{
				Instance:   args[0],
				Player:     player,
				ShowOutput: gameOutput,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Launched %s as %s (pid %d)\n", args[0], player.Name, pid)
			return err
		},
	}

	cmd.Flags().BoolVarP(&gameOutput, "game-output", "q", false, "forward the game's output to this terminal")
	cmd.Flags().BoolVar(&offline, "offline", false, "launch without a signed-in account")

	return cmd
}
