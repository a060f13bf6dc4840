package cmd

import (
	"io"
	"os"

	"github.com/bnema/mcli/internal/logging"
	"github.com/spf13/cobra"
)

func Execute() error {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

// execute runs one command line. The log is flushed and closed whether or
// not the command fails.
func execute(args []string, stdout, stderr io.Writer) error {
	rootCmd, closeLog := newRootCmd()
	defer closeLog()

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func newRootCmd() (*cobra.Command, func()) {
	rootCmd := &cobra.Command{
		Use:           "mcli",
		Short:         "Download and launch game instances from the terminal",
		Long:          "mcli acquires vanilla and fabric game instances, keeps their files verified, manages signed-in accounts and launches the game.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd, func() {}
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		cmd.SetContext(logging.WithLogger(cmd.Context(), app.logger))
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newDownloadCmd(app),
		newLaunchCmd(app),
		newListCmd(app),
		newVerifyCmd(app),
		newDeleteCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newAccountCmd(app),
		newConfigCmd(app),
	)

	return rootCmd, app.closeLog
}
