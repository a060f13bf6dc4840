package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/mcli/internal/application"
	"github.com/bnema/mcli/internal/domain"
	"github.com/spf13/cobra"
)

// fabricBestLoader is what a bare --fabric resolves to.
const fabricBestLoader = "best"

func newDownloadCmd(app *app) *cobra.Command {
	var (
		fabricLoader string
		snapshot     bool
	)

	cmd := &cobra.Command{
		Use:     "download <instance> [version]",
		Aliases: []string{"dl"},
		Short:   "Download or repair a game instance",
		Long: "Download a game instance. Without a version the latest release is installed, " +
			"or the latest snapshot with --snapshot. Files already present and intact are kept.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			download := application.DownloadCommand{
				Instance:  args[0],
				Snapshots: snapshot,
				Fabric:    cmd.Flags().Changed("fabric"),
			}
			if len(args) == 2 {
				download.Version = args[1]
			}
			if download.Fabric && fabricLoader != fabricBestLoader {
				download.LoaderVersion = fabricLoader
			}

			var result application.DownloadResult
			label := fmt.Sprintf("Downloading %s...", download.Instance)
			err := runDownloadSpinner(cmd.Context(), cmd.ErrOrStderr(), label, app.engine.OnProgress, func(ctx context.Context) error {
				var err error
				result, err = app.instances.Download(ctx, download)
				return err
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), downloadSummary(download.Instance, result))
			return err
		},
	}

	cmd.Flags().StringVar(&fabricLoader, "fabric", "", "install the fabric loader, optionally pinned with --fabric=<loader-version>")
	cmd.Flags().Lookup("fabric").NoOptDefVal = fabricBestLoader
	cmd.Flags().BoolVarP(&snapshot, "snapshot", "s", false, "resolve the latest snapshot instead of the latest release")

	return cmd
}

func downloadSummary(instance string, result application.DownloadResult) string {
	installed := fmt.Sprintf("%s %s", domain.ScenarioVanilla, result.GameVersion)
	if result.Scenario == domain.ScenarioFabric {
		installed = fmt.Sprintf("%s %s on %s", domain.ScenarioFabric, result.LoaderVersion, result.GameVersion)
	}

	switch result.Files {
	case 0:
		return fmt.Sprintf("%s is up to date (%s)", instance, installed)
	case 1:
		return fmt.Sprintf("Installed %s (%s), fetched 1 file", instance, installed)
	default:
		return fmt.Sprintf("Installed %s (%s), fetched %d files", instance, installed, result.Files)
	}
}
