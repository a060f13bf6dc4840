package cmd

import (
	"fmt"

	"github.com/bnema/mcli/internal/adapters/render/list"
	"github.com/bnema/mcli/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(app *app) *cobra.Command {
	var (
		remote   string
		snapshot bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List installed instances or remote versions",
		Long: "List installed instances. With --remote vanilla the published game versions are " +
			"listed instead, with --remote fabric the fabric loader versions.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			listing, err := buildListing(cmd, app, remote, snapshot)
			if err != nil {
				return err
			}

			rendered, err := app.renderList(listing)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVarP(&remote, "remote", "r", "", "list remote versions: vanilla or fabric")
	cmd.Flags().BoolVarP(&snapshot, "snapshot", "s", false, "include snapshots in remote vanilla versions")

	return cmd
}

func buildListing(cmd *cobra.Command, app *app, remote string, snapshot bool) (list.Listing, error) {
	ctx := cmd.Context()

	switch remote {
	case "":
		instances, err := app.instances.List(ctx)
		if err != nil {
			return list.Listing{}, err
		}
		return list.Instances(instances), nil
	case string(domain.ScenarioVanilla):
		versions, err := app.instances.RemoteVersions(ctx, snapshot)
		if err != nil {
			return list.Listing{}, err
		}
		return list.Versions(versions), nil
	case string(domain.ScenarioFabric):
		loaders, err := app.instances.RemoteLoaders(ctx)
		if err != nil {
			return list.Listing{}, err
		}
		return list.Loaders(loaders), nil
	default:
		return list.Listing{}, fmt.Errorf("invalid --remote %q (use vanilla or fabric)", remote)
	}
}
