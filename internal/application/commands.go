package application

import "github.com/bnema/mcli/internal/domain"

type DownloadCommand struct {
	Instance string
	// Version is empty to keep an installed instance's version, or to
	// resolve the latest release for a new one.
	Version   string
	Snapshots bool
	Fabric    bool
	// LoaderVersion pins the fabric loader; empty picks the best one.
	LoaderVersion string
}

func (c DownloadCommand) Scenario() domain.Scenario {
	if c.Fabric {
		return domain.ScenarioFabric
	}
	return domain.ScenarioVanilla
}

type LaunchCommand struct {
	Instance   string
	Player     domain.Player
	ShowOutput bool
}
