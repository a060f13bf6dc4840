package application

import "github.com/bnema/mcli/internal/domain"

type DownloadResult struct {
	Scenario      domain.Scenario
	GameVersion   string
	LoaderVersion string
	// Files counts the entries that were missing or stale.
	Files int
}

// InstanceSummary describes one installed instance. Err is set when its
// state could not be read; the other fields are then empty.
type InstanceSummary struct {
	Name          string
	Scenario      domain.Scenario
	GameVersion   string
	LoaderVersion string
	Err           error
}
