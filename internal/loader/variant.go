package loader

import (
	"context"
	"fmt"

	"github.com/bnema/mcli/internal/domain"
	"github.com/bnema/mcli/internal/ports"
)

// Installer computes what an instance needs on disk and the state that
// describes it once fetched.
type Installer interface {
	Plan(ctx context.Context) (domain.DownloadSet, error)
	State() domain.InstanceState
}

// Launcher derives the pieces of the game command line.
type Launcher interface {
	Classpath() (string, error)
	GameOptions(player domain.Player) ([]string, error)
	JVMArguments(classpath string) ([]string, error)
	MainClass() string
}

// Variant is the loader unit selected by an instance's scenario. Exactly
// the field matching Scenario is set.
type Variant struct {
	Scenario domain.Scenario
	Vanilla  *Vanilla
	Fabric   *Fabric
}

func (v Variant) Installer() (Installer, error) {
	switch v.Scenario {
	case domain.ScenarioVanilla:
		return v.Vanilla, nil
	case domain.ScenarioFabric:
		return v.Fabric, nil
	default:
		return nil, unknownScenario(v.Scenario)
	}
}

func (v Variant) Launcher() (Launcher, error) {
	switch v.Scenario {
	case domain.ScenarioVanilla:
		return v.Vanilla, nil
	case domain.ScenarioFabric:
		return v.Fabric, nil
	default:
		return nil, unknownScenario(v.Scenario)
	}
}

func unknownScenario(scenario domain.Scenario) error {
	return domain.Wrap(domain.CategoryState, fmt.Errorf("%q: %w", scenario, domain.ErrScenarioUnknown))
}

type Request struct {
	Scenario domain.Scenario
	// Version is a game version id; empty selects the latest release, or the
	// latest snapshot with Snapshots set.
	Version   string
	Snapshots bool
	// LoaderVersion pins the overlay's loader; empty picks the best one.
	LoaderVersion string
	// Prior is the state of an already installed instance, if any.
	Prior domain.InstanceState
}

// Acquire resolves the units needed to install req.
func Acquire(ctx context.Context, env Env, req Request) (Variant, error) {
	if _, err := domain.ParseScenario(string(req.Scenario)); err != nil {
		return Variant{}, domain.Wrap(domain.CategoryState, err)
	}

	record, err := env.Versions.Resolve(ctx, req.Version, req.Version != "" || req.Snapshots)
	if err != nil {
		return Variant{}, err
	}

	base, err := NewVanilla(ctx, env, record, req.Prior)
	if err != nil {
		return Variant{}, err
	}

	switch req.Scenario {
	case domain.ScenarioVanilla:
		return Variant{Scenario: req.Scenario, Vanilla: base}, nil
	case domain.ScenarioFabric:
		overlay, err := NewFabric(ctx, env, base, req.LoaderVersion)
		if err != nil {
			return Variant{}, err
		}
		return Variant{Scenario: req.Scenario, Vanilla: base, Fabric: overlay}, nil
	default:
		return Variant{}, unknownScenario(req.Scenario)
	}
}

// Load rebuilds the units of an installed instance from its state.
func Load(ctx context.Context, env Env, state domain.InstanceState) (Variant, error) {
	base, err := LoadVanilla(ctx, env, state)
	if err != nil {
		return Variant{}, err
	}

	switch state.Scenario {
	case domain.ScenarioVanilla:
		return Variant{Scenario: state.Scenario, Vanilla: base}, nil
	case domain.ScenarioFabric:
		overlay, err := LoadFabric(ctx, env, base, state)
		if err != nil {
			return Variant{}, err
		}
		return Variant{Scenario: state.Scenario, Vanilla: base, Fabric: overlay}, nil
	default:
		return Variant{}, unknownScenario(state.Scenario)
	}
}

// CollectURLs plans the installer and, only once planning succeeded, writes
// the resulting state to instanceDir.
func CollectURLs(ctx context.Context, installer Installer, store ports.StateStore, instanceDir string) (domain.DownloadSet, error) {
	set, err := installer.Plan(ctx)
	if err != nil {
		return domain.DownloadSet{}, err
	}
	if err := store.Write(ctx, installer.State(), instanceDir); err != nil {
		return domain.DownloadSet{}, err
	}
	return set, nil
}
