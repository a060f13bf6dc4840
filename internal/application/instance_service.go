package application

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/bnema/mcli/internal/domain"
	"github.com/bnema/mcli/internal/loader"
	"github.com/bnema/mcli/internal/logging"
	"github.com/bnema/mcli/internal/paths"
	"github.com/bnema/mcli/internal/ports"
	"go.uber.org/zap"
)

// InstanceService acquires, inspects and launches instances under a base
// directory.
type InstanceService struct {
	baseDir  string
	env      loader.Env
	state    ports.StateStore
	fetcher  ports.Fetcher
	launcher ports.ProcessLauncher
	retries  *int
}

// NewInstanceService takes env as a template. Its Paths are replaced per
// instance.
func NewInstanceService(baseDir string, env loader.Env, state ports.StateStore, fetcher ports.Fetcher, launcher ports.ProcessLauncher) *InstanceService {
	return &InstanceService{
		baseDir:  baseDir,
		env:      env,
		state:    state,
		fetcher:  fetcher,
		launcher: launcher,
	}
}

// WithRetries overrides the retry budget of every download set. Zero makes
// each file a single attempt.
func (s *InstanceService) WithRetries(retries int) *InstanceService {
	s.retries = &retries
	return s
}

func (s *InstanceService) Download(ctx context.Context, cmd DownloadCommand) (DownloadResult, error) {
	logger := logging.FromContext(ctx).With(zap.String("instance", cmd.Instance))
	if err := validateInstanceName(cmd.Instance); err != nil {
		return DownloadResult{}, err
	}
	instanceDir := paths.InstanceDir(s.baseDir, cmd.Instance)

	prior, installed, err := s.readPrior(ctx, instanceDir)
	if err != nil {
		return DownloadResult{}, err
	}
	version := cmd.Version
	if installed {
		game, err := prior.Game(domain.ComponentMinecraft)
		if err != nil {
			return DownloadResult{}, domain.Wrap(domain.CategoryState, err)
		}
		switch {
		case version == "":
			version = game.Version
		case version != game.Version:
			return DownloadResult{}, domain.Wrap(domain.CategoryDownload,
				fmt.Errorf("%q holds %s: %w", cmd.Instance, game.Version, domain.ErrInstanceExists))
		}
	}

	variant, err := loader.Acquire(ctx, s.envFor(cmd.Instance), loader.Request{
		Scenario:      cmd.Scenario(),
		Version:       version,
		Snapshots:     cmd.Snapshots,
		LoaderVersion: cmd.LoaderVersion,
		Prior:         prior,
	})
	if err != nil {
		return DownloadResult{}, err
	}
	installer, err := variant.Installer()
	if err != nil {
		return DownloadResult{}, err
	}

	set, err := loader.CollectURLs(ctx, installer, s.state, instanceDir)
	if err != nil {
		return DownloadResult{}, err
	}
	if s.retries != nil {
		set.Retries = *s.retries
	}

	result := DownloadResult{
		Scenario:    variant.Scenario,
		GameVersion: variant.Vanilla.Version(),
		Files:       set.Len(),
	}
	if variant.Fabric != nil {
		result.LoaderVersion = variant.Fabric.LoaderVersion()
	}

	logger.Info("acquiring instance",
		zap.String("scenario", string(result.Scenario)),
		zap.String("version", result.GameVersion),
		zap.Int("files", result.Files))
	if set.Empty() {
		return result, nil
	}
	if err := s.fetcher.Fetch(ctx, set); err != nil {
		return DownloadResult{}, domain.Wrap(domain.CategoryDownload, err)
	}
	return result, nil
}

// Launch starts the game of an installed instance and returns its pid.
func (s *InstanceService) Launch(ctx context.Context, cmd LaunchCommand) (int, error) {
	if err := validateInstanceName(cmd.Instance); err != nil {
		return 0, err
	}
	instanceDir := paths.InstanceDir(s.baseDir, cmd.Instance)

	state, err := s.state.Read(ctx, instanceDir)
	if err != nil {
		return 0, err
	}
	variant, err := loader.Load(ctx, s.envFor(cmd.Instance), state)
	if err != nil {
		return 0, err
	}
	launcher, err := variant.Launcher()
	if err != nil {
		return 0, err
	}

	spec, err := loader.Command(launcher, state, instanceDir, cmd.Player)
	if err != nil {
		return 0, err
	}
	spec.ShowOutput = cmd.ShowOutput

	logging.FromContext(ctx).Debug("launching", zap.String("path", spec.Path), zap.Strings("args", spec.Args))
	return s.launcher.Launch(ctx, spec)
}

// Verify plans an installed instance without writing anything and returns
// the files that are missing or fail their hash.
func (s *InstanceService) Verify(ctx context.Context, name string) (domain.DownloadSet, error) {
	if err := validateInstanceName(name); err != nil {
		return domain.DownloadSet{}, err
	}

	state, err := s.state.Read(ctx, paths.InstanceDir(s.baseDir, name))
	if err != nil {
		return domain.DownloadSet{}, err
	}
	variant, err := loader.Load(ctx, s.envFor(name), state)
	if err != nil {
		return domain.DownloadSet{}, err
	}
	installer, err := variant.Installer()
	if err != nil {
		return domain.DownloadSet{}, err
	}
	return installer.Plan(ctx)
}

// List summarizes every directory under instances/, sorted by name.
func (s *InstanceService) List(ctx context.Context) ([]InstanceSummary, error) {
	entries, err := os.ReadDir(paths.InstancesDir(s.baseDir))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []InstanceSummary{}, nil
		}
		return nil, domain.Wrap(domain.CategoryPath, fmt.Errorf("list instances: %w", err))
	}

	summaries := make([]InstanceSummary, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		summaries = append(summaries, s.summarize(ctx, entry.Name()))
	}
	return summaries, nil
}

func (s *InstanceService) summarize(ctx context.Context, name string) InstanceSummary {
	summary := InstanceSummary{Name: name}
	state, err := s.state.Read(ctx, paths.InstanceDir(s.baseDir, name))
	if err != nil {
		summary.Err = err
		return summary
	}

	summary.Scenario = state.Scenario
	if game, err := state.Game(domain.ComponentMinecraft); err == nil {
		summary.GameVersion = game.Version
	}
	if fabric, err := state.Game(domain.ComponentFabric); err == nil {
		summary.LoaderVersion = fabric.Version
	}
	return summary
}

func (s *InstanceService) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateInstanceName(name); err != nil {
		return err
	}

	instanceDir := paths.InstanceDir(s.baseDir, name)
	if _, err := os.Stat(instanceDir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Wrap(domain.CategoryState, fmt.Errorf("%q: %w", name, domain.ErrInstanceNotFound))
		}
		return domain.Wrap(domain.CategoryPath, fmt.Errorf("stat instance: %w", err))
	}
	if err := os.RemoveAll(instanceDir); err != nil {
		return domain.Wrap(domain.CategoryPath, fmt.Errorf("delete instance: %w", err))
	}
	logging.FromContext(ctx).Info("deleted instance", zap.String("instance", name))
	return nil
}

// RemoteVersions lists published game versions, newest last.
func (s *InstanceService) RemoteVersions(ctx context.Context, snapshots bool) ([]domain.VersionRecord, error) {
	versions, err := s.env.Versions.Versions(ctx, snapshots)
	if err != nil {
		return nil, err
	}
	versions = slices.Clone(versions)
	slices.Reverse(versions)
	return versions, nil
}

// RemoteLoaders lists published fabric loader versions, newest last.
func (s *InstanceService) RemoteLoaders(ctx context.Context) ([]domain.LoaderVersion, error) {
	loaders, err := s.env.Loaders.Loaders(ctx)
	if err != nil {
		return nil, err
	}
	loaders = slices.Clone(loaders)
	slices.Reverse(loaders)
	return loaders, nil
}

func (s *InstanceService) envFor(name string) loader.Env {
	env := s.env
	env.Paths = paths.ForInstance(s.baseDir, name)
	return env
}

// readPrior returns the state of an installed instance. A missing state
// file means a fresh instance.
func (s *InstanceService) readPrior(ctx context.Context, instanceDir string) (domain.InstanceState, bool, error) {
	prior, err := s.state.Read(ctx, instanceDir)
	switch {
	case err == nil:
		return prior, true, nil
	case errors.Is(err, fs.ErrNotExist):
		return domain.InstanceState{}, false, nil
	default:
		return domain.InstanceState{}, false, err
	}
}

func validateInstanceName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || trimmed != name || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return domain.Wrap(domain.CategoryPath, fmt.Errorf("%q: %w", name, domain.ErrInstanceName))
	}
	return nil
}
