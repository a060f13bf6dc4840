package loader

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/mcli/internal/domain"
	"github.com/bnema/mcli/internal/logging"
	"go.uber.org/zap"
)

// Fabric overlays the fabric loader on an owned Vanilla unit. Game options
// and jvm arguments come from the base unchanged; downloads, classpath and
// state are the base's plus the loader's own libraries and component.
type Fabric struct {
	base          *Vanilla
	loaderVersion string
	meta          domain.Meta
}

var (
	_ Installer = (*Fabric)(nil)
	_ Launcher  = (*Fabric)(nil)
)

// NewFabric resolves the loader for the base's game version. An empty
// loaderVersion selects the best published one.
func NewFabric(ctx context.Context, env Env, base *Vanilla, loaderVersion string) (*Fabric, error) {
	if loaderVersion == "" {
		best, err := env.Loaders.BestLoaderVersion(ctx, base.Version())
		if err != nil {
			return nil, err
		}
		loaderVersion = best
	}
	return newFabric(ctx, env, base, loaderVersion)
}

// LoadFabric rebuilds the overlay of an installed instance from its state.
func LoadFabric(ctx context.Context, env Env, base *Vanilla, state domain.InstanceState) (*Fabric, error) {
	component, err := state.Game(domain.ComponentFabric)
	if err != nil {
		return nil, domain.Wrap(domain.CategoryState, err)
	}
	return newFabric(ctx, env, base, component.Version)
}

func newFabric(ctx context.Context, env Env, base *Vanilla, loaderVersion string) (*Fabric, error) {
	id := FabricMetaID(loaderVersion, base.Version())
	meta, err := env.Cache.Meta(ctx, domain.ComponentFabric, id, func(context.Context) (string, error) {
		return env.Loaders.ProfileURL(base.Version(), loaderVersion), nil
	})
	if err != nil {
		return nil, err
	}

	return &Fabric{base: base, loaderVersion: loaderVersion, meta: meta}, nil
}

// FabricMetaID names the cached loader profile of a game version.
func FabricMetaID(loaderVersion, gameVersion string) string {
	return fabricMetaPrefix + loaderVersion + "-" + gameVersion
}

func (f *Fabric) LoaderVersion() string {
	return f.loaderVersion
}

// Plan appends the loader libraries to the base's download set. Loader
// libraries carry no platform rules.
func (f *Fabric) Plan(ctx context.Context) (domain.DownloadSet, error) {
	set, err := f.base.Plan(ctx)
	if err != nil {
		return domain.DownloadSet{}, err
	}

	for _, lib := range f.meta.Libraries {
		entry, sha1, err := f.libraryEntry(lib)
		if err != nil {
			return domain.DownloadSet{}, domain.Wrap(domain.CategoryDownload, fmt.Errorf("plan fabric %s: %w", f.loaderVersion, err))
		}
		if err := enqueue(&set, entry, sha1); err != nil {
			return domain.DownloadSet{}, domain.Wrap(domain.CategoryDownload, fmt.Errorf("plan fabric %s: %w", f.loaderVersion, err))
		}
	}

	logging.FromContext(ctx).Debug("planned fabric downloads",
		zap.String("loader", f.loaderVersion),
		zap.Int("entries", set.Len()))
	return set, nil
}

func (f *Fabric) libraryEntry(lib domain.Library) (domain.DownloadEntry, string, error) {
	dest, err := libraryPath(f.base.layout.libraries, lib)
	if err != nil {
		return domain.DownloadEntry{}, "", err
	}

	if artifact := lib.Downloads.Artifact; artifact != nil {
		return domain.DownloadEntry{URL: artifact.URL, Path: dest}, artifact.SHA1, nil
	}

	coordinate, err := domain.ParseCoordinate(lib.Name)
	if err != nil {
		return domain.DownloadEntry{}, "", err
	}
	url := strings.TrimRight(lib.URL, "/") + "/" + coordinate.Path()
	return domain.DownloadEntry{URL: url, Path: dest}, lib.SHA1, nil
}

// State is the base's state plus the loader component.
func (f *Fabric) State() domain.InstanceState {
	state := f.base.State().Clone()
	state.Scenario = domain.ScenarioFabric
	state.Components[domain.ComponentFabric] = &domain.GameComponent{Version: f.loaderVersion}
	return state
}

func (f *Fabric) Classpath() (string, error) {
	base, err := f.base.Classpath()
	if err != nil {
		return "", err
	}

	entries := []string{base}
	for _, lib := range f.meta.Libraries {
		dest, err := libraryPath(f.base.layout.libraries, lib)
		if err != nil {
			return "", domain.Wrap(domain.CategoryLaunch, err)
		}
		entries = append(entries, dest)
	}
	return joinClasspath(entries), nil
}

func (f *Fabric) GameOptions(player domain.Player) ([]string, error) {
	return f.base.GameOptions(player)
}

func (f *Fabric) JVMArguments(classpath string) ([]string, error) {
	return f.base.JVMArguments(classpath)
}

func (f *Fabric) MainClass() string {
	return f.meta.MainClass
}
