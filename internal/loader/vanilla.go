package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bnema/mcli/internal/domain"
	"github.com/bnema/mcli/internal/logging"
	"go.uber.org/zap"
)

// Vanilla is the base unit, planning and launching straight from the game's
// own metadata.
type Vanilla struct {
	env     Env
	layout  layout
	version string
	meta    domain.Meta
	// state is the stored state when launching, or the prior state (possibly
	// empty) when acquiring.
	state domain.InstanceState
}

var (
	_ Installer = (*Vanilla)(nil)
	_ Launcher  = (*Vanilla)(nil)
)

// NewVanilla prepares acquisition of record. prior carries settings of an
// already installed instance that survive re-acquisition.
func NewVanilla(ctx context.Context, env Env, record domain.VersionRecord, prior domain.InstanceState) (*Vanilla, error) {
	l, err := resolveLayout(env.Paths)
	if err != nil {
		return nil, err
	}

	meta, err := env.Cache.Meta(ctx, domain.ComponentMinecraft, record.ID, func(context.Context) (string, error) {
		return record.URL, nil
	})
	if err != nil {
		return nil, err
	}

	return &Vanilla{env: env, layout: l, version: record.ID, meta: meta, state: prior}, nil
}

// LoadVanilla rebuilds the unit of an installed instance from its state. The
// version is only looked up remotely when its metadata is not cached.
func LoadVanilla(ctx context.Context, env Env, state domain.InstanceState) (*Vanilla, error) {
	l, err := resolveLayout(env.Paths)
	if err != nil {
		return nil, err
	}

	game, err := state.Game(domain.ComponentMinecraft)
	if err != nil {
		return nil, domain.Wrap(domain.CategoryState, err)
	}

	meta, err := env.Cache.Meta(ctx, domain.ComponentMinecraft, game.Version, func(ctx context.Context) (string, error) {
		record, err := env.Versions.Resolve(ctx, game.Version, true)
		if err != nil {
			return "", err
		}
		return record.URL, nil
	})
	if err != nil {
		return nil, err
	}

	return &Vanilla{env: env, layout: l, version: game.Version, meta: meta, state: state}, nil
}

func (v *Vanilla) Version() string {
	return v.version
}

func (v *Vanilla) Meta() domain.Meta {
	return v.meta
}

func (v *Vanilla) Plan(ctx context.Context) (domain.DownloadSet, error) {
	set, err := v.plan(ctx)
	if err != nil {
		return domain.DownloadSet{}, domain.Wrap(domain.CategoryDownload, fmt.Errorf("plan %s: %w", v.version, err))
	}

	logging.FromContext(ctx).Debug("planned vanilla downloads",
		zap.String("version", v.version),
		zap.Int("entries", set.Len()))
	return set, nil
}

func (v *Vanilla) plan(ctx context.Context) (domain.DownloadSet, error) {
	set := domain.NewDownloadSet()

	client := v.meta.Downloads.Client
	err := enqueue(&set, domain.DownloadEntry{
		URL:  client.URL,
		Path: v.clientJar(),
	}, client.SHA1)
	if err != nil {
		return domain.DownloadSet{}, err
	}

	for _, lib := range v.meta.Libraries {
		if err := v.planLibrary(&set, lib); err != nil {
			return domain.DownloadSet{}, err
		}
	}

	assetSet := v.assetSet()
	if assetSet == "" {
		return set, nil
	}
	index, err := v.env.Cache.AssetIndex(ctx, assetSet, v.meta.AssetIndex.URL)
	if err != nil {
		return domain.DownloadSet{}, err
	}
	if err := planAssets(&set, v.layout, assetSet, index, v.env.resourcesURL()); err != nil {
		return domain.DownloadSet{}, err
	}
	return set, nil
}

func (v *Vanilla) planLibrary(set *domain.DownloadSet, lib domain.Library) error {
	if artifact := lib.Downloads.Artifact; artifact != nil && lib.AllowedOn(v.env.Platform) {
		dest, err := libraryPath(v.layout.libraries, lib)
		if err != nil {
			return err
		}
		if err := enqueue(set, domain.DownloadEntry{URL: artifact.URL, Path: dest}, artifact.SHA1); err != nil {
			return err
		}
	}

	native, ok, err := lib.NativeArtifact(v.env.Platform)
	if err != nil || !ok {
		return err
	}
	return enqueue(set, domain.DownloadEntry{
		URL:     native.URL,
		Path:    nativePath(v.layout.natives, native),
		Extract: true,
	}, native.SHA1)
}

func (v *Vanilla) assetSet() string {
	if v.meta.AssetIndex.ID != "" {
		return v.meta.AssetIndex.ID
	}
	return v.meta.Assets
}

// State is the descriptor persisted after planning: the resolved game
// version and asset set, the configured java component (or the default
// one) and the wrapper and pre-launch settings of the prior state.
func (v *Vanilla) State() domain.InstanceState {
	state := domain.NewInstanceState(domain.ScenarioVanilla)
	state.Wrapper = v.state.Wrapper
	state.PreLaunch = slices.Clone(v.state.PreLaunch)

	java := &domain.JavaComponent{Path: domain.DefaultJavaPath}
	if existing, err := v.state.Java(); err == nil {
		copied := *existing
		java = &copied
	}
	state.Components[domain.ComponentJava] = java
	state.Components[domain.ComponentMinecraft] = &domain.GameComponent{
		Version:    v.version,
		AssetIndex: v.assetSet(),
	}
	return state
}

func (v *Vanilla) clientJar() string {
	return filepath.Join(v.layout.libraries, filepath.FromSlash(domain.ClientJarPath(v.version)))
}

// Classpath lists every rule permitted library jar in metadata order,
// followed by the client jar.
func (v *Vanilla) Classpath() (string, error) {
	entries := make([]string, 0, len(v.meta.Libraries)+1)
	for _, lib := range v.meta.Libraries {
		if lib.Downloads.Artifact == nil || !lib.AllowedOn(v.env.Platform) {
			continue
		}
		dest, err := libraryPath(v.layout.libraries, lib)
		if err != nil {
			return "", domain.Wrap(domain.CategoryLaunch, err)
		}
		entries = append(entries, dest)
	}
	entries = append(entries, v.clientJar())
	return joinClasspath(entries), nil
}

func (v *Vanilla) GameOptions(player domain.Player) ([]string, error) {
	templates, ok := v.meta.Arguments[domain.ArgumentsGame]
	if !ok {
		return nil, domain.Wrap(domain.CategoryLaunch, fmt.Errorf("%s %s: %w", v.version, domain.ArgumentsGame, domain.ErrArgumentsNotFound))
	}

	game, err := v.state.Game(domain.ComponentMinecraft)
	if err != nil {
		return nil, domain.Wrap(domain.CategoryLaunch, err)
	}
	assetSet, err := game.RequireAssetIndex()
	if err != nil {
		return nil, domain.Wrap(domain.CategoryLaunch, err)
	}

	assetsRoot := v.layout.assets
	if domain.IsLegacyAssetSet(assetSet) {
		assetsRoot = v.layout.resources
	}

	return substitute(templates, map[string]string{
		"auth_player_name":  player.Name,
		"version_name":      v.version,
		"game_directory":    v.layout.instance,
		"assets_root":       assetsRoot,
		"game_assets":       v.layout.resources,
		"assets_index_name": assetSet,
		"auth_uuid":         player.UUID,
		"auth_access_token": player.AccessToken,
		"auth_session":      player.AccessToken,
		"user_type":         player.UserType,
		"version_type":      v.meta.Kind,
		"user_properties":   "{}",
	}), nil
}

// JVMArguments falls back to a minimal library path and classpath pair when
// the metadata has no jvm group. Extra arguments of the java component are
// appended.
func (v *Vanilla) JVMArguments(classpath string) ([]string, error) {
	java, err := v.state.Java()
	if err != nil {
		return nil, domain.Wrap(domain.CategoryLaunch, err)
	}

	var args []string
	if templates, ok := v.meta.Arguments[domain.ArgumentsJVM]; ok {
		args = substitute(templates, map[string]string{
			"natives_directory":   v.layout.natives,
			"launcher_name":       v.env.Launcher.Name,
			"launcher_version":    v.env.Launcher.Version,
			"classpath":           classpath,
			"classpath_separator": ClasspathSeparator,
			"library_directory":   v.layout.libraries,
			"version_name":        v.version,
		})
	} else {
		args = []string{"-Djava.library.path=" + v.layout.natives, "-cp", classpath}
	}

	return append(args, strings.Fields(java.Arguments)...), nil
}

func (v *Vanilla) MainClass() string {
	return v.meta.MainClass
}
