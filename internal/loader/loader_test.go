package loader

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/mcli/internal/domain"
	"github.com/bnema/mcli/internal/paths"
	"github.com/bnema/mcli/internal/ports"
	portmocks "github.com/bnema/mcli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	assetIndexURL = "https://meta.example/indexes/1.19.json"
	iconHash      = "bdf48ef6b5d0d23bbb02e17d04865216179f510a"
	soundHash     = "abcd1234ef567890abcd1234ef567890abcd1234"
)

type fixture struct {
	base     string
	env      Env
	cache    *portmocks.MockMetadataCache
	versions *portmocks.MockVersionResolver
	loaders  *portmocks.MockLoaderAPI
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	base := t.TempDir()
	f := &fixture{
		base:     base,
		cache:    portmocks.NewMockMetadataCache(t),
		versions: portmocks.NewMockVersionResolver(t),
		loaders:  portmocks.NewMockLoaderAPI(t),
	}
	f.env = Env{
		Paths:        paths.ForInstance(base, "survival"),
		Platform:     domain.Platform{Name: "linux", Arch: "64"},
		Versions:     f.versions,
		Loaders:      f.loaders,
		Cache:        f.cache,
		ResourcesURL: "https://resources.example/",
		Launcher:     Identity{Name: "mcli", Version: "1.0.0"},
	}
	return f
}

func (f *fixture) path(rel ...string) string {
	return filepath.Join(append([]string{f.base}, rel...)...)
}

func (f *fixture) expectVanillaMeta(meta domain.Meta, index domain.AssetIndex) {
	f.cache.EXPECT().Meta(mock.Anything, domain.ComponentMinecraft, "1.19.2", mock.Anything).Return(meta, nil)
	f.cache.EXPECT().AssetIndex(mock.Anything, "1.19", assetIndexURL).Return(index, nil).Maybe()
}

func sha1Hex(content string) string {
	sum := sha1.Sum([]byte(content))
	return hex.EncodeToString(sum[:])
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func vanillaMeta() domain.Meta {
	return domain.Meta{
		ID:         "1.19.2",
		Kind:       "release",
		MainClass:  "net.minecraft.client.main.Main",
		AssetIndex: domain.AssetIndexRef{ID: "1.19", URL: assetIndexURL},
		Downloads: domain.MetaDownloads{
			Client: domain.Artifact{URL: "https://libraries.example/client.jar", SHA1: sha1Hex("client")},
		},
		Libraries: []domain.Library{
			{
				Name: "com.mojang:brigadier:1.0.18",
				Downloads: domain.LibraryDownloads{
					Artifact: &domain.Artifact{URL: "https://libraries.example/brigadier.jar", SHA1: sha1Hex("brigadier")},
				},
			},
			{
				Name: "ca.weblite:java-objc-bridge:1.1",
				Downloads: domain.LibraryDownloads{
					Artifact: &domain.Artifact{URL: "https://libraries.example/objc.jar", SHA1: sha1Hex("objc")},
				},
				Rules: []domain.Rule{{Action: domain.RuleAllow, OS: &domain.OSRule{Name: "osx"}}},
			},
			{
				Name:    "org.lwjgl.lwjgl:lwjgl-platform:2.9.4",
				Natives: map[string]string{"linux": "natives-linux", "osx": "natives-osx"},
				Downloads: domain.LibraryDownloads{
					Classifiers: map[string]domain.Artifact{
						"natives-linux": {
							URL:  "https://libraries.example/lwjgl-platform-natives-linux.jar",
							Path: "org/lwjgl/lwjgl/lwjgl-platform/2.9.4/lwjgl-platform-2.9.4-natives-linux.jar",
							SHA1: sha1Hex("natives"),
						},
					},
				},
				Rules: []domain.Rule{{Action: domain.RuleDisallow, OS: &domain.OSRule{Name: "linux"}}},
			},
			{
				Name: "org.lwjgl:lwjgl:3.3.1",
				Downloads: domain.LibraryDownloads{
					Artifact: &domain.Artifact{URL: "https://libraries.example/lwjgl.jar", SHA1: sha1Hex("lwjgl")},
				},
			},
		},
		Arguments: map[string][]string{
			domain.ArgumentsGame: {
				"--username", "${auth_player_name}",
				"--version", "${version_name}",
				"--gameDir", "${game_directory}",
				"--assetsDir", "${assets_root}",
				"--assetIndex", "${assets_index_name}",
				"--uuid", "${auth_uuid}",
				"--accessToken", "${auth_access_token}",
				"--userType", "${user_type}",
				"--versionType", "${version_type}",
				"--clientId", "${clientid}",
			},
			domain.ArgumentsJVM: {
				"-Djava.library.path=${natives_directory}",
				"-Dminecraft.launcher.brand=${launcher_name}",
				"-Dminecraft.launcher.version=${launcher_version}",
				"-cp", "${classpath}",
			},
		},
	}
}

func assetIndex() domain.AssetIndex {
	return domain.AssetIndex{Objects: map[string]domain.AssetObject{
		"minecraft/sounds/x.ogg": {Hash: soundHash, Size: 10},
		"icons/icon_16x16.png":   {Hash: iconHash, Size: 3665},
	}}
}

var record = domain.VersionRecord{ID: "1.19.2", Kind: "release", URL: "https://meta.example/1.19.2.json"}

func TestVanillaPlanEnqueuesEverythingMissing(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.expectVanillaMeta(vanillaMeta(), assetIndex())

	vanilla, err := NewVanilla(context.Background(), f.env, record, domain.InstanceState{})
	require.NoError(t, err)

	set, err := vanilla.Plan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRetries, set.Retries)
	assert.Equal(t, []domain.DownloadEntry{
		{URL: "https://libraries.example/client.jar", Path: f.path("libraries", "com", "mojang", "minecraft", "1.19.2", "minecraft-1.19.2-client.jar")},
		{URL: "https://libraries.example/brigadier.jar", Path: f.path("libraries", "com", "mojang", "brigadier", "1.0.18", "brigadier-1.0.18.jar")},
		{URL: "https://libraries.example/lwjgl-platform-natives-linux.jar", Path: f.path("instances", "survival", "natives", "lwjgl-platform-2.9.4-natives-linux.jar"), Extract: true},
		{URL: "https://libraries.example/lwjgl.jar", Path: f.path("libraries", "org", "lwjgl", "lwjgl", "3.3.1", "lwjgl-3.3.1.jar")},
		{URL: "https://resources.example/bd/" + iconHash, Path: f.path("assets", "objects", "bd", iconHash)},
		{URL: "https://resources.example/ab/" + soundHash, Path: f.path("assets", "objects", "ab", soundHash)},
	}, set.Entries)
}

func TestVanillaPlanIsIdempotentOnceDownloaded(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.expectVanillaMeta(vanillaMeta(), assetIndex())

	vanilla, err := NewVanilla(context.Background(), f.env, record, domain.InstanceState{})
	require.NoError(t, err)

	first, err := vanilla.Plan(context.Background())
	require.NoError(t, err)
	require.False(t, first.Empty())

	contents := map[string]string{
		"https://libraries.example/client.jar":                      "client",
		"https://libraries.example/brigadier.jar":                   "brigadier",
		"https://libraries.example/lwjgl-platform-natives-linux.jar": "natives",
		"https://libraries.example/lwjgl.jar":                       "lwjgl",
	}
	for _, entry := range first.Entries {
		writeFile(t, entry.Path, contents[entry.URL])
	}

	second, err := vanilla.Plan(context.Background())
	require.NoError(t, err)
	assert.True(t, second.Empty(), "unexpected entries: %v", second.Entries)
}

func TestVanillaPlanHashGate(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	meta := vanillaMeta()
	meta.Libraries = nil
	meta.AssetIndex = domain.AssetIndexRef{}
	f.cache.EXPECT().Meta(mock.Anything, domain.ComponentMinecraft, "1.19.2", mock.Anything).Return(meta, nil)

	vanilla, err := NewVanilla(context.Background(), f.env, record, domain.InstanceState{})
	require.NoError(t, err)

	clientJar := f.path("libraries", "com", "mojang", "minecraft", "1.19.2", "minecraft-1.19.2-client.jar")

	writeFile(t, clientJar, "tampered")
	set, err := vanilla.Plan(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())
	assert.Equal(t, clientJar, set.Entries[0].Path)

	writeFile(t, clientJar, "client")
	set, err = vanilla.Plan(context.Background())
	require.NoError(t, err)
	assert.True(t, set.Empty())
}

func TestVanillaPlanLegacyAssetsGoToInstanceResources(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	meta := vanillaMeta()
	meta.Libraries = nil
	meta.AssetIndex = domain.AssetIndexRef{ID: "legacy", URL: "https://meta.example/indexes/legacy.json"}
	f.cache.EXPECT().Meta(mock.Anything, domain.ComponentMinecraft, "1.19.2", mock.Anything).Return(meta, nil)
	f.cache.EXPECT().AssetIndex(mock.Anything, "legacy", "https://meta.example/indexes/legacy.json").Return(domain.AssetIndex{
		Objects: map[string]domain.AssetObject{"sound/x.ogg": {Hash: soundHash}},
	}, nil)
	writeFile(t, f.path("libraries", "com", "mojang", "minecraft", "1.19.2", "minecraft-1.19.2-client.jar"), "client")

	vanilla, err := NewVanilla(context.Background(), f.env, record, domain.InstanceState{})
	require.NoError(t, err)

	set, err := vanilla.Plan(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())
	assert.Equal(t, f.path("instances", "survival", "resources", "sound", "x.ogg"), set.Entries[0].Path)
	assert.Equal(t, "https://resources.example/ab/"+soundHash, set.Entries[0].URL)

	writeFile(t, set.Entries[0].Path, "anything")
	set, err = vanilla.Plan(context.Background())
	require.NoError(t, err)
	assert.True(t, set.Empty())
}

func TestVanillaPlanQueuesSharedAssetObjectOnce(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	meta := vanillaMeta()
	meta.Libraries = nil
	f.expectVanillaMeta(meta, domain.AssetIndex{Objects: map[string]domain.AssetObject{
		"minecraft/sounds/a.ogg": {Hash: soundHash},
		"minecraft/sounds/b.ogg": {Hash: soundHash},
	}})
	writeFile(t, f.path("libraries", "com", "mojang", "minecraft", "1.19.2", "minecraft-1.19.2-client.jar"), "client")

	vanilla, err := NewVanilla(context.Background(), f.env, record, domain.InstanceState{})
	require.NoError(t, err)

	set, err := vanilla.Plan(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())
	assert.Equal(t, f.path("assets", "objects", "ab", soundHash), set.Entries[0].Path)
}

func TestVanillaPlanFailsWithoutNativeClassifier(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.env.Platform = domain.Platform{Name: "osx", Arch: "64"}
	f.expectVanillaMeta(vanillaMeta(), assetIndex())

	vanilla, err := NewVanilla(context.Background(), f.env, record, domain.InstanceState{})
	require.NoError(t, err)

	_, err = vanilla.Plan(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLibraryNoClassifiers)
	category, _ := domain.CategoryOf(err)
	assert.Equal(t, domain.CategoryDownload, category)
}

func TestCollectURLsWritesStateOnlyAfterPlanning(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.env.Platform = domain.Platform{Name: "osx", Arch: "64"}
	f.expectVanillaMeta(vanillaMeta(), assetIndex())
	store := portmocks.NewMockStateStore(t)

	vanilla, err := NewVanilla(context.Background(), f.env, record, domain.InstanceState{})
	require.NoError(t, err)

	_, err = CollectURLs(context.Background(), vanilla, store, f.path("instances", "survival"))
	assert.ErrorIs(t, err, domain.ErrLibraryNoClassifiers)
	store.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything)
}

func TestCollectURLsPersistsVanillaState(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.expectVanillaMeta(vanillaMeta(), assetIndex())
	store := portmocks.NewMockStateStore(t)
	instanceDir := f.path("instances", "survival")

	prior := domain.NewInstanceState(domain.ScenarioFabric)
	prior.Components[domain.ComponentJava] = &domain.JavaComponent{Path: "/opt/java/bin/java", Arguments: "-Xmx2G"}
	prior.Components[domain.ComponentFabric] = &domain.GameComponent{Version: "0.14.9"}
	prior.Wrapper = "gamemoderun"

	want := domain.NewInstanceState(domain.ScenarioVanilla)
	want.Wrapper = "gamemoderun"
	want.Components[domain.ComponentJava] = &domain.JavaComponent{Path: "/opt/java/bin/java", Arguments: "-Xmx2G"}
	want.Components[domain.ComponentMinecraft] = &domain.GameComponent{Version: "1.19.2", AssetIndex: "1.19"}
	store.EXPECT().Write(mock.Anything, want, instanceDir).Return(nil).Once()

	vanilla, err := NewVanilla(context.Background(), f.env, record, prior)
	require.NoError(t, err)

	set, err := CollectURLs(context.Background(), vanilla, store, instanceDir)
	require.NoError(t, err)
	assert.Equal(t, 6, set.Len())
}

func TestVanillaStateDefaultsJava(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.expectVanillaMeta(vanillaMeta(), assetIndex())

	vanilla, err := NewVanilla(context.Background(), f.env, record, domain.InstanceState{})
	require.NoError(t, err)

	state := vanilla.State()
	assert.Equal(t, domain.ScenarioVanilla, state.Scenario)
	assert.Equal(t, []string{domain.ComponentJava, domain.ComponentMinecraft}, state.ComponentKeys())

	java, err := state.Java()
	require.NoError(t, err)
	assert.Equal(t, &domain.JavaComponent{Path: "java"}, java)
}

func loadedVanilla(t *testing.T, f *fixture, meta domain.Meta, state domain.InstanceState) *Vanilla {
	t.Helper()

	f.cache.EXPECT().Meta(mock.Anything, domain.ComponentMinecraft, "1.19.2", mock.Anything).Return(meta, nil)
	vanilla, err := LoadVanilla(context.Background(), f.env, state)
	require.NoError(t, err)
	return vanilla
}

func installedState(scenario domain.Scenario) domain.InstanceState {
	state := domain.NewInstanceState(scenario)
	state.Components[domain.ComponentJava] = &domain.JavaComponent{Path: "java"}
	state.Components[domain.ComponentMinecraft] = &domain.GameComponent{Version: "1.19.2", AssetIndex: "1.19"}
	return state
}

func TestVanillaClasspathOrder(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	vanilla := loadedVanilla(t, f, vanillaMeta(), installedState(domain.ScenarioVanilla))

	classpath, err := vanilla.Classpath()
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		f.path("libraries", "com", "mojang", "brigadier", "1.0.18", "brigadier-1.0.18.jar"),
		f.path("libraries", "org", "lwjgl", "lwjgl", "3.3.1", "lwjgl-3.3.1.jar"),
		f.path("libraries", "com", "mojang", "minecraft", "1.19.2", "minecraft-1.19.2-client.jar"),
	}, ClasspathSeparator), classpath)
	assert.False(t, strings.HasPrefix(classpath, ClasspathSeparator))
	assert.False(t, strings.HasSuffix(classpath, ClasspathSeparator))
}

func TestLoadVanillaResolvesURLOnlyOnCacheMiss(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.versions.EXPECT().Resolve(mock.Anything, "1.19.2", true).Return(record, nil).Once()
	f.cache.EXPECT().Meta(mock.Anything, domain.ComponentMinecraft, "1.19.2", mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string, _ string, url ports.URLFunc) (domain.Meta, error) {
			location, err := url(ctx)
			require.NoError(t, err)
			assert.Equal(t, record.URL, location)
			return vanillaMeta(), nil
		})

	_, err := LoadVanilla(context.Background(), f.env, installedState(domain.ScenarioVanilla))
	require.NoError(t, err)
}

func TestLoadVanillaRequiresGameComponent(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	_, err := LoadVanilla(context.Background(), f.env, domain.NewInstanceState(domain.ScenarioVanilla))
	assert.ErrorIs(t, err, domain.ErrComponentNotFound)
}

func TestVanillaGameOptions(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	vanilla := loadedVanilla(t, f, vanillaMeta(), installedState(domain.ScenarioVanilla))

	player := domain.Player{Name: "Steve", UUID: "uuid-1", AccessToken: "token-1", UserType: domain.UserTypeMSA}
	args, err := vanilla.GameOptions(player)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"--username", "Steve",
		"--version", "1.19.2",
		"--gameDir", f.path("instances", "survival"),
		"--assetsDir", f.path("assets"),
		"--assetIndex", "1.19",
		"--uuid", "uuid-1",
		"--accessToken", "token-1",
		"--userType", "msa",
		"--versionType", "release",
		"--clientId", "${clientid}",
	}, args)
}

func TestVanillaGameOptionsErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing game group", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		meta := vanillaMeta()
		delete(meta.Arguments, domain.ArgumentsGame)
		vanilla := loadedVanilla(t, f, meta, installedState(domain.ScenarioVanilla))

		_, err := vanilla.GameOptions(domain.OfflinePlayer("Steve"))
		assert.ErrorIs(t, err, domain.ErrArgumentsNotFound)
		category, _ := domain.CategoryOf(err)
		assert.Equal(t, domain.CategoryLaunch, category)
	})

	t.Run("missing asset index", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		state := installedState(domain.ScenarioVanilla)
		state.Components[domain.ComponentMinecraft] = &domain.GameComponent{Version: "1.19.2"}
		vanilla := loadedVanilla(t, f, vanillaMeta(), state)

		_, err := vanilla.GameOptions(domain.OfflinePlayer("Steve"))
		assert.ErrorIs(t, err, domain.ErrFieldNotFound)
	})
}

func TestVanillaJVMArguments(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	state := installedState(domain.ScenarioVanilla)
	state.Components[domain.ComponentJava] = &domain.JavaComponent{Path: "java", Arguments: " -Xmx4G  -XX:+UseG1GC "}
	vanilla := loadedVanilla(t, f, vanillaMeta(), state)

	args, err := vanilla.JVMArguments("a.jar:b.jar")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"-Djava.library.path=" + f.path("instances", "survival", "natives"),
		"-Dminecraft.launcher.brand=mcli",
		"-Dminecraft.launcher.version=1.0.0",
		"-cp", "a.jar:b.jar",
		"-Xmx4G", "-XX:+UseG1GC",
	}, args)
}

func TestVanillaJVMArgumentsFallback(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	meta := vanillaMeta()
	delete(meta.Arguments, domain.ArgumentsJVM)
	vanilla := loadedVanilla(t, f, meta, installedState(domain.ScenarioVanilla))

	args, err := vanilla.JVMArguments("cp")
	require.NoError(t, err)
	assert.Equal(t, []string{"-Djava.library.path=" + f.path("instances", "survival", "natives"), "-cp", "cp"}, args)
}

func TestSubstituteKeepsUnknownPlaceholders(t *testing.T) {
	got := substitute([]string{"${a}-${b}", "${c}", "plain"}, map[string]string{"a": "1", "b": "2"})
	assert.Equal(t, []string{"1-2", "${c}", "plain"}, got)
}

func TestJoinClasspathSkipsEmptyEntries(t *testing.T) {
	sep := ClasspathSeparator
	assert.Equal(t, "a"+sep+"b"+sep+"c", joinClasspath([]string{"a" + sep + "b" + sep, "", "c"}))
}
