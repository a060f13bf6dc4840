package state

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/mcli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "instances", "survival")
	store := NewStore()

	state := domain.NewInstanceState(domain.ScenarioFabric)
	state.Components[domain.ComponentMinecraft] = &domain.GameComponent{Version: "1.19.2", AssetIndex: "1.19"}
	state.Components[domain.ComponentFabric] = &domain.GameComponent{Version: "0.14.10"}
	state.Components[domain.ComponentJava] = &domain.JavaComponent{Path: "/usr/bin/java", Arguments: "-Xmx4G"}
	state.Wrapper = "gamemoderun"
	state.PreLaunch = []string{"echo ready"}

	require.NoError(t, store.Write(context.Background(), state, dir))

	got, err := store.Read(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, state, got)
}

func TestStoreReadsUntaggedComponents(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	raw := `{
		"scenario": "vanilla",
		"components": {
			"java": {"path": "java", "arguments": null},
			"net.minecraft": {"asset_index": "1.19", "version": "1.19.2"}
		},
		"wrapper": null,
		"prelaunch_cmds": null
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(raw), 0o644))

	state, err := NewStore().Read(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, domain.ScenarioVanilla, state.Scenario)

	java, err := state.Java()
	require.NoError(t, err)
	assert.Equal(t, &domain.JavaComponent{Path: "java"}, java)

	game, err := state.Game(domain.ComponentMinecraft)
	require.NoError(t, err)
	assert.Equal(t, "1.19", game.AssetIndex)
	assert.Empty(t, state.Wrapper)
}

func TestStoreWriteOverwritesPriorDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewStore()

	first := domain.NewInstanceState(domain.ScenarioFabric)
	first.Components[domain.ComponentFabric] = &domain.GameComponent{Version: "0.14.9"}
	require.NoError(t, store.Write(context.Background(), first, dir))

	second := domain.NewInstanceState(domain.ScenarioVanilla)
	second.Components[domain.ComponentMinecraft] = &domain.GameComponent{Version: "1.19.2"}
	require.NoError(t, store.Write(context.Background(), second, dir))

	got, err := store.Read(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestStoreReadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    error
	}{
		{name: "missing", want: domain.ErrStateUnreadable},
		{name: "corrupt", content: `{"scenario": `, want: domain.ErrStateUnreadable},
		{name: "unknown scenario", content: `{"scenario": "forge", "components": {}}`, want: domain.ErrScenarioUnknown},
		{name: "shapeless component", content: `{"scenario": "vanilla", "components": {"java": {}}}`, want: domain.ErrMalformedDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			if tt.content != "" {
				require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(tt.content), 0o644))
			}

			_, err := NewStore().Read(context.Background(), dir)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			category, ok := domain.CategoryOf(err)
			require.True(t, ok)
			assert.Equal(t, domain.CategoryState, category)
		})
	}
}
