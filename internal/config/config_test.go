package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/mcli/internal/adapters/auth"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	return home
}

func TestLoadWritesDefaultsOnFirstRun(t *testing.T) {
	home := setHome(t)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".minecraft"), cfg.BaseDir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join(home, ".minecraft", "logs", "mcli.log"), cfg.Log.File)
	assert.Equal(t, 10, cfg.Fetch.Workers)
	assert.Equal(t, 5, cfg.Fetch.Retries)
	assert.Equal(t, auth.DefaultClientID, cfg.Auth.ClientID)
	assert.Equal(t, "127.0.0.1:8594", cfg.Auth.ListenAddr)
	assert.Equal(t, StoreKeyring, cfg.Accounts.Store)

	path := filepath.Join(home, ".config", "mcli", "config.toml")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "base_dir")
	assert.Contains(t, string(data), "[endpoints]")
}

func TestLoadReadsFileValues(t *testing.T) {
	home := setHome(t)
	path := filepath.Join(home, ".config", "mcli", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`base_dir = "~/games/mc"

[log]
level = "debug"

[fetch]
workers = 4
rate = 2.5
`), 0o644))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "games", "mc"), cfg.BaseDir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, filepath.Join(home, "games", "mc", "logs", "mcli.log"), cfg.Log.File)
	assert.Equal(t, 4, cfg.Fetch.Workers)
	assert.Equal(t, 5, cfg.Fetch.Retries)
	assert.InDelta(t, 2.5, cfg.Fetch.Rate, 0.001)
}

func TestLoadEmptyLogFileDisablesFileLogging(t *testing.T) {
	home := setHome(t)
	path := filepath.Join(home, ".config", "mcli", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[log]\nfile = \"\"\n"), 0o644))

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Empty(t, cfg.Log.File)
}

func TestLoadZeroRetriesIsKept(t *testing.T) {
	home := setHome(t)
	path := filepath.Join(home, ".config", "mcli", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[fetch]\nretries = 0\n"), 0o644))

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Fetch.Retries)

	require.NoError(t, os.WriteFile(path, []byte("[fetch]\nretries = -2\n"), 0o644))
	cfg, err = Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Fetch.Retries)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	home := setHome(t)
	t.Setenv("MCLI_BASE_DIR", filepath.Join(home, "elsewhere"))
	t.Setenv("MCLI_ENDPOINTS_MANIFEST", "http://127.0.0.1:9/manifest.json")
	t.Setenv("MCLI_LOG_FILE", filepath.Join(home, "mcli.log"))
	t.Setenv("MCLI_ACCOUNTS_STORE", StorePass)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, StorePass, cfg.Accounts.Store)

	assert.Equal(t, filepath.Join(home, "elsewhere"), cfg.BaseDir)
	assert.Equal(t, "http://127.0.0.1:9/manifest.json", cfg.Endpoints.Manifest)
	assert.Equal(t, filepath.Join(home, "mcli.log"), cfg.Log.File)
}

func TestLoadHonoursXDGConfigHome(t *testing.T) {
	setHome(t)
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	_, err := Load(viper.New())
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(xdg, "mcli", "config.toml"))
	assert.NoError(t, err)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	home := setHome(t)
	path := filepath.Join(home, ".config", "mcli", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("base_dir = [unterminated"), 0o644))

	_, err := Load(viper.New())
	assert.ErrorContains(t, err, "read config file")
}

func TestLoadRejectsUnknownTokenStore(t *testing.T) {
	setHome(t)
	t.Setenv("MCLI_ACCOUNTS_STORE", "vault")

	_, err := Load(viper.New())
	assert.ErrorContains(t, err, `accounts.store "vault"`)
}
