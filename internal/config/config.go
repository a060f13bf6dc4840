// Package config loads the launcher settings from a TOML file with
// MCLI_ environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/mcli/internal/adapters/api/fabric"
	"github.com/bnema/mcli/internal/adapters/api/mojang"
	"github.com/bnema/mcli/internal/adapters/auth"
	"github.com/bnema/mcli/internal/atomicfile"
	"github.com/bnema/mcli/internal/domain"
	"github.com/bnema/mcli/internal/loader"
	"github.com/bnema/mcli/internal/version"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	appName    = "mcli"
	configName = "config"
	configType = "toml"
	envPrefix  = "MCLI"
	configMode = 0o644

	defaultBaseDirName = ".minecraft"
	defaultLogLevel    = "info"
	defaultWorkers     = 10
	logFileKey         = "log.file"
)

type Config struct {
	BaseDir   string          `mapstructure:"base_dir" toml:"base_dir"`
	Log       LogConfig       `mapstructure:"log" toml:"log"`
	Fetch     FetchConfig     `mapstructure:"fetch" toml:"fetch"`
	Endpoints EndpointsConfig `mapstructure:"endpoints" toml:"endpoints"`
	Auth      AuthConfig      `mapstructure:"auth" toml:"auth"`
	Launcher  LauncherConfig  `mapstructure:"launcher" toml:"launcher"`
	Accounts  AccountsConfig  `mapstructure:"accounts" toml:"accounts"`
}

type LogConfig struct {
	Level string `mapstructure:"level" toml:"level"`
	// File defaults to <base_dir>/logs/mcli.log. Set it to "" to disable
	// file logging.
	File string `mapstructure:"file" toml:"file,omitempty"`
}

type FetchConfig struct {
	Workers int `mapstructure:"workers" toml:"workers"`
	Retries int `mapstructure:"retries" toml:"retries"`
	// Rate caps requests per second. Zero means unlimited.
	Rate float64 `mapstructure:"rate" toml:"rate"`
}

type EndpointsConfig struct {
	Manifest   string `mapstructure:"manifest" toml:"manifest"`
	FabricMeta string `mapstructure:"fabric_meta" toml:"fabric_meta"`
	Resources  string `mapstructure:"resources" toml:"resources"`
}

type AuthConfig struct {
	ClientID     string `mapstructure:"client_id" toml:"client_id"`
	ListenAddr   string `mapstructure:"listen_addr" toml:"listen_addr"`
	RedirectURL  string `mapstructure:"redirect_url" toml:"redirect_url"`
	AuthorizeURL string `mapstructure:"authorize_url" toml:"authorize_url"`
	TokenURL     string `mapstructure:"token_url" toml:"token_url"`
	XboxLiveURL  string `mapstructure:"xbox_live_url" toml:"xbox_live_url"`
	XSTSURL      string `mapstructure:"xsts_url" toml:"xsts_url"`
	LoginURL     string `mapstructure:"login_url" toml:"login_url"`
	ProfileURL   string `mapstructure:"profile_url" toml:"profile_url"`
}

type LauncherConfig struct {
	Name    string `mapstructure:"name" toml:"name"`
	Version string `mapstructure:"version" toml:"version"`
}

// Token store backends. keyring and pass fall back to private files when
// the backend is unavailable.
const (
	StoreKeyring = "keyring"
	StorePass    = "pass"
	StoreFile    = "file"
)

type AccountsConfig struct {
	Store string `mapstructure:"store" toml:"store"`
}

func Default(homeDir string) Config {
	baseDir := filepath.Join(homeDir, defaultBaseDirName)
	authDefaults := auth.DefaultConfig()
	return Config{
		BaseDir: baseDir,
		Log: LogConfig{
			Level: defaultLogLevel,
		},
		Fetch: FetchConfig{
			Workers: defaultWorkers,
			Retries: domain.DefaultRetries,
		},
		Endpoints: EndpointsConfig{
			Manifest:   mojang.DefaultManifestURL,
			FabricMeta: fabric.DefaultMetaURL,
			Resources:  loader.DefaultResourcesURL,
		},
		Auth: AuthConfig{
			ClientID:     authDefaults.ClientID,
			ListenAddr:   authDefaults.ListenAddr,
			RedirectURL:  authDefaults.RedirectURL,
			AuthorizeURL: authDefaults.AuthorizeURL,
			TokenURL:     authDefaults.TokenURL,
			XboxLiveURL:  authDefaults.XboxLiveURL,
			XSTSURL:      authDefaults.XSTSURL,
			LoginURL:     authDefaults.LoginURL,
			ProfileURL:   authDefaults.ProfileURL,
		},
		Launcher: LauncherConfig{
			Name:    appName,
			Version: version.Version,
		},
		Accounts: AccountsConfig{Store: StoreKeyring},
	}
}

// Path is $XDG_CONFIG_HOME/mcli/config.toml, or ~/.config/mcli/config.toml.
func Path() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		dir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(dir, appName, configName+"."+configType), nil
}

// Load reads the config file, writing the defaults first when it does not
// exist yet.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	path, err := Path()
	if err != nil {
		return Config{}, err
	}

	defaults := Default(homeDir)
	if err := writeDefaultIfMissing(path, defaults); err != nil {
		return Config{}, err
	}

	setDefaults(v, defaults)
	v.SetConfigFile(path)
	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(logFileKey); err != nil {
		return Config{}, fmt.Errorf("bind %s: %w", logFileKey, err)
	}

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config file: %w", err)
	}

	cfg.BaseDir = expandHome(cfg.BaseDir, homeDir)
	if cfg.BaseDir == "" {
		return Config{}, errors.New("base_dir is empty")
	}
	if !v.IsSet(logFileKey) {
		cfg.Log.File = defaultLogFile(cfg.BaseDir)
	}
	cfg.Log.File = expandHome(cfg.Log.File, homeDir)
	if cfg.Fetch.Workers <= 0 {
		cfg.Fetch.Workers = defaultWorkers
	}
	if cfg.Fetch.Retries < 0 {
		cfg.Fetch.Retries = domain.DefaultRetries
	}
	switch cfg.Accounts.Store {
	case StoreKeyring, StorePass, StoreFile:
	default:
		return Config{}, fmt.Errorf("accounts.store %q: want %s, %s or %s", cfg.Accounts.Store, StoreKeyring, StorePass, StoreFile)
	}

	return cfg, nil
}

func (c Config) TOML() ([]byte, error) {
	return toml.Marshal(c)
}

func setDefaults(v *viper.Viper, defaults Config) {
	v.SetDefault("base_dir", defaults.BaseDir)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("fetch.workers", defaults.Fetch.Workers)
	v.SetDefault("fetch.retries", defaults.Fetch.Retries)
	v.SetDefault("fetch.rate", defaults.Fetch.Rate)
	v.SetDefault("endpoints.manifest", defaults.Endpoints.Manifest)
	v.SetDefault("endpoints.fabric_meta", defaults.Endpoints.FabricMeta)
	v.SetDefault("endpoints.resources", defaults.Endpoints.Resources)
	v.SetDefault("auth.client_id", defaults.Auth.ClientID)
	v.SetDefault("auth.listen_addr", defaults.Auth.ListenAddr)
	v.SetDefault("auth.redirect_url", defaults.Auth.RedirectURL)
	v.SetDefault("auth.authorize_url", defaults.Auth.AuthorizeURL)
	v.SetDefault("auth.token_url", defaults.Auth.TokenURL)
	v.SetDefault("auth.xbox_live_url", defaults.Auth.XboxLiveURL)
	v.SetDefault("auth.xsts_url", defaults.Auth.XSTSURL)
	v.SetDefault("auth.login_url", defaults.Auth.LoginURL)
	v.SetDefault("auth.profile_url", defaults.Auth.ProfileURL)
	v.SetDefault("launcher.name", defaults.Launcher.Name)
	v.SetDefault("launcher.version", defaults.Launcher.Version)
	v.SetDefault("accounts.store", defaults.Accounts.Store)
}

func writeDefaultIfMissing(path string, defaults Config) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat config file: %w", err)
	}

	data, err := defaults.TOML()
	if err != nil {
		return fmt.Errorf("encode default config: %w", err)
	}
	if err := atomicfile.Write(path, data, configMode); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}

func defaultLogFile(baseDir string) string {
	return filepath.Join(baseDir, "logs", appName+".log")
}

func expandHome(path string, homeDir string) string {
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
