package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/bnema/mcli/internal/adapters/api"
	"github.com/bnema/mcli/internal/adapters/api/fabric"
	"github.com/bnema/mcli/internal/adapters/api/mojang"
	"github.com/bnema/mcli/internal/adapters/auth"
	"github.com/bnema/mcli/internal/adapters/fetch"
	"github.com/bnema/mcli/internal/adapters/metacache"
	"github.com/bnema/mcli/internal/adapters/process"
	"github.com/bnema/mcli/internal/adapters/render/list"
	"github.com/bnema/mcli/internal/adapters/repo/jsonfile"
	chainstore "github.com/bnema/mcli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/mcli/internal/adapters/secrets/file"
	keyringstore "github.com/bnema/mcli/internal/adapters/secrets/keyring"
	passstore "github.com/bnema/mcli/internal/adapters/secrets/pass"
	"github.com/bnema/mcli/internal/adapters/state"
	"github.com/bnema/mcli/internal/application"
	"github.com/bnema/mcli/internal/config"
	"github.com/bnema/mcli/internal/domain"
	"github.com/bnema/mcli/internal/loader"
	"github.com/bnema/mcli/internal/logging"
	"github.com/bnema/mcli/internal/paths"
	"github.com/bnema/mcli/internal/ports"
	"github.com/go-resty/resty/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Large jars and native bundles can take a while on slow links.
const transferTimeout = 10 * time.Minute

type app struct {
	cfg        config.Config
	configPath string
	logger     *zap.Logger
	closeLog   func()
	instances  *application.InstanceService
	accounts   *application.AccountService
	engine     *fetch.Engine
	renderList func(list.Listing) (string, error)
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	configPath, err := config.Path()
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	logger, closeLog, err := logging.New(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	userAgent := fmt.Sprintf("%s/%s", cfg.Launcher.Name, cfg.Launcher.Version)
	client := api.NewClient(userAgent)
	source := api.NewSource(client)

	engine := fetch.New(
		resty.New().SetTimeout(transferTimeout).SetHeader("User-Agent", userAgent),
		fetch.Options{Workers: cfg.Fetch.Workers, Rate: cfg.Fetch.Rate},
	)

	cache, err := metacache.FromRegistry(source, paths.Shared(cfg.BaseDir))
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("wire metadata cache: %w", err)
	}

	env := loader.Env{
		Platform:     domain.CurrentPlatform(),
		Versions:     mojang.NewClient(source, cfg.Endpoints.Manifest),
		Loaders:      fabric.NewClient(source, cfg.Endpoints.FabricMeta),
		Cache:        cache,
		ResourcesURL: cfg.Endpoints.Resources,
		Launcher:     loader.Identity{Name: cfg.Launcher.Name, Version: cfg.Launcher.Version},
	}
	instances := application.NewInstanceService(cfg.BaseDir, env, state.NewStore(), engine, process.NewLauncher()).
		WithRetries(cfg.Fetch.Retries)

	repo, err := jsonfile.NewRepository(filepath.Join(cfg.BaseDir, jsonfile.FileName))
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("wire account repository: %w", err)
	}

	secrets, err := secretStore(cfg)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("wire secret store: %w", err)
	}

	chain := auth.NewChain(authConfig(cfg.Auth), client)

	return &app{
		cfg:        cfg,
		configPath: configPath,
		logger:     logger,
		closeLog:   closeLog,
		instances:  instances,
		accounts:   application.NewAccountService(repo, secrets, chain),
		engine:     engine,
		renderList: list.Render,
	}, nil
}

func secretStore(cfg config.Config) (ports.SecretStore, error) {
	root := filepath.Join(cfg.BaseDir, "secrets")
	switch cfg.Accounts.Store {
	case config.StoreFile:
		return filestore.NewStore(root), nil
	case config.StorePass:
		return chainstore.NewPassFirstWithFileFallback(passstore.DefaultPrefix, root)
	default:
		return chainstore.NewKeyringFirstWithFileFallback(keyringstore.DefaultService, root)
	}
}

func authConfig(c config.AuthConfig) auth.Config {
	return auth.Config{
		ClientID:     c.ClientID,
		Scopes:       auth.DefaultScopes,
		ListenAddr:   c.ListenAddr,
		RedirectURL:  c.RedirectURL,
		AuthorizeURL: c.AuthorizeURL,
		TokenURL:     c.TokenURL,
		XboxLiveURL:  c.XboxLiveURL,
		XSTSURL:      c.XSTSURL,
		LoginURL:     c.LoginURL,
		ProfileURL:   c.ProfileURL,
	}
}
