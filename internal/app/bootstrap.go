package app

import (
	"context"
	"fmt"
	"os"

	"palettectl/internal/config"
	"palettectl/pkg/logging"
)

// Application is the main application structure that bootstraps and runs palettectl
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads configuration, sets up logging and creates the services.
func NewApplication(cfg *Config) (*Application, error) {
	if cfg.LogOutput == nil {
		cfg.LogOutput = os.Stderr
	}

	// Bootstrap level until the configured one is known
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}
	logging.InitForCLI(appLogLevel, cfg.LogOutput)

	var paletteCfg config.PaletteConfig
	var err error

	if cfg.ConfigPath != "" {
		paletteCfg, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		paletteCfg, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration")
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	cfg.PaletteConfig = &paletteCfg

	if !cfg.Debug {
		// Validate already rejected unknown levels
		level, _ := logging.ParseLevel(paletteCfg.LogLevel)
		logging.InitForCLI(level, cfg.LogOutput)
	}

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// Services returns the initialized services.
func (a *Application) Services() *Services {
	return a.services
}

// Config returns the resolved application configuration.
func (a *Application) Config() *Config {
	return a.config
}

// Run starts the interactive UI and blocks until the user quits or ctx is done.
func (a *Application) Run(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.services)
}
