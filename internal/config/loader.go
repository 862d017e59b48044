package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"palettectl/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd
var osGetenv = os.Getenv

const (
	userConfigDir    = ".config/palettectl"
	projectConfigDir = ".palettectl"
	configFileName   = "config.yaml"
	dotEnvFileName   = ".env"

	envLogLevel  = "PALETTECTL_LOG_LEVEL"
	envTheme     = "PALETTECTL_THEME"
	envFeedback  = "PALETTECTL_FEEDBACK_MS"
	envSeed      = "PALETTECTL_SEED"
	envClipboard = "PALETTECTL_CLIPBOARD"
)

// LoadConfig loads the configuration by layering defaults, user, project and environment settings.
func LoadConfig() (PaletteConfig, error) {
	config := DefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if config, err = overlayFile(config, userConfigPath); err != nil {
		return PaletteConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if config, err = overlayFile(config, projectConfigPath); err != nil {
		return PaletteConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	if err := loadDotEnv(); err != nil {
		return PaletteConfig{}, fmt.Errorf("error loading %s: %w", dotEnvFileName, err)
	}
	config, err = applyEnv(config)
	if err != nil {
		return PaletteConfig{}, err
	}

	if err := config.Validate(); err != nil {
		return PaletteConfig{}, err
	}
	return config, nil
}

// LoadConfigFromPath loads a single YAML file on top of the defaults, then the environment.
func LoadConfigFromPath(path string) (PaletteConfig, error) {
	fileConfig, err := loadConfigFromFile(path)
	if err != nil {
		return PaletteConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	config := mergeConfigs(DefaultConfig(), fileConfig)
	if config, err = applyEnv(config); err != nil {
		return PaletteConfig{}, err
	}
	if err := config.Validate(); err != nil {
		return PaletteConfig{}, err
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadDotEnv populates the process environment from ./.env without overriding
// variables that are already set.
var loadDotEnv = dotEnvLoader

func dotEnvLoader() error {
	wd, err := osGetwd()
	if err != nil {
		return nil
	}
	path := filepath.Join(wd, dotEnvFileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	logging.Debug("Config", "Loading environment from %s", path)
	return godotenv.Load(path)
}

func overlayFile(base PaletteConfig, path string) (PaletteConfig, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return PaletteConfig{}, err
	}
	logging.Debug("Config", "Merged configuration from %s", path)
	return mergeConfigs(base, overlay), nil
}

// loadConfigFromFile loads a PaletteConfig from a YAML file.
func loadConfigFromFile(filePath string) (PaletteConfig, error) {
	var config PaletteConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return PaletteConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return PaletteConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in overlay are ignored.
func mergeConfigs(base, overlay PaletteConfig) PaletteConfig {
	merged := base

	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}
	if overlay.UI.Theme != "" {
		merged.UI.Theme = overlay.UI.Theme
	}
	if overlay.UI.FeedbackDuration != 0 {
		merged.UI.FeedbackDuration = overlay.UI.FeedbackDuration
	}
	if overlay.UI.Mouse != nil {
		merged.UI.Mouse = overlay.UI.Mouse
	}
	if overlay.Clipboard.Enabled != nil {
		merged.Clipboard.Enabled = overlay.Clipboard.Enabled
	}
	if overlay.Generator.Seed != nil {
		merged.Generator.Seed = overlay.Generator.Seed
	}

	return merged
}

// applyEnv overlays PALETTECTL_* variables.
func applyEnv(config PaletteConfig) (PaletteConfig, error) {
	if v := osGetenv(envLogLevel); v != "" {
		config.LogLevel = v
	}
	if v := osGetenv(envTheme); v != "" {
		config.UI.Theme = Theme(strings.ToLower(v))
	}
	if v := osGetenv(envFeedback); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return PaletteConfig{}, fmt.Errorf("invalid %s %q: %w", envFeedback, v, err)
		}
		config.UI.FeedbackDuration = time.Duration(ms) * time.Millisecond
	}
	if v := osGetenv(envSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return PaletteConfig{}, fmt.Errorf("invalid %s %q: %w", envSeed, v, err)
		}
		config.Generator.Seed = &seed
	}
	if v := osGetenv(envClipboard); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return PaletteConfig{}, fmt.Errorf("invalid %s %q: %w", envClipboard, v, err)
		}
		config.Clipboard.Enabled = &enabled
	}
	return config, nil
}

// Validate reports the first invalid setting.
func (c PaletteConfig) Validate() error {
	switch c.UI.Theme {
	case ThemeAuto, ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("invalid theme %q: must be auto, dark or light", c.UI.Theme)
	}
	if c.UI.FeedbackDuration <= 0 {
		return fmt.Errorf("invalid feedbackDuration %s: must be positive", c.UI.FeedbackDuration)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
