package app

import (
	"io"

	"palettectl/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Debug settings
	Debug bool

	// NoClipboard keeps copies in memory instead of the system clipboard.
	NoClipboard bool

	// ConfigPath loads a single config file instead of the layered lookup.
	ConfigPath string

	// Seed overrides the configured generator seed when set.
	Seed *uint64

	// LogOutput receives CLI logs. Defaults to stderr so stdout stays clean for command output.
	LogOutput io.Writer

	// Loaded palette configuration
	PaletteConfig *config.PaletteConfig
}

// NewConfig creates a new application configuration
func NewConfig(debug, noClipboard bool, configPath string) *Config {
	return &Config{
		Debug:       debug,
		NoClipboard: noClipboard,
		ConfigPath:  configPath,
	}
}
