package config

import (
	"time"
)

// Theme selects the terminal background lipgloss assumes.
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// PaletteConfig is the top-level configuration structure for palettectl.
type PaletteConfig struct {
	LogLevel  string            `yaml:"logLevel,omitempty"`
	UI        UISettings        `yaml:"ui"`
	Clipboard ClipboardSettings `yaml:"clipboard"`
	Generator GeneratorSettings `yaml:"generator"`
}

// UISettings tune the interactive terminal UI.
type UISettings struct {
	Theme            Theme         `yaml:"theme,omitempty"`
	FeedbackDuration time.Duration `yaml:"feedbackDuration,omitempty"` // e.g. "2s", "1500ms"
	Mouse            *bool         `yaml:"mouse,omitempty"`
}

// ClipboardSettings controls the clipboard gateway.
type ClipboardSettings struct {
	Enabled *bool `yaml:"enabled,omitempty"` // false keeps copies in memory
}

// GeneratorSettings controls the random source.
type GeneratorSettings struct {
	Seed *uint64 `yaml:"seed,omitempty"`
}

// MouseEnabled reports whether click-to-copy is on.
func (c PaletteConfig) MouseEnabled() bool {
	return c.UI.Mouse == nil || *c.UI.Mouse
}

// ClipboardEnabled reports whether copies go to the system clipboard.
func (c PaletteConfig) ClipboardEnabled() bool {
	return c.Clipboard.Enabled == nil || *c.Clipboard.Enabled
}
