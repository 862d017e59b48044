package app

import (
	"context"
	"errors"

	"palettectl/internal/config"
	"palettectl/internal/tui/controller"
	"palettectl/internal/tui/design"
	"palettectl/internal/tui/model"
	"palettectl/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, cfg *Config, services *Services) error {
	logging.Debug("CLI", "Starting TUI mode...")

	darkMode := resolveDarkMode(cfg.PaletteConfig.UI.Theme)
	design.Initialize(darkMode)

	// Switch logging to channel-based system for TUI integration
	logLevel, _ := logging.ParseLevel(cfg.PaletteConfig.LogLevel)
	if cfg.Debug {
		logLevel = logging.LevelDebug
	}
	logChan := logging.InitForTUI(logLevel)
	defer logging.CloseTUIChannel()

	p := controller.NewProgram(tuiConfig(cfg, services, darkMode, logChan), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Debug("TUI-Lifecycle", "TUI exited.")

	return nil
}

func tuiConfig(cfg *Config, services *Services, darkMode bool, logChan <-chan logging.LogEntry) model.TUIConfig {
	return model.TUIConfig{
		DebugMode:        cfg.Debug,
		DarkMode:         darkMode,
		MouseEnabled:     cfg.PaletteConfig.MouseEnabled(),
		FeedbackDuration: cfg.PaletteConfig.UI.FeedbackDuration,
		Generator:        services.Generator,
		Clipboard:        services.Clipboard,
		LogChannel:       logChan,
	}
}

// resolveDarkMode maps the configured theme to a background choice,
// asking the terminal when the theme is auto.
func resolveDarkMode(theme config.Theme) bool {
	switch theme {
	case config.ThemeDark:
		return true
	case config.ThemeLight:
		return false
	default:
		return lipgloss.HasDarkBackground()
	}
}
