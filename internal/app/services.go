package app

import (
	"palettectl/internal/clipboard"
	"palettectl/internal/color"
	"palettectl/pkg/logging"
)

// Services holds the capabilities the UI and the commands share.
type Services struct {
	Generator *color.Generator
	Clipboard clipboard.Writer
}

// InitializeServices builds the generator and the clipboard gateway from cfg.
func InitializeServices(cfg *Config) (*Services, error) {
	var seed *uint64
	if cfg.PaletteConfig != nil {
		seed = cfg.PaletteConfig.Generator.Seed
	}
	if cfg.Seed != nil {
		seed = cfg.Seed
	}

	var source color.RandomSource
	if seed != nil {
		logging.Debug("Bootstrap", "Using seeded generator (seed %d)", *seed)
		source = color.NewSeededSource(*seed)
	}

	var writer clipboard.Writer = clipboard.NewSystem()
	if cfg.NoClipboard || (cfg.PaletteConfig != nil && !cfg.PaletteConfig.ClipboardEnabled()) {
		logging.Info("Bootstrap", "System clipboard disabled, copies are kept in memory")
		writer = clipboard.NewMemory()
	}

	return &Services{
		Generator: color.NewGenerator(source),
		Clipboard: writer,
	}, nil
}
