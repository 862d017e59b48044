package config

import (
	"time"
)

// DefaultFeedbackDuration is how long a swatch shows "Copied!".
const DefaultFeedbackDuration = 2000 * time.Millisecond

// DefaultConfig returns the configuration used when no file or variable overrides it.
func DefaultConfig() PaletteConfig {
	return PaletteConfig{
		LogLevel: "info",
		UI: UISettings{
			Theme:            ThemeAuto,
			FeedbackDuration: DefaultFeedbackDuration,
		},
	}
}
