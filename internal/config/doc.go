// Package config provides configuration management for palettectl.
//
// Configuration is layered; later sources override earlier ones:
//
//  1. Defaults (DefaultConfig)
//  2. User configuration (~/.config/palettectl/config.yaml)
//  3. Project configuration (./.palettectl/config.yaml)
//  4. A .env file in the working directory, if present
//  5. PALETTECTL_* environment variables
//
// # Configuration Structure
//
//	logLevel: info
//	ui:
//	  theme: auto            # auto, dark or light
//	  feedbackDuration: 2s   # how long "Copied!" stays on a swatch
//	  mouse: true
//	clipboard:
//	  enabled: true
//	generator:
//	  seed: 42               # omit for a fresh palette every run
//
// # Environment Variables
//
//   - PALETTECTL_LOG_LEVEL: debug, info, warn or error
//   - PALETTECTL_THEME: auto, dark or light
//   - PALETTECTL_FEEDBACK_MS: copy feedback duration in milliseconds
//   - PALETTECTL_SEED: unsigned seed for the color generator
//   - PALETTECTL_CLIPBOARD: set to false to keep copies in memory only
package config
