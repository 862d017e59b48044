package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"palettectl/internal/clipboard"
	"palettectl/internal/color"
	"palettectl/internal/config"
	"palettectl/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearPaletteEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PALETTECTL_LOG_LEVEL",
		"PALETTECTL_THEME",
		"PALETTECTL_FEEDBACK_MS",
		"PALETTECTL_SEED",
		"PALETTECTL_CLIPBOARD",
	} {
		t.Setenv(key, "")
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewApplicationFromPath(t *testing.T) {
	clearPaletteEnv(t)
	path := writeConfigFile(t, `
logLevel: warn
ui:
  theme: light
  feedbackDuration: 1500ms
clipboard:
  enabled: false
generator:
  seed: 99
`)

	var logs bytes.Buffer
	cfg := NewConfig(false, false, path)
	cfg.LogOutput = &logs

	application, err := NewApplication(cfg)
	require.NoError(t, err)

	pc := application.Config().PaletteConfig
	require.NotNil(t, pc)
	assert.Equal(t, config.ThemeLight, pc.UI.Theme)
	assert.Equal(t, 1500*time.Millisecond, pc.UI.FeedbackDuration)

	services := application.Services()
	assert.IsType(t, &clipboard.Memory{}, services.Clipboard)

	want := color.NewGenerator(color.NewSeededSource(99)).Palette(4)
	assert.Equal(t, want, services.Generator.Palette(4))

	logging.Info("Test", "hidden at warn level")
	assert.NotContains(t, logs.String(), "hidden at warn level")
}

func TestNewApplicationInvalidConfig(t *testing.T) {
	clearPaletteEnv(t)
	path := writeConfigFile(t, "ui:\n  theme: sepia\n")

	cfg := NewConfig(false, false, path)
	cfg.LogOutput = &bytes.Buffer{}

	_, err := NewApplication(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration from path")
}

func TestInitializeServices(t *testing.T) {
	seed := uint64(5)
	configSeed := uint64(6)
	disabled := false

	tests := []struct {
		name          string
		cfg           *Config
		wantMemory    bool
		wantSeedValue *uint64
	}{
		{
			name: "defaults use the system clipboard",
			cfg:  &Config{PaletteConfig: &config.PaletteConfig{}},
		},
		{
			name:       "no-clipboard flag",
			cfg:        &Config{NoClipboard: true},
			wantMemory: true,
		},
		{
			name:       "clipboard disabled in config",
			cfg:        &Config{PaletteConfig: &config.PaletteConfig{Clipboard: config.ClipboardSettings{Enabled: &disabled}}},
			wantMemory: true,
		},
		{
			name:          "configured seed",
			cfg:           &Config{PaletteConfig: &config.PaletteConfig{Generator: config.GeneratorSettings{Seed: &configSeed}}},
			wantSeedValue: &configSeed,
		},
		{
			name:          "flag seed wins over config",
			cfg:           &Config{Seed: &seed, PaletteConfig: &config.PaletteConfig{Generator: config.GeneratorSettings{Seed: &configSeed}}},
			wantSeedValue: &seed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services, err := InitializeServices(tt.cfg)
			require.NoError(t, err)

			if tt.wantMemory {
				assert.IsType(t, &clipboard.Memory{}, services.Clipboard)
			} else {
				assert.IsType(t, &clipboard.System{}, services.Clipboard)
			}

			if tt.wantSeedValue != nil {
				want := color.NewGenerator(color.NewSeededSource(*tt.wantSeedValue)).Palette(4)
				assert.Equal(t, want, services.Generator.Palette(4))
			}
		})
	}
}

func TestResolveDarkMode(t *testing.T) {
	assert.True(t, resolveDarkMode(config.ThemeDark))
	assert.False(t, resolveDarkMode(config.ThemeLight))
}

func TestTUIConfig(t *testing.T) {
	mouseOff := false
	pc := config.DefaultConfig()
	pc.UI.Mouse = &mouseOff

	cfg := &Config{Debug: true, PaletteConfig: &pc}
	services := &Services{Generator: color.NewGenerator(nil), Clipboard: clipboard.NewMemory()}

	tc := tuiConfig(cfg, services, true, nil)
	assert.True(t, tc.DebugMode)
	assert.True(t, tc.DarkMode)
	assert.False(t, tc.MouseEnabled)
	assert.Equal(t, config.DefaultFeedbackDuration, tc.FeedbackDuration)
	assert.Same(t, services.Generator, tc.Generator)
}
