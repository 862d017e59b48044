package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Spacing units, in terminal cells.
const (
	SpaceNone = 0
	SpaceXS   = 1
	SpaceSM   = 2
	SpaceMD   = 3
	SpaceLG   = 4
)

// Color Palette - semantic colors with light/dark variants.
var (
	// Brand colors, the blue-to-purple accent of the title and generate button.
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#9333EA",
		Dark:  "#A855F7",
	}

	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}

	ColorSurface = lipgloss.AdaptiveColor{
		Light: "#F3F4F6",
		Dark:  "#262626",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#404040",
	}
	ColorBorderFocus = ColorAccent

	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#4B5563",
		Dark:  "#9CA3AF",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}
)

// Base Styles
var (
	AppStyle = lipgloss.NewStyle().
			Padding(SpaceXS, SpaceSM)

	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TextSecondaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	TextErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	// Header: "Color" plain, "Palette" in the accent.
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	TitleAccentStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)
)

// Swatch card styles
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	CardSelectedStyle = CardStyle.
				BorderForeground(ColorBorderFocus)

	CardHexStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	CardDetailStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorSurface).
			Padding(0, SpaceXS)

	ButtonCopiedStyle = ButtonStyle.
				Foreground(ColorSuccess).
				Bold(true)

	GenerateButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(ColorPrimary).
				Bold(true).
				Padding(0, SpaceMD)
)

// Chrome
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Padding(0, SpaceSM)

	StatusBarSuccessStyle = StatusBarStyle.
				Foreground(ColorSuccess)

	StatusBarErrorStyle = StatusBarStyle.
				Foreground(ColorError)

	StatusBarWarningStyle = StatusBarStyle.
				Foreground(ColorWarning)

	StatusBarInfoStyle = StatusBarStyle.
				Foreground(ColorInfo)

	LogOverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, SpaceXS)

	LogPanelTitleStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true).
				MarginBottom(SpaceXS)

	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
)

// Initialize sets the background lipgloss resolves adaptive colors against.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}
