package style

import "github.com/charmbracelet/lipgloss"

// Palette defines the application's color scheme.
var (
	Overlay = lipgloss.Color("#6c7086")

	Mauve  = lipgloss.Color("#cba6f7")
	Red    = lipgloss.Color("#f38ba8")
	Yellow = lipgloss.Color("#f9e2af")
	Green  = lipgloss.Color("#a6e3a1")

	// Semantic mappings
	AccentColor  = Mauve
	SuccessColor = Green
	WarningColor = Yellow
	ErrorColor   = Red
	FaintColor   = Overlay
)
