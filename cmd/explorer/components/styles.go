package components

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Color definitions
var (
	PrimaryColor   = lipgloss.Color("#7D56F4")
	SecondaryColor = lipgloss.Color("#04B575")
	AccentColor    = lipgloss.Color("#FFD700")
	DangerColor    = lipgloss.Color("#F25D94")

	LightGray = lipgloss.Color("#D9D9D9")
	Gray      = lipgloss.Color("#8B8B8B")
	DarkGray  = lipgloss.Color("#383838")
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Align(lipgloss.Center).
			Padding(1, 2)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true).
			Padding(0, 1)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Gray)

	MenuItemStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 2)

	SelectedMenuItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(PrimaryColor).
				Bold(true).
				Padding(0, 2)

	InfoPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SecondaryColor).
			Padding(0, 1).
			Width(30)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(DarkGray).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Gray).
			Italic(true).
			Padding(1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(DangerColor).
			Bold(true)

	SeedStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)
)

// ShadeRamp orders glyphs from low to high noise values.
const ShadeRamp = " .:-=+*#%@"

// PlotSymbol marks the curve of 1D presets.
const PlotSymbol = "•"

// ShadeSymbol returns the glyph for a value in [-1, 1]. Values outside the
// range saturate and NaN renders as '?'.
func ShadeSymbol(v float64) byte {
	if math.IsNaN(v) {
		return '?'
	}
	i := int((v + 1) / 2 * float64(len(ShadeRamp)))
	i = min(max(i, 0), len(ShadeRamp)-1)
	return ShadeRamp[i]
}

// ShadeColor maps a value in [-1, 1] onto the 24-step ANSI grayscale ramp.
func ShadeColor(v float64) lipgloss.Color {
	if math.IsNaN(v) {
		return DangerColor
	}
	step := int((v + 1) / 2 * 24)
	step = min(max(step, 0), 23)
	return lipgloss.Color(strconv.Itoa(232 + step))
}

// CenterText centers each line of text within width columns.
func CenterText(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(text)
}
