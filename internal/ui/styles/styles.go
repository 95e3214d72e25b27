// Package styles provides shared lipgloss styles for gw output.
//
// Color output depends on three things: the terminal's detected color
// profile (which honors NO_COLOR), the use_colors config key, and the
// message kind. Emoji prefixes are governed by show_emoji.
package styles

import (
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
)

// Palette colors
var (
	Success = lipgloss.Color("82")  // green
	Error   = lipgloss.Color("196") // red
	Info    = lipgloss.Color("39")  // blue
	Working = lipgloss.Color("51")  // cyan
	Warning = lipgloss.Color("220") // yellow
	Muted   = lipgloss.Color("240") // gray
)

// Message styles
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	InfoStyle    = lipgloss.NewStyle().Foreground(Info)
	WorkingStyle = lipgloss.NewStyle().Foreground(Working)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	Bold         = lipgloss.NewStyle().Bold(true)
)

// colorsEnabled tracks whether styled output is active
var colorsEnabled = true

// DetectColors decides whether color output is active. useColors comes
// from configuration; the terminal profile covers NO_COLOR and
// non-TTY output.
func DetectColors(useColors bool) {
	profile := colorprofile.Detect(os.Stdout, os.Environ())
	colorsEnabled = useColors && profile != colorprofile.NoTTY && profile != colorprofile.Ascii
}

// SetColorsEnabled overrides color detection (used by tests).
func SetColorsEnabled(enabled bool) {
	colorsEnabled = enabled
}

// ColorsEnabled returns whether styled output is active.
func ColorsEnabled() bool {
	return colorsEnabled
}

// Render applies the style only when colors are enabled.
func Render(style lipgloss.Style, s string) string {
	if !colorsEnabled {
		return s
	}
	return style.Render(s)
}
