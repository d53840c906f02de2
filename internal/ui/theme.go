// Package ui provides terminal presentation for the zeon CLI: color
// theming, TTY detection with a headless fallback, and an animated
// spinner for long-running external steps.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// ColorPalette holds the hex colors used across the CLI.
type ColorPalette struct {
	Primary   string
	Secondary string
	Success   string
	Error     string
	Muted     string
}

// Theme carries the palette and the global color switch.
type Theme struct {
	NoColor bool
	Colors  ColorPalette
}

// defaultPalette is the zeon brand palette.
var defaultPalette = ColorPalette{
	Primary:   "#00B8A9",
	Secondary: "#7B68EE",
	Success:   "#22C55E",
	Error:     "#EF4444",
	Muted:     "#6B7280",
}

// NewTheme creates a Theme. Color is disabled when NO_COLOR is set or
// stdout is not a terminal.
func NewTheme() *Theme {
	noColor := os.Getenv("NO_COLOR") != ""
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		noColor = true
	}
	return &Theme{NoColor: noColor, Colors: defaultPalette}
}
