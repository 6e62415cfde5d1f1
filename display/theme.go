// Package display paints the static fetch panel into a Canvas and writes it inline
package display

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starfetch/terminal"
)

// Theme colors the panel
type Theme struct {
	Name      string
	Title     terminal.RGB
	Label     terminal.RGB
	Separator terminal.RGB
}

// Themes lists the built-in theme names
func Themes() []string {
	return []string{"green", "cyan", "red", "magenta", "yellow", "blue", "mono"}
}

// ThemeByName returns a built-in theme; unknown names give green
func ThemeByName(name string) Theme {
	var accent tcell.Color
	n := strings.ToLower(name)
	switch n {
	case "cyan":
		accent = tcell.ColorDarkCyan
	case "red":
		accent = tcell.ColorRed
	case "magenta", "pink":
		n = "magenta"
		accent = tcell.ColorFuchsia
	case "yellow":
		accent = tcell.ColorYellow
	case "blue":
		accent = tcell.ColorBlue
	case "mono", "white":
		n = "mono"
		accent = tcell.ColorWhite
	default:
		n = "green"
		accent = tcell.ColorGreen
	}
	return Theme{
		Name:      n,
		Title:     rgbOf(accent),
		Label:     rgbOf(accent),
		Separator: rgbOf(tcell.ColorDarkGray),
	}
}

// rgbOf resolves a tcell color; invalid colors map to light gray
func rgbOf(c tcell.Color) terminal.RGB {
	r, g, b := c.RGB()
	if r < 0 {
		return terminal.LightGray
	}
	return terminal.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// ansiPalette returns the 16 standard terminal colors, normal then bright
func ansiPalette() [2][8]terminal.RGB {
	var rows [2][8]terminal.RGB
	for i := 0; i < 16; i++ {
		rows[i/8][i%8] = rgbOf(tcell.PaletteColor(i))
	}
	return rows
}
