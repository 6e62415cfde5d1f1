package render

import (
	"github.com/lixenwraith/starfetch/terminal"
)

// RGB is an alias to terminal.RGB to avoid conversions at call sites
type RGB = terminal.RGB

// Bg is an optional background color; the zero value leaves the terminal default
type Bg struct {
	Color RGB
	Set   bool
}

// NoBg keeps the terminal default background
var NoBg = Bg{}

// BgOf returns an explicit background
func BgOf(c RGB) Bg {
	return Bg{Color: c, Set: true}
}

// Cell represents a single canvas cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	HasBg bool

	// Protected cells are skipped by Clear and Set, and never painted by Render
	Protected bool

	// Cont marks the trailing column of a double-width rune; never emitted
	Cont bool
}

// DefaultFg is the foreground of blank cells
var DefaultFg = terminal.LightGray

// blankCell is the cleared state of an unprotected cell
var blankCell = Cell{Rune: ' ', Fg: DefaultFg}
