package render

import (
	"bufio"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/starfetch/terminal"
)

// Canvas is a cell-grid compositor with a protected image mask.
// Canvases are recreated rather than resized when terminal dimensions change
type Canvas struct {
	cells  []Cell
	width  int
	height int

	mask    Rect
	hasMask bool

	styler *terminal.Styler
	bw     *bufio.Writer
}

// New creates a blank canvas encoding colors for the given mode
// Non-positive dimensions produce an empty canvas that ignores all writes
func New(width, height int, mode terminal.ColorMode) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
		styler: terminal.NewStyler(mode),
	}
	for i := range c.cells {
		c.cells[i] = blankCell
	}
	return c
}

// Width returns the canvas width in cells
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells
func (c *Canvas) Height() int { return c.height }

// ColorMode returns the color mode used by Render
func (c *Canvas) ColorMode() terminal.ColorMode { return c.styler.ColorMode() }

// inBounds returns true if in canvas bounds
func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// At returns the cell at (x, y); out-of-bounds returns a blank cell
func (c *Canvas) At(x, y int) Cell {
	if !c.inBounds(x, y) {
		return blankCell
	}
	return c.cells[y*c.width+x]
}

// Protected reports whether (x, y) is owned by the image overlay
func (c *Canvas) Protected(x, y int) bool {
	return c.inBounds(x, y) && c.cells[y*c.width+x].Protected
}

// Clear resets all non-protected cells to blank
func (c *Canvas) Clear() {
	for i := range c.cells {
		if !c.cells[i].Protected {
			c.cells[i] = blankCell
		}
	}
}

// Set writes a single-width glyph; out-of-bounds and protected cells are silently ignored
func (c *Canvas) Set(x, y int, r rune, fg RGB, bg Bg) {
	if !c.inBounds(x, y) {
		return
	}
	idx := y*c.width + x
	if c.cells[idx].Protected {
		return
	}
	c.detachWide(x, y)
	c.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg.Color, HasBg: bg.Set}
}

// detachWide blanks the other half of a double-width rune about to be overwritten at (x, y)
func (c *Canvas) detachWide(x, y int) {
	idx := y*c.width + x
	if c.cells[idx].Cont && x > 0 && !c.cells[idx-1].Protected {
		c.cells[idx-1] = blankCell
	}
	if x+1 < c.width && c.cells[idx+1].Cont && !c.cells[idx+1].Protected {
		c.cells[idx+1] = blankCell
	}
}

// PutStr writes text left-to-right from (x, y), clipping at the right edge
// Returns the column after the last written cell
func (c *Canvas) PutStr(x, y int, text string, fg RGB, bg Bg) int {
	if y < 0 || y >= c.height {
		return x
	}
	for _, r := range text {
		if x >= c.width {
			break
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if w == 2 {
			// Wide rune needs both columns free and in bounds
			if x+1 >= c.width || c.Protected(x, y) || c.Protected(x+1, y) {
				break
			}
			c.Set(x, y, r, fg, bg)
			c.Set(x+1, y, ' ', fg, bg)
			if x >= 0 {
				c.cells[y*c.width+x+1].Cont = true
			}
			x += 2
			continue
		}
		c.Set(x, y, r, fg, bg)
		x++
	}
	return x
}

// Fill writes r to every cell of the half-open rectangle
func (c *Canvas) Fill(x0, y0, x1, y1 int, r rune, fg RGB, bg Bg) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.Set(x, y, r, fg, bg)
		}
	}
}
