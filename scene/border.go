package scene

import (
	"math"

	"github.com/lixenwraith/starfetch/render"
)

// Box layout rows, top to bottom:
// 0 top border, 1 status, 2 separator, 3..h-4 scene, h-3 separator, h-2 footer, h-1 bottom border
const (
	StatusRow = 1
	SceneTop  = 3
)

// SceneBottom is the exclusive end row of the scene area
func SceneBottom(h int) int { return h - 3 }

// FooterRow is the row of the footer text
func FooterRow(h int) int { return h - 2 }

const (
	glyphH  = '─'
	glyphV  = '│'
	glyphTL = '╭'
	glyphTR = '╮'
	glyphBL = '╰'
	glyphBR = '╯'
	glyphLT = '├'
	glyphRT = '┤'
)

// DrawBorder paints the rounded box; the top and bottom edges grow outward from the center
// with progress, and corners and sides appear once progress reaches 1
func DrawBorder(c *render.Canvas, color render.RGB, progress float64) {
	w, h := c.Width(), c.Height()
	if progress <= 0 || w < 2 || h < 2 {
		return
	}

	if progress < 1 {
		half := int(math.Ceil(progress * float64(w) / 2))
		mid := w / 2
		for x := max(1, mid-half); x < min(w-1, mid+half); x++ {
			c.Set(x, 0, glyphH, color, render.NoBg)
			c.Set(x, h-1, glyphH, color, render.NoBg)
		}
		return
	}

	hLine(c, 0, glyphTL, glyphTR, color)
	hLine(c, h-1, glyphBL, glyphBR, color)
	for y := 1; y < h-1; y++ {
		c.Set(0, y, glyphV, color, render.NoBg)
		c.Set(w-1, y, glyphV, color, render.NoBg)
	}
}

// DrawSeparators paints the tee rows around the scene area
func DrawSeparators(c *render.Canvas, color render.RGB) {
	h := c.Height()
	hLine(c, SceneTop-1, glyphLT, glyphRT, color)
	if SceneBottom(h) > SceneTop-1 {
		hLine(c, SceneBottom(h), glyphLT, glyphRT, color)
	}
}

// hLine paints a full-width horizontal edge with the given end glyphs
func hLine(c *render.Canvas, y int, left, right rune, color render.RGB) {
	w := c.Width()
	c.Set(0, y, left, color, render.NoBg)
	for x := 1; x < w-1; x++ {
		c.Set(x, y, glyphH, color, render.NoBg)
	}
	c.Set(w-1, y, right, color, render.NoBg)
}
