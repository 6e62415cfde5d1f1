package scene

import (
	"github.com/lixenwraith/starfetch/render"
	"github.com/lixenwraith/starfetch/terminal"
)

// CollapseBottom is the row of the sliding bottom edge; it travels from h-1 up to row 2
func CollapseBottom(h int, progress float64) int {
	maxTravel := max(0, h-3)
	travel := int(float64(maxTravel) * clamp01(progress))
	return h - 1 - travel
}

// DrawCollapse paints the collapsing frame over the scene: full top edge and status row,
// side borders down to the sliding bottom edge, and blanks below it
func DrawCollapse(c *render.Canvas, status string, progress float64, border, statusColor render.RGB) {
	w, h := c.Width(), c.Height()
	if w < 2 || h < 3 {
		return
	}
	bot := CollapseBottom(h, progress)

	hLine(c, 0, glyphTL, glyphTR, border)
	c.Set(0, StatusRow, glyphV, border, render.NoBg)
	c.Set(w-1, StatusRow, glyphV, border, render.NoBg)
	DrawStatus(c, status, StatusRow, statusColor, 1)

	if bot <= 2 {
		bot = 2
	}
	for y := 2; y < bot; y++ {
		c.Set(0, y, glyphV, border, render.NoBg)
		c.Set(w-1, y, glyphV, border, render.NoBg)
	}
	hLine(c, bot, glyphBL, glyphBR, border)

	c.Fill(0, bot+1, w, h, ' ', terminal.RGBBlack, render.NoBg)
}
