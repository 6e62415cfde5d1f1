package render

// Rect is a half-open cell rectangle [X0, X1) × [Y0, Y1)
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Empty reports whether the rectangle covers no cells
func (r Rect) Empty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// clip intersects r with the canvas bounds
func (c *Canvas) clip(r Rect) Rect {
	r.X0 = max(r.X0, 0)
	r.Y0 = max(r.Y0, 0)
	r.X1 = min(r.X1, c.width)
	r.Y1 = min(r.Y1, c.height)
	return r
}

// SetImageMask marks the rectangle as owned by an inline image overlay
// Protected cells are untouched by Clear and Set and skipped by Render
func (c *Canvas) SetImageMask(x0, y0, x1, y1 int) {
	r := c.clip(Rect{x0, y0, x1, y1})
	c.mask = r
	c.hasMask = !r.Empty()
	c.protect(r, true)
}

// ClearImageMask releases every protected cell
func (c *Canvas) ClearImageMask() {
	for i := range c.cells {
		c.cells[i].Protected = false
	}
	c.mask = Rect{}
	c.hasMask = false
}

// UnmaskRegion releases protection for a sub-rectangle, so subsequent writes paint over the image
func (c *Canvas) UnmaskRegion(x0, y0, x1, y1 int) {
	c.protect(c.clip(Rect{x0, y0, x1, y1}), false)
}

// ImageMask returns the rectangle last passed to SetImageMask
func (c *Canvas) ImageMask() (Rect, bool) {
	return c.mask, c.hasMask
}

func (c *Canvas) protect(r Rect, on bool) {
	for y := r.Y0; y < r.Y1; y++ {
		row := y * c.width
		for x := r.X0; x < r.X1; x++ {
			c.cells[row+x].Protected = on
		}
	}
}
