package graphics

import (
	"image"
	"image/color"

	"github.com/lixenwraith/starfetch/render"
)

const (
	glyphUpperHalf = '▀'
	glyphLowerHalf = '▄'

	// alphaOpaque is the alpha below which a pixel is treated as transparent
	alphaOpaque = 128
)

// Source is the random stream twinkle draws from
type Source interface {
	Intn(n int) int
	Float64() float64
}

// BgCell is one half-block cell: two vertically stacked pixels
type BgCell struct {
	Upper, Lower render.RGB
	HasUpper     bool
	HasLower     bool
	Twinkle      bool
	Level        float64 // brightness multiplier for twinkle candidates
}

// BackgroundOptions configure half-block conversion
type BackgroundOptions struct {
	Stretch Stretch
	// Transparency makes pixels at or below this luminance transparent; 0 disables
	Transparency uint8
	// StarBrightness marks pixels at or above this luminance as twinkle candidates; nil disables
	StarBrightness *uint8
}

// Background is an image converted to half-block cells for Ascii and Inline modes
type Background struct {
	cells      []BgCell
	width      int
	height     int
	candidates []int
}

// NewBackground resamples img to cellsW × 2·cellsH pixels and pairs rows into half-blocks
func NewBackground(img image.Image, cellsW, cellsH int, opts BackgroundOptions) *Background {
	b := &Background{width: max(0, cellsW), height: max(0, cellsH)}
	if b.width == 0 || b.height == 0 {
		return b
	}
	px := Resize(img, b.width, b.height*2, opts.Stretch)
	b.cells = make([]BgCell, b.width*b.height)

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			up, upOn := samplePixel(px.RGBAAt(x, 2*y), opts.Transparency)
			lo, loOn := samplePixel(px.RGBAAt(x, 2*y+1), opts.Transparency)

			cell := BgCell{Upper: up, Lower: lo, HasUpper: upOn, HasLower: loOn, Level: 1}
			if opts.StarBrightness != nil {
				th := *opts.StarBrightness
				if (upOn && up.Luminance() >= th) || (loOn && lo.Luminance() >= th) {
					cell.Twinkle = true
					b.candidates = append(b.candidates, y*b.width+x)
				}
			}
			b.cells[y*b.width+x] = cell
		}
	}
	return b
}

// samplePixel returns the pixel color and whether it is opaque enough to draw
func samplePixel(c color.RGBA, transparency uint8) (render.RGB, bool) {
	if c.A < alphaOpaque {
		return render.RGB{}, false
	}
	rgb := render.RGB{R: c.R, G: c.G, B: c.B}
	if transparency > 0 && rgb.Luminance() <= transparency {
		return rgb, false
	}
	return rgb, true
}

// Width returns the background width in cells
func (b *Background) Width() int { return b.width }

// Height returns the background height in cells
func (b *Background) Height() int { return b.height }

// At returns the cell at (x, y); out of range returns a transparent cell
func (b *Background) At(x, y int) BgCell {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return BgCell{}
	}
	return b.cells[y*b.width+x]
}

// Candidates returns the number of twinkle candidate cells
func (b *Background) Candidates() int { return len(b.candidates) }

// Twinkle re-rolls the brightness of roughly one candidate in eight
func (b *Background) Twinkle(rng Source) {
	for _, idx := range b.candidates {
		if rng.Intn(8) != 0 {
			continue
		}
		b.cells[idx].Level = 0.45 + 0.55*rng.Float64()
	}
}

// Draw paints the background with its top-left cell at (x0, y0); transparent cells are left as is
func (b *Background) Draw(c *render.Canvas, x0, y0 int) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			cell := b.cells[y*b.width+x]
			up, lo := cell.Upper, cell.Lower
			if cell.Twinkle && cell.Level != 1 {
				up, lo = up.Scale(cell.Level), lo.Scale(cell.Level)
			}

			switch {
			case cell.HasUpper && cell.HasLower:
				c.Set(x0+x, y0+y, glyphUpperHalf, up, render.BgOf(lo))
			case cell.HasUpper:
				c.Set(x0+x, y0+y, glyphUpperHalf, up, render.NoBg)
			case cell.HasLower:
				c.Set(x0+x, y0+y, glyphLowerHalf, lo, render.NoBg)
			}
		}
	}
}
