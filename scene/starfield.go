package scene

import (
	"github.com/lixenwraith/starfetch/render"
	"github.com/lixenwraith/starfetch/terminal"
)

// DefaultStarDensity is the fraction of scene cells holding a star
const DefaultStarDensity = 0.02

// Star is one point of the starfield; Base is the resting brightness twinkle returns around
type Star struct {
	X, Y       int
	Brightness float64
	Base       float64
}

// GenerateStars scatters stars over the half-open rectangle [x0, x1) × [y0, y1)
func GenerateStars(x0, y0, x1, y1 int, density float64, rng *Rand) []Star {
	if x1 <= x0 || y1 <= y0 || density <= 0 {
		return nil
	}
	stars := make([]Star, 0, int(float64((x1-x0)*(y1-y0))*density)+1)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if rng.Float64() >= density {
				continue
			}
			base := 0.25 + 0.75*rng.Float64()
			stars = append(stars, Star{X: x, Y: y, Brightness: base, Base: base})
		}
	}
	return stars
}

// Twinkle perturbs roughly one star in eight around its base brightness
func Twinkle(stars []Star, rng *Rand) {
	for i := range stars {
		if rng.Intn(8) != 0 {
			continue
		}
		b := stars[i].Base + (rng.Float64()-0.5)*0.6
		stars[i].Brightness = clamp01(b)
	}
}

// FlashAll forces every star to peak brightness
func FlashAll(stars []Star) {
	for i := range stars {
		stars[i].Brightness = 1
	}
}

var starGlyphs = [...]rune{'.', '·', '+', '*'}

// starGlyph maps brightness to glyph and grey level
func starGlyph(b float64) (rune, render.RGB) {
	idx := int(b * float64(len(starGlyphs)))
	if idx >= len(starGlyphs) {
		idx = len(starGlyphs) - 1
	}
	return starGlyphs[idx], render.Blend(terminal.Obsidian, terminal.White, b)
}

// DrawStars paints stars scaled by visibility; very dim stars are skipped
func DrawStars(c *render.Canvas, stars []Star, visibility float64) {
	if visibility <= 0 {
		return
	}
	for _, s := range stars {
		b := s.Brightness * visibility
		if b < 0.05 {
			continue
		}
		g, fg := starGlyph(b)
		c.Set(s.X, s.Y, g, fg, render.NoBg)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
