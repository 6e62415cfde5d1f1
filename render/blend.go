package render

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ToColorful converts to a go-colorful color
func ToColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// FromColorful converts back, clamping out-of-gamut values
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Blend interpolates from a to b in Lab space; t is clamped to [0, 1]
func Blend(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return FromColorful(ToColorful(a).BlendLab(ToColorful(b), t))
}
