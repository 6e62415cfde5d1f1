package scene

import (
	"math"

	"github.com/lixenwraith/starfetch/render"
	"github.com/lixenwraith/starfetch/terminal"
)

// Body is a disc placed by fractions of the canvas: CX of width, CY and R of height
type Body struct {
	CX, CY, R float64
}

// Earth sits in the lower right of the scene
func Earth() Body { return Body{CX: 0.79, CY: 0.60, R: 0.26} }

// Moon sits in the upper left of the scene
func Moon() Body { return Body{CX: 0.15, CY: 0.26, R: 0.11} }

// lightDir is the unit vector toward the light, from the upper left and in front
var lightDir = normalize(-0.55, -0.45, 0.70)

const bodyGlyph = '█'

// surfaceFunc returns the unlit surface color at a sphere normal
type surfaceFunc func(nx, ny, nz float64) render.RGB

// DrawEarth paints the earth disc with oceans, land and ice caps
func DrawEarth(c *render.Canvas, b Body) {
	drawBody(c, b, earthSurface)
}

// DrawMoon paints the moon disc with maria
func DrawMoon(c *render.Canvas, b Body) {
	drawBody(c, b, moonSurface)
}

// drawBody fills every scene cell whose center lies inside the disc
// Cells are about twice as tall as wide, so the horizontal radius is doubled
func drawBody(c *render.Canvas, b Body, surface surfaceFunc) {
	w, h := c.Width(), c.Height()
	cx := b.CX * float64(w)
	cy := b.CY * float64(h)
	r := b.R * float64(h)
	if r <= 0 {
		return
	}

	x0 := max(1, int(math.Floor(cx-2*r)))
	x1 := min(w-1, int(math.Ceil(cx+2*r))+1)
	y0 := max(SceneTop, int(math.Floor(cy-r)))
	y1 := min(SceneBottom(h), int(math.Ceil(cy+r))+1)

	for y := y0; y < y1; y++ {
		ny := (float64(y) + 0.5 - cy) / r
		for x := x0; x < x1; x++ {
			nx := (float64(x) + 0.5 - cx) / (2 * r)
			d2 := nx*nx + ny*ny
			if d2 > 1 {
				continue
			}
			nz := math.Sqrt(1 - d2)

			lambert := max(0, nx*lightDir[0]+ny*lightDir[1]+nz*lightDir[2])
			shade := 0.2 + 0.8*lambert
			col := render.Blend(terminal.RGBBlack, surface(nx, ny, nz), shade)
			c.Set(x, y, bodyGlyph, col, render.NoBg)
		}
	}
}

func earthSurface(nx, ny, nz float64) render.RGB {
	if math.Abs(ny) > 0.82 {
		return terminal.IceCap
	}

	land := math.Sin(nx*5.1+ny*2.3) + math.Sin(ny*4.7-nz*3.3) + math.Sin(nz*6.1+nx*1.7)
	switch {
	case land > 1.6:
		return terminal.Desert
	case land > 1.1:
		return terminal.Grassland
	case land > 0.8:
		return terminal.Forest
	case land > 0.4:
		return terminal.Shallows
	case land > -0.6:
		return terminal.Ocean
	default:
		return terminal.DeepOcean
	}
}

func moonSurface(nx, ny, nz float64) render.RGB {
	if math.Sin(nx*7+1)*math.Sin(ny*6-0.5)+0.3*math.Cos(nz*9) > 0.35 {
		return terminal.Mare
	}
	return terminal.Regolith
}

func normalize(x, y, z float64) [3]float64 {
	l := math.Sqrt(x*x + y*y + z*z)
	return [3]float64{x / l, y / l, z / l}
}
