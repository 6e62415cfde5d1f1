package boot

import (
	"github.com/lixenwraith/starfetch/graphics"
	"github.com/lixenwraith/starfetch/render"
	"github.com/lixenwraith/starfetch/scene"
)

// backgroundLayer paints a half-block image background in place of the procedural scene
type backgroundLayer struct {
	bg      *graphics.Background
	rng     *scene.Rand
	x, y    int
	twinkle bool
}

func (l *backgroundLayer) Paint(_ render.Frame, c *render.Canvas) {
	if l.twinkle {
		l.bg.Twinkle(l.rng)
	}
	l.bg.Draw(c, l.x, l.y)
}

// imageLayer releases the image mask below the sliding edge during collapse,
// so the blanks painted there overwrite the inline image
type imageLayer struct{}

func (imageLayer) Paint(f render.Frame, c *render.Canvas) {
	if !f.Collapsing {
		return
	}
	w, h := c.Width(), c.Height()
	bot := scene.CollapseBottom(h, f.CollapseProgress)
	if bot+1 < h {
		c.UnmaskRegion(0, bot+1, w, h)
	}
}

// newBackgroundLayer converts img for the interior of a bw×bh box; nil if the interior is empty
func newBackgroundLayer(o Options, bw, bh int, rng *scene.Rand, twinkle bool) *backgroundLayer {
	x, y, w, h := interior(bw, bh)
	if o.Image == nil || w < 1 || h < 1 {
		return nil
	}
	bg := graphics.NewBackground(o.Image, w, h, graphics.BackgroundOptions{
		Stretch:        o.Stretch,
		Transparency:   o.Transparency,
		StarBrightness: o.StarBrightness,
	})
	return &backgroundLayer{bg: bg, rng: rng, x: x, y: y, twinkle: twinkle}
}
