package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/starfetch/terminal"
)

type hiddenPainter struct{ calls int }

func (p *hiddenPainter) Paint(Frame, *Canvas) { p.calls++ }
func (p *hiddenPainter) Visible(f Frame) bool { return f.FooterVisible }

func TestOrchestrator_PaintOrder(t *testing.T) {
	o := NewOrchestrator()
	var order []string

	record := func(name string) Painter {
		return PainterFunc(func(Frame, *Canvas) { order = append(order, name) })
	}
	o.Register(record("footer"), PriorityFooter)
	o.Register(record("stars"), PriorityStars)
	o.Register(record("border-a"), PriorityBorder)
	o.Register(record("border-b"), PriorityBorder)
	o.Register(record("bg"), PriorityBackground)

	o.PaintFrame(Frame{}, New(1, 1, terminal.ColorModeTrueColor))

	assert.Equal(t, []string{"bg", "stars", "border-a", "border-b", "footer"}, order)
	assert.Equal(t, 5, o.Len())
}

func TestOrchestrator_ClearsBeforePainting(t *testing.T) {
	c := New(2, 1, terminal.ColorModeTrueColor)
	c.Set(0, 0, 'x', red, NoBg)

	NewOrchestrator().PaintFrame(Frame{}, c)

	assert.Equal(t, ' ', c.At(0, 0).Rune)
}

func TestOrchestrator_VisibilityToggle(t *testing.T) {
	o := NewOrchestrator()
	p := &hiddenPainter{}
	o.Register(p, PriorityOverlay)
	c := New(1, 1, terminal.ColorModeTrueColor)

	o.PaintFrame(Frame{}, c)
	o.PaintFrame(Frame{FooterVisible: true}, c)

	assert.Equal(t, 1, p.calls)
}

func TestBlend(t *testing.T) {
	a := RGB{R: 10, G: 20, B: 30}
	b := RGB{R: 200, G: 100, B: 50}

	assert.Equal(t, a, Blend(a, b, -1))
	assert.Equal(t, a, Blend(a, b, 0))
	assert.Equal(t, b, Blend(a, b, 1))

	mid := Blend(RGB{}, RGB{R: 255, G: 255, B: 255}, 0.5)
	assert.Equal(t, mid.R, mid.G)
	assert.Greater(t, mid.R, uint8(60))
	assert.Less(t, mid.R, uint8(200))
}
