package scene

import (
	"github.com/lixenwraith/starfetch/render"
	"github.com/lixenwraith/starfetch/terminal"
)

// Colors holds the chrome colors of the box
type Colors struct {
	Border render.RGB
	Status render.RGB
	Footer render.RGB
}

// DefaultColors returns the slate border and ash text colors
func DefaultColors() Colors {
	return Colors{
		Border: terminal.SlateBlue,
		Status: terminal.Ash,
		Footer: terminal.Ash,
	}
}

// Scene is the per-geometry set of entities; a resize builds a new Scene instead of mutating one
type Scene struct {
	Width, Height int

	Stars []Star
	Earth Body
	Moon  Body

	Status string
	Colors Colors

	rng *Rand
}

// New lays out a scene for a w×h box, drawing stars from rng
func New(w, h int, status string, colors Colors, rng *Rand) *Scene {
	starBottom := max(SceneBottom(h), SceneTop)
	return &Scene{
		Width:  w,
		Height: h,
		Stars:  GenerateStars(1, SceneTop, w-1, starBottom, DefaultStarDensity, rng),
		Earth:  Earth(),
		Moon:   Moon(),
		Status: status,
		Colors: colors,
		rng:    rng,
	}
}

// Register adds the scene layers to o; a non-nil backdrop replaces the procedural starfield and bodies
func (s *Scene) Register(o *render.Orchestrator, backdrop render.Painter) {
	if backdrop != nil {
		o.Register(backdrop, render.PriorityBackground)
	} else {
		o.Register(&starLayer{s}, render.PriorityStars)
		o.Register(&celestialLayer{s}, render.PriorityCelestial)
	}
	o.Register(&borderLayer{s}, render.PriorityBorder)
	o.Register(&statusLayer{s}, render.PriorityStatus)
	o.Register(&footerLayer{s}, render.PriorityFooter)
	o.Register(&collapseLayer{s}, render.PriorityOverlay)
}

type starLayer struct{ s *Scene }

func (l *starLayer) Paint(f render.Frame, c *render.Canvas) {
	if f.Collapsing {
		DrawStars(c, l.s.Stars, 1)
		return
	}
	if f.StarVisibility <= 0 {
		return
	}
	if f.Flash {
		FlashAll(l.s.Stars)
	} else if f.Twinkle {
		Twinkle(l.s.Stars, l.s.rng)
	}
	DrawStars(c, l.s.Stars, f.StarVisibility)
}

// celestialThreshold is the visibility at which bodies pop in; they have no partial state
const celestialThreshold = 0.3

type celestialLayer struct{ s *Scene }

func (l *celestialLayer) Visible(f render.Frame) bool {
	return f.Collapsing || f.CelestialVisibility > celestialThreshold
}

func (l *celestialLayer) Paint(_ render.Frame, c *render.Canvas) {
	DrawEarth(c, l.s.Earth)
	DrawMoon(c, l.s.Moon)
}

type borderLayer struct{ s *Scene }

func (l *borderLayer) Visible(f render.Frame) bool { return !f.Collapsing }

func (l *borderLayer) Paint(f render.Frame, c *render.Canvas) {
	DrawBorder(c, l.s.Colors.Border, f.BorderProgress)
	if f.BorderProgress >= 1 {
		DrawSeparators(c, l.s.Colors.Border)
	}
}

type statusLayer struct{ s *Scene }

func (l *statusLayer) Visible(f render.Frame) bool {
	return !f.Collapsing && f.StatusProgress > 0
}

func (l *statusLayer) Paint(f render.Frame, c *render.Canvas) {
	DrawStatus(c, l.s.Status, StatusRow, l.s.Colors.Status, f.StatusProgress)
}

type footerLayer struct{ s *Scene }

func (l *footerLayer) Visible(f render.Frame) bool {
	return !f.Collapsing && f.FooterVisible
}

func (l *footerLayer) Paint(f render.Frame, c *render.Canvas) {
	text := FooterPrompt
	if f.Freeze {
		text = FooterReady
	}
	DrawFooter(c, text, l.s.Colors.Footer)
}

type collapseLayer struct{ s *Scene }

func (l *collapseLayer) Visible(f render.Frame) bool { return f.Collapsing }

func (l *collapseLayer) Paint(f render.Frame, c *render.Canvas) {
	DrawCollapse(c, l.s.Status, f.CollapseProgress, l.s.Colors.Border, l.s.Colors.Status)
}
