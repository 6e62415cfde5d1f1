package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/starfetch/render"
	"github.com/lixenwraith/starfetch/sysinfo"
	"github.com/lixenwraith/starfetch/terminal"
)

const (
	paletteSwatch = "███"
	labelSuffix   = ": "
)

// Options controls what the panel shows
type Options struct {
	Theme     Theme
	Fields    []string
	Label     func(key string) string // nil shows the key itself
	Separator string
	Palette   bool
}

type line struct {
	label string
	value string
}

// Panel is the laid-out fetch panel
type Panel struct {
	title     string
	separator string
	lines     []line
	palette   bool
	theme     Theme
}

// Build lays out the title, separator, selected fields and palette
// Fields that are unknown or empty on this host are skipped
func Build(info sysinfo.Snapshot, opts Options) *Panel {
	title := info.Title()
	sep := opts.Separator
	if sep == "" {
		sep = "-"
	}

	fields := opts.Fields
	if len(fields) == 0 {
		fields = sysinfo.DefaultFields
	}

	p := &Panel{
		title:     title,
		separator: strings.Repeat(sep, runewidth.StringWidth(title)),
		palette:   opts.Palette,
		theme:     opts.Theme,
	}
	for _, key := range fields {
		v, ok := info.Lookup(key)
		if !ok {
			continue
		}
		label := key
		if opts.Label != nil {
			label = opts.Label(key)
		}
		p.lines = append(p.lines, line{label: label, value: v})
	}
	return p
}

// Size returns the canvas dimensions the panel needs
func (p *Panel) Size() (w, h int) {
	w = max(runewidth.StringWidth(p.title), runewidth.StringWidth(p.separator))
	for _, l := range p.lines {
		w = max(w, runewidth.StringWidth(l.label+labelSuffix+l.value))
	}
	h = 2 + len(p.lines)
	if p.palette {
		w = max(w, 8*runewidth.StringWidth(paletteSwatch))
		h += 3
	}
	return max(w, 1), h
}

// Paint draws the panel into a new canvas
func (p *Panel) Paint(mode terminal.ColorMode) *render.Canvas {
	w, h := p.Size()
	c := render.New(w, h, mode)

	c.PutStr(0, 0, p.title, p.theme.Title, render.NoBg)
	c.PutStr(0, 1, p.separator, p.theme.Separator, render.NoBg)

	y := 2
	for _, l := range p.lines {
		x := c.PutStr(0, y, l.label+labelSuffix, p.theme.Label, render.NoBg)
		c.PutStr(x, y, l.value, render.DefaultFg, render.NoBg)
		y++
	}

	if p.palette {
		y++
		for _, row := range ansiPalette() {
			x := 0
			for _, col := range row {
				x = c.PutStr(x, y, paletteSwatch, col, render.NoBg)
			}
			y++
		}
	}
	return c
}

// Render writes the panel to w as plain lines
func Render(w io.Writer, info sysinfo.Snapshot, opts Options, mode terminal.ColorMode) error {
	if err := Build(info, opts).Paint(mode).RenderInline(w); err != nil {
		return fmt.Errorf("render panel: %w", err)
	}
	return nil
}
