package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starfetch/boot"
	"github.com/lixenwraith/starfetch/graphics"
	"github.com/lixenwraith/starfetch/terminal"
)

// Display modes
const (
	ModeDefault = "default"
	ModeSplash  = "splash"
)

// Validate checks every enumerated value and color string
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.Mode) {
	case ModeDefault, ModeSplash:
	default:
		errs = append(errs, fmt.Errorf("%w: mode %q", ErrInvalid, c.Mode))
	}
	if _, ok := boot.ParseAlign(c.Splash.Align); !ok {
		errs = append(errs, fmt.Errorf("%w: splash.align %q", ErrInvalid, c.Splash.Align))
	}
	if _, _, ok := graphics.ParseMode(c.Splash.RenderMode); !ok {
		errs = append(errs, fmt.Errorf("%w: splash.render_mode %q", ErrInvalid, c.Splash.RenderMode))
	}
	if _, ok := graphics.ParseStretch(c.Splash.Stretch); !ok {
		errs = append(errs, fmt.Errorf("%w: splash.stretch %q", ErrInvalid, c.Splash.Stretch))
	}
	if c.Splash.Timeout < 0 {
		errs = append(errs, fmt.Errorf("%w: splash.timeout %d", ErrInvalid, c.Splash.Timeout))
	}

	colors := map[string]string{
		"colors.title":         c.Colors.Title,
		"colors.label":         c.Colors.Label,
		"colors.separator":     c.Colors.Separator,
		"splash.colors.border": c.Splash.Colors.Border,
		"splash.colors.status": c.Splash.Colors.Status,
		"splash.colors.footer": c.Splash.Colors.Footer,
	}
	for key, v := range colors {
		if v == "" {
			continue
		}
		if _, err := ParseColor(v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}

	return errors.Join(errs...)
}

// ParseColor resolves a tcell color name, #rrggbb, or palette:N to RGB
func ParseColor(s string) (terminal.RGB, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.ReplaceAll(name, "_", "")

	var c tcell.Color
	if n, ok := strings.CutPrefix(name, "palette:"); ok {
		var idx int
		if _, err := fmt.Sscanf(n, "%d", &idx); err != nil || idx < 0 || idx > 255 {
			return terminal.RGB{}, fmt.Errorf("%w: color %q", ErrInvalid, s)
		}
		c = tcell.PaletteColor(idx)
	} else {
		c = tcell.GetColor(name)
	}

	if c == tcell.ColorDefault || !c.Valid() {
		return terminal.RGB{}, fmt.Errorf("%w: color %q", ErrInvalid, s)
	}
	r, g, b := c.RGB()
	if r < 0 {
		return terminal.RGB{}, fmt.Errorf("%w: color %q", ErrInvalid, s)
	}
	return terminal.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// MustColor parses s, returning fallback when it is empty or invalid
func MustColor(s string, fallback terminal.RGB) terminal.RGB {
	if s == "" {
		return fallback
	}
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}
