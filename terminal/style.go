package terminal

import (
	"bufio"
)

// Styler emits SGR color sequences, skipping output when the style is unchanged
// One Styler per output stream; Invalidate after any external write that may reset attributes
type Styler struct {
	colorMode ColorMode

	lastFg    RGB
	lastBg    RGB
	lastHasBg bool
	lastValid bool
}

// NewStyler creates a styler for the given color mode
func NewStyler(mode ColorMode) *Styler {
	return &Styler{colorMode: mode}
}

// ColorMode returns the mode colors are encoded for
func (s *Styler) ColorMode() ColorMode {
	return s.colorMode
}

// Invalidate forces the next Set to emit a full sequence
func (s *Styler) Invalidate() {
	s.lastValid = false
}

// Reset writes SGR 0 and invalidates cached state
func (s *Styler) Reset(w *bufio.Writer) {
	w.Write(csiReset)
	s.lastValid = false
}

// Set emits the minimal sequence to switch to fg and optional bg
// hasBg false selects the terminal default background (SGR 49)
func (s *Styler) Set(w *bufio.Writer, fg, bg RGB, hasBg bool) {
	fgChanged := !s.lastValid || fg != s.lastFg
	bgChanged := !s.lastValid || hasBg != s.lastHasBg || (hasBg && bg != s.lastBg)

	if !fgChanged && !bgChanged {
		return
	}

	if fgChanged {
		s.writeFg(w, fg)
	}
	if bgChanged {
		if hasBg {
			s.writeBg(w, bg)
		} else {
			w.Write(csiDefaultBg)
		}
	}

	s.lastFg = fg
	s.lastBg = bg
	s.lastHasBg = hasBg
	s.lastValid = true
}

// writeFg writes complete fg color sequence
func (s *Styler) writeFg(w *bufio.Writer, fg RGB) {
	if s.colorMode == ColorModeTrueColor {
		w.Write(csiFgRGB)
		WriteInt(w, int(fg.R))
		w.WriteByte(';')
		WriteInt(w, int(fg.G))
		w.WriteByte(';')
		WriteInt(w, int(fg.B))
		w.WriteByte('m')
		return
	}
	w.Write(csiFg256)
	WriteInt(w, int(RGBTo256(fg)))
	w.WriteByte('m')
}

// writeBg writes complete bg color sequence
func (s *Styler) writeBg(w *bufio.Writer, bg RGB) {
	if s.colorMode == ColorModeTrueColor {
		w.Write(csiBgRGB)
		WriteInt(w, int(bg.R))
		w.WriteByte(';')
		WriteInt(w, int(bg.G))
		w.WriteByte(';')
		WriteInt(w, int(bg.B))
		w.WriteByte('m')
		return
	}
	w.Write(csiBg256)
	WriteInt(w, int(RGBTo256(bg)))
	w.WriteByte('m')
}
