package boot

import (
	"github.com/lixenwraith/starfetch/graphics"
)

const (
	DefaultWidth  = 68
	DefaultHeight = 23

	// MinBoxWidth and MinBoxHeight keep one scene row between the separators
	MinBoxWidth  = 10
	MinBoxHeight = 7

	// PadLeft is the gap to the terminal edge for left and right alignment
	PadLeft = 1

	// chromeW and chromeH are the cells around the image interior: side borders,
	// and top, status, two separators, footer and bottom rows
	chromeW = 2
	chromeH = 6

	// imageExtraRows is added to the box height when an inline image is shown
	imageExtraRows = 1
)

// ResolveDim clamps requested to [lo, hi]; hi <= 0 is unbounded and hi < lo yields lo
func ResolveDim(requested, lo, hi int) int {
	if hi > 0 && requested > hi {
		requested = hi
	}
	if requested < lo {
		requested = lo
	}
	return requested
}

// alignCol returns the 1-indexed origin column for a box of width bw
func alignCol(a Align, termW, bw int) int {
	switch a {
	case AlignCenter:
		return max(0, termW-bw)/2 + 1
	case AlignRight:
		return max(0, termW-bw-PadLeft) + 1
	default:
		return PadLeft + 1
	}
}

// originRow places a box of reserve rows so that it ends on the cursor row
func originRow(cursorRow, reserve int) int {
	if cursorRow >= reserve {
		return cursorRow - reserve + 1
	}
	return 1
}

// interior returns the image rectangle inside the chrome of a bw×bh box
func interior(bw, bh int) (x, y, w, h int) {
	return 1, 3, bw - chromeW, bh - chromeH
}

// boxSize returns the initial box size before min/max clamping
func boxSize(o Options, termW, termH, cellPxW, cellPxH int) (int, int) {
	w, h := DefaultWidth, DefaultHeight
	if o.Width != nil || o.Height != nil {
		if o.Width != nil {
			w = *o.Width
		}
		if o.Height != nil {
			h = *o.Height
		}
		return w, h
	}
	if o.Image == nil {
		return w, h
	}

	switch o.Mode {
	case graphics.ModeImage:
		cw, ch := graphics.CellSizeFor(o.Image, cellPxW, cellPxH)
		return graphics.FitWithChrome(cw, ch, termW, termH, chromeW, chromeH)
	case graphics.ModeInline:
		// Capture harnesses do not report a reliable size; assume 80×24
		cw, ch := graphics.CellSizeFor(o.Image, 0, 0)
		return graphics.FitWithChrome(cw, ch, 80, 24, chromeW, chromeH)
	default:
		cw, ch := graphics.CellSizeFor(o.Image, 0, 0)
		return graphics.FitWithChrome(cw, ch, termW, termH, chromeW, chromeH)
	}
}

// resizedBox recomputes the box for a new terminal size
func resizedBox(o Options, baseW, baseH, termW, termH int, cellW, cellH float64, imageMode bool) (int, int) {
	var w, h int
	if imageMode && cellW > 0 && cellH > 0 {
		w, h = graphics.FitWithChrome(cellW, cellH, termW, termH, chromeW, chromeH)
		h += imageExtraRows
	} else {
		w = min(baseW, termW-1)
		h = min(baseH, termH-1)
	}
	return ResolveDim(w, o.MinWidth, o.MaxWidth), ResolveDim(h, o.MinHeight, o.MaxHeight)
}
