package render

import (
	"bufio"
	"io"

	"github.com/lixenwraith/starfetch/terminal"
)

// outputBufferSize holds a full frame of a large box without intermediate flushes
const outputBufferSize = 64 * 1024

// writer returns the canvas's buffered writer bound to w
func (c *Canvas) writer(w io.Writer) *bufio.Writer {
	if c.bw == nil {
		c.bw = bufio.NewWriterSize(w, outputBufferSize)
	} else {
		c.bw.Reset(w)
	}
	return c.bw
}

// Render writes the canvas at the 1-indexed terminal origin
// Each row starts with one absolute cursor move; protected cells are stepped over with
// cursor-forward so the inline image beneath them is not disturbed
func (c *Canvas) Render(w io.Writer, originRow, originCol int) error {
	bw := c.writer(w)
	c.styler.Invalidate()

	for y := 0; y < c.height; y++ {
		row := y * c.width
		positioned := false
		skip := 0
		prevEmitted := false

		for x := 0; x < c.width; x++ {
			cell := c.cells[row+x]

			if cell.Cont {
				// The wide rune to the left already advanced the cursor past this column
				if !prevEmitted && positioned {
					skip++
				}
				prevEmitted = false
				continue
			}
			if cell.Protected {
				if positioned {
					skip++
				}
				prevEmitted = false
				continue
			}

			if !positioned {
				terminal.WriteCursorPos(bw, originRow+y, originCol+x)
				positioned = true
			} else if skip > 0 {
				terminal.WriteCursorForward(bw, skip)
			}
			skip = 0

			c.styler.Set(bw, cell.Fg, cell.Bg, cell.HasBg)
			writeRune(bw, cell.Rune)
			prevEmitted = true
		}

		if positioned {
			c.styler.Reset(bw)
		}
	}

	return bw.Flush()
}

// RenderInline writes the canvas row by row with no cursor addressing
// Used where absolute addressing is unsafe, such as output captured verbatim
func (c *Canvas) RenderInline(w io.Writer) error {
	bw := c.writer(w)
	c.styler.Invalidate()

	for y := 0; y < c.height; y++ {
		row := y * c.width
		for x := 0; x < c.width; x++ {
			cell := c.cells[row+x]
			if cell.Cont {
				continue
			}
			if cell.Protected {
				c.styler.Set(bw, DefaultFg, RGB{}, false)
				bw.WriteByte(' ')
				continue
			}
			c.styler.Set(bw, cell.Fg, cell.Bg, cell.HasBg)
			writeRune(bw, cell.Rune)
		}
		c.styler.Reset(bw)
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func writeRune(w *bufio.Writer, r rune) {
	if r == 0 {
		r = ' '
	}
	if r < 0x80 {
		w.WriteByte(byte(r))
	} else {
		w.WriteRune(r)
	}
}
