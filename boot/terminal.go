package boot

import (
	"io"
	"time"

	"github.com/lixenwraith/starfetch/terminal"
)

// Terminal is the terminal surface the loop drives; *terminal.Session satisfies it
type Terminal interface {
	io.Writer
	PollKey() bool
	QueryCursorRow(timeout time.Duration) (int, bool)
	WindowSize() (cols, rows int)
	CellPixelSize() (w, h int, ok bool)
	Restore() error
}

var _ Terminal = (*terminal.Session)(nil)

// captureTerminal writes to a plain stream with no input and no terminal queries
type captureTerminal struct {
	w          io.Writer
	cols, rows int
}

func (c *captureTerminal) Write(p []byte) (int, error)              { return c.w.Write(p) }
func (c *captureTerminal) PollKey() bool                            { return false }
func (c *captureTerminal) QueryCursorRow(time.Duration) (int, bool) { return 0, false }
func (c *captureTerminal) WindowSize() (int, int)                   { return c.cols, c.rows }
func (c *captureTerminal) CellPixelSize() (int, int, bool)          { return 0, 0, false }
func (c *captureTerminal) Restore() error                           { return nil }
