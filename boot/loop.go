package boot

import (
	"bufio"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/starfetch/graphics"
	"github.com/lixenwraith/starfetch/render"
	"github.com/lixenwraith/starfetch/scene"
	"github.com/lixenwraith/starfetch/terminal"
	"github.com/lixenwraith/starfetch/timeline"
)

// resizeDebounce lets a drag-resize settle before the size is read again
const resizeDebounce = 100 * time.Millisecond

// Loop is the fixed-rate splash loop. It owns the canvas, timeline and scene for one run
type Loop struct {
	term      Terminal
	clock     Clock
	opts      Options
	log       *zap.Logger
	colorMode terminal.ColorMode

	tl     *timeline.Timeline
	rng    *scene.Rand
	status string

	canvas *render.Canvas
	orch   *render.Orchestrator
	scn    *scene.Scene

	baseW, baseH         int
	bw, bh               int
	termW, termH         int
	originRow, originCol int

	// imageMode is Image mode with a decoded image; imagePNG is nil while the
	// current geometry cannot show it
	imageMode              bool
	imageCellW, imageCellH float64
	imagePNG               []byte
	imageEmitted           bool

	// hidden is set while a resize left the terminal narrower than the minimum box
	hidden bool

	chimed bool
}

// NewLoop prepares a loop; nothing is written until Run
func NewLoop(term Terminal, clock Clock, mode terminal.ColorMode, opts Options) *Loop {
	opts = opts.withDefaults()
	if !timeline.ValidPreset(opts.Entrance) {
		opts.Logger.Warn("unknown entrance preset, using slow", zap.String("entrance", opts.Entrance))
	}
	if !timeline.ValidPreset(opts.Exit) {
		opts.Logger.Warn("unknown exit preset, using slow", zap.String("exit", opts.Exit))
	}
	return &Loop{
		term:      term,
		clock:     clock,
		opts:      opts,
		log:       opts.Logger,
		colorMode: mode,
		tl:        timeline.New(opts.Entrance, opts.Exit, opts.FPS),
		rng:       scene.NewRand(opts.Seed),
		status:    scene.BuildStatus(opts.Info),
	}
}

// Timeline exposes the animation state for inspection
func (l *Loop) Timeline() *timeline.Timeline { return l.tl }

// Origin returns the 1-indexed terminal position of the box
func (l *Loop) Origin() (row, col int) { return l.originRow, l.originCol }

// Size returns the current box size
func (l *Loop) Size() (w, h int) { return l.bw, l.bh }

// Run plays the splash until the exit sequence completes
// A key press, ctx cancellation or the timeout starts the exit; rendering continues through it
func (l *Loop) Run(ctx context.Context) error {
	if err := l.setup(); err != nil {
		return err
	}
	defer l.cleanup()

	budget := time.Second / time.Duration(l.tl.FPS())
	start := l.clock.Now()
	doneRendered := false

	for {
		frameStart := l.clock.Now()
		elapsed := frameStart.Sub(start)

		if elapsed > l.opts.Timeout {
			l.freeze("timeout")
		}
		if l.tl.IsDone() {
			if doneRendered {
				return nil
			}
			doneRendered = true
		}
		if ctx.Err() != nil {
			l.freeze("cancelled")
		}

		if l.opts.Capture {
			if l.tl.Phase() == timeline.PhaseAlive && elapsed > captureHold {
				l.freeze("capture hold elapsed")
			}
		} else {
			if l.term.PollKey() {
				l.freeze("key")
			}
			l.checkResize()
		}

		if err := l.renderFrame(); err != nil {
			return fmt.Errorf("render frame %d: %w", l.tl.Frame(), err)
		}

		l.tl.Tick()

		spent := l.clock.Now().Sub(frameStart)
		if spent > budget {
			l.log.Debug("frame overrun", zap.Uint32("frame", l.tl.Frame()), zap.Duration("spent", spent))
		}
		l.clock.Sleep(FrameSleep(spent, budget))
	}
}

func (l *Loop) freeze(reason string) {
	switch l.tl.Phase() {
	case timeline.PhaseEntrance, timeline.PhaseAlive:
		l.log.Info("splash exit", zap.String("reason", reason), zap.Uint32("frame", l.tl.Frame()))
		l.tl.TriggerFreeze()
	}
}

// setup sizes the box, reserves terminal rows and builds the first scene
func (l *Loop) setup() error {
	l.termW, l.termH = l.term.WindowSize()
	pxW, pxH, _ := l.term.CellPixelSize()

	l.imageMode = l.opts.Mode == graphics.ModeImage && l.opts.Image != nil
	extra := 0
	if l.imageMode {
		extra = imageExtraRows
		l.imageCellW, l.imageCellH = graphics.CellSizeFor(l.opts.Image, pxW, pxH)
	}

	w, h := boxSize(l.opts, l.termW, l.termH, pxW, pxH)
	l.baseW = ResolveDim(w, l.opts.MinWidth, l.opts.MaxWidth)
	l.baseH = ResolveDim(h, l.opts.MinHeight, l.opts.MaxHeight) + extra
	l.bw, l.bh = l.baseW, l.baseH

	if !l.opts.Capture && l.termW < l.bw {
		return fmt.Errorf("%w: box needs %d columns, terminal has %d", terminal.ErrTooSmall, l.bw, l.termW)
	}

	if l.opts.Capture {
		l.originRow, l.originCol = 1, 1
	} else {
		l.reserveRows()
		l.originCol = alignCol(l.opts.Align, l.termW, l.bw)
	}

	l.term.Write(terminal.SeqCursorHide)
	l.build()

	l.log.Debug("splash geometry",
		zap.Int("width", l.bw), zap.Int("height", l.bh),
		zap.Int("origin_row", l.originRow), zap.Int("origin_col", l.originCol),
		zap.Stringer("mode", l.opts.Mode), zap.Stringer("protocol", l.opts.Protocol),
		zap.Stringer("color", l.colorMode))
	return nil
}

// reserveRows scrolls enough blank lines for the box and anchors it above the cursor
func (l *Loop) reserveRows() {
	reserve := min(l.bh, l.termH)
	bw := bufio.NewWriter(l.term)
	for i := 0; i < reserve-1; i++ {
		bw.WriteByte('\n')
	}
	bw.Flush()

	row, ok := l.term.QueryCursorRow(terminal.CursorQueryTimeout)
	if !ok {
		l.log.Debug("cursor query timed out, assuming bottom row", zap.Int("row", l.termH))
		row = l.termH
	}
	l.originRow = originRow(row, reserve)

	for r := l.originRow; r < l.originRow+l.bh; r++ {
		terminal.WriteEraseRow(bw, r)
	}
	bw.Flush()
}

// build creates a fresh canvas, scene and layer stack for the current geometry
func (l *Loop) build() {
	l.canvas = render.New(l.bw, l.bh, l.colorMode)
	l.scn = scene.New(l.bw, l.bh, l.status, l.opts.Colors, l.rng)
	l.orch = render.NewOrchestrator()

	var backdrop render.Painter
	switch {
	case l.imageMode:
		if l.prepareImage() {
			backdrop = imageLayer{}
		}
	case l.opts.Image != nil:
		if bl := newBackgroundLayer(l.opts, l.bw, l.bh, l.rng, true); bl != nil {
			backdrop = bl
		}
	}
	l.scn.Register(l.orch, backdrop)
}

// prepareImage resizes and encodes the image for the current interior; false falls back to the procedural scene
func (l *Loop) prepareImage() bool {
	l.imagePNG = nil
	l.imageEmitted = false

	_, _, iw, ih := interior(l.bw, l.bh)
	if iw < 1 || ih < 1 {
		l.log.Debug("image interior empty, using procedural scene", zap.Int("width", l.bw), zap.Int("height", l.bh))
		return false
	}

	pxW, pxH, _ := l.term.CellPixelSize()
	pw, ph := graphics.PixelSize(iw, ih, pxW, pxH)
	data, err := graphics.Encode(graphics.Resize(l.opts.Image, pw, ph, l.opts.Stretch))
	if err != nil {
		l.log.Warn("image encode failed, using procedural scene", zap.Error(err))
		return false
	}
	l.imagePNG = data
	return true
}

// emitImage masks the interior and sends the inline image once per geometry
func (l *Loop) emitImage() {
	x, y, w, h := interior(l.bw, l.bh)
	l.canvas.SetImageMask(x, y, x+w, y+h)
	if err := graphics.Emit(l.term, l.opts.Protocol, l.imagePNG, w, h, l.originRow+y, l.originCol+x); err != nil {
		l.log.Warn("image emit failed", zap.Error(err))
	}
	l.imageEmitted = true
}

func (l *Loop) renderFrame() error {
	f := snapshot(l.tl)

	if f.Flash && !l.chimed && l.opts.Chime != nil {
		l.opts.Chime.Play()
		l.chimed = true
	}
	if l.hidden {
		return nil
	}
	if l.imagePNG != nil && !f.Collapsing && !l.imageEmitted {
		l.emitImage()
	}

	l.orch.PaintFrame(f, l.canvas)
	return l.canvas.Render(l.term, l.originRow, l.originCol)
}

// checkResize rebuilds everything when the terminal size changed since the last frame
func (l *Loop) checkResize() {
	w, h := l.term.WindowSize()
	if w == l.termW && h == l.termH {
		return
	}

	// The first observed size may be mid-drag; trust only the settled one
	l.clock.Sleep(resizeDebounce)
	w, h = l.term.WindowSize()

	bw := bufio.NewWriter(l.term)
	for r := 1; r <= h; r++ {
		terminal.WriteEraseRow(bw, r)
	}
	bw.Flush()

	l.termW, l.termH = w, h
	l.bw, l.bh = resizedBox(l.opts, l.baseW, l.baseH, w, h, l.imageCellW, l.imageCellH, l.imageMode)
	l.originRow = 1
	l.originCol = alignCol(l.opts.Align, w, l.bw)
	l.hidden = l.bw > w
	l.build()

	if l.hidden {
		l.log.Debug("terminal narrower than the box, drawing suspended",
			zap.Int("cols", w), zap.Int("width", l.bw))
	}

	l.log.Debug("terminal resized",
		zap.Int("cols", w), zap.Int("rows", h),
		zap.Int("width", l.bw), zap.Int("height", l.bh))
}

// cleanup leaves the top border, status and bottom border on screen and parks the cursor below
func (l *Loop) cleanup() {
	if l.canvas != nil {
		l.canvas.ClearImageMask()
	}

	bw := bufio.NewWriter(l.term)
	for y := 3; y < l.bh; y++ {
		terminal.WriteEraseRow(bw, l.originRow+y)
	}
	bw.Write(terminal.SeqCursorShow)
	bw.Flush()

	if err := l.term.Restore(); err != nil {
		l.log.Debug("restore terminal mode", zap.Error(err))
	}

	terminal.WriteCursorPos(bw, l.originRow+3, 1)
	bw.Flush()
}
