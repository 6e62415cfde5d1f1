package boot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/lixenwraith/starfetch/graphics"
	"github.com/lixenwraith/starfetch/render"
	"github.com/lixenwraith/starfetch/scene"
	"github.com/lixenwraith/starfetch/terminal"
)

// Run plays the splash on the controlling terminal
// A missing terminal, a failed raw-mode switch or a terminal too narrow for the box
// skip the splash and return nil so the caller can continue its normal output
func Run(ctx context.Context, opts Options) error {
	opts = opts.withDefaults()
	log := opts.Logger
	mode := opts.colorMode()

	if opts.Mode == graphics.ModeInline {
		if !opts.Capture {
			return RunInline(os.Stdout, opts)
		}
		cols, rows := terminal.StdoutSize()
		ct := &captureTerminal{w: os.Stdout, cols: cols, rows: rows}
		return NewLoop(ct, SystemClock{}, mode, opts).Run(ctx)
	}

	sess, err := terminal.Open()
	if err != nil {
		log.Debug("splash skipped", zap.Error(err))
		return nil
	}
	defer sess.Close()

	if err := sess.EnterRawMode(); err != nil {
		log.Debug("splash skipped, raw mode unavailable", zap.Error(err))
		return nil
	}
	defer sess.Restore()

	err = NewLoop(sess, SystemClock{}, mode, opts).Run(ctx)
	if errors.Is(err, terminal.ErrTooSmall) {
		log.Debug("splash skipped", zap.Error(err))
		return nil
	}
	return err
}

// RunInline writes one fully revealed frame as plain lines with no cursor addressing
func RunInline(w io.Writer, opts Options) error {
	opts = opts.withDefaults()

	bw, bh := boxSize(opts, 80, 24, 0, 0)
	bw = ResolveDim(bw, opts.MinWidth, opts.MaxWidth)
	bh = ResolveDim(bh, opts.MinHeight, opts.MaxHeight)

	rng := scene.NewRand(opts.Seed)
	c := render.New(bw, bh, opts.colorMode())
	s := scene.New(bw, bh, scene.BuildStatus(opts.Info), opts.Colors, rng)
	o := render.NewOrchestrator()

	var backdrop render.Painter
	if bl := newBackgroundLayer(opts, bw, bh, rng, false); bl != nil {
		backdrop = bl
	}
	s.Register(o, backdrop)
	o.PaintFrame(staticFrame(), c)

	if err := c.RenderInline(w); err != nil {
		return fmt.Errorf("inline splash: %w", err)
	}
	return nil
}
