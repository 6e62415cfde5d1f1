// Package boot runs the animated splash: geometry, the fixed-rate frame loop, resize and cleanup
package boot

import (
	"image"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/starfetch/graphics"
	"github.com/lixenwraith/starfetch/scene"
	"github.com/lixenwraith/starfetch/sysinfo"
	"github.com/lixenwraith/starfetch/terminal"
	"github.com/lixenwraith/starfetch/timeline"
)

// Align is the horizontal placement of the box
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// ParseAlign maps a config name to an alignment
func ParseAlign(s string) (Align, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return AlignLeft, true
	case "center", "centre":
		return AlignCenter, true
	case "right":
		return AlignRight, true
	default:
		return AlignLeft, false
	}
}

// String returns the config name
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Chimer plays a short sound when the exit flash starts
type Chimer interface {
	Play()
}

// Options is the entry contract of the splash
type Options struct {
	Info  sysinfo.Snapshot
	Align Align

	Mode     graphics.Mode
	Protocol graphics.Protocol

	// Image is the decoded background; nil selects the procedural scene
	Image          image.Image
	ImagePath      string
	Stretch        graphics.Stretch
	Transparency   uint8
	StarBrightness *uint8

	// Width and Height override the default box size when non-nil
	Width  *int
	Height *int

	MinWidth, MinHeight int
	// MaxWidth and MaxHeight of 0 are unbounded
	MaxWidth, MaxHeight int

	Timeout  time.Duration
	Entrance string
	Exit     string

	// Capture renders for a recording harness: no tty, no raw mode, automatic exit
	Capture bool

	FPS    uint32
	Colors scene.Colors
	Seed   uint64

	// ColorMode forces truecolor or 256-color output; nil detects from the environment
	ColorMode *terminal.ColorMode

	Chime  Chimer
	Logger *zap.Logger
}

// DefaultTimeout is the idle time after which the splash exits on its own
const DefaultTimeout = 120 * time.Second

// captureHold is how long a capture run stays Alive before exiting by itself
const captureHold = 3 * time.Second

// withDefaults fills zero-valued fields
func (o Options) withDefaults() Options {
	if o.FPS == 0 {
		o.FPS = timeline.DefaultFPS
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.Colors == (scene.Colors{}) {
		o.Colors = scene.DefaultColors()
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	o.MinWidth = max(o.MinWidth, MinBoxWidth)
	o.MinHeight = max(o.MinHeight, MinBoxHeight)
	return o
}

func (o Options) colorMode() terminal.ColorMode {
	if o.ColorMode != nil {
		return *o.ColorMode
	}
	return terminal.DetectColorMode()
}

// DefaultSeed mixes the wall clock and pid so separate runs get distinct starfields
func DefaultSeed() uint64 {
	return uint64(time.Now().UnixNano()) ^ uint64(os.Getpid())<<32
}
