package timeline

// DefaultFPS is the frame rate presets are tuned for
const DefaultFPS = 30

// Timeline is the four-phase animation state machine
// All progress methods are pure functions of the frame counter and phase
type Timeline struct {
	frame       uint32
	phase       Phase
	freezeStart uint32

	entrance EntranceTiming
	exit     ExitTiming
	fps      uint32
}

// New creates a timeline at frame 0 in Entrance; unknown preset names fall back to slow
func New(entrance, exit string, fps uint32) *Timeline {
	return NewWithTiming(EntrancePreset(entrance), ExitPreset(exit), fps)
}

// NewWithTiming creates a timeline from explicit timings
func NewWithTiming(entrance EntranceTiming, exit ExitTiming, fps uint32) *Timeline {
	if fps == 0 {
		fps = DefaultFPS
	}
	return &Timeline{
		phase:    PhaseEntrance,
		entrance: entrance,
		exit:     exit,
		fps:      fps,
	}
}

// Tick advances one frame and applies time-driven transitions
func (t *Timeline) Tick() {
	if t.phase == PhaseDone {
		return
	}
	t.frame++

	switch t.phase {
	case PhaseEntrance:
		if t.frame >= t.entrance.EntranceDone {
			t.phase = PhaseAlive
		}
	case PhaseFreeze:
		if t.frame-t.freezeStart >= t.exit.FlashFrames+t.exit.CollapseFrames {
			t.phase = PhaseDone
		}
	}
}

// TriggerFreeze starts the exit sequence; no-op once in Freeze or Done
func (t *Timeline) TriggerFreeze() {
	if t.phase != PhaseEntrance && t.phase != PhaseAlive {
		return
	}
	t.phase = PhaseFreeze
	t.freezeStart = t.frame
}

// IsDone reports whether the exit sequence has finished
func (t *Timeline) IsDone() bool { return t.phase == PhaseDone }

// Phase returns the current phase
func (t *Timeline) Phase() Phase { return t.phase }

// Frame returns the number of ticks since creation
func (t *Timeline) Frame() uint32 { return t.frame }

// FreezeStart returns the frame at which Freeze was entered
func (t *Timeline) FreezeStart() uint32 { return t.freezeStart }

// FPS returns the frame rate the timeline advances at
func (t *Timeline) FPS() uint32 { return t.fps }

// Ramp is 0 before start, 1 at or after end, linear between; start == end is always 1
func Ramp(frame, start, end uint32) float64 {
	if end <= start {
		return 1
	}
	if frame <= start {
		return 0
	}
	if frame >= end {
		return 1
	}
	return float64(frame-start) / float64(end-start)
}

func (t *Timeline) ramp(w Window) float64 {
	return Ramp(t.frame, w.Start, w.End)
}

// BorderProgress is the horizontal reveal of the border
func (t *Timeline) BorderProgress() float64 {
	if t.phase != PhaseEntrance {
		return 1
	}
	return t.ramp(t.entrance.Border)
}

// StatusProgress is the fraction of the status line revealed
func (t *Timeline) StatusProgress() float64 {
	if t.phase != PhaseEntrance {
		return 1
	}
	return t.ramp(t.entrance.Status)
}

// StarVisibility is the starfield opacity
func (t *Timeline) StarVisibility() float64 {
	return t.sceneVisibility(t.entrance.Stars)
}

// CelestialVisibility is the earth and moon opacity
func (t *Timeline) CelestialVisibility() float64 {
	return t.sceneVisibility(t.entrance.Celestial)
}

// sceneVisibility ramps in during Entrance and is cleared after the freeze flash
func (t *Timeline) sceneVisibility(w Window) float64 {
	switch t.phase {
	case PhaseEntrance:
		return t.ramp(w)
	case PhaseAlive:
		return 1
	case PhaseFreeze:
		if t.IsFreezeFlash() {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// FooterVisible gates the footer: delayed in Entrance, blinking once a second in Alive
func (t *Timeline) FooterVisible() bool {
	switch t.phase {
	case PhaseEntrance:
		return t.frame >= t.entrance.FooterStart
	case PhaseAlive:
		elapsed := t.frame - t.entrance.EntranceDone
		return (elapsed/t.fps)%2 == 0
	case PhaseFreeze:
		return true
	default:
		return false
	}
}

// GradientActive reports whether ambient motion such as twinkle runs
func (t *Timeline) GradientActive() bool {
	return t.phase == PhaseAlive
}

// IsFreezeFlash reports the full-brightness window at the start of Freeze
func (t *Timeline) IsFreezeFlash() bool {
	return t.phase == PhaseFreeze && t.frame-t.freezeStart < t.exit.FlashFrames
}

// IsCollapsing reports Freeze after the flash window
func (t *Timeline) IsCollapsing() bool {
	return t.phase == PhaseFreeze && !t.IsFreezeFlash()
}

// CollapseProgress is the eased border collapse, accelerating toward 1
func (t *Timeline) CollapseProgress() float64 {
	if t.exit.CollapseFrames == 0 {
		if t.phase == PhaseFreeze || t.phase == PhaseDone {
			return 1
		}
		return 0
	}

	var p float64
	switch t.phase {
	case PhaseDone:
		p = 1
	case PhaseFreeze:
		elapsed := t.frame - t.freezeStart
		if elapsed < t.exit.FlashFrames {
			return 0
		}
		p = min(1, float64(elapsed-t.exit.FlashFrames)/float64(t.exit.CollapseFrames))
	default:
		return 0
	}
	return p * p * p * p
}
