package timeline

import (
	"testing"
)

func TestRamp(t *testing.T) {
	tests := []struct {
		frame, start, end uint32
		want              float64
	}{
		{0, 0, 6, 0.0},
		{3, 0, 6, 0.5},
		{6, 0, 6, 1.0},
		{100, 0, 6, 1.0},
		{4, 6, 12, 0.0},
		{9, 6, 12, 0.5},
		{0, 5, 5, 1.0},
		{5, 5, 5, 1.0},
		{1000, 5, 5, 1.0},
	}

	for _, tc := range tests {
		if got := Ramp(tc.frame, tc.start, tc.end); got != tc.want {
			t.Errorf("Ramp(%d, %d, %d) = %v, want %v", tc.frame, tc.start, tc.end, got, tc.want)
		}
	}
}

// TestPhaseMonotonic drives random tick/freeze sequences and checks phase never moves backward
func TestPhaseMonotonic(t *testing.T) {
	for _, entrance := range Presets() {
		for _, exit := range Presets() {
			for freezeAt := uint32(0); freezeAt < 50; freezeAt += 7 {
				tl := New(entrance, exit, DefaultFPS)
				last := tl.Phase()

				for i := uint32(0); i < 120; i++ {
					if i == freezeAt || i == freezeAt+3 {
						tl.TriggerFreeze()
					}
					tl.Tick()

					if tl.Phase() < last {
						t.Fatalf("%s/%s: phase moved backward %s -> %s at frame %d",
							entrance, exit, last, tl.Phase(), tl.Frame())
					}
					last = tl.Phase()
				}

				if !tl.IsDone() {
					t.Errorf("%s/%s freeze at %d: expected Done after 120 frames, got %s",
						entrance, exit, freezeAt, tl.Phase())
				}
			}
		}
	}
}

func TestEntranceToAlive(t *testing.T) {
	tl := New(PresetFast, PresetFast, DefaultFPS)

	for i := 0; i < 11; i++ {
		tl.Tick()
	}
	if tl.Phase() != PhaseEntrance {
		t.Fatalf("Expected Entrance at frame 11, got %s", tl.Phase())
	}

	tl.Tick()
	if tl.Phase() != PhaseAlive {
		t.Fatalf("Expected Alive at frame 12, got %s", tl.Phase())
	}
}

func TestTriggerFreezeIdempotent(t *testing.T) {
	tl := New(PresetSlow, PresetSlow, DefaultFPS)
	for i := 0; i < 5; i++ {
		tl.Tick()
	}

	tl.TriggerFreeze()
	start := tl.FreezeStart()
	tl.Tick()
	tl.TriggerFreeze()

	if tl.FreezeStart() != start {
		t.Errorf("Second TriggerFreeze moved freeze start %d -> %d", start, tl.FreezeStart())
	}
	if tl.Phase() != PhaseFreeze {
		t.Errorf("Expected Freeze, got %s", tl.Phase())
	}

	for !tl.IsDone() {
		tl.Tick()
	}
	frame := tl.Frame()
	tl.TriggerFreeze()
	tl.Tick()

	if tl.Phase() != PhaseDone {
		t.Errorf("TriggerFreeze after Done changed phase to %s", tl.Phase())
	}
	if tl.Frame() != frame {
		t.Errorf("Tick after Done advanced frame %d -> %d", frame, tl.Frame())
	}
}

func TestFastExitSequence(t *testing.T) {
	tl := New(PresetInstant, PresetFast, DefaultFPS)
	tl.Tick()
	tl.Tick()
	tl.TriggerFreeze()
	fs := tl.FreezeStart()

	if !tl.IsFreezeFlash() {
		t.Error("Expected flash at freeze_start+0")
	}
	if got := tl.CollapseProgress(); got != 0 {
		t.Errorf("Expected collapse 0 at freeze_start+0, got %v", got)
	}
	if tl.IsCollapsing() {
		t.Error("Expected not collapsing during flash")
	}

	tl.Tick()
	if tl.Frame() != fs+1 {
		t.Fatalf("Expected frame %d, got %d", fs+1, tl.Frame())
	}
	if tl.IsFreezeFlash() {
		t.Error("Expected flash to end at freeze_start+1")
	}
	if !tl.IsCollapsing() {
		t.Error("Expected collapsing at freeze_start+1")
	}

	prev := tl.CollapseProgress()
	for tl.Frame() < fs+6 {
		tl.Tick()
		cur := tl.CollapseProgress()
		if cur < prev {
			t.Errorf("Collapse progress decreased %v -> %v at frame %d", prev, cur, tl.Frame())
		}
		if tl.Frame() < fs+6 && cur <= prev {
			t.Errorf("Collapse progress did not rise at frame %d: %v", tl.Frame(), cur)
		}
		prev = cur
	}

	if tl.Phase() != PhaseDone {
		t.Errorf("Expected Done at freeze_start+6, got %s", tl.Phase())
	}
	if got := tl.CollapseProgress(); got != 1 {
		t.Errorf("Expected collapse 1 at Done, got %v", got)
	}
}

func TestCollapseEaseIn(t *testing.T) {
	tl := NewWithTiming(EntranceTiming{}, ExitTiming{FlashFrames: 0, CollapseFrames: 2}, DefaultFPS)
	tl.TriggerFreeze()
	tl.Tick()

	// Halfway through the collapse the quartic ease gives 0.5^4
	if got := tl.CollapseProgress(); got != 0.0625 {
		t.Errorf("Expected 0.0625, got %v", got)
	}
}

func TestCollapseStepWhenZeroFrames(t *testing.T) {
	tl := New(PresetInstant, PresetInstant, DefaultFPS)
	if got := tl.CollapseProgress(); got != 0 {
		t.Errorf("Expected 0 before freeze, got %v", got)
	}

	tl.TriggerFreeze()
	if got := tl.CollapseProgress(); got != 1 {
		t.Errorf("Expected 1 in Freeze, got %v", got)
	}
}

func TestInstantEndToEnd(t *testing.T) {
	tl := New(PresetInstant, PresetInstant, DefaultFPS)

	for i := 0; i < 10; i++ {
		if p := tl.BorderProgress(); p != 1 {
			t.Fatalf("Expected border progress 1 at frame %d, got %v", tl.Frame(), p)
		}
		tl.Tick()
	}

	tl.TriggerFreeze()
	ticks := 0
	for !tl.IsDone() && ticks < 10 {
		if p := tl.BorderProgress(); p != 1 {
			t.Fatalf("Expected border progress 1 at frame %d, got %v", tl.Frame(), p)
		}
		tl.Tick()
		ticks++
	}

	if ticks > 2 {
		t.Errorf("Expected Done within 2 ticks of freeze, took %d", ticks)
	}
}

func TestSceneVisibility(t *testing.T) {
	tl := New(PresetSlow, PresetSlow, DefaultFPS)

	if v := tl.StarVisibility(); v != 0 {
		t.Errorf("Expected stars hidden at frame 0, got %v", v)
	}
	for tl.Frame() < 9 {
		tl.Tick()
	}
	if v := tl.StarVisibility(); v != 0.5 {
		t.Errorf("Expected stars at 0.5 on frame 9, got %v", v)
	}
	if v := tl.CelestialVisibility(); v != 0 {
		t.Errorf("Expected celestial hidden on frame 9, got %v", v)
	}

	for tl.Phase() == PhaseEntrance {
		tl.Tick()
	}
	if tl.StarVisibility() != 1 || tl.CelestialVisibility() != 1 {
		t.Error("Expected full visibility in Alive")
	}
	if !tl.GradientActive() {
		t.Error("Expected gradient active in Alive")
	}

	tl.TriggerFreeze()
	if tl.StarVisibility() != 1 {
		t.Error("Expected stars at peak during flash")
	}
	if tl.GradientActive() {
		t.Error("Expected gradient inactive in Freeze")
	}
	tl.Tick()
	tl.Tick()
	if tl.StarVisibility() != 0 || tl.CelestialVisibility() != 0 {
		t.Error("Expected scene cleared after flash")
	}
}

func TestFooterBlink(t *testing.T) {
	tl := New(PresetFast, PresetSlow, 10)

	for tl.Frame() < 9 {
		tl.Tick()
	}
	if tl.FooterVisible() {
		t.Error("Expected footer hidden before footer start")
	}
	tl.Tick()
	if !tl.FooterVisible() {
		t.Error("Expected footer visible at footer start")
	}

	for tl.Phase() == PhaseEntrance {
		tl.Tick()
	}
	// Entrance done at 12; with 10 fps visible 12..21, hidden 22..31, visible 32..
	cases := map[uint32]bool{12: true, 21: true, 22: false, 31: false, 32: true}
	for tl.Frame() <= 32 {
		if want, ok := cases[tl.Frame()]; ok && tl.FooterVisible() != want {
			t.Errorf("Footer at frame %d: got %v, want %v", tl.Frame(), tl.FooterVisible(), want)
		}
		tl.Tick()
	}

	tl.TriggerFreeze()
	if !tl.FooterVisible() {
		t.Error("Expected footer visible in Freeze")
	}
	for !tl.IsDone() {
		tl.Tick()
	}
	if tl.FooterVisible() {
		t.Error("Expected footer hidden once Done")
	}
}

func TestPresetFallback(t *testing.T) {
	if ValidPreset("glacial") {
		t.Error("Expected unknown preset to be invalid")
	}
	for _, name := range Presets() {
		if !ValidPreset(name) {
			t.Errorf("Expected %q to be valid", name)
		}
	}
	if EntrancePreset("glacial") != EntrancePreset(PresetSlow) {
		t.Error("Expected unknown entrance preset to resolve to slow")
	}
	if ExitPreset("") != ExitPreset(PresetSlow) {
		t.Error("Expected empty exit preset to resolve to slow")
	}
}
