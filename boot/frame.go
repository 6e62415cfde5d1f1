package boot

import (
	"github.com/lixenwraith/starfetch/render"
	"github.com/lixenwraith/starfetch/timeline"
)

// snapshot captures the timeline values painters read for one frame
func snapshot(tl *timeline.Timeline) render.Frame {
	return render.Frame{
		BorderProgress:      tl.BorderProgress(),
		StatusProgress:      tl.StatusProgress(),
		StarVisibility:      tl.StarVisibility(),
		CelestialVisibility: tl.CelestialVisibility(),
		CollapseProgress:    tl.CollapseProgress(),
		FooterVisible:       tl.FooterVisible(),
		Twinkle:             tl.GradientActive(),
		Flash:               tl.IsFreezeFlash(),
		Freeze:              tl.Phase() == timeline.PhaseFreeze,
		Collapsing:          tl.IsCollapsing() || tl.IsDone(),
	}
}

// staticFrame is the fully revealed Alive state without motion
func staticFrame() render.Frame {
	return render.Frame{
		BorderProgress:      1,
		StatusProgress:      1,
		StarVisibility:      1,
		CelestialVisibility: 1,
		FooterVisible:       true,
	}
}
