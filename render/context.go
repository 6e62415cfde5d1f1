package render

// Frame carries the per-frame animation values painters consume, passed by value
// Built from the timeline once per frame so painters never see a half-advanced state
type Frame struct {
	BorderProgress      float64
	StatusProgress      float64
	StarVisibility      float64
	CelestialVisibility float64
	CollapseProgress    float64

	FooterVisible bool
	Twinkle       bool // Alive phase: ambient star motion
	Flash         bool // Freeze flash window: full brightness
	Freeze        bool // Freeze phase, flash or collapse
	Collapsing    bool // Freeze phase after the flash
}
