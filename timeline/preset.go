package timeline

// Window is a frame interval over which a feature ramps from hidden to shown
type Window struct {
	Start uint32
	End   uint32
}

// EntranceTiming holds the reveal windows of each scene feature
type EntranceTiming struct {
	Border    Window
	Stars     Window
	Celestial Window
	Status    Window

	FooterStart  uint32
	EntranceDone uint32
}

// ExitTiming holds the freeze flash and collapse lengths in frames
type ExitTiming struct {
	FlashFrames    uint32
	CollapseFrames uint32
}

const (
	PresetSlow    = "slow"
	PresetFast    = "fast"
	PresetInstant = "instant"
)

var entrancePresets = map[string]EntranceTiming{
	PresetSlow: {
		Border:       Window{0, 18},
		Stars:        Window{6, 12},
		Celestial:    Window{12, 17},
		Status:       Window{20, 35},
		FooterStart:  30,
		EntranceDone: 35,
	},
	PresetFast: {
		Border:       Window{0, 6},
		Stars:        Window{2, 4},
		Celestial:    Window{4, 6},
		Status:       Window{6, 12},
		FooterStart:  10,
		EntranceDone: 12,
	},
	PresetInstant: {},
}

var exitPresets = map[string]ExitTiming{
	PresetSlow:    {FlashFrames: 2, CollapseFrames: 10},
	PresetFast:    {FlashFrames: 1, CollapseFrames: 5},
	PresetInstant: {},
}

// Presets returns the preset names from slowest to fastest
func Presets() []string {
	return []string{PresetSlow, PresetFast, PresetInstant}
}

// ValidPreset reports whether name is a known preset
func ValidPreset(name string) bool {
	_, ok := entrancePresets[name]
	return ok
}

// EntrancePreset returns the named entrance timing, slow if unknown
func EntrancePreset(name string) EntranceTiming {
	if t, ok := entrancePresets[name]; ok {
		return t
	}
	return entrancePresets[PresetSlow]
}

// ExitPreset returns the named exit timing, slow if unknown
func ExitPreset(name string) ExitTiming {
	if t, ok := exitPresets[name]; ok {
		return t
	}
	return exitPresets[PresetSlow]
}
