// Package timeline converts a frame counter into per-feature animation progress
package timeline

// Phase is the animation lifecycle stage; phases only advance forward
type Phase uint8

const (
	PhaseEntrance Phase = iota
	PhaseAlive
	PhaseFreeze
	PhaseDone
)

// String returns human-readable phase name
func (p Phase) String() string {
	switch p {
	case PhaseEntrance:
		return "Entrance"
	case PhaseAlive:
		return "Alive"
	case PhaseFreeze:
		return "Freeze"
	case PhaseDone:
		return "Done"
	default:
		return "Unknown"
	}
}
