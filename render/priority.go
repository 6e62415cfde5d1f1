package render

// Priority determines paint order. Lower values paint first
type Priority int

const (
	PriorityBackground Priority = iota
	PriorityStars
	PriorityCelestial
	PriorityBorder
	PriorityStatus
	PriorityFooter
	PriorityOverlay
)
