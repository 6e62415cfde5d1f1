package render

// Painter is implemented by scene layers with visual output
type Painter interface {
	Paint(f Frame, c *Canvas)
}

// PainterFunc adapts a function to Painter
type PainterFunc func(f Frame, c *Canvas)

// Paint calls fn(f, c)
func (fn PainterFunc) Paint(f Frame, c *Canvas) { fn(f, c) }

// VisibilityToggle is optionally implemented to skip a layer for a frame
type VisibilityToggle interface {
	Visible(f Frame) bool
}

type painterEntry struct {
	painter  Painter
	priority Priority
	index    int // registration order for stable sort
}

// Orchestrator paints registered layers in priority order
type Orchestrator struct {
	painters []painterEntry
	regCount int
}

// NewOrchestrator creates an empty orchestrator
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{
		painters: make([]painterEntry, 0, 8),
	}
}

// Register adds a painter at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(p Painter, priority Priority) {
	entry := painterEntry{
		painter:  p,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.painters)
	for i, e := range o.painters {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.painters = append(o.painters, painterEntry{})
	copy(o.painters[pos+1:], o.painters[pos:])
	o.painters[pos] = entry
}

// Len returns the number of registered painters
func (o *Orchestrator) Len() int {
	return len(o.painters)
}

// PaintFrame clears the canvas and runs every visible painter in order
func (o *Orchestrator) PaintFrame(f Frame, c *Canvas) {
	c.Clear()

	for _, entry := range o.painters {
		if vt, ok := entry.painter.(VisibilityToggle); ok && !vt.Visible(f) {
			continue
		}
		entry.painter.Paint(f, c)
	}
}
