package gesture

// Drag tracks one active drag on the counter track.
// Moves only change the visual offset; the count is proposed on End.
type Drag struct {
	ItemWidth float64

	startX float64
	offset float64
	active bool
}

// NewDrag returns an idle drag for the given item width.
func NewDrag(itemWidth float64) *Drag {
	if itemWidth <= 0 {
		itemWidth = DefaultItemWidth
	}
	return &Drag{ItemWidth: itemWidth}
}

// Start begins a drag at pointer position x.
func (d *Drag) Start(x float64) {
	d.startX = x
	d.offset = 0
	d.active = true
}

// Move records the pointer at x. It is ignored when no drag is active.
func (d *Drag) Move(x float64) {
	if !d.active {
		return
	}
	d.offset = x - d.startX
}

// Offset is the current visual displacement in pixels.
func (d *Drag) Offset() float64 { return d.offset }

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool { return d.active }

// End finishes the drag and returns the proposed count.
func (d *Drag) End(current int) int {
	if !d.active {
		return current
	}
	next := Release(current, d.offset, d.ItemWidth)
	d.offset = 0
	d.active = false
	return next
}
