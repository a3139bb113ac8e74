// Package interaction decides whether pointer input is a pan or a tile
// click, owns the single open detail view, and applies completed pans.
package interaction

// State is the controller's drag state.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// NoTile is returned by OpenTile when no detail view is open.
const NoTile = -1

// Panner receives the cumulative delta of a completed pan.
type Panner interface {
	Pan(dx, dy float64)
}

// PannerFunc adapts a function to Panner.
type PannerFunc func(dx, dy float64)

// Pan calls f(dx, dy).
func (f PannerFunc) Pan(dx, dy float64) { f(dx, dy) }

// EventKind names the outcome of a signal for observers.
type EventKind string

const (
	EventDragStart       EventKind = "drag_start"
	EventDragStop        EventKind = "drag_stop"
	EventClickOpen       EventKind = "click_open"
	EventClickSuppressed EventKind = "click_suppressed"
	EventClose           EventKind = "close"
	EventAbandon         EventKind = "abandon"
	EventIgnored         EventKind = "ignored"
)

// Event describes one handled signal.
type Event struct {
	Kind   EventKind
	Signal string  // the input signal that produced this event
	Tile   int     // tile id for clicks and closes, NoTile otherwise
	DX, DY float64 // pan delta for drag_stop
}

// Controller is the Idle/Dragging state machine. It is not safe for
// concurrent use; all signals arrive on the UI goroutine.
type Controller struct {
	state    State
	open     int
	panner   Panner
	observer func(Event)
}

// Option configures a Controller.
type Option func(*Controller)

// WithInitialDragging sets the drag state at construction.
func WithInitialDragging(dragging bool) Option {
	return func(c *Controller) {
		if dragging {
			c.state = Dragging
		} else {
			c.state = Idle
		}
	}
}

// WithObserver registers fn to receive every handled signal.
func WithObserver(fn func(Event)) Option {
	return func(c *Controller) { c.observer = fn }
}

// NewController returns an idle controller that applies pans to p.
func NewController(p Panner, opts ...Option) *Controller {
	c := &Controller{state: Idle, open: NoTile, panner: p}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current drag state.
func (c *Controller) State() State { return c.state }

// IsDragging reports whether a pan is in progress.
func (c *Controller) IsDragging() bool { return c.state == Dragging }

// OpenTile returns the tile whose detail view is open.
func (c *Controller) OpenTile() (int, bool) {
	return c.open, c.open != NoTile
}

// IsOpen reports whether tile id's detail view is open.
func (c *Controller) IsOpen(id int) bool { return c.open != NoTile && c.open == id }

// DragStart enters Dragging. A second start without a stop is ignored.
func (c *Controller) DragStart() {
	if c.state == Dragging {
		c.emit(Event{Kind: EventIgnored, Signal: "drag_start", Tile: NoTile})
		return
	}
	c.state = Dragging
	c.emit(Event{Kind: EventDragStart, Signal: "drag_start", Tile: NoTile})
}

// DragStop returns to Idle and applies the cumulative delta of the gesture
// to the grid. A stop without a matching start applies nothing.
func (c *Controller) DragStop(dx, dy float64) {
	if c.state != Dragging {
		c.emit(Event{Kind: EventIgnored, Signal: "drag_stop", Tile: NoTile, DX: dx, DY: dy})
		return
	}
	c.state = Idle
	if c.panner != nil {
		c.panner.Pan(dx, dy)
	}
	c.emit(Event{Kind: EventDragStop, Signal: "drag_stop", Tile: NoTile, DX: dx, DY: dy})
}

// Click opens the detail view for tile id unless a drag is in progress.
// It reports whether the click was accepted; a suppressed click is
// consumed and must not be handled by anything else.
func (c *Controller) Click(id int) bool {
	if c.state == Dragging {
		c.emit(Event{Kind: EventClickSuppressed, Signal: "click", Tile: id})
		return false
	}
	c.open = id
	c.emit(Event{Kind: EventClickOpen, Signal: "click", Tile: id})
	return true
}

// Close dismisses the open detail view, if any.
func (c *Controller) Close() {
	id := c.open
	c.open = NoTile
	c.emit(Event{Kind: EventClose, Signal: "close", Tile: id})
}

// Abandon resets to Idle when the platform drops a gesture mid-way.
// No pan is applied.
func (c *Controller) Abandon() {
	if c.state == Idle {
		return
	}
	c.state = Idle
	c.emit(Event{Kind: EventAbandon, Signal: "abandon", Tile: NoTile})
}

func (c *Controller) emit(e Event) {
	if c.observer != nil {
		c.observer(e)
	}
}
