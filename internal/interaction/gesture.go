package interaction

import "math"

// DefaultThreshold is how far, in pixels, the pointer must travel from the
// press point before the press becomes a drag.
const DefaultThreshold = 4.0

// HitFunc resolves a pointer position to a tile id.
type HitFunc func(x, y float64) (int, bool)

// Gesture turns raw pointer input on the drag surface into controller
// signals. Every event it accepts is consumed: hosts must not give
// accepted press/move/release/secondary events any native meaning.
type Gesture struct {
	ctrl      *Controller
	threshold float64
	surface   func(x, y float64) bool

	pressed  bool
	dragging bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
}

// GestureOption configures a Gesture.
type GestureOption func(*Gesture)

// WithThreshold sets the press-to-drag distance.
func WithThreshold(px float64) GestureOption {
	return func(g *Gesture) {
		if px >= 0 {
			g.threshold = px
		}
	}
}

// WithSurface limits the gesture to points for which inside returns true.
// Presses elsewhere are left for the host.
func WithSurface(inside func(x, y float64) bool) GestureOption {
	return func(g *Gesture) { g.surface = inside }
}

// NewGesture returns a recognizer that drives ctrl.
func NewGesture(ctrl *Controller, opts ...GestureOption) *Gesture {
	g := &Gesture{ctrl: ctrl, threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gesture) inside(x, y float64) bool {
	return g.surface == nil || g.surface(x, y)
}

// Press begins a gesture. It reports whether the event was consumed.
func (g *Gesture) Press(x, y float64) bool {
	if !g.inside(x, y) {
		return false
	}
	g.pressed = true
	g.dragging = false
	g.startX, g.startY = x, y
	g.lastX, g.lastY = x, y
	return true
}

// Move tracks the pointer. Travelling past the threshold while pressed
// starts a drag.
func (g *Gesture) Move(x, y float64) bool {
	if !g.pressed {
		return g.inside(x, y)
	}
	g.lastX, g.lastY = x, y
	if !g.dragging && math.Hypot(x-g.startX, y-g.startY) > g.threshold {
		g.dragging = true
		g.ctrl.DragStart()
	}
	return true
}

// Release ends the gesture. After a drag, the click that the same release
// would produce reaches the controller while it is still Dragging, so it
// is suppressed, and then the drag stops with the cumulative delta.
// Without a drag, the tile under the pointer (if any) is clicked.
func (g *Gesture) Release(x, y float64, hit HitFunc) bool {
	if !g.pressed {
		return false
	}
	g.Move(x, y)
	g.pressed = false

	if g.dragging {
		g.dragging = false
		if id, ok := hit(x, y); ok {
			g.ctrl.Click(id)
		}
		g.ctrl.DragStop(x-g.startX, y-g.startY)
		return true
	}
	if id, ok := hit(x, y); ok {
		g.ctrl.Click(id)
	}
	// A controller left in Dragging with no drag under way (initial state)
	// returns to Idle once this tap completes.
	if g.ctrl.IsDragging() {
		g.ctrl.Abandon()
	}
	return true
}

// Secondary swallows context-menu presses on the surface.
func (g *Gesture) Secondary(x, y float64) bool {
	return g.inside(x, y)
}

// Cancel drops an in-flight gesture, e.g. when the window loses focus.
func (g *Gesture) Cancel() {
	if g.dragging || g.ctrl.IsDragging() {
		g.ctrl.Abandon()
	}
	g.pressed = false
	g.dragging = false
}

// Pressed reports whether the primary button is held on the surface.
func (g *Gesture) Pressed() bool { return g.pressed }

// Dragging reports whether the current press has become a drag.
func (g *Gesture) Dragging() bool { return g.dragging }

// Delta returns the live drag delta, or zero when not dragging. Renderers
// add it to the grid offset for a preview; it is only applied on release.
func (g *Gesture) Delta() (dx, dy float64) {
	if !g.dragging {
		return 0, 0
	}
	return g.lastX - g.startX, g.lastY - g.startY
}
