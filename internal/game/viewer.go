package game

import (
	"fmt"
	"math"

	"github.com/Garsondee/Hex-Map/internal/hexgrid"
	"github.com/Garsondee/Hex-Map/internal/interaction"
)

// borderWidth is the pixel gap between the window edge and the map surface.
const borderWidth = 24

// Detail panel geometry, in screen pixels.
const (
	panelW     = 440
	panelH     = 176
	panelClose = 28 // close button edge
	panelInset = 8
)

// rectF is a screen-space rectangle.
type rectF struct {
	x, y, w, h float64
}

func (r rectF) contains(x, y float64) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// Viewer holds everything Update needs and nothing that touches Ebiten,
// so the window and the headless harness drive the same code.
type Viewer struct {
	width    int // full window
	height   int
	surface  rectF // map viewport, left of the event log panel
	originX  float64
	originY  float64
	grid     *hexgrid.Grid
	ctrl     *interaction.Controller
	gesture  *interaction.Gesture
	eventLog *EventLog
	tick     int

	// copyText writes the detail panel text somewhere the user can paste it.
	copyText func(string) error
	// listeners receive every controller event after the event log.
	listeners []func(tick int, e interaction.Event)
}

// ViewerOptions are the knobs shared by the window and the harness.
type ViewerOptions struct {
	Width, Height   int
	Layout          hexgrid.Layout
	Grid            *hexgrid.Grid
	DragThreshold   float64
	InitialDragging bool
	CopyText        func(string) error
}

// NewViewer builds the grid surface and wires the controller to it. The
// grid starts centred in the map viewport.
func NewViewer(o ViewerOptions) *Viewer {
	v := &Viewer{
		width:    o.Width,
		height:   o.Height,
		grid:     o.Grid,
		eventLog: NewEventLog(),
		copyText: o.CopyText,
	}
	if v.grid == nil {
		v.grid = hexgrid.NewGrid(o.Layout, nil)
	}
	v.surface = rectF{
		x: borderWidth,
		y: borderWidth,
		w: math.Max(0, float64(o.Width-logPanelWidth-2*borderWidth)),
		h: math.Max(0, float64(o.Height-2*borderWidth)),
	}
	b := v.grid.Layout().Bounds()
	v.originX = v.surface.x + (v.surface.w-b.Dx())/2 - b.MinX
	v.originY = v.surface.y + (v.surface.h-b.Dy())/2 - b.MinY

	v.ctrl = interaction.NewController(v.grid,
		interaction.WithInitialDragging(o.InitialDragging),
		interaction.WithObserver(v.onEvent),
	)
	v.gesture = interaction.NewGesture(v.ctrl,
		interaction.WithThreshold(o.DragThreshold),
		interaction.WithSurface(v.onSurface),
	)
	return v
}

// Grid exposes the tile arena.
func (v *Viewer) Grid() *hexgrid.Grid { return v.grid }

// Controller exposes the interaction state machine.
func (v *Viewer) Controller() *interaction.Controller { return v.ctrl }

// EventLog exposes the on-screen event ring buffer.
func (v *Viewer) EventLog() *EventLog { return v.eventLog }

// Tick returns the number of frames advanced so far.
func (v *Viewer) Tick() int { return v.tick }

// Advance counts one frame.
func (v *Viewer) Advance() { v.tick++ }

// OnEvent registers fn for controller events.
func (v *Viewer) OnEvent(fn func(tick int, e interaction.Event)) {
	v.listeners = append(v.listeners, fn)
}

func (v *Viewer) onEvent(e interaction.Event) {
	v.eventLog.Add(v.tick, string(e.Kind), describeEvent(v.grid, e))
	for _, fn := range v.listeners {
		fn(v.tick, e)
	}
}

// onSurface reports whether a pointer position belongs to the pan surface.
// An open detail panel is modal and owns all input.
func (v *Viewer) onSurface(x, y float64) bool {
	if _, open := v.ctrl.OpenTile(); open {
		return false
	}
	return v.surface.contains(x, y)
}

// ScreenToGrid converts a screen point into the grid's pixel space.
func (v *Viewer) ScreenToGrid(sx, sy float64) (float64, float64) {
	return sx - v.originX, sy - v.originY
}

// TileScreenPos returns where tile i's image box is drawn, including the
// live drag preview.
func (v *Viewer) TileScreenPos(i int) (float64, float64) {
	t := v.grid.Tile(i)
	dx, dy := v.gesture.Delta()
	return v.originX + t.X + dx, v.originY + t.Y + dy
}

// HitTile resolves a screen point to a tile id.
func (v *Viewer) HitTile(sx, sy float64) (int, bool) {
	gx, gy := v.ScreenToGrid(sx, sy)
	t, ok := v.grid.TileAt(gx, gy)
	if !ok {
		return 0, false
	}
	return t.Index, true
}

// PointerDown handles a primary press. With the detail panel open the
// press either hits the close button or lands on the backdrop; both close.
func (v *Viewer) PointerDown(x, y float64) {
	if _, open := v.ctrl.OpenTile(); open {
		if !v.panelRect().contains(x, y) || v.closeRect().contains(x, y) {
			v.ctrl.Close()
		}
		return
	}
	v.gesture.Press(x, y)
}

// PointerMove forwards pointer motion.
func (v *Viewer) PointerMove(x, y float64) {
	v.gesture.Move(x, y)
}

// PointerUp ends a press.
func (v *Viewer) PointerUp(x, y float64) {
	v.gesture.Release(x, y, v.HitTile)
}

// SecondaryDown swallows context-menu presses on the surface.
func (v *Viewer) SecondaryDown(x, y float64) bool {
	return v.gesture.Secondary(x, y)
}

// FocusLost drops any in-flight gesture.
func (v *Viewer) FocusLost() {
	v.gesture.Cancel()
}

// CloseDetail is the keyboard close signal.
func (v *Viewer) CloseDetail() {
	if _, open := v.ctrl.OpenTile(); open {
		v.ctrl.Close()
	}
}

// OpenDetail returns the detail view contents for the open tile.
func (v *Viewer) OpenDetail() (Detail, bool) {
	id, open := v.ctrl.OpenTile()
	if !open {
		return Detail{}, false
	}
	return DetailFor(v.grid.Tile(id)), true
}

// CopyDetail copies the open detail panel's text. It is a no-op when no
// panel is open.
func (v *Viewer) CopyDetail() error {
	d, open := v.OpenDetail()
	if !open || v.copyText == nil {
		return nil
	}
	if err := v.copyText(d.Text()); err != nil {
		v.eventLog.Add(v.tick, "copy_failed", err.Error())
		return fmt.Errorf("copy detail: %w", err)
	}
	v.eventLog.Add(v.tick, "copy", d.Title)
	return nil
}

func (v *Viewer) panelRect() rectF {
	return rectF{
		x: (float64(v.width) - panelW) / 2,
		y: (float64(v.height) - panelH) / 2,
		w: panelW,
		h: panelH,
	}
}

func (v *Viewer) closeRect() rectF {
	p := v.panelRect()
	return rectF{x: p.x + p.w - panelClose - panelInset, y: p.y + panelInset, w: panelClose, h: panelClose}
}

func describeEvent(g *hexgrid.Grid, e interaction.Event) string {
	switch e.Kind {
	case interaction.EventDragStop:
		return fmt.Sprintf("pan %+.0f,%+.0f", e.DX, e.DY)
	case interaction.EventClickOpen, interaction.EventClickSuppressed:
		if e.Tile >= 0 && e.Tile < g.Len() {
			t := g.Tile(e.Tile)
			return fmt.Sprintf("tile %d,%d %s", t.Column, t.Row, t.Kind)
		}
		return fmt.Sprintf("tile #%d", e.Tile)
	case interaction.EventClose:
		if e.Tile == interaction.NoTile {
			return "nothing open"
		}
		return fmt.Sprintf("tile #%d", e.Tile)
	case interaction.EventIgnored:
		return e.Signal
	}
	return ""
}
