package game

import (
	"github.com/Garsondee/Hex-Map/internal/hexgrid"
	"github.com/Garsondee/Hex-Map/internal/interaction"
	"github.com/Garsondee/Hex-Map/internal/terrain"
)

// Harness is a headless viewer used by tests and the layout report. It
// drives the same Viewer as Game.Update but never calls into Ebiten, and
// records every controller event in a SessionLog.
type Harness struct {
	Viewer     *Viewer
	SessionLog *SessionLog
	Clipboard  []string // texts passed to the copy hook

	width, height   int
	layout          hexgrid.Layout
	fill            terrain.FillFunc
	threshold       float64
	initialDragging bool

	// pointer position of the scripted cursor
	x, y float64
}

// HarnessOption is a builder function applied to a Harness before the
// viewer is built.
type HarnessOption func(*Harness)

// WithWindowSize sets the simulated window dimensions.
func WithWindowSize(w, h int) HarnessOption {
	return func(hs *Harness) {
		hs.width = w
		hs.height = h
	}
}

// WithLayout sets the hex layout.
func WithLayout(l hexgrid.Layout) HarnessOption {
	return func(hs *Harness) { hs.layout = l }
}

// WithFill sets how terrain kinds are assigned.
func WithFill(f terrain.FillFunc) HarnessOption {
	return func(hs *Harness) { hs.fill = f }
}

// WithDragThreshold sets the press-to-drag distance.
func WithDragThreshold(px float64) HarnessOption {
	return func(hs *Harness) { hs.threshold = px }
}

// WithInitialDragging starts the controller in Dragging.
func WithInitialDragging(v bool) HarnessOption {
	return func(hs *Harness) { hs.initialDragging = v }
}

// NewHarness builds a viewer from the options. Defaults match the window
// defaults: 1280×900 with the default 6×7 grid at radius 60.
func NewHarness(opts ...HarnessOption) *Harness {
	hs := &Harness{
		width:      1280,
		height:     900,
		layout:     hexgrid.Layout{Width: 6, Height: 7, OuterRadius: 60},
		fill:       terrain.Checkerboard,
		threshold:  interaction.DefaultThreshold,
		SessionLog: NewSessionLog(),
	}
	for _, o := range opts {
		o(hs)
	}
	hs.Viewer = NewViewer(ViewerOptions{
		Width:           hs.width,
		Height:          hs.height,
		Grid:            hexgrid.NewGrid(hs.layout, hs.fill),
		DragThreshold:   hs.threshold,
		InitialDragging: hs.initialDragging,
		CopyText: func(s string) error {
			hs.Clipboard = append(hs.Clipboard, s)
			return nil
		},
	})
	hs.Viewer.OnEvent(hs.SessionLog.Record)
	return hs
}

// TileCentre returns the screen position of tile i's centre, including any
// pan already applied.
func (hs *Harness) TileCentre(i int) (float64, float64) {
	x, y := hs.Viewer.TileScreenPos(i)
	return hs.layout.Center(x, y)
}

// SurfaceCentre returns the centre of the map surface in screen pixels.
func (hs *Harness) SurfaceCentre() (float64, float64) {
	s := hs.Viewer.surface
	return s.x + s.w/2, s.y + s.h/2
}

// Press moves the cursor to (x, y) and presses the primary button.
func (hs *Harness) Press(x, y float64) {
	hs.x, hs.y = x, y
	hs.Viewer.Advance()
	hs.Viewer.PointerDown(x, y)
}

// MoveTo moves the cursor in steps frames, like a real drag would.
func (hs *Harness) MoveTo(x, y float64, steps int) {
	if steps < 1 {
		steps = 1
	}
	fx, fy := hs.x, hs.y
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		hs.Viewer.Advance()
		hs.Viewer.PointerMove(fx+(x-fx)*t, fy+(y-fy)*t)
	}
	hs.x, hs.y = x, y
}

// Release lets go of the primary button at the current cursor position.
func (hs *Harness) Release() {
	hs.Viewer.Advance()
	hs.Viewer.PointerUp(hs.x, hs.y)
}

// ClickTile presses and releases on tile i's centre.
func (hs *Harness) ClickTile(i int) {
	x, y := hs.TileCentre(i)
	hs.Press(x, y)
	hs.Release()
}

// Drag presses at (x, y), moves by (dx, dy) over steps frames and releases.
func (hs *Harness) Drag(x, y, dx, dy float64, steps int) {
	hs.Press(x, y)
	hs.MoveTo(x+dx, y+dy, steps)
	hs.Release()
}

// RunTicks advances n idle frames.
func (hs *Harness) RunTicks(n int) {
	for i := 0; i < n; i++ {
		hs.Viewer.Advance()
	}
}
