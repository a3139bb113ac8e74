package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/Garsondee/Hex-Map/internal/hexgrid"
	"github.com/Garsondee/Hex-Map/internal/interaction"
	"github.com/Garsondee/Hex-Map/internal/terrain"
)

func TestViewer_TapOpensDetail(t *testing.T) {
	hs := NewHarness()
	hs.ClickTile(0)
	d, open := hs.Viewer.OpenDetail()
	if !open {
		t.Fatal("tap on tile 0 should open its detail panel")
	}
	if d.Title != "Hexagon Properties black" {
		t.Fatalf("title = %q", d.Title)
	}
	if d.Lines[0] != "Hexagon-Coordinates (px): -9 | 0" {
		t.Fatalf("pixel line = %q", d.Lines[0])
	}
	if d.Lines[1] != "Hexagon-Coordinates (M) : 0 | 0" {
		t.Fatalf("grid line = %q", d.Lines[1])
	}
}

func TestViewer_DragThenClickOpens(t *testing.T) {
	hs := NewHarness()
	cx, cy := hs.SurfaceCentre()
	hs.Drag(cx, cy, 50, -30, 6)
	hs.ClickTile(11)
	if !hs.Viewer.Controller().IsOpen(11) {
		t.Fatal("click after a finished drag should open the tile")
	}
	want := []interaction.EventKind{
		interaction.EventDragStart,
		interaction.EventClickSuppressed, // release over a tile at the end of the drag
		interaction.EventDragStop,
		interaction.EventClickOpen,
	}
	got := hs.SessionLog.Kinds()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("events = %v, want %v", got, want)
		}
	}
}

func TestViewer_ClickDuringDragSuppressed(t *testing.T) {
	hs := NewHarness()
	cx, cy := hs.SurfaceCentre()
	hs.Press(cx, cy)
	hs.MoveTo(cx+40, cy, 4)
	if hs.Viewer.Controller().Click(5) {
		t.Fatal("click while dragging should be rejected")
	}
	hs.Release()
	if _, open := hs.Viewer.OpenDetail(); open {
		t.Fatal("no panel should open for a gesture that dragged")
	}
}

func TestViewer_PanMovesTilesExactly(t *testing.T) {
	hs := NewHarness(WithLayout(hexgrid.Layout{Width: 5, Height: 5, OuterRadius: 120}))
	before := hs.Viewer.Grid().Tiles()
	cx, cy := hs.SurfaceCentre()
	hs.Drag(cx, cy, -64, 48, 10)
	for i, b := range before {
		a := hs.Viewer.Grid().Tile(i)
		if a.X != b.X-64 || a.Y != b.Y+48 {
			t.Fatalf("tile %d at (%.2f,%.2f), want (%.2f,%.2f)", i, a.X, a.Y, b.X-64, b.Y+48)
		}
		if a.Column != b.Column || a.Row != b.Row {
			t.Fatalf("tile %d grid coords changed", i)
		}
	}
}

func TestViewer_LivePreviewNotAppliedUntilRelease(t *testing.T) {
	hs := NewHarness()
	cx, cy := hs.SurfaceCentre()
	x0, y0 := hs.Viewer.TileScreenPos(3)
	hs.Press(cx, cy)
	hs.MoveTo(cx+25, cy+10, 5)
	x1, y1 := hs.Viewer.TileScreenPos(3)
	if x1 != x0+25 || y1 != y0+10 {
		t.Fatalf("preview at (%.1f,%.1f), want (%.1f,%.1f)", x1, y1, x0+25, y0+10)
	}
	if dx, dy := hs.Viewer.Grid().Offset(); dx != 0 || dy != 0 {
		t.Fatal("grid offset should not change before release")
	}
	hs.Release()
	if dx, dy := hs.Viewer.Grid().Offset(); dx != 25 || dy != 10 {
		t.Fatalf("offset after release = (%.0f,%.0f), want (25,10)", dx, dy)
	}
}

func TestViewer_PanelIsModal(t *testing.T) {
	hs := NewHarness()
	hs.ClickTile(2)
	p := hs.Viewer.panelRect()

	// Press inside the panel body: stays open, no gesture starts.
	hs.Press(p.x+10, p.y+p.h-10)
	hs.MoveTo(p.x+200, p.y+p.h-10, 4)
	hs.Release()
	if !hs.Viewer.Controller().IsOpen(2) {
		t.Fatal("press inside the panel should not close it")
	}
	if hs.SessionLog.Count(interaction.EventDragStart) != 0 {
		t.Fatal("no drag should start while the panel is open")
	}

	c := hs.Viewer.closeRect()
	hs.Press(c.x+c.w/2, c.y+c.h/2)
	hs.Release()
	if _, open := hs.Viewer.OpenDetail(); open {
		t.Fatal("close button should close the panel")
	}
}

func TestViewer_BackdropCloses(t *testing.T) {
	hs := NewHarness()
	hs.ClickTile(2)
	hs.Press(30, 30)
	hs.Release()
	if _, open := hs.Viewer.OpenDetail(); open {
		t.Fatal("press on the backdrop should close the panel")
	}
	if hs.SessionLog.Count(interaction.EventClose) != 1 {
		t.Fatalf("expected one close event, got %d", hs.SessionLog.Count(interaction.EventClose))
	}
}

func TestViewer_EscapeCloses(t *testing.T) {
	hs := NewHarness()
	hs.ClickTile(4)
	hs.Viewer.CloseDetail()
	if _, open := hs.Viewer.OpenDetail(); open {
		t.Fatal("close signal should dismiss the panel")
	}
	hs.Viewer.CloseDetail()
	if hs.SessionLog.Count(interaction.EventClose) != 1 {
		t.Fatal("closing with nothing open should not emit")
	}
}

func TestViewer_CopyDetail(t *testing.T) {
	hs := NewHarness(WithFill(terrain.Uniform(terrain.Mountain)))
	if err := hs.Viewer.CopyDetail(); err != nil || len(hs.Clipboard) != 0 {
		t.Fatal("copy with no panel open should do nothing")
	}
	hs.ClickTile(8)
	if err := hs.Viewer.CopyDetail(); err != nil {
		t.Fatalf("CopyDetail: %v", err)
	}
	if len(hs.Clipboard) != 1 || !strings.HasPrefix(hs.Clipboard[0], "Hexagon Properties mountain1path0\n") {
		t.Fatalf("clipboard = %q", hs.Clipboard)
	}
}

func TestViewer_CopyFailureLogged(t *testing.T) {
	v := NewViewer(ViewerOptions{
		Width: 1280, Height: 900,
		Layout:   hexgrid.Layout{Width: 3, Height: 3, OuterRadius: 40},
		CopyText: func(string) error { return errors.New("no clipboard") },
	})
	v.Controller().Click(0)
	if err := v.CopyDetail(); err == nil {
		t.Fatal("expected copy error")
	}
	last := v.EventLog().Recent()[v.EventLog().Len()-1]
	if last.Kind != "copy_failed" {
		t.Fatalf("last log entry = %+v", last)
	}
}

func TestViewer_FocusLostAbandonsDrag(t *testing.T) {
	hs := NewHarness()
	cx, cy := hs.SurfaceCentre()
	hs.Press(cx, cy)
	hs.MoveTo(cx+60, cy, 3)
	hs.Viewer.FocusLost()
	hs.Release()
	if hs.Viewer.Controller().IsDragging() {
		t.Fatal("focus loss should reset to idle")
	}
	if dx, dy := hs.Viewer.Grid().Offset(); dx != 0 || dy != 0 {
		t.Fatal("an abandoned drag must not pan")
	}
	if hs.SessionLog.Count(interaction.EventAbandon) != 1 {
		t.Fatal("expected one abandon event")
	}
}

func TestViewer_InitialDraggingSuppressesFirstTap(t *testing.T) {
	hs := NewHarness(WithInitialDragging(true))
	hs.ClickTile(1)
	if _, open := hs.Viewer.OpenDetail(); open {
		t.Fatal("tap should be suppressed while the initial drag state is set")
	}
	if hs.Viewer.Controller().IsDragging() {
		t.Fatal("a completed tap should leave the controller idle")
	}
	hs.ClickTile(1)
	if !hs.Viewer.Controller().IsOpen(1) {
		t.Fatal("second tap should open")
	}
	if dx, dy := hs.Viewer.Grid().Offset(); dx != 0 || dy != 0 {
		t.Fatal("taps must not pan")
	}
	if hs.SessionLog.Count(interaction.EventAbandon) != 1 {
		t.Fatalf("expected one abandon event, got %d", hs.SessionLog.Count(interaction.EventAbandon))
	}
}

func TestViewer_FocusLostClearsInitialDragging(t *testing.T) {
	hs := NewHarness(WithInitialDragging(true))
	hs.Viewer.FocusLost()
	if hs.Viewer.Controller().IsDragging() {
		t.Fatal("focus loss should reset the controller to idle")
	}
	hs.ClickTile(3)
	if !hs.Viewer.Controller().IsOpen(3) {
		t.Fatal("tap after focus loss should open")
	}
}

func TestViewer_SecondaryConsumedOnSurface(t *testing.T) {
	hs := NewHarness()
	cx, cy := hs.SurfaceCentre()
	if !hs.Viewer.SecondaryDown(cx, cy) {
		t.Fatal("context press on the map should be consumed")
	}
	if hs.Viewer.SecondaryDown(1270, 10) {
		t.Fatal("context press over the event log should not be consumed")
	}
}
