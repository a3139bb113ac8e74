package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleInput turns this frame's Ebiten input into viewer signals. Only the
// first touch is tracked; further fingers are ignored until it lifts, so
// concurrent pans never interleave.
func (g *Game) handleInput() {
	if !ebiten.IsFocused() {
		g.viewer.FocusLost()
		g.touchActive = false
		return
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	moved := mx != g.prevMX || my != g.prevMY
	g.prevMX, g.prevMY = mx, my

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.viewer.PointerDown(x, y)
	} else if moved && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.viewer.PointerMove(x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.viewer.PointerUp(x, y)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.viewer.SecondaryDown(x, y)
	}

	g.handleTouch()

	if id, ok := g.viewer.HitTile(x, y); ok && g.viewer.surface.contains(x, y) {
		g.hover = id
	} else {
		g.hover = -1
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.viewer.CloseDetail()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := g.viewer.CopyDetail(); err != nil {
			log.Printf("[clipboard] %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
}

func (g *Game) handleTouch() {
	if !g.touchActive {
		g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
		if len(g.touchIDs) == 0 {
			return
		}
		g.touchID = g.touchIDs[0]
		g.touchActive = true
		tx, ty := ebiten.TouchPosition(g.touchID)
		g.viewer.PointerDown(float64(tx), float64(ty))
		return
	}
	if inpututil.IsTouchJustReleased(g.touchID) {
		tx, ty := inpututil.TouchPositionInPreviousTick(g.touchID)
		g.viewer.PointerUp(float64(tx), float64(ty))
		g.touchActive = false
		return
	}
	tx, ty := ebiten.TouchPosition(g.touchID)
	g.viewer.PointerMove(float64(tx), float64(ty))
}
