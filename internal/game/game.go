package game

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Garsondee/Hex-Map/internal/config"
	"github.com/Garsondee/Hex-Map/internal/hexgrid"
	"github.com/Garsondee/Hex-Map/internal/terrain"
)

// Game is the Ebiten front end: it polls input into the Viewer and draws
// the grid, the detail panel and the event log.
type Game struct {
	width  int
	height int
	viewer *Viewer
	layout hexgrid.Layout
	atlas  *terrain.Atlas[*ebiten.Image]

	// Offscreen buffer the size of the map surface; clips tiles to it.
	mapBuf *ebiten.Image

	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource

	showHUD bool
	hover   int // tile under the cursor, -1 for none

	// Cursor and touch tracking for move detection.
	prevMX, prevMY int
	touchIDs       []ebiten.TouchID
	touchID        ebiten.TouchID
	touchActive    bool
}

// New builds the viewer from cfg and prepares tile images and fonts.
func New(cfg *config.Config) (*Game, error) {
	layout, err := cfg.Layout()
	if err != nil {
		return nil, err
	}
	fill, err := cfg.FillFunc()
	if err != nil {
		return nil, err
	}
	atlas, err := buildAtlas(layout, cfg.Assets.Dir)
	if err != nil {
		return nil, fmt.Errorf("build tile atlas: %w", err)
	}
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}

	g := &Game{
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
		layout:  layout,
		atlas:   atlas,
		regular: regular,
		bold:    bold,
		showHUD: true,
		hover:   -1,
	}
	g.viewer = NewViewer(ViewerOptions{
		Width:           g.width,
		Height:          g.height,
		Grid:            hexgrid.NewGrid(layout, fill),
		DragThreshold:   cfg.Interaction.DragThreshold,
		InitialDragging: cfg.Interaction.InitialDragging,
		CopyText:        clipboard.WriteAll,
	})
	s := g.viewer.surface
	g.mapBuf = ebiten.NewImage(max(1, int(s.w)), max(1, int(s.h)))
	log.Printf("[grid] %dx%d tiles, radius %.0f, %s", layout.Width, layout.Height, layout.OuterRadius, layout.Order)
	return g, nil
}

// Viewer exposes the input-independent state, mostly for tests.
func (g *Game) Viewer() *Viewer { return g.viewer }

func (g *Game) Update() error {
	g.viewer.Advance()
	g.handleInput()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 14, A: 255})

	s := g.viewer.surface
	g.mapBuf.Fill(color.RGBA{R: 22, G: 24, B: 30, A: 255})
	g.drawTiles(g.mapBuf, s.x, s.y)

	var blit ebiten.DrawImageOptions
	blit.GeoM.Translate(s.x, s.y)
	screen.DrawImage(g.mapBuf, &blit)

	frame := color.RGBA{R: 70, G: 70, B: 100, A: 255}
	vector.StrokeRect(screen, float32(s.x)-1, float32(s.y)-1, float32(s.w)+2, float32(s.h)+2, 2.0, frame, false)

	g.viewer.eventLog.Draw(screen, g.width-logPanelWidth, g.height)

	if g.showHUD {
		g.drawHUD(screen)
	}
	g.drawDetail(screen)
}

// drawTiles draws every tile into the map buffer, whose top-left sits at
// screen (ox, oy).
func (g *Game) drawTiles(dst *ebiten.Image, ox, oy float64) {
	box := 2 * g.layout.OuterRadius
	grid := g.viewer.grid
	for i := 0; i < grid.Len(); i++ {
		img := g.atlas.ImageFor(grid.Tile(i).Kind)
		x, y := g.viewer.TileScreenPos(i)
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(box/float64(b.Dx()), box/float64(b.Dy()))
		op.GeoM.Translate(x-ox, y-oy)
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(img, op)
	}

	if id, open := g.viewer.ctrl.OpenTile(); open {
		g.outlineTile(dst, id, ox, oy, color.RGBA{R: 255, G: 210, B: 60, A: 255})
	} else if g.hover >= 0 && !g.viewer.ctrl.IsDragging() {
		g.outlineTile(dst, g.hover, ox, oy, color.RGBA{R: 200, G: 200, B: 255, A: 180})
	}
}

func (g *Game) outlineTile(dst *ebiten.Image, id int, ox, oy float64, c color.Color) {
	x, y := g.viewer.TileScreenPos(id)
	cx, cy := g.layout.Center(x-ox, y-oy)
	strokeHex(dst, g.layout.Corners(cx, cy), 3, c)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	dx, dy := g.viewer.grid.Offset()
	lines := fmt.Sprintf("drag=pan  click=inspect  esc=close  C=copy  H=hud\npan: %+.0f, %+.0f  state: %s",
		dx, dy, g.viewer.ctrl.State())
	s := g.viewer.surface
	ebitenutil.DebugPrintAt(screen, lines, int(s.x)+6, int(s.y+s.h)-36)
}

// drawDetail renders the modal tile properties panel over a dimmed backdrop.
func (g *Game) drawDetail(screen *ebiten.Image) {
	d, open := g.viewer.OpenDetail()
	if !open {
		return
	}
	vector.FillRect(screen, 0, 0, float32(g.width), float32(g.height), color.RGBA{A: 140}, false)

	p := g.viewer.panelRect()
	vector.FillRect(screen, float32(p.x), float32(p.y), float32(p.w), float32(p.h), color.RGBA{R: 248, G: 248, B: 250, A: 255}, false)
	vector.StrokeRect(screen, float32(p.x), float32(p.y), float32(p.w), float32(p.h), 1.0, color.RGBA{R: 180, G: 180, B: 190, A: 255}, false)

	ink := color.RGBA{R: 30, G: 30, B: 36, A: 255}
	drawText(screen, d.Title, &text.GoTextFace{Source: g.bold, Size: 20}, p.x+24, p.y+20, ink)
	y := p.y + 72
	for _, line := range d.Lines {
		drawText(screen, line, &text.GoTextFace{Source: g.regular, Size: 16}, p.x+24, y, ink)
		y += 26
	}
	drawText(screen, "C: copy to clipboard", &text.GoTextFace{Source: g.regular, Size: 12}, p.x+24, p.y+p.h-24,
		color.RGBA{R: 120, G: 120, B: 130, A: 255})

	// Close button: an X inside a square.
	c := g.viewer.closeRect()
	x0, y0 := float32(c.x+8), float32(c.y+8)
	x1, y1 := float32(c.x+c.w-8), float32(c.y+c.h-8)
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, ink, true)
	vector.StrokeLine(screen, x0, y1, x1, y0, 2, ink, true)
}

func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
