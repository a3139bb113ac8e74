package hexgrid

import (
	"math"

	"github.com/Garsondee/Hex-Map/internal/terrain"
)

// Tile is one cell of the grid as the renderer sees it. X and Y already
// include the grid's pan offset.
type Tile struct {
	Index  int
	Column int
	Row    int
	X, Y   float64
	Kind   terrain.Kind
}

// Grid is an arena of Width × Height tiles addressed by linear index.
// Base positions are computed once; panning only moves the grid-level
// offset, which is folded in when a tile is read.
type Grid struct {
	layout Layout
	base   []Position
	kinds  []terrain.Kind
	offX   float64
	offY   float64
}

// NewGrid lays out layout.Count() tiles and assigns each a kind from fill.
// A nil fill gives every tile the fallback kind.
func NewGrid(layout Layout, fill terrain.FillFunc) *Grid {
	n := layout.Count()
	g := &Grid{
		layout: layout,
		base:   make([]Position, n),
		kinds:  make([]terrain.Kind, n),
	}
	for i := 0; i < n; i++ {
		g.base[i] = layout.ComputePosition(i)
		if fill != nil {
			g.kinds[i] = fill(i)
		} else {
			g.kinds[i] = terrain.Fallback
		}
	}
	return g
}

// Layout returns the layout the grid was built from.
func (g *Grid) Layout() Layout { return g.layout }

// Len returns the number of tiles.
func (g *Grid) Len() int { return len(g.base) }

// Pan translates every tile by (dx, dy). Grid coordinates are unchanged.
func (g *Grid) Pan(dx, dy float64) {
	g.offX += dx
	g.offY += dy
}

// Offset returns the accumulated pan.
func (g *Grid) Offset() (dx, dy float64) { return g.offX, g.offY }

// Tile returns the tile at index i with the pan offset applied.
func (g *Grid) Tile(i int) Tile {
	p := g.base[i]
	return Tile{
		Index:  i,
		Column: p.Column,
		Row:    p.Row,
		X:      p.X + g.offX,
		Y:      p.Y + g.offY,
		Kind:   g.kinds[i],
	}
}

// Tiles returns a snapshot of every tile in index order.
func (g *Grid) Tiles() []Tile {
	out := make([]Tile, len(g.base))
	for i := range g.base {
		out[i] = g.Tile(i)
	}
	return out
}

// TileAt returns the tile whose hexagon contains (x, y), in the same pixel
// space as Tile.X/Y. When custom row spacing makes hexagons overlap, the
// tile with the nearest centre wins.
func (g *Grid) TileAt(x, y float64) (Tile, bool) {
	best := -1
	bestD2 := math.MaxFloat64
	for i := range g.base {
		t := g.Tile(i)
		cx, cy := g.layout.Center(t.X, t.Y)
		if !g.layout.Contains(cx, cy, x, y) {
			continue
		}
		dx, dy := x-cx, y-cy
		if d2 := dx*dx + dy*dy; d2 < bestD2 {
			bestD2 = d2
			best = i
		}
	}
	if best < 0 {
		return Tile{}, false
	}
	return g.Tile(best), true
}
