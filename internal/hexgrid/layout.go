// Package hexgrid maps linear tile indices onto an offset hex grid and
// keeps the tile arena that the viewer pans and hit-tests.
package hexgrid

import (
	"fmt"
	"math"
)

// Order selects which axis is the outer (primary) index when a linear tile
// index is decomposed into grid coordinates.
type Order int

const (
	// ColumnMajor walks down a column first: Column = i / Height, Row = i % Height.
	ColumnMajor Order = iota
	// RowMajor walks along a row first: Row = i / Width, Column = i % Width.
	RowMajor
)

func (o Order) String() string {
	switch o {
	case ColumnMajor:
		return "column-major"
	case RowMajor:
		return "row-major"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder accepts the names produced by Order.String.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "", "column-major", "column":
		return ColumnMajor, nil
	case "row-major", "row":
		return RowMajor, nil
	}
	return ColumnMajor, fmt.Errorf("unknown layout order %q", s)
}

// Layout describes a width × height pointy-top offset grid. Odd rows are
// shifted right by one inner radius.
type Layout struct {
	Width       int
	Height      int
	OuterRadius float64 // centre to vertex, in pixels
	Order       Order

	// RowModulus is the modulus of the half-row vertical compaction term.
	// Zero means Height, which gives every row the same 1.5*R spacing.
	RowModulus int
}

// Position is the output of ComputePosition. X and Y are the top-left of
// the tile's 2R × 2R image box.
type Position struct {
	X, Y        float64
	Column, Row int
}

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Dx returns the rectangle width.
func (r Rect) Dx() float64 { return r.MaxX - r.MinX }

// Dy returns the rectangle height.
func (r Rect) Dy() float64 { return r.MaxY - r.MinY }

// Count returns the number of tiles in the grid.
func (l Layout) Count() int { return l.Width * l.Height }

// InnerRadius is the centre-to-edge distance, R / (2/√3).
func (l Layout) InnerRadius() float64 {
	return l.OuterRadius / (2 / math.Sqrt(3))
}

func (l Layout) rowModulus() int {
	if l.RowModulus > 0 {
		return l.RowModulus
	}
	return l.Height
}

// Validate reports layouts that cannot produce a grid. ComputePosition
// itself never checks its inputs.
func (l Layout) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", l.Width, l.Height)
	}
	if l.OuterRadius <= 0 || math.IsNaN(l.OuterRadius) || math.IsInf(l.OuterRadius, 0) {
		return fmt.Errorf("outer radius must be a positive number, got %v", l.OuterRadius)
	}
	if l.RowModulus < 0 {
		return fmt.Errorf("row modulus must not be negative, got %d", l.RowModulus)
	}
	if l.Order != ColumnMajor && l.Order != RowMajor {
		return fmt.Errorf("invalid layout order %v", l.Order)
	}
	return nil
}

// Coords decomposes a linear index into (column, row) according to Order.
func (l Layout) Coords(index int) (column, row int) {
	if l.Order == RowMajor {
		return index % l.Width, index / l.Width
	}
	return index / l.Height, index % l.Height
}

// Index is the inverse of Coords.
func (l Layout) Index(column, row int) int {
	if l.Order == RowMajor {
		return row*l.Width + column
	}
	return column*l.Height + row
}

// ComputePosition maps a linear index in [0, Count()) to its grid
// coordinates and pixel position. It is a pure function of its inputs.
func (l Layout) ComputePosition(index int) Position {
	col, row := l.Coords(index)
	outer := l.OuterRadius
	inner := l.InnerRadius()

	x := 2*float64(col)*inner + float64(row%2)*inner - (outer - inner)
	y := float64(row)*outer*2 - float64(row%l.rowModulus())*0.5*outer
	return Position{X: x, Y: y, Column: col, Row: row}
}

// Center returns the hexagon centre of a tile whose image box starts at (x, y).
func (l Layout) Center(x, y float64) (cx, cy float64) {
	return x + l.OuterRadius, y + l.OuterRadius
}

// Corners returns the six vertices of a pointy-top hexagon centred on
// (cx, cy), clockwise from the top vertex.
func (l Layout) Corners(cx, cy float64) [6][2]float64 {
	var pts [6][2]float64
	for i := 0; i < 6; i++ {
		a := (-90 + 60*float64(i)) * math.Pi / 180
		pts[i] = [2]float64{cx + l.OuterRadius*math.Cos(a), cy + l.OuterRadius*math.Sin(a)}
	}
	return pts
}

// Contains reports whether (px, py) lies inside the pointy-top hexagon
// centred on (cx, cy). Points on the boundary count as inside.
func (l Layout) Contains(cx, cy, px, py float64) bool {
	outer := l.OuterRadius
	inner := l.InnerRadius()
	dx := math.Abs(px - cx)
	dy := math.Abs(py - cy)
	if dx > inner || dy > outer {
		return false
	}
	return dy <= outer-dx*outer/(2*inner)+1e-9
}

// Bounds returns the pixel extent of all tile image boxes, without pan.
func (l Layout) Bounds() Rect {
	n := l.Count()
	if n == 0 {
		return Rect{}
	}
	size := 2 * l.OuterRadius
	b := Rect{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for i := 0; i < n; i++ {
		p := l.ComputePosition(i)
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X+size)
		b.MaxY = math.Max(b.MaxY, p.Y+size)
	}
	return b
}
