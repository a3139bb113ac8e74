package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/Garsondee/Hex-Map/internal/hexgrid"
)

// Detail is what the tile properties panel shows.
type Detail struct {
	Title string
	Lines []string
	Tile  hexgrid.Tile
}

// DetailFor formats a tile for the properties panel. Pixel coordinates are
// floored; they include any pan applied so far.
func DetailFor(t hexgrid.Tile) Detail {
	return Detail{
		Title: fmt.Sprintf("Hexagon Properties %s", t.Kind),
		Lines: []string{
			fmt.Sprintf("Hexagon-Coordinates (px): %d | %d", int(math.Floor(t.X)), int(math.Floor(t.Y))),
			fmt.Sprintf("Hexagon-Coordinates (M) : %d | %d", t.Column, t.Row),
		},
		Tile: t,
	}
}

// Text is the clipboard form of the panel.
func (d Detail) Text() string {
	return d.Title + "\n" + strings.Join(d.Lines, "\n")
}
