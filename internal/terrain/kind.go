// Package terrain defines the closed set of tile kinds, the kind-to-image
// lookup with its mandatory fallback, and the fill routines that assign
// kinds to a fresh grid.
package terrain

import "fmt"

// Kind is a tile's terrain variant.
type Kind uint8

const (
	Border Kind = iota // fallback; always resolves to an image
	Black
	White
	Purple
	Plains
	Mountain
	Forest
	ForestPath1
	ForestPath2
	ForestPath3
	ForestPath4

	kindCount
)

// Fallback is the kind used whenever a requested kind has no image.
const Fallback = Border

var kindNames = [kindCount]string{
	Border:      "border",
	Black:       "black",
	White:       "white",
	Purple:      "purple",
	Plains:      "plains1path0",
	Mountain:    "mountain1path0",
	Forest:      "forest1path0",
	ForestPath1: "forest1path1",
	ForestPath2: "forest1path2",
	ForestPath3: "forest1path3",
	ForestPath4: "forest1path4",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k belongs to the closed set.
func (k Kind) Valid() bool { return k < kindCount }

// All returns every kind in declaration order.
func All() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind looks a kind up by its asset name.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return Fallback, fmt.Errorf("unknown terrain kind %q", s)
}
