package terrain

import (
	"fmt"
	"math/rand"
)

// FillFunc assigns a kind to the tile at a linear index.
type FillFunc func(index int) Kind

// Checkerboard alternates Black and White by index parity. It is a debug
// fill, so adjacency on the hex grid is not guaranteed to alternate.
func Checkerboard(index int) Kind {
	if index%2 == 0 {
		return Black
	}
	return White
}

// Uniform fills every tile with k.
func Uniform(k Kind) FillFunc {
	return func(int) Kind { return k }
}

// Random picks from kinds with a seeded source. The result is a pure
// function of (seed, index), so redraws and re-creation agree.
func Random(seed int64, kinds ...Kind) FillFunc {
	if len(kinds) == 0 {
		kinds = []Kind{Plains, Mountain, Forest, ForestPath1, ForestPath2, ForestPath3, ForestPath4}
	}
	return func(index int) Kind {
		rng := rand.New(rand.NewSource(seed + int64(index)*7919)) // #nosec G404 -- cosmetic only
		return kinds[rng.Intn(len(kinds))]
	}
}

// FillByName resolves a fill mode name as used in the config file.
func FillByName(name string, seed int64) (FillFunc, error) {
	switch name {
	case "", "checkerboard":
		return Checkerboard, nil
	case "random":
		return Random(seed), nil
	}
	k, err := ParseKind(name)
	if err != nil {
		return nil, fmt.Errorf("unknown fill %q: want checkerboard, random or a terrain kind", name)
	}
	return Uniform(k), nil
}
