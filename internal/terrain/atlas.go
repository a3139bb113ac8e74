package terrain

import "errors"

// ErrNoFallback is returned when an atlas table lacks the Fallback entry.
var ErrNoFallback = errors.New("terrain atlas has no fallback entry")

// Atlas resolves a Kind to an image reference. Ref is whatever the renderer
// draws with (an *ebiten.Image in the viewer, a string in tests).
type Atlas[Ref any] struct {
	table map[Kind]Ref
}

// NewAtlas copies table into a new atlas. The table must contain Fallback.
func NewAtlas[Ref any](table map[Kind]Ref) (*Atlas[Ref], error) {
	if _, ok := table[Fallback]; !ok {
		return nil, ErrNoFallback
	}
	cp := make(map[Kind]Ref, len(table))
	for k, v := range table {
		cp[k] = v
	}
	return &Atlas[Ref]{table: cp}, nil
}

// ImageFor returns the image for kind, or the fallback image when kind has
// no entry.
func (a *Atlas[Ref]) ImageFor(kind Kind) Ref {
	if ref, ok := a.table[kind]; ok {
		return ref
	}
	return a.table[Fallback]
}

// Has reports whether kind has its own entry.
func (a *Atlas[Ref]) Has(kind Kind) bool {
	_, ok := a.table[kind]
	return ok
}

// Len returns the number of entries, fallback included.
func (a *Atlas[Ref]) Len() int { return len(a.table) }
