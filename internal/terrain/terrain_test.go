package terrain

import (
	"errors"
	"testing"
)

func TestAtlas_FallbackOnMiss(t *testing.T) {
	a, err := NewAtlas(map[Kind]string{
		Border: "hexagon_border.svg",
		Black:  "hexagon_black.svg",
	})
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}
	if got := a.ImageFor(Black); got != "hexagon_black.svg" {
		t.Fatalf("ImageFor(black) = %q", got)
	}
	for _, k := range []Kind{White, Mountain, Kind(200)} {
		if got := a.ImageFor(k); got != a.ImageFor(Fallback) {
			t.Fatalf("ImageFor(%v) = %q, want fallback %q", k, got, a.ImageFor(Fallback))
		}
	}
}

func TestAtlas_RequiresFallback(t *testing.T) {
	_, err := NewAtlas(map[Kind]int{Black: 1})
	if !errors.Is(err, ErrNoFallback) {
		t.Fatalf("expected ErrNoFallback, got %v", err)
	}
}

func TestAtlas_CopiesTable(t *testing.T) {
	table := map[Kind]string{Border: "a"}
	a, err := NewAtlas(table)
	if err != nil {
		t.Fatal(err)
	}
	table[Border] = "b"
	if a.ImageFor(Border) != "a" {
		t.Fatal("atlas should not alias the caller's table")
	}
}

func TestKind_NamesRoundTrip(t *testing.T) {
	for _, k := range All() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("lava"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if Kind(99).Valid() {
		t.Fatal("Kind(99) should not be valid")
	}
}

func TestCheckerboard(t *testing.T) {
	for i := 0; i < 10; i++ {
		want := Black
		if i%2 == 1 {
			want = White
		}
		if got := Checkerboard(i); got != want {
			t.Fatalf("Checkerboard(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestRandom_DeterministicPerSeed(t *testing.T) {
	a := Random(42)
	b := Random(42)
	for i := 0; i < 50; i++ {
		if a(i) != b(i) {
			t.Fatalf("index %d: seeds disagree", i)
		}
		if !a(i).Valid() {
			t.Fatalf("index %d: invalid kind %v", i, a(i))
		}
	}
}

func TestFillByName(t *testing.T) {
	f, err := FillByName("mountain1path0", 0)
	if err != nil {
		t.Fatal(err)
	}
	if f(3) != Mountain {
		t.Fatalf("uniform fill gave %v", f(3))
	}
	if _, err := FillByName("plaid", 0); err == nil {
		t.Fatal("expected error for unknown fill")
	}
}
