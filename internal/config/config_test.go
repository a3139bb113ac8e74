package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Garsondee/Hex-Map/internal/hexgrid"
)

func TestDefault_SixBySevenMap(t *testing.T) {
	cfg := Default()
	if cfg.Grid.Width != 6 || cfg.Grid.Height != 7 || cfg.Grid.OuterRadius != 60 {
		t.Fatalf("default grid = %dx%d r=%.0f", cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.OuterRadius)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	l, err := cfg.Layout()
	if err != nil {
		t.Fatal(err)
	}
	if l.Order != hexgrid.ColumnMajor {
		t.Fatalf("default order = %v, want column-major", l.Order)
	}
}

func TestParse_OverridesAndDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
grid:
  width: 5
  height: 5
  outer_radius: 120
  order: row-major
  fill: forest1path2
interaction:
  initial_dragging: true
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Grid.Width != 5 || cfg.Grid.OuterRadius != 120 {
		t.Fatalf("grid not overridden: %+v", cfg.Grid)
	}
	if !cfg.Interaction.InitialDragging {
		t.Fatal("initial_dragging not read")
	}
	if cfg.Interaction.DragThreshold != 4 {
		t.Fatalf("drag threshold default = %v, want 4", cfg.Interaction.DragThreshold)
	}
	if cfg.Window.Title != "Hex Map" {
		t.Fatalf("window title default = %q", cfg.Window.Title)
	}
	l, _ := cfg.Layout()
	if l.Order != hexgrid.RowMajor {
		t.Fatalf("order = %v, want row-major", l.Order)
	}
}

func TestParse_ZeroDragThresholdKept(t *testing.T) {
	cfg, err := Parse([]byte("interaction:\n  drag_threshold: 0\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Interaction.DragThreshold != 0 {
		t.Fatalf("drag_threshold: 0 loaded as %v", cfg.Interaction.DragThreshold)
	}
	if Default().Interaction.DragThreshold != 4 {
		t.Fatal("default drag threshold should stay 4")
	}
}

func TestParse_RejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"order":     "grid:\n  order: spiral\n",
		"fill":      "grid:\n  fill: tartan\n",
		"radius":    "grid:\n  outer_radius: -3\n",
		"threshold": "interaction:\n  drag_threshold: -1\n",
		"yaml":      "grid: [unclosed\n",
	}
	for name, doc := range cases {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Fatalf("%s: expected an error", name)
		}
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexmap.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  width: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.Width != 3 || cfg.Grid.Height != 7 {
		t.Fatalf("grid = %dx%d, want 3x7", cfg.Grid.Width, cfg.Grid.Height)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read config file") {
		t.Fatalf("expected read error, got %v", err)
	}
}
