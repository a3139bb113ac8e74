package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/Garsondee/Hex-Map/internal/config"
	"github.com/Garsondee/Hex-Map/internal/game"
	"github.com/Garsondee/Hex-Map/internal/hexgrid"
	"github.com/Garsondee/Hex-Map/internal/interaction"
)

// layoutCheck summarises the tessellation properties of a layout.
type layoutCheck struct {
	tiles      int
	duplicates int     // (column,row) pairs produced by more than one index
	minDist    float64 // smallest centre-to-centre distance
	overlaps   int     // pairs closer than 2*inner radius
	bounds     hexgrid.Rect
}

// sessionStats counts what a scripted session did.
type sessionStats struct {
	drags      int
	pans       int
	opens      int
	suppressed int
	ignored    int
	offsetX    float64
	offsetY    float64
	log        string
}

func main() {
	var configPath string
	var drags int
	var seed int64
	var table bool

	flag.StringVar(&configPath, "config", "", "YAML config file (defaults apply when empty)")
	flag.IntVar(&drags, "drags", 5, "number of scripted drag gestures")
	flag.Int64Var(&seed, "seed", 42, "RNG seed for scripted gestures")
	flag.BoolVar(&table, "table", true, "print the per-tile layout table")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
	}
	if drags < 0 {
		fmt.Println("error: -drags must be >= 0")
		return
	}
	layout, err := cfg.Layout()
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Hex Layout Report ===\n")
	fmt.Printf("grid=%dx%d outer=%.2f inner=%.2f order=%s row_modulus=%d\n\n",
		layout.Width, layout.Height, layout.OuterRadius, layout.InnerRadius(), layout.Order, layout.RowModulus)

	if table {
		fmt.Print(formatTable(layout))
		fmt.Println()
	}

	lc := checkLayout(layout)
	fmt.Printf("tiles=%d duplicates=%d min_centre_distance=%.2f overlaps=%d\n",
		lc.tiles, lc.duplicates, lc.minDist, lc.overlaps)
	fmt.Printf("bounds=(%.2f,%.2f)..(%.2f,%.2f)\n\n", lc.bounds.MinX, lc.bounds.MinY, lc.bounds.MaxX, lc.bounds.MaxY)

	fill, err := cfg.FillFunc()
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	ss := runSession(game.NewHarness(
		game.WithWindowSize(cfg.Window.Width, cfg.Window.Height),
		game.WithLayout(layout),
		game.WithFill(fill),
		game.WithDragThreshold(cfg.Interaction.DragThreshold),
		game.WithInitialDragging(cfg.Interaction.InitialDragging),
	), drags, seed)

	fmt.Printf("=== Scripted Session (drags=%d seed=%d) ===\n", drags, seed)
	fmt.Print(ss.log)
	fmt.Printf("pans=%d opens=%d suppressed=%d ignored=%d final_offset=(%+.0f,%+.0f)\n",
		ss.pans, ss.opens, ss.suppressed, ss.ignored, ss.offsetX, ss.offsetY)
}

func formatTable(l hexgrid.Layout) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%5s %4s %4s %10s %10s\n", "index", "col", "row", "px", "py")
	for i := 0; i < l.Count(); i++ {
		p := l.ComputePosition(i)
		fmt.Fprintf(&b, "%5d %4d %4d %10.2f %10.2f\n", i, p.Column, p.Row, p.X, p.Y)
	}
	return b.String()
}

func checkLayout(l hexgrid.Layout) layoutCheck {
	n := l.Count()
	lc := layoutCheck{tiles: n, minDist: math.Inf(1), bounds: l.Bounds()}
	seen := make(map[[2]int]bool, n)
	pos := make([]hexgrid.Position, n)
	for i := 0; i < n; i++ {
		pos[i] = l.ComputePosition(i)
		key := [2]int{pos[i].Column, pos[i].Row}
		if seen[key] {
			lc.duplicates++
		}
		seen[key] = true
	}
	limit := 2*l.InnerRadius() - 1e-6
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := math.Hypot(pos[i].X-pos[j].X, pos[i].Y-pos[j].Y)
			lc.minDist = math.Min(lc.minDist, d)
			if d < limit {
				lc.overlaps++
			}
		}
	}
	if n < 2 {
		lc.minDist = 0
	}
	return lc
}

// runSession replays drags scripted drags from the surface centre,
// alternating direction so the grid stays on screen. After each drag it
// clicks a random tile (which should open) and closes it. The first drag
// also clicks mid-gesture, which the controller must suppress.
func runSession(hs *game.Harness, drags int, seed int64) sessionStats {
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- scripted input only
	count := hs.Viewer.Grid().Len()
	ss := sessionStats{drags: drags}
	cx, cy := hs.SurfaceCentre()

	var dx, dy float64
	for i := 0; i < drags; i++ {
		if i%2 == 0 {
			dx = float64(20 + rng.Intn(60))
			dy = float64(20 + rng.Intn(60))
			if rng.Intn(2) == 0 {
				dx = -dx
			}
		} else {
			dx, dy = -dx, -dy
		}
		if i == 0 {
			hs.Press(cx, cy)
			hs.MoveTo(cx+dx, cy+dy, 8)
			hs.Viewer.Controller().Click(0)
			hs.Release()
		} else {
			hs.Drag(cx, cy, dx, dy, 8)
		}
		hs.ClickTile(rng.Intn(count))
		hs.Viewer.CloseDetail()
		hs.RunTicks(5)
	}

	ss.pans = hs.SessionLog.Count(interaction.EventDragStop)
	ss.opens = hs.SessionLog.Count(interaction.EventClickOpen)
	ss.suppressed = hs.SessionLog.Count(interaction.EventClickSuppressed)
	ss.ignored = hs.SessionLog.Count(interaction.EventIgnored)
	ss.offsetX, ss.offsetY = hs.Viewer.Grid().Offset()
	ss.log = hs.SessionLog.Format()
	return ss
}
