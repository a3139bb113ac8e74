package game

import (
	"errors"
	"image/color"
	"io/fs"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	// Extra decoders for tile assets; png/jpeg/gif come from the stdlib.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/Garsondee/Hex-Map/internal/hexgrid"
	"github.com/Garsondee/Hex-Map/internal/terrain"
)

// terrainColors is the fill colour of each procedurally drawn tile.
var terrainColors = map[terrain.Kind]color.RGBA{
	terrain.Border:      {R: 0, G: 0, B: 0, A: 0}, // outline only
	terrain.Black:       {R: 28, G: 28, B: 32, A: 255},
	terrain.White:       {R: 232, G: 232, B: 226, A: 255},
	terrain.Purple:      {R: 120, G: 70, B: 170, A: 255},
	terrain.Plains:      {R: 170, G: 190, B: 90, A: 255},
	terrain.Mountain:    {R: 130, G: 120, B: 110, A: 255},
	terrain.Forest:      {R: 40, G: 110, B: 50, A: 255},
	terrain.ForestPath1: {R: 50, G: 115, B: 55, A: 255},
	terrain.ForestPath2: {R: 55, G: 120, B: 60, A: 255},
	terrain.ForestPath3: {R: 60, G: 125, B: 65, A: 255},
	terrain.ForestPath4: {R: 65, G: 130, B: 70, A: 255},
}

// assetExts are tried in order when looking for <kind><ext> in the asset dir.
var assetExts = []string{".png", ".webp", ".bmp", ".jpg", ".gif"}

// buildAtlas returns an image per terrain kind. Images found in assetDir
// win; every other kind gets a drawn hexagon. The Border entry always
// exists, so lookups never miss.
func buildAtlas(layout hexgrid.Layout, assetDir string) (*terrain.Atlas[*ebiten.Image], error) {
	table := make(map[terrain.Kind]*ebiten.Image, len(terrainColors))
	for _, k := range terrain.All() {
		if img := loadTileAsset(assetDir, k); img != nil {
			table[k] = img
			continue
		}
		table[k] = drawHexTile(layout, terrainColors[k], k == terrain.Border)
	}
	return terrain.NewAtlas(table)
}

// loadTileAsset returns nil when there is no usable asset for k.
func loadTileAsset(dir string, k terrain.Kind) *ebiten.Image {
	if dir == "" {
		return nil
	}
	for _, ext := range assetExts {
		path := filepath.Join(dir, k.String()+ext)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			log.Printf("[assets] %s: %v, drawing %s instead", path, err, k)
			return nil
		}
		log.Printf("[assets] loaded %s", path)
		return img
	}
	return nil
}

// drawHexTile renders a pointy-top hexagon into a 2R × 2R image, the same
// box ComputePosition positions.
func drawHexTile(layout hexgrid.Layout, fill color.RGBA, outlineOnly bool) *ebiten.Image {
	size := int(math.Ceil(2 * layout.OuterRadius))
	img := ebiten.NewImage(size, size)
	cx, cy := layout.OuterRadius, layout.OuterRadius
	corners := layout.Corners(cx, cy)

	if !outlineOnly {
		var path vector.Path
		path.MoveTo(float32(corners[0][0]), float32(corners[0][1]))
		for _, c := range corners[1:] {
			path.LineTo(float32(c[0]), float32(c[1]))
		}
		path.Close()
		op := &vector.DrawPathOptions{AntiAlias: true}
		op.ColorScale.ScaleWithColor(fill)
		vector.FillPath(img, &path, &vector.FillOptions{}, op)
	}

	edge := color.RGBA{R: 90, G: 90, B: 110, A: 255}
	strokeHex(img, corners, 1.5, edge)
	return img
}

func strokeHex(dst *ebiten.Image, corners [6][2]float64, width float32, c color.Color) {
	for i := range corners {
		a := corners[i]
		b := corners[(i+1)%len(corners)]
		vector.StrokeLine(dst, float32(a[0]), float32(a[1]), float32(b[0]), float32(b[1]), width, c, true)
	}
}
