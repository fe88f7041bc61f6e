package layout

import (
	"image"
	"math"

	"github.com/BeatGlow/fbrender/pixel"
)

const (
	gridColumns = 3
	gridRows    = 2
	gridImages  = gridColumns * gridRows
)

// DefaultGridMargin is the grid margin in percent of the screen dimensions.
const DefaultGridMargin = 5

// Grid arranges exactly six images in a 3×2 grid. Each image is scaled to
// fit its cell preserving aspect ratio and centered within it; unused cell
// area stays black.
type Grid struct {
	// MarginPercent is the margin around and between cells, as a
	// percentage of the screen dimensions. Zero means DefaultGridMargin.
	MarginPercent int
}

func (Grid) ImageCount() int { return gridImages }

func (g Grid) Compose(images []image.Image, size image.Point) (*pixel.RGBImage, error) {
	if err := check("grid", gridImages, images); err != nil {
		return nil, err
	}

	var (
		_, _, cellW, cellH = g.metrics(size)
		frame              = pixel.NewRGBImage(size.X, size.Y)
	)
	for i, src := range images {
		var (
			sb    = src.Bounds()
			scale = math.Min(float64(cellW)/float64(sb.Dx()), float64(cellH)/float64(sb.Dy()))
			w     = int(math.Round(float64(sb.Dx()) * scale))
			h     = int(math.Round(float64(sb.Dy()) * scale))
		)
		// Center within the cell; the offset may go slightly negative
		// from rounding, which the paste clips.
		at := g.cellOrigin(size, i).Add(image.Pt((cellW-w)/2, (cellH-h)/2))
		paste(frame, resize(src, w, h), at)
	}
	return frame, nil
}

// metrics returns the margins and cell dimensions for the given screen
// size. Three columns leave four horizontal margins, two rows leave three
// vertical margins.
func (g Grid) metrics(size image.Point) (hm, vm, cellW, cellH int) {
	margin := g.MarginPercent
	if margin == 0 {
		margin = DefaultGridMargin
	}
	hm = size.X * margin / 100
	vm = size.Y * margin / 100
	cellW = (size.X - 4*hm) / gridColumns
	cellH = (size.Y - 3*vm) / gridRows
	return hm, vm, cellW, cellH
}

// cellOrigin is the top-left corner of cell i, counting rows left to right,
// top to bottom.
func (g Grid) cellOrigin(size image.Point, i int) image.Point {
	hm, vm, cellW, cellH := g.metrics(size)
	return image.Pt(
		hm+(i%gridColumns)*(cellW+hm),
		vm+(i/gridColumns)*(cellH+vm),
	)
}
