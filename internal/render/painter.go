//go:build ebiten

package render

import (
	"image/color"
	"iter"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one pixel per grid cell in an image and scales it up.
type GridPainter struct {
	size core.Size
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a rows x cols grid.
func NewGridPainter(rows, cols int) *GridPainter {
	gp := &GridPainter{size: core.Size{Rows: rows, Cols: cols}, buf: make([]byte, 4*rows*cols)}
	gp.img = ebiten.NewImage(rows, cols)
	return gp
}

// Blit uploads the live cells into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells iter.Seq[core.Cell], on, off color.Color, scale int) {
	fillLiveRGBA(gp.buf, gp.size, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.size.Rows, gp.size.Cols }
