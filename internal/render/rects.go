// Package render converts live-cell enumerations into drawable shapes.
package render

import (
	"fmt"
	"image"
	"iter"

	"lifegrid/internal/core"
)

// CellRect returns the screen rectangle covered by c. Rows advance along x
// and columns along y.
func CellRect(c core.Cell, cellSize int) image.Rectangle {
	x, y := c.Row*cellSize, c.Col*cellSize
	return image.Rect(x, y, x+cellSize, y+cellSize)
}

// Rects maps every live cell to its screen rectangle.
func Rects(cells iter.Seq[core.Cell], cellSize int) iter.Seq[image.Rectangle] {
	return func(yield func(image.Rectangle) bool) {
		for c := range cells {
			if !yield(CellRect(c, cellSize)) {
				return
			}
		}
	}
}

// ScreenSize returns the pixel dimensions of a grid drawn at cellSize.
func ScreenSize(size core.Size, cellSize int) (w, h int) {
	return size.Rows * cellSize, size.Cols * cellSize
}

// TimingText formats the frame timing overlay.
func TimingText(stats core.FrameStats) string {
	return fmt.Sprintf("ms/f: %7.3f, fps: %7.3f", stats.MSPF, stats.FPS)
}
