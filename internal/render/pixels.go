package render

import (
	"image/color"
	"iter"

	"lifegrid/internal/core"
)

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillLiveRGBA paints an image of size.Rows x size.Cols pixels: the
// background is off and each live cell (row as x, col as y) is on. Cells
// outside size are skipped.
func fillLiveRGBA(buf []byte, size core.Size, cells iter.Seq[core.Cell], on, off color.Color) {
	bg := rgba(off)
	for i := 0; i+3 < len(buf); i += 4 {
		copy(buf[i:i+4], bg[:])
	}
	fg := rgba(on)
	for c := range cells {
		if c.Row < 0 || c.Row >= size.Rows || c.Col < 0 || c.Col >= size.Cols {
			continue
		}
		base := (c.Col*size.Rows + c.Row) * 4
		copy(buf[base:base+4], fg[:])
	}
}
