//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/internal/core"
	"lifegrid/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const overlayPadding = 2

// Overlay draws the frame timing readout in the top right corner.
type Overlay struct {
	fg color.Color
	bg color.Color
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{
		fg: color.RGBA{G: 255, A: 255},
		bg: color.Black,
	}
}

// Draw renders the timing text onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, stats core.FrameStats) {
	face := basicfont.Face7x13
	label := render.TimingText(stats)
	bounds := text.BoundString(face, label)

	w := bounds.Dx() + 2*overlayPadding
	h := bounds.Dy() + 2*overlayPadding
	x := screen.Bounds().Dx() - w
	vector.DrawFilledRect(screen, float32(x), 0, float32(w), float32(h), o.bg, false)
	text.Draw(screen, label, face, x+overlayPadding-bounds.Min.X, overlayPadding-bounds.Min.Y, o.fg)
}
