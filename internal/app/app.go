//go:build ebiten

package app

import (
	"image/color"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keymap = []struct {
	key ebiten.Key
	ev  Event
}{
	{ebiten.KeyEscape, EventEscape},
	{ebiten.KeyQ, EventQuit},
	{ebiten.KeySpace, EventTogglePlay},
	{ebiten.KeyR, EventReset},
	{ebiten.KeyF3, EventToggleOverlay},
}

// Game adapts a Driver to the ebiten.Game interface. Ebiten owns the loop, so
// Update plays the role of one Run iteration and Draw renders its frame.
type Game struct {
	driver  *Driver
	painter *render.GridPainter
	overlay *ui.Overlay
	timer   *core.FrameTimer
	stats   core.FrameStats

	onColor  color.Color
	offColor color.Color
}

// New constructs a Game for the provided driver.
func New(d *Driver, clock core.Clock) *Game {
	size := d.Sim().Size()
	return &Game{
		driver:   d,
		painter:  render.NewGridPainter(size.Rows, size.Cols),
		overlay:  ui.NewOverlay(),
		timer:    core.NewFrameTimer(clock),
		onColor:  color.White,
		offColor: color.Black,
	}
}

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	var events []Event
	for _, k := range keymap {
		if inpututil.IsKeyJustPressed(k.key) {
			events = append(events, k.ev)
		}
	}
	if !g.driver.Iterate(events, g.stats.Delta) {
		return ebiten.Termination
	}
	g.stats = g.timer.Tick()
	return nil
}

// Draw renders the current generation and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.driver.Frame(g.stats)
	g.painter.Blit(screen, frame.Cells, g.onColor, g.offColor, frame.CellSize)
	if frame.Overlay == Shown {
		g.overlay.Draw(screen, frame.Stats)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.ScreenSize(g.driver.Sim().Size(), g.driver.cellSize)
}
