//go:build sdl

package sdlfront

import (
	"fmt"

	"lifegrid/internal/app"
	"lifegrid/internal/render"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const fontSize = 14

var (
	aliveColor   = sdl.Color{R: 255, G: 255, B: 255, A: 255}
	overlayColor = sdl.Color{R: 0, G: 255, B: 0, A: 255}
)

// Window is an app.Input and app.Renderer backed by an SDL window with a
// vsync'd accelerated renderer.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	font     *ttf.Font
	title    string
	width    int32
	rects    []sdl.Rect
}

// Open creates a centered window of w x h pixels. When fontPath is empty the
// timing overlay is shown in the window title instead of on the canvas.
func Open(title string, w, h int, fontPath string) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_TIMER); err != nil {
		return nil, fmt.Errorf("init sdl: %w", err)
	}
	win := &Window{title: title, width: int32(w)}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, int32(w), int32(h), sdl.WINDOW_SHOWN)
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	win.renderer = renderer

	if fontPath != "" {
		if err := ttf.Init(); err != nil {
			win.Close()
			return nil, fmt.Errorf("init ttf: %w", err)
		}
		font, err := ttf.OpenFont(fontPath, fontSize)
		if err != nil {
			win.Close()
			return nil, fmt.Errorf("load font %s: %w", fontPath, err)
		}
		win.font = font
	}
	return win, nil
}

// Close releases SDL resources in reverse order of creation.
func (w *Window) Close() {
	if w.font != nil {
		w.font.Close()
		ttf.Quit()
	}
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.window != nil {
		w.window.Destroy()
	}
	sdl.Quit()
}

// Poll drains the SDL event queue.
func (w *Window) Poll() []app.Event {
	var events []app.Event
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			events = append(events, app.EventQuit)
		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				continue
			}
			if e := keyEvent(ev.Keysym.Sym); e != app.EventNone {
				events = append(events, e)
			}
		}
	}
	return events
}

func keyEvent(key sdl.Keycode) app.Event {
	switch key {
	case sdl.K_ESCAPE:
		return app.EventEscape
	case sdl.K_q:
		return app.EventQuit
	case sdl.K_SPACE:
		return app.EventTogglePlay
	case sdl.K_r:
		return app.EventReset
	case sdl.K_F3:
		return app.EventToggleOverlay
	}
	return app.EventNone
}

// Render clears to black, fills one rectangle per live cell and presents.
// Present blocks until the next vertical blank.
func (w *Window) Render(f app.Frame) error {
	if err := w.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return err
	}
	if err := w.renderer.Clear(); err != nil {
		return err
	}

	w.rects = w.rects[:0]
	for r := range render.Rects(f.Cells, f.CellSize) {
		w.rects = append(w.rects, sdl.Rect{X: int32(r.Min.X), Y: int32(r.Min.Y), W: int32(r.Dx()), H: int32(r.Dy())})
	}
	if len(w.rects) > 0 {
		if err := w.renderer.SetDrawColor(aliveColor.R, aliveColor.G, aliveColor.B, aliveColor.A); err != nil {
			return err
		}
		if err := w.renderer.FillRects(w.rects); err != nil {
			return fmt.Errorf("fill cells: %w", err)
		}
	}

	if err := w.drawOverlay(f); err != nil {
		return err
	}
	w.renderer.Present()
	return nil
}

func (w *Window) drawOverlay(f app.Frame) error {
	if f.Overlay != app.Shown {
		if w.font == nil {
			w.window.SetTitle(w.title)
		}
		return nil
	}
	label := render.TimingText(f.Stats)
	if w.font == nil {
		w.window.SetTitle(w.title + " | " + label)
		return nil
	}

	surface, err := w.font.RenderUTF8Blended(label, overlayColor)
	if err != nil {
		return fmt.Errorf("render overlay text: %w", err)
	}
	defer surface.Free()
	texture, err := w.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return fmt.Errorf("overlay texture: %w", err)
	}
	defer texture.Destroy()

	_, _, tw, th, err := texture.Query()
	if err != nil {
		return fmt.Errorf("query overlay texture: %w", err)
	}
	dst := sdl.Rect{X: w.width - tw, Y: 0, W: tw, H: th}
	if err := w.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return err
	}
	if err := w.renderer.FillRect(&dst); err != nil {
		return err
	}
	return w.renderer.Copy(texture, nil, &dst)
}
