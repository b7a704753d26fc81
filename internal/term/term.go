// Package term runs the simulation in a terminal using tcell. Each grid cell
// is two character columns wide so cells look roughly square.
package term

import (
	"fmt"
	"time"

	"lifegrid/internal/app"
	"lifegrid/internal/render"

	"github.com/gdamore/tcell/v2"
)

const cellWidth = 2

// Screen is an app.Input and app.Renderer backed by a tcell screen.
type Screen struct {
	screen   tcell.Screen
	interval time.Duration
	last     time.Time

	alive   tcell.Style
	overlay tcell.Style
}

// Open initializes the controlling terminal. fps caps the frame rate; zero
// disables pacing.
func Open(fps int) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return New(screen, fps), nil
}

// New wraps an initialized screen.
func New(screen tcell.Screen, fps int) *Screen {
	s := &Screen{
		screen:  screen,
		alive:   tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorWhite),
		overlay: tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGreen),
	}
	if fps > 0 {
		s.interval = time.Second / time.Duration(fps)
	}
	screen.HideCursor()
	return s
}

// GridSize returns the largest grid that fits the terminal.
func (s *Screen) GridSize() (rows, cols int) {
	w, h := s.screen.Size()
	return w / cellWidth, h
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}

// Poll drains pending terminal events without blocking.
func (s *Screen) Poll() []app.Event {
	var events []app.Event
	for s.screen.HasPendingEvent() {
		switch ev := s.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if e := keyEvent(ev); e != app.EventNone {
				events = append(events, e)
			}
		case *tcell.EventResize:
			s.screen.Sync()
		case nil:
			return append(events, app.EventQuit)
		}
	}
	return events
}

func keyEvent(ev *tcell.EventKey) app.Event {
	switch ev.Key() {
	case tcell.KeyEscape:
		return app.EventEscape
	case tcell.KeyCtrlC:
		return app.EventQuit
	case tcell.KeyF3:
		return app.EventToggleOverlay
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return app.EventTogglePlay
		case 'r', 'R':
			return app.EventReset
		case 'q', 'Q':
			return app.EventQuit
		case 'f', 'F':
			return app.EventToggleOverlay
		}
	}
	return app.EventNone
}

// Render draws the frame and waits out the rest of the frame interval.
func (s *Screen) Render(f app.Frame) error {
	s.screen.Clear()
	for c := range f.Cells {
		x := c.Row * cellWidth
		for dx := 0; dx < cellWidth; dx++ {
			s.screen.SetContent(x+dx, c.Col, ' ', nil, s.alive)
		}
	}
	if f.Overlay == app.Shown {
		s.drawText(render.TimingText(f.Stats))
	}
	s.screen.Show()
	s.pace()
	return nil
}

func (s *Screen) drawText(label string) {
	w, _ := s.screen.Size()
	x := max(w-len(label), 0)
	for i, r := range label {
		s.screen.SetContent(x+i, 0, r, nil, s.overlay)
	}
}

func (s *Screen) pace() {
	if s.interval <= 0 {
		return
	}
	now := time.Now()
	if !s.last.IsZero() {
		if wait := s.interval - now.Sub(s.last); wait > 0 {
			time.Sleep(wait)
			now = now.Add(wait)
		}
	}
	s.last = now
}
