//go:build sdl

package sdlfront

import "github.com/veandco/go-sdl2/sdl"

// Clock reads SDL's high resolution performance counter.
type Clock struct{}

func (Clock) Counter() uint64 { return sdl.GetPerformanceCounter() }

func (Clock) Frequency() uint64 { return sdl.GetPerformanceFrequency() }
