// Package sdlfront presents the simulation in an SDL2 window. It requires
// cgo and the SDL2/SDL2_ttf libraries, so everything except this file is
// built only with the sdl tag.
package sdlfront
