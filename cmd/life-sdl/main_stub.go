//go:build !sdl

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The SDL build of life requires the sdl build tag and SDL2/SDL2_ttf.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags sdl ./cmd/life-sdl`.")
	os.Exit(2)
}
