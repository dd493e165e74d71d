// Package ttf binds SDL3_ttf for loading fonts and rendering text.
//
// Initialize the library with Init before opening fonts, and close every
// Font before calling Quit. Rendered text comes back as a standard
// image.RGBA so it can feed image/draw pipelines or GPU texture uploads
// without further conversion.
package ttf

/*
#cgo pkg-config: sdl3-ttf
#include <stdlib.h>
#include <SDL3_ttf/SDL_ttf.h>
*/
import "C"

import (
	_ "github.com/gosdl/sdl3" // registers the native error store
	"github.com/gosdl/sdl3/internal/fail"
)

// Init initializes the font engine. Each successful call must be paired
// with a Quit.
func Init() error {
	return fail.CheckBool(bool(C.TTF_Init()))
}

// Quit deinitializes the font engine once the init count drops to zero.
// All fonts must be closed first.
func Quit() {
	C.TTF_Quit()
}

// WasInit returns the number of times Init has succeeded without a
// matching Quit.
func WasInit() int {
	return int(C.TTF_WasInit())
}

// Version returns the linked SDL3_ttf version as major, minor, micro.
func Version() (int, int, int) {
	v := int(C.TTF_Version())
	return v / 1000000, v / 1000 % 1000, v % 1000
}
