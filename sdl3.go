package sdl3

/*
#cgo pkg-config: sdl3
#include <SDL3/SDL.h>
*/
import "C"

import (
	"github.com/gosdl/sdl3/internal/fail"
)

// Init initializes the subsystems named by flags. Repeated calls are
// reference counted by SDL; pair each Init with a Quit.
func Init(flags InitFlags) error {
	if err := fail.CheckBool(bool(C.SDL_Init(C.SDL_InitFlags(flags)))); err != nil {
		return err
	}
	Logger().Debug("sdl3: initialized", "subsystems", flags.String())
	return nil
}

// InitSubSystem initializes additional subsystems after Init.
func InitSubSystem(flags InitFlags) error {
	return fail.CheckBool(bool(C.SDL_InitSubSystem(C.SDL_InitFlags(flags))))
}

// QuitSubSystem shuts down the named subsystems. Calls are reference
// counted against InitSubSystem.
func QuitSubSystem(flags InitFlags) {
	C.SDL_QuitSubSystem(C.SDL_InitFlags(flags))
}

// WasInit reports which of the queried subsystems are currently
// initialized. Pass 0 to query all.
func WasInit(flags InitFlags) InitFlags {
	return InitFlags(C.SDL_WasInit(C.SDL_InitFlags(flags)))
}

// Quit shuts down all subsystems and cleans up SDL. Call once at exit,
// after every handle has been released.
func Quit() {
	C.SDL_Quit()
}
