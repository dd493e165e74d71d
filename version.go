package sdl3

/*
#include <SDL3/SDL.h>
*/
import "C"

// GetVersion returns the major, minor, and micro version of the linked
// SDL library, which may be newer than the headers the bindings were
// built against.
func GetVersion() (major, minor, micro int) {
	v := int(C.SDL_GetVersion())
	return v / 1000000, v / 1000 % 1000, v % 1000
}

// GetRevision returns SDL's build revision string. The format is an
// implementation detail; treat it as opaque and use it only in logs.
func GetRevision() string {
	return C.GoString(C.SDL_GetRevision())
}
