package sdl3

/*
#include <stdlib.h>
#include <SDL3/SDL.h>

// SDL_SetError is variadic; cgo cannot call it directly.
static bool sdl3SetErrorLiteral(const char *msg) { return SDL_SetError("%s", msg); }
*/
import "C"

import (
	"unsafe"

	"github.com/gosdl/sdl3/internal/fail"
)

// Error is the single error kind produced by the bindings. It carries the
// diagnostic string SDL had set when the failing call returned.
type Error = fail.Error

// ErrSDL matches every failure the bindings report:
// errors.Is(err, sdl3.ErrSDL).
var ErrSDL = fail.ErrNative

// nativeStore routes the shared diagnostic store to SDL's per-thread error
// buffer. Registered over the pure-Go fallback as soon as this package is
// linked in.
type nativeStore struct{}

func (nativeStore) LastError() string { return C.GoString(C.SDL_GetError()) }

func (nativeStore) SetError(msg string) {
	c := C.CString(msg)
	defer C.free(unsafe.Pointer(c))
	C.sdl3SetErrorLiteral(c)
}

func (nativeStore) ClearError() { C.SDL_ClearError() }

func init() {
	fail.SetStore(nativeStore{})
}

// GetError returns SDL's diagnostic string for the calling thread, or ""
// when no error is set. The buffer is overwritten by the next failing SDL
// call on the same thread; the returned string is a copy and stays valid.
//
// Errors returned by the bindings already carry this string, so GetError is
// rarely needed directly.
func GetError() string { return fail.LastError() }

// SetError stores msg as the diagnostic string and reports failure, exactly
// as SDL_SetError does. The returned error carries msg.
func SetError(msg string) error { return fail.SetError("%s", msg) }

// ClearError resets the diagnostic string so GetError returns "".
func ClearError() { fail.ClearError() }

// InvalidParamError stores the canonical "Parameter 'param' is invalid"
// diagnostic and reports failure.
func InvalidParamError(param string) error { return fail.InvalidParam(param) }
