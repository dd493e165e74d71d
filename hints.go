package sdl3

/*
#include <stdlib.h>
#include <SDL3/SDL.h>
*/
import "C"

import (
	"unsafe"

	"github.com/gosdl/sdl3/internal/fail"
)

// Hint names understood by SDL. Any SDL_HINT_* name may be passed to the
// hint functions; these constants cover the common ones.
const (
	HintAppName               = "SDL_APP_NAME"
	HintAudioDriver           = "SDL_AUDIO_DRIVER"
	HintVideoDriver           = "SDL_VIDEO_DRIVER"
	HintVideoAllowScreensaver = "SDL_VIDEO_ALLOW_SCREENSAVER"
	HintRenderVSync           = "SDL_RENDER_VSYNC"
	HintGPUDriver             = "SDL_GPU_DRIVER"
)

// HintPriority orders competing hint settings. Values mirror
// SDL_HintPriority.
type HintPriority int32

const (
	HintDefault  HintPriority = 0
	HintNormal   HintPriority = 1
	HintOverride HintPriority = 2
)

// SetHint sets a hint with normal priority. Hints are suggestions; SDL may
// ignore them, and a false return only means the value was rejected.
func SetHint(name, value string) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	cValue := C.CString(value)
	defer C.free(unsafe.Pointer(cValue))
	return fail.CheckBool(bool(C.SDL_SetHint(cName, cValue)))
}

// SetHintWithPriority sets a hint, overriding lower-priority settings.
func SetHintWithPriority(name, value string, pri HintPriority) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	cValue := C.CString(value)
	defer C.free(unsafe.Pointer(cValue))
	return fail.CheckBool(bool(C.SDL_SetHintWithPriority(cName, cValue, C.SDL_HintPriority(pri))))
}

// GetHint returns the current value of a hint, or "" when unset.
func GetHint(name string) string {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return C.GoString(C.SDL_GetHint(cName))
}

// ResetHint restores a hint to its default value.
func ResetHint(name string) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return fail.CheckBool(bool(C.SDL_ResetHint(cName)))
}
