package video

/*
#include <SDL3/SDL.h>
*/
import "C"

import (
	"unsafe"

	"github.com/gosdl/sdl3"
	"github.com/gosdl/sdl3/internal/fail"
)

// Display identifies a connected display. The zero value is SDL's reserved
// invalid id.
type Display uint32

// DisplayMode describes one mode of a display.
type DisplayMode struct {
	Display      Display
	PixelFormat  uint32
	W, H         int32
	PixelDensity float32
	RefreshRate  float32
}

func displayModeFromNative(m *C.SDL_DisplayMode) DisplayMode {
	return DisplayMode{
		Display:      Display(m.displayID),
		PixelFormat:  uint32(m.format),
		W:            int32(m.w),
		H:            int32(m.h),
		PixelDensity: float32(m.pixel_density),
		RefreshRate:  float32(m.refresh_rate),
	}
}

// Displays returns the connected displays in no particular order.
func Displays() ([]Display, error) {
	var count C.int
	ids := C.SDL_GetDisplays(&count)
	if ids == nil {
		return nil, fail.Err()
	}
	defer C.SDL_free(unsafe.Pointer(ids))

	native := unsafe.Slice(ids, int(count))
	out := make([]Display, len(native))
	for i, id := range native {
		out[i] = Display(id)
	}
	return out, nil
}

// PrimaryDisplay returns the display the desktop considers primary.
func PrimaryDisplay() (Display, error) {
	id, err := fail.CheckID(uint64(C.SDL_GetPrimaryDisplay()))
	return Display(id), err
}

// DisplayForWindow returns the display the window mostly resides on.
func DisplayForWindow(w *Window) (Display, error) {
	if !w.valid() {
		return 0, fail.InvalidParam("window")
	}
	id, err := fail.CheckID(uint64(C.SDL_GetDisplayForWindow(w.ptr)))
	return Display(id), err
}

// Name returns the display's human-readable name.
func (d Display) Name() (string, error) {
	name := C.SDL_GetDisplayName(C.SDL_DisplayID(d))
	if name == nil {
		return "", fail.Err()
	}
	return C.GoString(name), nil
}

// Bounds returns the display's desktop area.
func (d Display) Bounds() (sdl3.Rect, error) {
	var r sdl3.Rect
	err := fail.CheckBool(bool(C.SDL_GetDisplayBounds(C.SDL_DisplayID(d), (*C.SDL_Rect)(unsafe.Pointer(&r)))))
	return r, err
}

// UsableBounds returns the desktop area minus taskbars, docks, and menu
// bars.
func (d Display) UsableBounds() (sdl3.Rect, error) {
	var r sdl3.Rect
	err := fail.CheckBool(bool(C.SDL_GetDisplayUsableBounds(C.SDL_DisplayID(d), (*C.SDL_Rect)(unsafe.Pointer(&r)))))
	return r, err
}

// ContentScale returns the display's content scale factor (1.0 means
// unscaled).
func (d Display) ContentScale() (float32, error) {
	v := C.SDL_GetDisplayContentScale(C.SDL_DisplayID(d))
	if v == 0 {
		return 0, fail.Err()
	}
	return float32(v), nil
}

// CurrentMode returns the display's current mode.
func (d Display) CurrentMode() (DisplayMode, error) {
	m := C.SDL_GetCurrentDisplayMode(C.SDL_DisplayID(d))
	if m == nil {
		return DisplayMode{}, fail.Err()
	}
	return displayModeFromNative(m), nil
}

// DesktopMode returns the mode the desktop uses when no fullscreen window
// has changed it.
func (d Display) DesktopMode() (DisplayMode, error) {
	m := C.SDL_GetDesktopDisplayMode(C.SDL_DisplayID(d))
	if m == nil {
		return DisplayMode{}, fail.Err()
	}
	return displayModeFromNative(m), nil
}
