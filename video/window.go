package video

/*
#cgo pkg-config: sdl3
#include <stdlib.h>
#include <SDL3/SDL.h>
*/
import "C"

import (
	"image"
	"unsafe"

	"github.com/gosdl/sdl3"
	"github.com/gosdl/sdl3/internal/fail"
	"github.com/gosdl/sdl3/internal/surface"
)

// Special position values accepted by SetPosition, mirroring
// SDL_WINDOWPOS_CENTERED and SDL_WINDOWPOS_UNDEFINED.
const (
	WindowPosCentered  = 0x2FFF0000
	WindowPosUndefined = 0x1FFF0000
)

// Window wraps one SDL_Window handle. The handle is valid until Destroy;
// the caller must not use the Window afterwards. Methods on a nil or
// destroyed Window report an invalid-parameter failure.
type Window struct {
	ptr *C.SDL_Window
}

// ID identifies a window in window events.
type ID uint32

// CreateWindow creates a window with the given title, client size, and
// flags. The window appears immediately unless WindowHidden is set.
func CreateWindow(title string, w, h int32, flags WindowFlags) (*Window, error) {
	cTitle := C.CString(title)
	defer C.free(unsafe.Pointer(cTitle))

	ptr := C.SDL_CreateWindow(cTitle, C.int(w), C.int(h), C.SDL_WindowFlags(flags))
	if ptr == nil {
		return nil, fail.Err()
	}
	sdl3.Logger().Debug("video: window created", "title", title, "w", w, "h", h, "flags", flags.String())
	return &Window{ptr: ptr}, nil
}

// FromID returns the window with the given id, as carried by window events.
func FromID(id ID) (*Window, error) {
	ptr := C.SDL_GetWindowFromID(C.SDL_WindowID(id))
	if ptr == nil {
		return nil, fail.Err()
	}
	return &Window{ptr: ptr}, nil
}

// Destroy closes the window and invalidates the handle.
func (w *Window) Destroy() {
	if w == nil || w.ptr == nil {
		return
	}
	C.SDL_DestroyWindow(w.ptr)
	w.ptr = nil
}

// Native exposes the raw SDL_Window pointer for packages that pass the
// window across the cgo boundary themselves (gpu, messagebox). The pointer
// follows the window's lifetime; do not retain it past Destroy.
func (w *Window) Native() unsafe.Pointer {
	if w == nil {
		return nil
	}
	return unsafe.Pointer(w.ptr)
}

func (w *Window) valid() bool { return w != nil && w.ptr != nil }

// ID returns the window's id, as used in events.
func (w *Window) ID() (ID, error) {
	if !w.valid() {
		return 0, fail.InvalidParam("window")
	}
	id, err := fail.CheckID(uint64(C.SDL_GetWindowID(w.ptr)))
	return ID(id), err
}

// Flags returns the window's current flag set.
func (w *Window) Flags() WindowFlags {
	if !w.valid() {
		return 0
	}
	return WindowFlags(C.SDL_GetWindowFlags(w.ptr))
}

// Show makes a hidden window visible.
func (w *Window) Show() error {
	if !w.valid() {
		return fail.InvalidParam("window")
	}
	return fail.CheckBool(bool(C.SDL_ShowWindow(w.ptr)))
}

// Hide removes the window from the screen without destroying it.
func (w *Window) Hide() error {
	if !w.valid() {
		return fail.InvalidParam("window")
	}
	return fail.CheckBool(bool(C.SDL_HideWindow(w.ptr)))
}

// Raise brings the window above other windows and requests input focus.
func (w *Window) Raise() error {
	if !w.valid() {
		return fail.InvalidParam("window")
	}
	return fail.CheckBool(bool(C.SDL_RaiseWindow(w.ptr)))
}

// Minimize iconifies the window.
func (w *Window) Minimize() error {
	if !w.valid() {
		return fail.InvalidParam("window")
	}
	return fail.CheckBool(bool(C.SDL_MinimizeWindow(w.ptr)))
}

// Maximize expands the window as far as the window manager allows.
func (w *Window) Maximize() error {
	if !w.valid() {
		return fail.InvalidParam("window")
	}
	return fail.CheckBool(bool(C.SDL_MaximizeWindow(w.ptr)))
}

// Restore undoes Minimize or Maximize.
func (w *Window) Restore() error {
	if !w.valid() {
		return fail.InvalidParam("window")
	}
	return fail.CheckBool(bool(C.SDL_RestoreWindow(w.ptr)))
}

// Title returns the window title.
func (w *Window) Title() string {
	if !w.valid() {
		return ""
	}
	return C.GoString(C.SDL_GetWindowTitle(w.ptr))
}

// SetTitle changes the window title.
func (w *Window) SetTitle(title string) error {
	if !w.valid() {
		return fail.InvalidParam("window")
	}
	cTitle := C.CString(title)
	defer C.free(unsafe.Pointer(cTitle))
	return fail.CheckBool(bool(C.SDL_SetWindowTitle(w.ptr, cTitle)))
}

// Position returns the window position in screen coordinates.
func (w *Window) Position() (x, y int32, err error) {
	if !w.valid() {
		return 0, 0, fail.InvalidParam("window")
	}
	var cx, cy C.int
	if err := fail.CheckBool(bool(C.SDL_GetWindowPosition(w.ptr, &cx, &cy))); err != nil {
		return 0, 0, err
	}
	return int32(cx), int32(cy), nil
}

// SetPosition moves the window. WindowPosCentered and WindowPosUndefined
// are accepted for either coordinate. Position requests are asynchronous
// on some window managers; see Sync.
func (w *Window) SetPosition(x, y int32) error {
	if !w.valid() {
		return fail.InvalidParam("window")
	}
	return fail.CheckBool(bool(C.SDL_SetWindowPosition(w.ptr, C.int(x), C.int(y))))
}

// Size returns the window's client area in screen coordinates.
func (w *Window) Size() (width, height int32, err error) {
	if !w.valid() {
		return 0, 0, fail.InvalidParam("window")
	}
	var cw, ch C.int
	if err := fail.CheckBool(bool(C.SDL_GetWindowSize(w.ptr, &cw, &ch))); err != nil {
		return 0, 0, err
	}
	return int32(cw), int32(ch), nil
}

// SizeInPixels returns the client area in pixels, which differs from Size
// on high-pixel-density displays.
func (w *Window) SizeInPixels() (width, height int32, err error) {
	if !w.valid() {
		return 0, 0, fail.InvalidParam("window")
	}
	var cw, ch C.int
	if err := fail.CheckBool(bool(C.SDL_GetWindowSizeInPixels(w.ptr, &cw, &ch))); err != nil {
		return 0, 0, err
	}
	return int32(cw), int32(ch), nil
}

// SetSize resizes the window's client area.
func (w *Window) SetSize(width, height int32) error {
	if !w.valid() {
		return fail.InvalidParam("window")
	}
	return fail.CheckBool(bool(C.SDL_SetWindowSize(w.ptr, C.int(width), C.int(height))))
}

// SetMinimumSize constrains how small the user may resize the window.
func (w *Window) SetMinimumSize(width, height int32) error {
	if !w.valid() {
		return fail.InvalidParam("window")
	}
	return fail.CheckBool(bool(C.SDL_SetWindowMinimumSize(w.ptr, C.int(width), C.int(height))))
}

// SetMaximumSize constrains how large the user may resize the window.
func (w *Window) SetMaximumSize(width, height int32) error {
	if !w.valid() {
		return fail.InvalidParam("window")
	}
	return fail.CheckBool(bool(C.SDL_SetWindowMaximumSize(w.ptr, C.int(width), C.int(height))))
}

// Opacity returns the window opacity in [0, 1], or an error when the
// platform cannot report it.
func (w *Window) Opacity() (float32, error) {
	if !w.valid() {
		return 0, fail.InvalidParam("window")
	}
	v := C.SDL_GetWindowOpacity(w.ptr)
	if v < 0 {
		return 0, fail.Err()
	}
	return float32(v), nil
}

// SetOpacity sets the window opacity in [0, 1] where supported.
func (w *Window) SetOpacity(opacity float32) error {
	if !w.valid() {
		return fail.InvalidParam("window")
	}
	return fail.CheckBool(bool(C.SDL_SetWindowOpacity(w.ptr, C.float(opacity))))
}

// SetBordered adds or removes the window decoration.
func (w *Window) SetBordered(bordered bool) error {
	if !w.valid() {
		return fail.InvalidParam("window")
	}
	return fail.CheckBool(bool(C.SDL_SetWindowBordered(w.ptr, C.bool(bordered))))
}

// SetResizable allows or forbids user resizing.
func (w *Window) SetResizable(resizable bool) error {
	if !w.valid() {
		return fail.InvalidParam("window")
	}
	return fail.CheckBool(bool(C.SDL_SetWindowResizable(w.ptr, C.bool(resizable))))
}

// SetAlwaysOnTop keeps the window above normal windows.
func (w *Window) SetAlwaysOnTop(onTop bool) error {
	if !w.valid() {
		return fail.InvalidParam("window")
	}
	return fail.CheckBool(bool(C.SDL_SetWindowAlwaysOnTop(w.ptr, C.bool(onTop))))
}

// SetFullscreen switches between fullscreen and windowed mode. The change
// is asynchronous on some platforms; call Sync to wait for it.
func (w *Window) SetFullscreen(fullscreen bool) error {
	if !w.valid() {
		return fail.InvalidParam("window")
	}
	return fail.CheckBool(bool(C.SDL_SetWindowFullscreen(w.ptr, C.bool(fullscreen))))
}

// Sync blocks until any pending asynchronous window requests (position,
// size, fullscreen) have been applied by the window manager.
func (w *Window) Sync() error {
	if !w.valid() {
		return fail.InvalidParam("window")
	}
	return fail.CheckBool(bool(C.SDL_SyncWindow(w.ptr)))
}

// SetIcon installs img as the window icon. The pixels are copied; img may
// be discarded afterwards.
func (w *Window) SetIcon(img image.Image) error {
	if !w.valid() {
		return fail.InvalidParam("window")
	}
	if img == nil {
		return fail.InvalidParam("icon")
	}
	pix, iw, ih := surface.RGBA(img)

	// SDL_CreateSurfaceFrom retains the pixel pointer, so the pixels must
	// live in C memory for the surface's lifetime.
	cpix := C.CBytes(pix)
	defer C.free(cpix)
	surf := C.SDL_CreateSurfaceFrom(C.int(iw), C.int(ih), C.SDL_PIXELFORMAT_RGBA32, cpix, C.int(4*iw))
	if surf == nil {
		return fail.Err()
	}
	defer C.SDL_DestroySurface(surf)

	return fail.CheckBool(bool(C.SDL_SetWindowIcon(w.ptr, surf)))
}
