package gpu

/*
#cgo pkg-config: sdl3
#include <stdlib.h>
#include <SDL3/SDL.h>
*/
import "C"

import (
	"unsafe"

	"github.com/gosdl/sdl3"
	"github.com/gosdl/sdl3/internal/fail"
	"github.com/gosdl/sdl3/video"
)

// Device wraps one SDL_GPUDevice handle. The handle is valid until
// Destroy; every resource created from the device must be released before
// the device itself.
type Device struct {
	ptr *C.SDL_GPUDevice
}

// CreateDevice opens the best available GPU backend that can consume one
// of the given shader formats. debug enables the backend's validation
// layer. driver pins a specific backend ("vulkan", "direct3d12",
// "metal"); leave it empty to let SDL choose.
func CreateDevice(formats ShaderFormat, debug bool, driver string) (*Device, error) {
	var cDriver *C.char
	if driver != "" {
		cDriver = C.CString(driver)
		defer C.free(unsafe.Pointer(cDriver))
	}
	ptr := C.SDL_CreateGPUDevice(C.SDL_GPUShaderFormat(formats), C.bool(debug), cDriver)
	if ptr == nil {
		return nil, fail.Err()
	}
	d := &Device{ptr: ptr}
	sdl3.Logger().Debug("gpu: device created", "driver", d.Driver(), "formats", formats.String())
	return d, nil
}

// Destroy releases the device and invalidates the handle. All resources
// created from the device must already be released and all claimed
// windows released.
func (d *Device) Destroy() {
	if d == nil || d.ptr == nil {
		return
	}
	C.SDL_DestroyGPUDevice(d.ptr)
	d.ptr = nil
}

func (d *Device) valid() bool { return d != nil && d.ptr != nil }

// Driver returns the name of the backend in use.
func (d *Device) Driver() string {
	if !d.valid() {
		return ""
	}
	return C.GoString(C.SDL_GetGPUDeviceDriver(d.ptr))
}

// ShaderFormats returns the bytecode formats the device consumes.
func (d *Device) ShaderFormats() ShaderFormat {
	if !d.valid() {
		return ShaderFormatInvalid
	}
	return ShaderFormat(C.SDL_GetGPUShaderFormats(d.ptr))
}

func windowPtr(w *video.Window) *C.SDL_Window {
	return (*C.SDL_Window)(w.Native())
}

// ClaimWindow creates a swapchain for the window on this device. Required
// before acquiring swapchain textures for it.
func (d *Device) ClaimWindow(w *video.Window) error {
	if !d.valid() {
		return fail.InvalidParam("device")
	}
	if w == nil || w.Native() == nil {
		return fail.InvalidParam("window")
	}
	return fail.CheckBool(bool(C.SDL_ClaimWindowForGPUDevice(d.ptr, windowPtr(w))))
}

// ReleaseWindow destroys the window's swapchain. Call before destroying
// either the window or the device.
func (d *Device) ReleaseWindow(w *video.Window) {
	if !d.valid() || w == nil || w.Native() == nil {
		return
	}
	C.SDL_ReleaseWindowFromGPUDevice(d.ptr, windowPtr(w))
}

// SetSwapchainParameters changes the claimed window's swapchain color
// space and pacing.
func (d *Device) SetSwapchainParameters(w *video.Window, comp SwapchainComposition, mode PresentMode) error {
	if !d.valid() {
		return fail.InvalidParam("device")
	}
	if w == nil || w.Native() == nil {
		return fail.InvalidParam("window")
	}
	return fail.CheckBool(bool(C.SDL_SetGPUSwapchainParameters(d.ptr, windowPtr(w),
		C.SDL_GPUSwapchainComposition(comp), C.SDL_GPUPresentMode(mode))))
}

// WindowSupportsPresentMode reports whether the claimed window's
// swapchain can use the given pacing.
func (d *Device) WindowSupportsPresentMode(w *video.Window, mode PresentMode) bool {
	if !d.valid() || w == nil || w.Native() == nil {
		return false
	}
	return bool(C.SDL_WindowSupportsGPUPresentMode(d.ptr, windowPtr(w), C.SDL_GPUPresentMode(mode)))
}

// SwapchainTextureFormat returns the texture format of the claimed
// window's swapchain, for building pipelines that render to it.
func (d *Device) SwapchainTextureFormat(w *video.Window) (TextureFormat, bool) {
	if !d.valid() || w == nil || w.Native() == nil {
		return TextureFormatInvalid, false
	}
	return TextureFormatFromNative(uint32(C.SDL_GetGPUSwapchainTextureFormat(d.ptr, windowPtr(w))))
}

// WaitForIdle blocks until the device has finished all submitted work.
func (d *Device) WaitForIdle() error {
	if !d.valid() {
		return fail.InvalidParam("device")
	}
	return fail.CheckBool(bool(C.SDL_WaitForGPUIdle(d.ptr)))
}
