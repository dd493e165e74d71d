package gpu

/*
#include <SDL3/SDL.h>
*/
import "C"

import (
	"unsafe"

	"github.com/gosdl/sdl3/internal/fail"
	"github.com/gosdl/sdl3/video"
)

// CommandBuffer wraps one SDL_GPUCommandBuffer handle. A command buffer
// must only be used on the thread that acquired it, and it is consumed by
// Submit or Cancel; the handle is invalid afterwards.
type CommandBuffer struct {
	dev *Device
	ptr *C.SDL_GPUCommandBuffer
}

// AcquireCommandBuffer starts recording a new command buffer. Command
// buffers submitted from the same thread execute in submission order.
func (d *Device) AcquireCommandBuffer() (*CommandBuffer, error) {
	if !d.valid() {
		return nil, fail.InvalidParam("device")
	}
	ptr := C.SDL_AcquireGPUCommandBuffer(d.ptr)
	if ptr == nil {
		return nil, fail.Err()
	}
	return &CommandBuffer{dev: d, ptr: ptr}, nil
}

func (cb *CommandBuffer) valid() bool { return cb != nil && cb.ptr != nil }

// Submit sends the recorded work to the GPU and invalidates the handle.
func (cb *CommandBuffer) Submit() error {
	if !cb.valid() {
		return fail.InvalidParam("command buffer")
	}
	err := fail.CheckBool(bool(C.SDL_SubmitGPUCommandBuffer(cb.ptr)))
	cb.ptr = nil
	return err
}

// SubmitAndAcquireFence submits and returns a fence that signals when the
// work completes. The caller must release the fence.
func (cb *CommandBuffer) SubmitAndAcquireFence() (*Fence, error) {
	if !cb.valid() {
		return nil, fail.InvalidParam("command buffer")
	}
	dev := cb.dev
	ptr := C.SDL_SubmitGPUCommandBufferAndAcquireFence(cb.ptr)
	cb.ptr = nil
	if ptr == nil {
		return nil, fail.Err()
	}
	return &Fence{dev: dev, ptr: ptr}, nil
}

// Cancel discards the recorded work and invalidates the handle. A command
// buffer that acquired a swapchain texture must not be canceled.
func (cb *CommandBuffer) Cancel() error {
	if !cb.valid() {
		return fail.InvalidParam("command buffer")
	}
	err := fail.CheckBool(bool(C.SDL_CancelGPUCommandBuffer(cb.ptr)))
	cb.ptr = nil
	return err
}

// PushVertexUniformData sets a vertex uniform slot for subsequent draws
// recorded on this command buffer.
func (cb *CommandBuffer) PushVertexUniformData(slot uint32, data []byte) error {
	if !cb.valid() {
		return fail.InvalidParam("command buffer")
	}
	if len(data) == 0 {
		return fail.InvalidParam("data")
	}
	C.SDL_PushGPUVertexUniformData(cb.ptr, C.Uint32(slot), unsafe.Pointer(&data[0]), C.Uint32(len(data)))
	return nil
}

// PushFragmentUniformData sets a fragment uniform slot for subsequent
// draws recorded on this command buffer.
func (cb *CommandBuffer) PushFragmentUniformData(slot uint32, data []byte) error {
	if !cb.valid() {
		return fail.InvalidParam("command buffer")
	}
	if len(data) == 0 {
		return fail.InvalidParam("data")
	}
	C.SDL_PushGPUFragmentUniformData(cb.ptr, C.Uint32(slot), unsafe.Pointer(&data[0]), C.Uint32(len(data)))
	return nil
}

// WaitAndAcquireSwapchainTexture blocks until a swapchain texture for the
// claimed window is available and returns it with its pixel size. The
// texture belongs to SDL and must not be released; it is valid until the
// command buffer is submitted.
func (cb *CommandBuffer) WaitAndAcquireSwapchainTexture(w *video.Window) (*Texture, uint32, uint32, error) {
	if !cb.valid() {
		return nil, 0, 0, fail.InvalidParam("command buffer")
	}
	if w == nil || w.Native() == nil {
		return nil, 0, 0, fail.InvalidParam("window")
	}
	var tex *C.SDL_GPUTexture
	var cw, ch C.Uint32
	ok := C.SDL_WaitAndAcquireGPUSwapchainTexture(cb.ptr, windowPtr(w), &tex, &cw, &ch)
	if err := fail.CheckBool(bool(ok)); err != nil {
		return nil, 0, 0, err
	}
	return &Texture{dev: cb.dev, ptr: tex, swapchain: true}, uint32(cw), uint32(ch), nil
}

// AcquireSwapchainTexture is the non-blocking variant of
// WaitAndAcquireSwapchainTexture. The returned texture is nil (with nil
// error) when no swapchain image is available this frame; skip rendering
// and submit the command buffer anyway.
func (cb *CommandBuffer) AcquireSwapchainTexture(w *video.Window) (*Texture, uint32, uint32, error) {
	if !cb.valid() {
		return nil, 0, 0, fail.InvalidParam("command buffer")
	}
	if w == nil || w.Native() == nil {
		return nil, 0, 0, fail.InvalidParam("window")
	}
	var tex *C.SDL_GPUTexture
	var cw, ch C.Uint32
	ok := C.SDL_AcquireGPUSwapchainTexture(cb.ptr, windowPtr(w), &tex, &cw, &ch)
	if err := fail.CheckBool(bool(ok)); err != nil {
		return nil, 0, 0, err
	}
	if tex == nil {
		return nil, 0, 0, nil
	}
	return &Texture{dev: cb.dev, ptr: tex, swapchain: true}, uint32(cw), uint32(ch), nil
}

// Fence wraps one SDL_GPUFence handle signaling completion of a submitted
// command buffer.
type Fence struct {
	dev *Device
	ptr *C.SDL_GPUFence
}

// Signaled reports whether the fence's command buffer has completed.
func (f *Fence) Signaled() bool {
	if f == nil || f.ptr == nil || !f.dev.valid() {
		return false
	}
	return bool(C.SDL_QueryGPUFence(f.dev.ptr, f.ptr))
}

// Wait blocks until the fence signals.
func (f *Fence) Wait() error {
	if f == nil || f.ptr == nil || !f.dev.valid() {
		return fail.InvalidParam("fence")
	}
	fences := [1]*C.SDL_GPUFence{f.ptr}
	return fail.CheckBool(bool(C.SDL_WaitForGPUFences(f.dev.ptr, C.bool(true), &fences[0], 1)))
}

// Release frees the fence and invalidates the handle.
func (f *Fence) Release() {
	if f == nil || f.ptr == nil || !f.dev.valid() {
		return
	}
	C.SDL_ReleaseGPUFence(f.dev.ptr, f.ptr)
	f.ptr = nil
}
