package gpu

/*
#include <SDL3/SDL.h>
*/
import "C"

import (
	"unsafe"

	"github.com/gosdl/sdl3/internal/fail"
)

// Buffer wraps one SDL_GPUBuffer handle: device-local memory bound as
// vertex, index, indirect, or storage data. Contents are written through a
// TransferBuffer inside a copy pass.
type Buffer struct {
	dev *Device
	ptr *C.SDL_GPUBuffer
}

// CreateBuffer allocates a device buffer of the given size in bytes.
func (d *Device) CreateBuffer(usage BufferUsage, size uint32) (*Buffer, error) {
	if !d.valid() {
		return nil, fail.InvalidParam("device")
	}
	info := C.SDL_GPUBufferCreateInfo{
		usage: C.SDL_GPUBufferUsageFlags(usage),
		size:  C.Uint32(size),
	}
	ptr := C.SDL_CreateGPUBuffer(d.ptr, &info)
	if ptr == nil {
		return nil, fail.Err()
	}
	return &Buffer{dev: d, ptr: ptr}, nil
}

// Release frees the buffer once all submitted work referencing it
// completes, and invalidates the handle.
func (b *Buffer) Release() {
	if b == nil || b.ptr == nil || !b.dev.valid() {
		return
	}
	C.SDL_ReleaseGPUBuffer(b.dev.ptr, b.ptr)
	b.ptr = nil
}

// TransferBuffer wraps one SDL_GPUTransferBuffer handle: CPU-visible
// staging memory for uploads to and downloads from device resources.
type TransferBuffer struct {
	dev  *Device
	ptr  *C.SDL_GPUTransferBuffer
	size uint32
}

// CreateTransferBuffer allocates staging memory of the given size in
// bytes for the given transfer direction.
func (d *Device) CreateTransferBuffer(usage TransferBufferUsage, size uint32) (*TransferBuffer, error) {
	if !d.valid() {
		return nil, fail.InvalidParam("device")
	}
	info := C.SDL_GPUTransferBufferCreateInfo{
		usage: C.SDL_GPUTransferBufferUsage(usage),
		size:  C.Uint32(size),
	}
	ptr := C.SDL_CreateGPUTransferBuffer(d.ptr, &info)
	if ptr == nil {
		return nil, fail.Err()
	}
	return &TransferBuffer{dev: d, ptr: ptr, size: size}, nil
}

// Release frees the transfer buffer and invalidates the handle.
func (t *TransferBuffer) Release() {
	if t == nil || t.ptr == nil || !t.dev.valid() {
		return
	}
	C.SDL_ReleaseGPUTransferBuffer(t.dev.ptr, t.ptr)
	t.ptr = nil
}

// Map exposes the transfer buffer's memory as a byte slice. The slice is
// valid until Unmap; writing to it after Unmap is undefined behavior.
// cycle asks SDL for fresh memory if the buffer is still referenced by
// in-flight work.
func (t *TransferBuffer) Map(cycle bool) ([]byte, error) {
	if t == nil || t.ptr == nil || !t.dev.valid() {
		return nil, fail.InvalidParam("transfer buffer")
	}
	p := C.SDL_MapGPUTransferBuffer(t.dev.ptr, t.ptr, C.bool(cycle))
	if p == nil {
		return nil, fail.Err()
	}
	return unsafe.Slice((*byte)(p), int(t.size)), nil
}

// Unmap releases the mapping obtained from Map.
func (t *TransferBuffer) Unmap() {
	if t == nil || t.ptr == nil || !t.dev.valid() {
		return
	}
	C.SDL_UnmapGPUTransferBuffer(t.dev.ptr, t.ptr)
}

// Upload maps the transfer buffer, copies data into it, and unmaps. A
// convenience for the common fill-then-copy-pass sequence.
func (t *TransferBuffer) Upload(data []byte) error {
	mem, err := t.Map(true)
	if err != nil {
		return err
	}
	defer t.Unmap()
	if len(data) > len(mem) {
		return fail.SetError("upload of %d bytes exceeds transfer buffer size %d", len(data), len(mem))
	}
	copy(mem, data)
	return nil
}
