package gpu

/*
#include <SDL3/SDL.h>
*/
import "C"

import (
	"github.com/gosdl/sdl3/internal/fail"
)

// CopyPass records transfer commands between BeginCopyPass and End.
type CopyPass struct {
	ptr *C.SDL_GPUCopyPass
}

// TransferBufferLocation addresses a byte offset inside a transfer
// buffer.
type TransferBufferLocation struct {
	TransferBuffer *TransferBuffer
	Offset         uint32
}

// BufferRegion addresses a byte range inside a GPU buffer.
type BufferRegion struct {
	Buffer *Buffer
	Offset uint32
	Size   uint32
}

// TextureTransferInfo describes the layout of texture data inside a
// transfer buffer. PixelsPerRow and RowsPerLayer of zero mean tightly
// packed.
type TextureTransferInfo struct {
	TransferBuffer *TransferBuffer
	Offset         uint32
	PixelsPerRow   uint32
	RowsPerLayer   uint32
}

// TextureRegion addresses a subregion of a texture for transfers.
type TextureRegion struct {
	Texture  *Texture
	MipLevel uint32
	Layer    uint32
	X        uint32
	Y        uint32
	Z        uint32
	W        uint32
	H        uint32
	D        uint32
}

// BeginCopyPass starts a copy pass on the command buffer.
func (cb *CommandBuffer) BeginCopyPass() (*CopyPass, error) {
	if !cb.valid() {
		return nil, fail.InvalidParam("command buffer")
	}
	ptr := C.SDL_BeginGPUCopyPass(cb.ptr)
	if ptr == nil {
		return nil, fail.Err()
	}
	return &CopyPass{ptr: ptr}, nil
}

func (cp *CopyPass) valid() bool { return cp != nil && cp.ptr != nil }

// UploadToBuffer copies bytes from a transfer buffer into a GPU buffer.
// Cycling avoids stalling when the destination is referenced by pending
// work.
func (cp *CopyPass) UploadToBuffer(src TransferBufferLocation, dst BufferRegion, cycle bool) error {
	if !cp.valid() {
		return fail.InvalidParam("copy pass")
	}
	if src.TransferBuffer == nil || src.TransferBuffer.ptr == nil {
		return fail.InvalidParam("source")
	}
	if dst.Buffer == nil || dst.Buffer.ptr == nil {
		return fail.InvalidParam("destination")
	}
	cSrc := C.SDL_GPUTransferBufferLocation{
		transfer_buffer: src.TransferBuffer.ptr,
		offset:          C.Uint32(src.Offset),
	}
	cDst := C.SDL_GPUBufferRegion{
		buffer: dst.Buffer.ptr,
		offset: C.Uint32(dst.Offset),
		size:   C.Uint32(dst.Size),
	}
	C.SDL_UploadToGPUBuffer(cp.ptr, &cSrc, &cDst, C.bool(cycle))
	return nil
}

// UploadToTexture copies pixel data from a transfer buffer into a
// texture region.
func (cp *CopyPass) UploadToTexture(src TextureTransferInfo, dst TextureRegion, cycle bool) error {
	if !cp.valid() {
		return fail.InvalidParam("copy pass")
	}
	if src.TransferBuffer == nil || src.TransferBuffer.ptr == nil {
		return fail.InvalidParam("source")
	}
	if dst.Texture == nil || dst.Texture.ptr == nil {
		return fail.InvalidParam("destination")
	}
	cSrc := C.SDL_GPUTextureTransferInfo{
		transfer_buffer: src.TransferBuffer.ptr,
		offset:          C.Uint32(src.Offset),
		pixels_per_row:  C.Uint32(src.PixelsPerRow),
		rows_per_layer:  C.Uint32(src.RowsPerLayer),
	}
	cDst := C.SDL_GPUTextureRegion{
		texture:   dst.Texture.ptr,
		mip_level: C.Uint32(dst.MipLevel),
		layer:     C.Uint32(dst.Layer),
		x:         C.Uint32(dst.X),
		y:         C.Uint32(dst.Y),
		z:         C.Uint32(dst.Z),
		w:         C.Uint32(dst.W),
		h:         C.Uint32(dst.H),
		d:         C.Uint32(dst.D),
	}
	C.SDL_UploadToGPUTexture(cp.ptr, &cSrc, &cDst, C.bool(cycle))
	return nil
}

// DownloadFromBuffer copies bytes from a GPU buffer into a transfer
// buffer. The data is readable after the command buffer's fence signals.
func (cp *CopyPass) DownloadFromBuffer(src BufferRegion, dst TransferBufferLocation) error {
	if !cp.valid() {
		return fail.InvalidParam("copy pass")
	}
	if src.Buffer == nil || src.Buffer.ptr == nil {
		return fail.InvalidParam("source")
	}
	if dst.TransferBuffer == nil || dst.TransferBuffer.ptr == nil {
		return fail.InvalidParam("destination")
	}
	cSrc := C.SDL_GPUBufferRegion{
		buffer: src.Buffer.ptr,
		offset: C.Uint32(src.Offset),
		size:   C.Uint32(src.Size),
	}
	cDst := C.SDL_GPUTransferBufferLocation{
		transfer_buffer: dst.TransferBuffer.ptr,
		offset:          C.Uint32(dst.Offset),
	}
	C.SDL_DownloadFromGPUBuffer(cp.ptr, &cSrc, &cDst)
	return nil
}

// CopyBufferToBuffer copies a byte range between two GPU buffers.
func (cp *CopyPass) CopyBufferToBuffer(src, dst *Buffer, srcOffset, dstOffset, size uint32, cycle bool) error {
	if !cp.valid() {
		return fail.InvalidParam("copy pass")
	}
	if src == nil || src.ptr == nil {
		return fail.InvalidParam("source")
	}
	if dst == nil || dst.ptr == nil {
		return fail.InvalidParam("destination")
	}
	cSrc := C.SDL_GPUBufferLocation{buffer: src.ptr, offset: C.Uint32(srcOffset)}
	cDst := C.SDL_GPUBufferLocation{buffer: dst.ptr, offset: C.Uint32(dstOffset)}
	C.SDL_CopyGPUBufferToBuffer(cp.ptr, &cSrc, &cDst, C.Uint32(size), C.bool(cycle))
	return nil
}

// TextureLocation addresses one texel origin inside a texture for
// texture-to-texture copies.
type TextureLocation struct {
	Texture  *Texture
	MipLevel uint32
	Layer    uint32
	X        uint32
	Y        uint32
	Z        uint32
}

// CopyTextureToTexture copies a w*h*d texel block between two textures.
func (cp *CopyPass) CopyTextureToTexture(src, dst TextureLocation, w, h, d uint32, cycle bool) error {
	if !cp.valid() {
		return fail.InvalidParam("copy pass")
	}
	if src.Texture == nil || src.Texture.ptr == nil {
		return fail.InvalidParam("source")
	}
	if dst.Texture == nil || dst.Texture.ptr == nil {
		return fail.InvalidParam("destination")
	}
	cSrc := C.SDL_GPUTextureLocation{
		texture:   src.Texture.ptr,
		mip_level: C.Uint32(src.MipLevel),
		layer:     C.Uint32(src.Layer),
		x:         C.Uint32(src.X),
		y:         C.Uint32(src.Y),
		z:         C.Uint32(src.Z),
	}
	cDst := C.SDL_GPUTextureLocation{
		texture:   dst.Texture.ptr,
		mip_level: C.Uint32(dst.MipLevel),
		layer:     C.Uint32(dst.Layer),
		x:         C.Uint32(dst.X),
		y:         C.Uint32(dst.Y),
		z:         C.Uint32(dst.Z),
	}
	C.SDL_CopyGPUTextureToTexture(cp.ptr, &cSrc, &cDst, C.Uint32(w), C.Uint32(h), C.Uint32(d), C.bool(cycle))
	return nil
}

// End finishes the copy pass and invalidates the handle.
func (cp *CopyPass) End() {
	if !cp.valid() {
		return
	}
	C.SDL_EndGPUCopyPass(cp.ptr)
	cp.ptr = nil
}
