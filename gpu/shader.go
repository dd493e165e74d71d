package gpu

/*
#include <stdlib.h>
#include <SDL3/SDL.h>
*/
import "C"

import (
	"unsafe"

	"github.com/gosdl/sdl3/internal/fail"
)

// ShaderCreateInfo describes a shader to create, mirroring
// SDL_GPUShaderCreateInfo. The resource counts must match what the
// bytecode declares; the shadercross package extracts them from SPIR-V.
type ShaderCreateInfo struct {
	Code               []byte
	Entrypoint         string
	Format             ShaderFormat
	Stage              ShaderStage
	NumSamplers        uint32
	NumStorageTextures uint32
	NumStorageBuffers  uint32
	NumUniformBuffers  uint32
}

// Shader wraps one SDL_GPUShader handle.
type Shader struct {
	dev *Device
	ptr *C.SDL_GPUShader
}

// CreateShader uploads shader bytecode to the device. The entrypoint
// defaults to "main" when empty.
func (d *Device) CreateShader(info ShaderCreateInfo) (*Shader, error) {
	if !d.valid() {
		return nil, fail.InvalidParam("device")
	}
	if len(info.Code) == 0 {
		return nil, fail.InvalidParam("code")
	}
	entry := info.Entrypoint
	if entry == "" {
		entry = "main"
	}
	cEntry := C.CString(entry)
	defer C.free(unsafe.Pointer(cEntry))
	cCode := C.CBytes(info.Code)
	defer C.free(cCode)

	cInfo := C.SDL_GPUShaderCreateInfo{
		code_size:            C.size_t(len(info.Code)),
		code:                 (*C.Uint8)(cCode),
		entrypoint:           cEntry,
		format:               C.SDL_GPUShaderFormat(info.Format),
		stage:                C.SDL_GPUShaderStage(info.Stage),
		num_samplers:         C.Uint32(info.NumSamplers),
		num_storage_textures: C.Uint32(info.NumStorageTextures),
		num_storage_buffers:  C.Uint32(info.NumStorageBuffers),
		num_uniform_buffers:  C.Uint32(info.NumUniformBuffers),
	}
	ptr := C.SDL_CreateGPUShader(d.ptr, &cInfo)
	if ptr == nil {
		return nil, fail.Err()
	}
	return &Shader{dev: d, ptr: ptr}, nil
}

// Release frees the shader. Pipelines created from it keep working; the
// shader is only needed at pipeline creation time.
func (s *Shader) Release() {
	if s == nil || s.ptr == nil || !s.dev.valid() {
		return
	}
	C.SDL_ReleaseGPUShader(s.dev.ptr, s.ptr)
	s.ptr = nil
}
