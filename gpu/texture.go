package gpu

/*
#include <SDL3/SDL.h>
*/
import "C"

import (
	"github.com/gosdl/sdl3/internal/fail"
)

// TextureCreateInfo describes a texture to create, mirroring
// SDL_GPUTextureCreateInfo.
type TextureCreateInfo struct {
	Type              TextureType
	Format            TextureFormat
	Usage             TextureUsage
	Width             uint32
	Height            uint32
	LayerCountOrDepth uint32
	NumLevels         uint32
	SampleCount       SampleCount
}

// Texture wraps one SDL_GPUTexture handle. Swapchain textures are owned
// by SDL and must not be released.
type Texture struct {
	dev       *Device
	ptr       *C.SDL_GPUTexture
	swapchain bool
}

// CreateTexture allocates a texture. Zero-value fields fall back to one
// layer, one mip level, and single sampling.
func (d *Device) CreateTexture(info TextureCreateInfo) (*Texture, error) {
	if !d.valid() {
		return nil, fail.InvalidParam("device")
	}
	if info.LayerCountOrDepth == 0 {
		info.LayerCountOrDepth = 1
	}
	if info.NumLevels == 0 {
		info.NumLevels = 1
	}
	cInfo := C.SDL_GPUTextureCreateInfo{
		_type:                C.SDL_GPUTextureType(info.Type),
		format:               C.SDL_GPUTextureFormat(info.Format),
		usage:                C.SDL_GPUTextureUsageFlags(info.Usage),
		width:                C.Uint32(info.Width),
		height:               C.Uint32(info.Height),
		layer_count_or_depth: C.Uint32(info.LayerCountOrDepth),
		num_levels:           C.Uint32(info.NumLevels),
		sample_count:         C.SDL_GPUSampleCount(info.SampleCount),
	}
	ptr := C.SDL_CreateGPUTexture(d.ptr, &cInfo)
	if ptr == nil {
		return nil, fail.Err()
	}
	return &Texture{dev: d, ptr: ptr}, nil
}

// Release frees the texture once all submitted work referencing it
// completes. Releasing a swapchain texture is a no-op; SDL owns those.
func (t *Texture) Release() {
	if t == nil || t.ptr == nil || t.swapchain || !t.dev.valid() {
		return
	}
	C.SDL_ReleaseGPUTexture(t.dev.ptr, t.ptr)
	t.ptr = nil
}

// SamplerCreateInfo describes a sampler to create, mirroring
// SDL_GPUSamplerCreateInfo. The zero value is a nearest-neighbor,
// repeat-addressed sampler.
type SamplerCreateInfo struct {
	MinFilter        Filter
	MagFilter        Filter
	MipmapMode       SamplerMipmapMode
	AddressModeU     SamplerAddressMode
	AddressModeV     SamplerAddressMode
	AddressModeW     SamplerAddressMode
	MipLodBias       float32
	MaxAnisotropy    float32
	CompareOp        CompareOp
	MinLod           float32
	MaxLod           float32
	EnableAnisotropy bool
	EnableCompare    bool
}

// Sampler wraps one SDL_GPUSampler handle.
type Sampler struct {
	dev *Device
	ptr *C.SDL_GPUSampler
}

// CreateSampler creates a sampler object.
func (d *Device) CreateSampler(info SamplerCreateInfo) (*Sampler, error) {
	if !d.valid() {
		return nil, fail.InvalidParam("device")
	}
	cInfo := C.SDL_GPUSamplerCreateInfo{
		min_filter:        C.SDL_GPUFilter(info.MinFilter),
		mag_filter:        C.SDL_GPUFilter(info.MagFilter),
		mipmap_mode:       C.SDL_GPUSamplerMipmapMode(info.MipmapMode),
		address_mode_u:    C.SDL_GPUSamplerAddressMode(info.AddressModeU),
		address_mode_v:    C.SDL_GPUSamplerAddressMode(info.AddressModeV),
		address_mode_w:    C.SDL_GPUSamplerAddressMode(info.AddressModeW),
		mip_lod_bias:      C.float(info.MipLodBias),
		max_anisotropy:    C.float(info.MaxAnisotropy),
		compare_op:        C.SDL_GPUCompareOp(info.CompareOp),
		min_lod:           C.float(info.MinLod),
		max_lod:           C.float(info.MaxLod),
		enable_anisotropy: C.bool(info.EnableAnisotropy),
		enable_compare:    C.bool(info.EnableCompare),
	}
	ptr := C.SDL_CreateGPUSampler(d.ptr, &cInfo)
	if ptr == nil {
		return nil, fail.Err()
	}
	return &Sampler{dev: d, ptr: ptr}, nil
}

// Release frees the sampler and invalidates the handle.
func (s *Sampler) Release() {
	if s == nil || s.ptr == nil || !s.dev.valid() {
		return
	}
	C.SDL_ReleaseGPUSampler(s.dev.ptr, s.ptr)
	s.ptr = nil
}
