package gpu

/*
#include <stdlib.h>
#include <SDL3/SDL.h>
*/
import "C"

import (
	"unsafe"

	sdl3 "github.com/gosdl/sdl3"
	"github.com/gosdl/sdl3/internal/fail"
)

// ColorTargetInfo describes one color attachment for a render pass,
// mirroring SDL_GPUColorTargetInfo.
type ColorTargetInfo struct {
	Texture             *Texture
	MipLevel            uint32
	LayerOrDepthPlane   uint32
	ClearColor          sdl3.FColor
	LoadOp              LoadOp
	StoreOp             StoreOp
	ResolveTexture      *Texture
	ResolveMipLevel     uint32
	ResolveLayer        uint32
	Cycle               bool
	CycleResolveTexture bool
}

// DepthStencilTargetInfo describes the depth-stencil attachment for a
// render pass, mirroring SDL_GPUDepthStencilTargetInfo.
type DepthStencilTargetInfo struct {
	Texture        *Texture
	ClearDepth     float32
	LoadOp         LoadOp
	StoreOp        StoreOp
	StencilLoadOp  LoadOp
	StencilStoreOp StoreOp
	Cycle          bool
	ClearStencil   uint8
}

// RenderPass records draw commands between BeginRenderPass and End. All
// bindings reset when the pass ends.
type RenderPass struct {
	ptr *C.SDL_GPURenderPass
}

// Viewport mirrors SDL_GPUViewport.
type Viewport struct {
	X        float32
	Y        float32
	W        float32
	H        float32
	MinDepth float32
	MaxDepth float32
}

// BufferBinding pairs a buffer with a byte offset for vertex and index
// buffer binds.
type BufferBinding struct {
	Buffer *Buffer
	Offset uint32
}

// TextureSamplerBinding pairs a texture with a sampler for shader
// sampling binds.
type TextureSamplerBinding struct {
	Texture *Texture
	Sampler *Sampler
}

// BeginRenderPass starts a render pass over the given color targets and
// optional depth-stencil target. depthStencil may be nil.
func (cb *CommandBuffer) BeginRenderPass(colorTargets []ColorTargetInfo, depthStencil *DepthStencilTargetInfo) (*RenderPass, error) {
	if !cb.valid() {
		return nil, fail.InvalidParam("command buffer")
	}
	if len(colorTargets) == 0 && depthStencil == nil {
		return nil, fail.InvalidParam("color targets")
	}

	// The target-info arrays must live in C memory: they are passed by
	// pointer and cgo forbids Go pointers inside them.
	var cColor *C.SDL_GPUColorTargetInfo
	if n := len(colorTargets); n > 0 {
		cColor = (*C.SDL_GPUColorTargetInfo)(cAlloc(n, C.sizeof_SDL_GPUColorTargetInfo))
		defer C.free(unsafe.Pointer(cColor))
		targets := unsafe.Slice(cColor, n)
		for i, ct := range colorTargets {
			if ct.Texture == nil || ct.Texture.ptr == nil {
				return nil, fail.InvalidParam("color target texture")
			}
			targets[i] = C.SDL_GPUColorTargetInfo{
				texture:               ct.Texture.ptr,
				mip_level:             C.Uint32(ct.MipLevel),
				layer_or_depth_plane:  C.Uint32(ct.LayerOrDepthPlane),
				clear_color:           C.SDL_FColor{r: C.float(ct.ClearColor.R), g: C.float(ct.ClearColor.G), b: C.float(ct.ClearColor.B), a: C.float(ct.ClearColor.A)},
				load_op:               C.SDL_GPULoadOp(ct.LoadOp),
				store_op:              C.SDL_GPUStoreOp(ct.StoreOp),
				resolve_mip_level:     C.Uint32(ct.ResolveMipLevel),
				resolve_layer:         C.Uint32(ct.ResolveLayer),
				cycle:                 C.bool(ct.Cycle),
				cycle_resolve_texture: C.bool(ct.CycleResolveTexture),
			}
			if ct.ResolveTexture != nil {
				targets[i].resolve_texture = ct.ResolveTexture.ptr
			}
		}
	}

	var cDepth *C.SDL_GPUDepthStencilTargetInfo
	if depthStencil != nil {
		if depthStencil.Texture == nil || depthStencil.Texture.ptr == nil {
			return nil, fail.InvalidParam("depth stencil texture")
		}
		cDepth = (*C.SDL_GPUDepthStencilTargetInfo)(cAlloc(1, C.sizeof_SDL_GPUDepthStencilTargetInfo))
		defer C.free(unsafe.Pointer(cDepth))
		*cDepth = C.SDL_GPUDepthStencilTargetInfo{
			texture:          depthStencil.Texture.ptr,
			clear_depth:      C.float(depthStencil.ClearDepth),
			load_op:          C.SDL_GPULoadOp(depthStencil.LoadOp),
			store_op:         C.SDL_GPUStoreOp(depthStencil.StoreOp),
			stencil_load_op:  C.SDL_GPULoadOp(depthStencil.StencilLoadOp),
			stencil_store_op: C.SDL_GPUStoreOp(depthStencil.StencilStoreOp),
			cycle:            C.bool(depthStencil.Cycle),
			clear_stencil:    C.Uint8(depthStencil.ClearStencil),
		}
	}

	ptr := C.SDL_BeginGPURenderPass(cb.ptr, cColor, C.Uint32(len(colorTargets)), cDepth)
	if ptr == nil {
		return nil, fail.Err()
	}
	return &RenderPass{ptr: ptr}, nil
}

func (rp *RenderPass) valid() bool { return rp != nil && rp.ptr != nil }

// BindPipeline binds a graphics pipeline for subsequent draws.
func (rp *RenderPass) BindPipeline(p *GraphicsPipeline) error {
	if !rp.valid() {
		return fail.InvalidParam("render pass")
	}
	if p == nil || p.ptr == nil {
		return fail.InvalidParam("pipeline")
	}
	C.SDL_BindGPUGraphicsPipeline(rp.ptr, p.ptr)
	return nil
}

// SetViewport sets the viewport for subsequent draws.
func (rp *RenderPass) SetViewport(v Viewport) error {
	if !rp.valid() {
		return fail.InvalidParam("render pass")
	}
	cv := C.SDL_GPUViewport{
		x:         C.float(v.X),
		y:         C.float(v.Y),
		w:         C.float(v.W),
		h:         C.float(v.H),
		min_depth: C.float(v.MinDepth),
		max_depth: C.float(v.MaxDepth),
	}
	C.SDL_SetGPUViewport(rp.ptr, &cv)
	return nil
}

// SetScissor sets the scissor rectangle for subsequent draws.
func (rp *RenderPass) SetScissor(r sdl3.Rect) error {
	if !rp.valid() {
		return fail.InvalidParam("render pass")
	}
	C.SDL_SetGPUScissor(rp.ptr, (*C.SDL_Rect)(unsafe.Pointer(&r)))
	return nil
}

// BindVertexBuffers binds vertex buffers starting at the given slot.
func (rp *RenderPass) BindVertexBuffers(firstSlot uint32, bindings []BufferBinding) error {
	if !rp.valid() {
		return fail.InvalidParam("render pass")
	}
	if len(bindings) == 0 {
		return fail.InvalidParam("bindings")
	}
	cBindings := (*C.SDL_GPUBufferBinding)(cAlloc(len(bindings), C.sizeof_SDL_GPUBufferBinding))
	defer C.free(unsafe.Pointer(cBindings))
	slice := unsafe.Slice(cBindings, len(bindings))
	for i, b := range bindings {
		if b.Buffer == nil || b.Buffer.ptr == nil {
			return fail.InvalidParam("buffer")
		}
		slice[i] = C.SDL_GPUBufferBinding{buffer: b.Buffer.ptr, offset: C.Uint32(b.Offset)}
	}
	C.SDL_BindGPUVertexBuffers(rp.ptr, C.Uint32(firstSlot), cBindings, C.Uint32(len(bindings)))
	return nil
}

// BindIndexBuffer binds the index buffer for indexed draws.
func (rp *RenderPass) BindIndexBuffer(binding BufferBinding, elementSize IndexElementSize) error {
	if !rp.valid() {
		return fail.InvalidParam("render pass")
	}
	if binding.Buffer == nil || binding.Buffer.ptr == nil {
		return fail.InvalidParam("buffer")
	}
	cb := C.SDL_GPUBufferBinding{buffer: binding.Buffer.ptr, offset: C.Uint32(binding.Offset)}
	C.SDL_BindGPUIndexBuffer(rp.ptr, &cb, C.SDL_GPUIndexElementSize(elementSize))
	return nil
}

// BindFragmentSamplers binds texture-sampler pairs to fragment shader
// slots starting at firstSlot.
func (rp *RenderPass) BindFragmentSamplers(firstSlot uint32, bindings []TextureSamplerBinding) error {
	if !rp.valid() {
		return fail.InvalidParam("render pass")
	}
	if len(bindings) == 0 {
		return fail.InvalidParam("bindings")
	}
	cBindings := (*C.SDL_GPUTextureSamplerBinding)(cAlloc(len(bindings), C.sizeof_SDL_GPUTextureSamplerBinding))
	defer C.free(unsafe.Pointer(cBindings))
	slice := unsafe.Slice(cBindings, len(bindings))
	for i, b := range bindings {
		if b.Texture == nil || b.Texture.ptr == nil || b.Sampler == nil || b.Sampler.ptr == nil {
			return fail.InvalidParam("binding")
		}
		slice[i] = C.SDL_GPUTextureSamplerBinding{texture: b.Texture.ptr, sampler: b.Sampler.ptr}
	}
	C.SDL_BindGPUFragmentSamplers(rp.ptr, C.Uint32(firstSlot), cBindings, C.Uint32(len(bindings)))
	return nil
}

// BindVertexSamplers binds texture-sampler pairs to vertex shader slots
// starting at firstSlot.
func (rp *RenderPass) BindVertexSamplers(firstSlot uint32, bindings []TextureSamplerBinding) error {
	if !rp.valid() {
		return fail.InvalidParam("render pass")
	}
	if len(bindings) == 0 {
		return fail.InvalidParam("bindings")
	}
	cBindings := (*C.SDL_GPUTextureSamplerBinding)(cAlloc(len(bindings), C.sizeof_SDL_GPUTextureSamplerBinding))
	defer C.free(unsafe.Pointer(cBindings))
	slice := unsafe.Slice(cBindings, len(bindings))
	for i, b := range bindings {
		if b.Texture == nil || b.Texture.ptr == nil || b.Sampler == nil || b.Sampler.ptr == nil {
			return fail.InvalidParam("binding")
		}
		slice[i] = C.SDL_GPUTextureSamplerBinding{texture: b.Texture.ptr, sampler: b.Sampler.ptr}
	}
	C.SDL_BindGPUVertexSamplers(rp.ptr, C.Uint32(firstSlot), cBindings, C.Uint32(len(bindings)))
	return nil
}

// DrawPrimitives draws unindexed primitives from the bound vertex
// buffers.
func (rp *RenderPass) DrawPrimitives(numVertices, numInstances, firstVertex, firstInstance uint32) error {
	if !rp.valid() {
		return fail.InvalidParam("render pass")
	}
	C.SDL_DrawGPUPrimitives(rp.ptr, C.Uint32(numVertices), C.Uint32(numInstances), C.Uint32(firstVertex), C.Uint32(firstInstance))
	return nil
}

// DrawIndexedPrimitives draws indexed primitives from the bound vertex
// and index buffers.
func (rp *RenderPass) DrawIndexedPrimitives(numIndices, numInstances, firstIndex uint32, vertexOffset int32, firstInstance uint32) error {
	if !rp.valid() {
		return fail.InvalidParam("render pass")
	}
	C.SDL_DrawGPUIndexedPrimitives(rp.ptr, C.Uint32(numIndices), C.Uint32(numInstances), C.Uint32(firstIndex), C.Sint32(vertexOffset), C.Uint32(firstInstance))
	return nil
}

// End finishes the render pass and invalidates the handle.
func (rp *RenderPass) End() {
	if !rp.valid() {
		return
	}
	C.SDL_EndGPURenderPass(rp.ptr)
	rp.ptr = nil
}
