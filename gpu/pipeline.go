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

// VertexBufferDescription declares one vertex buffer slot's layout,
// mirroring SDL_GPUVertexBufferDescription.
type VertexBufferDescription struct {
	Slot             uint32
	Pitch            uint32
	InputRate        VertexInputRate
	InstanceStepRate uint32
}

// VertexAttribute declares one vertex shader input, mirroring
// SDL_GPUVertexAttribute.
type VertexAttribute struct {
	Location   uint32
	BufferSlot uint32
	Format     VertexElementFormat
	Offset     uint32
}

// RasterizerState controls polygon rasterization, mirroring
// SDL_GPURasterizerState. The zero value is filled, unculled,
// counter-clockwise-front geometry.
type RasterizerState struct {
	FillMode                FillMode
	CullMode                CullMode
	FrontFace               FrontFace
	DepthBiasConstantFactor float32
	DepthBiasClamp          float32
	DepthBiasSlopeFactor    float32
	EnableDepthBias         bool
	EnableDepthClip         bool
}

// MultisampleState controls MSAA, mirroring SDL_GPUMultisampleState. The
// zero value is single-sampled.
type MultisampleState struct {
	SampleCount SampleCount
	SampleMask  uint32
	EnableMask  bool
}

// StencilOpState describes per-face stencil behavior, mirroring
// SDL_GPUStencilOpState.
type StencilOpState struct {
	FailOp      StencilOp
	PassOp      StencilOp
	DepthFailOp StencilOp
	CompareOp   CompareOp
}

// DepthStencilState controls depth and stencil testing, mirroring
// SDL_GPUDepthStencilState. The zero value disables both.
type DepthStencilState struct {
	CompareOp         CompareOp
	BackStencilState  StencilOpState
	FrontStencilState StencilOpState
	CompareMask       uint8
	WriteMask         uint8
	EnableDepthTest   bool
	EnableDepthWrite  bool
	EnableStencilTest bool
}

// ColorTargetBlendState controls blending into one color target,
// mirroring SDL_GPUColorTargetBlendState. The zero value disables
// blending and writes all channels.
type ColorTargetBlendState struct {
	SrcColorBlendFactor  BlendFactor
	DstColorBlendFactor  BlendFactor
	ColorBlendOp         BlendOp
	SrcAlphaBlendFactor  BlendFactor
	DstAlphaBlendFactor  BlendFactor
	AlphaBlendOp         BlendOp
	ColorWriteMask       ColorComponentFlags
	EnableBlend          bool
	EnableColorWriteMask bool
}

// ColorTargetDescription declares one color target's format and blending,
// mirroring SDL_GPUColorTargetDescription.
type ColorTargetDescription struct {
	Format     TextureFormat
	BlendState ColorTargetBlendState
}

// GraphicsPipelineCreateInfo describes a complete graphics pipeline,
// mirroring SDL_GPUGraphicsPipelineCreateInfo.
type GraphicsPipelineCreateInfo struct {
	VertexShader          *Shader
	FragmentShader        *Shader
	VertexBuffers         []VertexBufferDescription
	VertexAttributes      []VertexAttribute
	PrimitiveType         PrimitiveType
	Rasterizer            RasterizerState
	Multisample           MultisampleState
	DepthStencil          DepthStencilState
	ColorTargets          []ColorTargetDescription
	DepthStencilFormat    TextureFormat
	HasDepthStencilTarget bool
}

// GraphicsPipeline wraps one SDL_GPUGraphicsPipeline handle.
type GraphicsPipeline struct {
	dev *Device
	ptr *C.SDL_GPUGraphicsPipeline
}

// cAlloc allocates zeroed C memory for n values of elemSize bytes.
// Nested pipeline arrays must live in C memory: the create-info struct is
// passed by pointer and cgo forbids Go pointers inside it.
func cAlloc(n int, elemSize uintptr) unsafe.Pointer {
	return C.calloc(C.size_t(n), C.size_t(elemSize))
}

func stencilOpStateToNative(s StencilOpState) C.SDL_GPUStencilOpState {
	return C.SDL_GPUStencilOpState{
		fail_op:       C.SDL_GPUStencilOp(s.FailOp),
		pass_op:       C.SDL_GPUStencilOp(s.PassOp),
		depth_fail_op: C.SDL_GPUStencilOp(s.DepthFailOp),
		compare_op:    C.SDL_GPUCompareOp(s.CompareOp),
	}
}

// CreateGraphicsPipeline compiles a graphics pipeline from shaders and
// fixed-function state.
func (d *Device) CreateGraphicsPipeline(info GraphicsPipelineCreateInfo) (*GraphicsPipeline, error) {
	if !d.valid() {
		return nil, fail.InvalidParam("device")
	}
	if info.VertexShader == nil || info.VertexShader.ptr == nil {
		return nil, fail.InvalidParam("vertex shader")
	}
	if info.FragmentShader == nil || info.FragmentShader.ptr == nil {
		return nil, fail.InvalidParam("fragment shader")
	}

	var cInfo C.SDL_GPUGraphicsPipelineCreateInfo
	cInfo.vertex_shader = info.VertexShader.ptr
	cInfo.fragment_shader = info.FragmentShader.ptr
	cInfo.primitive_type = C.SDL_GPUPrimitiveType(info.PrimitiveType)

	if n := len(info.VertexBuffers); n > 0 {
		mem := cAlloc(n, C.sizeof_SDL_GPUVertexBufferDescription)
		defer C.free(mem)
		descs := unsafe.Slice((*C.SDL_GPUVertexBufferDescription)(mem), n)
		for i, vb := range info.VertexBuffers {
			descs[i] = C.SDL_GPUVertexBufferDescription{
				slot:               C.Uint32(vb.Slot),
				pitch:              C.Uint32(vb.Pitch),
				input_rate:         C.SDL_GPUVertexInputRate(vb.InputRate),
				instance_step_rate: C.Uint32(vb.InstanceStepRate),
			}
		}
		cInfo.vertex_input_state.vertex_buffer_descriptions = &descs[0]
		cInfo.vertex_input_state.num_vertex_buffers = C.Uint32(n)
	}
	if n := len(info.VertexAttributes); n > 0 {
		mem := cAlloc(n, C.sizeof_SDL_GPUVertexAttribute)
		defer C.free(mem)
		attrs := unsafe.Slice((*C.SDL_GPUVertexAttribute)(mem), n)
		for i, va := range info.VertexAttributes {
			attrs[i] = C.SDL_GPUVertexAttribute{
				location:    C.Uint32(va.Location),
				buffer_slot: C.Uint32(va.BufferSlot),
				format:      C.SDL_GPUVertexElementFormat(va.Format),
				offset:      C.Uint32(va.Offset),
			}
		}
		cInfo.vertex_input_state.vertex_attributes = &attrs[0]
		cInfo.vertex_input_state.num_vertex_attributes = C.Uint32(n)
	}

	cInfo.rasterizer_state = C.SDL_GPURasterizerState{
		fill_mode:                  C.SDL_GPUFillMode(info.Rasterizer.FillMode),
		cull_mode:                  C.SDL_GPUCullMode(info.Rasterizer.CullMode),
		front_face:                 C.SDL_GPUFrontFace(info.Rasterizer.FrontFace),
		depth_bias_constant_factor: C.float(info.Rasterizer.DepthBiasConstantFactor),
		depth_bias_clamp:           C.float(info.Rasterizer.DepthBiasClamp),
		depth_bias_slope_factor:    C.float(info.Rasterizer.DepthBiasSlopeFactor),
		enable_depth_bias:          C.bool(info.Rasterizer.EnableDepthBias),
		enable_depth_clip:          C.bool(info.Rasterizer.EnableDepthClip),
	}
	cInfo.multisample_state = C.SDL_GPUMultisampleState{
		sample_count: C.SDL_GPUSampleCount(info.Multisample.SampleCount),
		sample_mask:  C.Uint32(info.Multisample.SampleMask),
		enable_mask:  C.bool(info.Multisample.EnableMask),
	}
	cInfo.depth_stencil_state = C.SDL_GPUDepthStencilState{
		compare_op:          C.SDL_GPUCompareOp(info.DepthStencil.CompareOp),
		back_stencil_state:  stencilOpStateToNative(info.DepthStencil.BackStencilState),
		front_stencil_state: stencilOpStateToNative(info.DepthStencil.FrontStencilState),
		compare_mask:        C.Uint8(info.DepthStencil.CompareMask),
		write_mask:          C.Uint8(info.DepthStencil.WriteMask),
		enable_depth_test:   C.bool(info.DepthStencil.EnableDepthTest),
		enable_depth_write:  C.bool(info.DepthStencil.EnableDepthWrite),
		enable_stencil_test: C.bool(info.DepthStencil.EnableStencilTest),
	}

	if n := len(info.ColorTargets); n > 0 {
		mem := cAlloc(n, C.sizeof_SDL_GPUColorTargetDescription)
		defer C.free(mem)
		targets := unsafe.Slice((*C.SDL_GPUColorTargetDescription)(mem), n)
		for i, ct := range info.ColorTargets {
			targets[i] = C.SDL_GPUColorTargetDescription{
				format: C.SDL_GPUTextureFormat(ct.Format),
				blend_state: C.SDL_GPUColorTargetBlendState{
					src_color_blendfactor:   C.SDL_GPUBlendFactor(ct.BlendState.SrcColorBlendFactor),
					dst_color_blendfactor:   C.SDL_GPUBlendFactor(ct.BlendState.DstColorBlendFactor),
					color_blend_op:          C.SDL_GPUBlendOp(ct.BlendState.ColorBlendOp),
					src_alpha_blendfactor:   C.SDL_GPUBlendFactor(ct.BlendState.SrcAlphaBlendFactor),
					dst_alpha_blendfactor:   C.SDL_GPUBlendFactor(ct.BlendState.DstAlphaBlendFactor),
					alpha_blend_op:          C.SDL_GPUBlendOp(ct.BlendState.AlphaBlendOp),
					color_write_mask:        C.SDL_GPUColorComponentFlags(ct.BlendState.ColorWriteMask),
					enable_blend:            C.bool(ct.BlendState.EnableBlend),
					enable_color_write_mask: C.bool(ct.BlendState.EnableColorWriteMask),
				},
			}
		}
		cInfo.target_info.color_target_descriptions = &targets[0]
		cInfo.target_info.num_color_targets = C.Uint32(n)
	}
	cInfo.target_info.depth_stencil_format = C.SDL_GPUTextureFormat(info.DepthStencilFormat)
	cInfo.target_info.has_depth_stencil_target = C.bool(info.HasDepthStencilTarget)

	ptr := C.SDL_CreateGPUGraphicsPipeline(d.ptr, &cInfo)
	if ptr == nil {
		return nil, fail.Err()
	}
	return &GraphicsPipeline{dev: d, ptr: ptr}, nil
}

// Release frees the pipeline once all submitted work using it completes.
func (p *GraphicsPipeline) Release() {
	if p == nil || p.ptr == nil || !p.dev.valid() {
		return
	}
	C.SDL_ReleaseGPUGraphicsPipeline(p.dev.ptr, p.ptr)
	p.ptr = nil
}

// ComputePipelineCreateInfo describes a compute pipeline, mirroring
// SDL_GPUComputePipelineCreateInfo. The resource counts and thread counts
// must match the shader bytecode.
type ComputePipelineCreateInfo struct {
	Code                        []byte
	Entrypoint                  string
	Format                      ShaderFormat
	NumSamplers                 uint32
	NumReadonlyStorageTextures  uint32
	NumReadonlyStorageBuffers   uint32
	NumReadwriteStorageTextures uint32
	NumReadwriteStorageBuffers  uint32
	NumUniformBuffers           uint32
	ThreadcountX                uint32
	ThreadcountY                uint32
	ThreadcountZ                uint32
}

// ComputePipeline wraps one SDL_GPUComputePipeline handle.
type ComputePipeline struct {
	dev *Device
	ptr *C.SDL_GPUComputePipeline
}

// CreateComputePipeline compiles a compute pipeline directly from
// bytecode. The entrypoint defaults to "main" when empty.
func (d *Device) CreateComputePipeline(info ComputePipelineCreateInfo) (*ComputePipeline, error) {
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

	cInfo := C.SDL_GPUComputePipelineCreateInfo{
		code_size:                      C.size_t(len(info.Code)),
		code:                           (*C.Uint8)(cCode),
		entrypoint:                     cEntry,
		format:                         C.SDL_GPUShaderFormat(info.Format),
		num_samplers:                   C.Uint32(info.NumSamplers),
		num_readonly_storage_textures:  C.Uint32(info.NumReadonlyStorageTextures),
		num_readonly_storage_buffers:   C.Uint32(info.NumReadonlyStorageBuffers),
		num_readwrite_storage_textures: C.Uint32(info.NumReadwriteStorageTextures),
		num_readwrite_storage_buffers:  C.Uint32(info.NumReadwriteStorageBuffers),
		num_uniform_buffers:            C.Uint32(info.NumUniformBuffers),
		threadcount_x:                  C.Uint32(info.ThreadcountX),
		threadcount_y:                  C.Uint32(info.ThreadcountY),
		threadcount_z:                  C.Uint32(info.ThreadcountZ),
	}
	ptr := C.SDL_CreateGPUComputePipeline(d.ptr, &cInfo)
	if ptr == nil {
		return nil, fail.Err()
	}
	return &ComputePipeline{dev: d, ptr: ptr}, nil
}

// Release frees the pipeline once all submitted work using it completes.
func (p *ComputePipeline) Release() {
	if p == nil || p.ptr == nil || !p.dev.valid() {
		return
	}
	C.SDL_ReleaseGPUComputePipeline(p.dev.ptr, p.ptr)
	p.ptr = nil
}
