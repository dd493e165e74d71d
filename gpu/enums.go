package gpu

// Enum and flag types mirroring SDL_gpu.h value for value. Types with a
// reserved invalid zero value expose a FromNative conversion that reports
// ok=false for it, so "absent" never masquerades as a real value.

// ShaderFormat is a bit set of bytecode formats a device or shader
// supports. Values mirror SDL_GPU_SHADERFORMAT_*.
type ShaderFormat uint32

const (
	ShaderFormatInvalid  ShaderFormat = 0
	ShaderFormatPrivate  ShaderFormat = 1 << 0
	ShaderFormatSPIRV    ShaderFormat = 1 << 1
	ShaderFormatDXBC     ShaderFormat = 1 << 2
	ShaderFormatDXIL     ShaderFormat = 1 << 3
	ShaderFormatMSL      ShaderFormat = 1 << 4
	ShaderFormatMetalLib ShaderFormat = 1 << 5
)

// Native returns the SDL representation of the flag set.
func (f ShaderFormat) Native() uint32 { return uint32(f) }

// ShaderFormatFromNative converts an SDL_GPUShaderFormat value.
func ShaderFormatFromNative(v uint32) ShaderFormat { return ShaderFormat(v) }

func (f ShaderFormat) String() string {
	switch f {
	case ShaderFormatPrivate:
		return "private"
	case ShaderFormatSPIRV:
		return "spirv"
	case ShaderFormatDXBC:
		return "dxbc"
	case ShaderFormatDXIL:
		return "dxil"
	case ShaderFormatMSL:
		return "msl"
	case ShaderFormatMetalLib:
		return "metallib"
	case ShaderFormatInvalid:
		return "invalid"
	}
	return "mixed"
}

// ShaderStage selects the pipeline stage a shader runs in. Values mirror
// SDL_GPUShaderStage.
type ShaderStage uint32

const (
	ShaderStageVertex   ShaderStage = 0
	ShaderStageFragment ShaderStage = 1
)

func (s ShaderStage) String() string {
	if s == ShaderStageVertex {
		return "vertex"
	}
	return "fragment"
}

// TextureFormat describes texel encoding. Values mirror
// SDL_GPUTextureFormat; the zero value is SDL's reserved invalid format.
type TextureFormat uint32

const (
	TextureFormatInvalid TextureFormat = iota
	TextureFormatA8Unorm
	TextureFormatR8Unorm
	TextureFormatR8G8Unorm
	TextureFormatR8G8B8A8Unorm
	TextureFormatR16Unorm
	TextureFormatR16G16Unorm
	TextureFormatR16G16B16A16Unorm
	TextureFormatR10G10B10A2Unorm
	TextureFormatB5G6R5Unorm
	TextureFormatB5G5R5A1Unorm
	TextureFormatB4G4R4A4Unorm
	TextureFormatB8G8R8A8Unorm
	TextureFormatBC1RGBAUnorm
	TextureFormatBC2RGBAUnorm
	TextureFormatBC3RGBAUnorm
	TextureFormatBC4RUnorm
	TextureFormatBC5RGUnorm
	TextureFormatBC7RGBAUnorm
	TextureFormatBC6HRGBFloat
	TextureFormatBC6HRGBUfloat
	TextureFormatR8Snorm
	TextureFormatR8G8Snorm
	TextureFormatR8G8B8A8Snorm
	TextureFormatR16Snorm
	TextureFormatR16G16Snorm
	TextureFormatR16G16B16A16Snorm
	TextureFormatR16Float
	TextureFormatR16G16Float
	TextureFormatR16G16B16A16Float
	TextureFormatR32Float
	TextureFormatR32G32Float
	TextureFormatR32G32B32A32Float
	TextureFormatR11G11B10Ufloat
	TextureFormatR8Uint
	TextureFormatR8G8Uint
	TextureFormatR8G8B8A8Uint
	TextureFormatR16Uint
	TextureFormatR16G16Uint
	TextureFormatR16G16B16A16Uint
	TextureFormatR32Uint
	TextureFormatR32G32Uint
	TextureFormatR32G32B32A32Uint
	TextureFormatR8Int
	TextureFormatR8G8Int
	TextureFormatR8G8B8A8Int
	TextureFormatR16Int
	TextureFormatR16G16Int
	TextureFormatR16G16B16A16Int
	TextureFormatR32Int
	TextureFormatR32G32Int
	TextureFormatR32G32B32A32Int
	TextureFormatR8G8B8A8UnormSRGB
	TextureFormatB8G8R8A8UnormSRGB
	TextureFormatBC1RGBAUnormSRGB
	TextureFormatBC2RGBAUnormSRGB
	TextureFormatBC3RGBAUnormSRGB
	TextureFormatBC7RGBAUnormSRGB
	TextureFormatD16Unorm
	TextureFormatD24Unorm
	TextureFormatD32Float
	TextureFormatD24UnormS8Uint
	TextureFormatD32FloatS8Uint

	textureFormatCount // keep last
)

// Native returns the SDL representation of the format. The invalid format
// maps to SDL's reserved zero value.
func (f TextureFormat) Native() uint32 { return uint32(f) }

// TextureFormatFromNative converts an SDL_GPUTextureFormat value. ok is
// false for the reserved invalid value and for values the bindings do not
// know.
func TextureFormatFromNative(v uint32) (TextureFormat, bool) {
	f := TextureFormat(v)
	if f == TextureFormatInvalid || f >= textureFormatCount {
		return TextureFormatInvalid, false
	}
	return f, true
}

// IsDepth reports whether the format has a depth component.
func (f TextureFormat) IsDepth() bool {
	return f >= TextureFormatD16Unorm && f <= TextureFormatD32FloatS8Uint
}

// HasStencil reports whether the format has a stencil component.
func (f TextureFormat) HasStencil() bool {
	return f == TextureFormatD24UnormS8Uint || f == TextureFormatD32FloatS8Uint
}

// TextureType selects the texture dimensionality. Values mirror
// SDL_GPUTextureType.
type TextureType uint32

const (
	TextureType2D TextureType = iota
	TextureType2DArray
	TextureType3D
	TextureTypeCube
	TextureTypeCubeArray
)

// TextureUsage is a bit set of ways a texture may be bound. Values mirror
// SDL_GPU_TEXTUREUSAGE_*.
type TextureUsage uint32

const (
	TextureUsageSampler                 TextureUsage = 1 << 0
	TextureUsageColorTarget             TextureUsage = 1 << 1
	TextureUsageDepthStencilTarget      TextureUsage = 1 << 2
	TextureUsageGraphicsStorageRead     TextureUsage = 1 << 3
	TextureUsageComputeStorageRead      TextureUsage = 1 << 4
	TextureUsageComputeStorageWrite     TextureUsage = 1 << 5
	TextureUsageComputeStorageReadWrite TextureUsage = 1 << 6
)

// BufferUsage is a bit set of ways a buffer may be bound. Values mirror
// SDL_GPU_BUFFERUSAGE_*.
type BufferUsage uint32

const (
	BufferUsageVertex              BufferUsage = 1 << 0
	BufferUsageIndex               BufferUsage = 1 << 1
	BufferUsageIndirect            BufferUsage = 1 << 2
	BufferUsageGraphicsStorageRead BufferUsage = 1 << 3
	BufferUsageComputeStorageRead  BufferUsage = 1 << 4
	BufferUsageComputeStorageWrite BufferUsage = 1 << 5
)

// TransferBufferUsage selects the transfer direction. Values mirror
// SDL_GPUTransferBufferUsage.
type TransferBufferUsage uint32

const (
	TransferBufferUpload   TransferBufferUsage = 0
	TransferBufferDownload TransferBufferUsage = 1
)

// PrimitiveType selects how vertices assemble into primitives. Values
// mirror SDL_GPUPrimitiveType.
type PrimitiveType uint32

const (
	PrimitiveTriangleList  PrimitiveType = 0
	PrimitiveTriangleStrip PrimitiveType = 1
	PrimitiveLineList      PrimitiveType = 2
	PrimitiveLineStrip     PrimitiveType = 3
	PrimitivePointList     PrimitiveType = 4
)

// LoadOp selects what happens to target contents at pass begin. Values
// mirror SDL_GPULoadOp.
type LoadOp uint32

const (
	LoadOpLoad     LoadOp = 0
	LoadOpClear    LoadOp = 1
	LoadOpDontCare LoadOp = 2
)

// StoreOp selects what happens to target contents at pass end. Values
// mirror SDL_GPUStoreOp.
type StoreOp uint32

const (
	StoreOpStore           StoreOp = 0
	StoreOpDontCare        StoreOp = 1
	StoreOpResolve         StoreOp = 2
	StoreOpResolveAndStore StoreOp = 3
)

// IndexElementSize selects 16- or 32-bit indices. Values mirror
// SDL_GPUIndexElementSize.
type IndexElementSize uint32

const (
	IndexElementSize16 IndexElementSize = 0
	IndexElementSize32 IndexElementSize = 1
)

// VertexElementFormat describes one vertex attribute's encoding. Values
// mirror SDL_GPUVertexElementFormat; zero is the reserved invalid value.
type VertexElementFormat uint32

const (
	VertexElementInvalid VertexElementFormat = iota
	VertexElementInt
	VertexElementInt2
	VertexElementInt3
	VertexElementInt4
	VertexElementUint
	VertexElementUint2
	VertexElementUint3
	VertexElementUint4
	VertexElementFloat
	VertexElementFloat2
	VertexElementFloat3
	VertexElementFloat4
	VertexElementByte2
	VertexElementByte4
	VertexElementUbyte2
	VertexElementUbyte4
	VertexElementByte2Norm
	VertexElementByte4Norm
	VertexElementUbyte2Norm
	VertexElementUbyte4Norm
	VertexElementShort2
	VertexElementShort4
	VertexElementUshort2
	VertexElementUshort4
	VertexElementShort2Norm
	VertexElementShort4Norm
	VertexElementUshort2Norm
	VertexElementUshort4Norm
	VertexElementHalf2
	VertexElementHalf4

	vertexElementFormatCount // keep last
)

// Native returns the SDL representation of the format.
func (f VertexElementFormat) Native() uint32 { return uint32(f) }

// VertexElementFormatFromNative converts an SDL_GPUVertexElementFormat
// value. ok is false for the reserved invalid value and unknown values.
func VertexElementFormatFromNative(v uint32) (VertexElementFormat, bool) {
	f := VertexElementFormat(v)
	if f == VertexElementInvalid || f >= vertexElementFormatCount {
		return VertexElementInvalid, false
	}
	return f, true
}

// VertexInputRate selects per-vertex or per-instance stepping. Values
// mirror SDL_GPUVertexInputRate.
type VertexInputRate uint32

const (
	VertexInputRateVertex   VertexInputRate = 0
	VertexInputRateInstance VertexInputRate = 1
)

// FillMode selects polygon rasterization. Values mirror SDL_GPUFillMode.
type FillMode uint32

const (
	FillModeFill FillMode = 0
	FillModeLine FillMode = 1
)

// CullMode selects which faces are discarded. Values mirror
// SDL_GPUCullMode.
type CullMode uint32

const (
	CullModeNone  CullMode = 0
	CullModeFront CullMode = 1
	CullModeBack  CullMode = 2
)

// FrontFace selects the winding considered front-facing. Values mirror
// SDL_GPUFrontFace.
type FrontFace uint32

const (
	FrontFaceCounterClockwise FrontFace = 0
	FrontFaceClockwise        FrontFace = 1
)

// CompareOp is a depth/stencil comparison. Values mirror SDL_GPUCompareOp;
// zero is the reserved invalid value.
type CompareOp uint32

const (
	CompareOpInvalid CompareOp = iota
	CompareOpNever
	CompareOpLess
	CompareOpEqual
	CompareOpLessOrEqual
	CompareOpGreater
	CompareOpNotEqual
	CompareOpGreaterOrEqual
	CompareOpAlways

	compareOpCount // keep last
)

// Native returns the SDL representation of the comparison.
func (op CompareOp) Native() uint32 { return uint32(op) }

// CompareOpFromNative converts an SDL_GPUCompareOp value. ok is false for
// the reserved invalid value and unknown values.
func CompareOpFromNative(v uint32) (CompareOp, bool) {
	op := CompareOp(v)
	if op == CompareOpInvalid || op >= compareOpCount {
		return CompareOpInvalid, false
	}
	return op, true
}

// StencilOp is a stencil buffer update operation. Values mirror
// SDL_GPUStencilOp; zero is the reserved invalid value.
type StencilOp uint32

const (
	StencilOpInvalid StencilOp = iota
	StencilOpKeep
	StencilOpZero
	StencilOpReplace
	StencilOpIncrementAndClamp
	StencilOpDecrementAndClamp
	StencilOpInvert
	StencilOpIncrementAndWrap
	StencilOpDecrementAndWrap
)

// BlendFactor scales blend inputs. Values mirror SDL_GPUBlendFactor; zero
// is the reserved invalid value.
type BlendFactor uint32

const (
	BlendFactorInvalid BlendFactor = iota
	BlendFactorZero
	BlendFactorOne
	BlendFactorSrcColor
	BlendFactorOneMinusSrcColor
	BlendFactorDstColor
	BlendFactorOneMinusDstColor
	BlendFactorSrcAlpha
	BlendFactorOneMinusSrcAlpha
	BlendFactorDstAlpha
	BlendFactorOneMinusDstAlpha
	BlendFactorConstantColor
	BlendFactorOneMinusConstantColor
	BlendFactorSrcAlphaSaturate

	blendFactorCount // keep last
)

// Native returns the SDL representation of the factor.
func (f BlendFactor) Native() uint32 { return uint32(f) }

// BlendFactorFromNative converts an SDL_GPUBlendFactor value. ok is false
// for the reserved invalid value and unknown values.
func BlendFactorFromNative(v uint32) (BlendFactor, bool) {
	f := BlendFactor(v)
	if f == BlendFactorInvalid || f >= blendFactorCount {
		return BlendFactorInvalid, false
	}
	return f, true
}

// BlendOp combines scaled blend inputs. Values mirror SDL_GPUBlendOp; zero
// is the reserved invalid value.
type BlendOp uint32

const (
	BlendOpInvalid BlendOp = iota
	BlendOpAdd
	BlendOpSubtract
	BlendOpReverseSubtract
	BlendOpMin
	BlendOpMax

	blendOpCount // keep last
)

// Native returns the SDL representation of the operation.
func (op BlendOp) Native() uint32 { return uint32(op) }

// BlendOpFromNative converts an SDL_GPUBlendOp value. ok is false for the
// reserved invalid value and unknown values.
func BlendOpFromNative(v uint32) (BlendOp, bool) {
	op := BlendOp(v)
	if op == BlendOpInvalid || op >= blendOpCount {
		return BlendOpInvalid, false
	}
	return op, true
}

// ColorComponentFlags masks which channels a pipeline writes. Values
// mirror SDL_GPUColorComponentFlags.
type ColorComponentFlags uint8

const (
	ColorComponentR ColorComponentFlags = 1 << 0
	ColorComponentG ColorComponentFlags = 1 << 1
	ColorComponentB ColorComponentFlags = 1 << 2
	ColorComponentA ColorComponentFlags = 1 << 3

	ColorComponentAll = ColorComponentR | ColorComponentG | ColorComponentB | ColorComponentA
)

// Filter selects texel sampling interpolation. Values mirror
// SDL_GPUFilter.
type Filter uint32

const (
	FilterNearest Filter = 0
	FilterLinear  Filter = 1
)

// SamplerMipmapMode selects mip level interpolation. Values mirror
// SDL_GPUSamplerMipmapMode.
type SamplerMipmapMode uint32

const (
	SamplerMipmapNearest SamplerMipmapMode = 0
	SamplerMipmapLinear  SamplerMipmapMode = 1
)

// SamplerAddressMode selects texture coordinate wrapping. Values mirror
// SDL_GPUSamplerAddressMode.
type SamplerAddressMode uint32

const (
	SamplerAddressRepeat         SamplerAddressMode = 0
	SamplerAddressMirroredRepeat SamplerAddressMode = 1
	SamplerAddressClampToEdge    SamplerAddressMode = 2
)

// SampleCount selects multisampling. Values mirror SDL_GPUSampleCount.
type SampleCount uint32

const (
	SampleCount1 SampleCount = 0
	SampleCount2 SampleCount = 1
	SampleCount4 SampleCount = 2
	SampleCount8 SampleCount = 3
)

// PresentMode selects swapchain pacing. Values mirror SDL_GPUPresentMode.
type PresentMode uint32

const (
	PresentModeVSync     PresentMode = 0
	PresentModeImmediate PresentMode = 1
	PresentModeMailbox   PresentMode = 2
)

// SwapchainComposition selects swapchain color space. Values mirror
// SDL_GPUSwapchainComposition.
type SwapchainComposition uint32

const (
	SwapchainCompositionSDR               SwapchainComposition = 0
	SwapchainCompositionSDRLinear         SwapchainComposition = 1
	SwapchainCompositionHDRExtendedLinear SwapchainComposition = 2
	SwapchainCompositionHDR10ST2084       SwapchainComposition = 3
)
