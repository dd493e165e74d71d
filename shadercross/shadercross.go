// Package shadercross compiles shader source into SPIR-V and the native
// bytecode formats GPU backends consume, and reflects the resource
// bindings a compiled shader declares.
//
// WGSL compiles in-process through naga. HLSL and GLSL shell out to dxc
// and glslc; optimization and backend translation shell out to spirv-opt
// and spirv-cross. Reflection is parsed directly from the SPIR-V binary
// with no external tool.
package shadercross

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gogpu/naga"
)

// SourceKind identifies the input language of a shader source.
type SourceKind int

const (
	KindUnknown SourceKind = iota
	KindSPIRV
	KindHLSL
	KindGLSL
	KindWGSL
)

func (k SourceKind) String() string {
	switch k {
	case KindSPIRV:
		return "spirv"
	case KindHLSL:
		return "hlsl"
	case KindGLSL:
		return "glsl"
	case KindWGSL:
		return "wgsl"
	default:
		return "unknown"
	}
}

// DetectKind guesses the source kind from a file name's extension.
// GLSL stage extensions (.vert, .frag, .comp) are recognized alongside
// the generic ones.
func DetectKind(path string) SourceKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".spv":
		return KindSPIRV
	case ".hlsl":
		return KindHLSL
	case ".glsl", ".vert", ".frag", ".comp":
		return KindGLSL
	case ".wgsl":
		return KindWGSL
	default:
		return KindUnknown
	}
}

// Options control a Compile run. The zero value compiles without
// optimization, with "main" as the entrypoint where the frontend needs
// one.
type Options struct {
	// Stage tells the HLSL and GLSL frontends which pipeline stage to
	// compile. Required for those kinds; ignored for SPIR-V and WGSL,
	// where the module itself carries the stage.
	Stage Stage
	// Entrypoint names the entry function for the HLSL frontend.
	// Defaults to "main".
	Entrypoint string
	// Defines are passed through to the frontend preprocessor as
	// NAME=VALUE pairs.
	Defines []string
	// IncludeDirs extend the frontend's include search path.
	IncludeDirs []string
	// Optimize runs spirv-opt with -O on the intermediate SPIR-V.
	Optimize bool
	// Debug asks the frontend to embed debug info where supported.
	Debug bool
}

// Result is the output of one Compile run: the intermediate SPIR-V and
// the reflection extracted from it.
type Result struct {
	SPIRV      []byte
	Reflection Reflection
}

// Compile translates shader source into SPIR-V, optionally optimizes
// it, and reflects its resource bindings. SPIR-V input skips the
// frontend and goes straight to optimization and reflection.
func Compile(ctx context.Context, source []byte, kind SourceKind, opts Options) (Result, error) {
	var (
		spirv []byte
		err   error
	)
	switch kind {
	case KindSPIRV:
		spirv = source
	case KindWGSL:
		spirv, err = naga.Compile(string(source))
		if err != nil {
			return Result{}, fmt.Errorf("shadercross: wgsl frontend: %w", err)
		}
	case KindHLSL:
		spirv, err = compileHLSL(ctx, source, opts)
		if err != nil {
			return Result{}, err
		}
	case KindGLSL:
		spirv, err = compileGLSL(ctx, source, opts)
		if err != nil {
			return Result{}, err
		}
	default:
		return Result{}, fmt.Errorf("shadercross: unknown source kind %d", kind)
	}

	if opts.Optimize {
		spirv, err = optimizeSPIRV(ctx, spirv)
		if err != nil {
			return Result{}, err
		}
	}

	refl, err := Reflect(spirv)
	if err != nil {
		return Result{}, err
	}
	return Result{SPIRV: spirv, Reflection: refl}, nil
}

// Target selects the output shading language of a Transpile run.
type Target int

const (
	TargetMSL Target = iota
	TargetHLSL
	TargetGLSL
)

func (t Target) String() string {
	switch t {
	case TargetMSL:
		return "msl"
	case TargetHLSL:
		return "hlsl"
	case TargetGLSL:
		return "glsl"
	default:
		return "unknown"
	}
}

// Transpile translates SPIR-V into a backend's native shading language
// source via spirv-cross.
func Transpile(ctx context.Context, spirv []byte, target Target) ([]byte, error) {
	return crossCompile(ctx, spirv, target)
}
