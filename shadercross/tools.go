package shadercross

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Tool binary names, overridable for environments that install them
// under different names or outside PATH.
var (
	DXCPath        = "dxc"
	GLSLCPath      = "glslc"
	SPIRVOptPath   = "spirv-opt"
	SPIRVCrossPath = "spirv-cross"
)

// ErrToolNotFound wraps exec lookup failures so callers can distinguish
// a missing compiler from a compile error.
var ErrToolNotFound = errors.New("shadercross: tool not found")

// runTool executes one external compiler, feeding it input through a
// temp file and reading its output file back. Stderr is captured into
// the returned error on failure.
func runTool(ctx context.Context, name string, inExt, outExt string, input []byte, argv func(in, out string) []string) ([]byte, error) {
	if _, err := exec.LookPath(name); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	dir, err := os.MkdirTemp("", "shadercross-")
	if err != nil {
		return nil, fmt.Errorf("shadercross: %w", err)
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "input"+inExt)
	out := filepath.Join(dir, "output"+outExt)
	if err := os.WriteFile(in, input, 0o600); err != nil {
		return nil, fmt.Errorf("shadercross: %w", err)
	}

	cmd := exec.CommandContext(ctx, name, argv(in, out)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := bytes.TrimSpace(stderr.Bytes())
		if len(msg) > 0 {
			return nil, fmt.Errorf("shadercross: %s: %s", name, msg)
		}
		return nil, fmt.Errorf("shadercross: %s: %w", name, err)
	}

	output, err := os.ReadFile(out)
	if err != nil {
		return nil, fmt.Errorf("shadercross: %w", err)
	}
	return output, nil
}

// stageProfile maps a stage to dxc's shader model profile.
func stageProfile(s Stage) (string, error) {
	switch s {
	case StageVertex:
		return "vs_6_0", nil
	case StageFragment:
		return "ps_6_0", nil
	case StageCompute:
		return "cs_6_0", nil
	default:
		return "", fmt.Errorf("shadercross: hlsl frontend needs an explicit stage")
	}
}

// stageGLSL maps a stage to glslc's -fshader-stage value.
func stageGLSL(s Stage) (string, error) {
	switch s {
	case StageVertex:
		return "vertex", nil
	case StageFragment:
		return "fragment", nil
	case StageCompute:
		return "compute", nil
	default:
		return "", fmt.Errorf("shadercross: glsl frontend needs an explicit stage")
	}
}

func compileHLSL(ctx context.Context, source []byte, opts Options) ([]byte, error) {
	profile, err := stageProfile(opts.Stage)
	if err != nil {
		return nil, err
	}
	entry := opts.Entrypoint
	if entry == "" {
		entry = "main"
	}
	return runTool(ctx, DXCPath, ".hlsl", ".spv", source, func(in, out string) []string {
		argv := []string{"-spirv", "-T", profile, "-E", entry}
		if opts.Debug {
			argv = append(argv, "-Zi")
		}
		for _, d := range opts.Defines {
			argv = append(argv, "-D", d)
		}
		for _, dir := range opts.IncludeDirs {
			argv = append(argv, "-I", dir)
		}
		return append(argv, "-Fo", out, in)
	})
}

func compileGLSL(ctx context.Context, source []byte, opts Options) ([]byte, error) {
	stage, err := stageGLSL(opts.Stage)
	if err != nil {
		return nil, err
	}
	return runTool(ctx, GLSLCPath, ".glsl", ".spv", source, func(in, out string) []string {
		argv := []string{"-fshader-stage=" + stage}
		if opts.Debug {
			argv = append(argv, "-g")
		}
		for _, d := range opts.Defines {
			argv = append(argv, "-D"+d)
		}
		for _, dir := range opts.IncludeDirs {
			argv = append(argv, "-I", dir)
		}
		return append(argv, "-o", out, in)
	})
}

// CompileDXIL compiles HLSL source straight to DXIL via dxc. DXIL has
// no SPIR-V intermediate, so this path exists alongside Compile for the
// D3D12 backend.
func CompileDXIL(ctx context.Context, source []byte, opts Options) ([]byte, error) {
	profile, err := stageProfile(opts.Stage)
	if err != nil {
		return nil, err
	}
	entry := opts.Entrypoint
	if entry == "" {
		entry = "main"
	}
	return runTool(ctx, DXCPath, ".hlsl", ".dxil", source, func(in, out string) []string {
		argv := []string{"-T", profile, "-E", entry}
		if opts.Debug {
			argv = append(argv, "-Zi")
		}
		for _, d := range opts.Defines {
			argv = append(argv, "-D", d)
		}
		for _, dir := range opts.IncludeDirs {
			argv = append(argv, "-I", dir)
		}
		return append(argv, "-Fo", out, in)
	})
}

func optimizeSPIRV(ctx context.Context, spirv []byte) ([]byte, error) {
	return runTool(ctx, SPIRVOptPath, ".spv", ".spv", spirv, func(in, out string) []string {
		return []string{"-O", "-o", out, in}
	})
}

func crossCompile(ctx context.Context, spirv []byte, target Target) ([]byte, error) {
	var ext string
	switch target {
	case TargetMSL:
		ext = ".metal"
	case TargetHLSL:
		ext = ".hlsl"
	case TargetGLSL:
		ext = ".glsl"
	default:
		return nil, fmt.Errorf("shadercross: unknown target %d", target)
	}
	return runTool(ctx, SPIRVCrossPath, ".spv", ext, spirv, func(in, out string) []string {
		argv := []string{in, "--output", out}
		switch target {
		case TargetMSL:
			argv = append(argv, "--msl")
		case TargetHLSL:
			argv = append(argv, "--hlsl", "--shader-model", "60")
		}
		return argv
	})
}
