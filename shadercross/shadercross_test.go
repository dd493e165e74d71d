package shadercross

import (
	"context"
	"testing"
)

func TestDetectKind(t *testing.T) {
	tests := []struct {
		path string
		want SourceKind
	}{
		{"quad.spv", KindSPIRV},
		{"quad.hlsl", KindHLSL},
		{"quad.glsl", KindGLSL},
		{"quad.vert", KindGLSL},
		{"quad.frag", KindGLSL},
		{"quad.comp", KindGLSL},
		{"quad.wgsl", KindWGSL},
		{"QUAD.WGSL", KindWGSL},
		{"shaders/quad.hlsl", KindHLSL},
		{"quad.txt", KindUnknown},
		{"quad", KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DetectKind(tt.path); got != tt.want {
				t.Errorf("DetectKind(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestSourceKindString(t *testing.T) {
	tests := []struct {
		kind SourceKind
		want string
	}{
		{KindSPIRV, "spirv"},
		{KindHLSL, "hlsl"},
		{KindGLSL, "glsl"},
		{KindWGSL, "wgsl"},
		{KindUnknown, "unknown"},
		{SourceKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("SourceKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestCompileWGSL(t *testing.T) {
	const src = `
@fragment
fn main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 0.0, 0.0, 1.0);
}
`
	res, err := Compile(context.Background(), []byte(src), KindWGSL, Options{})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if len(res.SPIRV) == 0 {
		t.Fatal("Compile() returned empty SPIR-V")
	}
	if res.Reflection.Stage != StageFragment {
		t.Errorf("Stage = %v, want %v", res.Reflection.Stage, StageFragment)
	}
}

func TestCompileSPIRVPassthrough(t *testing.T) {
	code := asm(
		append([]uint32{opEntryPoint, executionModelCompute, 1}, mainName...),
	)
	res, err := Compile(context.Background(), code, KindSPIRV, Options{})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if len(res.SPIRV) != len(code) {
		t.Errorf("SPIRV length = %d, want %d", len(res.SPIRV), len(code))
	}
	if res.Reflection.Stage != StageCompute {
		t.Errorf("Stage = %v, want %v", res.Reflection.Stage, StageCompute)
	}
}

func TestCompileUnknownKind(t *testing.T) {
	if _, err := Compile(context.Background(), []byte("x"), KindUnknown, Options{}); err == nil {
		t.Error("Compile() error = nil, want error")
	}
}

func TestHLSLRequiresStage(t *testing.T) {
	if _, err := compileHLSL(context.Background(), []byte("x"), Options{}); err == nil {
		t.Error("compileHLSL() error = nil, want error for missing stage")
	}
	if _, err := compileGLSL(context.Background(), []byte("x"), Options{}); err == nil {
		t.Error("compileGLSL() error = nil, want error for missing stage")
	}
}
