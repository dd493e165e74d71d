package shadercross

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"
)

func TestGenerateGo(t *testing.T) {
	code := asm(
		append([]uint32{opEntryPoint, executionModelFragment, 1}, mainName...),
		[]uint32{opTypeImage, 10, 90, 1, 0, 0, 0, 1, 0},
		[]uint32{opTypeSampledImage, 11, 10},
		[]uint32{opTypePointer, 12, storageClassUniformConstant, 11},
		[]uint32{opVariable, 12, 13, storageClassUniformConstant},
	)
	refl, err := Reflect(code)
	if err != nil {
		t.Fatalf("Reflect() error = %v", err)
	}

	src, err := GenerateGo("shaders", "quadFrag", Result{SPIRV: code, Reflection: refl})
	if err != nil {
		t.Fatalf("GenerateGo() error = %v", err)
	}

	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "quadFrag.go", src, 0); err != nil {
		t.Fatalf("generated source does not parse: %v", err)
	}

	for _, want := range []string{
		"// Code generated by shadercross; DO NOT EDIT.",
		"package shaders",
		"var quadFragCode = []byte{",
		"var quadFragInfo = gpu.ShaderCreateInfo{",
		"Stage:              gpu.ShaderStageFragment",
		"NumSamplers:        1",
		`Entrypoint:         "main"`,
	} {
		if !strings.Contains(string(src), want) {
			t.Errorf("generated source missing %q", want)
		}
	}
}

func TestGenerateGoRejects(t *testing.T) {
	frag := Reflection{Stage: StageFragment}
	tests := []struct {
		name string
		pkg  string
		varn string
		refl Reflection
	}{
		{"empty package", "", "v", frag},
		{"empty name", "p", "", frag},
		{"compute stage", "p", "v", Reflection{Stage: StageCompute}},
		{"unknown stage", "p", "v", Reflection{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateGo(tt.pkg, tt.varn, Result{SPIRV: []byte{1}, Reflection: tt.refl})
			if err == nil {
				t.Error("GenerateGo() error = nil, want error")
			}
		})
	}
}
