package shadercross

import (
	"fmt"
	"go/format"
	"strings"
)

// GenerateGo renders a compiled shader as Go source: the bytecode as a
// byte slice plus a create-info literal carrying the reflected resource
// counts, ready to pass to the GPU package at runtime.
func GenerateGo(pkg, name string, res Result) ([]byte, error) {
	if pkg == "" || name == "" {
		return nil, fmt.Errorf("shadercross: package and variable name required")
	}

	var stage string
	switch res.Reflection.Stage {
	case StageVertex:
		stage = "gpu.ShaderStageVertex"
	case StageFragment:
		stage = "gpu.ShaderStageFragment"
	default:
		return nil, fmt.Errorf("shadercross: stage %s has no create-info mapping", res.Reflection.Stage)
	}
	entry := res.Reflection.Entrypoint
	if entry == "" {
		entry = "main"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by shadercross; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("import \"github.com/gosdl/sdl3/gpu\"\n\n")

	fmt.Fprintf(&b, "var %sCode = []byte{", name)
	for i, c := range res.SPIRV {
		if i%16 == 0 {
			b.WriteString("\n\t")
		}
		fmt.Fprintf(&b, "0x%02x, ", c)
	}
	b.WriteString("\n}\n\n")

	fmt.Fprintf(&b, "var %sInfo = gpu.ShaderCreateInfo{\n", name)
	fmt.Fprintf(&b, "\tCode:               %sCode,\n", name)
	fmt.Fprintf(&b, "\tEntrypoint:         %q,\n", entry)
	b.WriteString("\tFormat:             gpu.ShaderFormatSPIRV,\n")
	fmt.Fprintf(&b, "\tStage:              %s,\n", stage)
	fmt.Fprintf(&b, "\tNumSamplers:        %d,\n", res.Reflection.NumSamplers)
	fmt.Fprintf(&b, "\tNumStorageTextures: %d,\n", res.Reflection.NumStorageTextures)
	fmt.Fprintf(&b, "\tNumStorageBuffers:  %d,\n", res.Reflection.NumStorageBuffers)
	fmt.Fprintf(&b, "\tNumUniformBuffers:  %d,\n", res.Reflection.NumUniformBuffers)
	b.WriteString("}\n")

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("shadercross: format: %w", err)
	}
	return src, nil
}
