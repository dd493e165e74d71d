// Command shadercross compiles shader source to SPIR-V or a backend's
// native shading language and prints the reflected resource bindings.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/gosdl/sdl3/shadercross"
)

func main() {
	var (
		output   = flag.String("o", "", "output file (default: stdout for json, input name with new extension otherwise)")
		target   = flag.String("target", "spirv", "output format: spirv, msl, hlsl, glsl, dxil, json, go")
		pkg      = flag.String("pkg", "shaders", "package name for -target go")
		name     = flag.String("name", "shader", "variable name prefix for -target go")
		stage    = flag.String("stage", "", "shader stage for hlsl/glsl input: vertex, fragment, compute")
		entry    = flag.String("entry", "main", "entry point name for hlsl input")
		optimize = flag.Bool("O", false, "run spirv-opt on the intermediate SPIR-V")
		debug    = flag.Bool("g", false, "embed debug info where the frontend supports it")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: shadercross [flags] <shader file>")
	}
	input := flag.Arg(0)

	source, err := os.ReadFile(input)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	kind := shadercross.DetectKind(input)
	if kind == shadercross.KindUnknown {
		log.Fatalf("Cannot determine shader kind from %q; use .spv, .hlsl, .glsl, or .wgsl", input)
	}

	opts := shadercross.Options{
		Stage:      parseStage(*stage),
		Entrypoint: *entry,
		Optimize:   *optimize,
		Debug:      *debug,
	}

	res, err := shadercross.Compile(context.Background(), source, kind, opts)
	if err != nil {
		log.Fatalf("Compile failed: %v", err)
	}

	switch *target {
	case "json":
		writeJSON(*output, res.Reflection)
	case "go":
		src, err := shadercross.GenerateGo(*pkg, *name, res)
		if err != nil {
			log.Fatalf("Failed to generate Go source: %v", err)
		}
		writeOutput(*output, input, ".go", src)
	case "spirv":
		writeOutput(*output, input, ".spv", res.SPIRV)
	case "dxil":
		if kind != shadercross.KindHLSL {
			log.Fatal("Target dxil needs HLSL input")
		}
		dxil, err := shadercross.CompileDXIL(context.Background(), source, opts)
		if err != nil {
			log.Fatalf("DXIL compile failed: %v", err)
		}
		writeOutput(*output, input, ".dxil", dxil)
	case "msl":
		transpile(*output, input, ".metal", res.SPIRV, shadercross.TargetMSL)
	case "hlsl":
		transpile(*output, input, ".hlsl", res.SPIRV, shadercross.TargetHLSL)
	case "glsl":
		transpile(*output, input, ".glsl", res.SPIRV, shadercross.TargetGLSL)
	default:
		log.Fatalf("Unknown target %q", *target)
	}

	log.Printf("%s: stage=%s samplers=%d storage_textures=%d storage_buffers=%d uniform_buffers=%d",
		input, res.Reflection.Stage,
		res.Reflection.NumSamplers, res.Reflection.NumStorageTextures,
		res.Reflection.NumStorageBuffers, res.Reflection.NumUniformBuffers)
}

func parseStage(s string) shadercross.Stage {
	switch s {
	case "vertex":
		return shadercross.StageVertex
	case "fragment":
		return shadercross.StageFragment
	case "compute":
		return shadercross.StageCompute
	case "":
		return shadercross.StageUnknown
	default:
		log.Fatalf("Unknown stage %q", s)
		return shadercross.StageUnknown
	}
}

func transpile(output, input, ext string, spirv []byte, target shadercross.Target) {
	translated, err := shadercross.Transpile(context.Background(), spirv, target)
	if err != nil {
		log.Fatalf("Transpile failed: %v", err)
	}
	writeOutput(output, input, ext, translated)
}

func writeOutput(output, input, ext string, data []byte) {
	if output == "" {
		output = replaceExt(input, ext)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

func writeJSON(output string, refl shadercross.Reflection) {
	data, err := json.MarshalIndent(refl, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode reflection: %v", err)
	}
	data = append(data, '\n')
	if output == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

func replaceExt(path, ext string) string {
	for i := len(path) - 1; i >= 0 && path[i] != '/'; i-- {
		if path[i] == '.' {
			return path[:i] + ext
		}
	}
	return path + ext
}
