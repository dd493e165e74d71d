// Command bindgen generates binding source from a YAML description of
// a native API surface.
//
// The generated file carries only the mechanical wrappers; package
// documentation and anything the generator cannot express live in a
// hand-written doc.go next to it.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gosdl/sdl3/internal/gen"
)

func main() {
	var (
		output = flag.String("o", "", "output file (default: stdout)")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: bindgen [flags] <description.yaml>")
	}

	api, err := gen.Load(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to load description: %v", err)
	}

	src, err := api.Generate()
	if err != nil {
		log.Fatalf("Failed to generate: %v", err)
	}

	if *output == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*output, src, 0o644); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	log.Printf("Generated %s from %s", *output, flag.Arg(0))
}
