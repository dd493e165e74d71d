package gen

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadHaptic(t *testing.T) {
	api, err := Load(filepath.Join("testdata", "haptic.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if api.Package != "haptic" {
		t.Errorf("Package = %q, want %q", api.Package, "haptic")
	}
	if len(api.Handles) != 1 {
		t.Fatalf("len(Handles) = %d, want 1", len(api.Handles))
	}
	if got := api.goName(api.Handles[0].Name, api.Handles[0].Native); got != "Device" {
		t.Errorf("handle name = %q, want %q", got, "Device")
	}
	if len(api.Enums) != 2 {
		t.Errorf("len(Enums) = %d, want 2", len(api.Enums))
	}
	if len(api.Functions) != 12 {
		t.Errorf("len(Functions) = %d, want 12", len(api.Functions))
	}
}

func TestGenerateHaptic(t *testing.T) {
	api, err := Load(filepath.Join("testdata", "haptic.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	src, err := api.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// The output must be parseable Go.
	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "haptic.go", src, 0); err != nil {
		t.Fatalf("generated source does not parse: %v", err)
	}

	for _, want := range []string{
		"// Code generated by bindgen; DO NOT EDIT.",
		"package haptic",
		"type Device struct {",
		"type DirectionType uint8",
		"func DirectionTypeFromNative(v uint8) (DirectionType, bool)",
		"type Features uint32",
		"func Open(instanceID uint32) (*Device, error)",
		"func (h *Device) Close()",
		"func (h *Device) Name() string",
		"func (h *Device) MaxEffects() (int, error)",
		"fail.CheckCode",
		"func (h *Device) SetGain(gain int) error",
		"fail.CheckBool",
		"func (h *Device) PlayRumble(strength float32, lengthMS uint32) error",
		"fail.InvalidParam",
	} {
		if !strings.Contains(string(src), want) {
			t.Errorf("generated source missing %q", want)
		}
	}
}

func TestGoName(t *testing.T) {
	api := &API{TrimPrefix: "SDL_"}
	tests := []struct {
		override string
		native   string
		want     string
	}{
		{"", "SDL_OpenHaptic", "OpenHaptic"},
		{"", "SDL_open_haptic", "OpenHaptic"},
		{"Open", "SDL_OpenHaptic", "Open"},
		{"", "NoPrefix", "NoPrefix"},
	}
	for _, tt := range tests {
		if got := api.goName(tt.override, tt.native); got != tt.want {
			t.Errorf("goName(%q, %q) = %q, want %q", tt.override, tt.native, got, tt.want)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		api  API
	}{
		{"missing package", API{Include: "<SDL3/SDL.h>"}},
		{"missing include", API{Package: "x"}},
		{
			"enum without values",
			API{Package: "x", Include: "<SDL3/SDL.h>", Enums: []Enum{{Native: "SDL_X"}}},
		},
		{
			"unknown sentinel",
			API{Package: "x", Include: "<SDL3/SDL.h>", Functions: []Function{{Native: "SDL_X", Sentinel: "maybe"}}},
		},
		{
			"null sentinel without handle return",
			API{Package: "x", Include: "<SDL3/SDL.h>", Functions: []Function{{Native: "SDL_X", Sentinel: "null", Ret: "int"}}},
		},
		{
			"negative sentinel without return",
			API{Package: "x", Include: "<SDL3/SDL.h>", Functions: []Function{{Native: "SDL_X", Sentinel: "negative"}}},
		},
		{
			"unknown receiver",
			API{Package: "x", Include: "<SDL3/SDL.h>", Functions: []Function{{Native: "SDL_X", Recv: "Ghost"}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.api.validate(); err == nil {
				t.Error("validate() error = nil, want error")
			}
		})
	}
}

func TestGenerateRejectsUnknownArgType(t *testing.T) {
	api := &API{
		Package: "x",
		Include: "<SDL3/SDL.h>",
		Functions: []Function{{
			Native: "SDL_X",
			Args:   []Param{{Name: "p", Type: "chan int"}},
		}},
	}
	if _, err := api.Generate(); err == nil {
		t.Error("Generate() error = nil, want error")
	}
}
