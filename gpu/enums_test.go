package gpu

import "testing"

func TestTextureFormatRoundTrip(t *testing.T) {
	for f := TextureFormatA8Unorm; f < textureFormatCount; f++ {
		got, ok := TextureFormatFromNative(f.Native())
		if !ok || got != f {
			t.Errorf("format %d: round trip = (%d, %v), want (%d, true)", f, got, ok, f)
		}
	}
}

func TestTextureFormatInvalidIsAbsent(t *testing.T) {
	// The reserved invalid value maps to "absent" on the way in and back
	// to the sentinel on the way out.
	got, ok := TextureFormatFromNative(0)
	if ok {
		t.Error("FromNative(0) reported a valid format")
	}
	if got.Native() != 0 {
		t.Errorf("invalid format maps back to %d, want 0", got.Native())
	}
	if _, ok := TextureFormatFromNative(uint32(textureFormatCount) + 100); ok {
		t.Error("out-of-range value reported valid")
	}
}

func TestTextureFormatDepthQueries(t *testing.T) {
	tests := []struct {
		f           TextureFormat
		depth, sten bool
	}{
		{TextureFormatR8G8B8A8Unorm, false, false},
		{TextureFormatD16Unorm, true, false},
		{TextureFormatD32Float, true, false},
		{TextureFormatD24UnormS8Uint, true, true},
		{TextureFormatD32FloatS8Uint, true, true},
	}
	for _, tt := range tests {
		if got := tt.f.IsDepth(); got != tt.depth {
			t.Errorf("format %d IsDepth() = %v, want %v", tt.f, got, tt.depth)
		}
		if got := tt.f.HasStencil(); got != tt.sten {
			t.Errorf("format %d HasStencil() = %v, want %v", tt.f, got, tt.sten)
		}
	}
}

func TestVertexElementFormatRoundTrip(t *testing.T) {
	for f := VertexElementInt; f < vertexElementFormatCount; f++ {
		got, ok := VertexElementFormatFromNative(f.Native())
		if !ok || got != f {
			t.Errorf("format %d: round trip = (%d, %v)", f, got, ok)
		}
	}
	if _, ok := VertexElementFormatFromNative(0); ok {
		t.Error("reserved invalid value reported valid")
	}
}

func TestCompareOpRoundTrip(t *testing.T) {
	for op := CompareOpNever; op < compareOpCount; op++ {
		got, ok := CompareOpFromNative(op.Native())
		if !ok || got != op {
			t.Errorf("op %d: round trip = (%d, %v)", op, got, ok)
		}
	}
	if _, ok := CompareOpFromNative(0); ok {
		t.Error("reserved invalid value reported valid")
	}
}

func TestBlendRoundTrips(t *testing.T) {
	for f := BlendFactorZero; f < blendFactorCount; f++ {
		got, ok := BlendFactorFromNative(f.Native())
		if !ok || got != f {
			t.Errorf("blend factor %d: round trip = (%d, %v)", f, got, ok)
		}
	}
	for op := BlendOpAdd; op < blendOpCount; op++ {
		got, ok := BlendOpFromNative(op.Native())
		if !ok || got != op {
			t.Errorf("blend op %d: round trip = (%d, %v)", op, got, ok)
		}
	}
	if _, ok := BlendFactorFromNative(0); ok {
		t.Error("reserved invalid blend factor reported valid")
	}
	if _, ok := BlendOpFromNative(uint32(blendOpCount)); ok {
		t.Error("out-of-range blend op reported valid")
	}
}

func TestShaderFormatFlags(t *testing.T) {
	combined := ShaderFormatSPIRV | ShaderFormatMSL
	if got := ShaderFormatFromNative(combined.Native()); got != combined {
		t.Errorf("flag round trip = %#x, want %#x", got, combined)
	}
	if combined&ShaderFormatSPIRV == 0 {
		t.Error("flag test failed")
	}
	if got := ShaderFormatSPIRV.String(); got != "spirv" {
		t.Errorf("String() = %q", got)
	}
	if got := combined.String(); got != "mixed" {
		t.Errorf("combined String() = %q", got)
	}
}

func TestColorComponentAll(t *testing.T) {
	if ColorComponentAll != 0xF {
		t.Errorf("ColorComponentAll = %#x, want 0xF", ColorComponentAll)
	}
}
