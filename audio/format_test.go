package audio

import "testing"

func TestFormatRoundTrip(t *testing.T) {
	formats := []Format{
		FormatU8, FormatS8, FormatS16LE, FormatS16BE,
		FormatS32LE, FormatS32BE, FormatF32LE, FormatF32BE,
	}
	for _, f := range formats {
		t.Run(f.String(), func(t *testing.T) {
			if got := FormatFromNative(f.Native()); got != f {
				t.Errorf("round trip = %#x, want %#x", uint16(got), uint16(f))
			}
		})
	}
	// The reserved zero value maps to the unknown format both ways.
	if FormatFromNative(0) != FormatUnknown || FormatUnknown.Native() != 0 {
		t.Error("reserved zero value must round trip through FormatUnknown")
	}
}

func TestFormatProperties(t *testing.T) {
	tests := []struct {
		f                  Format
		bits               int
		float, big, signed bool
	}{
		{FormatU8, 8, false, false, false},
		{FormatS8, 8, false, false, true},
		{FormatS16LE, 16, false, false, true},
		{FormatS16BE, 16, false, true, true},
		{FormatS32LE, 32, false, false, true},
		{FormatF32LE, 32, true, false, true},
		{FormatF32BE, 32, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.f.String(), func(t *testing.T) {
			if got := tt.f.BitSize(); got != tt.bits {
				t.Errorf("BitSize() = %d, want %d", got, tt.bits)
			}
			if got := tt.f.IsFloat(); got != tt.float {
				t.Errorf("IsFloat() = %v, want %v", got, tt.float)
			}
			if got := tt.f.IsBigEndian(); got != tt.big {
				t.Errorf("IsBigEndian() = %v, want %v", got, tt.big)
			}
			if got := tt.f.IsSigned(); got != tt.signed {
				t.Errorf("IsSigned() = %v, want %v", got, tt.signed)
			}
		})
	}
}

func TestSpecFrameSize(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want int
	}{
		{"stereo f32", Spec{Format: FormatF32LE, Channels: 2, Freq: 48000}, 8},
		{"mono s16", Spec{Format: FormatS16LE, Channels: 1, Freq: 44100}, 2},
		{"5.1 s32", Spec{Format: FormatS32LE, Channels: 6, Freq: 48000}, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.FrameSize(); got != tt.want {
				t.Errorf("FrameSize() = %d, want %d", got, tt.want)
			}
		})
	}
}
