package audio

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestSineToneF32(t *testing.T) {
	spec := Spec{Format: FormatF32, Channels: 2, Freq: 48000}
	buf, err := SineTone(spec, 440, 0.5, 100)
	if err != nil {
		t.Fatalf("SineTone() error = %v", err)
	}
	if want := 100 * 2 * 4; len(buf) != want {
		t.Fatalf("len = %d, want %d", len(buf), want)
	}

	first := math.Float32frombits(binary.LittleEndian.Uint32(buf))
	if first != 0 {
		t.Errorf("first sample = %v, want 0", first)
	}
	// Both channels carry the same sample.
	left := binary.LittleEndian.Uint32(buf[8:])
	right := binary.LittleEndian.Uint32(buf[12:])
	if left != right {
		t.Errorf("channels differ: %#x vs %#x", left, right)
	}
	// Amplitude is respected.
	for i := 0; i < 100; i++ {
		s := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*8:]))
		if s > 0.5 || s < -0.5 {
			t.Fatalf("sample %d = %v exceeds amplitude", i, s)
		}
	}
}

func TestSineToneS16(t *testing.T) {
	spec := Spec{Format: FormatS16, Channels: 1, Freq: 8000}
	buf, err := SineTone(spec, 1000, 1, 16)
	if err != nil {
		t.Fatalf("SineTone() error = %v", err)
	}
	if want := 16 * 2; len(buf) != want {
		t.Fatalf("len = %d, want %d", len(buf), want)
	}
	if v := int16(binary.LittleEndian.Uint16(buf)); v != 0 {
		t.Errorf("first sample = %d, want 0", v)
	}
}

func TestSineToneRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{"zero freq", Spec{Format: FormatF32, Channels: 2}},
		{"zero channels", Spec{Format: FormatF32, Freq: 48000}},
		{"unsupported format", Spec{Format: FormatU8, Channels: 2, Freq: 48000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SineTone(tt.spec, 440, 1, 10); err == nil {
				t.Error("SineTone() error = nil, want error")
			}
		})
	}
	if _, err := SineTone(Spec{Format: FormatF32, Channels: 2, Freq: 48000}, 440, 1, -1); err == nil {
		t.Error("SineTone() with negative frames: error = nil, want error")
	}
}
