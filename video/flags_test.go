package video

import "testing"

func TestWindowFlagsRoundTrip(t *testing.T) {
	for _, fn := range windowFlagNames {
		t.Run(fn.name, func(t *testing.T) {
			if got := WindowFlagsFromNative(fn.flag.Native()); got != fn.flag {
				t.Errorf("round trip = %#x, want %#x", got, fn.flag)
			}
		})
	}

	combined := WindowResizable | WindowHidden | WindowHighPixelDensity
	if got := WindowFlagsFromNative(combined.Native()); got != combined {
		t.Errorf("combined round trip = %#x, want %#x", got, combined)
	}
}

func TestWindowFlagsString(t *testing.T) {
	tests := []struct {
		name  string
		flags WindowFlags
		want  string
	}{
		{"none", 0, "none"},
		{"single", WindowResizable, "resizable"},
		{"combined", WindowFullscreen | WindowBorderless, "fullscreen|borderless"},
		{"unreserved bit", WindowFlags(1 << 40), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flags.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
