package events

import "testing"

func TestTypeRoundTrip(t *testing.T) {
	for typ := range typeNames {
		if got := TypeFromNative(typ.Native()); got != typ {
			t.Errorf("%v: round trip = %#x, want %#x", typ, uint32(got), uint32(typ))
		}
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Quit, "quit"},
		{KeyDown, "key_down"},
		{MouseWheel, "mouse_wheel"},
		{Type(0xDEAD), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%#x).String() = %q, want %q", uint32(tt.typ), got, tt.want)
		}
	}
}

func TestIsWindowEvent(t *testing.T) {
	tests := []struct {
		typ  Type
		want bool
	}{
		{WindowShown, true},
		{WindowCloseRequested, true},
		{WindowResized, true},
		{Quit, false},
		{KeyDown, false},
	}
	for _, tt := range tests {
		if got := tt.typ.IsWindowEvent(); got != tt.want {
			t.Errorf("%v.IsWindowEvent() = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestModifierMasks(t *testing.T) {
	if ModCtrl != ModLCtrl|ModRCtrl {
		t.Error("ModCtrl must cover both control keys")
	}
	mod := ModLShift | ModRAlt
	if mod&ModShift == 0 || mod&ModAlt == 0 {
		t.Error("combined masks must match either side")
	}
	if mod&ModGUI != 0 {
		t.Error("unrelated mask matched")
	}
}
