package haptic

import "testing"

func TestDirectionTypeRoundTrip(t *testing.T) {
	for _, d := range []DirectionType{Polar, Cartesian, Spherical, SteeringAxis} {
		got, ok := DirectionTypeFromNative(d.Native())
		if !ok {
			t.Errorf("DirectionTypeFromNative(%d) ok = false, want true", d.Native())
		}
		if got != d {
			t.Errorf("round trip of %v = %v", d, got)
		}
	}
	if _, ok := DirectionTypeFromNative(200); ok {
		t.Error("DirectionTypeFromNative(200) ok = true, want false")
	}
}

func TestDirectionTypeString(t *testing.T) {
	if got := Spherical.String(); got != "Spherical" {
		t.Errorf("Spherical.String() = %q", got)
	}
	if got := DirectionType(9).String(); got != "DirectionType(9)" {
		t.Errorf("DirectionType(9).String() = %q", got)
	}
}

func TestFeaturesString(t *testing.T) {
	tests := []struct {
		f    Features
		want string
	}{
		{0, "0"},
		{FeatureSine, "FeatureSine"},
		{FeatureConstant | FeatureGain, "FeatureConstant|FeatureGain"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("Features(%#x).String() = %q, want %q", uint32(tt.f), got, tt.want)
		}
	}
}

func TestInvalidDeviceRejected(t *testing.T) {
	var d *Device
	if err := d.SetGain(50); err == nil {
		t.Error("SetGain on nil device: error = nil, want error")
	}
	if _, err := d.MaxEffects(); err == nil {
		t.Error("MaxEffects on nil device: error = nil, want error")
	}
	if got := d.Name(); got != "" {
		t.Errorf("Name on nil device = %q, want empty", got)
	}
}
