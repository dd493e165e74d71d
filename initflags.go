package sdl3

import "strings"

// InitFlags selects which SDL subsystems to initialize. Values mirror the
// SDL_INIT_* constants bit for bit.
type InitFlags uint32

const (
	InitAudio    InitFlags = 0x00000010
	InitVideo    InitFlags = 0x00000020
	InitJoystick InitFlags = 0x00000200
	InitHaptic   InitFlags = 0x00001000
	InitGamepad  InitFlags = 0x00002000
	InitEvents   InitFlags = 0x00004000
	InitSensor   InitFlags = 0x00008000
	InitCamera   InitFlags = 0x00010000
)

// Native returns the SDL representation of the flag set.
func (f InitFlags) Native() uint32 { return uint32(f) }

// InitFlagsFromNative converts an SDL_InitFlags value.
func InitFlagsFromNative(v uint32) InitFlags { return InitFlags(v) }

var initFlagNames = []struct {
	flag InitFlags
	name string
}{
	{InitAudio, "audio"},
	{InitVideo, "video"},
	{InitJoystick, "joystick"},
	{InitHaptic, "haptic"},
	{InitGamepad, "gamepad"},
	{InitEvents, "events"},
	{InitSensor, "sensor"},
	{InitCamera, "camera"},
}

// String lists the named subsystems in the set, pipe-separated.
func (f InitFlags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for _, fn := range initFlagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}
	if parts == nil {
		return "unknown"
	}
	return strings.Join(parts, "|")
}
