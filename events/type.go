package events

// Type discriminates queue entries. Values mirror SDL_EventType.
type Type uint32

const (
	Quit        Type = 0x100
	Terminating Type = 0x101
	LowMemory   Type = 0x102

	WindowShown            Type = 0x202
	WindowHidden           Type = 0x203
	WindowExposed          Type = 0x204
	WindowMoved            Type = 0x205
	WindowResized          Type = 0x206
	WindowPixelSizeChanged Type = 0x207
	WindowMinimized        Type = 0x209
	WindowMaximized        Type = 0x20A
	WindowRestored         Type = 0x20B
	WindowMouseEnter       Type = 0x20C
	WindowMouseLeave       Type = 0x20D
	WindowFocusGained      Type = 0x20E
	WindowFocusLost        Type = 0x20F
	WindowCloseRequested   Type = 0x210

	KeyDown     Type = 0x300
	KeyUp       Type = 0x301
	TextEditing Type = 0x302
	TextInput   Type = 0x303

	MouseMotion     Type = 0x400
	MouseButtonDown Type = 0x401
	MouseButtonUp   Type = 0x402
	MouseWheel      Type = 0x403

	AudioDeviceAdded   Type = 0x1100
	AudioDeviceRemoved Type = 0x1101

	// User is the first event type free for application use.
	User Type = 0x8000
)

// Native returns the SDL representation of the type.
func (t Type) Native() uint32 { return uint32(t) }

// TypeFromNative converts an SDL_EventType value.
func TypeFromNative(v uint32) Type { return Type(v) }

var typeNames = map[Type]string{
	Quit:                   "quit",
	Terminating:            "terminating",
	LowMemory:              "low_memory",
	WindowShown:            "window_shown",
	WindowHidden:           "window_hidden",
	WindowExposed:          "window_exposed",
	WindowMoved:            "window_moved",
	WindowResized:          "window_resized",
	WindowPixelSizeChanged: "window_pixel_size_changed",
	WindowMinimized:        "window_minimized",
	WindowMaximized:        "window_maximized",
	WindowRestored:         "window_restored",
	WindowMouseEnter:       "window_mouse_enter",
	WindowMouseLeave:       "window_mouse_leave",
	WindowFocusGained:      "window_focus_gained",
	WindowFocusLost:        "window_focus_lost",
	WindowCloseRequested:   "window_close_requested",
	KeyDown:                "key_down",
	KeyUp:                  "key_up",
	TextEditing:            "text_editing",
	TextInput:              "text_input",
	MouseMotion:            "mouse_motion",
	MouseButtonDown:        "mouse_button_down",
	MouseButtonUp:          "mouse_button_up",
	MouseWheel:             "mouse_wheel",
	AudioDeviceAdded:       "audio_device_added",
	AudioDeviceRemoved:     "audio_device_removed",
	User:                   "user",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// IsWindowEvent reports whether t is one of the per-window event types.
func (t Type) IsWindowEvent() bool {
	return t >= WindowShown && t <= WindowCloseRequested
}

// Scancode is a physical key position, mirroring SDL_Scancode.
type Scancode uint32

// Common scancodes; the full set follows the USB HID usage tables.
const (
	ScancodeA      Scancode = 4
	ScancodeReturn Scancode = 40
	ScancodeEscape Scancode = 41
	ScancodeSpace  Scancode = 44
	ScancodeRight  Scancode = 79
	ScancodeLeft   Scancode = 80
	ScancodeDown   Scancode = 81
	ScancodeUp     Scancode = 82
)

// Keycode is a layout-dependent key identity, mirroring SDL_Keycode.
type Keycode uint32

const (
	KeycodeReturn Keycode = 0x0D
	KeycodeEscape Keycode = 0x1B
	KeycodeSpace  Keycode = 0x20
)

// Keymod is the active modifier-key mask, mirroring SDL_Keymod.
type Keymod uint16

const (
	ModLShift Keymod = 0x0001
	ModRShift Keymod = 0x0002
	ModLCtrl  Keymod = 0x0040
	ModRCtrl  Keymod = 0x0080
	ModLAlt   Keymod = 0x0100
	ModRAlt   Keymod = 0x0200
	ModLGUI   Keymod = 0x0400
	ModRGUI   Keymod = 0x0800

	ModCtrl  = ModLCtrl | ModRCtrl
	ModShift = ModLShift | ModRShift
	ModAlt   = ModLAlt | ModRAlt
	ModGUI   = ModLGUI | ModRGUI
)

// MouseButton identifies a mouse button, mirroring SDL's button numbering.
type MouseButton uint8

const (
	ButtonLeft   MouseButton = 1
	ButtonMiddle MouseButton = 2
	ButtonRight  MouseButton = 3
	ButtonX1     MouseButton = 4
	ButtonX2     MouseButton = 5
)
