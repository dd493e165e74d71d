package video

import "strings"

// WindowFlags describes window state and creation options. Values mirror
// the SDL_WINDOW_* constants bit for bit.
type WindowFlags uint64

const (
	WindowFullscreen       WindowFlags = 0x0000000000000001
	WindowOpenGL           WindowFlags = 0x0000000000000002
	WindowOccluded         WindowFlags = 0x0000000000000004
	WindowHidden           WindowFlags = 0x0000000000000008
	WindowBorderless       WindowFlags = 0x0000000000000010
	WindowResizable        WindowFlags = 0x0000000000000020
	WindowMinimized        WindowFlags = 0x0000000000000040
	WindowMaximized        WindowFlags = 0x0000000000000080
	WindowMouseGrabbed     WindowFlags = 0x0000000000000100
	WindowInputFocus       WindowFlags = 0x0000000000000200
	WindowMouseFocus       WindowFlags = 0x0000000000000400
	WindowExternal         WindowFlags = 0x0000000000000800
	WindowModal            WindowFlags = 0x0000000000001000
	WindowHighPixelDensity WindowFlags = 0x0000000000002000
	WindowMouseCapture     WindowFlags = 0x0000000000004000
	WindowAlwaysOnTop      WindowFlags = 0x0000000000010000
	WindowUtility          WindowFlags = 0x0000000000020000
	WindowTooltip          WindowFlags = 0x0000000000040000
	WindowPopupMenu        WindowFlags = 0x0000000000080000
	WindowVulkan           WindowFlags = 0x0000000010000000
	WindowMetal            WindowFlags = 0x0000000020000000
	WindowTransparent      WindowFlags = 0x0000000040000000
	WindowNotFocusable     WindowFlags = 0x0000000080000000
)

// Native returns the SDL representation of the flag set.
func (f WindowFlags) Native() uint64 { return uint64(f) }

// WindowFlagsFromNative converts an SDL_WindowFlags value.
func WindowFlagsFromNative(v uint64) WindowFlags { return WindowFlags(v) }

var windowFlagNames = []struct {
	flag WindowFlags
	name string
}{
	{WindowFullscreen, "fullscreen"},
	{WindowOpenGL, "opengl"},
	{WindowOccluded, "occluded"},
	{WindowHidden, "hidden"},
	{WindowBorderless, "borderless"},
	{WindowResizable, "resizable"},
	{WindowMinimized, "minimized"},
	{WindowMaximized, "maximized"},
	{WindowMouseGrabbed, "mouse_grabbed"},
	{WindowInputFocus, "input_focus"},
	{WindowMouseFocus, "mouse_focus"},
	{WindowExternal, "external"},
	{WindowModal, "modal"},
	{WindowHighPixelDensity, "high_pixel_density"},
	{WindowMouseCapture, "mouse_capture"},
	{WindowAlwaysOnTop, "always_on_top"},
	{WindowUtility, "utility"},
	{WindowTooltip, "tooltip"},
	{WindowPopupMenu, "popup_menu"},
	{WindowVulkan, "vulkan"},
	{WindowMetal, "metal"},
	{WindowTransparent, "transparent"},
	{WindowNotFocusable, "not_focusable"},
}

// String lists the named flags in the set, pipe-separated.
func (f WindowFlags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for _, fn := range windowFlagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}
	if parts == nil {
		return "unknown"
	}
	return strings.Join(parts, "|")
}
