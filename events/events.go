// Package events binds SDL3's event queue.
//
// Events are polled on the main thread, the same rule SDL imposes on the C
// API. Each queue entry is decoded into a typed Go struct; types the
// bindings do not decode come back as a CommonEvent carrying the raw type.
//
//	for {
//	    ev, ok := events.Poll()
//	    if !ok {
//	        break
//	    }
//	    switch e := ev.(type) {
//	    case events.QuitEvent:
//	        return
//	    case events.KeyboardEvent:
//	        ...
//	    }
//	}
package events

/*
#cgo pkg-config: sdl3
#include <SDL3/SDL.h>
*/
import "C"

import (
	"unsafe"

	"github.com/gosdl/sdl3"
	"github.com/gosdl/sdl3/internal/fail"
)

// Event is one decoded queue entry.
type Event interface {
	// EventType returns the discriminating type.
	EventType() Type
	// Timestamp returns the event time in nanoseconds since SDL_Init.
	Timestamp() uint64
}

// CommonEvent carries the fields every event shares. It is returned as-is
// for event types the bindings do not decode further.
type CommonEvent struct {
	Kind Type
	Time uint64
}

func (e CommonEvent) EventType() Type   { return e.Kind }
func (e CommonEvent) Timestamp() uint64 { return e.Time }

// QuitEvent reports a request to shut the application down.
type QuitEvent struct {
	CommonEvent
}

// WindowEvent reports a state change of one window. Data1 and Data2 carry
// type-specific values (the new position for WindowMoved, the new size for
// WindowResized).
type WindowEvent struct {
	CommonEvent
	WindowID     uint32
	Data1, Data2 int32
}

// KeyboardEvent reports a key press or release.
type KeyboardEvent struct {
	CommonEvent
	WindowID uint32
	Scancode Scancode
	Key      Keycode
	Mod      Keymod
	Down     bool
	Repeat   bool
}

// MouseMotionEvent reports mouse movement in window coordinates.
type MouseMotionEvent struct {
	CommonEvent
	WindowID uint32
	State    uint32
	Pos      sdl3.FPoint
	Rel      sdl3.FPoint
}

// MouseButtonEvent reports a mouse button press or release.
type MouseButtonEvent struct {
	CommonEvent
	WindowID uint32
	Button   MouseButton
	Down     bool
	Clicks   uint8
	Pos      sdl3.FPoint
}

// MouseWheelEvent reports scroll wheel movement. X and Y are the scroll
// amounts; Pos is the mouse position at scroll time.
type MouseWheelEvent struct {
	CommonEvent
	WindowID uint32
	X, Y     float32
	Pos      sdl3.FPoint
}

// TextInputEvent reports committed text input as UTF-8.
type TextInputEvent struct {
	CommonEvent
	WindowID uint32
	Text     string
}

// AudioDeviceEvent reports an audio device arriving or leaving.
type AudioDeviceEvent struct {
	CommonEvent
	DeviceID  uint32
	Recording bool
}

func decode(ev *C.SDL_Event) Event {
	c := (*C.SDL_CommonEvent)(unsafe.Pointer(ev))
	common := CommonEvent{Kind: Type(c._type), Time: uint64(c.timestamp)}

	switch common.Kind {
	case Quit:
		return QuitEvent{CommonEvent: common}

	case KeyDown, KeyUp:
		k := (*C.SDL_KeyboardEvent)(unsafe.Pointer(ev))
		return KeyboardEvent{
			CommonEvent: common,
			WindowID:    uint32(k.windowID),
			Scancode:    Scancode(k.scancode),
			Key:         Keycode(k.key),
			Mod:         Keymod(k.mod),
			Down:        bool(k.down),
			Repeat:      bool(k.repeat),
		}

	case MouseMotion:
		m := (*C.SDL_MouseMotionEvent)(unsafe.Pointer(ev))
		return MouseMotionEvent{
			CommonEvent: common,
			WindowID:    uint32(m.windowID),
			State:       uint32(m.state),
			Pos:         sdl3.FPoint{X: float32(m.x), Y: float32(m.y)},
			Rel:         sdl3.FPoint{X: float32(m.xrel), Y: float32(m.yrel)},
		}

	case MouseButtonDown, MouseButtonUp:
		m := (*C.SDL_MouseButtonEvent)(unsafe.Pointer(ev))
		return MouseButtonEvent{
			CommonEvent: common,
			WindowID:    uint32(m.windowID),
			Button:      MouseButton(m.button),
			Down:        bool(m.down),
			Clicks:      uint8(m.clicks),
			Pos:         sdl3.FPoint{X: float32(m.x), Y: float32(m.y)},
		}

	case MouseWheel:
		m := (*C.SDL_MouseWheelEvent)(unsafe.Pointer(ev))
		return MouseWheelEvent{
			CommonEvent: common,
			WindowID:    uint32(m.windowID),
			X:           float32(m.x),
			Y:           float32(m.y),
			Pos:         sdl3.FPoint{X: float32(m.mouse_x), Y: float32(m.mouse_y)},
		}

	case TextInput:
		t := (*C.SDL_TextInputEvent)(unsafe.Pointer(ev))
		return TextInputEvent{
			CommonEvent: common,
			WindowID:    uint32(t.windowID),
			Text:        C.GoString(t.text),
		}

	case AudioDeviceAdded, AudioDeviceRemoved:
		a := (*C.SDL_AudioDeviceEvent)(unsafe.Pointer(ev))
		return AudioDeviceEvent{
			CommonEvent: common,
			DeviceID:    uint32(a.which),
			Recording:   bool(a.recording),
		}
	}

	if common.Kind.IsWindowEvent() {
		w := (*C.SDL_WindowEvent)(unsafe.Pointer(ev))
		return WindowEvent{
			CommonEvent: common,
			WindowID:    uint32(w.windowID),
			Data1:       int32(w.data1),
			Data2:       int32(w.data2),
		}
	}

	return common
}

// Poll removes and returns the next queued event. ok is false when the
// queue is empty.
func Poll() (ev Event, ok bool) {
	var raw C.SDL_Event
	if !C.SDL_PollEvent(&raw) {
		return nil, false
	}
	return decode(&raw), true
}

// Wait blocks until an event arrives.
func Wait() (Event, error) {
	var raw C.SDL_Event
	if err := fail.CheckBool(bool(C.SDL_WaitEvent(&raw))); err != nil {
		return nil, err
	}
	return decode(&raw), nil
}

// WaitTimeout blocks until an event arrives or timeoutMS elapses. ok is
// false on timeout.
func WaitTimeout(timeoutMS int32) (ev Event, ok bool) {
	var raw C.SDL_Event
	if !C.SDL_WaitEventTimeout(&raw, C.Sint32(timeoutMS)) {
		return nil, false
	}
	return decode(&raw), true
}

// Push appends an event of type t to the queue. Only the type is carried;
// use types at or above User for application-defined events.
func Push(t Type) error {
	var raw C.SDL_Event
	c := (*C.SDL_CommonEvent)(unsafe.Pointer(&raw))
	c._type = C.Uint32(t)
	return fail.CheckBool(bool(C.SDL_PushEvent(&raw)))
}

// Pump gathers pending input from the OS into the queue. Poll and Wait
// pump implicitly; call Pump only when polling is handled elsewhere.
func Pump() {
	C.SDL_PumpEvents()
}
