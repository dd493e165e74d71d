// Package messagebox shows modal native message boxes.
//
// ShowSimple covers the common alert case; Show builds a box with custom
// buttons and an optional color scheme. Both block until the user
// dismisses the dialog, so call them from the thread running the event
// loop.
package messagebox

/*
#cgo pkg-config: sdl3
#include <stdlib.h>
#include <SDL3/SDL.h>
*/
import "C"

import (
	"unsafe"

	_ "github.com/gosdl/sdl3" // registers the native error store
	"github.com/gosdl/sdl3/internal/fail"
	"github.com/gosdl/sdl3/video"
)

// Flags select the icon and button layout direction of a message box.
type Flags uint32

const (
	Error              Flags = 0x010
	Warning            Flags = 0x020
	Information        Flags = 0x040
	ButtonsLeftToRight Flags = 0x080
	ButtonsRightToLeft Flags = 0x100
)

// ButtonFlags mark which button a return or escape keypress activates.
type ButtonFlags uint32

const (
	ButtonReturnKeyDefault ButtonFlags = 0x1
	ButtonEscapeKeyDefault ButtonFlags = 0x2
)

// Button describes one button in a message box. ID is reported back by
// Show when the button is pressed.
type Button struct {
	Flags ButtonFlags
	ID    int32
	Text  string
}

// ColorType indexes into a ColorScheme.
type ColorType int

const (
	ColorBackground ColorType = iota
	ColorText
	ColorButtonBorder
	ColorButtonBackground
	ColorButtonSelected
	colorCount
)

// Color is one RGB entry of a message box color scheme.
type Color struct {
	R, G, B uint8
}

// ColorScheme overrides the colors of a message box on backends that
// support it.
type ColorScheme struct {
	Colors [colorCount]Color
}

// Data describes a message box with custom buttons.
type Data struct {
	Flags       Flags
	Window      *video.Window
	Title       string
	Message     string
	Buttons     []Button
	ColorScheme *ColorScheme
}

// ShowSimple shows a message box with a single OK button. parent may be
// nil.
func ShowSimple(flags Flags, title, message string, parent *video.Window) error {
	cTitle := C.CString(title)
	defer C.free(unsafe.Pointer(cTitle))
	cMessage := C.CString(message)
	defer C.free(unsafe.Pointer(cMessage))

	var win *C.SDL_Window
	if parent != nil && parent.Native() != nil {
		win = (*C.SDL_Window)(parent.Native())
	}
	return fail.CheckBool(bool(C.SDL_ShowSimpleMessageBox(C.SDL_MessageBoxFlags(flags), cTitle, cMessage, win)))
}

// Show displays a message box with custom buttons and returns the ID of
// the pressed button, or -1 if the dialog was closed without one.
func Show(data Data) (int32, error) {
	if len(data.Buttons) == 0 {
		return 0, fail.InvalidParam("buttons")
	}

	cTitle := C.CString(data.Title)
	defer C.free(unsafe.Pointer(cTitle))
	cMessage := C.CString(data.Message)
	defer C.free(unsafe.Pointer(cMessage))

	// The button array and its strings must live in C memory: the data
	// struct is passed by pointer and cgo forbids Go pointers inside it.
	n := len(data.Buttons)
	cButtons := (*C.SDL_MessageBoxButtonData)(C.calloc(C.size_t(n), C.sizeof_SDL_MessageBoxButtonData))
	defer C.free(unsafe.Pointer(cButtons))
	buttons := unsafe.Slice(cButtons, n)
	for i, b := range data.Buttons {
		buttons[i].flags = C.SDL_MessageBoxButtonFlags(b.Flags)
		buttons[i].buttonID = C.int(b.ID)
		buttons[i].text = C.CString(b.Text)
		defer C.free(unsafe.Pointer(buttons[i].text))
	}

	var cScheme *C.SDL_MessageBoxColorScheme
	if data.ColorScheme != nil {
		cScheme = (*C.SDL_MessageBoxColorScheme)(C.calloc(1, C.sizeof_SDL_MessageBoxColorScheme))
		defer C.free(unsafe.Pointer(cScheme))
		for i, c := range data.ColorScheme.Colors {
			cScheme.colors[i] = C.SDL_MessageBoxColor{r: C.Uint8(c.R), g: C.Uint8(c.G), b: C.Uint8(c.B)}
		}
	}

	var win *C.SDL_Window
	if data.Window != nil && data.Window.Native() != nil {
		win = (*C.SDL_Window)(data.Window.Native())
	}

	cData := C.SDL_MessageBoxData{
		flags:       C.SDL_MessageBoxFlags(data.Flags),
		window:      win,
		title:       cTitle,
		message:     cMessage,
		numbuttons:  C.int(n),
		buttons:     cButtons,
		colorScheme: cScheme,
	}

	var pressed C.int
	if err := fail.CheckBool(bool(C.SDL_ShowMessageBox(&cData, &pressed))); err != nil {
		return 0, err
	}
	return int32(pressed), nil
}
