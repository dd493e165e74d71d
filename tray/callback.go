package tray

// The exported bridge lives in its own file: cgo forbids C function
// definitions in the preamble of a file containing //export.

/*
#include <SDL3/SDL.h>
*/
import "C"

import "unsafe"

//export goTrayEntryCallback
func goTrayEntryCallback(userdata unsafe.Pointer, entry *C.SDL_TrayEntry) {
	callbacks.Lock()
	fn := callbacks.m[uintptr(unsafe.Pointer(entry))]
	callbacks.Unlock()
	if fn != nil {
		fn()
	}
}
