package sdl3

/*
#include <SDL3/SDL.h>
*/
import "C"

import "unsafe"

// Layout pins: the value types in rect.go cross the cgo boundary by
// pointer, so their sizes and field offsets must match SDL's structs
// exactly. Each assignment compiles only when the two array lengths agree.

var (
	_ = [unsafe.Sizeof(Point{})]byte{} == [C.sizeof_SDL_Point]byte{}
	_ = [unsafe.Sizeof(FPoint{})]byte{} == [C.sizeof_SDL_FPoint]byte{}
	_ = [unsafe.Sizeof(Rect{})]byte{} == [C.sizeof_SDL_Rect]byte{}
	_ = [unsafe.Sizeof(FRect{})]byte{} == [C.sizeof_SDL_FRect]byte{}
	_ = [unsafe.Sizeof(Color{})]byte{} == [C.sizeof_SDL_Color]byte{}
	_ = [unsafe.Sizeof(FColor{})]byte{} == [C.sizeof_SDL_FColor]byte{}

	_ = [unsafe.Offsetof(Rect{}.Y)]byte{} == [unsafe.Offsetof(C.SDL_Rect{}.y)]byte{}
	_ = [unsafe.Offsetof(Rect{}.W)]byte{} == [unsafe.Offsetof(C.SDL_Rect{}.w)]byte{}
	_ = [unsafe.Offsetof(Rect{}.H)]byte{} == [unsafe.Offsetof(C.SDL_Rect{}.h)]byte{}
	_ = [unsafe.Offsetof(FRect{}.W)]byte{} == [unsafe.Offsetof(C.SDL_FRect{}.w)]byte{}
	_ = [unsafe.Offsetof(Color{}.A)]byte{} == [unsafe.Offsetof(C.SDL_Color{}.a)]byte{}
	_ = [unsafe.Offsetof(FColor{}.A)]byte{} == [unsafe.Offsetof(C.SDL_FColor{}.a)]byte{}
)
