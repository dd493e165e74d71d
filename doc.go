// Package sdl3 provides Go bindings for SDL3.
//
// # Overview
//
// sdl3 binds the SDL3 C API one subsystem per package: this root package
// covers library initialization, hints, versioning, and the error model
// shared by every subsystem; windowing lives in video, the GPU API in gpu,
// audio streams in audio, the event queue in events, text rendering in ttf,
// force feedback in haptic, tray icons in tray, and native dialogs in
// messagebox.
//
// # Quick Start
//
//	import (
//	    "github.com/gosdl/sdl3"
//	    "github.com/gosdl/sdl3/video"
//	)
//
//	if err := sdl3.Init(sdl3.InitVideo); err != nil {
//	    log.Fatal(err)
//	}
//	defer sdl3.Quit()
//
//	win, err := video.CreateWindow("hello", 800, 600, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer win.Destroy()
//
// # Errors
//
// Every wrapped call either returns its native success value or a single
// uniform error kind carrying SDL's diagnostic string, captured at the
// moment of failure. Match it with errors.Is(err, sdl3.ErrSDL). The
// bindings never retry or recover on their own.
//
// # Handles
//
// Wrapper types (Window, Device, Buffer, ...) hold exactly one native
// handle. The handle stays valid until the matching Destroy/Release call;
// ownership is manual and the native library does not tolerate use after
// release. Methods on a wrapper whose handle is nil report an
// invalid-parameter failure rather than crashing.
//
// # Building
//
// The bindings use cgo and locate SDL3 through pkg-config (sdl3, and
// sdl3-ttf for the ttf package).
package sdl3
