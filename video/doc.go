// Package video binds SDL3's windowing and display API.
//
// A Window wraps one SDL_Window handle; it stays valid until Destroy. All
// window and display calls must happen on the main thread, the same rule
// SDL imposes on the C API. Initialize the video subsystem first:
//
//	if err := sdl3.Init(sdl3.InitVideo); err != nil { ... }
//	win, err := video.CreateWindow("title", 800, 600, video.WindowResizable)
//	if err != nil { ... }
//	defer win.Destroy()
package video
