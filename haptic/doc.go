// Package haptic binds the force feedback subsystem.
//
// The wrapper surface in haptic.go is generated from haptic.yaml by
// cmd/bindgen; edit the description and regenerate rather than touching
// the generated file.
package haptic

//go:generate go run github.com/gosdl/sdl3/cmd/bindgen -o haptic.go haptic.yaml

import (
	_ "github.com/gosdl/sdl3" // registers the native error store
)
