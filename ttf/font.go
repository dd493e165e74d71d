package ttf

/*
#include <stdlib.h>
#include <SDL3_ttf/SDL_ttf.h>
*/
import "C"

import (
	"image"
	"unsafe"

	sdl3 "github.com/gosdl/sdl3"
	"github.com/gosdl/sdl3/internal/fail"
)

// FontStyle is a bitmask of rendering styles applied to a font.
type FontStyle uint32

const (
	StyleNormal        FontStyle = 0x00
	StyleBold          FontStyle = 0x01
	StyleItalic        FontStyle = 0x02
	StyleUnderline     FontStyle = 0x04
	StyleStrikethrough FontStyle = 0x08
)

// Hinting selects the FreeType hinter applied when loading glyphs.
type Hinting int32

const (
	HintingNormal Hinting = iota
	HintingLight
	HintingMono
	HintingNone
	HintingLightSubpixel
)

// Font wraps one TTF_Font handle. A Font is not safe for concurrent use;
// callers wanting shared fonts must serialize access themselves.
type Font struct {
	ptr *C.TTF_Font
}

// OpenFont loads a font from a file at the given point size.
func OpenFont(path string, ptsize float32) (*Font, error) {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))
	ptr := C.TTF_OpenFont(cPath, C.float(ptsize))
	if ptr == nil {
		return nil, fail.Err()
	}
	return &Font{ptr: ptr}, nil
}

func (f *Font) valid() bool { return f != nil && f.ptr != nil }

// Close frees the font and invalidates the handle. Close is idempotent.
func (f *Font) Close() {
	if !f.valid() {
		return
	}
	C.TTF_CloseFont(f.ptr)
	f.ptr = nil
}

// SetSize changes the font's point size.
func (f *Font) SetSize(ptsize float32) error {
	if !f.valid() {
		return fail.InvalidParam("font")
	}
	return fail.CheckBool(bool(C.TTF_SetFontSize(f.ptr, C.float(ptsize))))
}

// Size returns the font's current point size.
func (f *Font) Size() (float32, error) {
	if !f.valid() {
		return 0, fail.InvalidParam("font")
	}
	size := C.TTF_GetFontSize(f.ptr)
	if size <= 0 {
		return 0, fail.Err()
	}
	return float32(size), nil
}

// Height returns the maximum pixel height of all glyphs.
func (f *Font) Height() int {
	if !f.valid() {
		return 0
	}
	return int(C.TTF_GetFontHeight(f.ptr))
}

// Ascent returns the pixel offset from the baseline to the top of the
// font.
func (f *Font) Ascent() int {
	if !f.valid() {
		return 0
	}
	return int(C.TTF_GetFontAscent(f.ptr))
}

// Descent returns the pixel offset from the baseline to the bottom of
// the font, as a negative value.
func (f *Font) Descent() int {
	if !f.valid() {
		return 0
	}
	return int(C.TTF_GetFontDescent(f.ptr))
}

// LineSkip returns the recommended pixel spacing between lines.
func (f *Font) LineSkip() int {
	if !f.valid() {
		return 0
	}
	return int(C.TTF_GetFontLineSkip(f.ptr))
}

// SetStyle applies a style bitmask to the font.
func (f *Font) SetStyle(style FontStyle) {
	if !f.valid() {
		return
	}
	C.TTF_SetFontStyle(f.ptr, C.TTF_FontStyleFlags(style))
}

// Style returns the font's current style bitmask.
func (f *Font) Style() FontStyle {
	if !f.valid() {
		return StyleNormal
	}
	return FontStyle(C.TTF_GetFontStyle(f.ptr))
}

// SetOutline sets the outline width in pixels; zero disables outlining.
func (f *Font) SetOutline(pixels int) error {
	if !f.valid() {
		return fail.InvalidParam("font")
	}
	return fail.CheckBool(bool(C.TTF_SetFontOutline(f.ptr, C.int(pixels))))
}

// Outline returns the current outline width in pixels.
func (f *Font) Outline() int {
	if !f.valid() {
		return 0
	}
	return int(C.TTF_GetFontOutline(f.ptr))
}

// SetHinting selects the hinter used for subsequent glyph loads.
func (f *Font) SetHinting(h Hinting) {
	if !f.valid() {
		return
	}
	C.TTF_SetFontHinting(f.ptr, C.TTF_HintingFlags(h))
}

// Hinting returns the current hinter setting.
func (f *Font) Hinting() Hinting {
	if !f.valid() {
		return HintingNormal
	}
	return Hinting(C.TTF_GetFontHinting(f.ptr))
}

// TextSize measures the pixel dimensions of a UTF-8 string rendered with
// this font.
func (f *Font) TextSize(text string) (w, h int, err error) {
	if !f.valid() {
		return 0, 0, fail.InvalidParam("font")
	}
	cText := C.CString(text)
	defer C.free(unsafe.Pointer(cText))
	var cw, ch C.int
	if err := fail.CheckBool(bool(C.TTF_GetStringSize(f.ptr, cText, C.size_t(len(text)), &cw, &ch))); err != nil {
		return 0, 0, err
	}
	return int(cw), int(ch), nil
}

// RenderBlended renders a UTF-8 string with antialiasing into an RGBA
// image. The wrap width bounds word wrapping; zero wraps only on
// newlines.
func (f *Font) RenderBlended(text string, fg sdl3.Color, wrapWidth int) (*image.RGBA, error) {
	if !f.valid() {
		return nil, fail.InvalidParam("font")
	}
	cText := C.CString(text)
	defer C.free(unsafe.Pointer(cText))
	cFg := C.SDL_Color{r: C.Uint8(fg.R), g: C.Uint8(fg.G), b: C.Uint8(fg.B), a: C.Uint8(fg.A)}

	surf := C.TTF_RenderText_Blended_Wrapped(f.ptr, cText, C.size_t(len(text)), cFg, C.int(wrapWidth))
	if surf == nil {
		return nil, fail.Err()
	}
	defer C.SDL_DestroySurface(surf)
	return surfaceToRGBA(surf)
}

// surfaceToRGBA converts an SDL surface of any pixel format into a
// tightly packed image.RGBA.
func surfaceToRGBA(surf *C.SDL_Surface) (*image.RGBA, error) {
	conv := C.SDL_ConvertSurface(surf, C.SDL_PIXELFORMAT_RGBA32)
	if conv == nil {
		return nil, fail.Err()
	}
	defer C.SDL_DestroySurface(conv)

	w, h := int(conv.w), int(conv.h)
	pitch := int(conv.pitch)
	src := unsafe.Slice((*byte)(conv.pixels), h*pitch)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+w*4], src[y*pitch:y*pitch+w*4])
	}
	return img, nil
}
