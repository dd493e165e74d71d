// Package surface flattens Go images into the tightly packed RGBA8888
// pixel layout SDL surfaces expect. The cgo packages (video icons, tray
// icons, ttf output) wrap these pixels in an SDL_Surface without copying
// again.
package surface

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// RGBA returns src's pixels as tightly packed RGBA bytes (pitch == 4*w)
// along with the image dimensions. The slice is freshly allocated unless
// src is already an *image.RGBA in canonical layout.
func RGBA(src image.Image) (pix []byte, w, h int) {
	b := src.Bounds()
	w, h = b.Dx(), b.Dy()
	if rgba, ok := src.(*image.RGBA); ok && rgba.Stride == 4*w && b.Min == (image.Point{}) {
		return rgba.Pix, w, h
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst.Pix, w, h
}

// RGBAScaled resamples src to w by h and returns tightly packed RGBA
// bytes. Used for fixed-size icons where the source image may be any size.
func RGBAScaled(src image.Image, w, h int) []byte {
	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		pix, _, _ := RGBA(src)
		return pix
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst.Pix
}
