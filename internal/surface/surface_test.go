package surface

import (
	"image"
	"image/color"
	"testing"
)

func TestRGBACanonical(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})

	pix, w, h := RGBA(src)
	if w != 4 || h != 2 {
		t.Fatalf("dims = %dx%d, want 4x2", w, h)
	}
	// Canonical RGBA images are passed through without copying.
	if &pix[0] != &src.Pix[0] {
		t.Error("expected zero-copy pass-through for canonical *image.RGBA")
	}
	if pix[0] != 255 || pix[3] != 255 {
		t.Errorf("pixel (0,0) = %v, want red", pix[:4])
	}
}

func TestRGBAConvertsOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 14, 12))
	src.SetRGBA(10, 10, color.RGBA{G: 255, A: 255})

	pix, w, h := RGBA(src)
	if w != 4 || h != 2 {
		t.Fatalf("dims = %dx%d, want 4x2", w, h)
	}
	if pix[1] != 255 || pix[3] != 255 {
		t.Errorf("pixel (0,0) = %v, want green", pix[:4])
	}
}

func TestRGBAConvertsOtherModels(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(1, 1, color.NRGBA{B: 255, A: 255})

	pix, w, h := RGBA(src)
	if w != 2 || h != 2 {
		t.Fatalf("dims = %dx%d", w, h)
	}
	off := (1*2 + 1) * 4
	if pix[off+2] != 255 || pix[off+3] != 255 {
		t.Errorf("pixel (1,1) = %v, want blue", pix[off:off+4])
	}
}

func TestRGBAScaled(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetRGBA(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	pix := RGBAScaled(src, 4, 4)
	if len(pix) != 4*4*4 {
		t.Fatalf("len = %d, want %d", len(pix), 4*4*4)
	}
	// Uniform input stays uniform through resampling.
	if pix[0] != 200 || pix[1] != 100 || pix[2] != 50 || pix[3] != 255 {
		t.Errorf("pixel (0,0) = %v", pix[:4])
	}

	// Same-size path avoids resampling entirely.
	same := RGBAScaled(src, 8, 8)
	if len(same) != 8*8*4 {
		t.Fatalf("same-size len = %d", len(same))
	}
}
