package postprocess

import (
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDownsampleSolid(t *testing.T) {
	c := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	out := Downsample(solid(8, 6, c), 4, 3)
	if b := out.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Fatalf("bounds = %v, want 4x3", b)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := out.NRGBAAt(x, y); got != c {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, c)
			}
		}
	}
}

func TestDownsampleNoHalo(t *testing.T) {
	// A white half next to a transparent black half: filtering must not
	// darken the colour of the visible edge pixels.
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	out := Downsample(img, 4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			p := out.NRGBAAt(x, y)
			if p.A > 16 && p.R < 240 {
				t.Errorf("pixel (%d,%d) = %v, darkened edge", x, y, p)
			}
		}
	}
}

func TestDownsampleSmallerIsNoop(t *testing.T) {
	img := solid(4, 4, color.NRGBA{A: 255})
	if out := Downsample(img, 4, 4); out != img {
		t.Error("same-size Downsample allocated a new image")
	}
}

func TestOpaqueBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	if got := OpaqueBounds(img); !got.Empty() {
		t.Errorf("transparent image bounds = %v, want empty", got)
	}
	img.SetNRGBA(2, 3, color.NRGBA{A: 1})
	img.SetNRGBA(7, 5, color.NRGBA{A: 255})
	if got, want := OpaqueBounds(img), image.Rect(2, 3, 8, 6); got != want {
		t.Errorf("bounds = %v, want %v", got, want)
	}
}

func TestMeasure(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 128})
	s := Measure(img)
	if s.Pixels != 4 || s.Opaque != 2 || s.Translucent != 1 || s.Transparent != 1 {
		t.Errorf("counts = %+v", s)
	}
	if s.Mean[0] != 63.75 || s.Mean[3] != (255+255+128)/4.0 {
		t.Errorf("mean = %v", s.Mean)
	}
}
