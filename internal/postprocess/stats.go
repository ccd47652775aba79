package postprocess

import "image"

// OpaqueBounds returns the smallest rectangle holding every pixel with
// non-zero alpha, or an empty rectangle for a fully transparent image.
func OpaqueBounds(img *image.NRGBA) image.Rectangle {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.Pix[img.PixOffset(x, y)+3] == 0 {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < minX {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// Stats summarises the channels of an image.
type Stats struct {
	Pixels      int
	Transparent int // alpha == 0
	Translucent int // 0 < alpha < 255
	Opaque      int // alpha == 255

	// Mean holds the average R, G, B and A values.
	Mean [4]float64
}

// Measure computes Stats over every pixel of img.
func Measure(img *image.NRGBA) Stats {
	var (
		s   Stats
		sum [4]uint64
	)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			for c := 0; c < 4; c++ {
				sum[c] += uint64(img.Pix[i+c])
			}
			switch a := img.Pix[i+3]; a {
			case 0:
				s.Transparent++
			case 255:
				s.Opaque++
			default:
				s.Translucent++
			}
			s.Pixels++
		}
	}
	if s.Pixels > 0 {
		for c := range sum {
			s.Mean[c] = float64(sum[c]) / float64(s.Pixels)
		}
	}
	return s
}
