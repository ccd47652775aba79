package scene

import (
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"

	"softraster/internal/raster"
)

// Background is the backdrop shared by the demo scenes.
const Background = 0xFF202020

// pack converts a colour to the rasterizer's layout with the given alpha.
func pack(c clr.Color, a uint8) uint32 {
	r, g, b := c.Clamped().RGB255()
	return raster.Pack(r, g, b, a)
}

// unpack converts a packed pixel to a colour, ignoring alpha.
func unpack(p uint32) clr.Color {
	r, g, b, _ := raster.Unpack(p)
	c, _ := clr.MakeColor(color.RGBA{R: r, G: g, B: b, A: 0xFF})
	return c
}

// wheel returns n opaque colours evenly spaced in hue at fixed chroma and
// luminance, starting at hue offset degrees.
func wheel(n int, offset, chroma, lum float64) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		h := offset + 360*float64(i)/float64(n)
		for h >= 360 {
			h -= 360
		}
		out[i] = pack(clr.Hcl(h, chroma, lum), 0xFF)
	}
	return out
}

// mix blends two packed colours at t. Greys blend in RGB, everything else in
// Lab so the midpoint keeps its brightness.
func mix(a, b uint32, t float64) uint32 {
	ca, cb := unpack(a), unpack(b)
	if isGrey(ca) || isGrey(cb) {
		return pack(ca.BlendRgb(cb, t), 0xFF)
	}
	return pack(ca.BlendLab(cb, t), 0xFF)
}

func isGrey(c clr.Color) bool {
	return c.R == c.G && c.G == c.B
}

// shade moves a colour's HCL luminance by d, positive to lighten.
func shade(p uint32, d float64) uint32 {
	h, c, l := unpack(p).Hcl()
	return pack(clr.Hcl(h, c, l+d), 0xFF)
}

// withAlpha replaces the alpha channel of p.
func withAlpha(p uint32, a uint8) uint32 {
	return p&0x00FFFFFF | uint32(a)<<24
}
