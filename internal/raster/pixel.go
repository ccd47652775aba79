package raster

// Pixels are packed little-endian RGBA: red in the lowest byte, alpha in the
// highest. Viewed as bytes on a little-endian host the buffer is R,G,B,A.

// AARes is the per-axis supersampling resolution of the antialiased fills.
const AARes = 2

// aaPadding is the distance between two sample positions inside a pixel.
const aaPadding = float32(1) / float32(AARes+1)

// Unpack splits a packed pixel into its channels.
func Unpack(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// Pack builds a packed pixel from channels.
func Pack(r, g, b, a uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
}

// Alpha returns the alpha channel of a packed pixel.
func Alpha(c uint32) uint8 {
	return uint8(c >> 24)
}

// Blend composites src over dst using src's alpha. Each colour channel is
// computed in integer arithmetic and truncated; dst keeps its own alpha.
func Blend(dst, src uint32) uint32 {
	sa := src >> 24
	inv := 0xFF - sa
	out := dst & 0xFF000000
	for shift := uint(0); shift < 24; shift += 8 {
		s := (src >> shift) & 0xFF
		d := (dst >> shift) & 0xFF
		out |= ((s*sa + inv*d) / 0xFF) << shift
	}
	return out
}

// MixColors3 interpolates three colours channel by channel with the weights
// u, v and w. Results are truncated and clamped to 0..255.
func MixColors3(c0, c1, c2 uint32, u, v, w float32) uint32 {
	var out uint32
	for shift := uint(0); shift < 32; shift += 8 {
		ch0 := float32((c0 >> shift) & 0xFF)
		ch1 := float32((c1 >> shift) & 0xFF)
		ch2 := float32((c2 >> shift) & 0xFF)
		out |= uint32(clampChannel(ch0*u+ch1*v+ch2*w)) << shift
	}
	return out
}

// AAColor scales the alpha of color by the covered fraction of the AARes×AARes
// samples. With blending on the colour's own alpha is scaled, otherwise full
// opacity is.
func AAColor(count int, color uint32, blending bool) uint32 {
	base := float32(0xFF)
	if blending {
		base = float32(color >> 24)
	}
	t := float32(count) / float32(AARes*AARes)
	alpha := uint32(clampChannel(t * base))
	return color&0x00FFFFFF | alpha<<24
}

func clampChannel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
