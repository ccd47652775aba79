package mathutil

// Near is the closest depth Project accepts. Points at or in front of it
// have no meaningful perspective divide.
const Near = 1e-3

// Viewport maps normalized device coordinates in [-1, 1] onto a pixel grid.
type Viewport struct {
	Width, Height int

	// FlipY makes +y point up on screen, as in a right-handed camera.
	FlipY bool
}

// Project divides p by its depth and maps the result to pixel coordinates.
// ok is false when p is behind the near plane.
func (vp Viewport) Project(p Vec3) (x, y float64, ok bool) {
	if p[2] <= Near {
		return 0, 0, false
	}
	nx, ny := p[0]/p[2], p[1]/p[2]
	x, y = vp.Screen(nx, ny)
	return x, y, true
}

// Screen maps a point in normalized device coordinates to pixels.
func (vp Viewport) Screen(nx, ny float64) (x, y float64) {
	if vp.FlipY {
		ny = -ny
	}
	return (nx + 1) / 2 * float64(vp.Width), (ny + 1) / 2 * float64(vp.Height)
}

// ScaleAt returns the on-screen length in pixels of a segment of length l
// lying at depth z, measured along the larger screen axis.
func (vp Viewport) ScaleAt(l, z float64) float64 {
	if z <= Near {
		return 0
	}
	return l / z * float64(max(vp.Width, vp.Height))
}
