package raster

// Ray walks the Bresenham approximation of the segment (X0,Y0)-(X1,Y1) one
// pixel per call to Next. The end point itself is never emitted before
// Reached turns true; calling Next after that keeps stepping with the same
// slope, which the triangle sweeps rely on to land on their last row.
type Ray struct {
	X0, Y0, X1, Y1 int

	// Reached reports that the stepped coordinate hit the end point on the
	// major axis.
	Reached bool

	sx, sy int
	dx, dy int
	err    int
	x, y   int
	majorX bool
}

// NewRay prepares a ray from (x0, y0) to (x1, y1).
func NewRay(x0, y0, x1, y1 int) *Ray {
	r := &Ray{X0: x0, Y0: y0, X1: x1, Y1: y1, x: x0, y: y0, sx: 1, sy: 1}
	if x1 < x0 {
		r.sx = -1
	}
	if y1 < y0 {
		r.sy = -1
	}
	r.dx = abs(x1 - x0)
	r.dy = abs(y1 - y0)
	if r.dy < r.dx {
		r.majorX = true
		r.err = -r.dx
		r.Reached = x0 == x1
	} else {
		r.err = -r.dy
		r.Reached = y0 == y1
	}
	return r
}

// Next returns the current position and advances one step.
func (r *Ray) Next() (x, y int) {
	x, y = r.x, r.y
	if r.majorX {
		r.err += 2 * r.dy
		if r.err >= 0 {
			r.y += r.sy
			r.err -= 2 * r.dx
		}
		r.x += r.sx
		if r.x == r.X1 {
			r.Reached = true
		}
	} else {
		r.err += 2 * r.dx
		if r.err >= 0 {
			r.x += r.sx
			r.err -= 2 * r.dy
		}
		r.y += r.sy
		if r.y == r.Y1 {
			r.Reached = true
		}
	}
	return x, y
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
