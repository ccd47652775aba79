package raster

// Outcodes of the Cohen–Sutherland line clipper.
//
//	        left  central right
//	top     1001  1000    1010
//	central 0001  0000    0010
//	bottom  0101  0100    0110
const (
	outInside = 0
	outLeft   = 1 << 0
	outRight  = 1 << 1
	outBottom = 1 << 2
	outTop    = 1 << 3
)

// Segment is a line segment in floating point canvas coordinates.
type Segment struct {
	X0, Y0, X1, Y1 float32
}

// BoxClip clips s to the rectangle [xMin, xMax] × [yMin, yMax]. ok is false
// when the segment lies entirely outside the rectangle or the rectangle is
// inverted.
func BoxClip(s Segment, xMin, yMin, xMax, yMax float32) (clipped Segment, ok bool) {
	if xMax < xMin || yMax < yMin {
		return Segment{}, false
	}

	outcode := func(x, y float32) int {
		code := outInside
		if x < xMin {
			code |= outLeft
		} else if x > xMax {
			code |= outRight
		}
		if y < yMin {
			code |= outBottom
		} else if y > yMax {
			code |= outTop
		}
		return code
	}

	codeStart := outcode(s.X0, s.Y0)
	codeEnd := outcode(s.X1, s.Y1)
	for {
		if codeStart|codeEnd == 0 {
			return s, true
		}
		if codeStart&codeEnd != 0 {
			return Segment{}, false
		}

		// The outside endpoint with the larger code is moved first. The bit
		// tested below guarantees a non-zero denominator.
		codeOut := max(codeStart, codeEnd)
		dx := s.X1 - s.X0
		dy := s.Y1 - s.Y0
		var x, y float32
		switch {
		case codeOut&outTop != 0:
			x = s.X0 + (yMax-s.Y0)/dy*dx
			y = yMax
		case codeOut&outBottom != 0:
			x = s.X0 + (yMin-s.Y0)/dy*dx
			y = yMin
		case codeOut&outRight != 0:
			y = s.Y0 + (xMax-s.X0)/dx*dy
			x = xMax
		default:
			y = s.Y0 + (xMin-s.X0)/dx*dy
			x = xMin
		}

		if codeOut == codeStart {
			s.X0, s.Y0 = x, y
			codeStart = outcode(x, y)
		} else {
			s.X1, s.Y1 = x, y
			codeEnd = outcode(x, y)
		}
	}
}
