package raster

// FillTriangle fills the triangle (x0,y0), (x1,y1), (x2,y2) in the current
// mode.
//
// The vertices are sorted by y and the triangle is swept as two trapezoids:
// rows from the top vertex to the middle one use the top→mid and top→bottom
// edges, the remaining rows use mid→bottom and top→bottom.
func (c *Canvas) FillTriangle(x0, y0, x1, y1, x2, y2 int, color uint32) {
	v := sortByY([3]vertex{{x0, y0, color}, {x1, y1, color}, {x2, y2, color}})
	c.setPixel(v[2].x, v[2].y, color)
	c.sweepTriangle(v, func(left, right, row int, upper bool) {
		c.HorizontalLine(left, right, row, color)
	})
}

// FillTriangleMix fills a triangle whose vertices carry the colours c0, c1 and
// c2, interpolating them with barycentric weights. Pixels are written through
// the current mode.
//
// Rows of the upper trapezoid exclude their right end while rows of the lower
// one include it.
func (c *Canvas) FillTriangleMix(x0, y0 int, c0 uint32, x1, y1 int, c1 uint32, x2, y2 int, c2 uint32) {
	v := sortByY([3]vertex{{x0, y0, c0}, {x1, y1, c1}, {x2, y2, c2}})
	c.setPixel(v[2].x, v[2].y, v[2].color)

	t := newTriangle(v, 0)
	c.sweepTriangle(v, func(left, right, row int, upper bool) {
		if right < left {
			left, right = right, left
		}
		if upper {
			right--
		}
		for x := left; x <= right; x++ {
			u, vv, w := t.barycentric(float32(x), float32(row))
			if u >= 0 && vv >= 0 && w >= 0 {
				c.setPixel(x, row, MixColors3(v[0].color, v[1].color, v[2].color, u, vv, w))
			}
		}
	})
}

type vertex struct {
	x, y  int
	color uint32
}

// sortByY orders vertices top to bottom with three compare-and-swaps.
func sortByY(v [3]vertex) [3]vertex {
	if v[0].y > v[1].y {
		v[0], v[1] = v[1], v[0]
	}
	if v[1].y > v[2].y {
		v[1], v[2] = v[2], v[1]
	}
	if v[0].y > v[1].y {
		v[0], v[1] = v[1], v[0]
	}
	return v
}

// sweepTriangle walks the rows of a y-sorted triangle and reports the two edge
// positions on every row. upper is true for rows of the top trapezoid.
func (c *Canvas) sweepTriangle(v [3]vertex, span func(left, right, row int, upper bool)) {
	topMid := NewRay(v[0].x, v[0].y, v[1].x, v[1].y)
	midBottom := NewRay(v[1].x, v[1].y, v[2].x, v[2].y)
	topBottom := NewRay(v[0].x, v[0].y, v[2].x, v[2].y)

	row := v[0].y
	x0, y0 := topMid.Next()
	x1, y1 := midBottom.Next()
	x2, y2 := topBottom.Next()

	if v[1].y != v[0].y {
		for ; row <= topMid.Y1; row++ {
			for y0 != row {
				x0, y0 = topMid.Next()
			}
			for y2 != row {
				x2, y2 = topBottom.Next()
			}
			span(x0, x2, row, true)
		}
	}
	if v[1].y != v[2].y {
		for ; row <= midBottom.Y1; row++ {
			for y1 != row {
				x1, y1 = midBottom.Next()
			}
			for y2 != row {
				x2, y2 = topBottom.Next()
			}
			span(x1, x2, row, false)
		}
	}
}

// triangle holds float vertex positions for barycentric tests.
type triangle struct {
	x0, y0, x1, y1, x2, y2 float32
}

// newTriangle converts integer vertices, shifting each by offset.
func newTriangle(v [3]vertex, offset float32) triangle {
	return triangle{
		x0: float32(v[0].x) + offset, y0: float32(v[0].y) + offset,
		x1: float32(v[1].x) + offset, y1: float32(v[1].y) + offset,
		x2: float32(v[2].x) + offset, y2: float32(v[2].y) + offset,
	}
}

// barycentric returns the weights (u, v, w) of point (x, y) relative to the
// triangle's vertices 0, 1 and 2.
//
// (u, v, w) with u = 1-v-w is the vector orthogonal to both
// (x1-x0, x2-x0, x0-x) and (y1-y0, y2-y0, y0-y), scaled so its last
// component is 1. A degenerate triangle yields NaN or infinite weights.
func (t triangle) barycentric(x, y float32) (u, v, w float32) {
	ax, ay, az := t.x1-t.x0, t.x2-t.x0, t.x0-x
	bx, by, bz := t.y1-t.y0, t.y2-t.y0, t.y0-y

	cx := ay*bz - az*by
	cy := az*bx - ax*bz
	cz := ax*by - ay*bx

	v = cx / cz
	w = cy / cz
	u = 1 - w - v
	return u, v, w
}

// contains reports whether (x, y) lies inside or on the triangle.
func (t triangle) contains(x, y float32) bool {
	u, v, w := t.barycentric(x, y)
	return u >= 0 && v >= 0 && w >= 0
}

// boundingBox returns the signed bounding box of three vertices as
// (x, y, w, h) suitable for normalizeRect.
func boundingBox(x0, y0, x1, y1, x2, y2 int) (x, y, w, h int) {
	minX, maxX := min(x0, x1, x2), max(x0, x1, x2)
	minY, maxY := min(y0, y1, y2), max(y0, y1, y2)
	return minX, minY, maxX - minX + 1, maxY - minY + 1
}
