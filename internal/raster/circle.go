package raster

// FillCircle fills a circle of radius r around (cx, cy) in the current mode,
// using the integer midpoint algorithm. Each row is painted once, so a
// translucent circle blends evenly.
func (c *Canvas) FillCircle(cx, cy, r int, color uint32) {
	if r <= 0 {
		return
	}
	if r == 1 {
		c.setPixel(cx, cy, color)
		return
	}
	if cx+r < 0 || cy+r < 0 || cx-r >= c.width || cy-r >= c.height {
		return
	}

	// Only the octant above y=x in the first quadrant is traced; the other
	// seven follow by symmetry.
	x, y := 0, r
	lastY := y
	d := 3 - 2*r

	c.HorizontalLine(cx-y, cx+y, cy, color)
	d, x, y = midpointStep(d, x, y)

	for y >= x {
		if y != lastY {
			lastX := x - 1
			c.HorizontalLine(cx-lastX, cx+lastX, cy+lastY, color)
			c.HorizontalLine(cx-lastX, cx+lastX, cy-lastY, color)
			lastY = y
		}
		c.HorizontalLine(cx-y, cx+y, cy+x, color)
		c.HorizontalLine(cx-y, cx+y, cy-x, color)
		d, x, y = midpointStep(d, x, y)
	}

	// The loop paints the row of the previous y only when y changes, which
	// leaves the final one pending unless the diagonal row already covered it.
	lastX := x - 1
	if lastX == lastY {
		return
	}
	c.HorizontalLine(cx-lastX, cx+lastX, cy+lastY, color)
	c.HorizontalLine(cx-lastX, cx+lastX, cy-lastY, color)
}

func midpointStep(d, x, y int) (int, int, int) {
	if d < 0 {
		d += 4*x + 6
	} else {
		d += 4*(x-y) + 10
		y--
	}
	return d, x + 1, y
}
