package raster

// clipMargin keeps clipped float coordinates strictly below the view size so
// that truncation always yields a valid pixel index.
const clipMargin = 0.1

// HorizontalLine fills the pixels x0..=x1 of row y in the current mode. The
// span is clipped to the view; the order of x0 and x1 does not matter.
func (c *Canvas) HorizontalLine(x0, x1, y int, color uint32) {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if x1 < 0 || x0 >= c.width || y < 0 || y >= c.height {
		return
	}
	x0 = max(x0, 0)
	x1 = min(x1, c.width-1)
	c.DrawHorizontalLineUnchecked(x0, x1, y, color)
}

// DrawHorizontalLineUnchecked fills the pixels x0..=x1 of row y in the current
// mode. The caller guarantees 0 <= x0 <= x1 < Width() and 0 <= y < Height().
func (c *Canvas) DrawHorizontalLineUnchecked(x0, x1, y int, color uint32) {
	start := y * c.stride
	span := c.pix[start+x0 : start+x1+1]
	if c.blending {
		for i := range span {
			span[i] = Blend(span[i], color)
		}
		return
	}
	for i := range span {
		span[i] = color
	}
}

// DrawLine draws the segment (x0,y0)-(x1,y1) with Bresenham's algorithm after
// clipping it to the view. Both end points are drawn. The endpoints are put
// in a canonical order first, so swapping them paints the same pixels.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, color uint32) {
	if x1 < x0 || (x1 == x0 && y1 < y0) {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	s, ok := BoxClip(
		Segment{X0: float32(x0), Y0: float32(y0), X1: float32(x1), Y1: float32(y1)},
		0, 0,
		float32(c.width)-clipMargin, float32(c.height)-clipMargin,
	)
	if !ok {
		return
	}
	x0, y0, x1, y1 = int(s.X0), int(s.Y0), int(s.X1), int(s.Y1)
	c.setPixelUnchecked(x1, y1, color)

	r := NewRay(x0, y0, x1, y1)
	for !r.Reached {
		x, y := r.Next()
		c.setPixelUnchecked(x, y, color)
	}
}
