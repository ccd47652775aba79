package raster

// Rect is an inclusive pixel rectangle inside a view.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// normalizeRect turns a signed (x, y, w, h) rectangle into inclusive corners
// clamped to a boundWidth×boundHeight view. A positive size extends right or
// down from (x, y); a negative one extends left or up. ok is false for an
// empty size, an empty view, or a rectangle that misses the view.
func normalizeRect(x, y, w, h, boundWidth, boundHeight int) (r Rect, ok bool) {
	if w == 0 || h == 0 || boundWidth <= 0 || boundHeight <= 0 {
		return Rect{}, false
	}
	x1 := x + w + 1
	if w > 0 {
		x1 = x + w - 1
	}
	y1 := y + h + 1
	if h > 0 {
		y1 = y + h - 1
	}
	if max(x, x1) < 0 || min(x, x1) >= boundWidth ||
		max(y, y1) < 0 || min(y, y1) >= boundHeight {
		return Rect{}, false
	}
	r = Rect{
		X0: clamp(x, 0, boundWidth-1),
		Y0: clamp(y, 0, boundHeight-1),
		X1: clamp(x1, 0, boundWidth-1),
		Y1: clamp(y1, 0, boundHeight-1),
	}
	if r.X1 < r.X0 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y1 < r.Y0 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r, true
}

// FillRect fills a rectangle in the current mode. w and h are signed: a
// negative width grows the rectangle to the left of x, a negative height
// grows it upwards from y. Either being zero draws nothing.
func (c *Canvas) FillRect(x, y, w, h int, color uint32) {
	r, ok := normalizeRect(x, y, w, h, c.width, c.height)
	if !ok {
		return
	}
	for row := r.Y0; row <= r.Y1; row++ {
		c.DrawHorizontalLineUnchecked(r.X0, r.X1, row, color)
	}
}

// Fill paints the whole view in the current mode.
func (c *Canvas) Fill(color uint32) {
	c.FillRect(0, 0, c.width, c.height, color)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
