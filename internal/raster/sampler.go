package raster

// coverage counts how many of the AARes×AARes sample points of pixel (x, y)
// satisfy inside. Samples sit at x+i/(AARes+1), y+j/(AARes+1) for i, j in
// 1..AARes.
func coverage(x, y int, inside func(sx, sy float32) bool) int {
	count := 0
	for i := 1; i <= AARes; i++ {
		sx := float32(x) + float32(i)*aaPadding
		for j := 1; j <= AARes; j++ {
			sy := float32(y) + float32(j)*aaPadding
			if inside(sx, sy) {
				count++
			}
		}
	}
	return count
}

// fillAA evaluates inside over every pixel of r and blends the colour with
// alpha scaled by coverage. Antialiased writes always composite so that edges
// fade into what is already on the canvas.
func (c *Canvas) fillAA(r Rect, color uint32, inside func(sx, sy float32) bool) {
	for y := r.Y0; y <= r.Y1; y++ {
		for x := r.X0; x <= r.X1; x++ {
			if n := coverage(x, y, inside); n > 0 {
				c.blendPixelUnchecked(x, y, AAColor(n, color, c.blending))
			}
		}
	}
}

// FillCircleAA fills a circle of radius r centred on pixel (cx, cy) with
// supersampled edges.
func (c *Canvas) FillCircleAA(cx, cy, r int, color uint32) {
	if r < 0 {
		return
	}
	box, ok := normalizeRect(cx-r, cy-r, 2*r+1, 2*r+1, c.width, c.height)
	if !ok {
		return
	}
	fr := float32(r)
	fx := float32(cx) + 0.5
	fy := float32(cy) + 0.5
	c.fillAA(box, color, func(sx, sy float32) bool {
		dx := sx - fx
		dy := sy - fy
		return dx*dx+dy*dy <= fr*fr
	})
}

// FillTriangleAA fills a triangle with supersampled edges. Vertices are taken
// as pixel centres.
func (c *Canvas) FillTriangleAA(x0, y0, x1, y1, x2, y2 int, color uint32) {
	bx, by, bw, bh := boundingBox(x0, y0, x1, y1, x2, y2)
	box, ok := normalizeRect(bx, by, bw, bh, c.width, c.height)
	if !ok {
		return
	}
	t := newTriangle([3]vertex{{x: x0, y: y0}, {x: x1, y: y1}, {x: x2, y: y2}}, 0.5)
	c.fillAA(box, color, t.contains)
}

// FillTriangleMixAA is the supersampled form of FillTriangleMix. The colour
// of a pixel is the interpolated colour at its first covered sample; its
// coverage counts every covered sample.
func (c *Canvas) FillTriangleMixAA(x0, y0 int, c0 uint32, x1, y1 int, c1 uint32, x2, y2 int, c2 uint32) {
	bx, by, bw, bh := boundingBox(x0, y0, x1, y1, x2, y2)
	box, ok := normalizeRect(bx, by, bw, bh, c.width, c.height)
	if !ok {
		return
	}
	t := newTriangle([3]vertex{{x: x0, y: y0}, {x: x1, y: y1}, {x: x2, y: y2}}, 0.5)
	for y := box.Y0; y <= box.Y1; y++ {
		for x := box.X0; x <= box.X1; x++ {
			var (
				count int
				color uint32
			)
			for i := 1; i <= AARes; i++ {
				sx := float32(x) + float32(i)*aaPadding
				for j := 1; j <= AARes; j++ {
					sy := float32(y) + float32(j)*aaPadding
					u, v, w := t.barycentric(sx, sy)
					// NaN weights from a zero-area triangle fail these tests too.
					if !(u >= 0 && v >= 0 && w >= 0) {
						continue
					}
					if count == 0 {
						color = MixColors3(c0, c1, c2, u, v, w)
					}
					count++
				}
			}
			if count > 0 {
				c.blendPixelUnchecked(x, y, AAColor(count, color, c.blending))
			}
		}
	}
}
