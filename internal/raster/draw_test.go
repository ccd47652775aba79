package raster

import (
	"math/rand"
	"testing"
)

const (
	gray  = 0xFF202020
	black = 0xFF000000
	white = 0xFFFFFFFF
	red   = 0xFF0000FF
	green = 0xFF00FF00
	blue  = 0xFFFF0000
)

func TestOpaqueRect(t *testing.T) {
	c := newTestCanvas(t, 16, 16, gray)
	c.FillRect(2, 2, 4, 4, red)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := uint32(gray)
			if x >= 2 && x <= 5 && y >= 2 && y <= 5 {
				want = red
			}
			if got := c.At(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %#08x, want %#08x", x, y, got, want)
			}
		}
	}
}

func TestBlendedRect(t *testing.T) {
	c := newTestCanvas(t, 16, 16, black)
	c.BeginBlending()
	c.FillRect(0, 0, 16, 16, 0x800000FF)
	for y := 0; y < 16; y++ {
		for x, p := range c.Row(y) {
			if p != 0xFF000080 {
				t.Fatalf("pixel (%d,%d) = %#08x, want 0xff000080", x, y, p)
			}
		}
	}
}

func TestFillRectEmptySize(t *testing.T) {
	c := newTestCanvas(t, 8, 8, gray)
	before := snapshot(c)
	c.FillRect(2, 2, 0, 5, red)
	c.FillRect(2, 2, 5, 0, red)
	if diff := changed(c, before); len(diff) != 0 {
		t.Errorf("zero-sized rect painted %d pixels", len(diff))
	}
}

func TestFillRectNegativeSize(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
	}{
		{"negative width", 6, 2, -4, 3},
		{"negative height", 3, 5, 4, -4},
		{"both negative", 6, 5, -4, -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCanvas(t, 10, 10, gray)
			before := snapshot(c)
			c.FillRect(tt.x, tt.y, tt.w, tt.h, red)
			got := changed(c, before)

			// A negative extent grows from x (or y) towards smaller
			// coordinates and keeps |w| (or |h|) pixels.
			x0, x1 := tt.x, tt.x+tt.w-1
			if tt.w < 0 {
				x0, x1 = tt.x+tt.w+1, tt.x
			}
			y0, y1 := tt.y, tt.y+tt.h-1
			if tt.h < 0 {
				y0, y1 = tt.y+tt.h+1, tt.y
			}
			want := (x1 - x0 + 1) * (y1 - y0 + 1)
			if len(got) != want {
				t.Fatalf("painted %d pixels, want %d", len(got), want)
			}
			for p := range got {
				if p[0] < x0 || p[0] > x1 || p[1] < y0 || p[1] > y1 {
					t.Errorf("pixel %v outside [%d,%d]x[%d,%d]", p, x0, x1, y0, y1)
				}
			}
		})
	}
}

func TestFillRectClipped(t *testing.T) {
	c := newTestCanvas(t, 8, 8, gray)
	c.FillRect(-3, -3, 5, 5, red)
	if got := c.At(0, 0); got != red {
		t.Errorf("pixel (0,0) = %#08x, want red", got)
	}
	if got := c.At(1, 1); got != red {
		t.Errorf("pixel (1,1) = %#08x, want red", got)
	}
	if got := c.At(2, 2); got != gray {
		t.Errorf("pixel (2,2) = %#08x, want gray", got)
	}

	c.FillRect(6, 6, 100, 100, blue)
	if got := c.At(7, 7); got != blue {
		t.Errorf("pixel (7,7) = %#08x, want blue", got)
	}
}

func TestFillRectOutsideView(t *testing.T) {
	c := newTestCanvas(t, 8, 8, gray)
	before := snapshot(c)
	c.FillRect(10, 2, 3, 3, red)
	c.FillRect(-5, 2, 3, 3, red)
	c.FillRect(2, 20, 3, 3, red)
	c.FillRect(2, -1, 3, -3, red)
	if diff := changed(c, before); len(diff) != 0 {
		t.Errorf("rects outside the view painted %v", diff)
	}
}

func TestHorizontalLine(t *testing.T) {
	c := newTestCanvas(t, 8, 2, 0)
	c.HorizontalLine(6, 2, 0, white)
	for x := 0; x < 8; x++ {
		want := uint32(0)
		if x >= 2 && x <= 6 {
			want = white
		}
		if got := c.At(x, 0); got != want {
			t.Errorf("pixel (%d,0) = %#08x, want %#08x", x, got, want)
		}
	}

	c.HorizontalLine(-5, 20, 1, white)
	for x := 0; x < 8; x++ {
		if c.At(x, 1) != white {
			t.Errorf("pixel (%d,1) not painted by clipped span", x)
		}
	}

	before := snapshot(c)
	c.HorizontalLine(0, 7, 2, red)
	c.HorizontalLine(0, 7, -1, red)
	c.HorizontalLine(8, 12, 0, red)
	if diff := changed(c, before); len(diff) != 0 {
		t.Errorf("off-view spans painted %v", diff)
	}
}

func TestLineClipAccept(t *testing.T) {
	c := newTestCanvas(t, 16, 16, 0)
	c.DrawLine(-4, 8, 20, 8, white)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := uint32(0)
			if y == 8 {
				want = white
			}
			if got := c.At(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %#08x, want %#08x", x, y, got, want)
			}
		}
	}
}

func TestLineEndpoints(t *testing.T) {
	tests := []struct {
		x0, y0, x1, y1 int
	}{
		{0, 0, 15, 15},
		{2, 13, 9, 1},
		{14, 3, 1, 7},
		{5, 5, 5, 5},
		{0, 7, 15, 7},
		{7, 15, 7, 0},
	}
	for _, tt := range tests {
		c := newTestCanvas(t, 16, 16, 0)
		c.DrawLine(tt.x0, tt.y0, tt.x1, tt.y1, white)
		if c.At(tt.x0, tt.y0) != white || c.At(tt.x1, tt.y1) != white {
			t.Errorf("line %v: endpoints not both painted", tt)
		}
		n := len(changed(c, snapshot(newTestCanvas(t, 16, 16, 0))))
		want := max(abs(tt.x1-tt.x0), abs(tt.y1-tt.y0)) + 1
		if n != want {
			t.Errorf("line %v painted %d pixels, want %d", tt, n, want)
		}
	}
}

func TestLineSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		x0, y0 := rng.Intn(40)-12, rng.Intn(40)-12
		x1, y1 := rng.Intn(40)-12, rng.Intn(40)-12

		a := newTestCanvas(t, 16, 16, 0)
		b := newTestCanvas(t, 16, 16, 0)
		a.DrawLine(x0, y0, x1, y1, white)
		b.DrawLine(x1, y1, x0, y0, white)
		if diff := changed(a, snapshot(b)); len(diff) != 0 {
			t.Fatalf("DrawLine(%d,%d,%d,%d) differs from its reverse at %v", x0, y0, x1, y1, diff)
		}
	}
}

func TestLineOutsideView(t *testing.T) {
	c := newTestCanvas(t, 16, 16, 0)
	before := snapshot(c)
	c.DrawLine(-10, -1, 30, -5, white)
	c.DrawLine(16, 0, 20, 15, white)
	if diff := changed(c, before); len(diff) != 0 {
		t.Errorf("lines outside the view painted %v", diff)
	}
}

func TestTriangleCoverage(t *testing.T) {
	c := newTestCanvas(t, 16, 16, 0)
	c.FillTriangle(0, 0, 15, 0, 0, 15, green)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := uint32(0)
			if x+y <= 15 {
				want = green
			}
			if got := c.At(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %#08x, want %#08x", x, y, got, want)
			}
		}
	}
}

func TestTriangleVertexOrder(t *testing.T) {
	pts := [3][2]int{{3, 1}, {13, 6}, {6, 14}}
	ref := newTestCanvas(t, 16, 16, 0)
	ref.FillTriangle(pts[0][0], pts[0][1], pts[1][0], pts[1][1], pts[2][0], pts[2][1], green)
	perms := [][3]int{{0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for _, p := range perms {
		c := newTestCanvas(t, 16, 16, 0)
		a, b, d := pts[p[0]], pts[p[1]], pts[p[2]]
		c.FillTriangle(a[0], a[1], b[0], b[1], d[0], d[1], green)
		if diff := changed(c, snapshot(ref)); len(diff) != 0 {
			t.Errorf("vertex order %v differs at %v", p, diff)
		}
	}
}

func TestTriangleInsideBoundingBox(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		var v [6]int
		for j := range v {
			v[j] = rng.Intn(20) - 2
		}
		c := newTestCanvas(t, 16, 16, 0)
		before := snapshot(c)
		c.FillTriangle(v[0], v[1], v[2], v[3], v[4], v[5], green)
		minX, maxX := min(v[0], v[2], v[4]), max(v[0], v[2], v[4])
		minY, maxY := min(v[1], v[3], v[5]), max(v[1], v[3], v[5])
		for p := range changed(c, before) {
			if p[0] < minX || p[0] > maxX || p[1] < minY || p[1] > maxY {
				t.Fatalf("triangle %v painted %v outside its bounding box", v, p)
			}
		}
	}
}

func TestTriangleMixVertices(t *testing.T) {
	c := newTestCanvas(t, 16, 16, 0)
	c.FillTriangleMix(0, 0, red, 15, 0, green, 0, 15, blue)
	if got := c.At(0, 0); got != red {
		t.Errorf("pixel (0,0) = %#08x, want red", got)
	}
	if got := c.At(15, 0); got != green {
		t.Errorf("pixel (15,0) = %#08x, want green", got)
	}
	if got := c.At(0, 15); got != blue {
		t.Errorf("pixel (0,15) = %#08x, want blue", got)
	}
	if got := c.At(15, 15); got != 0 {
		t.Errorf("pixel (15,15) = %#08x, want untouched", got)
	}
	r, g, b, _ := Unpack(c.At(2, 2))
	if r <= g || r <= b {
		t.Errorf("pixel (2,2) = %d,%d,%d, want red to dominate", r, g, b)
	}
}

func TestTriangleMixUpperRowsExcludeRightEnd(t *testing.T) {
	mix := newTestCanvas(t, 16, 16, 0)
	mix.FillTriangleMix(0, 0, red, 10, 10, red, 0, 10, red)
	if got := mix.At(10, 10); got != 0 {
		t.Errorf("mix pixel (10,10) = %#08x, want untouched", got)
	}
	if got := mix.At(0, 0); got != 0 {
		t.Errorf("mix pixel (0,0) = %#08x, want untouched", got)
	}

	flat := newTestCanvas(t, 16, 16, 0)
	flat.FillTriangle(0, 0, 10, 10, 0, 10, red)
	if got := flat.At(10, 10); got != red {
		t.Errorf("flat pixel (10,10) = %#08x, want red", got)
	}
}

func TestTriangleDegenerate(t *testing.T) {
	// A triangle with no rows to sweep reduces to the stamp of its last
	// vertex.
	c := newTestCanvas(t, 16, 16, 0)
	c.FillTriangle(2, 5, 9, 5, 13, 5, green)
	diff := changed(c, snapshot(newTestCanvas(t, 16, 16, 0)))
	if len(diff) != 1 || !diff[[2]int{13, 5}] {
		t.Errorf("flat triangle painted %v, want only (13,5)", diff)
	}
	c = newTestCanvas(t, 16, 16, 0)
	c.FillTriangle(4, 4, 4, 4, 4, 4, green)
	if n := len(changed(c, snapshot(newTestCanvas(t, 16, 16, 0)))); n != 1 {
		t.Errorf("point triangle painted %d pixels, want 1", n)
	}
}

func TestCircleFill(t *testing.T) {
	c := newTestCanvas(t, 16, 16, 0)
	c.FillCircle(8, 8, 4, blue)
	for _, p := range [][2]int{{8, 8}, {12, 8}, {4, 8}, {8, 12}, {8, 4}, {11, 11}} {
		if got := c.At(p[0], p[1]); got != blue {
			t.Errorf("pixel %v = %#08x, want blue", p, got)
		}
	}
	for _, p := range [][2]int{{12, 12}, {13, 8}, {10, 12}, {4, 4}} {
		if got := c.At(p[0], p[1]); got != 0 {
			t.Errorf("pixel %v = %#08x, want unset", p, got)
		}
	}
}

func TestCircleBounded(t *testing.T) {
	for r := 2; r <= 20; r++ {
		c := newTestCanvas(t, 48, 48, 0)
		before := snapshot(c)
		c.FillCircle(24, 24, r, white)
		for p := range changed(c, before) {
			dx, dy := p[0]-24, p[1]-24
			if dx*dx+dy*dy > (r+1)*(r+1) {
				t.Fatalf("r=%d: pixel %v outside radius", r, p)
			}
		}
		for _, p := range [][2]int{{24 - r, 24}, {24 + r, 24}, {24, 24 - r}, {24, 24 + r}} {
			if c.At(p[0], p[1]) != white {
				t.Errorf("r=%d: extreme %v not painted", r, p)
			}
		}
	}
}

func TestCirclePaintedOnce(t *testing.T) {
	const color = 0x80FFFFFF
	want := Blend(black, color)
	for r := 2; r <= 20; r++ {
		c := newTestCanvas(t, 48, 48, black)
		c.BeginBlending()
		c.FillCircle(24, 24, r, color)
		for y := 0; y < 48; y++ {
			for x, p := range c.Row(y) {
				if p != black && p != want {
					t.Fatalf("r=%d: pixel (%d,%d) = %#08x, blended more than once", r, x, y, p)
				}
			}
		}
	}
}

func TestCircleSmallAndOffView(t *testing.T) {
	c := newTestCanvas(t, 8, 8, 0)
	before := snapshot(c)
	c.FillCircle(4, 4, 0, white)
	c.FillCircle(4, 4, -3, white)
	c.FillCircle(-10, 4, 3, white)
	c.FillCircle(4, 20, 3, white)
	if diff := changed(c, before); len(diff) != 0 {
		t.Errorf("no-op circles painted %v", diff)
	}

	c.FillCircle(3, 3, 1, white)
	if diff := changed(c, before); len(diff) != 1 || !diff[[2]int{3, 3}] {
		t.Errorf("radius 1 painted %v, want only (3,3)", diff)
	}

	c.FillCircle(-2, 3, 3, red)
	if got := c.At(0, 3); got != red {
		t.Errorf("partly visible circle: pixel (0,3) = %#08x, want red", got)
	}
}
