package scene

import (
	"math"

	"softraster/internal/mathutil"
	"softraster/internal/raster"
)

const (
	red   = 0xFF0000FF
	green = 0xFF00FF00
	blue  = 0xFFFF0000
)

// ballColor is a translucent green; the ball is always drawn blended.
const ballColor = 0x6900FF00

// renderTriangle spins a colour-interpolated triangle around the canvas
// centre, labels its corners and bounces a translucent ball across it.
func renderTriangle(c *raster.Canvas, t float64) error {
	c.Fill(Background)
	w, h := float64(c.Width()), float64(c.Height())

	corners := [3][2]float64{{w / 2, h / 8}, {w / 8, h / 2}, {7 * w / 8, 7 * h / 8}}
	var xs, ys [3]int
	for i, p := range corners {
		x, y := mathutil.Rotate2D(p[0], p[1], w/2, h/2, math.Pi/2*t)
		xs[i], ys[i] = int(x), int(y)
	}
	c.FillTriangleMixAA(xs[0], ys[0], red, xs[1], ys[1], green, xs[2], ys[2], blue)

	scale := textScale(c.Height(), 12)
	for i, label := range [3]string{"R", "G", "B"} {
		lx := xs[i] - raster.TextWidth(label, scale)/2
		ly := ys[i] - raster.TextHeight(scale)/2
		if err := c.FillText(label, lx, ly, scale, 0xFFFFFFFF); err != nil {
			return err
		}
	}

	r := max(min(c.Width(), c.Height())/12, 1)
	fr := float64(r)
	bx := fr + pingPong(w/4*t, w-2*fr)
	by := fr + pingPong(h/3*t, h-2*fr)
	c.BeginBlending()
	c.FillCircleAA(int(bx), int(by), r, ballColor)
	c.EndBlending()
	return nil
}
