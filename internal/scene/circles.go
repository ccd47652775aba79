package scene

import (
	"math"

	"softraster/internal/raster"
)

// renderCircles lays out a grid of pulsing circles whose radius grows
// towards the bottom-right corner. Odd cells use the antialiased fill and
// blend a translucent halo over the solid disc.
func renderCircles(c *raster.Canvas, t float64) error {
	c.Fill(Background)
	cw := max(c.Width()/checkerCols, 1)
	ch := max(c.Height()/checkerRows, 1)
	maxR := float64(min(cw, ch)) / 2
	const (
		from = 0xFF0000FF
		to   = 0xFFFF8000
	)

	for y := 0; y < checkerRows; y++ {
		v := float64(y) / checkerRows
		for x := 0; x < checkerCols; x++ {
			u := float64(x) / checkerCols
			k := (u + v) / 2
			pulse := 0.85 + 0.15*math.Sin(2*math.Pi*(t+k))
			r := int((maxR/5 + (maxR-maxR/5)*k) * pulse)
			cx, cy := x*cw+cw/2, y*ch+ch/2
			color := mix(from, to, k)
			if (x+y)%2 == 0 {
				c.FillCircle(cx, cy, r, color)
				continue
			}
			c.FillCircleAA(cx, cy, r, color)
			c.BeginBlending()
			c.FillCircleAA(cx, cy, r+max(r/4, 1), withAlpha(shade(color, 0.2), 0x40))
			c.EndBlending()
		}
	}
	return nil
}
