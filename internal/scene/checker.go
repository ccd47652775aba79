package scene

import "softraster/internal/raster"

const (
	checkerCols = 8
	checkerRows = 6
)

// renderChecker scrolls a board of alternating tiles to the right, one tile
// per second, while the tile hues turn.
func renderChecker(c *raster.Canvas, t float64) error {
	c.Fill(Background)
	cw := max(c.Width()/checkerCols, 1)
	ch := max(c.Height()/checkerRows, 1)
	colors := wheel(checkerCols, 30*t, 0.6, 0.55)

	shift := int(t*float64(cw)) % (2 * cw)
	for y := 0; y <= checkerRows; y++ {
		for x := -2; x <= checkerCols; x++ {
			if (x+y)&1 != 0 {
				continue
			}
			color := colors[(x+checkerCols)%checkerCols]
			c.FillRect(x*cw+shift, y*ch, cw, ch, color)
		}
	}
	return nil
}
