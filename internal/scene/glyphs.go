package scene

import (
	"softraster/internal/font"
	"softraster/internal/raster"
)

const glyphTitle = "Hello, World!"

// renderGlyphs shows the whole built-in font under a title on a translucent
// panel. A cursor steps through the glyphs eight per second.
func renderGlyphs(c *raster.Canvas, t float64) error {
	c.Fill(Background)
	scale := textScale(c.Height(), 16)
	cell := font.Advance * scale
	line := (font.Height + 2) * scale

	titleScale := 2 * scale
	tw := raster.TextWidth(glyphTitle, titleScale)
	th := raster.TextHeight(titleScale)
	tx, ty := (c.Width()-tw)/2, line
	c.BeginBlending()
	c.FillRect(tx-scale, ty-scale, tw+2*scale, th+2*scale, 0x60FFFFFF)
	c.EndBlending()
	if err := c.FillText(glyphTitle, tx, ty, titleScale, mix(0xFF00D0FF, 0xFFFF40A0, pingPong(t, 1))); err != nil {
		return err
	}

	runes := font.Runes()
	colors := wheel(len(runes), 60*t, 0.5, 0.75)
	perRow := max(c.Width()/cell-2, 1)
	cursor := int(8*t) % len(runes)
	y0 := ty + th + 2*line
	for i, r := range runes {
		x := cell + (i%perRow)*cell
		y := y0 + (i/perRow)*line
		if i == cursor {
			c.FillRect(x-scale/2, y-scale, cell, line, shade(colors[i], -0.4))
		}
		if err := c.FillText(string(r), x, y, scale, colors[i]); err != nil {
			return err
		}
	}
	return nil
}
