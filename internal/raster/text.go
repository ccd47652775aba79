package raster

import (
	"fmt"
	"unicode/utf8"

	"softraster/internal/font"
)

// FillText draws s with the built-in 5×8 font, each font pixel scaled to a
// scale×scale block. The top-left corner of the first glyph is at (x, y).
//
// s is checked before drawing; if it contains a rune the font lacks, nothing
// is drawn and an error wrapping font.ErrUnknownGlyph is returned.
func (c *Canvas) FillText(s string, x, y, scale int, color uint32) error {
	if err := font.Validate(s); err != nil {
		Logger().Warn("rejected text", "text", s, "err", err)
		return fmt.Errorf("raster: fill text: %w", err)
	}
	i := 0
	for _, r := range s {
		g, _ := font.Lookup(r)
		gx := x + i*font.Advance*scale
		for dy := 0; dy < font.Height; dy++ {
			for dx := 0; dx < font.Width; dx++ {
				if g.On(dx, dy) {
					c.FillRect(gx+dx*scale, y+dy*scale, scale, scale, color)
				}
			}
		}
		i++
	}
	return nil
}

// TextWidth returns the width in pixels of s drawn at scale, without the
// spacing after the last glyph.
func TextWidth(s string, scale int) int {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return 0
	}
	return (n*font.Advance - font.Spacing) * scale
}

// TextHeight returns the height in pixels of a line drawn at scale.
func TextHeight(scale int) int {
	return font.Height * scale
}
