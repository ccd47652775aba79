// Package font holds the built-in 5×8 bitmap font.
package font

import (
	"errors"
	"fmt"
)

const (
	// Width is the number of columns of a glyph.
	Width = 5
	// Height is the number of rows of a glyph.
	Height = 8
	// Spacing is the number of blank columns between two glyphs.
	Spacing = 1
	// Advance is the horizontal distance between the origins of two glyphs.
	Advance = Width + Spacing
)

// ErrUnknownGlyph is returned for runes the font has no glyph for.
var ErrUnknownGlyph = errors.New("font: unknown glyph")

// Glyph is a 5×8 bitmap. Each entry is one row, top first; bit 4 is the
// leftmost column.
type Glyph [Height]uint8

// On reports whether the pixel at column dx and row dy is set.
func (g Glyph) On(dx, dy int) bool {
	return g[dy]&(1<<(Width-1-dx)) != 0
}

// Lookup returns the glyph for r.
func Lookup(r rune) (Glyph, error) {
	g, ok := glyphs[r]
	if !ok {
		return Glyph{}, fmt.Errorf("%w %q", ErrUnknownGlyph, r)
	}
	return g, nil
}

// Validate returns an error for the first rune of s without a glyph.
func Validate(s string) error {
	for _, r := range s {
		if _, ok := glyphs[r]; !ok {
			return fmt.Errorf("%w %q", ErrUnknownGlyph, r)
		}
	}
	return nil
}

// Runes returns every rune the font covers, in table order.
func Runes() []rune {
	return append([]rune(nil), order...)
}

// order lists the covered runes for callers that want a stable sequence.
var order = []rune("0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ .,'\"!?")

var glyphs = map[rune]Glyph{
	'0': {0b01110, 0b10001, 0b10011, 0b10101, 0b11001, 0b10001, 0b01110, 0b00000},
	'1': {0b00100, 0b01100, 0b00100, 0b00100, 0b00100, 0b00100, 0b11111, 0b00000},
	'2': {0b01110, 0b10001, 0b00001, 0b00110, 0b01000, 0b10001, 0b11111, 0b00000},
	'3': {0b01110, 0b10001, 0b00001, 0b00110, 0b00001, 0b10001, 0b01110, 0b00000},
	'4': {0b00010, 0b00110, 0b01010, 0b10010, 0b11111, 0b00010, 0b00010, 0b00000},
	'5': {0b11111, 0b10000, 0b10000, 0b11110, 0b00001, 0b10001, 0b01110, 0b00000},
	'6': {0b00110, 0b01000, 0b10000, 0b11110, 0b10001, 0b10001, 0b01110, 0b00000},
	'7': {0b11111, 0b10001, 0b00001, 0b00010, 0b00100, 0b00100, 0b00100, 0b00000},
	'8': {0b01110, 0b10001, 0b10001, 0b01110, 0b10001, 0b10001, 0b01110, 0b00000},
	'9': {0b01110, 0b10001, 0b10001, 0b01111, 0b00001, 0b00010, 0b01100, 0b00000},

	'a': {0b00000, 0b00000, 0b01110, 0b00001, 0b01111, 0b10001, 0b01111, 0b00000},
	'b': {0b10000, 0b10000, 0b10110, 0b11001, 0b10001, 0b10001, 0b11110, 0b00000},
	'c': {0b00000, 0b00000, 0b01110, 0b10001, 0b10000, 0b10001, 0b01110, 0b00000},
	'd': {0b00001, 0b00001, 0b01101, 0b10011, 0b10001, 0b10001, 0b01111, 0b00000},
	'e': {0b00000, 0b00000, 0b01110, 0b10001, 0b11111, 0b10000, 0b01111, 0b00000},
	'f': {0b00111, 0b01000, 0b11111, 0b01000, 0b01000, 0b01000, 0b01000, 0b00000},
	'g': {0b00000, 0b00000, 0b01111, 0b10001, 0b10001, 0b01111, 0b00001, 0b11110},
	'h': {0b10000, 0b10000, 0b10110, 0b11001, 0b10001, 0b10001, 0b10001, 0b00000},
	'i': {0b00100, 0b00000, 0b11100, 0b00100, 0b00100, 0b00100, 0b11111, 0b00000},
	'j': {0b00001, 0b00000, 0b00111, 0b00001, 0b00001, 0b00001, 0b10001, 0b01110},
	'k': {0b10000, 0b10000, 0b10001, 0b10010, 0b11100, 0b10010, 0b10001, 0b00000},
	'l': {0b11100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00011, 0b00000},
	'm': {0b00000, 0b00000, 0b11010, 0b10101, 0b10101, 0b10001, 0b10001, 0b00000},
	'n': {0b00000, 0b00000, 0b11110, 0b10001, 0b10001, 0b10001, 0b10001, 0b00000},
	'o': {0b00000, 0b00000, 0b01110, 0b10001, 0b10001, 0b10001, 0b01110, 0b00000},
	'p': {0b00000, 0b00000, 0b10110, 0b11001, 0b10001, 0b11110, 0b10000, 0b10000},
	'q': {0b00000, 0b00000, 0b01101, 0b10011, 0b10001, 0b01111, 0b00001, 0b00001},
	'r': {0b00000, 0b00000, 0b10110, 0b11001, 0b10000, 0b10000, 0b10000, 0b00000},
	's': {0b00000, 0b00000, 0b01111, 0b10000, 0b01110, 0b00001, 0b11110, 0b00000},
	't': {0b00100, 0b00100, 0b11111, 0b00100, 0b00100, 0b00100, 0b00011, 0b00000},
	'u': {0b00000, 0b00000, 0b10001, 0b10001, 0b10001, 0b10001, 0b01111, 0b00000},
	'v': {0b00000, 0b00000, 0b10001, 0b10001, 0b10001, 0b01010, 0b00100, 0b00000},
	'w': {0b00000, 0b00000, 0b10001, 0b10001, 0b10101, 0b10101, 0b01111, 0b00000},
	'x': {0b00000, 0b00000, 0b10001, 0b01010, 0b00100, 0b01010, 0b10001, 0b00000},
	'y': {0b00000, 0b00000, 0b10001, 0b10001, 0b10001, 0b01111, 0b00001, 0b11110},
	'z': {0b00000, 0b00000, 0b11111, 0b00010, 0b00100, 0b01000, 0b11111, 0b00000},

	'A': {0b01110, 0b10001, 0b10001, 0b11111, 0b10001, 0b10001, 0b10001, 0b00000},
	'B': {0b11110, 0b10001, 0b10001, 0b11110, 0b10001, 0b10001, 0b11110, 0b00000},
	'C': {0b01110, 0b10001, 0b10000, 0b10000, 0b10000, 0b10001, 0b01110, 0b00000},
	'D': {0b11110, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b11110, 0b00000},
	'E': {0b11111, 0b10000, 0b10000, 0b11100, 0b10000, 0b10000, 0b11111, 0b00000},
	'F': {0b11111, 0b10000, 0b10000, 0b11100, 0b10000, 0b10000, 0b10000, 0b00000},
	'G': {0b01110, 0b10001, 0b10000, 0b10011, 0b10001, 0b10001, 0b01110, 0b00000},
	'H': {0b10001, 0b10001, 0b10001, 0b11111, 0b10001, 0b10001, 0b10001, 0b00000},
	'I': {0b11111, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b11111, 0b00000},
	'J': {0b00001, 0b00001, 0b00001, 0b00001, 0b00001, 0b10001, 0b01110, 0b00000},
	'K': {0b10001, 0b10010, 0b10100, 0b11000, 0b10100, 0b10010, 0b10001, 0b00000},
	'L': {0b10000, 0b10000, 0b10000, 0b10000, 0b10000, 0b10000, 0b11111, 0b00000},
	'M': {0b10001, 0b11011, 0b10101, 0b10101, 0b10001, 0b10001, 0b10001, 0b00000},
	'N': {0b10001, 0b11001, 0b10101, 0b10011, 0b10001, 0b10001, 0b10001, 0b00000},
	'O': {0b01110, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b01110, 0b00000},
	'P': {0b11110, 0b10001, 0b10001, 0b11110, 0b10000, 0b10000, 0b10000, 0b00000},
	'Q': {0b01110, 0b10001, 0b10001, 0b10001, 0b10001, 0b10010, 0b01101, 0b00000},
	'R': {0b11110, 0b10001, 0b10001, 0b11110, 0b10001, 0b10001, 0b10001, 0b00000},
	'S': {0b01110, 0b10001, 0b10000, 0b01110, 0b00001, 0b10001, 0b01110, 0b00000},
	'T': {0b11111, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00000},
	'U': {0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b10001, 0b01110, 0b00000},
	'V': {0b10001, 0b10001, 0b10001, 0b10001, 0b01010, 0b01010, 0b00100, 0b00000},
	'W': {0b10001, 0b10001, 0b10001, 0b10101, 0b10101, 0b11011, 0b10001, 0b00000},
	'X': {0b10001, 0b10001, 0b01010, 0b00100, 0b01010, 0b10001, 0b10001, 0b00000},
	'Y': {0b10001, 0b10001, 0b01010, 0b00100, 0b00100, 0b00100, 0b00100, 0b00000},
	'Z': {0b11111, 0b00001, 0b00010, 0b00100, 0b01000, 0b10000, 0b11111, 0b00000},

	' ': {0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b00000},
	'.': {0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b00100, 0b00100, 0b00000},
	',': {0b00000, 0b00000, 0b00000, 0b00000, 0b00000, 0b00100, 0b00100, 0b01000},

	'\'': {0b00100, 0b00100, 0b00100, 0b00000, 0b00000, 0b00000, 0b00000, 0b00000},

	'"': {0b01010, 0b01010, 0b01010, 0b00000, 0b00000, 0b00000, 0b00000, 0b00000},
	'!': {0b00100, 0b00100, 0b00100, 0b00100, 0b00100, 0b00000, 0b00100, 0b00000},
	'?': {0b01110, 0b10001, 0b00001, 0b00010, 0b00100, 0b00000, 0b00100, 0b00000},
}
