/*
Package palette implements the fixed 16 color ANSI terminal palette and
nearest color matching against it.

The position of each color is significant; it is the 4-bit index written by
the nibble encoder, so the table must never be reordered.
*/
package palette

import (
	"image/color"
	"math"
)

// Size is the number of colors in the palette
const Size = 16

// RGB is an opaque 24-bit color. It implements the color.Color interface.
type RGB struct {
	R, G, B uint8
}

// RGBA returns the alpha-premultiplied color, which is always fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

var ansi = [Size]RGB{
	{0, 0, 0}, {188, 0, 0}, {0, 237, 0}, {194, 212, 0},
	{0, 0, 232}, {189, 0, 199}, {0, 220, 194}, {220, 218, 221},
	{117, 117, 117}, {223, 0, 0}, {0, 255, 0}, {246, 255, 3},
	{84, 71, 251}, {239, 0, 253}, {13, 255, 248}, {255, 255, 255},
}

// At returns the color at index i, which must be in the range [0, Size)
func At(i int) RGB {
	return ansi[i]
}

// Colors returns a copy of the whole table
func Colors() [Size]RGB {
	return ansi
}

// Palette returns the table as a color.Palette, suitable for an
// image.Paletted. Each call returns a new slice.
func Palette() color.Palette {
	p := make(color.Palette, Size)
	for i, c := range ansi {
		p[i] = c
	}
	return p
}

func clamp(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 0xff:
		return 0xff
	default:
		return v
	}
}

// Distance returns the squared Euclidean distance between the color at index
// i and the given components
func Distance(i int, r, g, b int) int {
	c := ansi[i]
	dr := clamp(r) - int(c.R)
	dg := clamp(g) - int(c.G)
	db := clamp(b) - int(c.B)
	return dr*dr + dg*dg + db*db
}

// Nearest returns the index of the palette color closest to the given
// components. Components outside of [0, 255] are clamped. When two colors are
// equally close the lower index wins.
func Nearest(r, g, b int) uint8 {
	best, least := 0, math.MaxInt32
	for i := range ansi {
		if d := Distance(i, r, g, b); d < least {
			best, least = i, d
		}
	}
	return uint8(best)
}

// Index returns the index of the palette color closest to c, ignoring alpha
func Index(c color.Color) uint8 {
	if p, ok := c.(RGB); ok {
		return Nearest(int(p.R), int(p.G), int(p.B))
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Nearest(int(n.R), int(n.G), int(n.B))
}

func toRGB(c color.Color) color.Color {
	return ansi[Index(c)]
}

// Model converts any color to the closest palette color
var Model = color.ModelFunc(toRGB)
