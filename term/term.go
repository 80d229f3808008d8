/*
Package term renders packed ANSI images and the palette on a terminal using
the standard 16 color escape sequences. Palette index i maps directly onto
ANSI color i; indices 8 to 15 are the bright variants.
*/
package term

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/bodgit/ansi16/palette"
	"github.com/gookit/color"
	"github.com/lucasb-eyer/go-colorful"
)

// halfBlock draws the foreground in the top half of a cell and the
// background in the bottom half
const halfBlock = "▀"

// Fg returns the foreground color code for palette index i
func Fg(i uint8) color.Color {
	if i&0x08 != 0 {
		return color.FgDarkGray + color.Color(i&0x07)
	}
	return color.FgBlack + color.Color(i&0x07)
}

// Bg returns the background color code for palette index i
func Bg(i uint8) color.Color {
	if i&0x08 != 0 {
		return color.BgDarkGray + color.Color(i&0x07)
	}
	return color.BgBlack + color.Color(i&0x07)
}

// Render writes m to w, two pixel rows per line of text
func Render(w io.Writer, m *image.Paletted) error {
	b := m.Bounds()

	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		sb.Reset()
		for x := b.Min.X; x < b.Max.X; x++ {
			bg := color.BgDefault
			if y+1 < b.Max.Y {
				bg = Bg(m.ColorIndexAt(x, y+1))
			}
			sb.WriteString(color.New(Fg(m.ColorIndexAt(x, y)), bg).Sprint(halfBlock))
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}

	return nil
}

// PaletteTable writes one line per palette color to w showing the index, the
// component values, the hex triplet and a swatch
func PaletteTable(w io.Writer) error {
	for i, c := range palette.Colors() {
		cf, _ := colorful.MakeColor(c)
		if _, err := fmt.Fprintf(w, "%2d  %3d %3d %3d  %s  %s\n", i, c.R, c.G, c.B, cf.Hex(), color.New(Bg(uint8(i))).Sprint("    ")); err != nil {
			return err
		}
	}
	return nil
}
