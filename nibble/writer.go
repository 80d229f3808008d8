package nibble

import (
	"bufio"
	"bytes"
	"image"
	"io"

	"github.com/bodgit/ansi16/palette"
)

type encoder struct {
	w *bufio.Writer
	m image.Image
}

// index returns the palette index of the pixel at the given offset from the
// top-left corner of the image
func (e *encoder) index(x, y int) byte {
	b := e.m.Bounds()
	x, y = x+b.Min.X, y+b.Min.Y

	switch m := e.m.(type) {
	case *image.NRGBA:
		i := m.PixOffset(x, y)
		return palette.Nearest(int(m.Pix[i+0]), int(m.Pix[i+1]), int(m.Pix[i+2]))
	case *image.RGBA:
		i := m.PixOffset(x, y)
		if m.Pix[i+3] == 0xff {
			return palette.Nearest(int(m.Pix[i+0]), int(m.Pix[i+1]), int(m.Pix[i+2]))
		}
	}

	return palette.Index(e.m.At(x, y))
}

func (e *encoder) encode() error {
	b := e.m.Bounds()
	width, height := b.Dx(), b.Dy()

	row := make([]byte, RowBytes(width))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x += 2 {
			left := e.index(x, y)

			// Missing right-hand pixel on odd widths is padded with black
			var right byte
			if x+1 < width {
				right = e.index(x+1, y)
			}

			row[x>>1] = pack(left, right)
		}
		if _, err := e.w.Write(row); err != nil {
			return err
		}
	}

	return e.w.Flush()
}

// Encode writes the Image m to w in packed 4-bit format. Every pixel is
// quantized to the closest ANSI palette color; alpha is ignored.
func Encode(w io.Writer, m image.Image) error {
	e := encoder{
		w: bufio.NewWriter(w),
		m: m,
	}
	return e.encode()
}

// Pack returns the Image m in packed 4-bit format
func Pack(m image.Image) []byte {
	b := m.Bounds()
	buf := bytes.NewBuffer(make([]byte, 0, Size(b.Dx(), b.Dy())))
	// Writing to a bytes.Buffer cannot fail
	_ = Encode(buf, m)
	return buf.Bytes()
}
