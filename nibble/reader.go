package nibble

import (
	"errors"
	"image"
	"io"

	"github.com/bodgit/ansi16/palette"
)

var (
	errNotEnough = errors.New("nibble: not enough image data")
	errTooMuch   = errors.New("nibble: too much image data")
	errBadSize   = errors.New("nibble: invalid image dimensions")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r io.Reader

	width, height int

	image *image.Paletted
}

func (d *decoder) decode() error {
	if d.width <= 0 || d.height <= 0 {
		return errBadSize
	}

	d.image = image.NewPaletted(image.Rect(0, 0, d.width, d.height), palette.Palette())

	row := make([]byte, RowBytes(d.width))
	for y := 0; y < d.height; y++ {
		if err := readFull(d.r, row); err != nil {
			if err != io.ErrUnexpectedEOF {
				return err
			}
			return errNotEnough
		}

		for x := 0; x < d.width; x++ {
			b := row[x>>1]
			if x&1 == 0 {
				d.image.SetColorIndex(x, y, upperNibble(b)>>4)
			} else {
				d.image.SetColorIndex(x, y, lowerNibble(b))
			}
		}
	}

	var tmp [1]byte
	switch _, err := io.ReadFull(d.r, tmp[:]); err {
	case io.EOF:
		return nil
	case nil:
		return errTooMuch
	default:
		return err
	}
}

// Decode reads a packed 4-bit image of the given dimensions from r and
// returns it as an image.Paletted using the ANSI palette. The padding nibble
// of odd width rows is discarded.
func Decode(r io.Reader, width, height int) (*image.Paletted, error) {
	d := decoder{
		r:      r,
		width:  width,
		height: height,
	}
	if err := d.decode(); err != nil {
		return nil, err
	}
	return d.image, nil
}
