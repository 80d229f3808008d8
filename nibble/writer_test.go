package nibble

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/bodgit/ansi16/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImage(r image.Rectangle, pixels ...color.Color) *image.NRGBA {
	m := image.NewNRGBA(r)
	for i, c := range pixels {
		m.Set(r.Min.X+i%r.Dx(), r.Min.Y+i/r.Dx(), c)
	}
	return m
}

func nearest(c color.NRGBA) byte {
	return palette.Nearest(int(c.R), int(c.G), int(c.B))
}

func TestEncode(t *testing.T) {
	p0 := color.NRGBA{200, 10, 10, 0xff}
	p1 := color.NRGBA{10, 10, 200, 0xff}
	p2 := color.NRGBA{130, 120, 110, 0xff}

	tests := []struct {
		name  string
		image image.Image
		want  []byte
	}{
		{
			"black and white",
			newImage(image.Rect(0, 0, 2, 1), color.Black, color.White),
			[]byte{0x0f},
		},
		{
			"all black",
			newImage(image.Rect(0, 0, 2, 2), color.Black, color.Black, color.Black, color.Black),
			[]byte{0x00, 0x00},
		},
		{
			"odd width",
			newImage(image.Rect(0, 0, 3, 1), p0, p1, p2),
			[]byte{nearest(p0)<<4 | nearest(p1), nearest(p2) << 4},
		},
		{
			"odd width multiple rows",
			newImage(image.Rect(0, 0, 1, 3), color.White, color.White, color.White),
			[]byte{0xf0, 0xf0, 0xf0},
		},
		{
			"offset origin",
			newImage(image.Rect(5, 7, 7, 8), palette.At(9), palette.At(12)),
			[]byte{0x9c},
		},
		{
			"rgba",
			func() image.Image {
				m := image.NewRGBA(image.Rect(0, 0, 4, 1))
				for x := 0; x < 4; x++ {
					m.Set(x, 0, palette.At(x+4))
				}
				return m
			}(),
			[]byte{0x45, 0x67},
		},
		{
			"paletted",
			func() image.Image {
				m := image.NewPaletted(image.Rect(0, 0, 2, 1), palette.Palette())
				m.SetColorIndex(0, 0, 13)
				m.SetColorIndex(1, 0, 14)
				return m
			}(),
			[]byte{0xde},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := new(bytes.Buffer)
			require.Nil(t, Encode(b, tt.image))
			assert.Equal(t, tt.want, b.Bytes())
			assert.Equal(t, tt.want, Pack(tt.image))
		})
	}
}

func TestEncodeLength(t *testing.T) {
	for w := 1; w <= 9; w++ {
		for h := 1; h <= 4; h++ {
			m := image.NewNRGBA(image.Rect(0, 0, w, h))
			assert.Len(t, Pack(m), h*((w+1)/2), "%dx%d", w, h)
			assert.Equal(t, h*((w+1)/2), Size(w, h))
		}
	}
}

func TestEncodeIdempotent(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 17, 9))
	for y := 0; y < 9; y++ {
		for x := 0; x < 17; x++ {
			m.Set(x, y, color.NRGBA{uint8(x * 15), uint8(y * 28), uint8(x * y), 0xff})
		}
	}
	assert.Equal(t, Pack(m), Pack(m))
}

func TestEncodeRowMajor(t *testing.T) {
	m := newImage(image.Rect(0, 0, 4, 2),
		palette.At(1), palette.At(2), palette.At(3), palette.At(4),
		palette.At(5), palette.At(6), palette.At(7), palette.At(8),
	)
	assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, Pack(m))
}

type errWriter struct{}

var errWrite = errors.New("write failed")

func (errWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestEncodeWriteError(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	assert.Equal(t, errWrite, Encode(errWriter{}, m))
}
