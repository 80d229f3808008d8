package nibble

import (
	"bytes"
	"image"
	"io"
	"testing"

	"github.com/bodgit/ansi16/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	m, err := Decode(bytes.NewReader([]byte{0x12, 0x34, 0x56, 0x78}), 4, 2)
	require.Nil(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 2), m.Bounds())
	assert.Equal(t, []uint8{1, 2, 3, 4, 5, 6, 7, 8}, m.Pix)
	assert.Equal(t, palette.At(5), m.At(0, 1))
}

func TestDecodeOddWidth(t *testing.T) {
	m, err := Decode(bytes.NewReader([]byte{0x9c, 0xf0, 0xab, 0x30}), 3, 2)
	require.Nil(t, err)
	assert.Equal(t, []uint8{9, 12, 15, 10, 11, 3}, m.Pix)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name          string
		data          []byte
		width, height int
		err           error
	}{
		{"not enough", []byte{0x00, 0x00, 0x00}, 4, 2, errNotEnough},
		{"empty", nil, 2, 1, errNotEnough},
		{"too much", []byte{0x00, 0x00, 0x00}, 2, 2, errTooMuch},
		{"zero width", []byte{0x00}, 0, 1, errBadSize},
		{"negative height", []byte{0x00}, 2, -1, errBadSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(bytes.NewReader(tt.data), tt.width, tt.height)
			assert.Equal(t, tt.err, err)
		})
	}
}

func TestRoundTripPaletteImage(t *testing.T) {
	src := image.NewPaletted(image.Rect(0, 0, 5, 3), palette.Palette())
	for i := range src.Pix {
		src.Pix[i] = uint8(i % palette.Size)
	}

	m, err := Decode(bytes.NewReader(Pack(src)), 5, 3)
	require.Nil(t, err)
	assert.Equal(t, src.Pix, m.Pix)
}

// stutterReader returns (0, nil) before every read of the underlying reader
type stutterReader struct {
	r       io.Reader
	stalled bool
}

func (s *stutterReader) Read(p []byte) (int, error) {
	if !s.stalled {
		s.stalled = true
		return 0, nil
	}
	s.stalled = false
	return s.r.Read(p)
}

func TestDecodeEmptyReads(t *testing.T) {
	m, err := Decode(&stutterReader{r: bytes.NewReader([]byte{0x12, 0x30, 0x45, 0x60})}, 3, 2)
	require.Nil(t, err)
	assert.Equal(t, []uint8{1, 2, 3, 4, 5, 6}, m.Pix)

	_, err = Decode(&stutterReader{r: bytes.NewReader([]byte{0x12, 0x30, 0x45, 0x60, 0x78})}, 3, 2)
	assert.Equal(t, errTooMuch, err)

	_, err = Decode(&stutterReader{r: bytes.NewReader([]byte{0x12, 0x30, 0x45})}, 3, 2)
	assert.Equal(t, errNotEnough, err)
}
