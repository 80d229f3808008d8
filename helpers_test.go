package ansi16

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/ansi16/palette"
	"github.com/stretchr/testify/require"
)

// writePNG writes a w x h image split vertically into the given palette
// colors, one band per index
func writePNG(t *testing.T, file string, w, h int, bands ...int) {
	t.Helper()

	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		c := color.NRGBAModel.Convert(palette.At(bands[x*len(bands)/w])).(color.NRGBA)
		for y := 0; y < h; y++ {
			m.SetNRGBA(x, y, c)
		}
	}

	require.Nil(t, os.MkdirAll(filepath.Dir(file), 0755))
	f, err := os.Create(file)
	require.Nil(t, err)
	defer f.Close()
	require.Nil(t, png.Encode(f, m))
}
