package ansi16

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"reflect"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Source decodes an image
type Source interface {
	Decode(io.Reader) (image.Image, error)
}

// SourceFunc is an adapter to allow the use of an ordinary function as a
// Source
type SourceFunc func(io.Reader) (image.Image, error)

// Decode calls f(r)
func (f SourceFunc) Decode(r io.Reader) (image.Image, error) {
	return f(r)
}

func decodeImage(r io.Reader) (image.Image, error) {
	m, _, err := image.Decode(r)
	return m, err
}

// ImageSource decodes any format registered with the image package, which
// includes GIF, JPEG, PNG, BMP, TIFF and WebP
var ImageSource Source = SourceFunc(decodeImage)

// Scaler resizes an image to exactly the given dimensions. String identifies
// the resizing method; scalers that can produce different output must return
// different strings as it forms part of the cache key.
type Scaler interface {
	Scale(m image.Image, width, height int) *image.NRGBA
	String() string
}

// DrawScaler is a Scaler using an interpolator from golang.org/x/image/draw.
// The zero value uses Catmull-Rom.
type DrawScaler struct {
	Interpolator draw.Interpolator
}

// Scale implements the Scaler interface
func (s DrawScaler) Scale(m image.Image, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	s.interpolator().Scale(dst, dst.Bounds(), m, m.Bounds(), draw.Src, nil)
	return dst
}

func (s DrawScaler) interpolator() draw.Interpolator {
	if s.Interpolator == nil {
		return draw.CatmullRom
	}
	return s.Interpolator
}

// String returns the name of the interpolator as accepted by Interpolator.
// Any other interpolator is identified by its Go representation.
func (s DrawScaler) String() string {
	i := s.interpolator()
	if reflect.TypeOf(i).Comparable() {
		for name, known := range interpolators {
			if known == i {
				return name
			}
		}
	}
	return fmt.Sprintf("%#v", i)
}

var interpolators = map[string]draw.Interpolator{
	"nearest":        draw.NearestNeighbor,
	"approxbilinear": draw.ApproxBiLinear,
	"bilinear":       draw.BiLinear,
	"catmullrom":     draw.CatmullRom,
}

// Interpolator returns the named interpolator, one of "nearest",
// "approxbilinear", "bilinear" or "catmullrom"
func Interpolator(name string) (draw.Interpolator, error) {
	i, ok := interpolators[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("ansi16: unknown interpolator %q", name)
	}
	return i, nil
}

// flatten returns a copy of m with the origin at (0, 0) and alpha discarded,
// keeping the unpremultiplied color of each pixel
func flatten(m image.Image) *image.NRGBA {
	b := m.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			c.A = 0xff
			dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, c)
		}
	}
	return dst
}
