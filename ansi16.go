/*
Package ansi16 is a library for converting images into packed 4-bit blobs
indexed by the 16 color ANSI terminal palette, suitable for small
framebuffers and terminal renderers.
*/
package ansi16

import (
	"errors"
	"runtime"

	"github.com/sirupsen/logrus"
)

// ErrInvalidSize is returned when the requested output dimensions are not
// both positive
var ErrInvalidSize = errors.New("ansi16: width and height must be positive")

// Converter converts images into packed 4-bit format
type Converter struct {
	source   Source
	scaler   Scaler
	cache    *Cache
	workers  int
	progress func(string)
	logger   logrus.FieldLogger
}

// Option configures a Converter
type Option func(*Converter)

// WithSource sets the Source used to decode input files
func WithSource(s Source) Option {
	return func(c *Converter) {
		c.source = s
	}
}

// WithScaler sets the Scaler used to resize decoded images
func WithScaler(s Scaler) Option {
	return func(c *Converter) {
		c.scaler = s
	}
}

// WithCache enables caching of conversions in the given Cache
func WithCache(cache *Cache) Option {
	return func(c *Converter) {
		c.cache = cache
	}
}

// WithWorkers sets the number of concurrent conversions used by ConvertDir
func WithWorkers(n int) Option {
	return func(c *Converter) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithProgress sets a function called with the output filename after each
// successful conversion
func WithProgress(f func(string)) Option {
	return func(c *Converter) {
		c.progress = f
	}
}

// New returns a Converter that logs to logger
func New(logger logrus.FieldLogger, options ...Option) *Converter {
	c := &Converter{
		source:  ImageSource,
		scaler:  DrawScaler{},
		workers: runtime.NumCPU(),
		logger:  logger,
	}
	for _, o := range options {
		o(c)
	}
	return c
}
