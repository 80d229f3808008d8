package ansi16

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"image"
	"io/ioutil"

	"github.com/bodgit/ansi16/nibble"
	"github.com/sirupsen/logrus"
)

// Job describes a single conversion
type Job struct {
	Input  string
	Width  int
	Height int
	Output string
}

func (c *Converter) checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidSize
	}

	if width%2 != 0 {
		c.logger.WithField("width", width).Warn("Width should be even for 4-bit packing, last pixel of each row will be padded")
	}

	return nil
}

func (c *Converter) pack(m image.Image, width, height int) []byte {
	return nibble.Pack(c.scaler.Scale(flatten(m), width, height))
}

// ConvertImage resizes m to the given dimensions and returns it in packed
// 4-bit format
func (c *Converter) ConvertImage(m image.Image, width, height int) ([]byte, error) {
	if err := c.checkSize(width, height); err != nil {
		return nil, err
	}

	return c.pack(m, width, height), nil
}

func (c *Converter) convert(input string, width, height int) ([]byte, error) {
	b, err := ioutil.ReadFile(input)
	if err != nil {
		return nil, err
	}

	var sha string
	if c.cache != nil {
		sha = fmt.Sprintf("%X", sha1.Sum(b))
		data, err := c.cache.Find(sha, c.scaler.String(), width, height)
		if err != nil {
			return nil, err
		}
		if data != nil {
			c.logger.WithFields(logrus.Fields{
				"file":   input,
				"sha1":   sha,
				"scaler": c.scaler.String(),
			}).Debug("Using cached conversion")
			return data, nil
		}
	}

	m, err := c.source.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}

	data := c.pack(m, width, height)

	if c.cache != nil {
		if err := c.cache.Store(sha, c.scaler.String(), width, height, data); err != nil {
			return nil, err
		}
	}

	return data, nil
}

// Convert decodes the image in input, resizes it to the given dimensions and
// writes it in packed 4-bit format to output, replacing any existing file
func (c *Converter) Convert(input string, width, height int, output string) error {
	if err := c.checkSize(width, height); err != nil {
		return err
	}

	c.logger.Infof("Converting %s to 4-bit (2 pixels per byte)...", input)

	data, err := c.convert(input, width, height)
	if err != nil {
		return err
	}

	if err := ioutil.WriteFile(output, data, 0644); err != nil {
		return err
	}

	c.logger.Infof("Done! Saved to %s", output)

	if c.progress != nil {
		c.progress(output)
	}

	return nil
}

// Run performs each job in turn, stopping at the first error
func (c *Converter) Run(jobs ...Job) error {
	for _, j := range jobs {
		if err := c.Convert(j.Input, j.Width, j.Height, j.Output); err != nil {
			return err
		}
	}
	return nil
}
