/*
Package nibble implements an encoder and decoder for packed 4-bit ANSI
images.

The format has no header; the width and height must be known by the consumer.
Each pixel is mapped to the closest of the 16 ANSI palette colors and the
4-bit index is stored two pixels to a byte, the left pixel in the upper nibble
and the right pixel in the lower nibble. Rows are written top to bottom and
each row occupies (width + 1) / 2 bytes; for an odd width the lower nibble of
the last byte in each row is always 0.
*/
package nibble

// RowBytes returns the number of bytes used by a row of the given width
func RowBytes(width int) int {
	return (width + 1) >> 1
}

// Size returns the number of bytes used by an image of the given dimensions
func Size(width, height int) int {
	return height * RowBytes(width)
}

func upperNibble(b byte) byte {
	return b & 0xf0
}

func lowerNibble(b byte) byte {
	return b & 0x0f
}

func pack(left, right byte) byte {
	return left&0x0f<<4 | right&0x0f
}
