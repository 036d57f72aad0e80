package canvas

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// PPM header, binary RGB with 8 bits per channel.
const ppmHeader = "P6\n%d %d\n255\n"

// PPM encodes the canvas as a binary (P6) portable pixmap.
func (c *Canvas) PPM() []byte {
	var buf bytes.Buffer
	buf.Grow(len(ppmHeader) + 3*len(c.Pix) + 16)
	// writes to a bytes.Buffer cannot fail
	_, _ = c.WriteTo(&buf)
	return buf.Bytes()
}

// WriteTo writes the PPM encoding of the canvas to w.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)

	n, err := fmt.Fprintf(bw, ppmHeader, c.Width(), c.Height())
	if err != nil {
		return int64(n), fmt.Errorf("could not write PPM header: %w", err)
	}
	count := int64(n)

	var triple [3]byte
	for p := range c.Pixels() {
		triple[0], triple[1], triple[2] = p.ByteTriple()
		n, err = bw.Write(triple[:])
		count += int64(n)
		if err != nil {
			return count, fmt.Errorf("could not write pixel data: %w", err)
		}
	}

	if err = bw.Flush(); err != nil {
		return count, fmt.Errorf("could not flush PPM data: %w", err)
	}
	return count, nil
}
