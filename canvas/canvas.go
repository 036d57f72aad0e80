package canvas

import (
	"fmt"
	"image"
	"image/color"
	"iter"
)

// Canvas is a row-major pixel buffer. Only the width is stored; the height
// is derived from the buffer length, so a Canvas must never have a zero width.
type Canvas struct {
	// Pix holds the pixels. The pixel at column x, row y is Pix[y*width+x].
	Pix   []Color
	width int
}

var _ image.Image = &Canvas{}

// New returns a black canvas. It panics if width < 1 or height < 0.
func New(width, height int) *Canvas {
	if width < 1 {
		panic(fmt.Sprintf("canvas: invalid width %d", width))
	}
	if height < 0 {
		panic(fmt.Sprintf("canvas: invalid height %d", height))
	}

	pix := make([]Color, width*height)
	for i := range pix {
		pix[i] = Black
	}

	return &Canvas{
		Pix:   pix,
		width: width,
	}
}

func (c *Canvas) Width() int {
	return c.width
}

func (c *Canvas) Height() int {
	return len(c.Pix) / c.width
}

func (c *Canvas) index(x, y int) int {
	return y*c.width + x
}

// PixelAt returns the pixel at column x, row y. Out of range coordinates
// panic; use Lookup for a checked read.
func (c *Canvas) PixelAt(x, y int) Color {
	if x < 0 || x >= c.width {
		panic(fmt.Sprintf("canvas: column %d out of range [0,%d)", x, c.width))
	}
	return c.Pix[c.index(x, y)]
}

func (c *Canvas) Lookup(x, y int) (Color, bool) {
	if x < 0 || x >= c.width || y < 0 || y >= c.Height() {
		return Color{}, false
	}
	return c.Pix[c.index(x, y)], true
}

func (c *Canvas) SetPixel(x, y int, col Color) {
	if x < 0 || x >= c.width {
		panic(fmt.Sprintf("canvas: column %d out of range [0,%d)", x, c.width))
	}
	c.Pix[c.index(x, y)] = col
}

// WritePixel sets one pixel and returns the canvas, so writes can be chained:
//
//	c = c.WritePixel(0, 0, Red).WritePixel(1, 0, Green)
func (c *Canvas) WritePixel(x, y int, col Color) *Canvas {
	c.SetPixel(x, y, col)
	return c
}

// Pixels iterates over all pixels in row-major order.
func (c *Canvas) Pixels() iter.Seq[Color] {
	return func(yield func(Color) bool) {
		for _, p := range c.Pix {
			if !yield(p) {
				return
			}
		}
	}
}

// PixelsMut is Pixels with pointers into the buffer.
func (c *Canvas) PixelsMut() iter.Seq[*Color] {
	return func(yield func(*Color) bool) {
		for i := range c.Pix {
			if !yield(&c.Pix[i]) {
				return
			}
		}
	}
}

// EnumeratePixelsMut returns a cursor over every pixel together with its
// row and column.
func (c *Canvas) EnumeratePixelsMut() *Cursor {
	return newCursor(c.Pix, c.width, 0)
}

// Rows returns a cursor restricted to rows [r0, r1). Cursors over disjoint
// row ranges never touch the same pixel.
func (c *Canvas) Rows(r0, r1 int) *Cursor {
	h := c.Height()
	r0 = max(0, min(r0, h))
	r1 = max(r0, min(r1, h))
	return newCursor(c.Pix[r0*c.width:r1*c.width], c.width, r0)
}

// Enumerate is the range-over-func form of EnumeratePixelsMut.
func (c *Canvas) Enumerate() iter.Seq2[image.Point, *Color] {
	return func(yield func(image.Point, *Color) bool) {
		cur := c.EnumeratePixelsMut()
		for cur.Next() {
			if !yield(image.Pt(cur.Col(), cur.Row()), cur.Pixel()) {
				return
			}
		}
	}
}

func (c *Canvas) ColorModel() color.Model {
	return ColorModel
}

func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.Height())
}

func (c *Canvas) At(x, y int) color.Color {
	col, ok := c.Lookup(x, y)
	if !ok {
		return Color{}
	}
	return col
}
