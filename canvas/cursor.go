package canvas

// Cursor walks a pixel buffer in row-major order, tracking the row and
// column of the current pixel. It is single-pass.
//
//	cur := c.EnumeratePixelsMut()
//	for cur.Next() {
//		*cur.Pixel() = pick(cur.Row(), cur.Col())
//	}
type Cursor struct {
	cells []Color
	width int
	pos   int // index of the next cell to visit
	row   int
	col   int
}

func newCursor(cells []Color, width, firstRow int) *Cursor {
	return &Cursor{
		cells: cells,
		width: width,
		row:   firstRow,
		col:   -1,
	}
}

// Next advances to the next pixel and reports whether there was one.
func (c *Cursor) Next() bool {
	if c.pos >= len(c.cells) {
		return false
	}

	if c.pos > 0 {
		c.col++
		if c.col >= c.width {
			c.col = 0
			c.row++
		}
	} else {
		c.col = 0
	}
	c.pos++

	return true
}

func (c *Cursor) Row() int {
	return c.row
}

func (c *Cursor) Col() int {
	return c.col
}

// Pixel points at the current pixel. It must only be called after Next
// returned true.
func (c *Cursor) Pixel() *Color {
	return &c.cells[c.pos-1]
}

// Remaining is the number of pixels Next has yet to visit.
func (c *Cursor) Remaining() int {
	return len(c.cells) - c.pos
}
