package voronoi

import (
	"voronoi/canvas"
	"voronoi/parallel"
)

// DotRadius is the distance from a focus within which pixels are painted with
// the dot color instead of the cell color.
const DotRadius = 4.0

// Image describes a Voronoi diagram to be rendered once.
type Image struct {
	width    int
	height   int
	foci     []Focus
	dotColor canvas.Color
}

func New(width, height int) *Image {
	return &Image{
		width:    width,
		height:   height,
		dotColor: canvas.Black,
	}
}

// WithFoci appends foci. Their order only matters for exact ties.
func (v *Image) WithFoci(foci ...Focus) *Image {
	v.foci = append(v.foci, foci...)
	return v
}

func (v *Image) WithDotColor(c canvas.Color) *Image {
	v.dotColor = c
	return v
}

func (v *Image) Width() int {
	return v.width
}

func (v *Image) Height() int {
	return v.height
}

func (v *Image) Foci() []Focus {
	return v.foci
}

// NearestFocus returns the focus closest to (row, col) and its distance. On
// equal distances the focus added first wins. ok is false only if there are
// no foci.
func (v *Image) NearestFocus(row, col int) (f Focus, dist float64, ok bool) {
	return nearest(v.foci, Point{Row: row, Col: col})
}

func (v *Image) paint(cur *canvas.Cursor) {
	for cur.Next() {
		f, d, ok := v.NearestFocus(cur.Row(), cur.Col())
		if !ok {
			continue
		}
		if d <= DotRadius {
			*cur.Pixel() = v.dotColor
		} else {
			*cur.Pixel() = f.Color
		}
	}
}

// BuildCanvas renders the diagram by a brute force scan of every focus for
// every pixel. Without foci the canvas stays black.
func (v *Image) BuildCanvas() *canvas.Canvas {
	c := canvas.New(v.width, v.height)
	v.paint(c.EnumeratePixelsMut())
	return c
}

// BuildCanvasParallel renders the same image as BuildCanvas, handing bands of
// rows to worker. wait is called with done set, so a pool passed in here
// cannot be reused afterwards.
func (v *Image) BuildCanvasParallel(worker parallel.WorkerFunc, wait parallel.WaitFunc) *canvas.Canvas {
	c := canvas.New(v.width, v.height)

	band := max(1, v.height/(4*parallel.DefaultWorkers()))
	for r0 := 0; r0 < v.height; r0 += band {
		cur := c.Rows(r0, r0+band)
		worker(func() {
			v.paint(cur)
		})
	}

	wait(true)
	return c
}
