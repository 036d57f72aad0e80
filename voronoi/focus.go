package voronoi

import (
	"math"

	"voronoi/canvas"
)

// Point is a grid position. Coordinates are never negative.
type Point struct {
	Row int
	Col int
}

// Focus is a Voronoi site: a point and the color of its cell.
type Focus struct {
	Point Point
	Color canvas.Color
}

func NewFocus(row, col int, c canvas.Color) Focus {
	return Focus{
		Point: Point{Row: row, Col: col},
		Color: c,
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// Distance is the Euclidean distance between two grid points.
func Distance(p1, p2 Point) float64 {
	dc := float64(absDiff(p1.Col, p2.Col))
	dr := float64(absDiff(p1.Row, p2.Row))
	return math.Sqrt(dc*dc + dr*dr)
}

// nearest scans foci in order and keeps the first one at the smallest
// distance.
func nearest(foci []Focus, at Point) (Focus, float64, bool) {
	var (
		best     Focus
		bestDist float64
		found    bool
	)

	for _, f := range foci {
		d := Distance(f.Point, at)
		if !found || d < bestDist {
			best, bestDist, found = f, d, true
		}
	}

	return best, bestDist, found
}
