package voronoi

import (
	"voronoi/canvas"
)

// Source is the random number generator used to place foci.
// *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
	Float64() float64
}

func RandomPoint(src Source, width, height int) Point {
	return Point{
		Row: src.IntN(height),
		Col: src.IntN(width),
	}
}

func RandomColor(src Source) canvas.Color {
	r := src.Float64()
	g := src.Float64()
	b := src.Float64()
	return canvas.NewColor(r, g, b)
}

func RandomFocus(src Source, width, height int) Focus {
	return Focus{
		Point: RandomPoint(src, width, height),
		Color: RandomColor(src),
	}
}

func RandomFoci(src Source, width, height, n int) []Focus {
	foci := make([]Focus, 0, n)
	for range n {
		foci = append(foci, RandomFocus(src, width, height))
	}
	return foci
}

// PaletteFoci places n foci at random and colors each with a random entry of
// colors. With an empty palette it falls back to RandomFoci.
func PaletteFoci(src Source, width, height, n int, colors []canvas.Color) []Focus {
	if len(colors) == 0 {
		return RandomFoci(src, width, height, n)
	}

	foci := make([]Focus, 0, n)
	for range n {
		foci = append(foci, Focus{
			Point: RandomPoint(src, width, height),
			Color: colors[src.IntN(len(colors))],
		})
	}
	return foci
}
