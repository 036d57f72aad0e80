package render

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"path/filepath"
	"time"

	"voronoi/canvas"
	"voronoi/palette"
	"voronoi/parallel"
	"voronoi/voronoi"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Out         string         `help:"Destination PPM file" default:"voronoi.ppm" type:"path"`
	Width       int            `help:"Image width in pixels" default:"800" group:"image"`
	Height      int            `help:"Image height in pixels" default:"600" group:"image"`
	Foci        int            `help:"Number of randomly placed foci" default:"20" group:"image"`
	Seed        uint64         `help:"Random seed, 0 picks one from the clock" default:"0" group:"image"`
	DotColor    string         `help:"Color of the focus dots, an SVG color name or #RRGGBB" default:"black" group:"image"`
	Palette     string         `help:"RIFF PAL file to draw focus colors from instead of random colors" type:"path" group:"palette"`
	SavePalette string         `help:"Write the focus colors to this RIFF PAL file" type:"path" group:"palette"`
	Dot         canvas.Color   `kong:"-"`
	Colors      []canvas.Color `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	switch {
	case c.Width < 1:
		return fmt.Errorf("invalid width: %d", c.Width)
	case c.Height < 1:
		return fmt.Errorf("invalid height: %d", c.Height)
	case c.Foci < 0:
		return fmt.Errorf("invalid number of foci: %d", c.Foci)
	}

	var ok bool
	if c.Dot, ok = canvas.Named(c.DotColor); !ok {
		return fmt.Errorf("unknown dot color %q, should be a color name or #RRGGBB", c.DotColor)
	}

	out, err := filepath.Abs(c.Out)
	if err != nil {
		return fmt.Errorf("invalid output path %q: %w", c.Out, err)
	}
	c.Out = out

	if c.Palette != "" {
		if c.Colors, err = palette.Load(c.Palette); err != nil {
			return err
		}
	}

	return nil
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>32|seed<<32))

	logger := slog.Default().With("width", c.Width, "height", c.Height)
	logger.Info("rendering", "foci", c.Foci, "seed", seed, "workers", pool.Workers)

	foci := voronoi.PaletteFoci(rng, c.Width, c.Height, c.Foci, c.Colors)
	for i, f := range foci {
		logger.Debug("focus", "index", i, "row", f.Point.Row, "col", f.Point.Col, "color", f.Color)
	}

	img := voronoi.New(c.Width, c.Height).
		WithFoci(foci...).
		WithDotColor(c.Dot)

	start := time.Now()
	var cnv *canvas.Canvas
	if pool.Workers == 1 {
		cnv = img.BuildCanvas()
	} else {
		cnv = img.BuildCanvasParallel(pool.Do, pool.Wait)
	}
	logger.Info("rendered", "elapsed", time.Since(start))

	if err := save(c.Out, func(w io.Writer) error {
		_, err := cnv.WriteTo(w)
		return err
	}); err != nil {
		return fmt.Errorf("could not save image: %w", err)
	}

	if c.SavePalette != "" {
		colors := make([]canvas.Color, len(foci))
		for i, f := range foci {
			colors[i] = f.Color
		}
		if err := save(c.SavePalette, func(w io.Writer) error {
			_, err := palette.WriteTo(w, colors)
			return err
		}); err != nil {
			return fmt.Errorf("could not save palette: %w", err)
		}
	}

	slog.Info("stats", "pixels", len(cnv.Pix), "foci", len(foci), "file", c.Out)
	return nil
}
