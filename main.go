package main

import (
	"log/slog"

	"voronoi/parallel"
	"voronoi/render"

	"github.com/alecthomas/kong"
)

type cli struct {
	Verbose bool `help:"Log every focus and file operation" short:"v"`
	Workers int  `help:"Render workers, 0 for one per CPU, 1 to render sequentially" default:"0"`

	Render render.CLICmd `cmd:"" default:"withargs" help:"Render a random Voronoi diagram to a binary PPM file"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("voronoi"),
		kong.Description("Voronoi diagram generator"),
		kong.UsageOnError(),
	)

	if c.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	pool := parallel.Start(c.Workers)
	if err := kctx.Run(pool); err != nil {
		slog.Error("render failed", "error", err)
		kctx.Exit(1)
	}
}
