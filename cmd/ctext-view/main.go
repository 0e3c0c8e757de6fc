//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"ctext/internal/app"
	"ctext/internal/texture"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	if err := cfg.Parse(flag.CommandLine, os.Args[1:], false); err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if cfg.Verbose {
		texture.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	_, seed := cfg.RNG()
	viewer := app.NewViewer(cfg.TextureConfig(), seed, cfg.Scale, cfg.Output)
	w, h := viewer.Layout(0, 0)

	ebiten.SetWindowTitle("ctext")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
