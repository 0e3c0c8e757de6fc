// Command ctext writes a cellular texture to an image file.
//
// Usage:
//
//	ctext [flags] width height output_file
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"ctext/internal/app"
	"ctext/internal/encode"
	"ctext/internal/texture"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := app.NewConfig()
	fs := flag.NewFlagSet("ctext", flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintln(out, "usage: ctext [flags] width height output_file")
		fmt.Fprintf(out, "width and height must be in [%d, %d]; supported formats: %v\n", app.MinSide, app.MaxSide, encode.Formats())
		fs.PrintDefaults()
	}
	cfg.Bind(fs)

	if err := cfg.Parse(fs, args, true); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintln(os.Stderr, "ctext:", err)
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "ctext:", err)
		return 2
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	texture.SetLogger(log)

	if err := app.Run(cfg, log); err != nil {
		fmt.Fprintln(os.Stderr, "ctext:", err)
		return 1
	}
	return 0
}
