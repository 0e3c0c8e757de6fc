package app

import (
	"log/slog"
	"time"

	"ctext/internal/core"
	"ctext/internal/encode"
	"ctext/internal/texture"

	"github.com/pkg/errors"
)

// Run generates the texture described by cfg and writes it to cfg.Output.
// Encoding failures are returned as *encode.EncodingError.
func Run(cfg *Config, log *slog.Logger) error {
	if cfg.Output == "" {
		return errors.New("no output file given")
	}
	// Reject unknown extensions before generating.
	if _, err := encode.Lookup(cfg.Output); err != nil {
		return &encode.EncodingError{Path: cfg.Output, Err: err}
	}

	tcfg := cfg.TextureConfig()
	rng, seed := cfg.RNG()
	log.Info("generating texture", append(snapshotAttrs(tcfg.Parameters()), slog.Int64("seed", seed))...)

	start := time.Now()
	tex, err := texture.Generate(tcfg, rng)
	if err != nil {
		return errors.Wrap(err, "generate texture")
	}
	generated := time.Since(start)

	if err := encode.WriteGray(cfg.Output, tcfg.Dimensions.W, tcfg.Dimensions.H, tex.Gray(), cfg.Scale); err != nil {
		return err
	}
	log.Info("wrote texture",
		slog.String("path", cfg.Output),
		slog.Duration("generate", generated),
		slog.Duration("total", time.Since(start)))
	return nil
}

// snapshotAttrs flattens a parameter snapshot into one slog group per
// parameter group.
func snapshotAttrs(s core.ParameterSnapshot) []any {
	attrs := make([]any, 0, len(s.Groups))
	for _, g := range s.Groups {
		group := make([]any, 0, len(g.Params))
		for _, p := range g.Params {
			group = append(group, slog.String(p.Key, p.Value))
		}
		attrs = append(attrs, slog.Group(g.Name, group...))
	}
	return attrs
}
