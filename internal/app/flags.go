package app

import (
	"flag"
	"strconv"

	"ctext/internal/core"
	"ctext/internal/texture"
	pcore "ctext/pkg/core"

	"github.com/pkg/errors"
)

// Accepted ranges for command-line values.
const (
	MinSide  = 128
	MaxSide  = 4096
	MaxCount = 1_000_000
	MaxScale = 16
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width  int
	Height int
	Output string

	NumTexturePoints int
	NumNeighbors     int
	InvertColors     bool
	DistOp           texture.DistanceOperation
	Metric           texture.DistanceMetric

	Seed    int64
	Scale   int
	Verbose bool
}

// NewConfig returns a Config populated with the documented defaults.
func NewConfig() *Config {
	return &Config{
		NumTexturePoints: 1000,
		NumNeighbors:     1,
		DistOp:           texture.Add,
		Metric:           texture.Wrapped,
		Scale:            1,
	}
}

// Bind attaches the configuration to the provided FlagSet. Every option is
// registered under its short and long name.
func (c *Config) Bind(fs *flag.FlagSet) {
	for _, name := range []string{"n", "num-texture-points"} {
		fs.IntVar(&c.NumTexturePoints, name, c.NumTexturePoints, "number of texture points to scatter")
	}
	for _, name := range []string{"p", "num-neighbors"} {
		fs.IntVar(&c.NumNeighbors, name, c.NumNeighbors, "number of nearest texture points per pixel")
	}
	for _, name := range []string{"i", "invert-colors"} {
		fs.BoolVar(&c.InvertColors, name, c.InvertColors, "invert the output intensities")
	}
	for _, name := range []string{"d", "dist-op"} {
		fs.TextVar(&c.DistOp, name, c.DistOp, "distance operation: add, subtract, multiply or divide")
	}
	for _, name := range []string{"m", "metric"} {
		fs.TextVar(&c.Metric, name, c.Metric, "distance metric: wrapped or planar")
	}
	for _, name := range []string{"s", "seed"} {
		fs.Int64Var(&c.Seed, name, c.Seed, "random seed (0 picks one from the clock)")
	}
	fs.IntVar(&c.Scale, "scale", c.Scale, "integer upscale applied to the written image")
	for _, name := range []string{"v", "verbose"} {
		fs.BoolVar(&c.Verbose, name, c.Verbose, "log pipeline diagnostics")
	}
}

// Parse parses args with fs, allowing flags before, between and after the
// positional arguments "width height [output_file]". The output file is
// mandatory when outputRequired is set.
func (c *Config) Parse(fs *flag.FlagSet, args []string, outputRequired bool) error {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}

	want := 2
	if outputRequired {
		want = 3
	}
	if len(positional) < want || len(positional) > 3 {
		if outputRequired {
			return errors.Errorf("expected arguments: width height output_file, got %d", len(positional))
		}
		return errors.Errorf("expected arguments: width height [output_file], got %d", len(positional))
	}

	var err error
	if c.Width, err = parseSide("width", positional[0]); err != nil {
		return err
	}
	if c.Height, err = parseSide("height", positional[1]); err != nil {
		return err
	}
	if len(positional) == 3 {
		c.Output = positional[2]
	}
	return nil
}

func parseSide(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("invalid %s %q", name, s)
	}
	return v, nil
}

// Validate checks every value against its accepted range.
func (c *Config) Validate() error {
	if err := checkRange("width", c.Width, MinSide, MaxSide); err != nil {
		return err
	}
	if err := checkRange("height", c.Height, MinSide, MaxSide); err != nil {
		return err
	}
	if err := checkRange("num-texture-points", c.NumTexturePoints, 1, MaxCount); err != nil {
		return err
	}
	if err := checkRange("num-neighbors", c.NumNeighbors, 1, MaxCount); err != nil {
		return err
	}
	if err := checkRange("scale", c.Scale, 1, MaxScale); err != nil {
		return err
	}
	return c.TextureConfig().Validate()
}

func checkRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return errors.Errorf("%s must be in [%d, %d], got %d", name, lo, hi, v)
	}
	return nil
}

// TextureConfig converts the command-line values into a generator configuration.
func (c *Config) TextureConfig() texture.Config {
	return texture.Config{
		Dimensions:       core.Dimensions{W: c.Width, H: c.Height},
		InvertColors:     c.InvertColors,
		NumNeighbors:     c.NumNeighbors,
		NumTexturePoints: c.NumTexturePoints,
		DistOp:           c.DistOp,
		Metric:           c.Metric,
	}
}

// RNG returns the random source for this run and the seed it was built from.
func (c *Config) RNG() (*pcore.RNG, int64) {
	if c.Seed == 0 {
		return pcore.NewTimeRNG()
	}
	return pcore.NewRNG(c.Seed), c.Seed
}
