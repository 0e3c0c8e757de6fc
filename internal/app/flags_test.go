package app

import (
	"flag"
	"io"
	"testing"

	"ctext/internal/texture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("ctext", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	return cfg, cfg.Parse(fs, args, true)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := parse(t, "256", "128", "out.png")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 256, cfg.Width)
	assert.Equal(t, 128, cfg.Height)
	assert.Equal(t, "out.png", cfg.Output)
	assert.Equal(t, 1000, cfg.NumTexturePoints)
	assert.Equal(t, 1, cfg.NumNeighbors)
	assert.False(t, cfg.InvertColors)
	assert.Equal(t, texture.Add, cfg.DistOp)
	assert.Equal(t, texture.Wrapped, cfg.Metric)
	assert.Equal(t, 1, cfg.Scale)
}

func TestParseShortAndLongFlags(t *testing.T) {
	cfg, err := parse(t, "-n", "50", "512", "--num-neighbors", "3", "512", "-i", "out.bmp", "-d", "divide", "--metric", "planar", "-s", "99")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 50, cfg.NumTexturePoints)
	assert.Equal(t, 3, cfg.NumNeighbors)
	assert.True(t, cfg.InvertColors)
	assert.Equal(t, texture.Divide, cfg.DistOp)
	assert.Equal(t, texture.Planar, cfg.Metric)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, "out.bmp", cfg.Output)

	tcfg := cfg.TextureConfig()
	assert.Equal(t, 512, tcfg.Dimensions.W)
	assert.Equal(t, 3, tcfg.NumNeighbors)
	assert.True(t, tcfg.InvertColors)
}

func TestParseErrors(t *testing.T) {
	cases := [][]string{
		{"256", "256"},
		{"256", "256", "a.png", "b.png"},
		{"wide", "256", "a.png"},
		{"256", "256", "a.png", "-d", "modulo"},
		{"256", "256", "a.png", "-unknown"},
	}
	for _, args := range cases {
		_, err := parse(t, args...)
		assert.Error(t, err, "%v", args)
	}
}

func TestParseOptionalOutput(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ctext-view", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	require.NoError(t, cfg.Parse(fs, []string{"300", "200"}, false))
	assert.Empty(t, cfg.Output)
	assert.Equal(t, 300, cfg.Width)
}

func TestValidateRanges(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"width too small", []string{"127", "256", "a.png"}},
		{"height too large", []string{"256", "4097", "a.png"}},
		{"no texture points", []string{"256", "256", "a.png", "-n", "0"}},
		{"too many texture points", []string{"256", "256", "a.png", "-n", "1000001"}},
		{"no neighbors", []string{"256", "256", "a.png", "-p", "0"}},
		{"scale", []string{"256", "256", "a.png", "--scale", "0"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := parse(t, tc.args...)
			require.NoError(t, err)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg, err := parse(t, "4096", "128", "a.png", "-n", "1000000", "-p", "1000000")
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
}

func TestRNGSeed(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = 12
	a, seed := cfg.RNG()
	assert.Equal(t, int64(12), seed)
	b, _ := cfg.RNG()
	assert.Equal(t, a.IntN(1000), b.IntN(1000))

	cfg.Seed = 0
	_, seed = cfg.RNG()
	assert.NotZero(t, seed)
}
