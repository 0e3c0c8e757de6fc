package texture

import (
	"fmt"
	"testing"

	"ctext/internal/core"
	pcore "ctext/pkg/core"
)

func benchmarkGenerate(b *testing.B, cfg Config) {
	b.Helper()
	for i := 0; i < b.N; i++ {
		if _, err := Generate(cfg, pcore.NewRNG(int64(i))); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerateDimension(b *testing.B) {
	for _, n := range []int{128, 256, 512} {
		cfg := DefaultConfig()
		cfg.Dimensions = core.Dimensions{W: n, H: n}
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) { benchmarkGenerate(b, cfg) })
	}
}

func BenchmarkGenerateNeighbors(b *testing.B) {
	for _, k := range []int{1, 10, 100} {
		cfg := DefaultConfig()
		cfg.NumTexturePoints = 10000
		cfg.NumNeighbors = k
		b.Run(fmt.Sprintf("k=%d", k), func(b *testing.B) { benchmarkGenerate(b, cfg) })
	}
}

func BenchmarkGenerateTexturePoints(b *testing.B) {
	for _, n := range []int{1, 100, 10000} {
		cfg := DefaultConfig()
		cfg.NumTexturePoints = n
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) { benchmarkGenerate(b, cfg) })
	}
}
