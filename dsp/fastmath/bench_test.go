package fastmath

import (
	"math"
	"testing"

	approx "github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-fastmath/internal/testutil"
)

var benchSizes = []struct {
	name string
	size int
}{
	{"16", 16},
	{"256", 256},
	{"4K", 4096},
	{"64K", 65536},
}

var benchSink float64

func BenchmarkBlock(b *testing.B) {
	for _, fn := range Funcs() {
		d := DomainOf(fn)
		block := Block64(fn)
		for _, tc := range benchSizes {
			b.Run(fn.String()+"/"+tc.name, func(b *testing.B) {
				src := testutil.DeterministicUniform[float64](1, d.Min, d.Max, tc.size)
				buf := make([]float64, tc.size)

				b.SetBytes(int64(tc.size * 8))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					copy(buf, src)
					block(buf, len(buf))
				}
			})
		}
	}
}

func BenchmarkBlockFloat32(b *testing.B) {
	for _, tc := range benchSizes {
		b.Run(tc.name, func(b *testing.B) {
			src := testutil.DeterministicUniform[float32](1, -5, 5, tc.size)
			buf := make([]float32, tc.size)

			b.SetBytes(int64(tc.size * 4))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				copy(buf, src)
				TanhBlock(buf, len(buf))
			}
		})
	}
}

// Reference loops over the standard library and algo-approx for the same
// inputs, to put the block numbers in perspective.
func BenchmarkExpRef(b *testing.B) {
	src := testutil.DeterministicUniform[float64](1, -6, 4, 4096)
	buf := make([]float64, len(src))

	b.Run("fastmath", func(b *testing.B) {
		b.SetBytes(int64(len(src) * 8))
		for i := 0; i < b.N; i++ {
			copy(buf, src)
			ExpBlock(buf, len(buf))
		}
	})

	b.Run("math", func(b *testing.B) {
		b.SetBytes(int64(len(src) * 8))
		for i := 0; i < b.N; i++ {
			for j, x := range src {
				buf[j] = math.Exp(x)
			}
		}
	})

	b.Run("algo-approx", func(b *testing.B) {
		b.SetBytes(int64(len(src) * 8))
		for i := 0; i < b.N; i++ {
			for j, x := range src {
				buf[j] = approx.FastExp(x)
			}
		}
	})
}

func BenchmarkLogNPlusOneRef(b *testing.B) {
	src := testutil.DeterministicUniform[float64](1, -0.8, 5, 4096)
	buf := make([]float64, len(src))

	b.Run("fastmath", func(b *testing.B) {
		b.SetBytes(int64(len(src) * 8))
		for i := 0; i < b.N; i++ {
			copy(buf, src)
			LogNPlusOneBlock(buf, len(buf))
		}
	})

	b.Run("math", func(b *testing.B) {
		b.SetBytes(int64(len(src) * 8))
		for i := 0; i < b.N; i++ {
			for j, x := range src {
				buf[j] = math.Log1p(x)
			}
		}
	})

	b.Run("algo-approx", func(b *testing.B) {
		b.SetBytes(int64(len(src) * 8))
		for i := 0; i < b.N; i++ {
			for j, x := range src {
				buf[j] = approx.FastLog(1 + x)
			}
		}
	})
}

func BenchmarkScalar(b *testing.B) {
	b.Run("Tanh", func(b *testing.B) {
		x := 0.0
		for i := 0; i < b.N; i++ {
			x = Tanh(x + 0.5)
		}
		benchSink = x
	})

	b.Run("math.Tanh", func(b *testing.B) {
		x := 0.0
		for i := 0; i < b.N; i++ {
			x = math.Tanh(x + 0.5)
		}
		benchSink = x
	})
}
