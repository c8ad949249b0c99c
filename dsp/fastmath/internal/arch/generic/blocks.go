// Package generic provides the pure Go block kernels. It is registered on
// every architecture and is the fallback when no SIMD entry applies.
package generic

import "github.com/cwbudde/algo-fastmath/dsp/fastmath/internal/pade"

// CoshBlock replaces every element of buf with its cosh approximation.
func CoshBlock[F float32 | float64](buf []F) {
	for i, x := range buf {
		buf[i] = pade.Cosh(x)
	}
}

// SinhBlock replaces every element of buf with its sinh approximation.
func SinhBlock[F float32 | float64](buf []F) {
	for i, x := range buf {
		buf[i] = pade.Sinh(x)
	}
}

// TanhBlock replaces every element of buf with its tanh approximation.
func TanhBlock[F float32 | float64](buf []F) {
	for i, x := range buf {
		buf[i] = pade.Tanh(x)
	}
}

// CosBlock replaces every element of buf with its cos approximation.
func CosBlock[F float32 | float64](buf []F) {
	for i, x := range buf {
		buf[i] = pade.Cos(x)
	}
}

// SinBlock replaces every element of buf with its sin approximation.
func SinBlock[F float32 | float64](buf []F) {
	for i, x := range buf {
		buf[i] = pade.Sin(x)
	}
}

// TanBlock replaces every element of buf with its tan approximation.
func TanBlock[F float32 | float64](buf []F) {
	for i, x := range buf {
		buf[i] = pade.Tan(x)
	}
}

// ExpBlock replaces every element of buf with its exp approximation.
func ExpBlock[F float32 | float64](buf []F) {
	for i, x := range buf {
		buf[i] = pade.Exp(x)
	}
}

// LogNPlusOneBlock replaces every element of buf with its ln(1+x) approximation.
func LogNPlusOneBlock[F float32 | float64](buf []F) {
	for i, x := range buf {
		buf[i] = pade.LogNPlusOne(x)
	}
}
