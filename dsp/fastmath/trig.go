package fastmath

import "github.com/cwbudde/algo-fastmath/dsp/fastmath/internal/pade"

// Cos approximates cos(x). Use inputs in [-π, π] to bound the error.
func Cos[F Float](x F) F {
	checkDomain(FuncCos, x)
	return pade.Cos(x)
}

// CosBlock replaces values[i] with Cos(values[i]) for every i < n.
func CosBlock[F Float](values []F, n int) {
	transform(FuncCos, values[:n], pade.Cos[F])
}

// Sin approximates sin(x). Use inputs in [-π, π] to bound the error.
func Sin[F Float](x F) F {
	checkDomain(FuncSin, x)
	return pade.Sin(x)
}

// SinBlock replaces values[i] with Sin(values[i]) for every i < n.
func SinBlock[F Float](values []F, n int) {
	transform(FuncSin, values[:n], pade.Sin[F])
}

// Tan approximates tan(x). Use inputs in [-π/2, π/2] to bound the error;
// the result grows without bound towards the edges.
func Tan[F Float](x F) F {
	checkDomain(FuncTan, x)
	return pade.Tan(x)
}

// TanBlock replaces values[i] with Tan(values[i]) for every i < n.
func TanBlock[F Float](values []F, n int) {
	transform(FuncTan, values[:n], pade.Tan[F])
}
