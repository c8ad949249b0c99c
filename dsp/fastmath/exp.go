package fastmath

import "github.com/cwbudde/algo-fastmath/dsp/fastmath/internal/pade"

// Exp approximates exp(x). Use inputs in [-6, 4] to bound the error.
func Exp[F Float](x F) F {
	checkDomain(FuncExp, x)
	return pade.Exp(x)
}

// ExpBlock replaces values[i] with Exp(values[i]) for every i < n.
func ExpBlock[F Float](values []F, n int) {
	transform(FuncExp, values[:n], pade.Exp[F])
}

// LogNPlusOne approximates ln(x+1). Use inputs in [-0.8, 5] to bound the
// error.
func LogNPlusOne[F Float](x F) F {
	checkDomain(FuncLogNPlusOne, x)
	return pade.LogNPlusOne(x)
}

// LogNPlusOneBlock replaces values[i] with LogNPlusOne(values[i]) for every
// i < n.
func LogNPlusOneBlock[F Float](values []F, n int) {
	transform(FuncLogNPlusOne, values[:n], pade.LogNPlusOne[F])
}
