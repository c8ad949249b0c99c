package fastmath

import "github.com/cwbudde/algo-fastmath/dsp/fastmath/internal/pade"

// Cosh approximates cosh(x). Use inputs in [-5, 5] to bound the error.
func Cosh[F Float](x F) F {
	checkDomain(FuncCosh, x)
	return pade.Cosh(x)
}

// CoshBlock replaces values[i] with Cosh(values[i]) for every i < n.
func CoshBlock[F Float](values []F, n int) {
	transform(FuncCosh, values[:n], pade.Cosh[F])
}

// Sinh approximates sinh(x). Use inputs in [-5, 5] to bound the error.
func Sinh[F Float](x F) F {
	checkDomain(FuncSinh, x)
	return pade.Sinh(x)
}

// SinhBlock replaces values[i] with Sinh(values[i]) for every i < n.
func SinhBlock[F Float](values []F, n int) {
	transform(FuncSinh, values[:n], pade.Sinh[F])
}

// Tanh approximates tanh(x). Use inputs in [-5, 5] to bound the error.
func Tanh[F Float](x F) F {
	checkDomain(FuncTanh, x)
	return pade.Tanh(x)
}

// TanhBlock replaces values[i] with Tanh(values[i]) for every i < n.
func TanhBlock[F Float](values []F, n int) {
	transform(FuncTanh, values[:n], pade.Tanh[F])
}
