// Package pade holds the rational kernels shared by the public scalar forms
// and every registered block implementation.
//
// Each kernel is a Padé approximant evaluated in Horner form. Coefficients
// are untyped constants so they are converted at the caller's precision.
package pade

import "golang.org/x/exp/constraints"

// cosh: [6/6] in x, degree 3 in x².
const (
	coshP0 = 39251520
	coshP1 = 18471600
	coshP2 = 1075032
	coshP3 = 14615

	coshQ0 = 39251520
	coshQ1 = 1154160
	coshQ2 = 16632
	coshQ3 = 127
)

// sinh: [7/6] in x.
const (
	sinhP0 = 11511339840
	sinhP1 = 1640635920
	sinhP2 = 52785432
	sinhP3 = 479249

	sinhQ0 = 11511339840
	sinhQ1 = 277920720
	sinhQ2 = 3177720
	sinhQ3 = 18361
)

// tanh: [7/6] in x, the continued fraction of tanh truncated after 7 terms.
const (
	tanhP0 = 135135
	tanhP1 = 17325
	tanhP2 = 378

	tanhQ0 = 135135
	tanhQ1 = 62370
	tanhQ2 = 3150
	tanhQ3 = 28
)

// Cosh approximates cosh(x) on [-5, 5].
func Cosh[F constraints.Float](x F) F {
	x2 := x * x
	num := coshP0 + x2*(coshP1+x2*(coshP2+x2*coshP3))
	den := coshQ0 - x2*(coshQ1-x2*(coshQ2-x2*coshQ3))
	return num / den
}

// Sinh approximates sinh(x) on [-5, 5].
func Sinh[F constraints.Float](x F) F {
	x2 := x * x
	num := x * (sinhP0 + x2*(sinhP1+x2*(sinhP2+x2*sinhP3)))
	den := sinhQ0 - x2*(sinhQ1-x2*(sinhQ2-x2*sinhQ3))
	return num / den
}

// Tanh approximates tanh(x) on [-5, 5].
func Tanh[F constraints.Float](x F) F {
	x2 := x * x
	num := x * (tanhP0 + x2*(tanhP1+x2*(tanhP2+x2)))
	den := tanhQ0 + x2*(tanhQ1+x2*(tanhQ2+x2*tanhQ3))
	return num / den
}
