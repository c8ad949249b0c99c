package pade

import "golang.org/x/exp/constraints"

// exp: [4/4], evaluated directly in x.
const (
	expC0 = 1680
	expC1 = 840
	expC2 = 180
	expC3 = 20
)

// log(1+x): [5/5], evaluated directly in x.
const (
	logP1 = 7560
	logP2 = 15120
	logP3 = 9870
	logP4 = 2310
	logP5 = 137

	logQ0 = 7560
	logQ1 = 18900
	logQ2 = 16800
	logQ3 = 6300
	logQ4 = 900
	logQ5 = 30
)

// Exp approximates exp(x) on [-6, 4]. The denominator is the numerator
// evaluated at -x.
func Exp[F constraints.Float](x F) F {
	num := expC0 + x*(expC1+x*(expC2+x*(expC3+x)))
	den := expC0 + x*(-expC1+x*(expC2+x*(-expC3+x)))
	return num / den
}

// LogNPlusOne approximates ln(1+x) on [-0.8, 5].
func LogNPlusOne[F constraints.Float](x F) F {
	num := x * (logP1 + x*(logP2+x*(logP3+x*(logP4+x*logP5))))
	den := logQ0 + x*(logQ1+x*(logQ2+x*(logQ3+x*(logQ4+x*logQ5))))
	return num / den
}
