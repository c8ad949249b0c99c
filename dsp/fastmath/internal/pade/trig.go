package pade

import "golang.org/x/exp/constraints"

// The trigonometric tables are the hyperbolic ones with x² replaced by -x²,
// kept as separate literals so each kernel reads on its own.

const (
	cosP0 = 39251520
	cosP1 = 18471600
	cosP2 = 1075032
	cosP3 = 14615

	cosQ0 = 39251520
	cosQ1 = 1154160
	cosQ2 = 16632
	cosQ3 = 127
)

const (
	sinP0 = 11511339840
	sinP1 = 1640635920
	sinP2 = 52785432
	sinP3 = 479249

	sinQ0 = 11511339840
	sinQ1 = 277920720
	sinQ2 = 3177720
	sinQ3 = 18361
)

const (
	tanP0 = 135135
	tanP1 = 17325
	tanP2 = 378

	tanQ0 = 135135
	tanQ1 = 62370
	tanQ2 = 3150
	tanQ3 = 28
)

// Cos approximates cos(x) on [-π, π].
func Cos[F constraints.Float](x F) F {
	x2 := x * x
	num := cosP0 - x2*(cosP1-x2*(cosP2-x2*cosP3))
	den := cosQ0 + x2*(cosQ1+x2*(cosQ2+x2*cosQ3))
	return num / den
}

// Sin approximates sin(x) on [-π, π].
func Sin[F constraints.Float](x F) F {
	x2 := x * x
	num := x * (sinP0 - x2*(sinP1-x2*(sinP2-x2*sinP3)))
	den := sinQ0 + x2*(sinQ1+x2*(sinQ2+x2*sinQ3))
	return num / den
}

// Tan approximates tan(x) on [-π/2, π/2]. The denominator has its roots
// close to ±π/2, mirroring the poles of tan.
func Tan[F constraints.Float](x F) F {
	x2 := x * x
	num := x * (tanP0 - x2*(tanP1-x2*(tanP2-x2)))
	den := tanQ0 - x2*(tanQ1-x2*(tanQ2-x2*tanQ3))
	return num / den
}
