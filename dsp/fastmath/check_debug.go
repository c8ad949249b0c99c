//go:build fastmathdebug

package fastmath

import "fmt"

// checkDomain compares at the precision of F, so a bound rounded to F
// (float32(math.Pi) > math.Pi) is still inside.
func checkDomain[F Float](fn Func, x F) {
	d := DomainOf(fn)
	if !(x >= F(d.Min) && x <= F(d.Max)) {
		panic(fmt.Sprintf("fastmath: %s(%g) outside domain %s", fn, float64(x), d))
	}
}

func checkBlock[F Float](fn Func, values []F) {
	for _, x := range values {
		checkDomain(fn, x)
	}
}
