package fastmath

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

// Float is the set of precisions the approximations are instantiated for.
type Float interface {
	constraints.Float
}

// Func identifies one of the approximated functions.
type Func int

const (
	FuncCosh Func = iota
	FuncSinh
	FuncTanh
	FuncCos
	FuncSin
	FuncTan
	FuncExp
	FuncLogNPlusOne

	numFuncs
)

var funcNames = [numFuncs]string{
	FuncCosh:        "cosh",
	FuncSinh:        "sinh",
	FuncTanh:        "tanh",
	FuncCos:         "cos",
	FuncSin:         "sin",
	FuncTan:         "tan",
	FuncExp:         "exp",
	FuncLogNPlusOne: "logNPlusOne",
}

// String returns the function name.
func (f Func) String() string {
	if f < 0 || f >= numFuncs {
		return fmt.Sprintf("Func(%d)", int(f))
	}
	return funcNames[f]
}

// Funcs returns all approximated functions in declaration order.
func Funcs() []Func {
	out := make([]Func, numFuncs)
	for i := range out {
		out[i] = Func(i)
	}
	return out
}

// ParseFunc looks up a function by name, ignoring case. "log1p" is accepted
// for LogNPlusOne.
func ParseFunc(name string) (Func, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "log1p" {
		return FuncLogNPlusOne, true
	}
	for i, n := range funcNames {
		if strings.ToLower(n) == name {
			return Func(i), true
		}
	}
	return 0, false
}

// Domain is the documented input range of an approximation, inclusive.
type Domain struct {
	Min float64
	Max float64
}

var domains = [numFuncs]Domain{
	FuncCosh:        {-5, 5},
	FuncSinh:        {-5, 5},
	FuncTanh:        {-5, 5},
	FuncCos:         {-math.Pi, math.Pi},
	FuncSin:         {-math.Pi, math.Pi},
	FuncTan:         {-math.Pi / 2, math.Pi / 2},
	FuncExp:         {-6, 4},
	FuncLogNPlusOne: {-0.8, 5},
}

// DomainOf returns the documented domain of fn. Unknown functions return
// the zero Domain.
func DomainOf(fn Func) Domain {
	if fn < 0 || fn >= numFuncs {
		return Domain{}
	}
	return domains[fn]
}

// Contains reports whether x lies inside d. NaN is never contained.
func (d Domain) Contains(x float64) bool {
	return x >= d.Min && x <= d.Max
}

// Clamp limits x to d. NaN is returned unchanged.
func (d Domain) Clamp(x float64) float64 {
	if x < d.Min {
		return d.Min
	}
	if x > d.Max {
		return d.Max
	}
	return x
}

// Width returns Max - Min.
func (d Domain) Width() float64 {
	return d.Max - d.Min
}

func (d Domain) String() string {
	return fmt.Sprintf("[%g, %g]", d.Min, d.Max)
}

// Scalar64 returns the float64 scalar form of fn, or nil for unknown functions.
func Scalar64(fn Func) func(float64) float64 {
	return scalarOf[float64](fn)
}

// Scalar32 returns the float32 scalar form of fn, or nil for unknown functions.
func Scalar32(fn Func) func(float32) float32 {
	return scalarOf[float32](fn)
}

// Block64 returns the float64 block form of fn, or nil for unknown functions.
func Block64(fn Func) func([]float64, int) {
	return blockOf[float64](fn)
}

// Block32 returns the float32 block form of fn, or nil for unknown functions.
func Block32(fn Func) func([]float32, int) {
	return blockOf[float32](fn)
}

func scalarOf[F Float](fn Func) func(F) F {
	switch fn {
	case FuncCosh:
		return Cosh[F]
	case FuncSinh:
		return Sinh[F]
	case FuncTanh:
		return Tanh[F]
	case FuncCos:
		return Cos[F]
	case FuncSin:
		return Sin[F]
	case FuncTan:
		return Tan[F]
	case FuncExp:
		return Exp[F]
	case FuncLogNPlusOne:
		return LogNPlusOne[F]
	default:
		return nil
	}
}

func blockOf[F Float](fn Func) func([]F, int) {
	switch fn {
	case FuncCosh:
		return CoshBlock[F]
	case FuncSinh:
		return SinhBlock[F]
	case FuncTanh:
		return TanhBlock[F]
	case FuncCos:
		return CosBlock[F]
	case FuncSin:
		return SinBlock[F]
	case FuncTan:
		return TanBlock[F]
	case FuncExp:
		return ExpBlock[F]
	case FuncLogNPlusOne:
		return LogNPlusOneBlock[F]
	default:
		return nil
	}
}
