// Package accuracy measures how far the fastmath approximations deviate from
// the exact functions, by dense uniform sampling of their domains.
//
// Errors are reported both as absolute error and as scaled error,
// |f(x) - g(x)| / max(|g(x)|, 1), which is absolute near zero and relative
// for large results.
package accuracy

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fastmath/dsp/fastmath"
)

// Report summarizes the error of one approximation over a sampled range.
type Report struct {
	Name           string
	Range          fastmath.Domain
	Samples        int
	MaxAbsError    float64
	MaxScaledError float64
	RMSError       float64
	MeanError      float64
	WorstInput     float64
}

// Reference returns the exact float64 counterpart of fn, or nil.
func Reference(fn fastmath.Func) func(float64) float64 {
	switch fn {
	case fastmath.FuncCosh:
		return math.Cosh
	case fastmath.FuncSinh:
		return math.Sinh
	case fastmath.FuncTanh:
		return math.Tanh
	case fastmath.FuncCos:
		return math.Cos
	case fastmath.FuncSin:
		return math.Sin
	case fastmath.FuncTan:
		return math.Tan
	case fastmath.FuncExp:
		return math.Exp
	case fastmath.FuncLogNPlusOne:
		return math.Log1p
	default:
		return nil
	}
}

// Reference32 returns the exact float32 counterpart of fn, or nil.
func Reference32(fn fastmath.Func) func(float32) float32 {
	switch fn {
	case fastmath.FuncCosh:
		return math32.Cosh
	case fastmath.FuncSinh:
		return math32.Sinh
	case fastmath.FuncTanh:
		return math32.Tanh
	case fastmath.FuncCos:
		return math32.Cos
	case fastmath.FuncSin:
		return math32.Sin
	case fastmath.FuncTan:
		return math32.Tan
	case fastmath.FuncExp:
		return math32.Exp
	case fastmath.FuncLogNPlusOne:
		return math32.Log1p
	default:
		return nil
	}
}

// Analyze measures the float64 block form of fn against the math package.
// Unknown functions yield a Report with only Name set.
func Analyze(fn fastmath.Func, opts ...Option) Report {
	ref := Reference(fn)
	if ref == nil {
		return Report{Name: fn.String()}
	}

	cfg := applyOptions(opts)
	r := measuredRange(fastmath.DomainOf(fn), cfg)
	xs := linspace(r, cfg.samples)

	approx := make([]float64, len(xs))
	copy(approx, xs)
	fastmath.Block64(fn)(approx, len(approx))

	exact := make([]float64, len(xs))
	for i, x := range xs {
		exact[i] = ref(x)
	}

	return summarize(fn.String(), r, xs, approx, exact)
}

// Analyze32 measures the float32 block form of fn against math32. Sample
// points are rounded to float32 and kept inside the range.
func Analyze32(fn fastmath.Func, opts ...Option) Report {
	ref := Reference32(fn)
	if ref == nil {
		return Report{Name: fn.String()}
	}

	cfg := applyOptions(opts)
	r := measuredRange(fastmath.DomainOf(fn), cfg)
	grid := linspace(r, cfg.samples)

	xs32 := make([]float32, len(grid))
	for i, x := range grid {
		xs32[i] = inward32(x, r)
	}

	approx32 := make([]float32, len(xs32))
	copy(approx32, xs32)
	fastmath.Block32(fn)(approx32, len(approx32))

	xs := make([]float64, len(xs32))
	approx := make([]float64, len(xs32))
	exact := make([]float64, len(xs32))
	for i, x := range xs32 {
		xs[i] = float64(x)
		approx[i] = float64(approx32[i])
		exact[i] = float64(ref(x))
	}

	return summarize(fn.String()+"/f32", r, xs, approx, exact)
}

// Compare measures an arbitrary approximation against exact over dom.
func Compare(name string, approx, exact func(float64) float64, dom fastmath.Domain, opts ...Option) Report {
	cfg := applyOptions(opts)
	r := measuredRange(dom, cfg)
	xs := linspace(r, cfg.samples)

	got := make([]float64, len(xs))
	want := make([]float64, len(xs))
	for i, x := range xs {
		got[i] = approx(x)
		want[i] = exact(x)
	}

	return summarize(name, r, xs, got, want)
}

// summarize reduces the sampled values to a Report. Non-finite
// approximations propagate into the error figures.
func summarize(name string, r fastmath.Domain, xs, approx, exact []float64) Report {
	n := len(xs)
	report := Report{Name: name, Range: r, Samples: n}
	if n == 0 {
		return report
	}

	diff := make([]float64, n)
	vecmath.ScaleBlock(diff, exact, -1)
	vecmath.AddBlockInPlace(diff, approx)

	weights := make([]float64, n)
	for i, e := range exact {
		weights[i] = 1 / math.Max(math.Abs(e), 1)
	}
	scaled := make([]float64, n)
	vecmath.MulBlock(scaled, diff, weights)

	report.MaxAbsError = vecmath.MaxAbs(diff)
	report.MaxScaledError = vecmath.MaxAbs(scaled)
	report.RMSError = math.Sqrt(vecmath.DotProduct(diff, diff) / float64(n))
	report.MeanError = vecmath.Sum(diff) / float64(n)

	for i, v := range scaled {
		if math.Abs(v) == report.MaxScaledError {
			report.WorstInput = xs[i]
			break
		}
	}

	return report
}

func measuredRange(dom fastmath.Domain, cfg config) fastmath.Domain {
	r := dom
	if cfg.hasRange {
		r = fastmath.Domain{Min: cfg.min, Max: cfg.max}
	}
	if cfg.margin > 0 && r.Min+cfg.margin < r.Max-cfg.margin {
		r.Min += cfg.margin
		r.Max -= cfg.margin
	}
	return r
}

func linspace(r fastmath.Domain, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = r.Min
		return out
	}
	step := r.Width() / float64(n-1)
	for i := range out {
		out[i] = r.Min + step*float64(i)
	}
	out[n-1] = r.Max
	return out
}

// inward32 rounds x to float32 without leaving r.
func inward32(x float64, r fastmath.Domain) float32 {
	v := float32(x)
	if float64(v) > r.Max {
		v = math.Nextafter32(v, float32(math.Inf(-1)))
	}
	if float64(v) < r.Min {
		v = math.Nextafter32(v, float32(math.Inf(1)))
	}
	return v
}
