package accuracy

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/cwbudde/algo-fastmath/dsp/fastmath"
)

var (
	// ErrNotPeriodic is returned for functions that do not cover a whole
	// period inside their domain.
	ErrNotPeriodic = errors.New("accuracy: function is not periodic over its domain")
	// ErrInvalidFFTSize is returned when the FFT size is not a power of two >= 8.
	ErrInvalidFFTSize = errors.New("accuracy: FFT size must be a power of two >= 8")
	// ErrInvalidCycles is returned when the tone does not fit below Nyquist.
	ErrInvalidCycles = errors.New("accuracy: cycles must be in [1, fftSize/2)")
)

// HarmonicResult holds the spectral purity of a periodic approximation.
type HarmonicResult struct {
	Func    fastmath.Func
	FFTSize int
	Cycles  int

	// Fundamental is the tone amplitude; an exact unit sine gives 1.
	Fundamental float64

	// Harmonics holds the amplitude of harmonics 2, 3, ... relative to the
	// fundamental. Harmonics at or above Nyquist are omitted.
	Harmonics []float64

	THD   float64
	THDdB float64
}

// HarmonicDistortion drives the block form of a periodic function (sin or
// cos) with a coherent phase ramp over its domain and reports the harmonic
// distortion of the result. The ramp wraps exactly at the domain edges, so
// the transform needs no window.
func HarmonicDistortion(fn fastmath.Func, opts ...Option) (HarmonicResult, error) {
	if fn != fastmath.FuncSin && fn != fastmath.FuncCos {
		return HarmonicResult{}, fmt.Errorf("%w: %s", ErrNotPeriodic, fn)
	}

	cfg := applyOptions(opts)
	n := cfg.fftSize
	if n < 8 || n&(n-1) != 0 {
		return HarmonicResult{}, fmt.Errorf("%w: got %d", ErrInvalidFFTSize, n)
	}
	if cfg.cycles < 1 || 2*cfg.cycles >= n {
		return HarmonicResult{}, fmt.Errorf("%w: got %d", ErrInvalidCycles, cfg.cycles)
	}

	d := fastmath.DomainOf(fn)
	signal := make([]float64, n)
	for i := range signal {
		phase := float64((i*cfg.cycles)%n) / float64(n)
		signal[i] = d.Min + d.Width()*phase
	}
	fastmath.Block64(fn)(signal, n)

	in := make([]complex128, n)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return HarmonicResult{}, fmt.Errorf("accuracy: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return HarmonicResult{}, fmt.Errorf("accuracy: forward FFT failed: %w", err)
	}

	scale := 2 / float64(n)
	res := HarmonicResult{
		Func:        fn,
		FFTSize:     n,
		Cycles:      cfg.cycles,
		Fundamental: cmplx.Abs(out[cfg.cycles]) * scale,
	}
	if res.Fundamental == 0 {
		return res, nil
	}

	var sumSq float64
	for h := 2; h <= cfg.maxHarmonic; h++ {
		bin := h * cfg.cycles
		if bin >= n/2 {
			break
		}
		level := cmplx.Abs(out[bin]) * scale / res.Fundamental
		res.Harmonics = append(res.Harmonics, level)
		sumSq += level * level
	}

	res.THD = math.Sqrt(sumSq)
	res.THDdB = 20 * math.Log10(res.THD)

	return res, nil
}
