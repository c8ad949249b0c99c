package accuracy

import "math"

const (
	defaultSamples     = 4096
	defaultFFTSize     = 1024
	defaultCycles      = 5
	defaultMaxHarmonic = 9
)

// Option configures a measurement.
type Option func(*config)

type config struct {
	samples     int
	min, max    float64
	hasRange    bool
	margin      float64
	fftSize     int
	cycles      int
	maxHarmonic int
}

func defaultConfig() config {
	return config{
		samples:     defaultSamples,
		fftSize:     defaultFFTSize,
		cycles:      defaultCycles,
		maxHarmonic: defaultMaxHarmonic,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithSamples sets the number of uniformly spaced sample points (>= 2).
func WithSamples(n int) Option {
	return func(cfg *config) {
		if n >= 2 {
			cfg.samples = n
		}
	}
}

// WithRange restricts the measurement to [min, max] instead of the
// function's documented domain.
func WithRange(min, max float64) Option {
	return func(cfg *config) {
		if math.IsNaN(min) || math.IsNaN(max) || min == max {
			return
		}
		if min > max {
			min, max = max, min
		}
		cfg.min, cfg.max = min, max
		cfg.hasRange = true
	}
}

// WithEdgeMargin shrinks both ends of the measured range by margin. Use it
// to keep away from the poles of tan.
func WithEdgeMargin(margin float64) Option {
	return func(cfg *config) {
		if margin >= 0 {
			cfg.margin = margin
		}
	}
}

// WithFFTSize sets the transform length for HarmonicDistortion. It must be
// a power of two.
func WithFFTSize(n int) Option {
	return func(cfg *config) {
		cfg.fftSize = n
	}
}

// WithCycles sets how many periods of the test tone HarmonicDistortion
// places in one transform.
func WithCycles(n int) Option {
	return func(cfg *config) {
		cfg.cycles = n
	}
}

// WithMaxHarmonic sets the highest harmonic included in THD (>= 2).
func WithMaxHarmonic(n int) Option {
	return func(cfg *config) {
		if n >= 2 {
			cfg.maxHarmonic = n
		}
	}
}
