// Package fastmath provides fast Padé approximations of transcendental
// functions for real-time signal processing.
//
// Every function comes in two forms: a scalar form (Cosh, Sin, Exp, ...) and
// an in-place block form (CoshBlock, SinBlock, ExpBlock, ...) that overwrites
// the first n elements of a caller-owned slice. Both forms are generic over
// float32 and float64 and compute bit-identical results.
//
// The approximations are only accurate on a bounded input domain. They do no
// range reduction and no input validation: callers pre-scale or clamp their
// input (see Domain.Clamp). Outside the domain results degrade silently.
//
// # Accuracy Characteristics
//
// Maximum error, measured as |f(x) - g(x)| / max(|g(x)|, 1) over the whole
// domain, for float64:
//
//	Cosh         [-5, 5]        4.0e-3 (at the edges; 1e-11 on [-1, 1])
//	Sinh         [-5, 5]        7.2e-4
//	Tanh         [-5, 5]        1.0e-4
//	Cos          [-π, π]        7.4e-5 (7e-9 on [-π/2, π/2])
//	Sin          [-π, π]        1.1e-5
//	Tan          [-π/2, π/2]    2e-8 on [-1.5, 1.5], unbounded at the poles
//	Exp          [-6, 4]        1.6e-2 (4e-8 on [-1, 1])
//	LogNPlusOne  [-0.8, 5]      2.4e-4
//
// The error grows towards the domain edges. The measure/accuracy package
// reproduces these figures.
//
// # Debug Builds
//
// Building with the fastmathdebug tag makes every scalar and block call panic
// when an input lies outside the documented domain. Release builds never
// check.
//
// # Block Kernels
//
// Block forms over []float64 and []float32 are dispatched through a kernel
// registry selected once per process from the detected CPU features. Named
// float types run a plain loop over the scalar form.
package fastmath
