package fastmath

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-fastmath/dsp/fastmath/internal/arch/registry"

	// Pure Go kernels, registered on every architecture.
	_ "github.com/cwbudde/algo-fastmath/dsp/fastmath/internal/arch/generic"
)

var (
	implName string
	blocks64 [numFuncs]func([]float64)
	blocks32 [numFuncs]func([]float32)
	initOnce sync.Once
)

func initBlockKernels() {
	features := cpu.DetectFeatures()
	entry := registry.Global.Lookup(features)
	if entry == nil {
		panic("fastmath: no block implementation registered")
	}
	if !entry.Float64.Complete() || !entry.Float32.Complete() {
		panic("fastmath: selected implementation missing block kernels")
	}
	implName = entry.Name
	blocks64 = kernelTable(&entry.Float64)
	blocks32 = kernelTable(&entry.Float32)
}

func kernelTable[F float32 | float64](k *registry.Kernels[F]) [numFuncs]func([]F) {
	return [numFuncs]func([]F){
		FuncCosh:        k.Cosh,
		FuncSinh:        k.Sinh,
		FuncTanh:        k.Tanh,
		FuncCos:         k.Cos,
		FuncSin:         k.Sin,
		FuncTan:         k.Tan,
		FuncExp:         k.Exp,
		FuncLogNPlusOne: k.LogNPlusOne,
	}
}

// Implementation returns the name of the block kernel implementation
// selected for this process.
func Implementation() string {
	initOnce.Do(initBlockKernels)
	return implName
}

// transform overwrites every element of buf with fn applied to it. Plain
// []float64 and []float32 go through the registered kernels; named float
// types use scalar directly.
func transform[F Float](fn Func, buf []F, scalar func(F) F) {
	checkBlock(fn, buf)

	switch b := any(buf).(type) {
	case []float64:
		initOnce.Do(initBlockKernels)
		blocks64[fn](b)
	case []float32:
		initOnce.Do(initBlockKernels)
		blocks32[fn](b)
	default:
		for i, x := range buf {
			buf[i] = scalar(x)
		}
	}
}
