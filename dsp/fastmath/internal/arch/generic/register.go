package generic

import (
	"github.com/cwbudde/algo-fastmath/dsp/fastmath/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Float64:   kernels[float64](),
		Float32:   kernels[float32](),
	})
}

func kernels[F float32 | float64]() registry.Kernels[F] {
	return registry.Kernels[F]{
		Cosh:        CoshBlock[F],
		Sinh:        SinhBlock[F],
		Tanh:        TanhBlock[F],
		Cos:         CosBlock[F],
		Sin:         SinBlock[F],
		Tan:         TanBlock[F],
		Exp:         ExpBlock[F],
		LogNPlusOne: LogNPlusOneBlock[F],
	}
}
