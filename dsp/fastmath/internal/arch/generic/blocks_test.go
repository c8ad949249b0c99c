package generic

import (
	"testing"

	"github.com/cwbudde/algo-fastmath/dsp/fastmath/internal/arch/registry"
	"github.com/cwbudde/algo-fastmath/dsp/fastmath/internal/pade"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func TestGenericRegistered(t *testing.T) {
	entry := registry.Global.Lookup(cpu.Features{ForceGeneric: true})
	if entry == nil || entry.Name != "generic" {
		t.Fatalf("expected generic entry, got %#v", entry)
	}
	if !entry.Float64.Complete() || !entry.Float32.Complete() {
		t.Fatal("generic entry has missing kernels")
	}
}

func TestBlocksMatchScalarKernels(t *testing.T) {
	input := []float64{-1.5, -0.75, -0.1, 0, 0.1, 0.5, 1, 1.5}

	tests := []struct {
		name   string
		block  func([]float64)
		scalar func(float64) float64
	}{
		{"cosh", CoshBlock[float64], pade.Cosh[float64]},
		{"sinh", SinhBlock[float64], pade.Sinh[float64]},
		{"tanh", TanhBlock[float64], pade.Tanh[float64]},
		{"cos", CosBlock[float64], pade.Cos[float64]},
		{"sin", SinBlock[float64], pade.Sin[float64]},
		{"tan", TanBlock[float64], pade.Tan[float64]},
		{"exp", ExpBlock[float64], pade.Exp[float64]},
		{"log1p", LogNPlusOneBlock[float64], pade.LogNPlusOne[float64]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := append([]float64(nil), input...)
			tt.block(buf)
			for i, x := range input {
				if want := tt.scalar(x); buf[i] != want {
					t.Fatalf("index %d: got %v, want %v", i, buf[i], want)
				}
			}
		})
	}
}

func TestBlocksFloat32MatchScalarKernels(t *testing.T) {
	input := []float32{-0.7, -0.2, 0, 0.3, 0.9}
	buf := append([]float32(nil), input...)
	ExpBlock(buf)
	for i, x := range input {
		if want := pade.Exp(x); buf[i] != want {
			t.Fatalf("index %d: got %v, want %v", i, buf[i], want)
		}
	}
}

func TestBlocksEmpty(t *testing.T) {
	SinBlock[float64](nil)
	CosBlock([]float32{})
}
