package testutil

import "testing"

func TestLinspace(t *testing.T) {
	x := Linspace[float64](-1, 1, 5)
	want := []float64{-1, -0.5, 0, 0.5, 1}
	RequireSliceNearlyEqual(t, x, want, 1e-15)
}

func TestLinspaceEndpointsExact(t *testing.T) {
	x := Linspace[float32](-0.8, 5, 1001)
	if x[0] != float32(-0.8) || x[len(x)-1] != float32(5) {
		t.Fatalf("endpoints = %v, %v, want -0.8, 5", x[0], x[len(x)-1])
	}
}

func TestLinspaceDegenerate(t *testing.T) {
	if x := Linspace[float64](0, 1, 0); x != nil {
		t.Fatalf("Linspace(n=0) = %v, want nil", x)
	}
	if x := Linspace[float64](2, 3, 1); len(x) != 1 || x[0] != 2 {
		t.Fatalf("Linspace(n=1) = %v, want [2]", x)
	}
}

func TestDeterministicUniform(t *testing.T) {
	a := DeterministicUniform[float64](42, -5, 5, 256)
	b := DeterministicUniform[float64](42, -5, 5, 256)
	if len(a) != 256 {
		t.Fatalf("len = %d, want 256", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("values not deterministic at index %d", i)
		}
		if a[i] < -5 || a[i] >= 5 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}
}

func TestDeterministicUniformDifferentSeeds(t *testing.T) {
	a := DeterministicUniform[float64](1, 0, 1, 16)
	b := DeterministicUniform[float64](2, 0, 1, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical values")
	}
}

func TestNegated(t *testing.T) {
	RequireSliceNearlyEqual(t, Negated([]float32{1, -2, 0.5}), []float32{-1, 2, -0.5}, 0)
}
