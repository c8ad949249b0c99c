package main

import (
	"strings"
	"testing"

	"github.com/cwbudde/algo-fastmath/dsp/fastmath"
	"github.com/cwbudde/algo-fastmath/measure/accuracy"
)

func TestBaselineReport(t *testing.T) {
	opts := []accuracy.Option{accuracy.WithSamples(64)}

	for _, fn := range []fastmath.Func{fastmath.FuncExp, fastmath.FuncLogNPlusOne} {
		t.Run(fn.String(), func(t *testing.T) {
			r, ok := baselineReport(fn, false, opts)
			if !ok {
				t.Fatal("expected a baseline row")
			}
			if !strings.HasPrefix(r.Name, "algo-approx ") || strings.HasSuffix(r.Name, "/f64") {
				t.Fatalf("name = %q", r.Name)
			}
			if r.Samples != 64 || r.Range != fastmath.DomainOf(fn) {
				t.Fatalf("unexpected report: %+v", r)
			}

			r32, ok := baselineReport(fn, true, opts)
			if !ok || r32.Name != r.Name+"/f64" {
				t.Fatalf("float32 mode name = %q, want %q", r32.Name, r.Name+"/f64")
			}
		})
	}
}

func TestBaselineReportNoCounterpart(t *testing.T) {
	for _, fn := range []fastmath.Func{fastmath.FuncSin, fastmath.FuncTanh} {
		if _, ok := baselineReport(fn, false, nil); ok {
			t.Fatalf("%s: unexpected baseline row", fn)
		}
	}
}

func TestResolveFuncs(t *testing.T) {
	if got := resolveFuncs(nil); len(got) != len(fastmath.Funcs()) {
		t.Fatalf("resolveFuncs(nil) = %v, want all functions", got)
	}

	got := resolveFuncs([]string{"log1p", "bogus", "Sin"})
	if len(got) != 2 || got[0] != fastmath.FuncLogNPlusOne || got[1] != fastmath.FuncSin {
		t.Fatalf("resolveFuncs() = %v, want [logNPlusOne sin]", got)
	}
}
