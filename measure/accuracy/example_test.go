package accuracy_test

import (
	"fmt"

	"github.com/cwbudde/algo-fastmath/dsp/fastmath"
	"github.com/cwbudde/algo-fastmath/measure/accuracy"
)

func ExampleAnalyze() {
	r := accuracy.Analyze(fastmath.FuncSin, accuracy.WithSamples(1001))

	fmt.Println(r.Name, r.Samples, r.Range, r.MaxScaledError < 2e-5)

	// Output:
	// sin 1001 [-3.141592653589793, 3.141592653589793] true
}

func ExampleHarmonicDistortion() {
	res, err := accuracy.HarmonicDistortion(fastmath.FuncSin)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(len(res.Harmonics), res.THDdB < -100)

	// Output:
	// 8 true
}
