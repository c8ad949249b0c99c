// Command fastmathinfo prints the measured accuracy of the fastmath
// approximations.
//
// Usage:
//
//	fastmathinfo [flags] [function-name ...]
//
// Without arguments it prints a row for every approximated function.
//
// Examples:
//
//	fastmathinfo
//	fastmathinfo -samples 65536 exp log1p
//	fastmathinfo -float32 -margin 0.05 tan
//	fastmathinfo -thd sin cos
//	fastmathinfo -baseline exp logNPlusOne
//	fastmathinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	approx "github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-fastmath/dsp/fastmath"
	"github.com/cwbudde/algo-fastmath/measure/accuracy"
)

func main() {
	samples := flag.Int("samples", 4096, "number of sample points per function")
	float32Mode := flag.Bool("float32", false, "measure the float32 kernels against math32")
	list := flag.Bool("list", false, "list available function names with their domains")
	thd := flag.Bool("thd", false, "also print harmonic distortion of the periodic functions")
	baseline := flag.Bool("baseline", false, "add algo-approx rows for exp and logNPlusOne")
	margin := flag.Float64("margin", 0, "shrink both ends of each domain by this amount")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fastmathinfo [flags] [function-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the measured error of the fastmath approximations.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all functions.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fastmathinfo exp log1p\n")
		fmt.Fprintf(os.Stderr, "  fastmathinfo -float32 -margin 0.05 tan\n")
		fmt.Fprintf(os.Stderr, "  fastmathinfo -thd sin cos\n")
		fmt.Fprintf(os.Stderr, "  fastmathinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	fns := resolveFuncs(flag.Args())
	if len(fns) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching functions\n")
		os.Exit(1)
	}

	opts := []accuracy.Option{
		accuracy.WithSamples(*samples),
		accuracy.WithEdgeMargin(*margin),
	}

	fmt.Printf("implementation: %s\n\n", fastmath.Implementation())

	reports := make([]accuracy.Report, 0, len(fns))
	for _, fn := range fns {
		if *float32Mode {
			reports = append(reports, accuracy.Analyze32(fn, opts...))
		} else {
			reports = append(reports, accuracy.Analyze(fn, opts...))
		}
		if *baseline {
			if r, ok := baselineReport(fn, *float32Mode, opts); ok {
				reports = append(reports, r)
			}
		}
	}

	if err := printReports(reports); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *thd {
		if err := printHarmonics(fns); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printList() {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, fn := range fastmath.Funcs() {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", fn, fastmath.DomainOf(fn))
	}
	_ = tw.Flush()
}

func resolveFuncs(names []string) []fastmath.Func {
	if len(names) == 0 {
		return fastmath.Funcs()
	}

	var result []fastmath.Func
	for _, name := range names {
		fn, ok := fastmath.ParseFunc(name)
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown function %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, fn)
	}
	return result
}

// baselineReport measures the algo-approx counterpart of fn, if it has one.
// algo-approx is float64 only; next to float32 rows its name carries "/f64".
func baselineReport(fn fastmath.Func, float32Mode bool, opts []accuracy.Option) (accuracy.Report, bool) {
	d := fastmath.DomainOf(fn)

	var r accuracy.Report
	switch fn {
	case fastmath.FuncExp:
		r = accuracy.Compare("algo-approx exp", approx.FastExp, math.Exp, d, opts...)
	case fastmath.FuncLogNPlusOne:
		fastLog1p := func(x float64) float64 { return approx.FastLog(1 + x) }
		r = accuracy.Compare("algo-approx log(1+x)", fastLog1p, math.Log1p, d, opts...)
	default:
		return accuracy.Report{}, false
	}

	if float32Mode {
		r.Name += "/f64"
	}
	return r, true
}

func printReports(reports []accuracy.Report) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Function\tRange\tSamples\tMax Abs\tMax Scaled\tRMS\tMean\tWorst x\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "--------\t-----\t-------\t-------\t----------\t---\t----\t-------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, r := range reports {
		if _, err := fmt.Fprintf(tw, "%s\t[%.4f, %.4f]\t%d\t%.3e\t%.3e\t%.3e\t%+.3e\t%.6f\n",
			r.Name,
			r.Range.Min,
			r.Range.Max,
			r.Samples,
			r.MaxAbsError,
			r.MaxScaledError,
			r.RMSError,
			r.MeanError,
			r.WorstInput,
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func printHarmonics(fns []fastmath.Func) error {
	fmt.Println()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Function\tFFT Size\tCycles\tFundamental\tTHD\tTHD [dB]\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, fn := range fns {
		if fn != fastmath.FuncSin && fn != fastmath.FuncCos {
			continue
		}
		res, err := accuracy.HarmonicDistortion(fn)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%.6f\t%.3e\t%.1f\n",
			fn, res.FFTSize, res.Cycles, res.Fundamental, res.THD, res.THDdB); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
