package sanity_check

import (
	"errors"
	"fmt"
	"io"
	"os"

	"jitbench_go/config" // Version control
	"jitbench_go/suite"
	"jitbench_go/workloads"
)

// Expected returns the known result of every default benchmark, in order.
func Expected() []int64 {
	return []int64{
		workloads.ExpectedArithmetic(),
		workloads.ExpectedArray(),
		workloads.ExpectedCalls(),
		workloads.ExpectedFibonacci(),
		workloads.ExpectedSieve(),
		workloads.ExpectedNested(),
	}
}

// Verify runs every benchmark once and reports all mismatches together.
func Verify(benchmarks []suite.Benchmark, expected []int64) error {
	if len(benchmarks) != len(expected) {
		return fmt.Errorf("have %d benchmarks but %d expected results", len(benchmarks), len(expected))
	}
	var errs []error
	for i, b := range benchmarks {
		if got := b.Run(); got != expected[i] {
			errs = append(errs, fmt.Errorf("%s: got %d, want %d", b.Title, got, expected[i]))
		}
	}
	return errors.Join(errs...)
}

// Check prints a version line and verifies the default suite.
func Check(w io.Writer) error {
	fmt.Fprintf(w, "Successfully running JIT Bench! (%s)\n", config.Main_version)
	if err := Verify(suite.Default(), Expected()); err != nil {
		return err
	}
	fmt.Fprintln(w, "All benchmark results match: OK")
	return nil
}

// Run is the "check" tool.
func Run(args []string) {
	if len(args) > 0 {
		fmt.Printf("Unrecognized arguments: %v\n", args)
		os.Exit(1)
	}
	if err := Check(os.Stdout); err != nil {
		fmt.Println("Sanity check failed:", err)
		os.Exit(1)
	}
}
