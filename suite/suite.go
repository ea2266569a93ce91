// suite.go
// Benchmark driver: runs the fixed table once for warmup and once timed,
// printing one block per benchmark and a total.

package suite

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"jitbench_go/workloads"
)

// Benchmark is one row of the suite table.
type Benchmark struct {
	Title string
	Unit  string // optional suffix printed after the result
	Run   func() int64
}

type Result struct {
	Index   int
	Title   string
	Unit    string
	Value   int64
	Elapsed time.Duration
}

// Report is the outcome of a timed pass.
type Report struct {
	Results []Result
	Total   time.Duration
}

// Default returns the suite in its fixed order.
func Default() []Benchmark {
	return []Benchmark{
		{Title: "Integer Arithmetic", Run: workloads.Arithmetic},
		{Title: "Loop with Array Access", Run: workloads.Array},
		{Title: "Function Calls", Run: workloads.Calls},
		{Title: "Fibonacci (recursive)", Run: workloads.Fibonacci},
		{Title: "Sieve of Eratosthenes", Unit: "primes", Run: workloads.Sieve},
		{Title: "Nested Loops", Run: workloads.Nested},
	}
}

type Runner struct {
	Out        io.Writer
	Logger     *slog.Logger
	Now        func() time.Time
	Benchmarks []Benchmark
}

// New returns a Runner over the default table using the wall clock.
func New(out io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		Out:        out,
		Logger:     logger,
		Now:        time.Now,
		Benchmarks: Default(),
	}
}

// Run prints the banner, warms up and then performs the timed pass.
func (r *Runner) Run() Report {
	r.Banner()
	r.Warm()
	return r.Timed()
}

func (r *Runner) Banner() {
	fmt.Fprintln(r.Out, "=== JIT Benchmark Suite (Go) ===")
	fmt.Fprintf(r.Out, "Iterations: %d (arithmetic), %d (other)\n\n", workloads.Iterations, workloads.SmallIterations)
}

// Warm executes every benchmark once without measuring it.
func (r *Runner) Warm() {
	workloads.Warmup()
	start := r.Now()
	for _, b := range r.Benchmarks {
		workloads.Keep(b.Run())
	}
	r.Logger.Debug("warmup pass complete", "benchmarks", len(r.Benchmarks), "elapsed", r.Now().Sub(start))
}

// Timed runs each benchmark to completion in order and prints its block.
func (r *Runner) Timed() Report {
	report := Report{Results: make([]Result, 0, len(r.Benchmarks))}

	t0 := r.Now()
	for i, b := range r.Benchmarks {
		fmt.Fprintf(r.Out, "%d. %s\n", i+1, b.Title)

		t1 := r.Now()
		value := b.Run()
		t2 := r.Now()

		res := Result{
			Index:   i + 1,
			Title:   b.Title,
			Unit:    b.Unit,
			Value:   value,
			Elapsed: t2.Sub(t1),
		}
		report.Results = append(report.Results, res)
		fmt.Fprintf(r.Out, "   Result: %s, Time: %d ms\n\n", res.formatValue(), res.Elapsed.Milliseconds())
		r.Logger.Debug("benchmark finished", "index", res.Index, "title", res.Title, "elapsed", res.Elapsed)
	}
	report.Total = r.Now().Sub(t0)

	fmt.Fprintf(r.Out, "=== Total Time: %d ms ===\n", report.Total.Milliseconds())
	return report
}

func (res Result) formatValue() string {
	if res.Unit == "" {
		return fmt.Sprintf("%d", res.Value)
	}
	return fmt.Sprintf("%d %s", res.Value, res.Unit)
}
