package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"jitbench_go/benchmark"
	"jitbench_go/config"
	"jitbench_go/report"
	"jitbench_go/sanity_check"
	"jitbench_go/suite"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`JIT Bench - Custom Help Menu
Usage:
  jitbench [options]
  jitbench check

Running with no arguments executes the suite once for warmup and once
timed, printing the result and elapsed milliseconds of every benchmark.

Tools:
  check			Verify every benchmark result without timing

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Options:
  -benchmark		Report resource usage of the timed pass
  -csv_out		Write timed results to <out_file>.csv
  -svg_out		Write a bar chart of timings to <out_file>.svg
  -out_file		Prefix for exported files (default "jitbench_report")
  -verbose		Log diagnostics to stderr
  `,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("JIT Bench - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tJIT Bench:\t\t%s\n", config.Main_version)
	fmt.Printf("\nModules:\n")
	fmt.Printf("\tSuite:\t\t\t%s\n", config.Suite)
	fmt.Printf("\tBenchmark:\t\t%s\n", config.Benchmark)
	fmt.Printf("\tReport:\t\t\t%s\n", config.Report)
	fmt.Printf("\tSanity Check:\t\t%s\n", config.Sanity_check)

	fmt.Println("")

	os.Exit(0)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// execute runs the suite and any requested exports.
// The console report is always complete before an export error is returned.
func execute(opts config.Options, runner *suite.Runner, stdout io.Writer) error {
	var rep suite.Report
	if opts.Benchmark {
		runner.Banner()
		runner.Warm()
		benchmark.Run(stdout, "jitbench timed pass", func() {
			rep = runner.Timed()
		})
	} else {
		rep = runner.Run()
	}

	var errs []error
	if opts.CSVOut {
		if err := report.WriteCSV(opts.OutFile, rep); err != nil {
			errs = append(errs, err)
		} else {
			runner.Logger.Info("wrote csv report", "path", opts.OutFile+".csv")
		}
	}
	if opts.SVGOut {
		if err := report.WriteSVG(opts.OutFile, rep); err != nil {
			errs = append(errs, err)
		} else {
			runner.Logger.Info("wrote svg chart", "path", opts.OutFile+".svg")
		}
	}
	if opts.Verbose {
		for i, share := range report.Shares(rep) {
			runner.Logger.Debug("time share", "title", rep.Results[i].Title, "percent", fmt.Sprintf("%.1f", share))
		}
	}
	return errors.Join(errs...)
}

// Main controller
func main() {
	args := os.Args[1:]

	// Help and version take precedence over everything else
	for _, arg := range args {
		if arg == "-h" || arg == "-help" {
			printCustomHelp()
		}
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	if len(args) > 0 && args[0] == "check" {
		sanity_check.Run(args[1:])
		return
	}

	opts, err := config.ParseArgs(args, os.Stderr)
	if err != nil {
		fmt.Println("Error parsing flags:", err)
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, opts.Verbose)
	runner := suite.New(os.Stdout, logger)

	if err := execute(opts, runner, os.Stdout); err != nil {
		fmt.Println("Export failed:", err)
		os.Exit(1)
	}
}
