package config // CLI configuration

import (
	"flag"
	"fmt"
	"io"
)

// Options are the global flags of a suite run. None of them change what
// is measured.
type Options struct {
	Benchmark bool   // wrap the timed pass in the resource report
	CSVOut    bool   // write <OutFile>.csv
	SVGOut    bool   // write <OutFile>.svg
	OutFile   string // prefix for exports
	Verbose   bool   // debug logging on stderr
}

// Exports reports whether any output file was requested.
func (o Options) Exports() bool {
	return o.CSVOut || o.SVGOut
}

// NewFlagSet binds an isolated flag set to opts.
func NewFlagSet(opts *Options, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("jitbench", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.BoolVar(&opts.Benchmark, "benchmark", false, "Report resource usage of the timed pass")
	fs.BoolVar(&opts.CSVOut, "csv_out", false, "Write timed results to <out_file>.csv")
	fs.BoolVar(&opts.SVGOut, "svg_out", false, "Write a bar chart of timings to <out_file>.svg")
	fs.StringVar(&opts.OutFile, "out_file", "jitbench_report", "Prefix for exported files")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Log diagnostics to stderr")
	return fs
}

// ParseArgs parses global flags. Positional arguments are rejected.
func ParseArgs(args []string, output io.Writer) (Options, error) {
	var opts Options
	fs := NewFlagSet(&opts, output)
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if len(fs.Args()) > 0 {
		return opts, fmt.Errorf("unrecognized arguments: %v", fs.Args())
	}
	if opts.Exports() && opts.OutFile == "" {
		return opts, fmt.Errorf("out_file must not be empty when exporting")
	}
	return opts, nil
}
