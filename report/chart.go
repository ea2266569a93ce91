package report

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"jitbench_go/suite"
)

// elapsedMs returns per-benchmark times in fractional milliseconds.
func elapsedMs(r suite.Report) []float64 {
	ms := make([]float64, len(r.Results))
	for i, res := range r.Results {
		ms[i] = float64(res.Elapsed.Microseconds()) / 1000.0
	}
	return ms
}

// Shares returns each benchmark's percentage of the summed per-benchmark time.
func Shares(r suite.Report) []float64 {
	ms := elapsedMs(r)
	sum := floats.Sum(ms)
	if sum == 0 {
		return make([]float64, len(ms))
	}
	floats.Scale(100/sum, ms)
	return ms
}

// ChartSVG renders elapsed time per benchmark as an SVG bar chart.
func ChartSVG(r suite.Report) (string, error) {
	if len(r.Results) == 0 {
		return "", fmt.Errorf("no results to plot")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("JIT Benchmark Suite (Go), total %d ms", r.Total.Milliseconds())
	p.Y.Label.Text = "Time (ms)"
	p.Y.Min = 0
	p.Add(plotter.NewGrid())

	names := make([]string, len(r.Results))
	for i, res := range r.Results {
		names[i] = res.Title
	}

	bars, err := plotter.NewBarChart(plotter.Values(elapsedMs(r)), vg.Points(30))
	if err != nil {
		return "", err
	}
	bars.Color = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)

	var buf bytes.Buffer
	writer, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	if _, err := writer.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteSVG writes <prefix>.svg.
func WriteSVG(prefix string, r suite.Report) error {
	svg, err := ChartSVG(r)
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	if err := os.WriteFile(prefix+".svg", []byte(svg), 0o644); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	return nil
}
