package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jitbench_go/suite"
)

func sampleReport() suite.Report {
	return suite.Report{
		Results: []suite.Result{
			{Index: 1, Title: "Integer Arithmetic", Value: 149489914351, Elapsed: 30 * time.Millisecond},
			{Index: 2, Title: "Sieve of Eratosthenes", Unit: "primes", Value: 9592, Elapsed: 10 * time.Millisecond},
		},
		Total: 41 * time.Millisecond,
	}
}

func TestRows(t *testing.T) {
	assert.Equal(t, [][]string{
		{"Index", "Benchmark", "Result", "Unit", "ElapsedMs"},
		{"1", "Integer Arithmetic", "149489914351", "", "30"},
		{"2", "Sieve of Eratosthenes", "9592", "primes", "10"},
		{"", "Total", "", "", "41"},
	}, Rows(sampleReport()))
}

func TestWriteCSV(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "jitbench_report")
	require.NoError(t, WriteCSV(prefix, sampleReport()))

	f, err := os.Open(prefix + ".csv")
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, Rows(sampleReport()), records)
}

func TestWriteCSVBadPath(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "missing", "report")
	assert.Error(t, WriteCSV(prefix, sampleReport()))
}

func TestShares(t *testing.T) {
	assert.InDeltaSlice(t, []float64{75, 25}, Shares(sampleReport()), 1e-9)

	zero := suite.Report{Results: []suite.Result{{Title: "a"}, {Title: "b"}}}
	assert.Equal(t, []float64{0, 0}, Shares(zero))
}

func TestChartSVG(t *testing.T) {
	svg, err := ChartSVG(sampleReport())
	require.NoError(t, err)
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "Sieve of Eratosthenes")

	_, err = ChartSVG(suite.Report{})
	assert.Error(t, err)
}

func TestWriteSVG(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "chart")
	require.NoError(t, WriteSVG(prefix, sampleReport()))

	data, err := os.ReadFile(prefix + ".svg")
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}
