package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"jitbench_go/suite"
)

var csvHeader = []string{"Index", "Benchmark", "Result", "Unit", "ElapsedMs"}

// Rows flattens a report into CSV records, header first and total last.
func Rows(r suite.Report) [][]string {
	rows := make([][]string, 0, len(r.Results)+2)
	rows = append(rows, csvHeader)
	for _, res := range r.Results {
		rows = append(rows, []string{
			strconv.Itoa(res.Index),
			res.Title,
			strconv.FormatInt(res.Value, 10),
			res.Unit,
			strconv.FormatInt(res.Elapsed.Milliseconds(), 10),
		})
	}
	rows = append(rows, []string{"", "Total", "", "", strconv.FormatInt(r.Total.Milliseconds(), 10)})
	return rows
}

// WriteCSV writes <prefix>.csv.
func WriteCSV(prefix string, r suite.Report) error {
	f, err := os.Create(prefix + ".csv")
	if err != nil {
		return fmt.Errorf("failed to create csv: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.WriteAll(Rows(r)); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}
