package output

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/fpgo/fpgo/internal/calculation"
)

// DrawdownCSV renders the per-year Monte Carlo aggregates as CSV for
// spreadsheet analysis.
func DrawdownCSV(result *calculation.DrawdownResult) (string, error) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"year", "mean", "median", "tenth_percentile", "solvent_count"}); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, y := range result.Years {
		record := []string{
			strconv.Itoa(y.Year),
			y.Mean.StringFixed(2),
			y.Median.StringFixed(2),
			y.TenthPercentile.StringFixed(2),
			strconv.Itoa(y.SolventCount),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.String(), nil
}
