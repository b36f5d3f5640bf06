package pipeline

import (
	"encoding/csv"
	"io"
	"strconv"

	"energy-sim/internal/model"
)

// WriteLedgerCSV streams the per-day ledger. Output goes to the caller's
// writer (usually stdout); nothing is written to disk here.
func WriteLedgerCSV(out io.Writer, ledger []model.DayRow) error {
	w := csv.NewWriter(out)

	header := []string{
		"day",
		"usage_kwh",
		"optimized_usage_kwh",
		"cost",
		"optimized_cost",
		"footprint_kg",
		"optimized_footprint_kg",
		"cost_savings",
		"footprint_savings_kg",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Day),
			fmtFloat(r.UsageKWh),
			fmtFloat(r.OptimizedUsageKWh),
			fmtFloat(r.Cost),
			fmtFloat(r.OptimizedCost),
			fmtFloat(r.FootprintKg),
			fmtFloat(r.OptimizedFootprintKg),
			fmtFloat(r.CostSavings),
			fmtFloat(r.FootprintSavings),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
