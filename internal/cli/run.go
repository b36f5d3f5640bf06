package cli

import (
	"encoding/json"
	"fmt"

	"energy-sim/internal/pipeline"
	"energy-sim/internal/report"

	"github.com/spf13/cobra"
)

const (
	formatTable = "table"
	formatCSV   = "csv"
	formatJSON  = "json"
)

func newRunCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation once and print the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.run()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch format {
			case formatTable:
				return report.RenderSummary(out, res)
			case formatCSV:
				ledger, err := res.Ledger()
				if err != nil {
					return err
				}
				return pipeline.WriteLedgerCSV(out, ledger)
			case formatJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			default:
				return fmt.Errorf("unsupported format %q (want table, csv or json)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, csv or json")
	return cmd
}
