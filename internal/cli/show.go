package cli

import (
	"fmt"

	"energy-sim/internal/display"
	"energy-sim/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func addAddrFlag(cmd *cobra.Command) {
	cmd.Flags().String("addr", display.DefaultAddr, "listen address for the chart display")
}

func newShowCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Run the simulation and serve the comparison charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			return a.show(cmd, addr)
		},
	}
	addAddrFlag(cmd)
	return cmd
}

// show prints the terminal summary, then blocks serving the charts until
// the command context is cancelled.
func (a *app) show(cmd *cobra.Command, addr string) error {
	res, err := a.run()
	if err != nil {
		return err
	}
	if err := report.RenderSummary(cmd.OutOrStdout(), res); err != nil {
		a.logger.Warn().Err(err).Msg("summary render failed")
	}
	fmt.Fprintln(cmd.OutOrStdout())

	gin.SetMode(gin.ReleaseMode)
	return display.New(a.cfg.ToParams(), a.logger).Open(cmd.Context(), addr, res)
}
