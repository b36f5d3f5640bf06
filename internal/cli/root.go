// Package cli holds the energysim cobra commands.
package cli

import (
	"fmt"
	"io"

	"energy-sim/internal/config"
	"energy-sim/internal/model"
	"energy-sim/internal/pipeline"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app carries state resolved in PersistentPreRunE for subcommands.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	logOut io.Writer
}

// NewRootCmd creates the root command. Invoked without a subcommand it runs
// the simulation once with the configured defaults and opens the display.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "energysim",
		Short: "Simulate daily energy usage, cost and carbon footprint",
		Long: "energysim generates a seeded month of daily energy usage, derives cost and\n" +
			"carbon footprint, applies a flat reduction and compares both tracks.",
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			return a.show(cmd, addr)
		},
	}

	cmd.PersistentFlags().String("config", "", "optional YAML file overriding the built-in defaults")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	addAddrFlag(cmd)
	cmd.AddCommand(newRunCmd(a), newShowCmd(a))

	return cmd
}

const rootCmdExample = `  # Run once and open the comparison charts
  energysim

  # Print the summary table without starting the display
  energysim run

  # Per-day ledger as CSV
  energysim run --format csv

  # Use a config file
  energysim run --config energysim.yaml`

func (a *app) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	level := cfg.Logging.Level
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = "debug"
	}
	if a.logOut == nil {
		a.logOut = cmd.ErrOrStderr()
	}
	config.InitLogger(level, a.logOut)
	a.logger = config.GetLogger().With().Str("command", cmd.Name()).Logger()
	a.logger.Debug().Interface("params", cfg.ToParams()).Msg("configuration loaded")
	return nil
}

func (a *app) run() (*model.RunResult, error) {
	res, err := pipeline.New(a.logger).Run(a.cfg.ToParams())
	if err != nil {
		a.logger.Error().Err(err).Msg("simulation failed")
		return nil, err
	}
	return res, nil
}
