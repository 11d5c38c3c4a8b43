// Package cli implements the greengauge command tree: one command group per
// calculation engine plus serve for the HTTP API.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verdant-labs/greengauge/internal/config"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the greengauge CLI.
// It wires up config loading, logging, and the engine subcommands
// (nec, hydraulic, energy, nutrient, serve).
func NewRootCmd(ver string) *cobra.Command {
	var cfg config.Config

	cmd := &cobra.Command{
		Use:     "greengauge",
		Short:   "Greengauge engineering calculators",
		Long:    "Greengauge: deterministic electrical, hydraulic, energy and nutrient calculations for controlled-environment agriculture",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			if configPath == "" {
				configPath = config.DefaultPath()
			}

			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded

			setupLogging(cmd, &cfg)
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default ~/.greengauge/config.yaml)")
	cmd.PersistentFlags().StringP("output", "o", "",
		"output format (table, json; default: table on a terminal, json otherwise)")

	cmd.AddCommand(
		newNECCmd(&cfg),
		newHydraulicCmd(&cfg),
		newEnergyCmd(&cfg),
		newNutrientCmd(&cfg),
		newServeCmd(&cfg),
	)

	return cmd
}

const rootCmdExample = `  # Check a 20A continuous lighting circuit for NEC compliance
  greengauge nec check --name "Flower Room LEDs" --type lighting \
    --current 20 --voltage 240 --phases 1 --continuous --distance 50

  # Analyze an irrigation main line
  greengauge hydraulic analyze --flow 20 --diameter 2 --length 100 \
    --inlet-pressure 60 --outlet-pressure 25 --material pvc

  # Size heating, cooling, lighting and CO2 for a greenhouse
  greengauge energy demand --length 96 --width 30 --height 12 \
    --glazing polycarbonate --day-temp 75 --night-temp 65 --outside-temp 30

  # Compute stage-adjusted nutrient requirements
  greengauge nutrient calculate --profile standard --stage vegetative \
    --age 30 --leaves 12 --temp 22 --light 400

  # Diagnose deficiencies from solution measurements
  greengauge nutrient diagnose --current nitrogen=100 --required nitrogen=190

  # Run the HTTP API
  greengauge serve --addr :8080`
