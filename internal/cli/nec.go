package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verdant-labs/greengauge/internal/config"
	"github.com/verdant-labs/greengauge/internal/engine/nec"
	"github.com/verdant-labs/greengauge/internal/fleet"
	"github.com/verdant-labs/greengauge/internal/report"
)

// NECCheckParams holds the flags for the nec check command. Exported for
// testing.
type NECCheckParams struct {
	Name        string
	Type        string
	PowerWatts  float64
	Current     float64
	Voltage     float64
	Phases      int
	Continuous  bool
	Motor       bool
	WetLocation bool
	DistanceFt  float64

	// File switches to fleet mode: check every item in a YAML manifest.
	File        string
	Concurrency int
}

func newNECCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{Use: "nec", Short: "NEC electrical compliance commands"}
	cmd.AddCommand(newNECCheckCmd(cfg))
	return cmd
}

// newNECCheckCmd creates the "nec check" subcommand: a complete compliance
// checklist for one piece of equipment.
func newNECCheckCmd(cfg *config.Config) *cobra.Command {
	var params NECCheckParams

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the NEC compliance checklist for a piece of equipment",
		Long: `Check branch-circuit sizing, grounding conductor, motor and HVAC
conductor rules, GFCI requirements and voltage drop against NEC 2023
articles 210, 215, 250, 430 and 440.

With --file, checks every piece of equipment in a YAML manifest instead of
a single item described by flags.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if params.File != "" {
				return executeNECFleetCheck(cmd, cfg, params)
			}
			return executeNECCheck(cmd, cfg, params)
		},
	}

	cmd.Flags().StringVar(&params.Name, "name", "", "equipment name")
	cmd.Flags().StringVar(&params.Type, "type", "", "equipment type (hvac, chiller, dehumidifier, humidifier, irrigation, lighting, fan, pump, other)")
	cmd.Flags().Float64Var(&params.PowerWatts, "power", 0, "nameplate power in watts (optional)")
	cmd.Flags().Float64Var(&params.Current, "current", 0, "load current in amps")
	cmd.Flags().Float64Var(&params.Voltage, "voltage", 0, "supply voltage")
	cmd.Flags().IntVar(&params.Phases, "phases", 1, "1 or 3 phase")
	cmd.Flags().BoolVar(&params.Continuous, "continuous", false, "load runs 3 hours or more")
	cmd.Flags().BoolVar(&params.Motor, "motor", false, "motor load per article 430")
	cmd.Flags().BoolVar(&params.WetLocation, "wet-location", false, "installed in a wet location")
	cmd.Flags().Float64Var(&params.DistanceFt, "distance", 0, "one-way circuit distance in feet")

	cmd.Flags().StringVar(&params.File, "file", "", "YAML equipment manifest for fleet mode")
	cmd.Flags().IntVar(&params.Concurrency, "concurrency", 0, "max concurrent fleet checks (default 4)")

	return cmd
}

func executeNECFleetCheck(cmd *cobra.Command, cfg *config.Config, params NECCheckParams) error {
	items, err := fleet.Load(params.File)
	if err != nil {
		return err
	}

	results, err := fleet.CheckAll(cmd.Context(), items, params.Concurrency)
	if err != nil {
		return err
	}

	rep := report.New(report.EngineNEC, results)
	return emitReport(cmd, cfg, rep, func(w io.Writer) error {
		return renderFleetResults(w, results)
	})
}

// renderFleetResults writes each item's checklist, or its error line.
func renderFleetResults(w io.Writer, results []fleet.Result) error {
	styled := isWriterTerminal(w)
	for _, result := range results {
		if result.Error != "" {
			line := fmt.Sprintf("%s %s: %s", statusLabel(false, styled), result.Name, result.Error)
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
			continue
		}
		if err := renderNECChecklist(w, result.Checklist); err != nil {
			return err
		}
	}
	return nil
}

func executeNECCheck(cmd *cobra.Command, cfg *config.Config, params NECCheckParams) error {
	eq := nec.Equipment{
		Name:        params.Name,
		Type:        nec.EquipmentType(params.Type),
		PowerWatts:  params.PowerWatts,
		Current:     params.Current,
		Voltage:     params.Voltage,
		Phases:      params.Phases,
		Continuous:  params.Continuous,
		Motor:       params.Motor,
		WetLocation: params.WetLocation,
	}

	checklist, err := nec.PerformCompleteComplianceCheck(cmd.Context(), eq, params.DistanceFt)
	if err != nil {
		return err
	}

	rep := report.New(report.EngineNEC, checklist)
	return emitReport(cmd, cfg, rep, func(w io.Writer) error {
		return renderNECChecklist(w, checklist)
	})
}

// renderNECChecklist writes the checklist as one line per article check.
func renderNECChecklist(w io.Writer, checklist *nec.Checklist) error {
	styled := isWriterTerminal(w)
	p := newPrinter()

	var body strings.Builder
	for _, check := range checklist.Checks {
		body.WriteString(fmt.Sprintf("%-6s %-12s %s\n",
			statusLabel(check.IsCompliant, styled), check.Article, check.Requirement))
		if check.Notes != "" {
			body.WriteString(fmt.Sprintf("       %s\n", check.Notes))
		}
	}

	title := p.Sprintf("NEC COMPLIANCE: %s (%.1fA @ %.0fV)",
		checklist.Equipment.Name, checklist.Equipment.Current, checklist.Equipment.Voltage)
	return renderSection(w, title, strings.TrimRight(body.String(), "\n"))
}
