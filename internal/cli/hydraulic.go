package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verdant-labs/greengauge/internal/config"
	"github.com/verdant-labs/greengauge/internal/engine/hydraulic"
	"github.com/verdant-labs/greengauge/internal/report"
)

// HydraulicAnalyzeParams holds the flags for the hydraulic analyze command.
// Exported for testing.
type HydraulicAnalyzeParams struct {
	FlowGPM           float64
	DiameterIn        float64
	LengthFt          float64
	InletPressurePSI  float64
	OutletPressurePSI float64
	ElevationFt       float64
	Material          string
	Soil              string
	Fittings          []string // type=quantity format
	EmitterFlowsGPH   []float64
	WaterTempF        float64
	MaxVelocityFtS    float64
	TolerancePSI      float64
}

func newHydraulicCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{Use: "hydraulic", Short: "Irrigation hydraulics commands"}
	cmd.AddCommand(newHydraulicAnalyzeCmd(cfg))
	return cmd
}

// newHydraulicAnalyzeCmd creates the "hydraulic analyze" subcommand: the
// full pipe run analysis from velocity through water hammer and uniformity.
func newHydraulicAnalyzeCmd(cfg *config.Config) *cobra.Command {
	var params HydraulicAnalyzeParams

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a pipe run for losses, water hammer and uniformity",
		Long: `Compute velocity, Reynolds number, Hazen-Williams friction loss, minor
losses, the pressure margin at the outlet, Joukowsky water hammer risk and,
when emitter flows are supplied, distribution and emission uniformity.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeHydraulicAnalyze(cmd, cfg, params)
		},
	}

	cmd.Flags().Float64Var(&params.FlowGPM, "flow", 0, "flow rate in GPM")
	cmd.Flags().Float64Var(&params.DiameterIn, "diameter", 0, "inside pipe diameter in inches")
	cmd.Flags().Float64Var(&params.LengthFt, "length", 0, "pipe length in feet")
	cmd.Flags().Float64Var(&params.InletPressurePSI, "inlet-pressure", 0, "inlet pressure in PSI")
	cmd.Flags().Float64Var(&params.OutletPressurePSI, "outlet-pressure", 0, "required outlet pressure in PSI")
	cmd.Flags().Float64Var(&params.ElevationFt, "elevation", 0, "elevation change in feet (positive = uphill)")
	cmd.Flags().StringVar(&params.Material, "material", "pvc", "pipe material (pvc, hdpe, steel, aluminum, poly_tubing)")
	cmd.Flags().StringVar(&params.Soil, "soil", "", "USDA soil texture for infiltration guidance (sand, loamy_sand, sandy_loam, loam, clay_loam, clay)")
	cmd.Flags().StringArrayVar(&params.Fittings, "fitting", nil, "fitting type=quantity (repeatable, e.g. elbow_90=4)")
	cmd.Flags().Float64SliceVar(&params.EmitterFlowsGPH, "emitter-flow", nil, "emitter flows in GPH for uniformity analysis")
	cmd.Flags().Float64Var(&params.WaterTempF, "water-temp", 0, "water temperature in degF")
	cmd.Flags().Float64Var(&params.MaxVelocityFtS, "max-velocity", 0, "velocity limit in ft/s (default 5)")
	cmd.Flags().Float64Var(&params.TolerancePSI, "pressure-tolerance", 0, "allowed outlet pressure shortfall in PSI before warning (default 5)")

	_ = cmd.MarkFlagRequired("flow")
	_ = cmd.MarkFlagRequired("diameter")
	_ = cmd.MarkFlagRequired("length")
	_ = cmd.MarkFlagRequired("inlet-pressure")

	return cmd
}

// ParseFittings parses --fitting type=quantity flags. Exported for testing.
func ParseFittings(specs []string) ([]hydraulic.Fitting, error) {
	fittings := make([]hydraulic.Fitting, 0, len(specs))
	for _, s := range specs {
		name, qtyStr, found := strings.Cut(s, "=")
		if !found {
			return nil, fmt.Errorf("invalid fitting %q: expected type=quantity", s)
		}
		qty, err := strconv.Atoi(strings.TrimSpace(qtyStr))
		if err != nil || qty <= 0 {
			return nil, fmt.Errorf("invalid fitting quantity in %q: expected a positive integer", s)
		}
		fittings = append(fittings, hydraulic.Fitting{
			Type:     hydraulic.FittingType(strings.TrimSpace(name)),
			Quantity: qty,
		})
	}
	return fittings, nil
}

func executeHydraulicAnalyze(cmd *cobra.Command, cfg *config.Config, params HydraulicAnalyzeParams) error {
	fittings, err := ParseFittings(params.Fittings)
	if err != nil {
		return err
	}

	tolerance := params.TolerancePSI
	if tolerance == 0 {
		tolerance = cfg.Hydraulic.PressureTolerancePSI
	}

	calcParams := hydraulic.CalculationParams{
		FlowRateGPM:               params.FlowGPM,
		PipeDiameterIn:            params.DiameterIn,
		PipeLengthFt:              params.LengthFt,
		InletPressurePSI:          params.InletPressurePSI,
		RequiredOutletPressurePSI: params.OutletPressurePSI,
		ElevationChangeFt:         params.ElevationFt,
		Fittings:                  fittings,
		EmitterFlowsGPH:           params.EmitterFlowsGPH,
		WaterTempF:                params.WaterTempF,
		MaxVelocityFtS:            params.MaxVelocityFtS,
		PressureTolerancePSI:      tolerance,
	}

	pipe, known := hydraulic.PipeSpecFor(hydraulic.PipeMaterial(params.Material))
	if !known {
		logger.Warn().Str("material", params.Material).Msg("unknown pipe material, using pvc")
	}

	var soil *hydraulic.SoilProperties
	if params.Soil != "" {
		props, known := hydraulic.SoilPropertiesFor(hydraulic.SoilType(params.Soil))
		if !known {
			logger.Warn().Str("soil", params.Soil).Msg("unknown soil type, using loam")
		}
		soil = &props
	}

	result, err := hydraulic.AnalyzeSystem(cmd.Context(), calcParams, pipe, soil)
	if err != nil {
		return err
	}

	rep := report.New(report.EngineHydraulic, result)
	return emitReport(cmd, cfg, rep, func(w io.Writer) error {
		return renderHydraulicResult(w, result)
	})
}

// renderHydraulicResult writes the analysis as labelled figures followed by
// the compliance verdicts and any warnings.
func renderHydraulicResult(w io.Writer, result *hydraulic.AnalysisResult) error {
	styled := isWriterTerminal(w)
	p := newPrinter()

	var body strings.Builder
	body.WriteString(p.Sprintf("Velocity            %.2f ft/s (%s)\n", result.VelocityFtS, result.FlowRegime))
	body.WriteString(p.Sprintf("Reynolds number     %.0f\n", result.ReynoldsNumber))
	body.WriteString(p.Sprintf("Friction loss       %.2f PSI\n", result.FrictionLossPSI))
	body.WriteString(p.Sprintf("Minor losses        %.2f PSI\n", result.MinorLossPSI))
	body.WriteString(p.Sprintf("Elevation loss      %.2f PSI\n", result.ElevationLossPSI))
	body.WriteString(p.Sprintf("Pressure margin     %.2f PSI\n", result.PressureMarginPSI))
	body.WriteString(p.Sprintf("Water hammer        %.0f PSI rise (%s risk)\n",
		result.MaxPressureRisePSI, result.WaterHammerRisk))
	if result.DistributionUniformity > 0 {
		body.WriteString(p.Sprintf("Distribution unif.  %.1f%%\n", result.DistributionUniformity))
		body.WriteString(p.Sprintf("Emission unif.      %.1f%%\n", result.EmissionUniformity))
	}
	body.WriteString(fmt.Sprintf("\n%s velocity   %s pressure   %s ASABE",
		statusLabel(result.VelocityCompliance, styled),
		statusLabel(result.PressureCompliance, styled),
		statusLabel(result.ASABECompliance, styled)))

	if err := renderSection(w, "HYDRAULIC ANALYSIS", body.String()); err != nil {
		return err
	}
	return renderWarnings(w, result.Warnings, result.Recommendations)
}
