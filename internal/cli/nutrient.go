package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verdant-labs/greengauge/internal/config"
	"github.com/verdant-labs/greengauge/internal/engine/nutrient"
	"github.com/verdant-labs/greengauge/internal/report"
)

// NutrientCalculateParams holds the flags for the nutrient calculate
// command. Exported for testing.
type NutrientCalculateParams struct {
	Profile      string
	Stage        string
	AgeDays      float64
	LeafCount    float64
	VarietyYield float64

	TempC       float64
	LightPPFD   float64
	CO2PPM      float64
	HumidityPct float64

	TargetYieldKg float64
	QualityFocus  string
}

func newNutrientCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{Use: "nutrient", Short: "Crop nutrition commands"}
	cmd.AddCommand(newNutrientCalculateCmd(cfg), newNutrientDiagnoseCmd(cfg))
	return cmd
}

// newNutrientCalculateCmd creates the "nutrient calculate" subcommand:
// stage- and environment-adjusted element targets with EC, pH and feed
// volume.
func newNutrientCalculateCmd(cfg *config.Config) *cobra.Command {
	var params NutrientCalculateParams

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Compute nutrient requirements for a crop",
		Long: `Scale a nutrition profile's base concentrations by growth stage,
environmental deviation from reference conditions, plant age and production
targets, and report the adjusted element targets, EC, pH, water uptake and
daily feed volume.

Available profiles: ` + strings.Join(nutrient.ProfileNames(), ", ") + `.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeNutrientCalculate(cmd, cfg, params)
		},
	}

	cmd.Flags().StringVar(&params.Profile, "profile", "standard", "nutrition profile name")
	cmd.Flags().StringVar(&params.Stage, "stage", "", "growth stage (seedling, vegetative, flowering, fruiting, ripening)")
	cmd.Flags().Float64Var(&params.AgeDays, "age", 0, "plant age in days")
	cmd.Flags().Float64Var(&params.LeafCount, "leaves", 0, "leaf count for canopy estimation")
	cmd.Flags().Float64Var(&params.VarietyYield, "variety-yield", 0, "variety reference yield in kg")
	cmd.Flags().Float64Var(&params.TempC, "temp", 0, "air temperature in degC")
	cmd.Flags().Float64Var(&params.LightPPFD, "light", 0, "light intensity in umol/m2/s")
	cmd.Flags().Float64Var(&params.CO2PPM, "co2", 0, "CO2 concentration in ppm")
	cmd.Flags().Float64Var(&params.HumidityPct, "humidity", 0, "relative humidity in percent")
	cmd.Flags().Float64Var(&params.TargetYieldKg, "target-yield", 0, "production yield target in kg")
	cmd.Flags().StringVar(&params.QualityFocus, "quality-focus", "", "production focus (yield, balanced, flavor)")

	_ = cmd.MarkFlagRequired("stage")
	_ = cmd.MarkFlagRequired("temp")

	return cmd
}

func executeNutrientCalculate(cmd *cobra.Command, cfg *config.Config, params NutrientCalculateParams) error {
	plant := nutrient.PlantParameters{
		AgeDays:        params.AgeDays,
		Stage:          nutrient.GrowthStage(params.Stage),
		LeafCount:      params.LeafCount,
		VarietyYieldKg: params.VarietyYield,
	}
	env := nutrient.EnvironmentalConditions{
		TempC:       params.TempC,
		LightPPFD:   params.LightPPFD,
		CO2PPM:      params.CO2PPM,
		HumidityPct: params.HumidityPct,
	}
	targets := nutrient.ProductionTargets{
		TargetYieldKg: params.TargetYieldKg,
		QualityFocus:  nutrient.QualityFocus(params.QualityFocus),
	}

	result, err := nutrient.CalculateRequirements(cmd.Context(), params.Profile, plant, env, targets)
	if err != nil {
		return err
	}

	rep := report.New(report.EngineNutrient, result)
	return emitReport(cmd, cfg, rep, func(w io.Writer) error {
		return renderNutrientRequirements(w, result)
	})
}

// renderNutrientRequirements writes the adjusted element targets and the
// solution setpoints.
func renderNutrientRequirements(w io.Writer, result *nutrient.Requirements) error {
	p := newPrinter()

	var body strings.Builder
	body.WriteString(p.Sprintf("Profile   %s (%s, modifier %.3f)\n\n",
		result.Profile, result.Stage, result.CompositeModifier))
	body.WriteString(p.Sprintf("N   %6.1f ppm    Mg  %6.1f ppm\n", result.Nutrients.Nitrogen, result.Nutrients.Magnesium))
	body.WriteString(p.Sprintf("P   %6.1f ppm    Fe  %6.2f ppm\n", result.Nutrients.Phosphorus, result.Nutrients.Iron))
	body.WriteString(p.Sprintf("K   %6.1f ppm    Mn  %6.2f ppm\n", result.Nutrients.Potassium, result.Nutrients.Manganese))
	body.WriteString(p.Sprintf("Ca  %6.1f ppm    Zn  %6.2f ppm\n", result.Nutrients.Calcium, result.Nutrients.Zinc))
	body.WriteString(p.Sprintf("S   %6.1f ppm    B   %6.2f ppm\n\n", result.Nutrients.Sulfur, result.Nutrients.Boron))
	body.WriteString(p.Sprintf("EC  %.2f mS/cm   pH  %.1f\n", result.EC, result.PH))
	body.WriteString(p.Sprintf("Water uptake  %.2f L/day    Feed  %.2f L/day\n",
		result.WaterUptakeLDay, result.FeedVolumeLDay))
	if result.EstimatedYieldKg > 0 {
		body.WriteString(p.Sprintf("Estimated yield  %.1f kg\n", result.EstimatedYieldKg))
	}

	return renderSection(w, "NUTRIENT REQUIREMENTS", strings.TrimRight(body.String(), "\n"))
}

// newNutrientDiagnoseCmd creates the "nutrient diagnose" subcommand:
// deficiency detection from measured solution concentrations.
func newNutrientDiagnoseCmd(cfg *config.Config) *cobra.Command {
	var (
		current  []string
		required []string
	)

	cmd := &cobra.Command{
		Use:   "diagnose",
		Short: "Diagnose nutrient deficiencies from solution measurements",
		Long: `Compare measured element concentrations against required levels and
report deficiencies outside each element's tolerance band, ordered by
severity, with symptoms and remediation guidance.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeNutrientDiagnose(cmd, cfg, current, required)
		},
	}

	cmd.Flags().StringArrayVar(&current, "current", nil, "measured element=ppm (repeatable, e.g. nitrogen=100)")
	cmd.Flags().StringArrayVar(&required, "required", nil, "required element=ppm (repeatable)")

	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("required")

	return cmd
}

// ParseElementLevels parses element=ppm flag values. Exported for testing.
func ParseElementLevels(specs []string) (nutrient.Nutrients, error) {
	values := make(map[string]float64, len(specs))
	for _, s := range specs {
		name, ppmStr, found := strings.Cut(s, "=")
		if !found {
			return nutrient.Nutrients{}, fmt.Errorf("invalid element level %q: expected element=ppm", s)
		}
		ppm, err := strconv.ParseFloat(strings.TrimSpace(ppmStr), 64)
		if err != nil {
			return nutrient.Nutrients{}, fmt.Errorf("invalid ppm value in %q: %w", s, err)
		}
		values[strings.ToLower(strings.TrimSpace(name))] = ppm
	}
	return nutrient.FromMap(values)
}

func executeNutrientDiagnose(cmd *cobra.Command, cfg *config.Config, currentSpecs, requiredSpecs []string) error {
	current, err := ParseElementLevels(currentSpecs)
	if err != nil {
		return err
	}
	required, err := ParseElementLevels(requiredSpecs)
	if err != nil {
		return err
	}

	diag := nutrient.DiagnoseDeficiencies(cmd.Context(), current, required)

	rep := report.New(report.EngineNutrient, diag)
	return emitReport(cmd, cfg, rep, func(w io.Writer) error {
		return renderNutrientDiagnosis(w, diag)
	})
}

// renderNutrientDiagnosis writes one block per deficiency, worst first.
func renderNutrientDiagnosis(w io.Writer, diag nutrient.Diagnosis) error {
	styled := isWriterTerminal(w)
	p := newPrinter()

	if len(diag.Deficiencies) == 0 {
		return renderSection(w, "NUTRIENT DIAGNOSIS", "All measured elements are within tolerance.")
	}

	var body strings.Builder
	for i, def := range diag.Deficiencies {
		if i > 0 {
			body.WriteString("\n")
		}
		header := p.Sprintf("%s: %.1f ppm measured, %.1f ppm required (%.0f%% deficit)",
			def.Nutrient, def.CurrentPPM, def.RequiredPPM, def.SeverityPct)
		if styled {
			header = failStyle().Render(header)
		}
		body.WriteString(header + "\n")
		for _, symptom := range def.Symptoms {
			body.WriteString("  - " + symptom + "\n")
		}
		if def.Remediation != "" {
			body.WriteString("  > " + def.Remediation + "\n")
		}
	}

	return renderSection(w, "NUTRIENT DIAGNOSIS", strings.TrimRight(body.String(), "\n"))
}
