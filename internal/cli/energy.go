package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verdant-labs/greengauge/internal/config"
	"github.com/verdant-labs/greengauge/internal/engine/energy"
	"github.com/verdant-labs/greengauge/internal/report"
)

// EnergyDemandParams holds the flags for the energy demand command.
// Exported for testing.
type EnergyDemandParams struct {
	LengthFt      float64
	WidthFt       float64
	HeightFt      float64
	Glazing       string
	AirChanges    float64
	PadEfficiency float64

	DayTempF      float64
	NightTempF    float64
	CO2TargetPPM  float64
	TargetDLI     float64
	PhotoperiodHr float64

	OutsideTempF      float64
	WindSpeedMPH      float64
	SolarRadiationWM2 float64
	CloudCover        float64
	WetBulbF          float64
	AmbientCO2PPM     float64
	NaturalDLI        float64

	ElectricityPrice float64
}

func newEnergyCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{Use: "energy", Short: "Greenhouse energy demand commands"}
	cmd.AddCommand(newEnergyDemandCmd(cfg), newEnergyStorageCmd(cfg))
	return cmd
}

// newEnergyDemandCmd creates the "energy demand" subcommand: peak loads and
// annualized operating costs for one greenhouse under one design weather
// condition.
func newEnergyDemandCmd(cfg *config.Config) *cobra.Command {
	var params EnergyDemandParams

	cmd := &cobra.Command{
		Use:   "demand",
		Short: "Size heating, cooling, lighting, ventilation and CO2 loads",
		Long: `Compute peak heating load, evaporative cooling capacity, supplemental
lighting power, ventilation airflow and CO2 injection rate for a greenhouse,
with annual energy figures and costs for each subsystem.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeEnergyDemand(cmd, cfg, params)
		},
	}

	cmd.Flags().Float64Var(&params.LengthFt, "length", 0, "greenhouse length in feet")
	cmd.Flags().Float64Var(&params.WidthFt, "width", 0, "greenhouse width in feet")
	cmd.Flags().Float64Var(&params.HeightFt, "height", 0, "greenhouse height in feet")
	cmd.Flags().StringVar(&params.Glazing, "glazing", "polyethylene", "glazing (glass, polycarbonate, polyethylene)")
	cmd.Flags().Float64Var(&params.AirChanges, "air-changes", 0, "infiltration air changes per hour (default 0.5)")
	cmd.Flags().Float64Var(&params.PadEfficiency, "pad-efficiency", 0, "evaporative pad efficiency 0-1 (default 0.8)")

	cmd.Flags().Float64Var(&params.DayTempF, "day-temp", 0, "day setpoint in degF")
	cmd.Flags().Float64Var(&params.NightTempF, "night-temp", 0, "night setpoint in degF")
	cmd.Flags().Float64Var(&params.CO2TargetPPM, "co2-target", 0, "CO2 enrichment target in ppm")
	cmd.Flags().Float64Var(&params.TargetDLI, "dli", 0, "target daily light integral in mol/m2/day")
	cmd.Flags().Float64Var(&params.PhotoperiodHr, "photoperiod", 0, "photoperiod in hours (default 16)")

	cmd.Flags().Float64Var(&params.OutsideTempF, "outside-temp", 0, "design outside temperature in degF")
	cmd.Flags().Float64Var(&params.WindSpeedMPH, "wind", 10, "design wind speed in mph")
	cmd.Flags().Float64Var(&params.SolarRadiationWM2, "solar", 0, "solar radiation in W/m2")
	cmd.Flags().Float64Var(&params.CloudCover, "cloud", 0, "cloud cover fraction 0-1")
	cmd.Flags().Float64Var(&params.WetBulbF, "wet-bulb", 0, "outdoor wet bulb temperature in degF")
	cmd.Flags().Float64Var(&params.AmbientCO2PPM, "ambient-co2", 0, "ambient CO2 in ppm (default 420)")
	cmd.Flags().Float64Var(&params.NaturalDLI, "natural-dli", 0, "natural daily light integral in mol/m2/day")

	cmd.Flags().Float64Var(&params.ElectricityPrice, "electricity-price", 0, "electricity price in $/kWh (default from config)")

	_ = cmd.MarkFlagRequired("length")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")
	_ = cmd.MarkFlagRequired("day-temp")
	_ = cmd.MarkFlagRequired("night-temp")

	return cmd
}

func executeEnergyDemand(cmd *cobra.Command, cfg *config.Config, params EnergyDemandParams) error {
	specs := energy.GreenhouseSpecs{
		LengthFt:      params.LengthFt,
		WidthFt:       params.WidthFt,
		HeightFt:      params.HeightFt,
		Glazing:       energy.GlazingType(params.Glazing),
		AirChanges:    params.AirChanges,
		PadEfficiency: params.PadEfficiency,
	}
	setpoints := energy.ClimateSetpoints{
		DayTempF:      params.DayTempF,
		NightTempF:    params.NightTempF,
		CO2TargetPPM:  params.CO2TargetPPM,
		TargetDLI:     params.TargetDLI,
		PhotoperiodHr: params.PhotoperiodHr,
	}
	weather := energy.WeatherConditions{
		OutsideTempF:      params.OutsideTempF,
		WindSpeedMPH:      params.WindSpeedMPH,
		SolarRadiationWM2: params.SolarRadiationWM2,
		CloudCover:        params.CloudCover,
		WetBulbF:          params.WetBulbF,
		AmbientCO2PPM:     params.AmbientCO2PPM,
		NaturalDLI:        params.NaturalDLI,
	}

	price := params.ElectricityPrice
	if price == 0 {
		price = cfg.Pricing.ElectricityPerKWh
	}

	result, err := energy.CalculateDemand(cmd.Context(), specs, setpoints, weather, price)
	if err != nil {
		return err
	}

	rep := report.New(report.EngineEnergy, result)
	return emitReport(cmd, cfg, rep, func(w io.Writer) error {
		return renderEnergyRequirements(w, result)
	})
}

// newEnergyStorageCmd creates the "energy storage" subcommand: thermal mass
// sizing for load shifting.
func newEnergyStorageCmd(cfg *config.Config) *cobra.Command {
	var (
		medium     string
		volume     float64
		efficiency float64
		heatLoss   float64
	)

	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Size a thermal storage mass",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result := energy.CalculateThermalStorage(
				energy.StorageMedium(medium), volume, efficiency, heatLoss)

			rep := report.New(report.EngineEnergy, result)
			return emitReport(cmd, cfg, rep, func(w io.Writer) error {
				return renderThermalStorage(w, result)
			})
		},
	}

	cmd.Flags().StringVar(&medium, "medium", "water", "storage medium (water, concrete, phase_change)")
	cmd.Flags().Float64Var(&volume, "volume", 0, "volume (gallons for water/phase_change, cubic feet for concrete)")
	cmd.Flags().Float64Var(&efficiency, "efficiency", 0, "round-trip efficiency 0-1 (default 1)")
	cmd.Flags().Float64Var(&heatLoss, "heat-loss", 0, "greenhouse heat loss in BTU/hr for offset hours")

	_ = cmd.MarkFlagRequired("volume")

	return cmd
}

func renderThermalStorage(w io.Writer, result energy.ThermalStorage) error {
	p := newPrinter()

	var body strings.Builder
	body.WriteString(p.Sprintf("Medium        %s\n", result.Medium))
	body.WriteString(p.Sprintf("Capacity      %.0f BTU\n", result.CapacityBTU))
	body.WriteString(p.Sprintf("Usable        %.0f BTU\n", result.UsableBTU))
	if result.OffsetHours > 0 {
		body.WriteString(p.Sprintf("Offset        %.1f heating hours\n", result.OffsetHours))
	}

	return renderSection(w, "THERMAL STORAGE", strings.TrimRight(body.String(), "\n"))
}

// renderEnergyRequirements writes one line per subsystem with its peak
// figure and annual cost, then the total.
func renderEnergyRequirements(w io.Writer, result *energy.Requirements) error {
	p := newPrinter()

	var body strings.Builder
	body.WriteString(p.Sprintf("Heating       %.0f BTU/hr peak      $%s/yr\n",
		result.Heating.PeakBTUPerHr, result.Heating.AnnualCost.StringFixed(2)))
	body.WriteString(p.Sprintf("Cooling       %.0f BTU/hr capacity  $%s/yr\n",
		result.Cooling.CapacityBTUPerHr, result.Cooling.AnnualCost.StringFixed(2)))
	body.WriteString(p.Sprintf("Lighting      %.0f W                $%s/yr\n",
		result.Lighting.PowerW, result.Lighting.AnnualCost.StringFixed(2)))
	body.WriteString(p.Sprintf("Ventilation   %.0f CFM              $%s/yr\n",
		result.Ventilation.AirflowCFM, result.Ventilation.AnnualCost.StringFixed(2)))
	body.WriteString(p.Sprintf("CO2           %.2f lb/hr            $%s/yr\n",
		result.CO2.GenerationLbPerHr, result.CO2.AnnualCost.StringFixed(2)))
	body.WriteString(p.Sprintf("\nTotal annual cost  $%s", result.TotalAnnualCost.StringFixed(2)))

	return renderSection(w, "ENERGY DEMAND", body.String())
}
