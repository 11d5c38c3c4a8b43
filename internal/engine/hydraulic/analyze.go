package hydraulic

import (
	"context"
	"fmt"

	"github.com/verdant-labs/greengauge/internal/engine"
	"github.com/verdant-labs/greengauge/internal/engine/units"
	"github.com/verdant-labs/greengauge/internal/logging"
)

const (
	// defaultMaxVelocityFtS is the ASABE-style velocity limit applied when
	// the caller does not set one.
	defaultMaxVelocityFtS = 5.0

	// defaultPressureTolerancePSI is the allowed shortfall between available
	// and required outlet pressure before a warning fires.
	defaultPressureTolerancePSI = 5.0

	// minDistributionUniformity is the DU floor for the ASABE verdict.
	minDistributionUniformity = 80.0
)

// AnalyzeSystem is the composite hydraulic entry point. It derives velocity,
// Reynolds number and regime, Hazen-Williams friction, minor and elevation
// losses, available pressure and margin against the required outlet
// pressure, water-hammer surge and risk band, uniformity metrics when
// emitter flows are supplied, and the overall compliance verdict. A
// non-nil soil record adds infiltration guidance to the recommendations.
//
// Input validation failures are returned as *engine.InvalidInputError;
// beyond that the analysis is total.
func AnalyzeSystem(
	ctx context.Context,
	params CalculationParams,
	pipe PipeSpecifications,
	soil *SoilProperties,
) (*AnalysisResult, error) {
	log := logging.FromContext(ctx)

	if err := engine.ValidateStruct(params); err != nil {
		return nil, err
	}
	if err := validatePipe(pipe); err != nil {
		return nil, err
	}
	for _, f := range params.EmitterFlowsGPH {
		if err := engine.RequirePositive("emitterFlowsGPH", f); err != nil {
			return nil, err
		}
	}

	maxVelocity := params.MaxVelocityFtS
	if maxVelocity <= 0 {
		maxVelocity = defaultMaxVelocityFtS
	}
	tolerance := params.PressureTolerancePSI
	if tolerance <= 0 {
		tolerance = defaultPressureTolerancePSI
	}

	log.Debug().
		Str("component", "hydraulic").
		Str("operation", "analyze_system").
		Float64("flow_gpm", params.FlowRateGPM).
		Float64("diameter_in", params.PipeDiameterIn).
		Msg("starting system analysis")

	result := &AnalysisResult{}

	// Zero water temperature means unspecified and keeps the 68°F default
	// viscosity.
	viscosity := 0.0
	viscosityClamped := false
	if params.WaterTempF > 0 {
		viscosity, viscosityClamped = WaterViscosityFtSqS(params.WaterTempF)
	}

	result.VelocityFtS = Velocity(params.FlowRateGPM, params.PipeDiameterIn)
	result.ReynoldsNumber = ReynoldsNumber(result.VelocityFtS, params.PipeDiameterIn, viscosity)
	result.FlowRegime = ClassifyRegime(result.ReynoldsNumber)

	result.FrictionLossPSI = HazenWilliamsLossPSI(
		params.FlowRateGPM, params.PipeLengthFt, params.PipeDiameterIn, pipe.HazenWilliamsC,
	)

	minor, extrapolated := MinorLossPSI(params.Fittings, result.VelocityFtS)
	result.MinorLossPSI = minor
	result.Extrapolated = extrapolated || viscosityClamped

	result.ElevationLossPSI = params.ElevationChangeFt * units.FtHeadToPSI
	result.TotalLossPSI = result.FrictionLossPSI + result.MinorLossPSI + result.ElevationLossPSI
	result.AvailablePSI = params.InletPressurePSI - result.TotalLossPSI
	result.PressureMarginPSI = result.AvailablePSI - params.RequiredOutletPressurePSI

	result.WaveSpeedFtS = WaveSpeedFtS(params.PipeDiameterIn, pipe.WallThicknessIn, pipe.ElasticModulusPSI)
	result.MaxPressureRisePSI = JoukowskyRisePSI(result.WaveSpeedFtS, result.VelocityFtS)
	result.WaterHammerRisk = ClassifyHammerRisk(result.MaxPressureRisePSI)

	duPass := true
	if len(params.EmitterFlowsGPH) > 0 {
		result.DistributionUniformity = DistributionUniformity(params.EmitterFlowsGPH)
		result.EmissionUniformity = EmissionUniformity(params.EmitterFlowsGPH)
		duPass = result.DistributionUniformity >= minDistributionUniformity
	}

	result.VelocityCompliance = result.VelocityFtS <= maxVelocity
	result.PressureCompliance = result.PressureMarginPSI >= 0
	result.ASABECompliance = result.VelocityCompliance && result.PressureCompliance && duPass

	annotate(result, params, pipe, soil, maxVelocity, tolerance, duPass)

	log.Info().
		Str("component", "hydraulic").
		Float64("velocity_fts", result.VelocityFtS).
		Str("regime", string(result.FlowRegime)).
		Bool("asabe_compliant", result.ASABECompliance).
		Msg("system analysis complete")

	return result, nil
}

// validatePipe rejects reference records whose numeric fields are not
// physically valid.
func validatePipe(pipe PipeSpecifications) error {
	if err := engine.RequirePositive("pipe.hazenWilliamsC", pipe.HazenWilliamsC); err != nil {
		return err
	}
	if err := engine.RequirePositive("pipe.elasticModulusPSI", pipe.ElasticModulusPSI); err != nil {
		return err
	}
	if err := engine.RequirePositive("pipe.wallThicknessIn", pipe.WallThicknessIn); err != nil {
		return err
	}
	return nil
}

// annotate emits the human-readable warnings and recommendations for a
// completed analysis.
// lowInfiltrationInPerHr marks soils slow enough to need cycled irrigation.
const lowInfiltrationInPerHr = 0.5

func annotate(
	result *AnalysisResult,
	params CalculationParams,
	pipe PipeSpecifications,
	soil *SoilProperties,
	maxVelocity, tolerance float64,
	duPass bool,
) {
	if !result.VelocityCompliance {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"Velocity %.1f ft/s exceeds the %.1f ft/s limit", result.VelocityFtS, maxVelocity,
		))
		result.Recommendations = append(result.Recommendations,
			"Increase pipe diameter or split the flow across parallel laterals to reduce velocity.",
		)
	}

	if result.PressureMarginPSI < -tolerance {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"Available pressure %.1f PSI is %.1f PSI short of the required %.1f PSI outlet pressure",
			result.AvailablePSI, -result.PressureMarginPSI, params.RequiredOutletPressurePSI,
		))
		result.Recommendations = append(result.Recommendations,
			"Raise inlet pressure, shorten the run, or reduce friction losses with a larger diameter.",
		)
	} else if !result.PressureCompliance {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"Pressure margin %.1f PSI is negative but within the %.1f PSI tolerance",
			result.PressureMarginPSI, tolerance,
		))
	}

	if result.WaterHammerRisk != HammerRiskLow {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"Water hammer risk is %s: potential surge of %.0f PSI",
			result.WaterHammerRisk, result.MaxPressureRisePSI,
		))
		result.Recommendations = append(result.Recommendations,
			"Use slow-closing valves or add surge protection near quick-acting valves.",
		)
		if result.MaxPressureRisePSI+params.InletPressurePSI > pipe.WorkingPressurePSI {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"Surge plus operating pressure exceeds the pipe working pressure rating of %.0f PSI",
				pipe.WorkingPressurePSI,
			))
		}
	}

	if !duPass {
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"Distribution uniformity %.1f%% is below the %.0f%% minimum",
			result.DistributionUniformity, minDistributionUniformity,
		))
		result.Recommendations = append(result.Recommendations,
			"Check for clogged emitters and rebalance lateral pressures to improve uniformity.",
		)
	}

	if soil != nil {
		result.Recommendations = append(result.Recommendations, fmt.Sprintf(
			"Keep the application rate below the %s infiltration rate of %.2f in/hr to avoid runoff.",
			soil.Type, soil.InfiltrationRateIn,
		))
		if soil.InfiltrationRateIn < lowInfiltrationInPerHr {
			result.Recommendations = append(result.Recommendations,
				"Use shorter, repeated irrigation cycles on this slowly infiltrating soil.",
			)
		}
	}
}
