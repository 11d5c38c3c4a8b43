package nutrient

import (
	"context"
	"math"

	"github.com/verdant-labs/greengauge/internal/engine"
	"github.com/verdant-labs/greengauge/internal/logging"
)

// Environmental reference points: deviations from these drive the linear
// response factors.
const (
	referenceTempC       = 22.0
	referenceLightPPFD   = 400.0
	referenceCO2PPM      = 400.0
	referenceHumidityPct = 65.0
)

const (
	// establishmentDays is the ramp length for the age modifier: newly
	// transplanted crops scale from 0 to full feed over this period.
	establishmentDays = 21.0

	// Quality modifiers by production focus.
	yieldFocusModifier  = 1.1
	flavorFocusModifier = 0.9

	// optimumTempFruitingC and optimumTempDefaultC anchor the
	// temperature-stress distance for growth-rate estimation.
	optimumTempFruitingC = 24.0
	optimumTempDefaultC  = 22.0

	// tempStressSlope is the relative growth penalty per °C away from the
	// optimum.
	tempStressSlope = 0.05

	// Water-uptake model: LAI proxy from leaf count, scaled by a base
	// daily uptake and environment.
	laiLogScale       = 0.5
	baseUptakeLPerDay = 1.5
	uptakeTempSlope   = 0.03
	leachingExcess    = 1.2
)

// CalculateRequirements is the composite nutrient entry point: it resolves
// the named profile and derives the feeding program for the given plant,
// environment and production targets.
//
// Every base concentration is multiplied by one composite modifier:
//
//	stage × temperature × light × CO2 × humidity × yield × quality × age
//
// The factors are multiplicative and unclamped; the engine reports what the
// model says and leaves sanity bounds to the caller. Input validation
// failures are returned as *engine.InvalidInputError.
func CalculateRequirements(
	ctx context.Context,
	profileName string,
	plant PlantParameters,
	env EnvironmentalConditions,
	targets ProductionTargets,
) (*Requirements, error) {
	log := logging.FromContext(ctx)

	profile, err := ProfileByName(profileName)
	if err != nil {
		return nil, engine.NewInvalidInput("profile", profileName, "unknown nutrient profile")
	}
	if err := engine.ValidateStruct(plant); err != nil {
		return nil, err
	}
	if !validStages[plant.Stage] {
		return nil, engine.NewInvalidInput("stage", string(plant.Stage), "unknown growth stage")
	}
	if err := engine.ValidateStruct(env); err != nil {
		return nil, err
	}
	if err := engine.ValidateStruct(targets); err != nil {
		return nil, err
	}

	log.Debug().
		Str("component", "nutrient").
		Str("operation", "calculate_requirements").
		Str("profile", profileName).
		Str("stage", string(plant.Stage)).
		Msg("deriving feeding program")

	modifier := CompositeModifier(profile, plant, env, targets)

	uptake := WaterUptake(plant, env)

	growthRate := GrowthRate(plant, env)
	estimatedYield := 0.0
	if plant.VarietyYieldKg > 0 {
		estimatedYield = plant.VarietyYieldKg * growthRate
	}

	req := &Requirements{
		Profile:           profile.Name,
		Stage:             plant.Stage,
		Nutrients:         profile.Base.Scale(modifier),
		EC:                profile.BaseEC * modifier,
		PH:                profile.TargetPH,
		CompositeModifier: modifier,
		WaterUptakeLDay:   uptake,
		FeedVolumeLDay:    uptake * leachingExcess,
		GrowthRate:        growthRate,
		EstimatedYieldKg:  estimatedYield,
	}

	log.Info().
		Str("component", "nutrient").
		Str("profile", profile.Name).
		Float64("composite_modifier", modifier).
		Msg("feeding program derived")

	return req, nil
}

// CompositeModifier computes the single multiplicative scaling applied to
// every base concentration.
func CompositeModifier(
	profile Profile,
	plant PlantParameters,
	env EnvironmentalConditions,
	targets ProductionTargets,
) float64 {
	stageMult := profile.StageMults[plant.Stage]

	envFactor := environmentFactor(profile.EnvCoeffs, env)

	yieldMod := 1.0
	if targets.TargetYieldKg > 0 && plant.VarietyYieldKg > 0 {
		yieldMod = targets.TargetYieldKg / plant.VarietyYieldKg
	}

	qualityMod := 1.0
	switch targets.QualityFocus {
	case FocusYield:
		qualityMod = yieldFocusModifier
	case FocusFlavor:
		qualityMod = flavorFocusModifier
	}

	ageMod := plant.AgeDays / establishmentDays
	if ageMod > 1 {
		ageMod = 1
	}

	return stageMult * envFactor * yieldMod * qualityMod * ageMod
}

// environmentFactor multiplies the four linear environmental responses.
func environmentFactor(coeffs EnvironmentCoefficients, env EnvironmentalConditions) float64 {
	tempDev := (env.TempC - referenceTempC) / referenceTempC
	lightDev := (env.LightPPFD - referenceLightPPFD) / referenceLightPPFD

	co2 := env.CO2PPM
	if co2 <= 0 {
		co2 = referenceCO2PPM
	}
	co2Dev := (co2 - referenceCO2PPM) / referenceCO2PPM

	humidityDev := (env.HumidityPct - referenceHumidityPct) / referenceHumidityPct

	return (1 + tempDev*coeffs.Temperature) *
		(1 + lightDev*coeffs.Light) *
		(1 + co2Dev*coeffs.CO2) *
		(1 + humidityDev*coeffs.Humidity)
}

// WaterUptake estimates daily water consumption in litres from a leaf-area
// proxy and the environment.
func WaterUptake(plant PlantParameters, env EnvironmentalConditions) float64 {
	lai := math.Log(plant.LeafCount+1) * laiLogScale
	tempScale := 1 + (env.TempC-20)*uptakeTempSlope
	if tempScale < 0 {
		tempScale = 0
	}
	lightScale := lightSaturation(env.LightPPFD)
	return lai * baseUptakeLPerDay * tempScale * lightScale
}

// GrowthRate estimates relative growth (0..1-ish) from temperature stress
// and light saturation. The optimum is 24°C for fruiting crops and 22°C
// otherwise.
func GrowthRate(plant PlantParameters, env EnvironmentalConditions) float64 {
	optimum := optimumTempDefaultC
	if plant.Stage == StageFruiting {
		optimum = optimumTempFruitingC
	}

	stress := math.Abs(env.TempC - optimum)
	tempFactor := 1 - stress*tempStressSlope
	if tempFactor < 0 {
		tempFactor = 0
	}

	return tempFactor * lightSaturation(env.LightPPFD)
}

// lightSaturation ramps linearly to 1.0 at 400 PPFD and saturates above.
func lightSaturation(ppfd float64) float64 {
	f := ppfd / referenceLightPPFD
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}
