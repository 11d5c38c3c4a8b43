package energy

import "github.com/verdant-labs/greengauge/internal/engine/units"

// glazingProperty pairs a conduction U-value (BTU/hr·ft²·°F) with a solar
// heat gain coefficient.
type glazingProperty struct {
	uValue float64
	shgc   float64
}

var glazingTable = map[GlazingType]glazingProperty{
	GlazingGlass:         {uValue: 1.13, shgc: 0.8},
	GlazingPolycarbonate: {uValue: 0.58, shgc: 0.7},
	GlazingPolyethylene:  {uValue: 1.15, shgc: 0.85},
}

// defaultGlazing is the fallback for unknown glazing types.
const defaultGlazing = GlazingPolyethylene

// glazingFor returns the table row for g; ok reports whether g was
// tabulated.
func glazingFor(g GlazingType) (glazingProperty, bool) {
	p, ok := glazingTable[g]
	if !ok {
		p = glazingTable[defaultGlazing]
	}
	return p, ok
}

const (
	// defaultAirChangesPerHr is the infiltration rate assumed for a
	// reasonably tight greenhouse.
	defaultAirChangesPerHr = 0.5

	// airHeatCapacityBTU is the heat capacity of air per cubic foot per °F.
	airHeatCapacityBTU = 0.018

	// windFactorReferenceMPH and windFactorSlope define the wind scaling
	// 1 + (wind − 10)·0.02 applied to the envelope loss.
	windFactorReferenceMPH = 10.0
	windFactorSlope        = 0.02

	// sensibleHeatFactor is the 1.08 constant in Q = CFM·1.08·ΔT.
	sensibleHeatFactor = 1.08
)

// CalculateHeatLoss returns the design heat loss in BTU/hr: envelope
// conduction plus infiltration, scaled by the wind factor. insideTempF is
// typically the night setpoint against the design outdoor temperature.
func CalculateHeatLoss(specs GreenhouseSpecs, insideTempF float64, weather WeatherConditions) float64 {
	deltaT := insideTempF - weather.OutsideTempF
	if deltaT <= 0 {
		return 0
	}

	glazing, _ := glazingFor(specs.Glazing)
	conduction := glazing.uValue * specs.SurfaceAreaSqFt() * deltaT

	airChanges := specs.AirChanges
	if airChanges <= 0 {
		airChanges = defaultAirChangesPerHr
	}
	infiltration := specs.VolumeCuFt() * airChanges * airHeatCapacityBTU * deltaT

	windFactor := 1 + (weather.WindSpeedMPH-windFactorReferenceMPH)*windFactorSlope
	return (conduction + infiltration) * windFactor
}

// CalculateSolarHeatGain returns the solar gain in BTU/hr: glazing area
// times cloud-reduced radiation times the glazing solar heat gain
// coefficient.
func CalculateSolarHeatGain(specs GreenhouseSpecs, weather WeatherConditions) float64 {
	glazing, _ := glazingFor(specs.Glazing)
	effectiveWM2 := weather.SolarRadiationWM2 * (1 - weather.CloudCover)
	return specs.FloorAreaSqFt() * effectiveWM2 * units.WattsPerSqMToBTUPerHrSqFt * glazing.shgc
}

// CalculateEvaporativeCooling returns pad-and-fan cooling capacity in
// BTU/hr: airflow × 1.08 × wet-bulb depression × pad efficiency.
func CalculateEvaporativeCooling(airflowCFM, dryBulbF, wetBulbF, padEfficiency float64) float64 {
	depression := dryBulbF - wetBulbF
	if depression <= 0 {
		return 0
	}
	return airflowCFM * sensibleHeatFactor * depression * padEfficiency
}
