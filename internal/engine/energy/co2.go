package energy

const (
	// co2MassFactor converts a volumetric CO2 makeup rate to pounds per
	// hour via the CO2 molecular weight scaling.
	co2MassFactor = 0.044

	// defaultAmbientCO2PPM is the outdoor CO2 concentration assumed when
	// the weather record leaves it unset.
	defaultAmbientCO2PPM = 420.0

	// minutesPerHour converts CFM to cubic feet per hour.
	minutesPerHour = 60.0
)

// CalculateCO2Requirements returns the CO2 generation rate in lb/hr needed
// to hold targetPPM against ambientPPM while ventilationCFM of outside air
// dilutes the house. A target at or below ambient needs no enrichment.
func CalculateCO2Requirements(ventilationCFM, targetPPM, ambientPPM float64) float64 {
	if ambientPPM <= 0 {
		ambientPPM = defaultAmbientCO2PPM
	}
	deficit := targetPPM - ambientPPM
	if deficit <= 0 {
		return 0
	}

	makeupCFH := ventilationCFM * minutesPerHour * deficit / 1e6
	return makeupCFH * co2MassFactor
}
