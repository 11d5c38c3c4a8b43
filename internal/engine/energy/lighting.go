package energy

import "github.com/verdant-labs/greengauge/internal/engine/units"

const (
	// ledEfficacy is the assumed fixture efficacy in µmol/J for modern
	// horticultural LEDs.
	ledEfficacy = 2.7

	// defaultPhotoperiodHr is the supplemental lighting photoperiod used
	// when the setpoints leave it unset.
	defaultPhotoperiodHr = 16.0

	// electricityPricePerKWh is the default electricity price in $/kWh.
	electricityPricePerKWh = 0.12

	// secondsPerHour converts photoperiod hours to seconds for the
	// DLI → PPFD conversion.
	secondsPerHour = 3600.0

	// molePerMicromole converts µmol to mol.
	molPerMicromole = 1e-6
)

// CalculateLightingRequirements sizes supplemental LED lighting to close the
// gap between targetDLI and naturalDLI (mol/m²/day) over photoperiodHr hours
// at the assumed 2.7 µmol/J efficacy, and annualizes energy and cost at the
// given electricity price ($/kWh; pass 0 for the $0.12 default).
func CalculateLightingRequirements(
	floorAreaSqFt float64,
	targetDLI, naturalDLI, photoperiodHr, pricePerKWh float64,
) LightingLoad {
	if photoperiodHr <= 0 {
		photoperiodHr = defaultPhotoperiodHr
	}
	if pricePerKWh <= 0 {
		pricePerKWh = electricityPricePerKWh
	}

	supplemental := targetDLI - naturalDLI
	if supplemental < 0 {
		supplemental = 0
	}

	// mol/m²/day spread over the photoperiod gives the instantaneous flux.
	requiredPPFD := supplemental / molPerMicromole / (photoperiodHr * secondsPerHour)

	areaSqM := floorAreaSqFt * units.SqFtToSqM
	powerW := requiredPPFD * areaSqM / ledEfficacy

	annualKWh := powerW * photoperiodHr * units.DaysPerYear / 1000.0

	return LightingLoad{
		SupplementalDLI: supplemental,
		RequiredPPFD:    requiredPPFD,
		PowerW:          powerW,
		AnnualKWh:       annualKWh,
		AnnualCost:      dollars(annualKWh * pricePerKWh),
	}
}
