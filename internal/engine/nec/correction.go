package nec

// CalculateAmpacityCorrection applies the NEC Table 310.15(B)(1) ambient
// temperature correction and the Table 310.15(B)(3)(a) conductor-count
// adjustment to a base ampacity.
//
// ambientTempC is truncated to an integer degree and clamped to [21, 50];
// conductorCount is clamped to [3, 20]. Clamping sets Extrapolated on the
// result so callers can decide whether to trust it. terminalRatingC selects
// the correction column: 75 uses the 75°C factors, anything else the 90°C
// factors.
func CalculateAmpacityCorrection(
	baseAmpacity float64,
	ambientTempC float64,
	conductorCount int,
	terminalRatingC int,
) AmpacityCorrection {
	extrapolated := false

	ambient := int(ambientTempC)
	if ambient < minAmbientC {
		ambient = minAmbientC
		extrapolated = true
	}
	if ambient > maxAmbientC {
		ambient = maxAmbientC
		extrapolated = true
	}

	count := conductorCount
	if count < minConductorCount {
		count = minConductorCount
		extrapolated = true
	}
	if count > maxConductorCount {
		count = maxConductorCount
		extrapolated = true
	}

	tempFactor := 1.0
	for _, band := range tempCorrectionTable {
		if ambient <= band.maxAmbientC {
			if terminalRatingC == 75 {
				tempFactor = band.factor75C
			} else {
				tempFactor = band.factor90C
			}
			break
		}
	}

	countFactor := conductorAdjustmentFactor(count)

	return AmpacityCorrection{
		BaseAmpacity:          baseAmpacity,
		TemperatureCorrection: tempFactor,
		AdjustmentFactor:      countFactor,
		CorrectedAmpacity:     baseAmpacity * tempFactor * countFactor,
		Extrapolated:          extrapolated,
	}
}
