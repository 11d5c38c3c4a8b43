package hydraulic

import (
	"math"

	"github.com/verdant-labs/greengauge/internal/engine/units"
)

// HazenWilliamsLossPSI computes friction loss in PSI using the Hazen-Williams
// formula in its US irrigation form:
//
//	hf = 4.52 · Q^1.85 · L / (C^1.85 · D^4.87)
//
// with Q in GPM, L in feet, D in inches. This is the primary friction method
// used by AnalyzeSystem.
func HazenWilliamsLossPSI(flowGPM, lengthFt, diameterIn, roughnessC float64) float64 {
	return 4.52 * math.Pow(flowGPM, 1.85) * lengthFt /
		(math.Pow(roughnessC, 1.85) * math.Pow(diameterIn, 4.87))
}

// FrictionFactor returns the Darcy friction factor: 64/Re for laminar flow,
// the Swamee-Jain approximation of the Colebrook equation otherwise.
// relativeRoughness is ε/D (dimensionless).
func FrictionFactor(reynolds, relativeRoughness float64) float64 {
	if reynolds < laminarLimit {
		return 64.0 / reynolds
	}
	denom := math.Log10(relativeRoughness/3.7 + 5.74/math.Pow(reynolds, 0.9))
	return 0.25 / (denom * denom)
}

// DarcyWeisbachLossPSI computes friction loss in PSI via
// hf = f·(L/D)·(V²/2g), the more precise alternative to Hazen-Williams.
// roughnessFt is the absolute pipe roughness in feet.
func DarcyWeisbachLossPSI(velocityFtS, lengthFt, diameterIn, roughnessFt float64) float64 {
	diameterFt := diameterIn * units.InchesToFeet
	re := ReynoldsNumber(velocityFtS, diameterIn, 0)
	f := FrictionFactor(re, roughnessFt/diameterFt)
	lossFt := f * (lengthFt / diameterFt) * VelocityHeadFt(velocityFtS)
	return lossFt * units.FtHeadToPSI
}

// MinorLossPSI sums fitting losses: Σ(K·quantity) × velocity head, converted
// to PSI. Fitting types missing from the K-factor table use the default K;
// extrapolated reports whether any fallback was taken.
func MinorLossPSI(fittings []Fitting, velocityFtS float64) (loss float64, extrapolated bool) {
	if len(fittings) == 0 {
		return 0, false
	}

	totalK := 0.0
	for _, f := range fittings {
		k := f.KFactor
		if k <= 0 {
			var ok bool
			k, ok = KFactorFor(f.Type)
			if !ok {
				extrapolated = true
			}
		}
		totalK += k * float64(f.Quantity)
	}

	return totalK * VelocityHeadFt(velocityFtS) * units.FtHeadToPSI, extrapolated
}
