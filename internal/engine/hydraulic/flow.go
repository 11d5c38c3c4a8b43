package hydraulic

import (
	"math"

	"github.com/verdant-labs/greengauge/internal/engine/units"
)

// Regime thresholds by Reynolds number.
const (
	// laminarLimit is the upper bound (exclusive) of laminar flow.
	laminarLimit = 2000.0
	// turbulentThreshold is the lower bound (inclusive) of turbulent flow.
	turbulentThreshold = 4000.0
)

// Velocity returns the mean flow velocity in ft/s for flowGPM through a
// circular pipe of diameterIn inches.
func Velocity(flowGPM, diameterIn float64) float64 {
	radiusFt := diameterIn * units.InchesToFeet / 2
	areaSqFt := math.Pi * radiusFt * radiusFt
	return flowGPM * units.GPMToCFS / areaSqFt
}

// ReynoldsNumber computes Re = V·D/ν for velocity in ft/s and diameter in
// inches. kinematicViscosity is in ft²/s; pass 0 to use the 68°F water
// default.
func ReynoldsNumber(velocityFtS, diameterIn, kinematicViscosity float64) float64 {
	if kinematicViscosity <= 0 {
		kinematicViscosity = units.WaterKinematicViscosity
	}
	return velocityFtS * diameterIn * units.InchesToFeet / kinematicViscosity
}

// waterViscosityTable holds kinematic viscosity of water in ft²/s by
// temperature in °F, from standard handbook values.
var waterViscosityTable = []struct {
	tempF float64
	nu    float64
}{
	{32, 1.924e-5},
	{40, 1.664e-5},
	{50, 1.407e-5},
	{60, 1.210e-5},
	{70, 1.052e-5},
	{80, 0.926e-5},
	{90, 0.823e-5},
	{100, 0.738e-5},
	{110, 0.667e-5},
	{120, 0.610e-5},
	{130, 0.561e-5},
	{140, 0.513e-5},
}

// WaterViscosityFtSqS returns the kinematic viscosity of water at tempF,
// linearly interpolated between table rows. Temperatures outside
// [32, 140] °F clamp to the nearest row and report clamped = true.
func WaterViscosityFtSqS(tempF float64) (nu float64, clamped bool) {
	first := waterViscosityTable[0]
	last := waterViscosityTable[len(waterViscosityTable)-1]

	if tempF <= first.tempF {
		return first.nu, tempF < first.tempF
	}
	if tempF >= last.tempF {
		return last.nu, tempF > last.tempF
	}

	for i := 1; i < len(waterViscosityTable); i++ {
		hi := waterViscosityTable[i]
		if tempF > hi.tempF {
			continue
		}
		lo := waterViscosityTable[i-1]
		frac := (tempF - lo.tempF) / (hi.tempF - lo.tempF)
		return lo.nu + frac*(hi.nu-lo.nu), false
	}
	return last.nu, false
}

// ClassifyRegime bands a Reynolds number: laminar below 2000, transitional
// in [2000, 4000), turbulent at 4000 and above.
func ClassifyRegime(reynolds float64) FlowRegime {
	switch {
	case reynolds >= turbulentThreshold:
		return RegimeTurbulent
	case reynolds >= laminarLimit:
		return RegimeTransitional
	default:
		return RegimeLaminar
	}
}

// VelocityHeadFt returns V²/2g in feet of head.
func VelocityHeadFt(velocityFtS float64) float64 {
	return velocityFtS * velocityFtS / (2 * units.Gravity)
}
