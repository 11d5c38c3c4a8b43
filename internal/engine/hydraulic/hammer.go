package hydraulic

import (
	"math"

	"github.com/verdant-labs/greengauge/internal/engine/units"
)

// Water-hammer risk bands in PSI of surge pressure.
const (
	hammerModerateThresholdPSI = 50.0
	hammerHighThresholdPSI     = 100.0
	hammerCriticalThresholdPSI = 200.0
)

// WaveSpeedFtS computes the pressure-wave propagation speed in an elastic
// pipe:
//
//	a = √(K/ρ) / √(1 + K·D/(E·t))
//
// where K is the bulk modulus of water, E the pipe elastic modulus (PSI),
// D the internal diameter and t the wall thickness (inches). √(K/ρ) for
// water is 4720 ft/s.
func WaveSpeedFtS(diameterIn, wallThicknessIn, elasticModulusPSI float64) float64 {
	restraint := 1 + units.WaterBulkModulusPSI*diameterIn/(elasticModulusPSI*wallThicknessIn)
	return units.WaterAcousticVelocityFtS / math.Sqrt(restraint)
}

// JoukowskyRisePSI computes the surge from an instantaneous velocity change:
// Δh = a·ΔV/g feet of head, converted to PSI.
func JoukowskyRisePSI(waveSpeedFtS, velocityChangeFtS float64) float64 {
	riseFt := waveSpeedFtS * velocityChangeFtS / units.Gravity
	return riseFt * units.FtHeadToPSI
}

// ClassifyHammerRisk bands a surge pressure: <50 PSI low, <100 moderate,
// <200 high, otherwise critical.
func ClassifyHammerRisk(risePSI float64) HammerRisk {
	switch {
	case risePSI < hammerModerateThresholdPSI:
		return HammerRiskLow
	case risePSI < hammerHighThresholdPSI:
		return HammerRiskModerate
	case risePSI < hammerCriticalThresholdPSI:
		return HammerRiskHigh
	default:
		return HammerRiskCritical
	}
}
