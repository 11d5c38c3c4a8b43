package nec

import "math"

// maxVoltageDropPercentage is the NEC 215.2 informational-note recommendation
// for combined feeder and branch-circuit voltage drop.
const maxVoltageDropPercentage = 3.0

// sqrt3 is √3, the line factor for balanced three-phase circuits.
var sqrt3 = math.Sqrt(3)

// CalculateVoltageDropPercentage computes the voltage drop for a circuit run.
//
// Single-phase: Vd = 2·I·L·R/1000. Three-phase: Vd = √3·I·L·R/1000, with R in
// ohms per 1000 ft from the Chapter 9 Table 8 copper table. Unknown gauges
// fall back to 12 AWG resistance. powerFactor scales the effective current
// (1.0 for purely resistive loads).
//
// The drop is compliant when it does not exceed 3% — a recommendation, not a
// code minimum.
func CalculateVoltageDropPercentage(
	current float64,
	distanceFt float64,
	wireGauge string,
	voltage float64,
	phases int,
	powerFactor float64,
) VoltageDrop {
	resistance, ok := copperResistanceOhmsPerKFt[wireGauge]
	if !ok {
		resistance = copperResistanceOhmsPerKFt["12 AWG"]
	}
	if powerFactor <= 0 || powerFactor > 1 {
		powerFactor = 1.0
	}

	multiplier := 2.0
	if phases == 3 {
		multiplier = sqrt3
	}

	dropVolts := multiplier * current * powerFactor * distanceFt * resistance / 1000.0
	dropPct := 0.0
	if voltage > 0 {
		dropPct = dropVolts / voltage * 100.0
	}

	return VoltageDrop{
		DropVolts:      dropVolts,
		DropPercentage: dropPct,
		IsCompliant:    dropPct <= maxVoltageDropPercentage,
	}
}
