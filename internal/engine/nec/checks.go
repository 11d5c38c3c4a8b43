package nec

import "fmt"

// continuousLoadFactor is the 125% sizing factor for continuous loads
// (NEC 210.19(A), 430.22, 440.32 all build on it).
const continuousLoadFactor = 1.25

// acProtectionFactor is the 175% maximum overcurrent-protection factor for
// air-conditioning equipment (NEC 440.32).
const acProtectionFactor = 1.75

// CheckBranchCircuitLoading sizes the branch-circuit ampacity requirement for
// eq: 125% of full-load current for continuous loads, 100% otherwise.
//
// The returned record is informational and always compliant: the real check
// happens against the actually selected conductor, which this engine does
// not know. Callers must validate the selected wire ampacity against the
// RequiredAmpacity figure in the requirement text.
func CheckBranchCircuitLoading(eq Equipment) Compliance {
	factor := 1.0
	kind := "non-continuous"
	if eq.Continuous {
		factor = continuousLoadFactor
		kind = "continuous"
	}
	required := eq.Current * factor

	return Compliance{
		Article: "210",
		Section: "210.19(A)(1)",
		Requirement: fmt.Sprintf(
			"Branch-circuit conductors for %s load require ampacity >= %.1fA (%.0f%% of %.1fA full-load current)",
			kind, required, factor*100, eq.Current,
		),
		IsCompliant: true,
		Notes:       "Verify the selected conductor ampacity against the required figure.",
	}
}

// GetEquipmentGroundingConductor returns the minimum copper equipment
// grounding conductor for the given overcurrent-device rating, per NEC
// Table 250.122. Ratings above the table maximum (6000A) get the largest
// tabulated conductor.
func GetEquipmentGroundingConductor(overcurrentDeviceAmps float64) string {
	for _, entry := range groundingTable {
		if overcurrentDeviceAmps <= entry.maxDeviceAmps {
			return entry.conductor
		}
	}
	return groundingTable[len(groundingTable)-1].conductor
}

// GroundingConductorRank orders conductor labels by ascending cross-section.
// Unknown labels rank below every tabulated conductor.
func GroundingConductorRank(conductor string) int {
	rank, ok := groundingGaugeRank[conductor]
	if !ok {
		return -1
	}
	return rank
}

// CheckMotorCircuitConductors sizes motor branch-circuit conductors at 125%
// of full-load current per NEC 430.22. Non-motor loads get a no-op record.
func CheckMotorCircuitConductors(eq Equipment) Compliance {
	if !eq.Motor {
		return Compliance{
			Article:     "430",
			Section:     "430.22",
			Requirement: "Not a motor load; Article 430 conductor sizing does not apply",
			IsCompliant: true,
		}
	}

	required := eq.Current * continuousLoadFactor
	return Compliance{
		Article: "430",
		Section: "430.22",
		Requirement: fmt.Sprintf(
			"Motor branch-circuit conductors require ampacity >= %.1fA (125%% of %.1fA full-load current)",
			required, eq.Current,
		),
		IsCompliant: true,
		Notes:       "Verify the selected conductor ampacity against the required figure.",
	}
}

// CheckACEquipmentProtection limits branch-circuit overcurrent protection for
// air-conditioning and refrigeration equipment to 175% of nameplate current
// per NEC 440.32. Other equipment types get a no-op record.
func CheckACEquipmentProtection(eq Equipment) Compliance {
	if !isACEquipment(eq.Type) {
		return Compliance{
			Article:     "440",
			Section:     "440.32",
			Requirement: "Not air-conditioning or refrigeration equipment; Article 440 does not apply",
			IsCompliant: true,
		}
	}

	maxProtection := eq.Current * acProtectionFactor
	return Compliance{
		Article: "440",
		Section: "440.32",
		Requirement: fmt.Sprintf(
			"Maximum branch-circuit overcurrent protection %.1fA (175%% of %.1fA nameplate current)",
			maxProtection, eq.Current,
		),
		IsCompliant: true,
	}
}

// CheckGFCIRequirements flags equipment that requires ground-fault
// circuit-interrupter protection: anything in a wet location, plus
// irrigation, dehumidifier and humidifier equipment regardless of location.
func CheckGFCIRequirements(eq Equipment) Compliance {
	required := eq.WetLocation || requiresGFCIByType(eq.Type)

	requirement := "GFCI protection not required for this equipment and location"
	notes := ""
	if required {
		requirement = "GFCI protection required"
		switch {
		case eq.WetLocation:
			notes = "Equipment installed in a wet location."
		default:
			notes = fmt.Sprintf("Equipment type %q requires GFCI protection.", eq.Type)
		}
	}

	return Compliance{
		Article:     "210",
		Section:     "210.8(B)",
		Requirement: requirement,
		IsCompliant: true,
		Notes:       notes,
	}
}
