package nec

import (
	"context"
	"fmt"

	"github.com/verdant-labs/greengauge/internal/engine"
	"github.com/verdant-labs/greengauge/internal/logging"
)

// defaultVoltageDropGauge is the conductor assumed for the voltage-drop
// entry in a complete compliance check. Callers must re-run the voltage-drop
// calculation with the actually selected conductor for a final answer.
const defaultVoltageDropGauge = "12 AWG"

// PerformCompleteComplianceCheck evaluates eq against the full checklist:
// branch-circuit loading, equipment grounding, motor conductors, AC
// overcurrent protection, GFCI, and voltage drop over circuitDistanceFt.
//
// Input validation failures are returned as *engine.InvalidInputError.
func PerformCompleteComplianceCheck(
	ctx context.Context,
	eq Equipment,
	circuitDistanceFt float64,
) (*Checklist, error) {
	log := logging.FromContext(ctx)

	if err := engine.ValidateStruct(eq); err != nil {
		return nil, err
	}
	if _, err := ParseEquipmentType(string(eq.Type)); err != nil {
		return nil, engine.NewInvalidInput("type", string(eq.Type), "unknown equipment type")
	}
	if err := engine.RequirePositive("circuitDistanceFt", circuitDistanceFt); err != nil {
		return nil, err
	}

	log.Debug().
		Str("component", "nec").
		Str("operation", "complete_compliance_check").
		Str("equipment", eq.Name).
		Float64("current", eq.Current).
		Msg("starting compliance check")

	checks := make([]Compliance, 0, 6)
	checks = append(checks, CheckBranchCircuitLoading(eq))

	// Overcurrent device assumed at the branch-circuit required ampacity.
	deviceAmps := eq.Current
	if eq.Continuous {
		deviceAmps *= continuousLoadFactor
	}
	grounding := GetEquipmentGroundingConductor(deviceAmps)
	checks = append(checks, Compliance{
		Article: "250",
		Section: "250.122",
		Requirement: fmt.Sprintf(
			"Minimum copper equipment grounding conductor %s for a %.0fA overcurrent device",
			grounding, deviceAmps,
		),
		IsCompliant: true,
	})

	checks = append(checks, CheckMotorCircuitConductors(eq))
	checks = append(checks, CheckACEquipmentProtection(eq))
	checks = append(checks, CheckGFCIRequirements(eq))

	drop := CalculateVoltageDropPercentage(
		eq.Current, circuitDistanceFt, defaultVoltageDropGauge, eq.Voltage, eq.Phases, 1.0,
	)
	checks = append(checks, Compliance{
		Article: "215",
		Section: "215.2(A)",
		Requirement: fmt.Sprintf(
			"Voltage drop %.2f%% over %.0f ft on %s (recommended maximum 3%%)",
			drop.DropPercentage, circuitDistanceFt, defaultVoltageDropGauge,
		),
		IsCompliant: drop.IsCompliant,
		Notes:       "Calculated with the default 12 AWG conductor; re-check with the selected conductor.",
	})

	log.Info().
		Str("component", "nec").
		Str("equipment", eq.Name).
		Int("checks", len(checks)).
		Msg("compliance check complete")

	return &Checklist{Equipment: eq, Checks: checks}, nil
}
