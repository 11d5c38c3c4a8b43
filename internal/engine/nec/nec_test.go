package nec

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdant-labs/greengauge/internal/engine"
)

func TestCheckBranchCircuitLoading(t *testing.T) {
	tests := []struct {
		name       string
		current    float64
		continuous bool
		wantFigure string
	}{
		{name: "continuous load sized at 125%", current: 20, continuous: true, wantFigure: "25.0A"},
		{name: "non-continuous load sized at 100%", current: 20, continuous: false, wantFigure: "20.0A"},
		{name: "fractional current", current: 16.4, continuous: true, wantFigure: "20.5A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CheckBranchCircuitLoading(Equipment{
				Name:       "pump",
				Type:       EquipmentPump,
				Current:    tt.current,
				Voltage:    240,
				Phases:     1,
				Continuous: tt.continuous,
			})
			assert.True(t, c.IsCompliant, "branch-circuit record is informational")
			assert.Contains(t, c.Requirement, tt.wantFigure)
			assert.Equal(t, "210.19(A)(1)", c.Section)
		})
	}
}

func TestGetEquipmentGroundingConductor(t *testing.T) {
	tests := []struct {
		deviceAmps float64
		want       string
	}{
		{15, "14 AWG"},
		{20, "12 AWG"},
		{30, "10 AWG"},
		{100, "8 AWG"},
		{101, "6 AWG"},
		{200, "6 AWG"},
		{1200, "3/0 AWG"},
		{6000, "800 kcmil"},
		{9999, "800 kcmil"}, // above table maximum: largest entry
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%.0fA", tt.deviceAmps), func(t *testing.T) {
			assert.Equal(t, tt.want, GetEquipmentGroundingConductor(tt.deviceAmps))
		})
	}
}

// TestGroundingTableMonotonic verifies that increasing the device rating
// never shrinks the grounding conductor.
func TestGroundingTableMonotonic(t *testing.T) {
	prevRank := -1
	for amps := 1.0; amps <= 7000; amps += 7 {
		conductor := GetEquipmentGroundingConductor(amps)
		rank := GroundingConductorRank(conductor)
		require.GreaterOrEqual(t, rank, 0, "conductor %q missing from rank table", conductor)
		require.GreaterOrEqual(t, rank, prevRank,
			"grounding conductor shrank at %.0fA (%s)", amps, conductor)
		prevRank = rank
	}
}

func TestCheckMotorCircuitConductors(t *testing.T) {
	motor := Equipment{Name: "exhaust fan", Type: EquipmentFan, Current: 12, Voltage: 240, Phases: 1, Motor: true}
	c := CheckMotorCircuitConductors(motor)
	assert.Contains(t, c.Requirement, "15.0A")
	assert.Equal(t, "430.22", c.Section)

	c = CheckMotorCircuitConductors(Equipment{Name: "lamp", Type: EquipmentLighting, Current: 5, Voltage: 120, Phases: 1})
	assert.Contains(t, c.Requirement, "does not apply")
	assert.True(t, c.IsCompliant)
}

func TestCheckACEquipmentProtection(t *testing.T) {
	tests := []struct {
		name    string
		eqType  EquipmentType
		applies bool
	}{
		{"hvac", EquipmentHVAC, true},
		{"chiller", EquipmentChiller, true},
		{"dehumidifier", EquipmentDehumidifier, true},
		{"pump", EquipmentPump, false},
		{"lighting", EquipmentLighting, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CheckACEquipmentProtection(Equipment{Name: tt.name, Type: tt.eqType, Current: 40, Voltage: 240, Phases: 1})
			if tt.applies {
				assert.Contains(t, c.Requirement, "70.0A", "175%% of 40A")
			} else {
				assert.Contains(t, c.Requirement, "does not apply")
			}
		})
	}
}

func TestCheckGFCIRequirements(t *testing.T) {
	tests := []struct {
		name     string
		eq       Equipment
		required bool
	}{
		{"wet location pump", Equipment{Type: EquipmentPump, WetLocation: true}, true},
		{"irrigation controller", Equipment{Type: EquipmentIrrigation}, true},
		{"dehumidifier", Equipment{Type: EquipmentDehumidifier}, true},
		{"humidifier", Equipment{Type: EquipmentHumidifier}, true},
		{"dry location lighting", Equipment{Type: EquipmentLighting}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CheckGFCIRequirements(tt.eq)
			if tt.required {
				assert.Equal(t, "GFCI protection required", c.Requirement)
			} else {
				assert.Contains(t, c.Requirement, "not required")
			}
		})
	}
}

func TestCalculateAmpacityCorrection(t *testing.T) {
	tests := []struct {
		name           string
		base           float64
		ambientC       float64
		conductors     int
		terminalRating int
		wantTemp       float64
		wantCount      float64
		wantCorrected  float64
		wantExtrap     bool
	}{
		{
			name: "reference conditions", base: 100, ambientC: 30, conductors: 3, terminalRating: 75,
			wantTemp: 1.00, wantCount: 1.00, wantCorrected: 100, wantExtrap: false,
		},
		{
			name: "hot attic run", base: 100, ambientC: 45, conductors: 3, terminalRating: 75,
			wantTemp: 0.82, wantCount: 1.00, wantCorrected: 82, wantExtrap: false,
		},
		{
			name: "bundled conductors", base: 100, ambientC: 30, conductors: 8, terminalRating: 75,
			wantTemp: 1.00, wantCount: 0.70, wantCorrected: 70, wantExtrap: false,
		},
		{
			name: "90C terminals", base: 100, ambientC: 40, conductors: 4, terminalRating: 90,
			wantTemp: 0.91, wantCount: 0.80, wantCorrected: 72.8, wantExtrap: false,
		},
		{
			name: "ambient below table clamps to 21", base: 100, ambientC: 10, conductors: 3, terminalRating: 75,
			wantTemp: 1.05, wantCount: 1.00, wantCorrected: 105, wantExtrap: true,
		},
		{
			name: "ambient above table clamps to 50", base: 100, ambientC: 60, conductors: 3, terminalRating: 75,
			wantTemp: 0.75, wantCount: 1.00, wantCorrected: 75, wantExtrap: true,
		},
		{
			name: "conductor count above table clamps to 20", base: 100, ambientC: 30, conductors: 30, terminalRating: 75,
			wantTemp: 1.00, wantCount: 0.50, wantCorrected: 50, wantExtrap: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateAmpacityCorrection(tt.base, tt.ambientC, tt.conductors, tt.terminalRating)
			assert.InDelta(t, tt.wantTemp, got.TemperatureCorrection, 1e-9)
			assert.InDelta(t, tt.wantCount, got.AdjustmentFactor, 1e-9)
			assert.InDelta(t, tt.wantCorrected, got.CorrectedAmpacity, 1e-9)
			assert.Equal(t, tt.wantExtrap, got.Extrapolated)
		})
	}
}

func TestCalculateConduitFill(t *testing.T) {
	t.Run("three 12 AWG in half inch EMT", func(t *testing.T) {
		got := CalculateConduitFill("12 AWG", 3, "EMT")
		assert.Equal(t, `1/2"`, got.ConduitSize)
		assert.True(t, got.IsCompliant)
		assert.InDelta(t, 0.0399, got.WireAreaSqIn, 1e-9)
	})

	t.Run("unknown gauge falls back to 14 AWG area", func(t *testing.T) {
		got := CalculateConduitFill("99 AWG", 3, "EMT")
		assert.InDelta(t, 3*0.0097, got.WireAreaSqIn, 1e-9)
	})

	t.Run("unknown conduit type falls back to EMT", func(t *testing.T) {
		got := CalculateConduitFill("12 AWG", 3, "IMC")
		assert.Equal(t, "EMT", got.ConduitType)
	})
}

// TestConduitFillInvariant checks that the compliance verdict always agrees
// with the 40% limit, and that any bundle that fits a tabulated conduit is
// reported at or under 40%.
func TestConduitFillInvariant(t *testing.T) {
	gauges := []string{"14 AWG", "12 AWG", "10 AWG", "8 AWG", "6 AWG", "4 AWG", "2 AWG", "1/0 AWG", "4/0 AWG"}
	for _, gauge := range gauges {
		for count := 1; count <= 60; count++ {
			got := CalculateConduitFill(gauge, count, "EMT")
			require.Equal(t, got.FillPercentage <= maxFillPercentage, got.IsCompliant,
				"verdict disagrees with fill for %d x %s (fill %.2f%%)", count, gauge, got.FillPercentage)
		}
	}
}

func TestCalculateVoltageDropPercentage(t *testing.T) {
	t.Run("single phase formula", func(t *testing.T) {
		// 2 * 20A * 100ft * 1.93ohm/kft / 1000 = 7.72V on 240V = 3.2167%
		got := CalculateVoltageDropPercentage(20, 100, "12 AWG", 240, 1, 1.0)
		assert.InDelta(t, 7.72, got.DropVolts, 1e-9)
		assert.InDelta(t, 3.2167, got.DropPercentage, 1e-3)
		assert.False(t, got.IsCompliant)
	})

	t.Run("three phase uses sqrt3", func(t *testing.T) {
		single := CalculateVoltageDropPercentage(20, 100, "12 AWG", 480, 1, 1.0)
		three := CalculateVoltageDropPercentage(20, 100, "12 AWG", 480, 3, 1.0)
		assert.Less(t, three.DropVolts, single.DropVolts)
	})

	t.Run("compliant short run", func(t *testing.T) {
		got := CalculateVoltageDropPercentage(15, 50, "12 AWG", 240, 1, 1.0)
		assert.True(t, got.IsCompliant)
	})
}

// TestVoltageDropLinearInDistance verifies the §215.2 calculation is exactly
// linear in circuit length.
func TestVoltageDropLinearInDistance(t *testing.T) {
	for _, dist := range []float64{10, 25, 80, 150, 400} {
		base := CalculateVoltageDropPercentage(18, dist, "10 AWG", 240, 1, 1.0)
		doubled := CalculateVoltageDropPercentage(18, 2*dist, "10 AWG", 240, 1, 1.0)
		assert.InDelta(t, 2*base.DropPercentage, doubled.DropPercentage, 1e-9,
			"doubling distance %.0f ft should exactly double the drop", dist)
	}
}

func TestPerformCompleteComplianceCheck(t *testing.T) {
	ctx := context.Background()
	eq := Equipment{
		Name:       "irrigation booster pump",
		Type:       EquipmentIrrigation,
		Current:    20,
		Voltage:    240,
		Phases:     1,
		Continuous: true,
		Motor:      true,
	}

	checklist, err := PerformCompleteComplianceCheck(ctx, eq, 100)
	require.NoError(t, err)
	require.Len(t, checklist.Checks, 6)

	sections := make([]string, 0, len(checklist.Checks))
	for _, c := range checklist.Checks {
		sections = append(sections, c.Section)
	}
	assert.Equal(t, []string{
		"210.19(A)(1)", "250.122", "430.22", "440.32", "210.8(B)", "215.2(A)",
	}, sections, "checklist order is fixed")

	// Continuous 20A load: device sized at 25A, grounding from the 60A row.
	assert.Contains(t, checklist.Checks[1].Requirement, "10 AWG")
	assert.Contains(t, checklist.Checks[4].Requirement, "required")
	assert.Contains(t, checklist.Checks[5].Notes, "12 AWG")
}

func TestPerformCompleteComplianceCheckValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		eq       Equipment
		distance float64
	}{
		{
			name:     "zero current",
			eq:       Equipment{Name: "x", Type: EquipmentPump, Current: 0, Voltage: 240, Phases: 1},
			distance: 100,
		},
		{
			name:     "missing name",
			eq:       Equipment{Type: EquipmentPump, Current: 10, Voltage: 240, Phases: 1},
			distance: 100,
		},
		{
			name:     "two phase is not a thing",
			eq:       Equipment{Name: "x", Type: EquipmentPump, Current: 10, Voltage: 240, Phases: 2},
			distance: 100,
		},
		{
			name:     "negative distance",
			eq:       Equipment{Name: "x", Type: EquipmentPump, Current: 10, Voltage: 240, Phases: 1},
			distance: -5,
		},
		{
			name:     "unknown equipment type",
			eq:       Equipment{Name: "x", Type: "laser", Current: 10, Voltage: 240, Phases: 1},
			distance: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PerformCompleteComplianceCheck(ctx, tt.eq, tt.distance)
			require.Error(t, err)
			assert.ErrorIs(t, err, engine.ErrInvalidInput)
		})
	}
}

func TestParseEquipmentType(t *testing.T) {
	got, err := ParseEquipmentType("hvac")
	require.NoError(t, err)
	assert.Equal(t, EquipmentHVAC, got)

	_, err = ParseEquipmentType("toaster")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "toaster"))
}
