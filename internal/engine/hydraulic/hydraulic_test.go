package hydraulic

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdant-labs/greengauge/internal/engine"
)

func TestVelocity(t *testing.T) {
	// 20 GPM through 2" pipe: Q = 0.04456 cfs, A = 0.02182 ft² -> 2.042 ft/s
	v := Velocity(20, 2)
	assert.InDelta(t, 2.042, v, 0.01)
}

func TestReynoldsNumberAndRegime(t *testing.T) {
	t.Run("default viscosity", func(t *testing.T) {
		// V=2 ft/s, D=2 in: Re = 2 * 0.16667 / 1.13e-5 = 29499
		re := ReynoldsNumber(2, 2, 0)
		assert.InDelta(t, 29499, re, 10)
		assert.Equal(t, RegimeTurbulent, ClassifyRegime(re))
	})

	t.Run("regime boundaries", func(t *testing.T) {
		tests := []struct {
			reynolds float64
			want     FlowRegime
		}{
			{500, RegimeLaminar},
			{1999.99, RegimeLaminar},
			{2000, RegimeTransitional}, // exactly 2000 is not laminar
			{3000, RegimeTransitional},
			{3999.99, RegimeTransitional},
			{4000, RegimeTurbulent}, // exactly 4000 is turbulent
			{100000, RegimeTurbulent},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.want, ClassifyRegime(tt.reynolds), "Re=%.2f", tt.reynolds)
		}
	})
}

func TestHazenWilliamsLossPSI(t *testing.T) {
	// 20 GPM, 100 ft of 1" C=150 pipe:
	// 4.52 * 20^1.85 * 100 / (150^1.85 * 1^4.87) = 10.87 PSI
	loss := HazenWilliamsLossPSI(20, 100, 1, 150)
	assert.InDelta(t, 10.87, loss, 0.05)

	// Loss is linear in length.
	assert.InDelta(t, 2*loss, HazenWilliamsLossPSI(20, 200, 1, 150), 1e-9)

	// Larger diameter loses less.
	assert.Less(t, HazenWilliamsLossPSI(20, 100, 2, 150), loss)
}

func TestFrictionFactor(t *testing.T) {
	t.Run("laminar 64 over Re", func(t *testing.T) {
		assert.InDelta(t, 64.0/1000.0, FrictionFactor(1000, 1e-5), 1e-12)
	})

	t.Run("turbulent Swamee-Jain", func(t *testing.T) {
		// Smooth pipe at Re=1e5 is about f=0.018
		f := FrictionFactor(1e5, 1e-6)
		assert.InDelta(t, 0.018, f, 0.002)
	})

	t.Run("rougher pipe has higher factor", func(t *testing.T) {
		assert.Greater(t, FrictionFactor(1e5, 1e-3), FrictionFactor(1e5, 1e-6))
	})
}

func TestDarcyWeisbachTracksHazenWilliams(t *testing.T) {
	// The two methods should agree within ~25% for smooth pipe in the
	// turbulent range; they are different empirical fits.
	flow, length, diameter := 30.0, 200.0, 2.0
	v := Velocity(flow, diameter)
	dw := DarcyWeisbachLossPSI(v, length, diameter, 5e-6)
	hw := HazenWilliamsLossPSI(flow, length, diameter, 150)
	assert.InEpsilon(t, hw, dw, 0.25)
}

func TestMinorLossPSI(t *testing.T) {
	fittings := []Fitting{
		{Type: FittingElbow90, Quantity: 2},
		{Type: FittingGateValve, Quantity: 1},
	}
	// K total = 2*0.9 + 0.2 = 2.0; V=4: head = 2*16/64.4 = 0.4969 ft -> 0.2152 PSI
	loss, extrapolated := MinorLossPSI(fittings, 4)
	assert.InDelta(t, 0.2152, loss, 0.001)
	assert.False(t, extrapolated)

	t.Run("explicit K overrides table", func(t *testing.T) {
		withK, _ := MinorLossPSI([]Fitting{{Type: FittingElbow90, Quantity: 1, KFactor: 1.8}}, 4)
		fromTable, _ := MinorLossPSI([]Fitting{{Type: FittingElbow90, Quantity: 2}}, 4)
		assert.InDelta(t, fromTable, withK, 1e-9)
	})

	t.Run("unknown fitting type flags extrapolation", func(t *testing.T) {
		_, extrapolated := MinorLossPSI([]Fitting{{Type: "wye", Quantity: 1}}, 4)
		assert.True(t, extrapolated)
	})

	t.Run("no fittings no loss", func(t *testing.T) {
		loss, extrapolated := MinorLossPSI(nil, 4)
		assert.Zero(t, loss)
		assert.False(t, extrapolated)
	})
}

func TestWaveSpeed(t *testing.T) {
	// Rigid pipe limit: wave speed approaches 4720 ft/s.
	rigid := WaveSpeedFtS(2, 0.154, 1e12)
	assert.InDelta(t, 4720, rigid, 1)

	// PVC is much more elastic, wave speed well below the rigid limit.
	pvc := WaveSpeedFtS(2, 0.154, 400000)
	assert.Less(t, pvc, 2000.0)
	assert.Greater(t, pvc, 500.0)
}

// TestJoukowskyMonotonicInVelocity verifies that a larger velocity change
// strictly increases the surge for a fixed wave speed.
func TestJoukowskyMonotonicInVelocity(t *testing.T) {
	prev := -1.0
	for v := 0.5; v <= 10; v += 0.5 {
		rise := JoukowskyRisePSI(1400, v)
		require.Greater(t, rise, prev, "surge must grow with velocity (v=%.1f)", v)
		prev = rise
	}
}

func TestClassifyHammerRisk(t *testing.T) {
	tests := []struct {
		rise float64
		want HammerRisk
	}{
		{10, HammerRiskLow},
		{49.99, HammerRiskLow},
		{50, HammerRiskModerate},
		{99.99, HammerRiskModerate},
		{100, HammerRiskHigh},
		{199.99, HammerRiskHigh},
		{200, HammerRiskCritical},
		{500, HammerRiskCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyHammerRisk(tt.rise), "rise=%.2f", tt.rise)
	}
}

func TestDistributionUniformity(t *testing.T) {
	t.Run("equal flows give exactly 100", func(t *testing.T) {
		assert.InDelta(t, 100.0, DistributionUniformity([]float64{1, 1, 1, 1, 1, 1, 1, 1}), 1e-9)
	})

	t.Run("uneven flows are below 100", func(t *testing.T) {
		du := DistributionUniformity([]float64{0.8, 1.0, 1.0, 1.0, 1.1, 1.2, 0.9, 1.0})
		assert.Less(t, du, 100.0)
		assert.Greater(t, du, 0.0)
	})

	t.Run("small samples use at least one emitter", func(t *testing.T) {
		du := DistributionUniformity([]float64{1, 2})
		assert.InDelta(t, 1.0/1.5*100, du, 1e-9)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Zero(t, DistributionUniformity(nil))
	})
}

// TestDistributionUniformityBounds checks 0 <= DU <= 100 across a spread of
// synthetic emitter populations, with equality at 100 only for equal flows.
func TestDistributionUniformityBounds(t *testing.T) {
	populations := [][]float64{
		{1},
		{1, 1, 1, 1},
		{0.5, 1.5, 1.0, 1.0},
		{0.1, 0.2, 0.3, 5.0},
		{2, 2, 2, 2, 2, 2, 2, 1.99},
	}
	for _, flows := range populations {
		du := DistributionUniformity(flows)
		require.GreaterOrEqual(t, du, 0.0)
		require.LessOrEqual(t, du, 100.0+1e-9)

		allEqual := true
		for _, f := range flows[1:] {
			if f != flows[0] {
				allEqual = false
				break
			}
		}
		if allEqual {
			assert.InDelta(t, 100.0, du, 1e-9)
		} else {
			assert.Less(t, du, 100.0)
		}
	}
}

func TestEmissionUniformity(t *testing.T) {
	assert.InDelta(t, 100.0, EmissionUniformity([]float64{2, 2, 2, 2}), 1e-9)

	// CV of {0.9, 1.1} is 10% -> EU 90.
	assert.InDelta(t, 90.0, EmissionUniformity([]float64{0.9, 1.1}), 1e-9)

	assert.Zero(t, EmissionUniformity(nil))
}

func TestApplicationEfficiency(t *testing.T) {
	// 1.0" crop need, 1.5" applied, 10% leaching:
	// beneficial = 1.0 + 0.15 = 1.15 -> 76.67%
	eff := ApplicationEfficiency(1.0, 1.5, 0.10)
	assert.InDelta(t, 76.67, eff, 0.01)

	assert.Zero(t, ApplicationEfficiency(1, 0, 0.1))
}

func TestPipeSpecFor(t *testing.T) {
	spec, ok := PipeSpecFor(MaterialHDPE)
	assert.True(t, ok)
	assert.Equal(t, 140.0, spec.HazenWilliamsC)

	fallback, ok := PipeSpecFor("concrete")
	assert.False(t, ok)
	assert.Equal(t, MaterialPVC, fallback.Material, "unknown material falls back to PVC")
}

func TestSoilPropertiesFor(t *testing.T) {
	props, ok := SoilPropertiesFor(SoilClay)
	assert.True(t, ok)
	assert.Equal(t, SoilClay, props.Type)

	fallback, ok := SoilPropertiesFor("gravel")
	assert.False(t, ok)
	assert.Equal(t, SoilLoam, fallback.Type, "unknown soil falls back to loam")
}

func TestAnalyzeSystem(t *testing.T) {
	ctx := context.Background()
	pipe, _ := PipeSpecFor(MaterialPVC)

	params := CalculationParams{
		FlowRateGPM:               20,
		PipeDiameterIn:            2,
		PipeLengthFt:              300,
		InletPressurePSI:          45,
		RequiredOutletPressurePSI: 25,
		ElevationChangeFt:         5,
		Fittings: []Fitting{
			{Type: FittingElbow90, Quantity: 4},
			{Type: FittingGateValve, Quantity: 2},
		},
		EmitterFlowsGPH: []float64{1.0, 1.0, 0.98, 1.02, 1.0, 0.99, 1.01, 1.0},
	}

	result, err := AnalyzeSystem(ctx, params, pipe, nil)
	require.NoError(t, err)

	assert.InDelta(t, 2.042, result.VelocityFtS, 0.01)
	assert.Equal(t, RegimeTurbulent, result.FlowRegime)
	assert.True(t, result.VelocityCompliance)
	assert.InDelta(t,
		result.FrictionLossPSI+result.MinorLossPSI+result.ElevationLossPSI,
		result.TotalLossPSI, 1e-9)
	assert.InDelta(t, params.InletPressurePSI-result.TotalLossPSI, result.AvailablePSI, 1e-9)
	assert.Greater(t, result.DistributionUniformity, minDistributionUniformity)
	assert.True(t, result.PressureCompliance)
	assert.True(t, result.ASABECompliance)
	assert.False(t, result.Extrapolated)
}

func TestWaterViscosity(t *testing.T) {
	t.Run("table values exact", func(t *testing.T) {
		nu, clamped := WaterViscosityFtSqS(60)
		assert.InDelta(t, 1.210e-5, nu, 1e-9)
		assert.False(t, clamped)
	})

	t.Run("interpolates between rows", func(t *testing.T) {
		nu, clamped := WaterViscosityFtSqS(65)
		assert.False(t, clamped)
		assert.Greater(t, nu, 1.052e-5)
		assert.Less(t, nu, 1.210e-5)
	})

	t.Run("clamps outside the table", func(t *testing.T) {
		low, clamped := WaterViscosityFtSqS(20)
		assert.True(t, clamped)
		assert.InDelta(t, 1.924e-5, low, 1e-9)

		high, clamped := WaterViscosityFtSqS(200)
		assert.True(t, clamped)
		assert.InDelta(t, 0.513e-5, high, 1e-9)
	})

	t.Run("viscosity decreases with temperature", func(t *testing.T) {
		prev := math.Inf(1)
		for temp := 40.0; temp <= 140; temp += 10 {
			nu, _ := WaterViscosityFtSqS(temp)
			assert.Less(t, nu, prev, "at %.0f°F", temp)
			prev = nu
		}
	})
}

func TestAnalyzeSystemWaterTemperature(t *testing.T) {
	ctx := context.Background()
	pipe, _ := PipeSpecFor(MaterialPVC)

	params := CalculationParams{
		FlowRateGPM:      20,
		PipeDiameterIn:   2,
		PipeLengthFt:     100,
		InletPressurePSI: 60,
	}

	cold := params
	cold.WaterTempF = 40
	coldResult, err := AnalyzeSystem(ctx, cold, pipe, nil)
	require.NoError(t, err)

	warm := params
	warm.WaterTempF = 100
	warmResult, err := AnalyzeSystem(ctx, warm, pipe, nil)
	require.NoError(t, err)

	// Warmer water is less viscous, so the same flow is more turbulent.
	assert.Greater(t, warmResult.ReynoldsNumber, coldResult.ReynoldsNumber)
	assert.InDelta(t, coldResult.VelocityFtS, warmResult.VelocityFtS, 1e-9)

	t.Run("temperature above the table flags the result", func(t *testing.T) {
		hot := params
		hot.WaterTempF = 180
		result, err := AnalyzeSystem(ctx, hot, pipe, nil)
		require.NoError(t, err)
		assert.True(t, result.Extrapolated)
	})
}

func TestAnalyzeSystemSoilGuidance(t *testing.T) {
	ctx := context.Background()
	pipe, _ := PipeSpecFor(MaterialPVC)

	params := CalculationParams{
		FlowRateGPM:      20,
		PipeDiameterIn:   2,
		PipeLengthFt:     100,
		InletPressurePSI: 60,
	}

	t.Run("nil soil adds nothing", func(t *testing.T) {
		result, err := AnalyzeSystem(ctx, params, pipe, nil)
		require.NoError(t, err)
		assert.Empty(t, result.Recommendations)
	})

	t.Run("fast soil gets the infiltration note", func(t *testing.T) {
		soil, _ := SoilPropertiesFor(SoilSand)
		result, err := AnalyzeSystem(ctx, params, pipe, &soil)
		require.NoError(t, err)
		require.Len(t, result.Recommendations, 1)
		assert.Contains(t, result.Recommendations[0], "infiltration rate")
		assert.Contains(t, result.Recommendations[0], "sand")
	})

	t.Run("slow soil also gets cycling advice", func(t *testing.T) {
		soil, _ := SoilPropertiesFor(SoilClay)
		result, err := AnalyzeSystem(ctx, params, pipe, &soil)
		require.NoError(t, err)
		require.Len(t, result.Recommendations, 2)
		assert.Contains(t, result.Recommendations[1], "repeated irrigation cycles")
	})
}

func TestAnalyzeSystemWarnings(t *testing.T) {
	ctx := context.Background()
	pipe, _ := PipeSpecFor(MaterialPVC)

	t.Run("velocity violation", func(t *testing.T) {
		params := CalculationParams{
			FlowRateGPM:      120,
			PipeDiameterIn:   1.5,
			PipeLengthFt:     100,
			InletPressurePSI: 80,
		}
		result, err := AnalyzeSystem(ctx, params, pipe, nil)
		require.NoError(t, err)
		assert.False(t, result.VelocityCompliance)
		assert.False(t, result.ASABECompliance)
		assert.NotEmpty(t, result.Warnings)
		assert.NotEmpty(t, result.Recommendations)
	})

	t.Run("pressure shortfall", func(t *testing.T) {
		params := CalculationParams{
			FlowRateGPM:               20,
			PipeDiameterIn:            1,
			PipeLengthFt:              500,
			InletPressurePSI:          40,
			RequiredOutletPressurePSI: 35,
		}
		result, err := AnalyzeSystem(ctx, params, pipe, nil)
		require.NoError(t, err)
		assert.False(t, result.PressureCompliance)
		assert.False(t, result.ASABECompliance)
	})

	t.Run("low uniformity fails the verdict", func(t *testing.T) {
		params := CalculationParams{
			FlowRateGPM:      10,
			PipeDiameterIn:   2,
			PipeLengthFt:     50,
			InletPressurePSI: 40,
			EmitterFlowsGPH:  []float64{0.2, 1.0, 1.0, 1.0, 1.0, 1.0, 1.0, 1.8},
		}
		result, err := AnalyzeSystem(ctx, params, pipe, nil)
		require.NoError(t, err)
		assert.Less(t, result.DistributionUniformity, minDistributionUniformity)
		assert.False(t, result.ASABECompliance)
	})
}

func TestAnalyzeSystemValidation(t *testing.T) {
	ctx := context.Background()
	pipe, _ := PipeSpecFor(MaterialPVC)

	tests := []struct {
		name   string
		params CalculationParams
	}{
		{"zero flow", CalculationParams{PipeDiameterIn: 2, PipeLengthFt: 100, InletPressurePSI: 40}},
		{"negative diameter", CalculationParams{FlowRateGPM: 10, PipeDiameterIn: -1, PipeLengthFt: 100, InletPressurePSI: 40}},
		{"zero length", CalculationParams{FlowRateGPM: 10, PipeDiameterIn: 2, InletPressurePSI: 40}},
		{"NaN emitter flow", CalculationParams{
			FlowRateGPM: 10, PipeDiameterIn: 2, PipeLengthFt: 100, InletPressurePSI: 40,
			EmitterFlowsGPH: []float64{1, math.NaN()},
		}},
		{"zero quantity fitting", CalculationParams{
			FlowRateGPM: 10, PipeDiameterIn: 2, PipeLengthFt: 100, InletPressurePSI: 40,
			Fittings: []Fitting{{Type: FittingElbow90, Quantity: 0}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AnalyzeSystem(ctx, tt.params, pipe, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, engine.ErrInvalidInput)
		})
	}

	t.Run("bad pipe record", func(t *testing.T) {
		bad := pipe
		bad.WallThicknessIn = 0
		_, err := AnalyzeSystem(ctx, CalculationParams{
			FlowRateGPM: 10, PipeDiameterIn: 2, PipeLengthFt: 100, InletPressurePSI: 40,
		}, bad, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, engine.ErrInvalidInput)
	})
}
