package energy

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdant-labs/greengauge/internal/engine"
)

// testSpecs is a 30x96 gutter-connect bay used across the tests.
var testSpecs = GreenhouseSpecs{
	LengthFt: 96,
	WidthFt:  30,
	HeightFt: 12,
	Glazing:  GlazingPolycarbonate,
}

func TestGreenhouseGeometry(t *testing.T) {
	assert.InDelta(t, 2880.0, testSpecs.FloorAreaSqFt(), 1e-9)
	assert.InDelta(t, 2*(96+30)*12+2880, testSpecs.SurfaceAreaSqFt(), 1e-9)
	assert.InDelta(t, 2880*12, testSpecs.VolumeCuFt(), 1e-9)
}

func TestCalculateHeatLoss(t *testing.T) {
	weather := WeatherConditions{OutsideTempF: 20, WindSpeedMPH: 10}

	t.Run("conduction plus infiltration at reference wind", func(t *testing.T) {
		// deltaT = 45. Conduction = 0.58 * 5904 * 45. Infiltration =
		// 34560 * 0.5 * 0.018 * 45. Wind factor 1.0 at 10 mph.
		want := 0.58*5904*45 + 34560*0.5*0.018*45
		got := CalculateHeatLoss(testSpecs, 65, weather)
		assert.InDelta(t, want, got, 1e-6)
	})

	t.Run("wind raises the loss", func(t *testing.T) {
		windy := weather
		windy.WindSpeedMPH = 25
		assert.Greater(t, CalculateHeatLoss(testSpecs, 65, windy), CalculateHeatLoss(testSpecs, 65, weather))
	})

	t.Run("no loss when outside is warmer", func(t *testing.T) {
		warm := WeatherConditions{OutsideTempF: 80}
		assert.Zero(t, CalculateHeatLoss(testSpecs, 65, warm))
	})

	t.Run("explicit air changes override the default", func(t *testing.T) {
		leaky := testSpecs
		leaky.AirChanges = 1.5
		assert.Greater(t, CalculateHeatLoss(leaky, 65, weather), CalculateHeatLoss(testSpecs, 65, weather))
	})
}

func TestCalculateSolarHeatGain(t *testing.T) {
	weather := WeatherConditions{SolarRadiationWM2: 800, CloudCover: 0}

	// 2880 ft² * 800 W/m² * 0.317 * SHGC 0.7
	want := 2880 * 800 * 0.317 * 0.7
	assert.InDelta(t, want, CalculateSolarHeatGain(testSpecs, weather), 1e-6)

	t.Run("cloud cover reduces gain linearly", func(t *testing.T) {
		half := weather
		half.CloudCover = 0.5
		assert.InDelta(t, want/2, CalculateSolarHeatGain(testSpecs, half), 1e-6)
	})

	t.Run("glass has the higher coefficient", func(t *testing.T) {
		glass := testSpecs
		glass.Glazing = GlazingGlass
		assert.Greater(t, CalculateSolarHeatGain(glass, weather), CalculateSolarHeatGain(testSpecs, weather))
	})
}

func TestCalculateEvaporativeCooling(t *testing.T) {
	// 10000 CFM * 1.08 * (95-75) * 0.8 = 172800 BTU/hr
	got := CalculateEvaporativeCooling(10000, 95, 75, 0.8)
	assert.InDelta(t, 172800, got, 1e-6)

	assert.Zero(t, CalculateEvaporativeCooling(10000, 70, 75, 0.8),
		"no cooling when wet bulb meets dry bulb")
}

func TestCalculateCO2Requirements(t *testing.T) {
	// 5000 CFM * 60 * (1200-400)/1e6 * 0.044 = 10.56 lb/hr
	got := CalculateCO2Requirements(5000, 1200, 400)
	assert.InDelta(t, 10.56, got, 1e-9)

	t.Run("ambient default applies", func(t *testing.T) {
		withDefault := CalculateCO2Requirements(5000, 1200, 0)
		explicit := CalculateCO2Requirements(5000, 1200, 420)
		assert.InDelta(t, explicit, withDefault, 1e-9)
	})

	t.Run("target at or below ambient needs nothing", func(t *testing.T) {
		assert.Zero(t, CalculateCO2Requirements(5000, 400, 420))
	})
}

func TestCalculateLightingRequirements(t *testing.T) {
	t.Run("supplemental DLI to PPFD and power", func(t *testing.T) {
		// 12 mol/m²/day over 16 h = 12e6/(16*3600) = 208.33 µmol/m²/s.
		got := CalculateLightingRequirements(1000, 20, 8, 16, 0)
		assert.InDelta(t, 12.0, got.SupplementalDLI, 1e-9)
		assert.InDelta(t, 208.333, got.RequiredPPFD, 0.01)

		// Power = PPFD * (1000*0.0929) m² / 2.7 µmol/J.
		wantPower := got.RequiredPPFD * 1000 * 0.0929 / 2.7
		assert.InDelta(t, wantPower, got.PowerW, 1e-6)
	})

	t.Run("annual energy is power times photoperiod times days", func(t *testing.T) {
		got := CalculateLightingRequirements(2880, 22, 10, 0, 0)
		assert.InDelta(t, got.PowerW*16*365/1000, got.AnnualKWh, 1e-9)
	})

	t.Run("natural light covering the target needs no fixtures", func(t *testing.T) {
		got := CalculateLightingRequirements(1000, 10, 15, 16, 0)
		assert.Zero(t, got.PowerW)
		assert.True(t, got.AnnualCost.IsZero())
	})
}

func TestCalculateThermalStorage(t *testing.T) {
	t.Run("water tank", func(t *testing.T) {
		// 1000 gal * 8.33 * 20°F = 166600 BTU, 90% usable.
		got := CalculateThermalStorage(StorageWater, 1000, 0.9, 50000)
		assert.InDelta(t, 166600, got.CapacityBTU, 1e-6)
		assert.InDelta(t, 149940, got.UsableBTU, 1e-6)
		assert.InDelta(t, 149940.0/50000, got.OffsetHours, 1e-9)
	})

	t.Run("concrete mass", func(t *testing.T) {
		// 500 ft³ * 0.2*150 * 20 = 300000 BTU.
		got := CalculateThermalStorage(StorageConcrete, 500, 1.0, 0)
		assert.InDelta(t, 300000, got.CapacityBTU, 1e-6)
		assert.Zero(t, got.OffsetHours)
	})

	t.Run("unknown medium falls back to water", func(t *testing.T) {
		got := CalculateThermalStorage("brick", 100, 1.0, 0)
		assert.Equal(t, StorageWater, got.Medium)
	})
}

func TestCalculateDemand(t *testing.T) {
	ctx := context.Background()
	setpoints := ClimateSetpoints{
		DayTempF:     78,
		NightTempF:   65,
		CO2TargetPPM: 1000,
		TargetDLI:    22,
	}
	weather := WeatherConditions{
		OutsideTempF:      20,
		WindSpeedMPH:      12,
		SolarRadiationWM2: 600,
		CloudCover:        0.3,
		WetBulbF:          62,
		NaturalDLI:        10,
	}

	req, err := CalculateDemand(ctx, testSpecs, setpoints, weather, 0)
	require.NoError(t, err)

	assert.Greater(t, req.Heating.PeakBTUPerHr, 0.0)
	assert.InDelta(t, req.Heating.PeakBTUPerHr*heatingHoursPerYear/100000, req.Heating.AnnualTherms, 1e-6)

	assert.InDelta(t, testSpecs.FloorAreaSqFt()*ventilationCFMPerSqFt, req.Ventilation.AirflowCFM, 1e-9)

	// Lighting annual energy uses the fixed 16-hour default photoperiod.
	assert.InDelta(t, req.Lighting.PowerW*16*365/1000, req.Lighting.AnnualKWh, 1e-9)

	assert.Greater(t, req.CO2.GenerationLbPerHr, 0.0)
	assert.InDelta(t, req.CO2.GenerationLbPerHr*co2HoursPerYear, req.CO2.AnnualLb, 1e-6)

	wantTotal := req.Heating.AnnualCost.
		Add(req.Ventilation.AnnualCost).
		Add(req.Lighting.AnnualCost).
		Add(req.CO2.AnnualCost)
	assert.True(t, wantTotal.Equal(req.TotalAnnualCost),
		"total %s must equal the sum of sub-costs %s", req.TotalAnnualCost, wantTotal)

	// CO2 cost uses the per-pound price, not the generation rate.
	wantCO2 := decimal.NewFromFloat(req.CO2.AnnualLb * co2PricePerLb).Round(2)
	assert.True(t, wantCO2.Equal(req.CO2.AnnualCost))
}

func TestCalculateDemandValidation(t *testing.T) {
	ctx := context.Background()
	good := ClimateSetpoints{DayTempF: 78, NightTempF: 65}
	weather := WeatherConditions{OutsideTempF: 20}

	t.Run("zero dimensions rejected", func(t *testing.T) {
		bad := testSpecs
		bad.WidthFt = 0
		_, err := CalculateDemand(ctx, bad, good, weather, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, engine.ErrInvalidInput)
	})

	t.Run("unknown glazing rejected", func(t *testing.T) {
		bad := testSpecs
		bad.Glazing = "acrylic"
		_, err := CalculateDemand(ctx, bad, good, weather, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, engine.ErrInvalidInput)
	})

	t.Run("cloud cover above one rejected", func(t *testing.T) {
		bad := weather
		bad.CloudCover = 1.5
		_, err := CalculateDemand(ctx, testSpecs, good, bad, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, engine.ErrInvalidInput)
	})
}
