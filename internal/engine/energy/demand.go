package energy

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/verdant-labs/greengauge/internal/engine"
	"github.com/verdant-labs/greengauge/internal/engine/units"
	"github.com/verdant-labs/greengauge/internal/logging"
)

// Annualization and pricing constants. Hours-per-year figures are explicit
// so every rate is consistently annualized.
const (
	// heatingHoursPerYear is the assumed annual heating run time for a
	// temperate-climate greenhouse.
	heatingHoursPerYear = 2500.0

	// coolingHoursPerYear is the assumed annual evaporative-cooling run
	// time.
	coolingHoursPerYear = 1000.0

	// co2HoursPerYear is the assumed annual enrichment run time
	// (daylight hours with vents closed).
	co2HoursPerYear = 1800.0

	// gasPricePerTherm is the default natural-gas price in $/therm.
	gasPricePerTherm = 1.20

	// co2PricePerLb is the default bulk liquid CO2 price in $/lb.
	co2PricePerLb = 0.60

	// ventilationCFMPerSqFt is the rule-of-thumb summer ventilation rate.
	ventilationCFMPerSqFt = 8.0

	// fanWattsPerCFM is the combined fan and pump power draw per CFM for
	// pad-and-fan systems.
	fanWattsPerCFM = 0.3

	// defaultPadEfficiency is the evaporative pad saturation efficiency
	// used when the specs leave it unset.
	defaultPadEfficiency = 0.8
)

// dollars rounds a float dollar amount into a decimal with cent precision.
func dollars(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Round(2)
}

// CalculateDemand is the composite energy entry point: it combines heat
// loss, solar gain, evaporative cooling, lighting, ventilation and CO2
// enrichment into a Requirements record with annualized costs.
//
// electricityPrice is in $/kWh; pass 0 for the $0.12 default. Input
// validation failures are returned as *engine.InvalidInputError.
func CalculateDemand(
	ctx context.Context,
	specs GreenhouseSpecs,
	setpoints ClimateSetpoints,
	weather WeatherConditions,
	electricityPrice float64,
) (*Requirements, error) {
	log := logging.FromContext(ctx)

	if err := engine.ValidateStruct(specs); err != nil {
		return nil, err
	}
	if err := engine.ValidateStruct(setpoints); err != nil {
		return nil, err
	}
	if err := engine.ValidateStruct(weather); err != nil {
		return nil, err
	}
	if _, ok := glazingFor(specs.Glazing); !ok {
		return nil, engine.NewInvalidInput("glazing", string(specs.Glazing), "unknown glazing type")
	}

	if electricityPrice <= 0 {
		electricityPrice = electricityPricePerKWh
	}
	padEfficiency := specs.PadEfficiency
	if padEfficiency <= 0 {
		padEfficiency = defaultPadEfficiency
	}

	log.Debug().
		Str("component", "energy").
		Str("operation", "calculate_demand").
		Float64("floor_sqft", specs.FloorAreaSqFt()).
		Msg("starting demand calculation")

	req := &Requirements{}

	// Heating sized against the night setpoint.
	heatLoss := CalculateHeatLoss(specs, setpoints.NightTempF, weather)
	annualHeatBTU := heatLoss * heatingHoursPerYear
	req.Heating = HeatingLoad{
		PeakBTUPerHr: heatLoss,
		AnnualTherms: annualHeatBTU / units.BTUPerTherm,
		AnnualCost:   dollars(annualHeatBTU / units.BTUPerTherm * gasPricePerTherm),
	}

	// Ventilation airflow drives both cooling and fan energy.
	airflowCFM := specs.FloorAreaSqFt() * ventilationCFMPerSqFt
	fanKW := airflowCFM * fanWattsPerCFM / 1000.0
	ventKWh := fanKW * coolingHoursPerYear
	req.Ventilation = VentilationLoad{
		AirflowCFM: airflowCFM,
		AnnualKWh:  ventKWh,
		AnnualCost: dollars(ventKWh * electricityPrice),
	}

	// Cooling: solar gain is the load, pad-and-fan the capacity.
	solarGain := CalculateSolarHeatGain(specs, weather)
	coolingCapacity := CalculateEvaporativeCooling(
		airflowCFM, setpoints.DayTempF, weather.WetBulbF, padEfficiency,
	)
	req.Cooling = CoolingLoad{
		SolarGainBTUPerHr: solarGain,
		CapacityBTUPerHr:  coolingCapacity,
		AnnualKWh:         ventKWh,
		AnnualCost:        req.Ventilation.AnnualCost,
	}

	// Lighting sized to close the DLI gap.
	req.Lighting = CalculateLightingRequirements(
		specs.FloorAreaSqFt(),
		setpoints.TargetDLI, weather.NaturalDLI, setpoints.PhotoperiodHr, electricityPrice,
	)

	// CO2 enrichment: generation rate in lb/hr, priced per lb. Distinct
	// names keep the mass rate and the dollar rate from shadowing each
	// other.
	co2GenerationLbPerHr := CalculateCO2Requirements(
		airflowCFM, setpoints.CO2TargetPPM, weather.AmbientCO2PPM,
	)
	co2AnnualLb := co2GenerationLbPerHr * co2HoursPerYear
	req.CO2 = CO2Load{
		GenerationLbPerHr: co2GenerationLbPerHr,
		AnnualLb:          co2AnnualLb,
		AnnualCost:        dollars(co2AnnualLb * co2PricePerLb),
	}

	req.TotalAnnualCost = req.Heating.AnnualCost.
		Add(req.Ventilation.AnnualCost).
		Add(req.Lighting.AnnualCost).
		Add(req.CO2.AnnualCost)

	log.Info().
		Str("component", "energy").
		Float64("heating_btu_hr", req.Heating.PeakBTUPerHr).
		Float64("lighting_w", req.Lighting.PowerW).
		Str("total_annual_cost", req.TotalAnnualCost.String()).
		Msg("demand calculation complete")

	return req, nil
}
