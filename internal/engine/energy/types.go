// Package energy models greenhouse energy demand: conduction and
// infiltration heat loss, solar gain, evaporative cooling, CO2 enrichment,
// supplemental lighting, thermal storage, and the annualized cost roll-up.
package energy

import "github.com/shopspring/decimal"

// GlazingType selects a U-value and solar heat gain coefficient.
type GlazingType string

const (
	GlazingGlass         GlazingType = "glass"
	GlazingPolycarbonate GlazingType = "polycarbonate"
	GlazingPolyethylene  GlazingType = "polyethylene"
)

// StorageMedium selects a thermal-storage heat capacity.
type StorageMedium string

const (
	StorageWater       StorageMedium = "water"
	StorageConcrete    StorageMedium = "concrete"
	StoragePhaseChange StorageMedium = "phase_change"
)

// GreenhouseSpecs is the static facility descriptor.
type GreenhouseSpecs struct {
	LengthFt      float64     `json:"lengthFt" validate:"required,gt=0"`
	WidthFt       float64     `json:"widthFt" validate:"required,gt=0"`
	HeightFt      float64     `json:"heightFt" validate:"required,gt=0"`
	Glazing       GlazingType `json:"glazing" validate:"required"`
	AirChanges    float64     `json:"airChangesPerHr" validate:"omitempty,gt=0"`
	PadEfficiency float64     `json:"padEfficiency" validate:"omitempty,gt=0,lte=1"`
}

// FloorAreaSqFt returns the footprint area.
func (g GreenhouseSpecs) FloorAreaSqFt() float64 {
	return g.LengthFt * g.WidthFt
}

// SurfaceAreaSqFt returns the exposed envelope area: four walls plus a flat
// roof approximation.
func (g GreenhouseSpecs) SurfaceAreaSqFt() float64 {
	walls := 2 * (g.LengthFt + g.WidthFt) * g.HeightFt
	return walls + g.FloorAreaSqFt()
}

// VolumeCuFt returns the enclosed air volume.
func (g GreenhouseSpecs) VolumeCuFt() float64 {
	return g.FloorAreaSqFt() * g.HeightFt
}

// ClimateSetpoints is the target indoor environment.
type ClimateSetpoints struct {
	DayTempF      float64 `json:"dayTempF" validate:"required"`
	NightTempF    float64 `json:"nightTempF" validate:"required"`
	CO2TargetPPM  float64 `json:"co2TargetPPM" validate:"omitempty,gt=0"`
	TargetDLI     float64 `json:"targetDLI" validate:"omitempty,gt=0"`
	PhotoperiodHr float64 `json:"photoperiodHr" validate:"omitempty,gt=0,lte=24"`
}

// WeatherConditions is the design-day outdoor environment.
type WeatherConditions struct {
	OutsideTempF      float64 `json:"outsideTempF"`
	WindSpeedMPH      float64 `json:"windSpeedMPH" validate:"gte=0"`
	SolarRadiationWM2 float64 `json:"solarRadiationWM2" validate:"gte=0"`
	CloudCover        float64 `json:"cloudCover" validate:"gte=0,lte=1"`
	WetBulbF          float64 `json:"wetBulbF"`
	AmbientCO2PPM     float64 `json:"ambientCO2PPM" validate:"omitempty,gt=0"`
	NaturalDLI        float64 `json:"naturalDLI" validate:"gte=0"`
}

// HeatingLoad is the heating sub-result.
type HeatingLoad struct {
	PeakBTUPerHr float64         `json:"peakBTUPerHr"`
	AnnualTherms float64         `json:"annualTherms"`
	AnnualCost   decimal.Decimal `json:"annualCost"`
}

// CoolingLoad is the evaporative-cooling sub-result.
type CoolingLoad struct {
	SolarGainBTUPerHr float64         `json:"solarGainBTUPerHr"`
	CapacityBTUPerHr  float64         `json:"capacityBTUPerHr"`
	AnnualKWh         float64         `json:"annualKWh"`
	AnnualCost        decimal.Decimal `json:"annualCost"`
}

// LightingLoad is the supplemental-lighting sub-result.
type LightingLoad struct {
	SupplementalDLI float64         `json:"supplementalDLI"`
	RequiredPPFD    float64         `json:"requiredPPFD"`
	PowerW          float64         `json:"powerW"`
	AnnualKWh       float64         `json:"annualKWh"`
	AnnualCost      decimal.Decimal `json:"annualCost"`
}

// VentilationLoad is the ventilation sub-result.
type VentilationLoad struct {
	AirflowCFM float64         `json:"airflowCFM"`
	AnnualKWh  float64         `json:"annualKWh"`
	AnnualCost decimal.Decimal `json:"annualCost"`
}

// CO2Load is the enrichment sub-result: the CO2 injection mass rate in lb/hr
// and the yearly spend at the configured price.
type CO2Load struct {
	GenerationLbPerHr float64         `json:"generationLbPerHr"`
	AnnualLb          float64         `json:"annualLb"`
	AnnualCost        decimal.Decimal `json:"annualCost"`
}

// Requirements aggregates all sub-loads and the total annual cost.
type Requirements struct {
	Heating         HeatingLoad     `json:"heating"`
	Cooling         CoolingLoad     `json:"cooling"`
	Lighting        LightingLoad    `json:"lighting"`
	Ventilation     VentilationLoad `json:"ventilation"`
	CO2             CO2Load         `json:"co2"`
	TotalAnnualCost decimal.Decimal `json:"totalAnnualCost"`
}

// ThermalStorage is the result of CalculateThermalStorage.
type ThermalStorage struct {
	Medium      StorageMedium `json:"medium"`
	CapacityBTU float64       `json:"capacityBTU"`
	UsableBTU   float64       `json:"usableBTU"`
	OffsetHours float64       `json:"offsetHours"`
}
