// Package nutrient derives NPK and micronutrient targets, EC/pH setpoints
// and feed volumes for a named crop-nutrition profile, modulated by growth
// stage, environment and production goals, and diagnoses deficiencies
// against measured solution levels.
package nutrient

import (
	"encoding/json"

	"github.com/verdant-labs/greengauge/internal/engine"
)

// GrowthStage is the phenological stage of the crop.
type GrowthStage string

const (
	StageSeedling   GrowthStage = "seedling"
	StageVegetative GrowthStage = "vegetative"
	StageFlowering  GrowthStage = "flowering"
	StageFruiting   GrowthStage = "fruiting"
	StageRipening   GrowthStage = "ripening"
)

// validStages is the closed stage set.
var validStages = map[GrowthStage]bool{
	StageSeedling:   true,
	StageVegetative: true,
	StageFlowering:  true,
	StageFruiting:   true,
	StageRipening:   true,
}

// QualityFocus steers the quality modifier of the composite scaling.
type QualityFocus string

const (
	FocusYield    QualityFocus = "yield"
	FocusBalanced QualityFocus = "balanced"
	FocusFlavor   QualityFocus = "flavor"
)

// Nutrients carries solution concentrations in ppm for the macro and micro
// elements the engine manages.
type Nutrients struct {
	Nitrogen   float64 `json:"nitrogen"`
	Phosphorus float64 `json:"phosphorus"`
	Potassium  float64 `json:"potassium"`
	Calcium    float64 `json:"calcium"`
	Magnesium  float64 `json:"magnesium"`
	Sulfur     float64 `json:"sulfur"`
	Iron       float64 `json:"iron"`
	Manganese  float64 `json:"manganese"`
	Zinc       float64 `json:"zinc"`
	Boron      float64 `json:"boron"`
}

// Scale returns a copy with every element multiplied by factor. The single
// composite factor is applied uniformly: the profiles model crop response
// as one multiplicative curve, not per-element curves.
func (n Nutrients) Scale(factor float64) Nutrients {
	return Nutrients{
		Nitrogen:   n.Nitrogen * factor,
		Phosphorus: n.Phosphorus * factor,
		Potassium:  n.Potassium * factor,
		Calcium:    n.Calcium * factor,
		Magnesium:  n.Magnesium * factor,
		Sulfur:     n.Sulfur * factor,
		Iron:       n.Iron * factor,
		Manganese:  n.Manganese * factor,
		Zinc:       n.Zinc * factor,
		Boron:      n.Boron * factor,
	}
}

// AsMap returns the element concentrations keyed by element name, for
// iteration in diagnosis.
func (n Nutrients) AsMap() map[string]float64 {
	return map[string]float64{
		"nitrogen":   n.Nitrogen,
		"phosphorus": n.Phosphorus,
		"potassium":  n.Potassium,
		"calcium":    n.Calcium,
		"magnesium":  n.Magnesium,
		"sulfur":     n.Sulfur,
		"iron":       n.Iron,
		"manganese":  n.Manganese,
		"zinc":       n.Zinc,
		"boron":      n.Boron,
	}
}

// FromMap builds a Nutrients from element concentrations keyed by the names
// AsMap uses. Unknown element names are an error.
func FromMap(values map[string]float64) (Nutrients, error) {
	var n Nutrients
	for name, ppm := range values {
		switch name {
		case "nitrogen":
			n.Nitrogen = ppm
		case "phosphorus":
			n.Phosphorus = ppm
		case "potassium":
			n.Potassium = ppm
		case "calcium":
			n.Calcium = ppm
		case "magnesium":
			n.Magnesium = ppm
		case "sulfur":
			n.Sulfur = ppm
		case "iron":
			n.Iron = ppm
		case "manganese":
			n.Manganese = ppm
		case "zinc":
			n.Zinc = ppm
		case "boron":
			n.Boron = ppm
		default:
			return Nutrients{}, engine.NewInvalidInput("element", name, "unknown nutrient element")
		}
	}
	return n, nil
}

// EnvironmentCoefficients are a profile's linear response slopes to
// normalized deviations of temperature, light, CO2 and humidity from their
// reference values.
type EnvironmentCoefficients struct {
	Temperature float64 `json:"temperature"`
	Light       float64 `json:"light"`
	CO2         float64 `json:"co2"`
	Humidity    float64 `json:"humidity"`
}

// Profile is a named formula preset: base concentrations, per-stage
// multipliers and environmental-response coefficients.
type Profile struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Base        Nutrients               `json:"base"`
	BaseEC      float64                 `json:"baseEC"`
	TargetPH    float64                 `json:"targetPH"`
	StageMults  map[GrowthStage]float64 `json:"stageMultipliers"`
	EnvCoeffs   EnvironmentCoefficients `json:"environmentCoefficients"`
}

// PlantParameters describes the crop being fed.
type PlantParameters struct {
	AgeDays        float64     `json:"ageDays" validate:"gte=0"`
	Stage          GrowthStage `json:"stage" validate:"required"`
	LeafCount      float64     `json:"leafCount" validate:"gte=0"`
	VarietyYieldKg float64     `json:"varietyYieldKg" validate:"omitempty,gt=0"`
}

// EnvironmentalConditions is the measured growing environment.
type EnvironmentalConditions struct {
	TempC       float64 `json:"tempC" validate:"required"`
	LightPPFD   float64 `json:"lightPPFD" validate:"gte=0"`
	CO2PPM      float64 `json:"co2PPM" validate:"omitempty,gt=0"`
	HumidityPct float64 `json:"humidityPct" validate:"gte=0,lte=100"`
}

// ProductionTargets carries the grower's goals.
type ProductionTargets struct {
	TargetYieldKg float64      `json:"targetYieldKg" validate:"omitempty,gt=0"`
	QualityFocus  QualityFocus `json:"qualityFocus" validate:"omitempty,oneof=yield balanced flavor"`
}

// Requirements is the derived feeding program.
type Requirements struct {
	Profile           string      `json:"profile"`
	Stage             GrowthStage `json:"stage"`
	Nutrients         Nutrients   `json:"nutrients"`
	EC                float64     `json:"ec"`
	PH                float64     `json:"ph"`
	CompositeModifier float64     `json:"compositeModifier"`
	WaterUptakeLDay   float64     `json:"waterUptakeLPerDay"`
	FeedVolumeLDay    float64     `json:"feedVolumeLPerDay"`
	GrowthRate        float64     `json:"growthRate"`
	EstimatedYieldKg  float64     `json:"estimatedYieldKg"`
}

// Deficiency flags one element measured below its tolerance band.
type Deficiency struct {
	Nutrient    string   `json:"nutrient"`
	CurrentPPM  float64  `json:"currentPPM"`
	RequiredPPM float64  `json:"requiredPPM"`
	SeverityPct float64  `json:"severityPct"`
	Symptoms    []string `json:"symptoms"`
	Remediation string   `json:"remediation"`
}

// Diagnosis is the ordered set of deficiencies found.
type Diagnosis struct {
	Deficiencies []Deficiency `json:"deficiencies"`
}

// MarshalJSON keeps Deficiencies non-null for API consumers.
func (d Diagnosis) MarshalJSON() ([]byte, error) {
	type alias Diagnosis
	a := alias(d)
	if a.Deficiencies == nil {
		a.Deficiencies = []Deficiency{}
	}
	return json.Marshal(a)
}
