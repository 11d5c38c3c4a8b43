// Package hydraulic performs pressurized-pipe and irrigation-system
// analysis: Reynolds number and flow regime, Hazen-Williams and
// Darcy-Weisbach friction, minor losses, water hammer, distribution and
// emission uniformity, and a composite system analysis scored against
// ASABE-style performance thresholds.
package hydraulic

import "encoding/json"

// FlowRegime classifies pipe flow by Reynolds number.
type FlowRegime string

const (
	// RegimeLaminar is Re < 2000.
	RegimeLaminar FlowRegime = "laminar"
	// RegimeTransitional is 2000 <= Re < 4000.
	RegimeTransitional FlowRegime = "transitional"
	// RegimeTurbulent is Re >= 4000.
	RegimeTurbulent FlowRegime = "turbulent"
)

// HammerRisk bands the Joukowsky pressure rise.
type HammerRisk string

const (
	HammerRiskLow      HammerRisk = "low"
	HammerRiskModerate HammerRisk = "moderate"
	HammerRiskHigh     HammerRisk = "high"
	HammerRiskCritical HammerRisk = "critical"
)

// PipeMaterial selects a row of the pipe-specification table.
type PipeMaterial string

const (
	MaterialPVC        PipeMaterial = "pvc"
	MaterialHDPE       PipeMaterial = "hdpe"
	MaterialSteel      PipeMaterial = "steel"
	MaterialAluminum   PipeMaterial = "aluminum"
	MaterialPolyTubing PipeMaterial = "poly_tubing"
)

// PipeSpecifications is the static reference record for one pipe material.
// All numeric fields are > 0.
type PipeSpecifications struct {
	Material           PipeMaterial `json:"material"`
	HazenWilliamsC     float64      `json:"hazenWilliamsC"`
	RoughnessFt        float64      `json:"roughnessFt"`
	ElasticModulusPSI  float64      `json:"elasticModulusPSI"`
	WallThicknessIn    float64      `json:"wallThicknessIn"`
	WorkingPressurePSI float64      `json:"workingPressurePSI"`
	SafetyFactor       float64      `json:"safetyFactor"`
}

// SoilType selects a row of the soil-properties table.
type SoilType string

const (
	SoilSand      SoilType = "sand"
	SoilLoamySand SoilType = "loamy_sand"
	SoilSandyLoam SoilType = "sandy_loam"
	SoilLoam      SoilType = "loam"
	SoilClayLoam  SoilType = "clay_loam"
	SoilClay      SoilType = "clay"
)

// SoilProperties is the static reference record for one soil type.
// Porosity and field capacity are fractions in (0, 1).
type SoilProperties struct {
	Type                    SoilType `json:"type"`
	HydraulicConductivityIn float64  `json:"hydraulicConductivityInPerHr"`
	FieldCapacity           float64  `json:"fieldCapacity"`
	WiltingPoint            float64  `json:"wiltingPoint"`
	Porosity                float64  `json:"porosity"`
	InfiltrationRateIn      float64  `json:"infiltrationRateInPerHr"`
}

// FittingType selects a K-factor from the minor-loss table.
type FittingType string

const (
	FittingElbow90    FittingType = "elbow_90"
	FittingElbow45    FittingType = "elbow_45"
	FittingTeeThrough FittingType = "tee_through"
	FittingTeeBranch  FittingType = "tee_branch"
	FittingGateValve  FittingType = "gate_valve"
	FittingGlobeValve FittingType = "globe_valve"
	FittingCheckValve FittingType = "check_valve"
	FittingCoupling   FittingType = "coupling"
	FittingReducer    FittingType = "reducer"
)

// Fitting is a fitting type with a quantity; the pair is aggregated into
// the minor-loss sum and never mutated after construction.
type Fitting struct {
	Type     FittingType `json:"type" validate:"required"`
	Quantity int         `json:"quantity" validate:"required,gt=0"`
	// KFactor overrides the table value when > 0.
	KFactor float64 `json:"kFactor,omitempty" validate:"omitempty,gt=0"`
}

// CalculationParams is the caller-supplied description of the system under
// analysis. RequiredOutletPressurePSI <= InletPressurePSI is a design goal
// the analysis checks, not an assumption.
type CalculationParams struct {
	FlowRateGPM               float64   `json:"flowRateGPM" validate:"required,gt=0"`
	PipeDiameterIn            float64   `json:"pipeDiameterIn" validate:"required,gt=0"`
	PipeLengthFt              float64   `json:"pipeLengthFt" validate:"required,gt=0"`
	InletPressurePSI          float64   `json:"inletPressurePSI" validate:"required,gt=0"`
	RequiredOutletPressurePSI float64   `json:"requiredOutletPressurePSI" validate:"gte=0"`
	ElevationChangeFt         float64   `json:"elevationChangeFt"`
	Fittings                  []Fitting `json:"fittings" validate:"dive"`
	WaterTempF                float64   `json:"waterTempF" validate:"omitempty,gt=32"`
	MaxVelocityFtS            float64   `json:"maxVelocityFtS" validate:"omitempty,gt=0"`
	PressureTolerancePSI      float64   `json:"pressureTolerancePSI" validate:"omitempty,gt=0"`
	// EmitterFlowsGPH, when present, feeds the uniformity metrics.
	EmitterFlowsGPH []float64 `json:"emitterFlowsGPH,omitempty"`
}

// AnalysisResult is the fully derived output of AnalyzeSystem. It is
// constructed once per call and never updated in place.
type AnalysisResult struct {
	VelocityFtS       float64    `json:"velocityFtS"`
	ReynoldsNumber    float64    `json:"reynoldsNumber"`
	FlowRegime        FlowRegime `json:"flowRegime"`
	FrictionLossPSI   float64    `json:"frictionLossPSI"`
	MinorLossPSI      float64    `json:"minorLossPSI"`
	ElevationLossPSI  float64    `json:"elevationLossPSI"`
	TotalLossPSI      float64    `json:"totalLossPSI"`
	AvailablePSI      float64    `json:"availablePSI"`
	PressureMarginPSI float64    `json:"pressureMarginPSI"`

	WaveSpeedFtS       float64    `json:"waveSpeedFtS"`
	MaxPressureRisePSI float64    `json:"maxPressureRisePSI"`
	WaterHammerRisk    HammerRisk `json:"waterHammerRisk"`

	DistributionUniformity float64 `json:"distributionUniformity,omitempty"`
	EmissionUniformity     float64 `json:"emissionUniformity,omitempty"`

	VelocityCompliance bool `json:"velocityCompliance"`
	PressureCompliance bool `json:"pressureCompliance"`
	ASABECompliance    bool `json:"asabeCompliance"`

	// Extrapolated is set when a lookup key fell back to a table default
	// (fitting K-factor, soil type).
	Extrapolated bool `json:"extrapolated"`

	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}

// MarshalJSON keeps the message slices non-null for API consumers.
func (r AnalysisResult) MarshalJSON() ([]byte, error) {
	type alias AnalysisResult
	a := alias(r)
	if a.Warnings == nil {
		a.Warnings = []string{}
	}
	if a.Recommendations == nil {
		a.Recommendations = []string{}
	}
	return json.Marshal(a)
}
