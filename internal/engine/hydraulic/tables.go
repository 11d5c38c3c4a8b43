package hydraulic

// pipeSpecs is the pipe reference table. Elastic moduli are in PSI; wall
// thicknesses are representative SDR/schedule values for irrigation mains.
var pipeSpecs = map[PipeMaterial]PipeSpecifications{
	MaterialPVC: {
		Material:           MaterialPVC,
		HazenWilliamsC:     150,
		RoughnessFt:        5.0e-6,
		ElasticModulusPSI:  400000,
		WallThicknessIn:    0.154,
		WorkingPressurePSI: 200,
		SafetyFactor:       2.0,
	},
	MaterialHDPE: {
		Material:           MaterialHDPE,
		HazenWilliamsC:     140,
		RoughnessFt:        5.0e-6,
		ElasticModulusPSI:  130000,
		WallThicknessIn:    0.176,
		WorkingPressurePSI: 160,
		SafetyFactor:       2.0,
	},
	MaterialSteel: {
		Material:           MaterialSteel,
		HazenWilliamsC:     120,
		RoughnessFt:        1.5e-4,
		ElasticModulusPSI:  30000000,
		WallThicknessIn:    0.133,
		WorkingPressurePSI: 700,
		SafetyFactor:       3.0,
	},
	MaterialAluminum: {
		Material:           MaterialAluminum,
		HazenWilliamsC:     130,
		RoughnessFt:        5.0e-5,
		ElasticModulusPSI:  10000000,
		WallThicknessIn:    0.050,
		WorkingPressurePSI: 150,
		SafetyFactor:       2.5,
	},
	MaterialPolyTubing: {
		Material:           MaterialPolyTubing,
		HazenWilliamsC:     140,
		RoughnessFt:        7.0e-6,
		ElasticModulusPSI:  30000,
		WorkingPressurePSI: 60,
		WallThicknessIn:    0.045,
		SafetyFactor:       1.5,
	},
}

// PipeSpecFor returns the reference record for material. Unknown materials
// fall back to PVC; ok reports whether the material was tabulated.
func PipeSpecFor(material PipeMaterial) (spec PipeSpecifications, ok bool) {
	spec, ok = pipeSpecs[material]
	if !ok {
		spec = pipeSpecs[MaterialPVC]
	}
	return spec, ok
}

// soilTable holds USDA-texture hydraulic reference values. Moisture
// fractions are volumetric.
var soilTable = map[SoilType]SoilProperties{
	SoilSand: {
		Type: SoilSand, HydraulicConductivityIn: 8.0,
		FieldCapacity: 0.10, WiltingPoint: 0.04, Porosity: 0.43, InfiltrationRateIn: 2.0,
	},
	SoilLoamySand: {
		Type: SoilLoamySand, HydraulicConductivityIn: 2.4,
		FieldCapacity: 0.14, WiltingPoint: 0.06, Porosity: 0.44, InfiltrationRateIn: 1.5,
	},
	SoilSandyLoam: {
		Type: SoilSandyLoam, HydraulicConductivityIn: 1.0,
		FieldCapacity: 0.21, WiltingPoint: 0.09, Porosity: 0.45, InfiltrationRateIn: 1.0,
	},
	SoilLoam: {
		Type: SoilLoam, HydraulicConductivityIn: 0.52,
		FieldCapacity: 0.27, WiltingPoint: 0.12, Porosity: 0.46, InfiltrationRateIn: 0.5,
	},
	SoilClayLoam: {
		Type: SoilClayLoam, HydraulicConductivityIn: 0.2,
		FieldCapacity: 0.32, WiltingPoint: 0.17, Porosity: 0.48, InfiltrationRateIn: 0.3,
	},
	SoilClay: {
		Type: SoilClay, HydraulicConductivityIn: 0.06,
		FieldCapacity: 0.38, WiltingPoint: 0.24, Porosity: 0.50, InfiltrationRateIn: 0.1,
	},
}

// SoilPropertiesFor returns the reference record for soil. Unknown soils
// fall back to loam; ok reports whether the soil type was tabulated.
func SoilPropertiesFor(soil SoilType) (props SoilProperties, ok bool) {
	props, ok = soilTable[soil]
	if !ok {
		props = soilTable[SoilLoam]
	}
	return props, ok
}

// fittingKFactors holds representative resistance coefficients for common
// threaded fittings.
var fittingKFactors = map[FittingType]float64{
	FittingElbow90:    0.9,
	FittingElbow45:    0.4,
	FittingTeeThrough: 0.6,
	FittingTeeBranch:  1.8,
	FittingGateValve:  0.2,
	FittingGlobeValve: 10.0,
	FittingCheckValve: 2.5,
	FittingCoupling:   0.08,
	FittingReducer:    0.5,
}

// defaultKFactor is used for fitting types missing from the table; it is the
// 90° elbow value, a conservative middle of the range.
const defaultKFactor = 0.9

// KFactorFor returns the resistance coefficient for t; ok reports whether the
// fitting type was tabulated.
func KFactorFor(t FittingType) (k float64, ok bool) {
	k, ok = fittingKFactors[t]
	if !ok {
		k = defaultKFactor
	}
	return k, ok
}
