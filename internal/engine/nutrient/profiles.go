package nutrient

import "fmt"

// Profile names.
const (
	ProfileStandard    = "standard"
	ProfileHighYield   = "high_yield"
	ProfileOrganic     = "organic"
	ProfileFlavorFocus = "flavor_focus"
)

// standardStageMults is shared by the presets that do not shift their stage
// curve.
var standardStageMults = map[GrowthStage]float64{
	StageSeedling:   0.4,
	StageVegetative: 0.8,
	StageFlowering:  1.0,
	StageFruiting:   1.2,
	StageRipening:   0.9,
}

// profiles holds the named formula presets. Base concentrations are ppm in
// the final solution at the fruiting reference stage.
var profiles = map[string]Profile{
	ProfileStandard: {
		Name:        ProfileStandard,
		Description: "General-purpose tomato formula",
		Base: Nutrients{
			Nitrogen: 190, Phosphorus: 50, Potassium: 300,
			Calcium: 180, Magnesium: 50, Sulfur: 65,
			Iron: 2.5, Manganese: 0.55, Zinc: 0.33, Boron: 0.5,
		},
		BaseEC:     2.2,
		TargetPH:   5.9,
		StageMults: standardStageMults,
		EnvCoeffs: EnvironmentCoefficients{
			Temperature: 0.15, Light: 0.10, CO2: 0.05, Humidity: -0.10,
		},
	},
	ProfileHighYield: {
		Name:        ProfileHighYield,
		Description: "Pushed formula for maximum production",
		Base: Nutrients{
			Nitrogen: 220, Phosphorus: 60, Potassium: 350,
			Calcium: 200, Magnesium: 60, Sulfur: 75,
			Iron: 3.0, Manganese: 0.65, Zinc: 0.40, Boron: 0.6,
		},
		BaseEC:     2.8,
		TargetPH:   5.8,
		StageMults: standardStageMults,
		EnvCoeffs: EnvironmentCoefficients{
			Temperature: 0.20, Light: 0.15, CO2: 0.08, Humidity: -0.12,
		},
	},
	ProfileOrganic: {
		Name:        ProfileOrganic,
		Description: "Lower-salt formula for organic substrates",
		Base: Nutrients{
			Nitrogen: 150, Phosphorus: 40, Potassium: 250,
			Calcium: 160, Magnesium: 45, Sulfur: 55,
			Iron: 2.0, Manganese: 0.45, Zinc: 0.28, Boron: 0.4,
		},
		BaseEC:   1.8,
		TargetPH: 6.2,
		StageMults: map[GrowthStage]float64{
			StageSeedling:   0.5,
			StageVegetative: 0.8,
			StageFlowering:  1.0,
			StageFruiting:   1.1,
			StageRipening:   0.9,
		},
		EnvCoeffs: EnvironmentCoefficients{
			Temperature: 0.10, Light: 0.08, CO2: 0.03, Humidity: -0.08,
		},
	},
	ProfileFlavorFocus: {
		Name:        ProfileFlavorFocus,
		Description: "Elevated EC for flavor concentration",
		Base: Nutrients{
			Nitrogen: 170, Phosphorus: 55, Potassium: 330,
			Calcium: 185, Magnesium: 55, Sulfur: 70,
			Iron: 2.5, Manganese: 0.55, Zinc: 0.33, Boron: 0.5,
		},
		BaseEC:     3.0,
		TargetPH:   6.0,
		StageMults: standardStageMults,
		EnvCoeffs: EnvironmentCoefficients{
			Temperature: 0.12, Light: 0.12, CO2: 0.04, Humidity: -0.15,
		},
	},
}

// ProfileByName returns the preset for name.
func ProfileByName(name string) (Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown nutrient profile: %q", name)
	}
	return p, nil
}

// ProfileNames lists the available presets in a stable order.
func ProfileNames() []string {
	return []string{ProfileStandard, ProfileHighYield, ProfileOrganic, ProfileFlavorFocus}
}
