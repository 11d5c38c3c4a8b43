package nutrient

import (
	"context"
	"sort"

	"github.com/verdant-labs/greengauge/internal/logging"
)

// toleranceBands holds the per-element fraction below the requirement that
// is still considered adequate. Calcium is tight because deficiency shows
// as irreversible blossom-end rot.
var toleranceBands = map[string]float64{
	"nitrogen":   0.15,
	"phosphorus": 0.20,
	"potassium":  0.15,
	"calcium":    0.10,
	"magnesium":  0.15,
	"sulfur":     0.20,
	"iron":       0.10,
	"manganese":  0.20,
	"zinc":       0.20,
	"boron":      0.15,
}

// defaultTolerance applies to elements missing from the band table.
const defaultTolerance = 0.15

var deficiencySymptoms = map[string][]string{
	"nitrogen":   {"Uniform yellowing of older leaves", "Stunted, spindly growth"},
	"phosphorus": {"Purple tint on leaf undersides", "Delayed flowering"},
	"potassium":  {"Scorched leaf margins on older leaves", "Uneven fruit ripening"},
	"calcium":    {"Blossom-end rot on fruit", "Distorted new growth"},
	"magnesium":  {"Interveinal chlorosis on older leaves"},
	"sulfur":     {"Uniform yellowing of younger leaves"},
	"iron":       {"Interveinal chlorosis on new growth"},
	"manganese":  {"Mottled chlorosis with green veins"},
	"zinc":       {"Shortened internodes", "Small distorted leaves"},
	"boron":      {"Brittle stems", "Corky fruit lesions"},
}

var deficiencyRemediation = map[string]string{
	"nitrogen":   "Increase calcium nitrate in the A tank and re-check EC after 48 hours.",
	"phosphorus": "Add monopotassium phosphate; verify solution temperature is above 18°C.",
	"potassium":  "Increase potassium sulfate; keep the K:Ca ratio under 1.8.",
	"calcium":    "Increase calcium nitrate and improve airflow to raise transpiration.",
	"magnesium":  "Add magnesium sulfate away from the calcium stock to avoid precipitation.",
	"sulfur":     "Shift potassium supply toward potassium sulfate.",
	"iron":       "Add chelated iron (DTPA below pH 6.5) and verify solution pH.",
	"manganese":  "Add manganese sulfate; confirm pH is not above 6.5.",
	"zinc":       "Add zinc sulfate at micro-dose rates.",
	"boron":      "Add boric acid carefully; the band between deficiency and toxicity is narrow.",
}

// DiagnoseDeficiencies compares measured solution levels against the
// required program and flags every element measured below its tolerance
// band: current < required × (1 − tolerance). Severity is the shortfall as
// a percentage of the requirement. Results are ordered by descending
// severity.
func DiagnoseDeficiencies(ctx context.Context, current, required Nutrients) Diagnosis {
	log := logging.FromContext(ctx)

	currentMap := current.AsMap()
	requiredMap := required.AsMap()

	var deficiencies []Deficiency
	for element, req := range requiredMap {
		if req <= 0 {
			continue
		}
		tolerance, ok := toleranceBands[element]
		if !ok {
			tolerance = defaultTolerance
		}

		cur := currentMap[element]
		if cur >= req*(1-tolerance) {
			continue
		}

		deficiencies = append(deficiencies, Deficiency{
			Nutrient:    element,
			CurrentPPM:  cur,
			RequiredPPM: req,
			SeverityPct: (req - cur) / req * 100.0,
			Symptoms:    deficiencySymptoms[element],
			Remediation: deficiencyRemediation[element],
		})
	}

	sort.Slice(deficiencies, func(i, j int) bool {
		if deficiencies[i].SeverityPct != deficiencies[j].SeverityPct {
			return deficiencies[i].SeverityPct > deficiencies[j].SeverityPct
		}
		return deficiencies[i].Nutrient < deficiencies[j].Nutrient
	})

	log.Debug().
		Str("component", "nutrient").
		Str("operation", "diagnose_deficiencies").
		Int("deficiencies", len(deficiencies)).
		Msg("diagnosis complete")

	return Diagnosis{Deficiencies: deficiencies}
}
