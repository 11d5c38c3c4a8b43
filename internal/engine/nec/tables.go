package nec

// groundingEntry maps a maximum overcurrent-device rating to the minimum
// copper equipment grounding conductor, per NEC Table 250.122.
type groundingEntry struct {
	maxDeviceAmps float64
	conductor     string
}

// groundingTable is ordered by ascending device rating. Lookup returns the
// first entry whose threshold is >= the device rating; devices above the
// last threshold get the last entry.
var groundingTable = []groundingEntry{
	{15, "14 AWG"},
	{20, "12 AWG"},
	{60, "10 AWG"},
	{100, "8 AWG"},
	{200, "6 AWG"},
	{300, "4 AWG"},
	{400, "3 AWG"},
	{500, "2 AWG"},
	{600, "1 AWG"},
	{800, "1/0 AWG"},
	{1000, "2/0 AWG"},
	{1200, "3/0 AWG"},
	{1600, "4/0 AWG"},
	{2000, "250 kcmil"},
	{2500, "350 kcmil"},
	{3000, "400 kcmil"},
	{4000, "500 kcmil"},
	{5000, "700 kcmil"},
	{6000, "800 kcmil"},
}

// groundingGaugeRank orders conductor sizes from smallest to largest
// cross-section, for monotonicity checks and comparisons.
var groundingGaugeRank = map[string]int{
	"14 AWG":    0,
	"12 AWG":    1,
	"10 AWG":    2,
	"8 AWG":     3,
	"6 AWG":     4,
	"4 AWG":     5,
	"3 AWG":     6,
	"2 AWG":     7,
	"1 AWG":     8,
	"1/0 AWG":   9,
	"2/0 AWG":   10,
	"3/0 AWG":   11,
	"4/0 AWG":   12,
	"250 kcmil": 13,
	"350 kcmil": 14,
	"400 kcmil": 15,
	"500 kcmil": 16,
	"700 kcmil": 17,
	"800 kcmil": 18,
}

// tempCorrectionBand is one row of NEC Table 310.15(B)(1) (ambient 30°C
// basis). Factors differ by conductor temperature rating.
type tempCorrectionBand struct {
	maxAmbientC int
	factor75C   float64
	factor90C   float64
}

// Ambient temperature bands, clamped to [21, 50] °C before lookup.
var tempCorrectionTable = []tempCorrectionBand{
	{25, 1.05, 1.04},
	{30, 1.00, 1.00},
	{35, 0.94, 0.96},
	{40, 0.88, 0.91},
	{45, 0.82, 0.87},
	{50, 0.75, 0.82},
}

const (
	// minAmbientC and maxAmbientC bound the temperature-correction table.
	minAmbientC = 21
	maxAmbientC = 50

	// minConductorCount and maxConductorCount bound the adjustment table.
	minConductorCount = 3
	maxConductorCount = 20
)

// conductorAdjustmentFactor implements NEC Table 310.15(B)(3)(a) for counts
// in [3, 20]. Callers clamp before calling.
func conductorAdjustmentFactor(count int) float64 {
	switch {
	case count <= 3:
		return 1.00
	case count <= 6:
		return 0.80
	case count <= 9:
		return 0.70
	default: // 10-20
		return 0.50
	}
}

// thwn2AreaSqIn is the cross-sectional area of THWN-2 conductors in square
// inches, per NEC Chapter 9 Table 5.
var thwn2AreaSqIn = map[string]float64{
	"14 AWG":  0.0097,
	"12 AWG":  0.0133,
	"10 AWG":  0.0211,
	"8 AWG":   0.0366,
	"6 AWG":   0.0507,
	"4 AWG":   0.0824,
	"3 AWG":   0.0973,
	"2 AWG":   0.1158,
	"1 AWG":   0.1562,
	"1/0 AWG": 0.1855,
	"2/0 AWG": 0.2223,
	"3/0 AWG": 0.2679,
	"4/0 AWG": 0.3237,
}

// defaultWireAreaGauge is the fallback when a wire gauge is missing from the
// THWN-2 table. 14 AWG is the smallest tabulated conductor.
const defaultWireAreaGauge = "14 AWG"

// conduitEntry is one trade size with its usable 40%-fill area (NEC Chapter 9
// Table 4, over-2-wires column) in square inches.
type conduitEntry struct {
	size       string
	fillSqIn40 float64
}

// conduitFillTable maps conduit type to trade sizes ordered by ascending
// area. EMT is the default system.
var conduitFillTable = map[string][]conduitEntry{
	"EMT": {
		{`1/2"`, 0.122},
		{`3/4"`, 0.213},
		{`1"`, 0.346},
		{`1-1/4"`, 0.598},
		{`1-1/2"`, 0.814},
		{`2"`, 1.342},
		{`2-1/2"`, 2.343},
		{`3"`, 3.538},
		{`3-1/2"`, 4.618},
		{`4"`, 5.901},
	},
	"PVC-40": {
		{`1/2"`, 0.114},
		{`3/4"`, 0.203},
		{`1"`, 0.333},
		{`1-1/4"`, 0.581},
		{`1-1/2"`, 0.794},
		{`2"`, 1.316},
		{`2-1/2"`, 1.878},
		{`3"`, 2.907},
		{`3-1/2"`, 3.895},
		{`4"`, 5.022},
	},
}

// defaultConduitType is used when the requested conduit system is not
// tabulated.
const defaultConduitType = "EMT"

// copperResistanceOhmsPerKFt is the DC resistance of uncoated copper
// conductors in ohms per 1000 ft, per NEC Chapter 9 Table 8.
var copperResistanceOhmsPerKFt = map[string]float64{
	"14 AWG":  3.07,
	"12 AWG":  1.93,
	"10 AWG":  1.21,
	"8 AWG":   0.764,
	"6 AWG":   0.491,
	"4 AWG":   0.308,
	"3 AWG":   0.245,
	"2 AWG":   0.194,
	"1 AWG":   0.154,
	"1/0 AWG": 0.122,
	"2/0 AWG": 0.0967,
	"3/0 AWG": 0.0766,
	"4/0 AWG": 0.0608,
}
