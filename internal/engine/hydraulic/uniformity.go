package hydraulic

import (
	"math"
	"sort"
)

// DistributionUniformity computes DU: the mean of the lowest quarter of
// emitter flows divided by the overall mean, as a percentage. An empty or
// zero-mean input yields 0.
func DistributionUniformity(flowRates []float64) float64 {
	if len(flowRates) == 0 {
		return 0
	}

	sorted := make([]float64, len(flowRates))
	copy(sorted, flowRates)
	sort.Float64s(sorted)

	quarter := len(sorted) / 4
	if quarter == 0 {
		quarter = 1
	}

	lowSum := 0.0
	for _, f := range sorted[:quarter] {
		lowSum += f
	}
	lowMean := lowSum / float64(quarter)

	total := 0.0
	for _, f := range sorted {
		total += f
	}
	mean := total / float64(len(sorted))
	if mean == 0 {
		return 0
	}

	return lowMean / mean * 100.0
}

// EmissionUniformity computes EU = 100 − CV, with the coefficient of
// variation in percent. An empty or zero-mean input yields 0.
func EmissionUniformity(flowRates []float64) float64 {
	if len(flowRates) == 0 {
		return 0
	}

	total := 0.0
	for _, f := range flowRates {
		total += f
	}
	mean := total / float64(len(flowRates))
	if mean == 0 {
		return 0
	}

	sumSq := 0.0
	for _, f := range flowRates {
		d := f - mean
		sumSq += d * d
	}
	stddev := math.Sqrt(sumSq / float64(len(flowRates)))

	return 100.0 - stddev/mean*100.0
}

// ApplicationEfficiency computes the share of applied water that is
// beneficial: crop need plus the deliberate leaching fraction of the applied
// volume, as a percentage of the applied volume.
func ApplicationEfficiency(cropNeedIn, appliedIn, leachingFraction float64) float64 {
	if appliedIn <= 0 {
		return 0
	}
	beneficial := cropNeedIn + appliedIn*leachingFraction
	return beneficial / appliedIn * 100.0
}
