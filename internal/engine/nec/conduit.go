package nec

// maxFillPercentage is the NEC Chapter 9 fill limit for more than two
// conductors in a conduit.
const maxFillPercentage = 40.0

// CalculateConduitFill sizes the smallest conduit of the given type whose
// 40%-fill area accommodates wireCount THWN-2 conductors of the given gauge,
// and reports the resulting fill percentage.
//
// Unknown wire gauges fall back to the 14 AWG area; unknown conduit types
// fall back to EMT. If even the largest tabulated conduit cannot hold the
// bundle, the largest size is reported with IsCompliant false.
func CalculateConduitFill(wireGauge string, wireCount int, conduitType string) ConduitFill {
	area, ok := thwn2AreaSqIn[wireGauge]
	if !ok {
		area = thwn2AreaSqIn[defaultWireAreaGauge]
	}
	if wireCount < 1 {
		wireCount = 1
	}
	totalArea := area * float64(wireCount)

	ctype := conduitType
	entries, ok := conduitFillTable[ctype]
	if !ok {
		ctype = defaultConduitType
		entries = conduitFillTable[ctype]
	}

	for _, entry := range entries {
		if totalArea <= entry.fillSqIn40 {
			// fillSqIn40 is the usable 40% of the internal area, so the
			// percentage of the full cross-section is scaled accordingly.
			fill := totalArea / entry.fillSqIn40 * maxFillPercentage
			return ConduitFill{
				ConduitSize:    entry.size,
				ConduitType:    ctype,
				WireAreaSqIn:   totalArea,
				FillPercentage: fill,
				IsCompliant:    fill <= maxFillPercentage,
			}
		}
	}

	// Bundle exceeds the largest tabulated conduit.
	largest := entries[len(entries)-1]
	fill := totalArea / largest.fillSqIn40 * maxFillPercentage
	return ConduitFill{
		ConduitSize:    largest.size,
		ConduitType:    ctype,
		WireAreaSqIn:   totalArea,
		FillPercentage: fill,
		IsCompliant:    false,
	}
}
