package energy

// Heat capacity per unit volume and degree for each storage medium, in
// BTU per gallon·°F for water and phase-change media and BTU per ft³·°F
// for concrete mass.
const (
	waterHeatCapacityBTUPerGalF = 8.33
	concreteSpecificHeatBTU     = 0.2
	concreteDensityLbPerCuFt    = 150.0
	phaseChangeCapacityBTU      = 100.0
)

// storageSwingF is the assumed usable temperature swing of a storage mass.
const storageSwingF = 20.0

// CalculateThermalStorage sizes a thermal mass: capacity = volume × medium
// heat capacity × the assumed 20°F swing × round-trip efficiency. volume is
// gallons for water and phase-change media, cubic feet for concrete.
// heatLossBTUPerHr, when > 0, yields the hours of heating the store can
// offset.
func CalculateThermalStorage(
	medium StorageMedium,
	volume float64,
	efficiency float64,
	heatLossBTUPerHr float64,
) ThermalStorage {
	var perUnit float64
	switch medium {
	case StorageConcrete:
		perUnit = concreteSpecificHeatBTU * concreteDensityLbPerCuFt
	case StoragePhaseChange:
		perUnit = phaseChangeCapacityBTU
	default:
		medium = StorageWater
		perUnit = waterHeatCapacityBTUPerGalF
	}

	if efficiency <= 0 || efficiency > 1 {
		efficiency = 1.0
	}

	capacity := volume * perUnit * storageSwingF
	usable := capacity * efficiency

	offset := 0.0
	if heatLossBTUPerHr > 0 {
		offset = usable / heatLossBTUPerHr
	}

	return ThermalStorage{
		Medium:      medium,
		CapacityBTU: capacity,
		UsableBTU:   usable,
		OffsetHours: offset,
	}
}
