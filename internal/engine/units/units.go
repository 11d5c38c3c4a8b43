// Package units holds the unit-conversion constants shared by the
// calculation engines. Everything here is a plain constant: the engines are
// pure functions and these are the only values they share.
package units

const (
	// FtHeadToPSI converts feet of water column to pounds per square inch.
	FtHeadToPSI = 0.433

	// PSIToFtHead converts pounds per square inch to feet of water column.
	PSIToFtHead = 1.0 / FtHeadToPSI

	// GPMToCFS converts US gallons per minute to cubic feet per second.
	GPMToCFS = 1.0 / 448.831

	// GPHToGPM converts gallons per hour to gallons per minute.
	GPHToGPM = 1.0 / 60.0

	// InchesToFeet converts inches to feet.
	InchesToFeet = 1.0 / 12.0

	// SqFtToSqM converts square feet to square metres.
	SqFtToSqM = 0.0929

	// WattsPerSqMToBTUPerHrSqFt converts W/m² irradiance to BTU/hr·ft².
	WattsPerSqMToBTUPerHrSqFt = 0.317

	// BTUPerKWh is the BTU content of one kilowatt-hour.
	BTUPerKWh = 3412.0

	// BTUPerTherm is the BTU content of one therm of fuel.
	BTUPerTherm = 100000.0

	// Gravity is the gravitational acceleration in ft/s².
	Gravity = 32.2

	// WaterKinematicViscosity is the kinematic viscosity of water at 68°F
	// in ft²/s, the default used for Reynolds-number calculations.
	WaterKinematicViscosity = 1.13e-5

	// WaterBulkModulusPSI is the bulk modulus of elasticity of water.
	WaterBulkModulusPSI = 300000.0

	// WaterAcousticVelocityFtS is √(K/ρ) for water: the pressure-wave speed
	// in a rigid conduit, before pipe-elasticity reduction.
	WaterAcousticVelocityFtS = 4720.0

	// HoursPerYear is the number of hours in a non-leap year.
	HoursPerYear = 8760.0

	// DaysPerYear is the number of days in a non-leap year.
	DaysPerYear = 365.0
)
