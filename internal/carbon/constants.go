package carbon

// EPA Formula Constants (2024 Edition)
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
//
// Each constant is the kg CO2e equivalent of one unit of the activity; the
// equivalency is the carbon value divided by the factor.
const (
	// EPAKmDrivenFactor is kg CO2e per kilometre for an average passenger
	// vehicle (0.192 kg/mile converted to kilometres).
	EPAKmDrivenFactor = 0.1193

	// EPASmartphoneChargeFactor is kg CO2e per smartphone full charge.
	EPASmartphoneChargeFactor = 0.00822

	// EPATreeSeedlingFactor is kg CO2e absorbed per tree seedling grown
	// for 10 years.
	EPATreeSeedlingFactor = 60.0
)

// Unit conversion constants for normalizing carbon values to kilograms.
const (
	GramsToKg  = 0.001
	KgToKg     = 1.0
	TonsToKg   = 1000.0
	PoundsToKg = 0.453592
)

// Display threshold constants control when equivalencies are shown.
const (
	// MinEquivalencyThresholdKg is the minimum kg CO2e magnitude for
	// showing equivalencies. Below it the equivalencies are meaninglessly
	// small and the raw figure stands on its own.
	MinEquivalencyThresholdKg = 1.0

	// LargeNumberThreshold is where display switches to "~X.X million".
	LargeNumberThreshold = 1_000_000
)
