// Package carbon converts the ledger's net carbon figure into relatable
// real-world equivalencies such as "kilometres driven" or "smartphones
// charged", using EPA-published conversion factors.
package carbon

import "fmt"

// EquivalencyType represents a category of carbon emission equivalency.
type EquivalencyType int

const (
	// EquivalencyKmDriven converts CO2e to kilometres driven in an average
	// passenger vehicle.
	EquivalencyKmDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged converts CO2e to smartphone full charges.
	EquivalencySmartphonesCharged

	// EquivalencyTreeSeedlings converts CO2e to tree seedlings grown for 10 years.
	EquivalencyTreeSeedlings
)

// String returns a human-readable representation of the EquivalencyType.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyKmDriven:
		return "KmDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// Input represents a carbon quantity for equivalency calculation.
type Input struct {
	// Value is the numeric carbon amount.
	Value float64 `json:"value"`

	// Unit is the measurement unit (g, kg, t, lb and their CO2e variants).
	Unit string `json:"unit"`
}

// EquivalencyResult represents a single calculated equivalency.
type EquivalencyResult struct {
	// Type identifies the equivalency category.
	Type EquivalencyType `json:"type"`

	// Value is the raw calculated equivalency value.
	Value float64 `json:"value"`

	// FormattedValue is the display-ready string with separators.
	FormattedValue string `json:"formatted_value"`

	// Label is the descriptive phrase (e.g., "kilometres driven").
	Label string `json:"label"`
}

// EquivalencyOutput contains all equivalency results for display.
type EquivalencyOutput struct {
	// InputKg is the normalized input value in kilograms CO2e. Negative
	// input (a net reduction) is normalized to its magnitude, with
	// Reduction set.
	InputKg float64 `json:"input_kg"`

	// Reduction is true when the input was a net carbon saving rather than
	// a net emission; DisplayText is phrased accordingly.
	Reduction bool `json:"reduction"`

	// Results contains calculated equivalencies in priority order.
	Results []EquivalencyResult `json:"results"`

	// DisplayText is the full prose format for CLI output.
	DisplayText string `json:"display_text"`
}

// IsEmpty reports whether the output carries no equivalencies.
func (o EquivalencyOutput) IsEmpty() bool {
	return len(o.Results) == 0
}
