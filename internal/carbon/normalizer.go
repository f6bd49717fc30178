package carbon

import (
	"math"
	"strings"
)

// getUnitFactor returns the conversion factor to kilograms for the provided
// unit. Matching is case-insensitive; the "CO2e" suffix is optional.
func getUnitFactor(unit string) (float64, bool) {
	switch strings.ToLower(unit) {
	case "g", "gco2e":
		return GramsToKg, true
	case "kg", "kgco2e":
		return KgToKg, true
	case "t", "tco2e":
		return TonsToKg, true
	case "lb", "lbco2e":
		return PoundsToKg, true
	default:
		return 0, false
	}
}

// NormalizeToKg converts a carbon value in any recognized unit to
// kilograms. Negative values are allowed and preserved: the ledger uses
// negative amounts for offsets and reductions.
//
// Returns ErrInvalidUnit for an unrecognized unit, ErrCalculationOverflow
// for non-finite input or an overflowing result.
func NormalizeToKg(value float64, unit string) (float64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrCalculationOverflow
	}

	factor, ok := getUnitFactor(unit)
	if !ok {
		return 0, ErrInvalidUnit
	}

	result := value * factor
	if math.IsInf(result, 0) {
		return 0, ErrCalculationOverflow
	}
	return result, nil
}

// IsRecognizedUnit reports whether the unit string is valid for carbon
// values.
func IsRecognizedUnit(unit string) bool {
	_, ok := getUnitFactor(unit)
	return ok
}
