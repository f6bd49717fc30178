package carbon

import (
	"fmt"
	"math"
)

// Calculate converts a carbon quantity into real-world equivalencies.
//
// The sign of the input decides the phrasing: a positive value reads as an
// emission ("equivalent to driving..."), a negative one as a saving
// ("saved the equivalent of driving..."). Magnitudes below
// MinEquivalencyThresholdKg yield an empty output, because "0.3 km driven"
// helps nobody.
func Calculate(input Input) (EquivalencyOutput, error) {
	kg, err := NormalizeToKg(input.Value, input.Unit)
	if err != nil {
		return EquivalencyOutput{}, err
	}

	reduction := kg < 0
	magnitude := math.Abs(kg)
	if magnitude < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: magnitude, Reduction: reduction}, nil
	}

	km := magnitude / EPAKmDrivenFactor
	phones := magnitude / EPASmartphoneChargeFactor
	trees := magnitude / EPATreeSeedlingFactor

	results := []EquivalencyResult{
		{
			Type:           EquivalencyKmDriven,
			Value:          km,
			FormattedValue: formatEquivalencyValue(km),
			Label:          "kilometres driven",
		},
		{
			Type:           EquivalencySmartphonesCharged,
			Value:          phones,
			FormattedValue: formatEquivalencyValue(phones),
			Label:          "smartphones charged",
		},
		{
			Type:           EquivalencyTreeSeedlings,
			Value:          trees,
			FormattedValue: FormatFloat(trees, 1),
			Label:          "tree seedlings grown for 10 years",
		},
	}

	verb := "Equivalent to"
	if reduction {
		verb = "Saved the equivalent of"
	}
	displayText := fmt.Sprintf("%s driving ~%s km or charging ~%s smartphones",
		verb, results[0].FormattedValue, results[1].FormattedValue)

	return EquivalencyOutput{
		InputKg:     magnitude,
		Reduction:   reduction,
		Results:     results,
		DisplayText: displayText,
	}, nil
}

// formatEquivalencyValue formats an equivalency value for display: compact
// notation at million scale, comma-separated integers below it.
func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
