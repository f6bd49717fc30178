package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		input          Input
		wantKm         float64
		wantPhones     float64
		wantReduction  bool
		wantIsEmpty    bool
		wantErr        error
		displayContain string
	}{
		{
			name:           "150kg reference value",
			input:          Input{Value: 150.0, Unit: "kg"},
			wantKm:         1257.33, // 150 / 0.1193
			wantPhones:     18248.18,
			displayContain: "driving",
		},
		{
			name:       "grams normalized correctly",
			input:      Input{Value: 150000.0, Unit: "g"},
			wantKm:     1257.33,
			wantPhones: 18248.18,
		},
		{
			name:       "metric tons normalized correctly",
			input:      Input{Value: 0.15, Unit: "t"},
			wantKm:     1257.33,
			wantPhones: 18248.18,
		},
		{
			name:       "unit matching is case-insensitive",
			input:      Input{Value: 150.0, Unit: "kgCO2e"},
			wantKm:     1257.33,
			wantPhones: 18248.18,
		},
		{
			name:           "negative value is a saving",
			input:          Input{Value: -150.0, Unit: "kg"},
			wantKm:         1257.33,
			wantPhones:     18248.18,
			wantReduction:  true,
			displayContain: "Saved the equivalent",
		},
		{
			name:        "below threshold returns empty",
			input:       Input{Value: 0.5, Unit: "kg"},
			wantIsEmpty: true,
		},
		{
			name:        "zero value returns empty",
			input:       Input{Value: 0.0, Unit: "kg"},
			wantIsEmpty: true,
		},
		{
			name:    "unknown unit returns error",
			input:   Input{Value: 10, Unit: "stone"},
			wantErr: ErrInvalidUnit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			output, err := Calculate(tt.input)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			if tt.wantIsEmpty {
				assert.True(t, output.IsEmpty())
				return
			}

			require.Len(t, output.Results, 3)
			assert.InDelta(t, tt.wantKm, output.Results[0].Value, 0.5)
			assert.InDelta(t, tt.wantPhones, output.Results[1].Value, 0.5)
			assert.Equal(t, tt.wantReduction, output.Reduction)
			if tt.displayContain != "" {
				assert.Contains(t, output.DisplayText, tt.displayContain)
			}
		})
	}
}

func TestNormalizeToKg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   float64
		unit    string
		want    float64
		wantErr error
	}{
		{name: "kilograms", value: 5, unit: "kg", want: 5},
		{name: "grams", value: 2500, unit: "g", want: 2.5},
		{name: "tons", value: 0.002, unit: "t", want: 2},
		{name: "pounds", value: 10, unit: "lb", want: 4.53592},
		{name: "negative preserved", value: -4, unit: "kg", want: -4},
		{name: "unknown unit", value: 1, unit: "firkin", wantErr: ErrInvalidUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NormalizeToKg(tt.value, tt.unit)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestIsRecognizedUnit(t *testing.T) {
	t.Parallel()

	for _, unit := range []string{"g", "kg", "t", "lb", "gCO2e", "KGCO2E"} {
		assert.True(t, IsRecognizedUnit(unit), "unit %q", unit)
	}
	assert.False(t, IsRecognizedUnit("bushel"))
}

func TestFormatters(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "18,248", FormatNumber(18248))
	assert.Equal(t, "1,234.57", FormatFloat(1234.567, 2))
	assert.Equal(t, "42", FormatFloat(42.3, 0))
	assert.Equal(t, "~1.5 million", FormatLarge(1_500_000))
	assert.Equal(t, "12,500", FormatLarge(12500))
	assert.Equal(t, "6.0 kg CO2e", FormatKg(6))
}
