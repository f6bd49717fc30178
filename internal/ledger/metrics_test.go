package ledger

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glenveagh/gardenledger/internal/catalog"
)

func carbonEntries(amounts ...float64) UserProgress {
	p := DefaultProgress()
	for _, a := range amounts {
		p.ResourceUsage[KindCarbon] = append(p.ResourceUsage[KindCarbon], ResourceEntry{
			Date:   time.Now(),
			Amount: a,
		})
	}
	return p
}

func TestNetCarbonImpact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		amounts        []float64
		wantEmissions  float64
		wantReductions float64
		wantNet        float64
	}{
		{name: "empty series", amounts: nil, wantEmissions: 0, wantReductions: 0, wantNet: 0},
		{
			name:          "emissions and a reduction",
			amounts:       []float64{10, -4},
			wantEmissions: 10, wantReductions: 4, wantNet: 6,
		},
		{
			name:          "zero counts as an emission of zero",
			amounts:       []float64{0, 5},
			wantEmissions: 5, wantReductions: 0, wantNet: 5,
		},
		{
			name:          "net negative garden",
			amounts:       []float64{2, -8, -1},
			wantEmissions: 2, wantReductions: 9, wantNet: -7,
		},
		{
			name:          "non-finite amounts fold as zero",
			amounts:       []float64{math.NaN(), 3, math.Inf(1)},
			wantEmissions: 3, wantReductions: 0, wantNet: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			impact := NetCarbonImpact(carbonEntries(tt.amounts...))

			assert.InDelta(t, tt.wantEmissions, impact.Emissions, 0.0001)
			assert.InDelta(t, tt.wantReductions, impact.Reductions, 0.0001)
			assert.InDelta(t, tt.wantNet, impact.NetImpact, 0.0001)

			// Structural invariants regardless of input.
			assert.GreaterOrEqual(t, impact.Emissions, 0.0)
			assert.GreaterOrEqual(t, impact.Reductions, 0.0)
			assert.InDelta(t, impact.Emissions-impact.Reductions, impact.NetImpact, 0.0001)
		})
	}
}

func TestSDGImpactPercentage(t *testing.T) {
	t.Parallel()

	t.Run("empty ledger is zero", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0, SDGImpactPercentage(DefaultProgress()))
	})

	t.Run("all keys at 100 is 100", func(t *testing.T) {
		t.Parallel()
		p := DefaultProgress()
		for _, key := range SDGKeys() {
			p.SDGScores[key] = 100
		}
		assert.Equal(t, 100, SDGImpactPercentage(p))
	})

	t.Run("clamped regardless of stored magnitudes", func(t *testing.T) {
		t.Parallel()
		p := DefaultProgress()
		for _, key := range SDGKeys() {
			p.SDGScores[key] = 100000
		}
		assert.Equal(t, 100, SDGImpactPercentage(p))

		for _, key := range SDGKeys() {
			p.SDGScores[key] = -50
		}
		assert.Equal(t, 0, SDGImpactPercentage(p))
	})

	t.Run("partial progress rounds", func(t *testing.T) {
		t.Parallel()
		p := DefaultProgress()
		p.SDGScores[SDG6] = 15
		// 15 / (100 * 12) = 1.25% -> rounds to 1.
		assert.Equal(t, 1, SDGImpactPercentage(p))
	})
}

func TestCategoryCompletions(t *testing.T) {
	t.Parallel()

	t.Run("empty ledger is zero across the board", func(t *testing.T) {
		t.Parallel()
		completions := CategoryCompletions(DefaultProgress())
		require.Len(t, completions, len(catalog.Categories()))
		for _, c := range completions {
			assert.Zero(t, c.Active)
			assert.Zero(t, c.Percent)
			assert.Positive(t, c.Total)
		}
	})

	t.Run("one of four practices is 25 percent", func(t *testing.T) {
		t.Parallel()
		p := DefaultProgress()
		p.ActivePractices = []ActivePractice{{PracticeID: "water-1"}}

		completions := CategoryCompletions(p)
		require.NotEmpty(t, completions)
		water := completions[0]
		assert.Equal(t, "Water Conservation", water.Category)
		assert.Equal(t, 1, water.Active)
		assert.Equal(t, 4, water.Total)
		assert.Equal(t, 25, water.Percent)
	})

	t.Run("stale practice ids are ignored", func(t *testing.T) {
		t.Parallel()
		p := DefaultProgress()
		p.ActivePractices = []ActivePractice{{PracticeID: "retired-practice"}}

		for _, c := range CategoryCompletions(p) {
			assert.Zero(t, c.Active)
		}
	})
}

func usageSeries(kind ResourceKind, amounts ...float64) UserProgress {
	p := DefaultProgress()
	for _, a := range amounts {
		p.ResourceUsage[kind] = append(p.ResourceUsage[kind], ResourceEntry{Date: time.Now(), Amount: a})
	}
	return p
}

func TestResourceTrend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		kind    ResourceKind
		amounts []float64
		want    Trend
	}{
		{name: "no entries", kind: KindWater, amounts: nil, want: TrendStable},
		{name: "single entry", kind: KindWater, amounts: []float64{5}, want: TrendStable},
		{name: "two entries lack a preceding window", kind: KindWater, amounts: []float64{9, 5}, want: TrendStable},
		{
			name: "water usage falling is improving",
			kind: KindWater, amounts: []float64{10, 12, 11, 5, 4, 6}, want: TrendImproving,
		},
		{
			name: "water usage rising is declining",
			kind: KindWater, amounts: []float64{4, 5, 4, 10, 12, 11}, want: TrendDeclining,
		},
		{
			name: "harvest rising is improving",
			kind: KindHarvest, amounts: []float64{1, 2, 1, 4, 5, 6}, want: TrendImproving,
		},
		{
			name: "harvest falling is declining",
			kind: KindHarvest, amounts: []float64{4, 5, 6, 1, 2, 1}, want: TrendDeclining,
		},
		{
			name: "flat series is stable",
			kind: KindEnergy, amounts: []float64{3, 3, 3, 3, 3, 3}, want: TrendStable,
		},
		{
			name: "short preceding window still compares",
			kind: KindWater, amounts: []float64{10, 4, 4, 4}, want: TrendImproving,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ResourceTrend(usageSeries(tt.kind, tt.amounts...), tt.kind)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScoreLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score int
		want  string
	}{
		{score: 0, want: "beginner"},
		{score: 24, want: "beginner"},
		{score: 25, want: "growing"},
		{score: 49, want: "growing"},
		{score: 50, want: "established"},
		{score: 74, want: "established"},
		{score: 75, want: "thriving"},
		{score: 100, want: "thriving"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ScoreLevel(tt.score), "score %d", tt.score)
	}
}
