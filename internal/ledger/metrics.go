package ledger

import (
	"math"

	"github.com/glenveagh/gardenledger/internal/catalog"
)

// CarbonImpact summarizes the carbon series. Emissions and Reductions are
// both non-negative; NetImpact is their difference (positive means a net
// emitter).
type CarbonImpact struct {
	Emissions  float64 `json:"emissions"`
	Reductions float64 `json:"reductions"`
	NetImpact  float64 `json:"net_impact"`
}

// NetCarbonImpact partitions the carbon entries by sign: non-negative
// amounts are emissions, negative amounts count toward reductions by their
// absolute value.
func NetCarbonImpact(progress UserProgress) CarbonImpact {
	var impact CarbonImpact
	for _, entry := range progress.ResourceUsage[KindCarbon] {
		amount := sanitizeAmount(entry.Amount)
		if amount >= 0 {
			impact.Emissions += amount
		} else {
			impact.Reductions += -amount
		}
	}
	impact.NetImpact = impact.Emissions - impact.Reductions
	return impact
}

// SDGImpactPercentage reports overall SDG progress as a percentage of the
// maximum possible total (100 points across each tracked key), rounded and
// clamped to [0,100].
func SDGImpactPercentage(progress UserProgress) int {
	keys := SDGKeys()
	if len(keys) == 0 {
		return 0
	}
	var sum float64
	for _, key := range keys {
		sum += clampSDG(progress.SDGScores[key])
	}
	pct := int(math.Round(100 * sum / (100 * float64(len(keys)))))
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}

// CategoryCompletion reports adoption within one catalog category.
type CategoryCompletion struct {
	Category string `json:"category"`
	Active   int    `json:"active"`
	Total    int    `json:"total"`
	Percent  int    `json:"percent"`
}

// CategoryCompletions computes per-category adoption percentages, in
// catalog display order. Active practice IDs that are no longer in the
// catalog are ignored.
func CategoryCompletions(progress UserProgress) []CategoryCompletion {
	active := make(map[string]bool, len(progress.ActivePractices))
	for _, ap := range progress.ActivePractices {
		active[ap.PracticeID] = true
	}

	cats := catalog.Categories()
	completions := make([]CategoryCompletion, 0, len(cats))
	for _, cat := range cats {
		c := CategoryCompletion{Category: cat.Name, Total: len(cat.Practices)}
		for _, p := range cat.Practices {
			if active[p.ID] {
				c.Active++
			}
		}
		if c.Total > 0 {
			c.Percent = int(math.Round(100 * float64(c.Active) / float64(c.Total)))
		}
		completions = append(completions, c)
	}
	return completions
}

// Trend classifies the direction of a resource series.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// trendWindow is the number of entries in each comparison window.
const trendWindow = 3

// ResourceTrend compares the mean of the most recent entries against the
// mean of the window before them. For consumption kinds (water, carbon,
// energy) a decrease is improving; for the rest an increase is. Series
// with fewer than two entries, or without a full preceding window to
// compare against, are stable.
func ResourceTrend(progress UserProgress, kind ResourceKind) Trend {
	entries := progress.ResourceUsage[kind]
	n := len(entries)
	if n < 2 {
		return TrendStable
	}

	recentStart := n - trendWindow
	if recentStart < 0 {
		recentStart = 0
	}
	previousStart := n - 2*trendWindow
	if previousStart < 0 {
		previousStart = 0
	}
	previous := entries[previousStart:recentStart]
	if len(previous) == 0 {
		return TrendStable
	}
	recent := entries[recentStart:]

	diff := meanAmount(recent) - meanAmount(previous)
	const epsilon = 1e-9
	if math.Abs(diff) < epsilon {
		return TrendStable
	}

	decreasing := diff < 0
	if consumptionKinds[kind] == decreasing {
		return TrendImproving
	}
	return TrendDeclining
}

func meanAmount(entries []ResourceEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	var sum float64
	for _, e := range entries {
		sum += sanitizeAmount(e.Amount)
	}
	return sum / float64(len(entries))
}

// ScoreLevel names the band an overall score falls in, for display.
func ScoreLevel(score int) string {
	switch {
	case score >= 75:
		return "thriving"
	case score >= 50:
		return "established"
	case score >= 25:
		return "growing"
	default:
		return "beginner"
	}
}
