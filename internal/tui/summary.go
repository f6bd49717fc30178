package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/glenveagh/gardenledger/internal/carbon"
	"github.com/glenveagh/gardenledger/internal/ledger"
)

// RenderScoreSummary renders a boxed sustainability summary: overall score
// and level, SDG impact percentage, practice adoption, and the net carbon
// position with an equivalency line when one is meaningful. Used by both
// the score command and the dashboard header.
func RenderScoreSummary(progress ledger.UserProgress, width int) string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("SUSTAINABILITY SUMMARY"))
	content.WriteString("\n")

	content.WriteString(LabelStyle.Render("Score:        "))
	content.WriteString(ValueStyle.Render(fmt.Sprintf("%d/100", progress.Score)))
	content.WriteString(LabelStyle.Render("  ("))
	content.WriteString(ValueStyle.Render(ledger.ScoreLevel(progress.Score)))
	content.WriteString(LabelStyle.Render(")"))
	content.WriteString("\n")

	content.WriteString(LabelStyle.Render("SDG impact:   "))
	content.WriteString(ValueStyle.Render(strconv.Itoa(ledger.SDGImpactPercentage(progress)) + "%"))
	content.WriteString(LabelStyle.Render("    Practices: "))
	content.WriteString(ValueStyle.Render(strconv.Itoa(len(progress.ActivePractices))))
	content.WriteString("\n")

	impact := ledger.NetCarbonImpact(progress)
	content.WriteString(LabelStyle.Render("Net carbon:   "))
	content.WriteString(renderNetCarbon(impact))

	if line := equivalencyLine(impact); line != "" {
		content.WriteString("\n")
		content.WriteString(InfoStyle.Render(line))
	}

	return BoxStyle.Width(max(width-2, 20)).Render(content.String())
}

func renderNetCarbon(impact ledger.CarbonImpact) string {
	figure := carbon.FormatKg(impact.NetImpact)
	if impact.NetImpact <= 0 {
		return GoodStyle.Render(figure)
	}
	return WarningStyle.Render(figure)
}

// equivalencyLine renders the carbon equivalency prose, or "" when the net
// figure is too small to be worth an equivalency.
func equivalencyLine(impact ledger.CarbonImpact) string {
	output, err := carbon.Calculate(carbon.Input{Value: impact.NetImpact, Unit: "kg"})
	if err != nil || output.IsEmpty() {
		return ""
	}
	return output.DisplayText
}

// RenderCategoryCompletions renders per-category adoption as aligned rows.
func RenderCategoryCompletions(completions []ledger.CategoryCompletion) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("PRACTICE ADOPTION"))
	b.WriteString("\n")
	for _, c := range completions {
		b.WriteString(LabelStyle.Render(fmt.Sprintf("%-22s", c.Category)))
		b.WriteString(ValueStyle.Render(fmt.Sprintf("%3d%%", c.Percent)))
		b.WriteString(LabelStyle.Render(fmt.Sprintf("  (%d of %d)", c.Active, c.Total)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
