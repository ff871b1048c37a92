// ABOUTME: Console reporter for ROI projections
// ABOUTME: Formats inputs and derived metrics into the fixed three-section report

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/markalston/agent-roi-calculator/internal/models"
	"github.com/markalston/agent-roi-calculator/internal/numeric"
)

// Section headers, in output order
const (
	SummaryHeader      = "=== ROI Summary ==="
	InputsHeader       = "=== Input Parameters ==="
	IntermediateHeader = "=== Key Intermediate Results ==="
)

// Lines builds the report text, one entry per output line. Blank entries
// separate the sections.
func Lines(in models.InputParameters, m models.DerivedMetrics) []string {
	plain := numeric.String
	grouped := numeric.Grouped
	round := numeric.Round

	return []string{
		SummaryHeader,
		fmt.Sprintf("ROI: %s%%", plain(round(m.ROI))),
		fmt.Sprintf("Net Benefit: $%s", grouped(round(m.NetBenefit))),
		fmt.Sprintf("Total Benefit: $%s", grouped(m.TotalBenefit)),
		fmt.Sprintf("Total Cost: $%s", grouped(round(m.TotalCost))),
		fmt.Sprintf("Payback Period: %s weeks", plain(m.PaybackPeriodWeeks)),
		fmt.Sprintf("Weekly Benefit: $%s", grouped(m.WeeklyBenefit)),
		"",

		InputsHeader,
		fmt.Sprintf("Team Size: %s engineers", plain(in.NumEngineers)),
		fmt.Sprintf("Engineer Cost: $%s/hour", plain(in.EngineerHourlyCost)),
		fmt.Sprintf("Hours Per Week: %s", plain(in.HoursPerWeek)),
		fmt.Sprintf("Calculation Period: %s weeks", plain(in.CalculationPeriodWeeks)),
		fmt.Sprintf("Assistable Tasks Time: %s%%", plain(in.AssistableTasksTimePercentage*100)),
		fmt.Sprintf("Time Saved on Assistable Tasks: %s%%", plain(in.TimeSavedPercentage*100)),
		fmt.Sprintf("Tool Cost: $%s/engineer/month", plain(in.AgentToolCostPerEngineerPerMonth)),
		fmt.Sprintf("Setup/Onboarding Time per Engineer: %s weeks", plain(in.WeeksToSetupAndTrain)),
		fmt.Sprintf("Maintenance Engineers: %s", plain(in.MaintenanceEngineers)),
		fmt.Sprintf("Maintenance Engineer Cost: $%s/hour", plain(in.MaintenanceEngineerHourlyCost)),
		"",

		IntermediateHeader,
		fmt.Sprintf("Effective Assistable Hours: %s hours/week/engineer", plain(round(m.EffectiveAssistableHours))),
		fmt.Sprintf("Hours Saved Per Week: %s hours/week/engineer", plain(round(m.HoursPerWeekSaved))),
		fmt.Sprintf("Total Hours Saved: %s hours", grouped(round(m.TotalHoursSaved))),
		fmt.Sprintf("Setup/Training Cost Per Engineer: $%s", grouped(round(m.SetupAndTrainingCostPerEngineer))),
		fmt.Sprintf("Total Months: %s", plain(round(m.TotalMonths))),
		fmt.Sprintf("Recurring Costs: $%s", grouped(round(m.RecurringCosts))),
		fmt.Sprintf("One-time Costs: $%s", grouped(round(m.OneTimeCosts))),
		fmt.Sprintf("Maintenance Engineer Costs: $%s", grouped(round(m.MaintenanceEngineerCosts))),
	}
}

// Write renders the report to w, styling section headers when w is a terminal
func Write(w io.Writer, in models.InputParameters, m models.DerivedMetrics) error {
	st := newStyles(w)

	var b strings.Builder
	for _, line := range Lines(in, m) {
		b.WriteString(st.render(line))
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func isHeader(line string) bool {
	return line == SummaryHeader || line == InputsHeader || line == IntermediateHeader
}
