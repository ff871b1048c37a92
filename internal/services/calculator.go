// ABOUTME: ROI calculator for AI coding assistant adoption
// ABOUTME: Derives time savings, costs, ROI and payback from business inputs

package services

import (
	"github.com/markalston/agent-roi-calculator/internal/models"
	"github.com/markalston/agent-roi-calculator/internal/numeric"
)

// ROICalculator computes ROI projection metrics
type ROICalculator struct{}

// NewROICalculator creates a new ROI calculator
func NewROICalculator() *ROICalculator {
	return &ROICalculator{}
}

// Calculate derives all metrics for the given inputs. Degenerate inputs
// (zero horizon, zero cost) yield NaN or ±Inf fields rather than an error.
func (c *ROICalculator) Calculate(in models.InputParameters) models.DerivedMetrics {
	// Per-engineer weekly figures
	effectiveAssistableHours := in.HoursPerWeek * in.AssistableTasksTimePercentage
	hoursPerWeekSaved := effectiveAssistableHours * in.TimeSavedPercentage
	setupAndTrainingCostPerEngineer := in.WeeksToSetupAndTrain * in.HoursPerWeek * in.EngineerHourlyCost
	totalMonths := in.CalculationPeriodWeeks / models.WeeksPerMonth

	// Benefit over the horizon
	totalHoursSaved := in.NumEngineers * hoursPerWeekSaved * in.CalculationPeriodWeeks
	totalBenefit := float64(totalHoursSaved * in.EngineerHourlyCost)

	// Costs over the horizon. The float64 conversions keep each product
	// rounded before the sums so results do not depend on FMA fusion.
	recurringCosts := float64(in.NumEngineers * in.AgentToolCostPerEngineerPerMonth * totalMonths)
	oneTimeCosts := float64(in.NumEngineers * setupAndTrainingCostPerEngineer)
	maintenanceEngineerCosts := float64(in.MaintenanceEngineers * in.MaintenanceEngineerHourlyCost * in.HoursPerWeek * in.CalculationPeriodWeeks)
	totalCost := recurringCosts + oneTimeCosts + maintenanceEngineerCosts

	netBenefit := totalBenefit - totalCost
	roi := (netBenefit / totalCost) * 100

	weekly := totalBenefit / in.CalculationPeriodWeeks

	return models.DerivedMetrics{
		EffectiveAssistableHours:        effectiveAssistableHours,
		HoursPerWeekSaved:               hoursPerWeekSaved,
		SetupAndTrainingCostPerEngineer: setupAndTrainingCostPerEngineer,
		TotalMonths:                     totalMonths,
		TotalHoursSaved:                 totalHoursSaved,
		TotalBenefit:                    totalBenefit,
		RecurringCosts:                  recurringCosts,
		OneTimeCosts:                    oneTimeCosts,
		MaintenanceEngineerCosts:        maintenanceEngineerCosts,
		TotalCost:                       totalCost,
		NetBenefit:                      netBenefit,
		ROI:                             roi,
		PaybackPeriodWeeks:              numeric.Round(totalCost / weekly),
		WeeklyBenefit:                   numeric.Round(weekly),
	}
}
