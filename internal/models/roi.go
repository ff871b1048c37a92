// ABOUTME: Data models for the AI coding assistant ROI projection
// ABOUTME: Holds the business inputs and the metrics derived from them

package models

import "math"

// WeeksPerMonth converts a horizon in weeks into subscription months
const WeeksPerMonth = 4.33

// InputParameters represents the business assumptions for one projection
type InputParameters struct {
	NumEngineers                     float64 `json:"num_engineers"`                          // Size of the engineering org
	EngineerHourlyCost               float64 `json:"engineer_hourly_cost"`                   // Fully loaded cost per hour
	HoursPerWeek                     float64 `json:"hours_per_week"`                         // Nominal working hours
	CalculationPeriodWeeks           float64 `json:"calculation_period_weeks"`               // Projection horizon
	AssistableTasksTimePercentage    float64 `json:"assistable_tasks_time_percentage"`       // Ratio of work time the tool can assist
	TimeSavedPercentage              float64 `json:"time_saved_percentage"`                  // Ratio of assistable time actually saved
	AgentToolCostPerEngineerPerMonth float64 `json:"agent_tool_cost_per_engineer_per_month"` // Subscription cost
	WeeksToSetupAndTrain             float64 `json:"weeks_to_setup_and_train"`               // One-time onboarding per engineer
	MaintenanceEngineers             float64 `json:"maintenance_engineers"`                  // Engineers maintaining the tooling
	MaintenanceEngineerHourlyCost    float64 `json:"maintenance_engineer_hourly_cost"`       // Their cost per hour
}

// DerivedMetrics represents the output of an ROI calculation.
// Assistable and saved hours are per engineer per week; ROI is a percentage. Only PaybackPeriodWeeks
// and WeeklyBenefit are rounded; everything else keeps full precision.
type DerivedMetrics struct {
	EffectiveAssistableHours        float64 `json:"effective_assistable_hours"`
	HoursPerWeekSaved               float64 `json:"hours_per_week_saved"`
	SetupAndTrainingCostPerEngineer float64 `json:"setup_and_training_cost_per_engineer"`
	TotalMonths                     float64 `json:"total_months"`
	TotalHoursSaved                 float64 `json:"total_hours_saved"`
	TotalBenefit                    float64 `json:"total_benefit"`
	RecurringCosts                  float64 `json:"recurring_costs"`
	OneTimeCosts                    float64 `json:"one_time_costs"`
	MaintenanceEngineerCosts        float64 `json:"maintenance_engineer_costs"`
	TotalCost                       float64 `json:"total_cost"`
	NetBenefit                      float64 `json:"net_benefit"`
	ROI                             float64 `json:"roi"`
	PaybackPeriodWeeks              float64 `json:"payback_period_weeks"`
	WeeklyBenefit                   float64 `json:"weekly_benefit"`
}

// DefaultInputs returns the embedded assumptions the report is run against
func DefaultInputs() InputParameters {
	return InputParameters{
		NumEngineers:                     180,
		EngineerHourlyCost:               80,
		HoursPerWeek:                     38,
		CalculationPeriodWeeks:           52,
		AssistableTasksTimePercentage:    0.50,
		TimeSavedPercentage:              0.33,
		AgentToolCostPerEngineerPerMonth: 100,
		WeeksToSetupAndTrain:             1,
		MaintenanceEngineers:             2,
		MaintenanceEngineerHourlyCost:    100,
	}
}

// NonFinite returns the JSON names of metrics that are NaN or infinite,
// in declaration order. Degenerate inputs such as a zero horizon produce these.
func (m DerivedMetrics) NonFinite() []string {
	fields := []struct {
		name  string
		value float64
	}{
		{"effective_assistable_hours", m.EffectiveAssistableHours},
		{"hours_per_week_saved", m.HoursPerWeekSaved},
		{"setup_and_training_cost_per_engineer", m.SetupAndTrainingCostPerEngineer},
		{"total_months", m.TotalMonths},
		{"total_hours_saved", m.TotalHoursSaved},
		{"total_benefit", m.TotalBenefit},
		{"recurring_costs", m.RecurringCosts},
		{"one_time_costs", m.OneTimeCosts},
		{"maintenance_engineer_costs", m.MaintenanceEngineerCosts},
		{"total_cost", m.TotalCost},
		{"net_benefit", m.NetBenefit},
		{"roi", m.ROI},
		{"payback_period_weeks", m.PaybackPeriodWeeks},
		{"weekly_benefit", m.WeeklyBenefit},
	}

	var names []string
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			names = append(names, f.name)
		}
	}
	return names
}
