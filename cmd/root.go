// ABOUTME: Root command for the agent-roi CLI
// ABOUTME: Runs the embedded ROI projection once and prints the report

package cmd

import (
	"io"
	"log/slog"

	"github.com/markalston/agent-roi-calculator/internal/models"
	"github.com/markalston/agent-roi-calculator/internal/report"
	"github.com/markalston/agent-roi-calculator/internal/services"
	"github.com/spf13/cobra"
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "agent-roi",
	Short: "ROI projection for adopting an AI coding assistant",
	Long: `agent-roi projects the return on investment of rolling out an AI coding
assistant across an engineering organization.

It runs a fixed set of business assumptions (team size, hourly costs,
time savings, tool subscription, onboarding and maintenance effort) through
the ROI model and prints a summary, the inputs, and key intermediate results.

Environment Variables:
  LOG_LEVEL   Diagnostic log level on stderr: debug, info, warn, error (default: info)
  LOG_FORMAT  Diagnostic log format: text, json (default: text)`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd.OutOrStdout(), models.DefaultInputs())
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// runReport calculates metrics for in and writes the report to w
func runReport(w io.Writer, in models.InputParameters) error {
	calc := services.NewROICalculator()
	metrics := calc.Calculate(in)

	slog.Debug("ROI calculated",
		"roi_pct", metrics.ROI,
		"total_benefit", metrics.TotalBenefit,
		"total_cost", metrics.TotalCost,
		"payback_weeks", metrics.PaybackPeriodWeeks)

	if fields := metrics.NonFinite(); len(fields) > 0 {
		slog.Warn("Degenerate inputs produced non-finite metrics", "fields", fields)
	}

	return report.Write(w, in, metrics)
}
