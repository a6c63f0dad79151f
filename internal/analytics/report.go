package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/dataset"
)

const topExitReasons = 10

// BuildSummaryReport renders the plain-text management summary: the
// KPI block, the department breakdown and the leading exit reasons.
func BuildSummaryReport(full, sub *dataset.Dataset, now time.Time) string {
	kpis := Summarize(sub, now)

	lines := []string{
		"HR ANALYTICS SUMMARY REPORT",
		fmt.Sprintf("Generated: %s", now.Format("2006-01-02 15:04")),
		fmt.Sprintf("Data: %d records (filtered from %d total)", sub.Len(), full.Len()),
		"",
		"=== KEY METRICS ===",
		fmt.Sprintf("Total Employees: %d", kpis.Total),
		fmt.Sprintf("Active: %d", kpis.Active),
		fmt.Sprintf("Departed: %d", kpis.Departed),
		fmt.Sprintf("Attrition Rate: %.1f%%", kpis.AttritionRate),
		fmt.Sprintf("Retention Rate: %.1f%%", kpis.RetentionRate),
		fmt.Sprintf("Avg Tenure: %.1f months", kpis.AvgTenure),
		fmt.Sprintf("Avg Age: %.0f", kpis.AvgAge),
		fmt.Sprintf("Gender (M:F): %s", kpis.GenderRatio),
		fmt.Sprintf("Contractor Ratio: %.1f%%", kpis.ContractorRatio),
		fmt.Sprintf("Nationalities: %d", kpis.NationalityCount),
		fmt.Sprintf("Probation Pass Rate: %.1f%%", kpis.ProbationPassRate),
		fmt.Sprintf("YoY Growth: %+.1f%%", kpis.GrowthRate),
		"",
		"=== DEPARTMENT BREAKDOWN ===",
	}

	for _, row := range DepartmentBreakdown(sub) {
		lines = append(lines, fmt.Sprintf(
			"  %s: %d total, %d active, %d departed (%.1f%% attrition)",
			row.Department, row.Total, row.Active, row.Departed, row.AttritionRate,
		))
	}

	lines = append(lines, "", "=== TOP EXIT REASONS ===")
	reasons := ExitReasonCounts(sub)
	if len(reasons) > topExitReasons {
		reasons = reasons[:topExitReasons]
	}
	for _, reason := range reasons {
		lines = append(lines, fmt.Sprintf("  %s: %d", reason.Category, reason.Count))
	}

	return strings.Join(lines, "\n")
}
