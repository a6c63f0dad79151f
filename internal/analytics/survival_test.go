package analytics_test

import (
	"encoding/json"
	"testing"

	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/analytics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurvivalCurve(t *testing.T) {
	d := buildDataset(t, attritionHeaders, [][]string{
		{"A", "M", "Ops", "Agent", "Departed", "2024-01-01", "2024-04-01", "Resigned", "", ""}, // 3.0 mo
		{"B", "F", "Ops", "Agent", "Departed", "2024-01-01", "2024-07-01", "Resigned", "", ""}, // 6.0 mo
		{"C", "M", "Ops", "Agent", "Departed", "2023-01-01", "2024-01-01", "Resigned", "", ""}, // 12.0 mo
		{"D", "F", "Ops", "Agent", "Departed", "2023-01-01", "2025-01-01", "Resigned", "", ""}, // 24.0 mo
	})

	points := analytics.SurvivalCurve(d, 120)
	require.NotEmpty(t, points)

	t.Run("starts at full survival", func(t *testing.T) {
		assert.Equal(t, 0, points[0].Month)
		assert.InDelta(t, 100.0, points[0].Rate, 1e-6)
	})

	t.Run("non-increasing step function", func(t *testing.T) {
		for i := 1; i < len(points); i++ {
			assert.LessOrEqual(t, points[i].Rate, points[i-1].Rate)
		}
	})

	t.Run("half survive past month six", func(t *testing.T) {
		require.Greater(t, len(points), 6)
		assert.InDelta(t, 50.0, points[6].Rate, 1e-6)
	})

	t.Run("cap truncates the curve", func(t *testing.T) {
		capped := analytics.SurvivalCurve(d, 12)
		assert.Len(t, capped, 13)
	})
}

func TestSurvivalByDepartment(t *testing.T) {
	rows := [][]string{}
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		rows = append(rows, []string{name, "M", "Ops", "Agent", "Active", "2024-01-01", "", "", "", ""})
	}
	// Below the minimum group size, must be skipped.
	rows = append(rows, []string{"F", "F", "HR", "Clerk", "Active", "2024-01-01", "", "", "", ""})

	d := buildDataset(t, attritionHeaders, rows)
	out := analytics.SurvivalByDepartment(d)
	require.Len(t, out, 1)
	assert.Equal(t, "Ops", out[0].Department)
}

func TestRisks(t *testing.T) {
	headers := []string{
		"Full Name", "Gender", "Department", "Position", "Employee Status",
		"Exit Type", "Birthday Date", "Join Date",
	}
	d := buildDataset(t, headers, [][]string{
		{"Old Timer", "M", "Ops", "Agent", "Active", "", "1965-01-01", "2020-01-01"},
		{"Mid Tenure", "F", "Ops", "Agent", "Active", "", "1990-01-01", "2024-08-01"}, // 24 mo
		{"New Hire", "M", "Ops", "Agent", "Active", "", "1970-06-01", "2026-05-01"},   // 3 mo, age 56
		{"Gone", "F", "Ops", "Agent", "Departed", "Resigned", "1985-01-01", "2024-01-01"},
	})

	segments := analytics.Risks(d)

	names := func(list []analytics.RiskEmployee) []string {
		var out []string
		for _, e := range list {
			out = append(out, e.FullName)
		}
		return out
	}

	assert.ElementsMatch(t, []string{"Old Timer", "New Hire"}, names(segments.RetirementRisk))
	assert.Equal(t, []string{"Mid Tenure"}, names(segments.FlightRisk))
	// Overlapping bands: the 56-year-old new hire appears twice.
	assert.Equal(t, []string{"New Hire"}, names(segments.NewHireRisk))
}

func TestTrends(t *testing.T) {
	d := buildDataset(t, attritionHeaders, [][]string{
		{"A", "M", "Ops", "Agent", "Active", "2024-01-15", "", "", "", ""},
		{"B", "F", "Ops", "Agent", "Active", "2024-01-20", "", "", "", ""},
		{"C", "M", "Ops", "Agent", "Departed", "2024-03-01", "2024-09-01", "Resigned", "", ""},
		{"D", "F", "Ops", "Agent", "Active", "2025-02-01", "", "", "", ""},
	})

	t.Run("hires by month ascending", func(t *testing.T) {
		hires := analytics.HiresByMonth(d)
		require.Len(t, hires, 3)
		assert.Equal(t, analytics.PeriodCount{Period: "2024-01", Count: 2}, hires[0])
		assert.Equal(t, "2025-02", hires[2].Period)
	})

	t.Run("exits by month", func(t *testing.T) {
		exits := analytics.ExitsByMonth(d)
		require.Len(t, exits, 1)
		assert.Equal(t, analytics.PeriodCount{Period: "2024-09", Count: 1}, exits[0])
	})

	t.Run("headcount by year", func(t *testing.T) {
		rows := analytics.HeadcountByYear(d)
		require.Len(t, rows, 2)
		assert.Equal(t, analytics.HeadcountRow{Year: 2024, Active: 2, Departed: 1}, rows[0])
		assert.Equal(t, analytics.HeadcountRow{Year: 2025, Active: 1}, rows[1])
	})

	t.Run("hire exit ratio only for years with exits", func(t *testing.T) {
		rows := analytics.HireExitRatio(d)
		require.Len(t, rows, 1)
		assert.Equal(t, 2024, rows[0].Year)
		assert.Equal(t, 3, rows[0].Hires)
		assert.Equal(t, 1, rows[0].Exits)
		assert.InDelta(t, 3.0, rows[0].Ratio, 1e-6)
	})
}

// An unknown age renders as 0 rather than disappearing, matching how
// tenure_months always appears in the payload.
func TestRiskEmployeeRendersZeroValues(t *testing.T) {
	b, err := json.Marshal(analytics.RiskEmployee{ID: "e1", FullName: "A", Department: "Ops"})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"age":0`)
	assert.Contains(t, string(b), `"tenure_months":0`)
}
