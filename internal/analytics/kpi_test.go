package analytics_test

import (
	"testing"
	"time"

	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/analytics"
	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

// buildDataset runs the real pipeline so analyzer tests exercise the
// same records the service would see.
func buildDataset(t *testing.T, headers []string, rows [][]string) *dataset.Dataset {
	t.Helper()
	d, err := dataset.Process(&dataset.RawTable{Headers: headers, Rows: rows}, testNow)
	require.NoError(t, err)
	return d
}

var kpiHeaders = []string{
	"Full Name", "Gender", "Nationality", "Birthday Date",
	"Department", "Position", "Type", "Employee Status",
	"Join Date", "Exit Date", "Exit Type", "Exit Reason Category",
	"Probation Period End Date",
}

func kpiRows() [][]string {
	return [][]string{
		{"A", "M", "Egyptian", "1990-01-01", "Ops", "Agent", "Full-Time", "Active", "2025-01-01", "", "", "", "2025-04-01"},
		{"B", "F", "Jordanian", "1995-01-01", "Ops", "Agent", "Freelancer", "Active", "2026-02-01", "", "", "", "2026-05-01"},
		{"C", "M", "Egyptian", "", "HR", "Clerk", "Contract", "Active", "2025-06-01", "", "", "", ""},
		{"D", "F", "", "1998-01-01", "HR", "Clerk", "Contract - Part Time", "Departed", "2025-03-01", "2025-09-01", "Resigned", "Better Offer", "2025-06-01"},
	}
}

func TestSummarize(t *testing.T) {
	d := buildDataset(t, kpiHeaders, kpiRows())
	s := analytics.Summarize(d, testNow)

	t.Run("headcount identity", func(t *testing.T) {
		assert.Equal(t, 4, s.Total)
		assert.Equal(t, s.Total, s.Active+s.Departed)
	})

	t.Run("attrition and retention sum to 100", func(t *testing.T) {
		assert.InDelta(t, 100.0, s.AttritionRate+s.RetentionRate, 1e-6)
		assert.InDelta(t, 25.0, s.AttritionRate, 1e-6)
	})

	t.Run("gender split", func(t *testing.T) {
		assert.Equal(t, 2, s.MaleCount)
		assert.Equal(t, 2, s.FemaleCount)
		assert.Equal(t, "2:2", s.GenderRatio)
	})

	t.Run("contractor ratio uses substring markers", func(t *testing.T) {
		// Freelancer + Contract + "Contract - Part Time" = 3 of 4.
		assert.InDelta(t, 75.0, s.ContractorRatio, 1e-6)
	})

	t.Run("average age skips unknown birthdays", func(t *testing.T) {
		// Ages 36, 31, 28; the record without a birthday is excluded.
		assert.InDelta(t, (36.0+31.0+28.0)/3, s.AvgAge, 0.5)
	})

	t.Run("nationality counts distinct values including the sentinel", func(t *testing.T) {
		// Egyptian, Jordanian, Unknown.
		assert.Equal(t, 3, s.NationalityCount)
	})

	t.Run("probation pass rate excludes no-data rows", func(t *testing.T) {
		// A, B and D all have a probation end in the past, so all three
		// read Completed; C has no end date and stays out of the
		// denominator entirely.
		assert.InDelta(t, 100.0, s.ProbationPassRate, 1e-6)
	})

	t.Run("growth rate compares join-year cohorts", func(t *testing.T) {
		// 2026 hires: 1, 2025 hires: 3 -> (1-3)/3 = -66.7%.
		assert.InDelta(t, -66.7, s.GrowthRate, 0.1)
	})
}

func TestContractorRatioCaseInsensitive(t *testing.T) {
	headers := []string{"Gender", "Department", "Position", "Type", "Employee Status", "Exit Type"}
	d := buildDataset(t, headers, [][]string{
		{"M", "Ops", "Agent", "freelancer", "Active", ""},
		{"F", "Ops", "Agent", "contract", "Active", ""},
		{"M", "Ops", "Agent", "fulltime", "Active", ""},
		{"F", "Ops", "Agent", "FREELANCER", "Active", ""},
	})
	s := analytics.Summarize(d, testNow)
	assert.InDelta(t, 75.0, s.ContractorRatio, 1e-6)
}

func TestGrowthRate(t *testing.T) {
	headers := []string{"Gender", "Department", "Position", "Employee Status", "Exit Type", "Join Date"}
	row := func(year string) []string {
		return []string{"M", "Ops", "Agent", "Active", "", year + "-03-01"}
	}

	t.Run("six hires over four", func(t *testing.T) {
		var rows [][]string
		for i := 0; i < 6; i++ {
			rows = append(rows, row("2026"))
		}
		for i := 0; i < 4; i++ {
			rows = append(rows, row("2025"))
		}
		s := analytics.Summarize(buildDataset(t, headers, rows), testNow)
		assert.InDelta(t, 50.0, s.GrowthRate, 1e-6)
	})

	t.Run("no prior-year hires yields zero", func(t *testing.T) {
		s := analytics.Summarize(buildDataset(t, headers, [][]string{row("2026")}), testNow)
		assert.Zero(t, s.GrowthRate)
	})
}

func TestSummarizeEmpty(t *testing.T) {
	d := buildDataset(t, kpiHeaders, nil)
	s := analytics.Summarize(d, testNow)

	assert.Equal(t, 0, s.Total)
	assert.Zero(t, s.AttritionRate)
	assert.Zero(t, s.RetentionRate)
	assert.Zero(t, s.AvgTenure)
	assert.Zero(t, s.AvgAge)
	assert.Equal(t, "0:0", s.GenderRatio)
}
