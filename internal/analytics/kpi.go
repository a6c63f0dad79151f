package analytics

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/dataset"
)

// contractorMarkers are matched as case-insensitive substrings of
// Employment Type.
var contractorMarkers = []string{"freelancer", "contract"}

// pct divides safely: a zero denominator yields 0, never NaN.
func pct(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }

// Summarize computes the KPI dictionary for any record subset. It
// tolerates empty subsets and absent derived columns, substituting 0
// so every key is always present and numeric.
func Summarize(d *dataset.Dataset, now time.Time) Summary {
	s := Summary{Total: d.Len()}

	for _, e := range d.Employees {
		switch e.Status {
		case dataset.StatusActive:
			s.Active++
		case dataset.StatusDeparted:
			s.Departed++
		}
		switch e.Gender {
		case "M":
			s.MaleCount++
		case "F":
			s.FemaleCount++
		}
	}

	s.AttritionRate = pct(s.Departed, s.Total)
	s.RetentionRate = pct(s.Active, s.Total)
	s.GenderRatio = fmt.Sprintf("%d:%d", s.MaleCount, s.FemaleCount)

	if d.Derived.Tenure {
		var sum float64
		for _, e := range d.Employees {
			sum += e.Derived.TenureMonths
		}
		if s.Total > 0 {
			s.AvgTenure = sum / float64(s.Total)
		}
	}

	if d.Derived.Age {
		var sum, n float64
		for _, e := range d.Employees {
			if e.Derived.Age > 0 { // the 0 sentinel means unknown
				sum += float64(e.Derived.Age)
				n++
			}
		}
		if n > 0 {
			s.AvgAge = sum / n
		}
	}

	contractors := 0
	for _, e := range d.Employees {
		if isContractor(e.Derived.EmploymentType) {
			contractors++
		}
	}
	s.ContractorRatio = pct(contractors, s.Total)

	if d.Columns.Nationality {
		distinct := map[string]struct{}{}
		for _, e := range d.Employees {
			if e.Nationality != nil {
				distinct[*e.Nationality] = struct{}{}
			}
		}
		s.NationalityCount = len(distinct)
	}

	if d.Derived.ProbationState {
		withData, passed := 0, 0
		for _, e := range d.Employees {
			state := e.Derived.ProbationState
			if state == dataset.ProbationNoData {
				continue // No Data rows stay out of the denominator
			}
			withData++
			if state == dataset.ProbationCompleted || state == dataset.ProbationCompletedBeforeExit {
				passed++
			}
		}
		s.ProbationPassRate = pct(passed, withData)
	}

	if d.Derived.JoinPeriods {
		currentYear := now.Year()
		hiredThisYear, hiredLastYear := 0, 0
		for _, e := range d.Employees {
			switch e.Derived.JoinYear {
			case currentYear:
				hiredThisYear++
			case currentYear - 1:
				hiredLastYear++
			}
		}
		if hiredLastYear > 0 {
			s.GrowthRate = float64(hiredThisYear-hiredLastYear) / float64(hiredLastYear) * 100
		}
	}

	return s
}

func isContractor(employmentType string) bool {
	lower := strings.ToLower(employmentType)
	for _, marker := range contractorMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
