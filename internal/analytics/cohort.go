package analytics

import (
	"sort"

	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/dataset"
)

// Join years at or below this value are treated as placeholder dates
// and excluded from cohort analysis.
const cohortYearFloor = 2000

// CohortRetention groups by join-year cohort. Returns an empty slice,
// never nil, when the subset has no join dates or no cohort survives
// the year filter.
func CohortRetention(d *dataset.Dataset) []CohortRow {
	rows := []CohortRow{}
	if !d.Derived.JoinPeriods {
		return rows
	}

	byYear := map[int]*CohortRow{}
	for _, e := range d.Employees {
		year := e.Derived.JoinYear
		if year <= cohortYearFloor {
			continue
		}
		row, ok := byYear[year]
		if !ok {
			row = &CohortRow{JoinYear: year}
			byYear[year] = row
		}
		row.Total++
		switch e.Status {
		case dataset.StatusActive:
			row.Active++
		case dataset.StatusDeparted:
			row.Departed++
		}
	}

	for _, row := range byYear {
		row.RetentionRate = round1(pct(row.Active, row.Total))
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].JoinYear < rows[j].JoinYear })
	return rows
}
