package analytics

import (
	"sort"

	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/dataset"
)

// HiresByMonth counts joins per calendar month, ascending by period.
func HiresByMonth(d *dataset.Dataset) []PeriodCount {
	if !d.Derived.JoinPeriods {
		return []PeriodCount{}
	}
	counts := map[string]int{}
	for _, e := range d.Employees {
		if e.Derived.JoinMonth != "" {
			counts[e.Derived.JoinMonth]++
		}
	}
	return sortedPeriods(counts)
}

// ExitsByMonth counts departures per exit month, ascending by period.
func ExitsByMonth(d *dataset.Dataset) []PeriodCount {
	if !d.Derived.ExitPeriods {
		return []PeriodCount{}
	}
	counts := map[string]int{}
	for _, e := range d.Departed() {
		if e.Derived.ExitMonth != "" {
			counts[e.Derived.ExitMonth]++
		}
	}
	return sortedPeriods(counts)
}

func sortedPeriods(counts map[string]int) []PeriodCount {
	out := make([]PeriodCount, 0, len(counts))
	for period, count := range counts {
		out = append(out, PeriodCount{Period: period, Count: count})
	}
	// "2006-01" periods sort correctly as strings.
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

// HeadcountByYear tallies join cohorts by status, placeholder years
// excluded.
func HeadcountByYear(d *dataset.Dataset) []HeadcountRow {
	rows := []HeadcountRow{}
	if !d.Derived.JoinPeriods {
		return rows
	}
	byYear := map[int]*HeadcountRow{}
	for _, e := range d.Employees {
		year := e.Derived.JoinYear
		if year <= cohortYearFloor {
			continue
		}
		row, ok := byYear[year]
		if !ok {
			row = &HeadcountRow{Year: year}
			byYear[year] = row
		}
		switch e.Status {
		case dataset.StatusActive:
			row.Active++
		case dataset.StatusDeparted:
			row.Departed++
		}
	}
	for _, row := range byYear {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Year < rows[j].Year })
	return rows
}

// HireExitRatio compares hires against exits per year. Only years with
// at least one exit produce a row, so the ratio is always defined.
func HireExitRatio(d *dataset.Dataset) []HireExitRatioRow {
	rows := []HireExitRatioRow{}
	if !d.Derived.JoinPeriods {
		return rows
	}

	hires := map[int]int{}
	exits := map[int]int{}
	for _, e := range d.Employees {
		if e.Derived.JoinYear > cohortYearFloor {
			hires[e.Derived.JoinYear]++
		}
	}
	if d.Derived.ExitPeriods {
		for _, e := range d.Departed() {
			if e.Derived.ExitYear > cohortYearFloor {
				exits[e.Derived.ExitYear]++
			}
		}
	}

	years := map[int]struct{}{}
	for y := range hires {
		years[y] = struct{}{}
	}
	for y := range exits {
		years[y] = struct{}{}
	}
	for year := range years {
		if exits[year] == 0 {
			continue
		}
		rows = append(rows, HireExitRatioRow{
			Year:  year,
			Hires: hires[year],
			Exits: exits[year],
			Ratio: round2(float64(hires[year]) / float64(exits[year])),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Year < rows[j].Year })
	return rows
}
