package analytics

import (
	"sort"

	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/dataset"
)

// ManagerAttrition links departures to the reporting manager recorded
// at resignation time. Returns empty immediately when the subset
// lacks the manager column; rows are sorted descending by departures.
func ManagerAttrition(d *dataset.Dataset) []ManagerAttritionRow {
	rows := []ManagerAttritionRow{}
	if !d.Columns.ManagerCRM {
		return rows
	}

	type group struct {
		departures  int
		tenureSum   float64
		reasonCount map[string]int
		reasonOrder []string
	}
	groups := map[string]*group{}
	var order []string

	for _, e := range d.Departed() {
		if e.ManagerCRM == nil {
			continue
		}
		manager := *e.ManagerCRM
		g, ok := groups[manager]
		if !ok {
			g = &group{reasonCount: map[string]int{}}
			groups[manager] = g
			order = append(order, manager)
		}
		g.departures++
		if d.Derived.Tenure {
			g.tenureSum += e.Derived.TenureMonths
		}
		if _, seen := g.reasonCount[e.ExitReasonCategory]; !seen {
			g.reasonOrder = append(g.reasonOrder, e.ExitReasonCategory)
		}
		g.reasonCount[e.ExitReasonCategory]++
	}

	for _, manager := range order {
		g := groups[manager]
		row := ManagerAttritionRow{
			ManagerCRM: manager,
			Departures: g.departures,
			TopReason:  modalReason(g.reasonCount, g.reasonOrder),
		}
		if d.Derived.Tenure {
			row.AvgTenureMonths = round1(g.tenureSum / float64(g.departures))
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Departures > rows[j].Departures })
	return rows
}

// modalReason picks the most frequent category, ties broken by first
// encounter order.
func modalReason(counts map[string]int, order []string) string {
	best, bestCount := "N/A", 0
	for _, reason := range order {
		if counts[reason] > bestCount {
			best, bestCount = reason, counts[reason]
		}
	}
	return best
}
