package analytics

import (
	"sort"

	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/dataset"
)

const (
	// Overall survival curves stop at ten years.
	maxSurvivalMonths = 120
	// Per-department curves are capped tighter and skip small groups
	// where the step function is mostly noise.
	deptSurvivalMonths = 60
	minDeptRecords     = 5
)

// SurvivalCurve computes, for each month 0..min(max tenure, cap), the
// share of the subset whose tenure strictly exceeds that month. The
// result is a non-increasing step function starting near 100%.
func SurvivalCurve(d *dataset.Dataset, capMonths int) []SurvivalPoint {
	points := []SurvivalPoint{}
	if !d.Derived.Tenure || d.Len() == 0 {
		return points
	}

	maxTenure := 0
	for _, e := range d.Employees {
		if m := int(e.Derived.TenureMonths); m > maxTenure {
			maxTenure = m
		}
	}
	if maxTenure > capMonths {
		maxTenure = capMonths
	}

	total := d.Len()
	for month := 0; month <= maxTenure; month++ {
		surviving := 0
		for _, e := range d.Employees {
			if e.Derived.TenureMonths > float64(month) {
				surviving++
			}
		}
		points = append(points, SurvivalPoint{
			Month: month,
			Rate:  round1(pct(surviving, total)),
		})
	}
	return points
}

// SurvivalByDepartment recomputes the curve per department, skipping
// departments below the minimum record threshold.
func SurvivalByDepartment(d *dataset.Dataset) []DepartmentSurvival {
	out := []DepartmentSurvival{}
	if !d.Derived.Tenure {
		return out
	}

	byDept := map[string][]*dataset.Employee{}
	var order []string
	for _, e := range d.Employees {
		if _, ok := byDept[e.Department]; !ok {
			order = append(order, e.Department)
		}
		byDept[e.Department] = append(byDept[e.Department], e)
	}
	sort.Strings(order)

	for _, dept := range order {
		members := byDept[dept]
		if len(members) < minDeptRecords {
			continue
		}
		sub := &dataset.Dataset{
			Employees: members,
			Columns:   d.Columns,
			Derived:   d.Derived,
		}
		out = append(out, DepartmentSurvival{
			Department: dept,
			Points:     SurvivalCurve(sub, deptSurvivalMonths),
		})
	}
	return out
}
