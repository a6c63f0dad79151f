package analytics

import (
	"sort"

	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/dataset"
)

// DepartmentBreakdown tallies each department's headcount and attrition
// rate, sorted descending by attrition.
func DepartmentBreakdown(d *dataset.Dataset) []DepartmentRow {
	byDept := map[string]*DepartmentRow{}
	var order []string
	for _, e := range d.Employees {
		row, ok := byDept[e.Department]
		if !ok {
			row = &DepartmentRow{Department: e.Department}
			byDept[e.Department] = row
			order = append(order, e.Department)
		}
		row.Total++
		switch e.Status {
		case dataset.StatusActive:
			row.Active++
		case dataset.StatusDeparted:
			row.Departed++
		}
	}

	rows := make([]DepartmentRow, 0, len(order))
	for _, dept := range order {
		row := byDept[dept]
		row.AttritionRate = round1(pct(row.Departed, row.Total))
		rows = append(rows, *row)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].AttritionRate > rows[j].AttritionRate })
	return rows
}

// VendorBreakdown mirrors DepartmentBreakdown for sourcing vendors.
// Empty when the subset lacks the Vendor column.
func VendorBreakdown(d *dataset.Dataset) []VendorRow {
	rows := []VendorRow{}
	if !d.Columns.Vendor {
		return rows
	}
	byVendor := map[string]*VendorRow{}
	var order []string
	for _, e := range d.Employees {
		vendor := dataset.DefaultVendor
		if e.Vendor != nil {
			vendor = *e.Vendor
		}
		row, ok := byVendor[vendor]
		if !ok {
			row = &VendorRow{Vendor: vendor}
			byVendor[vendor] = row
			order = append(order, vendor)
		}
		row.Total++
		if e.Status == dataset.StatusDeparted {
			row.Departed++
		}
	}
	for _, vendor := range order {
		row := byVendor[vendor]
		row.AttritionRate = round1(pct(row.Departed, row.Total))
		rows = append(rows, *row)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })
	return rows
}

// ExitTypeCounts tallies departures by exit type, descending.
func ExitTypeCounts(d *dataset.Dataset) []CategoryCount {
	counts := map[string]int{}
	var order []string
	for _, e := range d.Departed() {
		if _, ok := counts[e.ExitType]; !ok {
			order = append(order, e.ExitType)
		}
		counts[e.ExitType]++
	}
	return sortedCategories(counts, order)
}

// ExitReasonCounts tallies departures by exit reason category,
// descending; blank reasons are skipped.
func ExitReasonCounts(d *dataset.Dataset) []CategoryCount {
	counts := map[string]int{}
	var order []string
	for _, e := range d.Departed() {
		if e.ExitReasonCategory == "" {
			continue
		}
		if _, ok := counts[e.ExitReasonCategory]; !ok {
			order = append(order, e.ExitReasonCategory)
		}
		counts[e.ExitReasonCategory]++
	}
	return sortedCategories(counts, order)
}

func sortedCategories(counts map[string]int, order []string) []CategoryCount {
	out := make([]CategoryCount, 0, len(order))
	for _, cat := range order {
		out = append(out, CategoryCount{Category: cat, Count: counts[cat]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// TenureDistribution reports min/max/mean/median tenure overall and per
// department.
func TenureDistribution(d *dataset.Dataset) TenureResponse {
	resp := TenureResponse{Departments: []DepartmentTenure{}}
	if !d.Derived.Tenure || d.Len() == 0 {
		return resp
	}

	all := make([]float64, 0, d.Len())
	byDept := map[string][]float64{}
	var order []string
	for _, e := range d.Employees {
		all = append(all, e.Derived.TenureMonths)
		if _, ok := byDept[e.Department]; !ok {
			order = append(order, e.Department)
		}
		byDept[e.Department] = append(byDept[e.Department], e.Derived.TenureMonths)
	}

	resp.Stats = tenureStats(all)
	sort.Strings(order)
	for _, dept := range order {
		values := byDept[dept]
		stats := tenureStats(values)
		resp.Departments = append(resp.Departments, DepartmentTenure{
			Department: dept,
			Mean:       stats.Mean,
			Median:     stats.Median,
			Count:      len(values),
		})
	}
	sort.SliceStable(resp.Departments, func(i, j int) bool {
		return resp.Departments[i].Mean > resp.Departments[j].Mean
	})
	return resp
}

func tenureStats(values []float64) TenureStats {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	n := len(sorted)
	var median float64
	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return TenureStats{
		Min:    round1(sorted[0]),
		Max:    round1(sorted[n-1]),
		Mean:   round1(sum / float64(n)),
		Median: round1(median),
	}
}

// PositionChangeStats counts employees whose post-joining position
// differs from their hiring position, grouped by department.
func PositionChangeStats(d *dataset.Dataset) PositionChanges {
	out := PositionChanges{ByDepartment: []CategoryCount{}}
	if !d.Columns.PositionAfterJoining {
		return out
	}
	counts := map[string]int{}
	var order []string
	for _, e := range d.Employees {
		if e.PositionAfterJoining == nil {
			continue
		}
		out.WithData++
		if *e.PositionAfterJoining == e.Position {
			continue
		}
		out.Changed++
		if _, ok := counts[e.Department]; !ok {
			order = append(order, e.Department)
		}
		counts[e.Department]++
	}
	out.ByDepartment = sortedCategories(counts, order)
	return out
}

// ProbationStats counts probation outcomes (No Data excluded) and the
// per-department pass rate.
func ProbationStats(d *dataset.Dataset) ProbationBreakdown {
	out := ProbationBreakdown{Counts: []CategoryCount{}, DeptPassRates: []DepartmentRate{}}
	if !d.Derived.ProbationState {
		return out
	}

	stateCounts := map[string]int{}
	var stateOrder []string
	type deptTally struct{ withData, passed int }
	byDept := map[string]*deptTally{}
	var deptOrder []string

	for _, e := range d.Employees {
		state := e.Derived.ProbationState
		if state == dataset.ProbationNoData {
			continue
		}
		if _, ok := stateCounts[state]; !ok {
			stateOrder = append(stateOrder, state)
		}
		stateCounts[state]++

		t, ok := byDept[e.Department]
		if !ok {
			t = &deptTally{}
			byDept[e.Department] = t
			deptOrder = append(deptOrder, e.Department)
		}
		t.withData++
		if state == dataset.ProbationCompleted || state == dataset.ProbationCompletedBeforeExit {
			t.passed++
		}
	}

	out.Counts = sortedCategories(stateCounts, stateOrder)
	for _, dept := range deptOrder {
		t := byDept[dept]
		out.DeptPassRates = append(out.DeptPassRates, DepartmentRate{
			Department: dept,
			Rate:       round1(pct(t.passed, t.withData)),
		})
	}
	sort.SliceStable(out.DeptPassRates, func(i, j int) bool {
		return out.DeptPassRates[i].Rate > out.DeptPassRates[j].Rate
	})
	return out
}
