package analytics

import (
	"sort"
	"time"

	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/dataset"
)

const (
	retentionWindowDays = 90
	earlyLeaverTenureMo = 6.0
)

// NewHireRetention90 measures how many employees survive their first
// 90 days. An employee is measurable once they joined at least 90 days
// before now; they count as lost when they departed with a recorded
// exit within 90 days of joining. Needs both date columns.
func NewHireRetention90(d *dataset.Dataset, now time.Time) Retention90Response {
	resp := Retention90Response{Departments: []DepartmentRetention90{}}
	if !d.Columns.JoinDate || !d.Columns.ExitDate {
		return resp
	}

	cutoff := now.AddDate(0, 0, -retentionWindowDays)
	type tally struct{ measurable, left int }
	byDept := map[string]*tally{}
	var order []string

	for _, e := range d.Employees {
		if e.JoinDate == nil || e.JoinDate.After(cutoff) {
			continue
		}
		resp.Measurable++
		t, ok := byDept[e.Department]
		if !ok {
			t = &tally{}
			byDept[e.Department] = t
			order = append(order, e.Department)
		}
		t.measurable++

		if leftWithinWindow(e) {
			resp.LeftWithin90++
			t.left++
		}
	}

	if resp.Measurable > 0 {
		resp.Rate = round1(100 - pct(resp.LeftWithin90, resp.Measurable))
	}
	sort.Strings(order)
	for _, dept := range order {
		t := byDept[dept]
		resp.Departments = append(resp.Departments, DepartmentRetention90{
			Department:   dept,
			Measurable:   t.measurable,
			LeftWithin90: t.left,
			Rate:         round1(100 - pct(t.left, t.measurable)),
		})
	}
	sort.SliceStable(resp.Departments, func(i, j int) bool {
		return resp.Departments[i].Rate < resp.Departments[j].Rate
	})
	return resp
}

func leftWithinWindow(e *dataset.Employee) bool {
	if e.Status != dataset.StatusDeparted || e.ExitDate == nil || e.JoinDate == nil {
		return false
	}
	days := e.ExitDate.Sub(*e.JoinDate).Hours() / 24
	return days <= retentionWindowDays
}

// EarlyLeavers reports departures within the first six months of
// tenure and their stated reasons.
func EarlyLeavers(d *dataset.Dataset) EarlyLeaversResponse {
	resp := EarlyLeaversResponse{Reasons: []CategoryCount{}}
	if !d.Derived.Tenure {
		return resp
	}

	departed := d.Departed()
	var tenureSum float64
	counts := map[string]int{}
	var order []string
	for _, e := range departed {
		if e.Derived.TenureMonths > earlyLeaverTenureMo {
			continue
		}
		resp.Count++
		tenureSum += e.Derived.TenureMonths
		if e.ExitReasonCategory == "" {
			continue
		}
		if _, ok := counts[e.ExitReasonCategory]; !ok {
			order = append(order, e.ExitReasonCategory)
		}
		counts[e.ExitReasonCategory]++
	}

	resp.ShareOfDepartures = round1(pct(resp.Count, len(departed)))
	if resp.Count > 0 {
		resp.AvgTenureMonths = round1(tenureSum / float64(resp.Count))
	}
	resp.Reasons = sortedCategories(counts, order)
	return resp
}
