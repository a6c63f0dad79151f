package dataset

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	daysPerYear  = 365.25
	daysPerMonth = 30.44
)

// Date layouts accepted by the permissive parser, most common first.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"02-Jan-2006",
}

// ParseDate parses a date cell permissively. Anything unparseable
// becomes nil rather than an error; the record keeps degraded derived
// fields instead of failing the whole load.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// FormatDate renders a nullable date for persistence.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// derive computes Age, Tenure and the calendar-period buckets. Each
// derivation only happens when its source column exists; the Derived
// flags record what was actually computed so consumers can tell
// "column absent" from "value zero".
func derive(d *Dataset, now time.Time) {
	d.Derived.Age = d.Columns.BirthdayDate
	d.Derived.Tenure = d.Columns.JoinDate
	d.Derived.JoinPeriods = d.Columns.JoinDate
	d.Derived.ExitPeriods = d.Columns.ExitDate

	for _, e := range d.Employees {
		if d.Columns.BirthdayDate {
			e.Derived.Age = deriveAge(e.BirthdayDate, now)
		}
		if d.Columns.JoinDate {
			e.Derived.TenureMonths = deriveTenure(e, now)
			e.Derived.JoinYear, e.Derived.JoinMonth = periodOf(e.JoinDate)
			e.Derived.JoinQuarter = quarterOf(e.JoinDate)
		}
		if d.Columns.ExitDate {
			e.Derived.ExitYear, e.Derived.ExitMonth = periodOf(e.ExitDate)
		}
	}
}

func deriveAge(birthday *time.Time, now time.Time) int {
	if birthday == nil {
		return 0 // sentinel for unknown, keeps numeric aggregation safe
	}
	age := int(now.Sub(*birthday).Hours() / 24 / daysPerYear)
	if age < 0 {
		return 0
	}
	return age
}

// deriveTenure measures employment span in 30.44-day months, to now for
// active employees and to the exit date otherwise. Missing dates yield
// the 0 sentinel rather than an error.
func deriveTenure(e *Employee, now time.Time) float64 {
	if e.JoinDate == nil {
		return 0
	}
	var days float64
	if e.Status == StatusActive {
		days = now.Sub(*e.JoinDate).Hours() / 24
	} else {
		if e.ExitDate == nil {
			return 0
		}
		days = e.ExitDate.Sub(*e.JoinDate).Hours() / 24
	}
	return round1(days / daysPerMonth)
}

func periodOf(t *time.Time) (int, string) {
	if t == nil {
		return 0, ""
	}
	return t.Year(), t.Format("2006-01")
}

func quarterOf(t *time.Time) string {
	if t == nil {
		return ""
	}
	return fmt.Sprintf("%dQ%d", t.Year(), (int(t.Month())+2)/3)
}
