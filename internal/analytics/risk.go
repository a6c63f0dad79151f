package analytics

import "github.com/ahmedalsadeqhr/HR-Dashboard/internal/dataset"

// Risk band thresholds. The bands overlap deliberately; a 56-year-old
// hired four months ago is both a retirement and a new-hire risk.
const (
	retirementAge      = 55
	flightRiskMinMo    = 12.0
	flightRiskMaxMo    = 36.0
	newHireRiskBelowMo = 6.0
)

// Risks segments the active workforce into retirement, flight and
// new-hire risk bands. Age-based and tenure-based bands each require
// their derived column; absent columns yield empty bands, not errors.
func Risks(d *dataset.Dataset) RiskSegments {
	segments := RiskSegments{
		RetirementRisk: []RiskEmployee{},
		FlightRisk:     []RiskEmployee{},
		NewHireRisk:    []RiskEmployee{},
	}

	for _, e := range d.Employees {
		if e.Status != dataset.StatusActive {
			continue
		}
		ref := RiskEmployee{
			ID:           e.ID.String(),
			FullName:     e.FullName,
			Department:   e.Department,
			Age:          e.Derived.Age,
			TenureMonths: e.Derived.TenureMonths,
		}
		if d.Derived.Age && e.Derived.Age >= retirementAge {
			segments.RetirementRisk = append(segments.RetirementRisk, ref)
		}
		if d.Derived.Tenure {
			t := e.Derived.TenureMonths
			if t >= flightRiskMinMo && t <= flightRiskMaxMo {
				segments.FlightRisk = append(segments.FlightRisk, ref)
			}
			if t < newHireRiskBelowMo {
				segments.NewHireRisk = append(segments.NewHireRisk, ref)
			}
		}
	}
	return segments
}
