package dataset

import "time"

// classify derives the probation outcome and normalizes the nullable
// categorical fields to their documented sentinels.
func classify(d *Dataset, now time.Time) {
	d.Derived.ProbationState = d.Columns.ProbationEndDate

	for _, e := range d.Employees {
		if d.Columns.ProbationEndDate {
			e.Derived.ProbationState = ProbationState(e, now)
		}

		// Employment Type always materializes: it copies the raw
		// "Type" value and defaults to Unknown, whether the cell or
		// the whole column is missing.
		e.Derived.EmploymentType = normalizeEmploymentType(e.EmploymentType)

		// Vendor and Nationality are filled in place so the sentinel
		// survives the round-trip, matching the source-of-truth
		// convention. Both are skipped when the column is absent.
		if d.Columns.Vendor && e.Vendor == nil {
			e.Vendor = strPtr(DefaultVendor)
		}
		if d.Columns.Nationality && e.Nationality == nil {
			e.Nationality = strPtr(DefaultNationality)
		}
	}
}

// ProbationState runs the five-state decision ladder, in this exact
// precedence order:
//
//  1. probation end recorded and already passed        -> Completed
//  2. departed, exit strictly before a recorded end    -> Left During Probation
//  3. departed otherwise                               -> Completed Before Exit
//  4. active with a (future) probation end recorded    -> In Probation
//  5. active with no probation end                     -> No Data
//
// Rule 3 fires for a departed employee whose probation end was simply
// never recorded, even if they in fact left mid-probation. That label
// is a known quirk of the source data convention and is kept as-is;
// fixtures depend on this precedence.
func ProbationState(e *Employee, now time.Time) string {
	if e.ProbationEndDate != nil && !e.ProbationEndDate.After(now) {
		return ProbationCompleted
	}
	if e.Status == StatusDeparted {
		if e.ProbationEndDate != nil && e.ExitDate != nil && e.ExitDate.Before(*e.ProbationEndDate) {
			return ProbationLeftDuring
		}
		return ProbationCompletedBeforeExit
	}
	if e.ProbationEndDate != nil {
		return ProbationInProgress
	}
	return ProbationNoData
}

func normalizeEmploymentType(raw *string) string {
	if raw == nil || *raw == "" {
		return DefaultEmploymentType
	}
	return *raw
}

func strPtr(s string) *string { return &s }
