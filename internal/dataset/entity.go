package dataset

import (
	"time"

	"github.com/google/uuid"
)

// Employee statuses as they appear in the source file.
const (
	StatusActive   = "Active"
	StatusDeparted = "Departed"
)

// Exit types. An empty string is the norm for active employees.
const (
	ExitResigned   = "Resigned"
	ExitTerminated = "Terminated"
	ExitDropped    = "Dropped"
)

// Probation outcomes, derived by Classify. Exactly these five values.
const (
	ProbationCompleted           = "Completed"
	ProbationInProgress          = "In Probation"
	ProbationLeftDuring          = "Left During Probation"
	ProbationCompletedBeforeExit = "Completed Before Exit"
	ProbationNoData              = "No Data"
)

// Sentinel defaults applied by the classifier.
const (
	DefaultEmploymentType = "Unknown"
	DefaultVendor         = "Direct Hire"
	DefaultNationality    = "Unknown"
)

// Employee is one normalized record. Pointer fields are nullable source
// values: nil means the cell was empty, while the enclosing Dataset's
// ColumnSet says whether the column existed at all. That keeps
// "absent", "null" and "present" distinct, which the analyzers rely on.
type Employee struct {
	// In-memory identity for the editing surface. Never persisted.
	ID uuid.UUID

	FullName     string
	Gender       string
	Nationality  *string
	BirthdayDate *time.Time

	Department           string
	Position             string
	PositionAfterJoining *string
	EmploymentType       *string // raw "Type" column
	Vendor               *string

	Status             string
	JoinDate           *time.Time
	ExitDate           *time.Time
	ExitType           string
	ExitReasonCategory string
	ProbationEndDate   *time.Time
	ManagerCRM         *string // "Direct Manager CRM while Resignation"

	// Columns the pipeline does not model, preserved verbatim for the
	// round-trip (PS ID, CRM, bank details, whatever else the sheet has).
	Extra map[string]string

	Derived DerivedFields
}

// DerivedFields are computed on every pipeline run and dropped on save.
type DerivedFields struct {
	Age            int     // 0 = unknown
	TenureMonths   float64 // 30.44-day months, one decimal
	JoinYear       int
	JoinMonth      string // "2024-03"
	JoinQuarter    string // "2024Q1"
	ExitYear       int
	ExitMonth      string
	ProbationState string
	EmploymentType string // raw Type with the Unknown default applied
}

// Clone returns a copy safe to mutate without touching the original.
func (e *Employee) Clone() *Employee {
	clone := *e
	if e.Extra != nil {
		clone.Extra = make(map[string]string, len(e.Extra))
		for k, v := range e.Extra {
			clone.Extra[k] = v
		}
	}
	return &clone
}

// ColumnSet records which optional source columns the loaded table had.
// Derivations are skipped, not zero-filled, when a source is absent.
type ColumnSet struct {
	JoinDate             bool
	ExitDate             bool
	BirthdayDate         bool
	ProbationEndDate     bool
	EmploymentType       bool // raw "Type"
	Vendor               bool
	Nationality          bool
	PositionAfterJoining bool
	ManagerCRM           bool
}

// DerivedColumns mirrors ColumnSet for computed fields: a consumer must
// check these before trusting the corresponding DerivedFields values.
type DerivedColumns struct {
	Age            bool
	Tenure         bool
	JoinPeriods    bool
	ExitPeriods    bool
	ProbationState bool
}

// Dataset is the canonical Employee Record Table plus the schema
// bookkeeping needed to reverse the load on save.
type Dataset struct {
	Employees []*Employee
	Columns   ColumnSet
	Derived   DerivedColumns

	// Normalized source headers in original order.
	Headers []string
	// Source header that carries the employee name, "" if none detected.
	NameColumn string
}

// Len is the row count.
func (d *Dataset) Len() int { return len(d.Employees) }

// Filter selects a subset of employees by the dashboard's three filter
// axes. Empty values match everything. Schema flags carry over so the
// subset keeps the same column-presence contract.
type Filter struct {
	Department string
	Status     string
	Gender     string
}

func (d *Dataset) Filter(f Filter) *Dataset {
	if f.Department == "" && f.Status == "" && f.Gender == "" {
		return d
	}
	sub := &Dataset{
		Columns:    d.Columns,
		Derived:    d.Derived,
		Headers:    d.Headers,
		NameColumn: d.NameColumn,
	}
	for _, e := range d.Employees {
		if f.Department != "" && e.Department != f.Department {
			continue
		}
		if f.Status != "" && e.Status != f.Status {
			continue
		}
		if f.Gender != "" && e.Gender != f.Gender {
			continue
		}
		sub.Employees = append(sub.Employees, e)
	}
	return sub
}

// Departed is a convenience subset used by most attrition analyzers.
func (d *Dataset) Departed() []*Employee {
	var out []*Employee
	for _, e := range d.Employees {
		if e.Status == StatusDeparted {
			out = append(out, e)
		}
	}
	return out
}
