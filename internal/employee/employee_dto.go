package employee

type CreateEmployeeRequest struct {
	FullName           string `json:"full_name" binding:"required"`
	Gender             string `json:"gender" binding:"required,oneof=M F"`
	BirthdayDate       string `json:"birthday_date" binding:"omitempty,datetime=2006-01-02"`
	Nationality        string `json:"nationality"`
	Department         string `json:"department" binding:"required"`
	Position           string `json:"position" binding:"required"`
	Status             string `json:"status" binding:"required,oneof=Active Departed"`
	JoinDate           string `json:"join_date" binding:"required,datetime=2006-01-02"`
	ExitDate           string `json:"exit_date" binding:"omitempty,datetime=2006-01-02"`
	ExitType           string `json:"exit_type" binding:"omitempty,oneof=Resigned Terminated Dropped"`
	ExitReasonCategory string `json:"exit_reason_category"`
	EmploymentType     string `json:"employment_type"`
	Vendor             string `json:"vendor"`
}

// UpdateEmployeeRequest mirrors the edit surface: only the fields the
// editor may change, nil meaning "leave as-is".
type UpdateEmployeeRequest struct {
	Department         *string `json:"department"`
	Position           *string `json:"position"`
	Status             *string `json:"status" binding:"omitempty,oneof=Active Departed"`
	ExitDate           *string `json:"exit_date" binding:"omitempty,datetime=2006-01-02"`
	ExitType           *string `json:"exit_type" binding:"omitempty,oneof=Resigned Terminated Dropped"`
	ExitReasonCategory *string `json:"exit_reason_category"`
}

type EmployeeResponse struct {
	ID                   string  `json:"id"`
	FullName             string  `json:"full_name"`
	Gender               string  `json:"gender"`
	Nationality          *string `json:"nationality,omitempty"`
	BirthdayDate         string  `json:"birthday_date,omitempty"`
	Department           string  `json:"department"`
	Position             string  `json:"position"`
	PositionAfterJoining *string `json:"position_after_joining,omitempty"`
	EmploymentType       string  `json:"employment_type"`
	Vendor               *string `json:"vendor,omitempty"`
	Status               string  `json:"status"`
	JoinDate             string  `json:"join_date,omitempty"`
	ExitDate             string  `json:"exit_date,omitempty"`
	ExitType             string  `json:"exit_type,omitempty"`
	ExitReasonCategory   string  `json:"exit_reason_category,omitempty"`
	ManagerCRM           *string `json:"manager_crm,omitempty"`

	// Derived fields; nil/empty when the source column was absent.
	Age             *int     `json:"age,omitempty"`
	TenureMonths    *float64 `json:"tenure_months,omitempty"`
	JoinYear        *int     `json:"join_year,omitempty"`
	JoinMonth       string   `json:"join_month,omitempty"`
	JoinQuarter     string   `json:"join_quarter,omitempty"`
	ExitYear        *int     `json:"exit_year,omitempty"`
	ExitMonth       string   `json:"exit_month,omitempty"`
	ProbationStatus string   `json:"probation_status,omitempty"`
}

type ReloadResponse struct {
	Rows int `json:"rows"`
}
