package analytics

// Summary is the fixed-shape KPI dictionary handed to the presentation
// layer. Rate fields are always numbers; 0 stands in for undefined.
type Summary struct {
	Total             int     `json:"total"`
	Active            int     `json:"active"`
	Departed          int     `json:"departed"`
	AttritionRate     float64 `json:"attrition_rate"`
	RetentionRate     float64 `json:"retention_rate"`
	AvgTenure         float64 `json:"avg_tenure"`
	AvgAge            float64 `json:"avg_age"`
	ContractorRatio   float64 `json:"contractor_ratio"`
	NationalityCount  int     `json:"nationality_count"`
	GenderRatio       string  `json:"gender_ratio"`
	MaleCount         int     `json:"male_count"`
	FemaleCount       int     `json:"female_count"`
	ProbationPassRate float64 `json:"probation_pass_rate"`
	GrowthRate        float64 `json:"growth_rate"`
}

type CohortRow struct {
	JoinYear      int     `json:"join_year"`
	Total         int     `json:"total"`
	Active        int     `json:"active"`
	Departed      int     `json:"departed"`
	RetentionRate float64 `json:"retention_rate"`
}

type ManagerAttritionRow struct {
	ManagerCRM      string  `json:"manager_crm"`
	Departures      int     `json:"departures"`
	AvgTenureMonths float64 `json:"avg_tenure_months"`
	TopReason       string  `json:"top_reason"`
}

type SurvivalPoint struct {
	Month int     `json:"month"`
	Rate  float64 `json:"rate"`
}

type DepartmentSurvival struct {
	Department string          `json:"department"`
	Points     []SurvivalPoint `json:"points"`
}

type SurvivalResponse struct {
	Overall     []SurvivalPoint      `json:"overall"`
	Departments []DepartmentSurvival `json:"departments"`
}

type RiskEmployee struct {
	ID           string  `json:"id"`
	FullName     string  `json:"full_name"`
	Department   string  `json:"department"`
	Age          int     `json:"age"`
	TenureMonths float64 `json:"tenure_months"`
}

// RiskSegments are independent bands; one employee may appear in more
// than one.
type RiskSegments struct {
	RetirementRisk []RiskEmployee `json:"retirement_risk"`
	FlightRisk     []RiskEmployee `json:"flight_risk"`
	NewHireRisk    []RiskEmployee `json:"new_hire_risk"`
}

type TurnoverBreakdown struct {
	Voluntary       int     `json:"voluntary"`
	Involuntary     int     `json:"involuntary"`
	Regrettable     int     `json:"regrettable"`
	EarlyVoluntary  int     `json:"early_voluntary"`
	RegrettableRate float64 `json:"regrettable_rate"`
}

type TurnoverResponse struct {
	TurnoverBreakdown
	VoluntaryExitTypes []string `json:"voluntary_exit_types"`
}

type PeriodCount struct {
	Period string `json:"period"`
	Count  int    `json:"count"`
}

type HeadcountRow struct {
	Year     int `json:"year"`
	Active   int `json:"active"`
	Departed int `json:"departed"`
}

type HireExitRatioRow struct {
	Year  int     `json:"year"`
	Hires int     `json:"hires"`
	Exits int     `json:"exits"`
	Ratio float64 `json:"ratio"`
}

type TrendsResponse struct {
	HiresByMonth    []PeriodCount      `json:"hires_by_month"`
	ExitsByMonth    []PeriodCount      `json:"exits_by_month"`
	HeadcountByYear []HeadcountRow     `json:"headcount_by_year"`
	HireExitRatio   []HireExitRatioRow `json:"hire_exit_ratio"`
}

type DepartmentRow struct {
	Department    string  `json:"department"`
	Total         int     `json:"total"`
	Active        int     `json:"active"`
	Departed      int     `json:"departed"`
	AttritionRate float64 `json:"attrition_rate"`
}

type VendorRow struct {
	Vendor        string  `json:"vendor"`
	Total         int     `json:"total"`
	Departed      int     `json:"departed"`
	AttritionRate float64 `json:"attrition_rate"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type DepartmentRetention90 struct {
	Department   string  `json:"department"`
	Measurable   int     `json:"measurable"`
	LeftWithin90 int     `json:"left_within_90"`
	Rate         float64 `json:"rate"`
}

type Retention90Response struct {
	Rate         float64                 `json:"rate"`
	Measurable   int                     `json:"measurable"`
	LeftWithin90 int                     `json:"left_within_90"`
	Departments  []DepartmentRetention90 `json:"departments"`
}

type EarlyLeaversResponse struct {
	Count             int             `json:"count"`
	ShareOfDepartures float64         `json:"share_of_departures"`
	AvgTenureMonths   float64         `json:"avg_tenure_months"`
	Reasons           []CategoryCount `json:"reasons"`
}

type TenureStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

type DepartmentTenure struct {
	Department string  `json:"department"`
	Mean       float64 `json:"mean"`
	Median     float64 `json:"median"`
	Count      int     `json:"count"`
}

type TenureResponse struct {
	Stats       TenureStats        `json:"stats"`
	Departments []DepartmentTenure `json:"departments"`
}

type PositionChanges struct {
	WithData     int             `json:"with_data"`
	Changed      int             `json:"changed"`
	ByDepartment []CategoryCount `json:"by_department"`
}

type DepartmentRate struct {
	Department string  `json:"department"`
	Rate       float64 `json:"rate"`
}

type ProbationBreakdown struct {
	Counts        []CategoryCount  `json:"counts"`
	DeptPassRates []DepartmentRate `json:"dept_pass_rates"`
}

type WorkforceResponse struct {
	Vendors         []VendorRow     `json:"vendors"`
	PositionChanges PositionChanges `json:"position_changes"`
}

type AttritionResponse struct {
	ExitTypes    []CategoryCount      `json:"exit_types"`
	ExitReasons  []CategoryCount      `json:"exit_reasons"`
	Departments  []DepartmentRow      `json:"departments"`
	EarlyLeavers EarlyLeaversResponse `json:"early_leavers"`
}
