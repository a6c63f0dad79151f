package analytics

import (
	"time"

	"go.uber.org/zap"

	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/dataset"
)

// DataProvider hands over the current canonical Employee Record Table.
// The employee session service satisfies this.
type DataProvider interface {
	Snapshot() *dataset.Dataset
}

// Service recomputes every analysis from scratch on each call: the
// dataset is small enough that a full batch pass per request is
// simpler and always consistent with the latest edits.
type Service interface {
	Report(f dataset.Filter) Summary
	SummaryText(f dataset.Filter) string
	Cohorts(f dataset.Filter) []CohortRow
	Managers(f dataset.Filter) []ManagerAttritionRow
	Survival(f dataset.Filter) SurvivalResponse
	Risk(f dataset.Filter) RiskSegments
	Turnover(f dataset.Filter) TurnoverResponse
	Trends(f dataset.Filter) TrendsResponse
	Departments(f dataset.Filter) []DepartmentRow
	Workforce(f dataset.Filter) WorkforceResponse
	Attrition(f dataset.Filter) AttritionResponse
	Tenure(f dataset.Filter) TenureResponse
	Probation(f dataset.Filter) ProbationBreakdown
	Retention90(f dataset.Filter) Retention90Response
}

type service struct {
	provider DataProvider
	policy   TurnoverPolicy
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(provider DataProvider, policy TurnoverPolicy, logger ...*zap.Logger) Service {
	l := zap.L().Named("analytics.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("analytics.service")
	}
	return &service{
		provider: provider,
		policy:   policy,
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) subset(f dataset.Filter) *dataset.Dataset {
	return s.provider.Snapshot().Filter(f)
}

func (s *service) Report(f dataset.Filter) Summary {
	return Summarize(s.subset(f), s.now())
}

func (s *service) SummaryText(f dataset.Filter) string {
	full := s.provider.Snapshot()
	return BuildSummaryReport(full, full.Filter(f), s.now())
}

func (s *service) Cohorts(f dataset.Filter) []CohortRow {
	return CohortRetention(s.subset(f))
}

func (s *service) Managers(f dataset.Filter) []ManagerAttritionRow {
	return ManagerAttrition(s.subset(f))
}

func (s *service) Survival(f dataset.Filter) SurvivalResponse {
	sub := s.subset(f)
	return SurvivalResponse{
		Overall:     SurvivalCurve(sub, maxSurvivalMonths),
		Departments: SurvivalByDepartment(sub),
	}
}

func (s *service) Risk(f dataset.Filter) RiskSegments {
	return Risks(s.subset(f))
}

func (s *service) Turnover(f dataset.Filter) TurnoverResponse {
	return TurnoverResponse{
		TurnoverBreakdown:  Turnover(s.subset(f), s.policy),
		VoluntaryExitTypes: s.policy.VoluntaryExitTypes,
	}
}

func (s *service) Trends(f dataset.Filter) TrendsResponse {
	sub := s.subset(f)
	return TrendsResponse{
		HiresByMonth:    HiresByMonth(sub),
		ExitsByMonth:    ExitsByMonth(sub),
		HeadcountByYear: HeadcountByYear(sub),
		HireExitRatio:   HireExitRatio(sub),
	}
}

func (s *service) Departments(f dataset.Filter) []DepartmentRow {
	return DepartmentBreakdown(s.subset(f))
}

func (s *service) Workforce(f dataset.Filter) WorkforceResponse {
	sub := s.subset(f)
	return WorkforceResponse{
		Vendors:         VendorBreakdown(sub),
		PositionChanges: PositionChangeStats(sub),
	}
}

func (s *service) Attrition(f dataset.Filter) AttritionResponse {
	sub := s.subset(f)
	return AttritionResponse{
		ExitTypes:    ExitTypeCounts(sub),
		ExitReasons:  ExitReasonCounts(sub),
		Departments:  DepartmentBreakdown(sub),
		EarlyLeavers: EarlyLeavers(sub),
	}
}

func (s *service) Tenure(f dataset.Filter) TenureResponse {
	return TenureDistribution(s.subset(f))
}

func (s *service) Probation(f dataset.Filter) ProbationBreakdown {
	return ProbationStats(s.subset(f))
}

func (s *service) Retention90(f dataset.Filter) Retention90Response {
	return NewHireRetention90(s.subset(f), s.now())
}
