package employee

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/bootstrap"
	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/dataset"
	employeeerrors "github.com/ahmedalsadeqhr/HR-Dashboard/internal/employee/errors"
	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/shared/contextutil"
)

// External-ID columns the edit surface searches besides the name.
var searchColumns = []string{"PS ID", "CRM", "Identity number"}

type Service interface {
	List(ctx context.Context, f dataset.Filter, query string) ([]EmployeeResponse, int, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	Reload(ctx context.Context) (int, error)

	// Snapshot hands the current canonical table to the analytics layer.
	Snapshot() *dataset.Dataset
}

type service struct {
	store  dataset.Store
	audit  bootstrap.AuditLogger
	now    func() time.Time
	logger *zap.Logger

	mu      sync.RWMutex
	current *dataset.Dataset

	sf singleflight.Group
}

func NewService(store dataset.Store, audit bootstrap.AuditLogger, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		store:  store,
		audit:  audit,
		now:    time.Now,
		logger: l,
	}
}

// Reload loads and reprocesses the backing table, replacing the whole
// in-memory dataset. Concurrent reloads of the same source collapse
// into a single read.
func (s *service) Reload(ctx context.Context) (int, error) {
	rid := contextutil.GetRequestID(ctx)

	v, err, _ := s.sf.Do(s.store.Source(), func() (any, error) {
		raw, err := s.store.Read(ctx)
		if err != nil {
			return nil, err
		}
		return dataset.Process(raw, s.now())
	})
	if err != nil {
		s.logger.Error("dataset reload failed", zap.String("request_id", rid), zap.Error(err))
		return 0, err
	}

	d := v.(*dataset.Dataset)
	s.mu.Lock()
	s.current = d
	s.mu.Unlock()

	s.logger.Info("dataset reloaded",
		zap.String("request_id", rid),
		zap.String("source", s.store.Source()),
		zap.Int("rows", d.Len()),
	)
	return d.Len(), nil
}

func (s *service) Snapshot() *dataset.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return &dataset.Dataset{}
	}
	return s.current
}

func (s *service) List(ctx context.Context, f dataset.Filter, query string) ([]EmployeeResponse, int, error) {
	d := s.Snapshot()
	sub := d.Filter(f)

	out := make([]EmployeeResponse, 0, sub.Len())
	q := strings.ToLower(strings.TrimSpace(query))
	for _, e := range sub.Employees {
		if q != "" && !matchesQuery(e, q) {
			continue
		}
		out = append(out, mapToResponse(sub, e))
	}
	return out, d.Len(), nil
}

// matchesQuery is a case-insensitive substring match over the name and
// the external-ID columns.
func matchesQuery(e *dataset.Employee, q string) bool {
	if strings.Contains(strings.ToLower(e.FullName), q) {
		return true
	}
	for _, col := range searchColumns {
		if v, ok := e.Extra[col]; ok && strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	d := s.Snapshot()
	for _, e := range d.Employees {
		if e.ID == uid {
			return mapToResponse(d, e), nil
		}
	}
	return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	if req.Status == dataset.StatusDeparted && req.ExitDate == "" {
		return EmployeeResponse{}, employeeerrors.ErrExitDateRequired
	}

	e := &dataset.Employee{
		ID:                 uuid.New(),
		FullName:           req.FullName,
		Gender:             req.Gender,
		Department:         req.Department,
		Position:           req.Position,
		Status:             req.Status,
		ExitType:           req.ExitType,
		ExitReasonCategory: req.ExitReasonCategory,
		JoinDate:           dataset.ParseDate(req.JoinDate),
		ExitDate:           dataset.ParseDate(req.ExitDate),
		BirthdayDate:       dataset.ParseDate(req.BirthdayDate),
		Extra:              map[string]string{},
	}
	if req.Nationality != "" {
		e.Nationality = &req.Nationality
	}
	if req.EmploymentType != "" {
		e.EmploymentType = &req.EmploymentType
	}
	if req.Vendor != "" {
		e.Vendor = &req.Vendor
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return EmployeeResponse{}, employeeerrors.ErrDatasetNotLoaded
	}

	next := s.withEmployees(append(copyEmployees(s.current.Employees), e))
	if err := s.commit(ctx, next); err != nil {
		return EmployeeResponse{}, err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "EMPLOYEE_CREATED",
		Message: "Employee record added",
		Meta:    map[string]any{"id": e.ID.String(), "role": contextutil.GetRole(ctx)},
	})
	return mapToResponse(next, e), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return EmployeeResponse{}, employeeerrors.ErrDatasetNotLoaded
	}

	employees := copyEmployees(s.current.Employees)
	var target *dataset.Employee
	for _, e := range employees {
		if e.ID == uid {
			target = e
			break
		}
	}
	if target == nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	if req.Department != nil {
		target.Department = *req.Department
	}
	if req.Position != nil {
		target.Position = *req.Position
	}
	if req.Status != nil {
		target.Status = *req.Status
	}
	if req.ExitDate != nil {
		target.ExitDate = dataset.ParseDate(*req.ExitDate)
	}
	if req.ExitType != nil {
		target.ExitType = *req.ExitType
	}
	if req.ExitReasonCategory != nil {
		target.ExitReasonCategory = *req.ExitReasonCategory
	}

	next := s.withEmployees(employees)
	if err := s.commit(ctx, next); err != nil {
		return EmployeeResponse{}, err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "EMPLOYEE_UPDATED",
		Message: "Employee record updated",
		Meta:    map[string]any{"id": id, "role": contextutil.GetRole(ctx)},
	})
	return mapToResponse(next, target), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return employeeerrors.ErrDatasetNotLoaded
	}

	employees := copyEmployees(s.current.Employees)
	idx := -1
	for i, e := range employees {
		if e.ID == uid {
			idx = i
			break
		}
	}
	if idx < 0 {
		return employeeerrors.ErrEmployeeNotFound
	}
	employees = append(employees[:idx], employees[idx+1:]...)

	if err := s.commit(ctx, s.withEmployees(employees)); err != nil {
		return err
	}

	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "EMPLOYEE_DELETED",
		Message: "Employee record deleted",
		Meta:    map[string]any{"id": id, "role": contextutil.GetRole(ctx)},
	})
	return nil
}

// withEmployees builds the candidate dataset for a mutation, keeping
// the schema bookkeeping of the current one. Caller holds the lock.
func (s *service) withEmployees(employees []*dataset.Employee) *dataset.Dataset {
	return &dataset.Dataset{
		Employees:  employees,
		Columns:    s.current.Columns,
		Derived:    s.current.Derived,
		Headers:    s.current.Headers,
		NameColumn: s.current.NameColumn,
	}
}

// commit re-derives the candidate dataset, writes it through to the
// store and only then swaps it in. A failed save leaves both the file
// and the in-memory table as they were. Caller holds the lock.
func (s *service) commit(ctx context.Context, next *dataset.Dataset) error {
	dataset.Rederive(next, s.now())
	if err := s.store.Write(ctx, dataset.Export(next)); err != nil {
		s.logger.Error("dataset save failed", zap.Error(err))
		return err
	}
	s.current = next
	return nil
}

// copyEmployees deep-clones every record. Rederiving a candidate
// dataset writes into each Employee, so the candidate must never share
// structs with the published snapshot that readers traverse unlocked.
func copyEmployees(src []*dataset.Employee) []*dataset.Employee {
	out := make([]*dataset.Employee, len(src))
	for i, e := range src {
		out[i] = e.Clone()
	}
	return out
}

func mapToResponse(d *dataset.Dataset, e *dataset.Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                   e.ID.String(),
		FullName:             e.FullName,
		Gender:               e.Gender,
		Nationality:          e.Nationality,
		BirthdayDate:         dataset.FormatDate(e.BirthdayDate),
		Department:           e.Department,
		Position:             e.Position,
		PositionAfterJoining: e.PositionAfterJoining,
		EmploymentType:       e.Derived.EmploymentType,
		Vendor:               e.Vendor,
		Status:               e.Status,
		JoinDate:             dataset.FormatDate(e.JoinDate),
		ExitDate:             dataset.FormatDate(e.ExitDate),
		ExitType:             e.ExitType,
		ExitReasonCategory:   e.ExitReasonCategory,
		ManagerCRM:           e.ManagerCRM,
	}
	if d.Derived.Age {
		age := e.Derived.Age
		resp.Age = &age
	}
	if d.Derived.Tenure {
		tenure := e.Derived.TenureMonths
		resp.TenureMonths = &tenure
	}
	if d.Derived.JoinPeriods {
		year := e.Derived.JoinYear
		resp.JoinYear = &year
		resp.JoinMonth = e.Derived.JoinMonth
		resp.JoinQuarter = e.Derived.JoinQuarter
	}
	if d.Derived.ExitPeriods {
		year := e.Derived.ExitYear
		resp.ExitYear = &year
		resp.ExitMonth = e.Derived.ExitMonth
	}
	if d.Derived.ProbationState {
		resp.ProbationStatus = e.Derived.ProbationState
	}
	return resp
}
