package employee_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/bootstrap"
	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/dataset"
	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/employee"
	employeeerrors "github.com/ahmedalsadeqhr/HR-Dashboard/internal/employee/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store; failWrites makes every save fail so
// commit rollback behavior can be exercised.
type memStore struct {
	table      *dataset.RawTable
	failWrites bool
	writes     int
}

func (m *memStore) Read(_ context.Context) (*dataset.RawTable, error) {
	if m.table == nil {
		return nil, errors.New("no data")
	}
	return m.table, nil
}

func (m *memStore) Write(_ context.Context, t *dataset.RawTable) error {
	if m.failWrites {
		return errors.New("disk full")
	}
	m.writes++
	m.table = t
	return nil
}

func (m *memStore) Source() string { return "mem" }

type nopAudit struct{ events []bootstrap.AuditLog }

func (n *nopAudit) Log(_ context.Context, e bootstrap.AuditLog) { n.events = append(n.events, e) }

func seedTable() *dataset.RawTable {
	return &dataset.RawTable{
		Headers: []string{
			"Full Name", "Gender", "Department", "Position", "Employee Status",
			"Join Date", "Exit Date", "Exit Type", "Exit Reason Category", "PS ID",
		},
		Rows: [][]string{
			{"Amina Hassan", "F", "Operations", "Agent", "Active", "2024-08-01", "", "", "", "PS-001"},
			{"Omar Said", "M", "Operations", "Agent", "Departed", "2024-02-01", "2024-08-01", "Resigned", "Salary", "PS-002"},
		},
	}
}

func setup(t *testing.T) (employee.Service, *memStore, *nopAudit) {
	t.Helper()
	store := &memStore{table: seedTable()}
	audit := &nopAudit{}
	svc := employee.NewService(store, audit)
	_, err := svc.Reload(context.Background())
	require.NoError(t, err)
	return svc, store, audit
}

func TestEmployeeService_Reload(t *testing.T) {
	ctx := context.Background()

	t.Run("loads and processes the table", func(t *testing.T) {
		svc, _, _ := setup(t)
		assert.Equal(t, 2, svc.Snapshot().Len())
	})

	t.Run("read failure surfaces", func(t *testing.T) {
		svc := employee.NewService(&memStore{}, &nopAudit{})
		_, err := svc.Reload(ctx)
		assert.Error(t, err)
	})

	t.Run("schema failure surfaces", func(t *testing.T) {
		store := &memStore{table: &dataset.RawTable{Headers: []string{"Gender"}}}
		svc := employee.NewService(store, &nopAudit{})
		_, err := svc.Reload(ctx)
		assert.Error(t, err)
	})
}

func TestEmployeeService_List(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	t.Run("no filter returns everything", func(t *testing.T) {
		out, total, err := svc.List(ctx, dataset.Filter{}, "")
		require.NoError(t, err)
		assert.Len(t, out, 2)
		assert.Equal(t, 2, total)
	})

	t.Run("status filter", func(t *testing.T) {
		out, total, err := svc.List(ctx, dataset.Filter{Status: dataset.StatusDeparted}, "")
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, 2, total)
		assert.Equal(t, "Omar Said", out[0].FullName)
	})

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		out, _, err := svc.List(ctx, dataset.Filter{}, "amina")
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "Amina Hassan", out[0].FullName)
	})

	t.Run("search matches external id columns", func(t *testing.T) {
		out, _, err := svc.List(ctx, dataset.Filter{}, "ps-002")
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "Omar Said", out[0].FullName)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	t.Run("malformed id", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("found", func(t *testing.T) {
		out, _, err := svc.List(ctx, dataset.Filter{}, "amina")
		require.NoError(t, err)
		require.Len(t, out, 1)

		got, err := svc.GetByID(ctx, out[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "Amina Hassan", got.FullName)
	})
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("adds a row and persists it", func(t *testing.T) {
		svc, store, audit := setup(t)
		resp, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			FullName:   "Sara Mahmoud",
			Gender:     "F",
			Department: "Finance",
			Position:   "Analyst",
			Status:     dataset.StatusActive,
			JoinDate:   "2026-01-01",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		require.NotNil(t, resp.TenureMonths)
		assert.Greater(t, *resp.TenureMonths, 0.0)

		assert.Equal(t, 3, svc.Snapshot().Len())
		assert.Len(t, store.table.Rows, 3)
		require.Len(t, audit.events, 1)
		assert.Equal(t, "EMPLOYEE_CREATED", audit.events[0].Action)
	})

	t.Run("departed without exit date rejected", func(t *testing.T) {
		svc, _, _ := setup(t)
		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			FullName:   "X",
			Gender:     "M",
			Department: "Ops",
			Position:   "Agent",
			Status:     dataset.StatusDeparted,
			JoinDate:   "2025-01-01",
			ExitType:   dataset.ExitResigned,
		})
		assert.ErrorIs(t, err, employeeerrors.ErrExitDateRequired)
	})

	t.Run("failed save leaves everything untouched", func(t *testing.T) {
		svc, store, _ := setup(t)
		store.failWrites = true
		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			FullName:   "Ghost",
			Gender:     "M",
			Department: "Ops",
			Position:   "Agent",
			Status:     dataset.StatusActive,
			JoinDate:   "2026-01-01",
		})
		assert.Error(t, err)
		assert.Equal(t, 2, svc.Snapshot().Len())
		assert.Len(t, store.table.Rows, 2)
	})

	t.Run("before any reload", func(t *testing.T) {
		svc := employee.NewService(&memStore{}, &nopAudit{})
		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			FullName:   "X",
			Gender:     "M",
			Department: "Ops",
			Position:   "Agent",
			Status:     dataset.StatusActive,
			JoinDate:   "2026-01-01",
		})
		assert.ErrorIs(t, err, employeeerrors.ErrDatasetNotLoaded)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("marks an employee departed and rederives", func(t *testing.T) {
		svc, store, audit := setup(t)
		out, _, err := svc.List(ctx, dataset.Filter{}, "amina")
		require.NoError(t, err)
		id := out[0].ID

		status := dataset.StatusDeparted
		exitDate := "2026-02-01"
		exitType := dataset.ExitResigned
		resp, err := svc.Update(ctx, id, employee.UpdateEmployeeRequest{
			Status:   &status,
			ExitDate: &exitDate,
			ExitType: &exitType,
		})
		require.NoError(t, err)
		assert.Equal(t, dataset.StatusDeparted, resp.Status)
		// Tenure now runs join to exit, 2024-08-01 to 2026-02-01.
		require.NotNil(t, resp.TenureMonths)
		assert.InDelta(t, 18.0, *resp.TenureMonths, 0.2)

		assert.Equal(t, 1, store.writes)
		require.Len(t, audit.events, 1)
		assert.Equal(t, "EMPLOYEE_UPDATED", audit.events[0].Action)
	})

	t.Run("failed save keeps the old record", func(t *testing.T) {
		svc, store, _ := setup(t)
		out, _, err := svc.List(ctx, dataset.Filter{}, "amina")
		require.NoError(t, err)
		id := out[0].ID

		store.failWrites = true
		dept := "Finance"
		_, err = svc.Update(ctx, id, employee.UpdateEmployeeRequest{Department: &dept})
		assert.Error(t, err)

		got, err := svc.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Operations", got.Department)
	})

	t.Run("failed save leaves derived fields untouched", func(t *testing.T) {
		svc, store, _ := setup(t)
		out, _, err := svc.List(ctx, dataset.Filter{}, "amina")
		require.NoError(t, err)
		id := out[0].ID
		before, err := svc.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, before.TenureMonths)

		// Re-derivation of the rejected candidate must not leak into the
		// published snapshot, even though it ran before the write failed.
		store.failWrites = true
		status := dataset.StatusDeparted
		exitDate := "2025-01-01"
		exitType := dataset.ExitResigned
		_, err = svc.Update(ctx, id, employee.UpdateEmployeeRequest{
			Status:   &status,
			ExitDate: &exitDate,
			ExitType: &exitType,
		})
		assert.Error(t, err)

		after, err := svc.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, dataset.StatusActive, after.Status)
		require.NotNil(t, after.TenureMonths)
		assert.Equal(t, *before.TenureMonths, *after.TenureMonths)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, _, _ := setup(t)
		dept := "Finance"
		_, err := svc.Update(ctx, "00000000-0000-0000-0000-000000000000", employee.UpdateEmployeeRequest{Department: &dept})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the row everywhere", func(t *testing.T) {
		svc, store, audit := setup(t)
		out, _, err := svc.List(ctx, dataset.Filter{}, "omar")
		require.NoError(t, err)
		id := out[0].ID

		require.NoError(t, svc.Delete(ctx, id))
		assert.Equal(t, 1, svc.Snapshot().Len())
		assert.Len(t, store.table.Rows, 1)
		require.Len(t, audit.events, 1)
		assert.Equal(t, "EMPLOYEE_DELETED", audit.events[0].Action)

		_, err = svc.GetByID(ctx, id)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("failed save keeps the row", func(t *testing.T) {
		svc, store, _ := setup(t)
		out, _, err := svc.List(ctx, dataset.Filter{}, "omar")
		require.NoError(t, err)

		store.failWrites = true
		assert.Error(t, svc.Delete(ctx, out[0].ID))
		assert.Equal(t, 2, svc.Snapshot().Len())
	})
}

// Analytics readers walk Snapshot() without holding the service lock, so
// a concurrent update must never write into records a snapshot still
// points at. Run with -race to catch shared-struct mutation.
func TestEmployeeService_SnapshotIsolation(t *testing.T) {
	ctx := context.Background()

	svc, _, _ := setup(t)
	out, _, err := svc.List(ctx, dataset.Filter{}, "amina")
	require.NoError(t, err)
	id := out[0].ID

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		var sink float64
		for {
			select {
			case <-done:
				return
			default:
			}
			for _, e := range svc.Snapshot().Employees {
				sink += e.Derived.TenureMonths
				sink += float64(e.Derived.Age)
			}
		}
	}()

	for i := 0; i < 100; i++ {
		dept := "Department " + strconv.Itoa(i)
		_, err := svc.Update(ctx, id, employee.UpdateEmployeeRequest{Department: &dept})
		require.NoError(t, err)
	}
	close(done)
	wg.Wait()

	got, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Department 99", got.Department)
}
