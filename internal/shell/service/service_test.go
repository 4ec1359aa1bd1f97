package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wrkhours/timecard/internal/core/domain"
	"github.com/wrkhours/timecard/internal/shell/store"
)

// Monday 2026-03-02 noon is the pinned "now" for every service test.
var testNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local)

// =============================================================================
// In-Memory Store Stub
// =============================================================================

// memStore is an in-memory Store used by the service tests. It mirrors the
// SQLite store's contract: wrapped ErrNotFound on misses, ErrDuplicateKey
// on unique-key hits, row counts from deletes. WithTx runs the callback
// against the same state; rollback fidelity is covered by the store tests.
type memStore struct {
	depts map[int]*domain.Department
	emps  map[int]*domain.Employee
	cards map[int]*domain.Timecard

	nextDept, nextEmp, nextCard int
}

func newMemStore() *memStore {
	return &memStore{
		depts:    make(map[int]*domain.Department),
		emps:     make(map[int]*domain.Employee),
		cards:    make(map[int]*domain.Timecard),
		nextDept: 1,
		nextEmp:  1,
		nextCard: 1,
	}
}

func (m *memStore) GetDepartment(_ context.Context, company string, deptID int) (*domain.Department, error) {
	if d, ok := m.depts[deptID]; ok && d.Company == company {
		cp := *d
		return &cp, nil
	}
	return nil, store.NewStoreError("GetDepartment", "department", "not found", store.ErrNotFound)
}

func (m *memStore) GetAllDepartments(_ context.Context, company string) ([]domain.Department, error) {
	var out []domain.Department
	for _, d := range m.depts {
		if d.Company == company {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (m *memStore) GetDepartmentByNo(_ context.Context, company, deptNo string) (*domain.Department, error) {
	for _, d := range m.depts {
		if d.Company == company && d.DeptNo == deptNo {
			cp := *d
			return &cp, nil
		}
	}
	return nil, store.NewStoreError("GetDepartmentByNo", "department", "not found", store.ErrNotFound)
}

func (m *memStore) InsertDepartment(_ context.Context, dept *domain.Department) error {
	for _, d := range m.depts {
		if d.Company == dept.Company && d.DeptNo == dept.DeptNo {
			return store.NewStoreError("InsertDepartment", "department", "duplicate", store.ErrDuplicateKey)
		}
	}
	dept.ID = m.nextDept
	m.nextDept++
	cp := *dept
	m.depts[dept.ID] = &cp
	return nil
}

func (m *memStore) UpdateDepartment(_ context.Context, dept *domain.Department) error {
	if _, ok := m.depts[dept.ID]; !ok {
		return store.NewStoreError("UpdateDepartment", "department", "not found", store.ErrNotFound)
	}
	cp := *dept
	m.depts[dept.ID] = &cp
	return nil
}

func (m *memStore) DeleteDepartment(_ context.Context, company string, deptID int) (int, error) {
	if d, ok := m.depts[deptID]; ok && d.Company == company {
		delete(m.depts, deptID)
		return 1, nil
	}
	return 0, nil
}

func (m *memStore) GetEmployee(_ context.Context, empID int) (*domain.Employee, error) {
	if e, ok := m.emps[empID]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, store.NewStoreError("GetEmployee", "employee", "not found", store.ErrNotFound)
}

func (m *memStore) GetAllEmployees(_ context.Context, company string) ([]domain.Employee, error) {
	var out []domain.Employee
	for _, e := range m.emps {
		if d, ok := m.depts[e.DeptID]; ok && d.Company == company {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *memStore) GetEmployeeByNo(_ context.Context, company, empNo string) (*domain.Employee, error) {
	for _, e := range m.emps {
		d, ok := m.depts[e.DeptID]
		if ok && d.Company == company && e.EmpNo == empNo {
			cp := *e
			return &cp, nil
		}
	}
	return nil, store.NewStoreError("GetEmployeeByNo", "employee", "not found", store.ErrNotFound)
}

func (m *memStore) CountEmployees(_ context.Context, company string) (int, error) {
	n := 0
	for _, e := range m.emps {
		if d, ok := m.depts[e.DeptID]; ok && d.Company == company {
			n++
		}
	}
	return n, nil
}

// InsertEmployee carries no uniqueness check: emp_no is only constrained
// per company, which the schema cannot express and the service enforces.
func (m *memStore) InsertEmployee(_ context.Context, emp *domain.Employee) error {
	emp.ID = m.nextEmp
	m.nextEmp++
	cp := *emp
	m.emps[emp.ID] = &cp
	return nil
}

func (m *memStore) UpdateEmployee(_ context.Context, emp *domain.Employee) error {
	if _, ok := m.emps[emp.ID]; !ok {
		return store.NewStoreError("UpdateEmployee", "employee", "not found", store.ErrNotFound)
	}
	cp := *emp
	m.emps[emp.ID] = &cp
	return nil
}

func (m *memStore) DeleteEmployee(_ context.Context, empID int) (int, error) {
	if _, ok := m.emps[empID]; ok {
		delete(m.emps, empID)
		return 1, nil
	}
	return 0, nil
}

func (m *memStore) GetTimecard(_ context.Context, timecardID int) (*domain.Timecard, error) {
	if tc, ok := m.cards[timecardID]; ok {
		cp := *tc
		return &cp, nil
	}
	return nil, store.NewStoreError("GetTimecard", "timecard", "not found", store.ErrNotFound)
}

func (m *memStore) GetAllTimecards(_ context.Context, empID int) ([]domain.Timecard, error) {
	var out []domain.Timecard
	for _, tc := range m.cards {
		if tc.EmpID == empID {
			out = append(out, *tc)
		}
	}
	return out, nil
}

func (m *memStore) InsertTimecard(_ context.Context, tc *domain.Timecard) error {
	for _, other := range m.cards {
		if other.EmpID == tc.EmpID &&
			domain.SameCalendarDay(other.StartTime.Time, tc.StartTime.Time) {
			return store.NewStoreError("InsertTimecard", "timecard", "duplicate", store.ErrDuplicateKey)
		}
	}
	tc.ID = m.nextCard
	m.nextCard++
	cp := *tc
	m.cards[tc.ID] = &cp
	return nil
}

func (m *memStore) UpdateTimecard(_ context.Context, tc *domain.Timecard) error {
	if _, ok := m.cards[tc.ID]; !ok {
		return store.NewStoreError("UpdateTimecard", "timecard", "not found", store.ErrNotFound)
	}
	cp := *tc
	m.cards[tc.ID] = &cp
	return nil
}

func (m *memStore) DeleteTimecard(_ context.Context, timecardID int) (int, error) {
	if _, ok := m.cards[timecardID]; ok {
		delete(m.cards, timecardID)
		return 1, nil
	}
	return 0, nil
}

func (m *memStore) WithTx(_ context.Context, fn func(store.Store) error) error {
	return fn(m)
}

func (m *memStore) Close() error { return nil }

// =============================================================================
// Test Helpers
// =============================================================================

func newTestService(t *testing.T) (*Service, *memStore) {
	t.Helper()
	ms := newMemStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := New(ms, logger).WithClock(func() time.Time { return testNow })
	return svc, ms
}

func seedDepartment(t *testing.T, ms *memStore, company, deptNo string) *domain.Department {
	t.Helper()
	dept := &domain.Department{
		Company:  company,
		DeptName: "Engineering",
		DeptNo:   deptNo,
		Location: "NYC",
	}
	require.NoError(t, ms.InsertDepartment(context.Background(), dept))
	return dept
}

func seedEmployee(t *testing.T, ms *memStore, deptID int, empNo string) *domain.Employee {
	t.Helper()
	emp := &domain.Employee{
		EmpName:  "Jane Doe",
		EmpNo:    empNo,
		HireDate: domain.Date{Time: time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)},
		Job:      "Engineer",
		Salary:   90000,
		DeptID:   deptID,
	}
	require.NoError(t, ms.InsertEmployee(context.Background(), emp))
	return emp
}

func seedTimecard(t *testing.T, ms *memStore, empID int, start time.Time) *domain.Timecard {
	t.Helper()
	tc := &domain.Timecard{
		EmpID:     empID,
		StartTime: domain.Timestamp{Time: start},
		EndTime:   domain.Timestamp{Time: start.Add(8 * time.Hour)},
	}
	require.NoError(t, ms.InsertTimecard(context.Background(), tc))
	return tc
}
