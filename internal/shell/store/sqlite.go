package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/wrkhours/timecard/internal/core/domain"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// =============================================================================
// Executor Interface - Shared by DB and Transaction
// =============================================================================

// executor abstracts database operations that can be performed on both
// a database connection and a transaction.
type executor interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// =============================================================================
// SQLiteStore
// =============================================================================

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore creates a new SQLite store and runs migrations.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite3", dsn+"?_foreign_keys=on")
	if err != nil {
		return nil, NewStoreError("NewSQLiteStore", "", "failed to open database", ErrConnectionFailed)
	}

	// SQLite allows one writer; a single pooled connection also keeps
	// :memory: databases from splitting across connections.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, NewStoreError("NewSQLiteStore", "", "failed to ping database", ErrConnectionFailed)
	}

	if err := runMigrations(db.DB); err != nil {
		db.Close()
		return nil, NewStoreError("NewSQLiteStore", "", err.Error(), ErrMigrationFailed)
	}

	return &SQLiteStore{db: db}, nil
}

// runMigrations runs database migrations using embedded SQL files.
func runMigrations(db *sql.DB) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// =============================================================================
// Row Types
// =============================================================================

type departmentRow struct {
	ID       int    `db:"id"`
	Company  string `db:"company"`
	DeptName string `db:"dept_name"`
	DeptNo   string `db:"dept_no"`
	Location string `db:"location"`
}

func (r departmentRow) toDomain() domain.Department {
	return domain.Department{
		ID:       r.ID,
		Company:  r.Company,
		DeptName: r.DeptName,
		DeptNo:   r.DeptNo,
		Location: r.Location,
	}
}

type employeeRow struct {
	ID       int     `db:"id"`
	EmpName  string  `db:"emp_name"`
	EmpNo    string  `db:"emp_no"`
	HireDate string  `db:"hire_date"`
	Job      string  `db:"job"`
	Salary   float64 `db:"salary"`
	DeptID   int     `db:"dept_id"`
	MngID    int     `db:"mng_id"`
}

func (r employeeRow) toDomain() (domain.Employee, error) {
	hireDate, err := domain.ParseDate(r.HireDate)
	if err != nil {
		return domain.Employee{}, err
	}
	return domain.Employee{
		ID:       r.ID,
		EmpName:  r.EmpName,
		EmpNo:    r.EmpNo,
		HireDate: hireDate,
		Job:      r.Job,
		Salary:   r.Salary,
		DeptID:   r.DeptID,
		MngID:    r.MngID,
	}, nil
}

type timecardRow struct {
	ID        int    `db:"id"`
	EmpID     int    `db:"emp_id"`
	StartTime string `db:"start_time"`
	EndTime   string `db:"end_time"`
}

func (r timecardRow) toDomain() (domain.Timecard, error) {
	start, err := domain.ParseTimestamp(r.StartTime)
	if err != nil {
		return domain.Timecard{}, err
	}
	end, err := domain.ParseTimestamp(r.EndTime)
	if err != nil {
		return domain.Timecard{}, err
	}
	return domain.Timecard{
		ID:        r.ID,
		EmpID:     r.EmpID,
		StartTime: start,
		EndTime:   end,
	}, nil
}

// =============================================================================
// Department Operations
// =============================================================================

func (s *SQLiteStore) GetDepartment(ctx context.Context, company string, deptID int) (*domain.Department, error) {
	return getDepartment(ctx, s.db, company, deptID)
}

func (s *SQLiteStore) GetAllDepartments(ctx context.Context, company string) ([]domain.Department, error) {
	return getAllDepartments(ctx, s.db, company)
}

func (s *SQLiteStore) GetDepartmentByNo(ctx context.Context, company, deptNo string) (*domain.Department, error) {
	return getDepartmentByNo(ctx, s.db, company, deptNo)
}

func (s *SQLiteStore) InsertDepartment(ctx context.Context, dept *domain.Department) error {
	return insertDepartment(ctx, s.db, dept)
}

func (s *SQLiteStore) UpdateDepartment(ctx context.Context, dept *domain.Department) error {
	return updateDepartment(ctx, s.db, dept)
}

func (s *SQLiteStore) DeleteDepartment(ctx context.Context, company string, deptID int) (int, error) {
	return deleteDepartment(ctx, s.db, company, deptID)
}

// =============================================================================
// Employee Operations
// =============================================================================

func (s *SQLiteStore) GetEmployee(ctx context.Context, empID int) (*domain.Employee, error) {
	return getEmployee(ctx, s.db, empID)
}

func (s *SQLiteStore) GetAllEmployees(ctx context.Context, company string) ([]domain.Employee, error) {
	return getAllEmployees(ctx, s.db, company)
}

func (s *SQLiteStore) GetEmployeeByNo(ctx context.Context, company, empNo string) (*domain.Employee, error) {
	return getEmployeeByNo(ctx, s.db, company, empNo)
}

func (s *SQLiteStore) CountEmployees(ctx context.Context, company string) (int, error) {
	return countEmployees(ctx, s.db, company)
}

func (s *SQLiteStore) InsertEmployee(ctx context.Context, emp *domain.Employee) error {
	return insertEmployee(ctx, s.db, emp)
}

func (s *SQLiteStore) UpdateEmployee(ctx context.Context, emp *domain.Employee) error {
	return updateEmployee(ctx, s.db, emp)
}

func (s *SQLiteStore) DeleteEmployee(ctx context.Context, empID int) (int, error) {
	return deleteEmployee(ctx, s.db, empID)
}

// =============================================================================
// Timecard Operations
// =============================================================================

func (s *SQLiteStore) GetTimecard(ctx context.Context, timecardID int) (*domain.Timecard, error) {
	return getTimecard(ctx, s.db, timecardID)
}

func (s *SQLiteStore) GetAllTimecards(ctx context.Context, empID int) ([]domain.Timecard, error) {
	return getAllTimecards(ctx, s.db, empID)
}

func (s *SQLiteStore) InsertTimecard(ctx context.Context, tc *domain.Timecard) error {
	return insertTimecard(ctx, s.db, tc)
}

func (s *SQLiteStore) UpdateTimecard(ctx context.Context, tc *domain.Timecard) error {
	return updateTimecard(ctx, s.db, tc)
}

func (s *SQLiteStore) DeleteTimecard(ctx context.Context, timecardID int) (int, error) {
	return deleteTimecard(ctx, s.db, timecardID)
}

// =============================================================================
// Transaction Support
// =============================================================================

func (s *SQLiteStore) WithTx(ctx context.Context, fn func(Store) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return NewStoreError("WithTx", "", "failed to begin transaction", ErrTxFailed)
	}

	txS := &txSQLiteStore{tx: tx}

	if err := fn(txS); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return NewStoreError("WithTx", "", fmt.Sprintf("rollback failed after error: %v", err), ErrTxFailed)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return NewStoreError("WithTx", "", "failed to commit transaction", ErrTxFailed)
	}

	return nil
}

// =============================================================================
// Transaction Store
// =============================================================================

// txSQLiteStore implements Store within a transaction.
type txSQLiteStore struct {
	tx *sqlx.Tx
}

func (s *txSQLiteStore) GetDepartment(ctx context.Context, company string, deptID int) (*domain.Department, error) {
	return getDepartment(ctx, s.tx, company, deptID)
}

func (s *txSQLiteStore) GetAllDepartments(ctx context.Context, company string) ([]domain.Department, error) {
	return getAllDepartments(ctx, s.tx, company)
}

func (s *txSQLiteStore) GetDepartmentByNo(ctx context.Context, company, deptNo string) (*domain.Department, error) {
	return getDepartmentByNo(ctx, s.tx, company, deptNo)
}

func (s *txSQLiteStore) InsertDepartment(ctx context.Context, dept *domain.Department) error {
	return insertDepartment(ctx, s.tx, dept)
}

func (s *txSQLiteStore) UpdateDepartment(ctx context.Context, dept *domain.Department) error {
	return updateDepartment(ctx, s.tx, dept)
}

func (s *txSQLiteStore) DeleteDepartment(ctx context.Context, company string, deptID int) (int, error) {
	return deleteDepartment(ctx, s.tx, company, deptID)
}

func (s *txSQLiteStore) GetEmployee(ctx context.Context, empID int) (*domain.Employee, error) {
	return getEmployee(ctx, s.tx, empID)
}

func (s *txSQLiteStore) GetAllEmployees(ctx context.Context, company string) ([]domain.Employee, error) {
	return getAllEmployees(ctx, s.tx, company)
}

func (s *txSQLiteStore) GetEmployeeByNo(ctx context.Context, company, empNo string) (*domain.Employee, error) {
	return getEmployeeByNo(ctx, s.tx, company, empNo)
}

func (s *txSQLiteStore) CountEmployees(ctx context.Context, company string) (int, error) {
	return countEmployees(ctx, s.tx, company)
}

func (s *txSQLiteStore) InsertEmployee(ctx context.Context, emp *domain.Employee) error {
	return insertEmployee(ctx, s.tx, emp)
}

func (s *txSQLiteStore) UpdateEmployee(ctx context.Context, emp *domain.Employee) error {
	return updateEmployee(ctx, s.tx, emp)
}

func (s *txSQLiteStore) DeleteEmployee(ctx context.Context, empID int) (int, error) {
	return deleteEmployee(ctx, s.tx, empID)
}

func (s *txSQLiteStore) GetTimecard(ctx context.Context, timecardID int) (*domain.Timecard, error) {
	return getTimecard(ctx, s.tx, timecardID)
}

func (s *txSQLiteStore) GetAllTimecards(ctx context.Context, empID int) ([]domain.Timecard, error) {
	return getAllTimecards(ctx, s.tx, empID)
}

func (s *txSQLiteStore) InsertTimecard(ctx context.Context, tc *domain.Timecard) error {
	return insertTimecard(ctx, s.tx, tc)
}

func (s *txSQLiteStore) UpdateTimecard(ctx context.Context, tc *domain.Timecard) error {
	return updateTimecard(ctx, s.tx, tc)
}

func (s *txSQLiteStore) DeleteTimecard(ctx context.Context, timecardID int) (int, error) {
	return deleteTimecard(ctx, s.tx, timecardID)
}

func (s *txSQLiteStore) WithTx(ctx context.Context, fn func(Store) error) error {
	// Already in a transaction, just run the function
	return fn(s)
}

func (s *txSQLiteStore) Close() error {
	// No-op for tx store
	return nil
}

// =============================================================================
// Shared Implementation Functions
// =============================================================================

func getDepartment(ctx context.Context, exec executor, company string, deptID int) (*domain.Department, error) {
	var row departmentRow
	err := exec.GetContext(ctx, &row,
		"SELECT id, company, dept_name, dept_no, location FROM departments WHERE company = ? AND id = ?",
		company, deptID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetDepartment", "department", "not found", ErrNotFound)
		}
		return nil, NewStoreError("GetDepartment", "department", err.Error(), err)
	}
	dept := row.toDomain()
	return &dept, nil
}

func getAllDepartments(ctx context.Context, exec executor, company string) ([]domain.Department, error) {
	var rows []departmentRow
	err := exec.SelectContext(ctx, &rows,
		"SELECT id, company, dept_name, dept_no, location FROM departments WHERE company = ? ORDER BY id",
		company)
	if err != nil {
		return nil, NewStoreError("GetAllDepartments", "department", err.Error(), err)
	}
	depts := make([]domain.Department, 0, len(rows))
	for _, r := range rows {
		depts = append(depts, r.toDomain())
	}
	return depts, nil
}

func getDepartmentByNo(ctx context.Context, exec executor, company, deptNo string) (*domain.Department, error) {
	var row departmentRow
	err := exec.GetContext(ctx, &row,
		"SELECT id, company, dept_name, dept_no, location FROM departments WHERE company = ? AND dept_no = ?",
		company, deptNo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetDepartmentByNo", "department", "not found", ErrNotFound)
		}
		return nil, NewStoreError("GetDepartmentByNo", "department", err.Error(), err)
	}
	dept := row.toDomain()
	return &dept, nil
}

func insertDepartment(ctx context.Context, exec executor, dept *domain.Department) error {
	result, err := exec.NamedExecContext(ctx,
		`INSERT INTO departments (company, dept_name, dept_no, location)
		 VALUES (:company, :dept_name, :dept_no, :location)`,
		map[string]any{
			"company":   dept.Company,
			"dept_name": dept.DeptName,
			"dept_no":   dept.DeptNo,
			"location":  dept.Location,
		})
	if err != nil {
		if isUniqueViolation(err) {
			return NewStoreError("InsertDepartment", "department", "duplicate dept_no", ErrDuplicateKey)
		}
		return NewStoreError("InsertDepartment", "department", err.Error(), err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return NewStoreError("InsertDepartment", "department", err.Error(), err)
	}
	dept.ID = int(id)
	return nil
}

func updateDepartment(ctx context.Context, exec executor, dept *domain.Department) error {
	result, err := exec.NamedExecContext(ctx,
		`UPDATE departments
		 SET company = :company, dept_name = :dept_name, dept_no = :dept_no, location = :location
		 WHERE id = :id`,
		map[string]any{
			"id":        dept.ID,
			"company":   dept.Company,
			"dept_name": dept.DeptName,
			"dept_no":   dept.DeptNo,
			"location":  dept.Location,
		})
	if err != nil {
		if isUniqueViolation(err) {
			return NewStoreError("UpdateDepartment", "department", "duplicate dept_no", ErrDuplicateKey)
		}
		return NewStoreError("UpdateDepartment", "department", err.Error(), err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return NewStoreError("UpdateDepartment", "department", err.Error(), err)
	}
	if affected == 0 {
		return NewStoreError("UpdateDepartment", "department", "not found", ErrNotFound)
	}
	return nil
}

func deleteDepartment(ctx context.Context, exec executor, company string, deptID int) (int, error) {
	result, err := exec.ExecContext(ctx,
		"DELETE FROM departments WHERE company = ? AND id = ?", company, deptID)
	if err != nil {
		return 0, NewStoreError("DeleteDepartment", "department", err.Error(), err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, NewStoreError("DeleteDepartment", "department", err.Error(), err)
	}
	return int(affected), nil
}

func getEmployee(ctx context.Context, exec executor, empID int) (*domain.Employee, error) {
	var row employeeRow
	err := exec.GetContext(ctx, &row,
		`SELECT id, emp_name, emp_no, hire_date, job, salary, dept_id, mng_id
		 FROM employees WHERE id = ?`, empID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetEmployee", "employee", "not found", ErrNotFound)
		}
		return nil, NewStoreError("GetEmployee", "employee", err.Error(), err)
	}
	emp, err := row.toDomain()
	if err != nil {
		return nil, NewStoreError("GetEmployee", "employee", err.Error(), err)
	}
	return &emp, nil
}

func getAllEmployees(ctx context.Context, exec executor, company string) ([]domain.Employee, error) {
	var rows []employeeRow
	err := exec.SelectContext(ctx, &rows,
		`SELECT e.id, e.emp_name, e.emp_no, e.hire_date, e.job, e.salary, e.dept_id, e.mng_id
		 FROM employees e
		 JOIN departments d ON e.dept_id = d.id
		 WHERE d.company = ?
		 ORDER BY e.id`, company)
	if err != nil {
		return nil, NewStoreError("GetAllEmployees", "employee", err.Error(), err)
	}
	emps := make([]domain.Employee, 0, len(rows))
	for _, r := range rows {
		emp, err := r.toDomain()
		if err != nil {
			return nil, NewStoreError("GetAllEmployees", "employee", err.Error(), err)
		}
		emps = append(emps, emp)
	}
	return emps, nil
}

func getEmployeeByNo(ctx context.Context, exec executor, company, empNo string) (*domain.Employee, error) {
	var row employeeRow
	err := exec.GetContext(ctx, &row,
		`SELECT e.id, e.emp_name, e.emp_no, e.hire_date, e.job, e.salary, e.dept_id, e.mng_id
		 FROM employees e
		 JOIN departments d ON e.dept_id = d.id
		 WHERE d.company = ? AND e.emp_no = ?`, company, empNo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetEmployeeByNo", "employee", "not found", ErrNotFound)
		}
		return nil, NewStoreError("GetEmployeeByNo", "employee", err.Error(), err)
	}
	emp, err := row.toDomain()
	if err != nil {
		return nil, NewStoreError("GetEmployeeByNo", "employee", err.Error(), err)
	}
	return &emp, nil
}

func countEmployees(ctx context.Context, exec executor, company string) (int, error) {
	var count int
	err := exec.GetContext(ctx, &count,
		`SELECT COUNT(*)
		 FROM employees e
		 JOIN departments d ON e.dept_id = d.id
		 WHERE d.company = ?`, company)
	if err != nil {
		return 0, NewStoreError("CountEmployees", "employee", err.Error(), err)
	}
	return count, nil
}

func insertEmployee(ctx context.Context, exec executor, emp *domain.Employee) error {
	result, err := exec.NamedExecContext(ctx,
		`INSERT INTO employees (emp_name, emp_no, hire_date, job, salary, dept_id, mng_id)
		 VALUES (:emp_name, :emp_no, :hire_date, :job, :salary, :dept_id, :mng_id)`,
		map[string]any{
			"emp_name":  emp.EmpName,
			"emp_no":    emp.EmpNo,
			"hire_date": emp.HireDate.String(),
			"job":       emp.Job,
			"salary":    emp.Salary,
			"dept_id":   emp.DeptID,
			"mng_id":    emp.MngID,
		})
	if err != nil {
		return NewStoreError("InsertEmployee", "employee", err.Error(), err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return NewStoreError("InsertEmployee", "employee", err.Error(), err)
	}
	emp.ID = int(id)
	return nil
}

func updateEmployee(ctx context.Context, exec executor, emp *domain.Employee) error {
	result, err := exec.NamedExecContext(ctx,
		`UPDATE employees
		 SET emp_name = :emp_name, emp_no = :emp_no, hire_date = :hire_date,
		     job = :job, salary = :salary, dept_id = :dept_id, mng_id = :mng_id
		 WHERE id = :id`,
		map[string]any{
			"id":        emp.ID,
			"emp_name":  emp.EmpName,
			"emp_no":    emp.EmpNo,
			"hire_date": emp.HireDate.String(),
			"job":       emp.Job,
			"salary":    emp.Salary,
			"dept_id":   emp.DeptID,
			"mng_id":    emp.MngID,
		})
	if err != nil {
		return NewStoreError("UpdateEmployee", "employee", err.Error(), err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return NewStoreError("UpdateEmployee", "employee", err.Error(), err)
	}
	if affected == 0 {
		return NewStoreError("UpdateEmployee", "employee", "not found", ErrNotFound)
	}
	return nil
}

func deleteEmployee(ctx context.Context, exec executor, empID int) (int, error) {
	result, err := exec.ExecContext(ctx, "DELETE FROM employees WHERE id = ?", empID)
	if err != nil {
		return 0, NewStoreError("DeleteEmployee", "employee", err.Error(), err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, NewStoreError("DeleteEmployee", "employee", err.Error(), err)
	}
	return int(affected), nil
}

func getTimecard(ctx context.Context, exec executor, timecardID int) (*domain.Timecard, error) {
	var row timecardRow
	err := exec.GetContext(ctx, &row,
		"SELECT id, emp_id, start_time, end_time FROM timecards WHERE id = ?", timecardID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError("GetTimecard", "timecard", "not found", ErrNotFound)
		}
		return nil, NewStoreError("GetTimecard", "timecard", err.Error(), err)
	}
	tc, err := row.toDomain()
	if err != nil {
		return nil, NewStoreError("GetTimecard", "timecard", err.Error(), err)
	}
	return &tc, nil
}

func getAllTimecards(ctx context.Context, exec executor, empID int) ([]domain.Timecard, error) {
	var rows []timecardRow
	err := exec.SelectContext(ctx, &rows,
		"SELECT id, emp_id, start_time, end_time FROM timecards WHERE emp_id = ? ORDER BY id", empID)
	if err != nil {
		return nil, NewStoreError("GetAllTimecards", "timecard", err.Error(), err)
	}
	cards := make([]domain.Timecard, 0, len(rows))
	for _, r := range rows {
		tc, err := r.toDomain()
		if err != nil {
			return nil, NewStoreError("GetAllTimecards", "timecard", err.Error(), err)
		}
		cards = append(cards, tc)
	}
	return cards, nil
}

func insertTimecard(ctx context.Context, exec executor, tc *domain.Timecard) error {
	result, err := exec.NamedExecContext(ctx,
		`INSERT INTO timecards (emp_id, start_time, end_time)
		 VALUES (:emp_id, :start_time, :end_time)`,
		map[string]any{
			"emp_id":     tc.EmpID,
			"start_time": tc.StartTime.String(),
			"end_time":   tc.EndTime.String(),
		})
	if err != nil {
		if isUniqueViolation(err) {
			return NewStoreError("InsertTimecard", "timecard", "duplicate start day", ErrDuplicateKey)
		}
		return NewStoreError("InsertTimecard", "timecard", err.Error(), err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return NewStoreError("InsertTimecard", "timecard", err.Error(), err)
	}
	tc.ID = int(id)
	return nil
}

func updateTimecard(ctx context.Context, exec executor, tc *domain.Timecard) error {
	result, err := exec.NamedExecContext(ctx,
		`UPDATE timecards
		 SET emp_id = :emp_id, start_time = :start_time, end_time = :end_time
		 WHERE id = :id`,
		map[string]any{
			"id":         tc.ID,
			"emp_id":     tc.EmpID,
			"start_time": tc.StartTime.String(),
			"end_time":   tc.EndTime.String(),
		})
	if err != nil {
		if isUniqueViolation(err) {
			return NewStoreError("UpdateTimecard", "timecard", "duplicate start day", ErrDuplicateKey)
		}
		return NewStoreError("UpdateTimecard", "timecard", err.Error(), err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return NewStoreError("UpdateTimecard", "timecard", err.Error(), err)
	}
	if affected == 0 {
		return NewStoreError("UpdateTimecard", "timecard", "not found", ErrNotFound)
	}
	return nil
}

func deleteTimecard(ctx context.Context, exec executor, timecardID int) (int, error) {
	result, err := exec.ExecContext(ctx, "DELETE FROM timecards WHERE id = ?", timecardID)
	if err != nil {
		return 0, NewStoreError("DeleteTimecard", "timecard", err.Error(), err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, NewStoreError("DeleteTimecard", "timecard", err.Error(), err)
	}
	return int(affected), nil
}

// isUniqueViolation reports whether the error is a SQLite UNIQUE
// constraint failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
