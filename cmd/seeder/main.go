// Command seeder fills a timecard database with fake but rule-conforming
// data: weekday hire dates in the past, working-hours timecards on distinct
// recent weekdays. Useful for local development and load experiments.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/brianvoe/gofakeit"

	"github.com/wrkhours/timecard/internal/core/domain"
	"github.com/wrkhours/timecard/internal/shell/store"
)

func main() {
	os.Exit(run())
}

func run() int {
	dsn := flag.String("dsn", "./data/timecard.db", "SQLite DSN to seed")
	company := flag.String("company", "acme", "Company scope for seeded records")
	departments := flag.Int("departments", 3, "Number of departments")
	employees := flag.Int("employees", 5, "Employees per department")
	timecards := flag.Int("timecards", 3, "Timecards per employee (max 5)")
	seed := flag.Int64("seed", 0, "Random seed (0 = time-based)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if *seed != 0 {
		gofakeit.Seed(*seed)
	} else {
		gofakeit.Seed(time.Now().UnixNano())
	}
	if *timecards > 5 {
		// One card per weekday inside the recency window.
		*timecards = 5
	}

	st, err := store.NewSQLiteStore(*dsn)
	if err != nil {
		logger.Error("failed to open store", "dsn", *dsn, "error", err)
		return 1
	}
	defer st.Close()

	ctx := context.Background()
	if err := seedCompany(ctx, st, *company, *departments, *employees, *timecards); err != nil {
		logger.Error("seeding failed", "error", err)
		return 1
	}

	logger.Info("seeding complete",
		"company", *company,
		"departments", *departments,
		"employees_per_department", *employees,
		"timecards_per_employee", *timecards,
	)
	return 0
}

func seedCompany(ctx context.Context, st store.Store, company string, departments, employees, timecards int) error {
	now := time.Now()

	for d := 0; d < departments; d++ {
		dept := &domain.Department{
			Company:  company,
			DeptName: gofakeit.BS(),
			DeptNo:   fmt.Sprintf("%s-d%d", company, d+1),
			Location: gofakeit.City(),
		}
		if err := st.InsertDepartment(ctx, dept); err != nil {
			return fmt.Errorf("insert department %s: %w", dept.DeptNo, err)
		}

		for e := 0; e < employees; e++ {
			emp := &domain.Employee{
				EmpName:  gofakeit.Name(),
				EmpNo:    fmt.Sprintf("%s-e%d-%d", company, d+1, e+1),
				HireDate: domain.Date{Time: pastWeekday(now, 30+gofakeit.Number(0, 3000))},
				Job:      gofakeit.JobTitle(),
				Salary:   float64(gofakeit.Number(30000, 150000)),
				DeptID:   dept.ID,
			}
			if err := st.InsertEmployee(ctx, emp); err != nil {
				return fmt.Errorf("insert employee %s: %w", emp.EmpNo, err)
			}

			day := now
			for t := 0; t < timecards; t++ {
				day = previousWeekday(day)
				start := time.Date(day.Year(), day.Month(), day.Day(),
					6+gofakeit.Number(0, 4), 0, 0, 0, time.Local)
				end := start.Add(time.Duration(1+gofakeit.Number(0, 7)) * time.Hour)
				if end.Hour() > 18 || (end.Hour() == 18 && (end.Minute() > 0 || end.Second() > 0)) {
					end = time.Date(day.Year(), day.Month(), day.Day(), 18, 0, 0, 0, time.Local)
				}

				tc := &domain.Timecard{
					EmpID:     emp.ID,
					StartTime: domain.Timestamp{Time: start},
					EndTime:   domain.Timestamp{Time: end},
				}
				if err := st.InsertTimecard(ctx, tc); err != nil {
					return fmt.Errorf("insert timecard for %s: %w", emp.EmpNo, err)
				}
			}
		}
	}
	return nil
}

// pastWeekday returns a weekday roughly daysAgo in the past, shifted
// backward off Saturday or Sunday.
func pastWeekday(now time.Time, daysAgo int) time.Time {
	d := now.AddDate(0, 0, -daysAgo)
	for domain.IsWeekend(d) {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// previousWeekday returns the closest weekday strictly before the given day.
func previousWeekday(day time.Time) time.Time {
	d := day.AddDate(0, 0, -1)
	for domain.IsWeekend(d) {
		d = d.AddDate(0, 0, -1)
	}
	return d
}
