// Package domain contains the core entity types and their wire encodings.
// This is part of the functional core - no I/O happens here.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// =============================================================================
// Wire Date Formats
// =============================================================================

// Go layouts for the two wire formats. Client-facing messages refer to the
// formats by their Java-style names ("yyyy-MM-dd"), kept in the *Name
// constants for compatibility with the original service.
const (
	DateLayout     = "2006-01-02"
	DateLayoutName = "yyyy-MM-dd"

	TimestampLayout     = "2006-01-02 15:04:05"
	TimestampLayoutName = "yyyy-MM-dd HH:mm:ss"
)

// Date is a calendar date encoded as yyyy-MM-dd on the wire.
type Date struct {
	time.Time
}

// NewDate builds a Date from a time, truncated to the calendar day.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

// ParseDate parses a yyyy-MM-dd wire string.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// Timestamp is an instant encoded as yyyy-MM-dd HH:mm:ss on the wire.
type Timestamp struct {
	time.Time
}

// ParseTimestamp parses a yyyy-MM-dd HH:mm:ss wire string.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.ParseInLocation(TimestampLayout, s, time.Local)
	if err != nil {
		return Timestamp{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return Timestamp{t}, nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(TimestampLayout) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t Timestamp) String() string {
	return t.Format(TimestampLayout)
}

// SameCalendarDay reports whether two instants fall on the same
// day, month and year.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsWeekend reports whether the instant falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// =============================================================================
// Entities
// =============================================================================

// Department is an organizational unit scoped under a company.
// DeptNo is the user-facing business key, unique within the company.
type Department struct {
	ID       int    `json:"dept_id"`
	Company  string `json:"company"`
	DeptName string `json:"dept_name"`
	DeptNo   string `json:"dept_no"`
	Location string `json:"location"`
}

// Employee belongs to a department and optionally reports to a manager.
// MngID of zero means no manager; ids start at 1 so zero never collides
// with a real record.
type Employee struct {
	ID       int     `json:"emp_id"`
	EmpName  string  `json:"emp_name"`
	EmpNo    string  `json:"emp_no"`
	HireDate Date    `json:"hire_date"`
	Job      string  `json:"job"`
	Salary   float64 `json:"salary"`
	DeptID   int     `json:"dept_id"`
	MngID    int     `json:"mng_id"`
}

// Timecard records one working interval for an employee. At most one
// timecard may exist per employee per calendar day of StartTime.
type Timecard struct {
	ID        int       `json:"timecard_id"`
	EmpID     int       `json:"emp_id"`
	StartTime Timestamp `json:"start_time"`
	EndTime   Timestamp `json:"end_time"`
}
