// Package rules implements the temporal business rule engine for timecards
// and hire dates. All functions are pure: the caller supplies the current
// time and any repository state the rules need.
package rules

import (
	"time"

	"github.com/wrkhours/timecard/internal/core/apperr"
	"github.com/wrkhours/timecard/internal/core/domain"
)

// Working-hour window boundaries. 18:00:00 exactly is the single permitted
// instant at hour eighteen.
const (
	windowOpenHour  = 6
	windowCloseHour = 18
)

// MaxStartAge is the recency window: a timecard may start at most this many
// whole days before the current moment.
const MaxStartAge = 7

// MinDuration is the minimum same-day working interval.
const MinDuration = time.Hour

// =============================================================================
// Timecard Rules
// =============================================================================

// CheckTimecard classifies a proposed (start, end) pair against the fixed
// rule chain; the first failing rule wins. existing holds the employee's
// current timecards and feeds the duplicate-day rule only.
//
// Order: duplicate-day, recency, duration/same-day, future-dated, weekday,
// working-hour window. The ordering and boundary conditions are contractual.
func CheckTimecard(now, start, end time.Time, existing []domain.Timecard) error {
	// "Exiting" is a long-standing typo clients match on; keep it.
	for _, tc := range existing {
		if domain.SameCalendarDay(tc.StartTime.Time, start) {
			return apperr.Conflict("start_time", "Exiting record with same start day")
		}
	}

	// Whole days by truncating division, not calendar days. A start in the
	// future yields a negative difference and passes; rule four catches it.
	if now.Sub(start)/(24*time.Hour) > MaxStartAge {
		return apperr.Rule("recency",
			"start_time should be upto a week older than current date")
	}

	if end.Sub(start) < MinDuration || !domain.SameCalendarDay(start, end) {
		return apperr.Rule("duration",
			"end_time should be atleast 1 hour greater than the start_time on same day")
	}

	if start.After(now) {
		return apperr.Rule("future",
			"start_time should not be a future date")
	}

	if domain.IsWeekend(start) || domain.IsWeekend(end) {
		return apperr.Rule("weekday",
			"start_time and end_time should not be a saturday or sunday")
	}

	if outsideWindow(start) || outsideWindow(end) {
		return apperr.Rule("window",
			"start_time and end_time should be in between 06:00:00 and 18:00:00 inclusive")
	}

	return nil
}

// outsideWindow reports whether the instant falls outside [06:00:00,
// 18:00:00]. Hour 18 is rejected unless minutes and seconds are both zero.
func outsideWindow(t time.Time) bool {
	h, m, s := t.Clock()
	if h < windowOpenHour {
		return true
	}
	return h >= windowCloseHour && !(h == windowCloseHour && m == 0 && s == 0)
}

// =============================================================================
// Hire Date Rules
// =============================================================================

// CheckHireDate rejects a hire date in the future or on a weekend.
func CheckHireDate(now, hire time.Time) error {
	if hire.After(now) {
		return apperr.Rule("future",
			"hire_date should not be a future date")
	}
	if domain.IsWeekend(hire) {
		return apperr.Rule("weekday",
			"hire_date should not be a saturday or sunday")
	}
	return nil
}
