package service

import (
	"context"
	"fmt"

	"github.com/wrkhours/timecard/internal/core/apperr"
	"github.com/wrkhours/timecard/internal/core/domain"
	"github.com/wrkhours/timecard/internal/core/rules"
	"github.com/wrkhours/timecard/internal/core/validation"
)

// =============================================================================
// Timecard Operations
// =============================================================================

// GetTimecard returns one timecard by id.
func (s *Service) GetTimecard(ctx context.Context, timecardID int) (*domain.Timecard, error) {
	if err := validation.ID("timecard_id", timecardID); err != nil {
		return nil, err
	}

	tc, err := s.store.GetTimecard(ctx, timecardID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("timecard_id", msgNoRecord)
		}
		return nil, storeFailure("GetTimecard", err)
	}
	return tc, nil
}

// ListTimecards returns every timecard of the employee. An empty result is
// reported as not found, matching the original service.
func (s *Service) ListTimecards(ctx context.Context, empID int) ([]domain.Timecard, error) {
	if err := validation.ID("emp_id", empID); err != nil {
		return nil, err
	}

	cards, err := s.store.GetAllTimecards(ctx, empID)
	if err != nil {
		return nil, storeFailure("ListTimecards", err)
	}
	if len(cards) == 0 {
		return nil, apperr.NotFound("emp_id", msgNoRecord)
	}
	return cards, nil
}

// CreateTimecard validates and inserts a timecard. The employee must exist
// and the interval must pass the temporal rules against the employee's
// existing cards. The unique day index backs the duplicate-day rule, so a
// concurrent insert that slips past the in-memory scan still fails.
func (s *Service) CreateTimecard(ctx context.Context, in validation.TimecardInput) (*domain.Timecard, error) {
	if err := validation.TimecardInsert(in); err != nil {
		return nil, err
	}
	start, end, err := parseInterval(in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	existing, err := s.timecardContext(ctx, in.EmpID)
	if err != nil {
		return nil, err
	}
	if err := rules.CheckTimecard(s.now(), start.Time, end.Time, existing); err != nil {
		return nil, err
	}

	tc := &domain.Timecard{
		EmpID:     in.EmpID,
		StartTime: start,
		EndTime:   end,
	}
	if err := s.store.InsertTimecard(ctx, tc); err != nil {
		if isDuplicateKey(err) {
			return nil, apperr.Conflict("start_time", "Exiting record with same start day")
		}
		return nil, storeFailure("CreateTimecard", err)
	}
	return tc, nil
}

// UpdateTimecard validates and updates a timecard. The duplicate-day scan
// covers every card of the employee, the target included, so a card cannot
// be re-saved onto its own day; the new interval must land on a fresh day.
// The card must belong to the employee named in the request, checked only
// after every rule has passed.
func (s *Service) UpdateTimecard(ctx context.Context, in validation.TimecardInput) (*domain.Timecard, error) {
	if err := validation.TimecardUpdate(in); err != nil {
		return nil, err
	}
	start, end, err := parseInterval(in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	existing, err := s.timecardContext(ctx, in.EmpID)
	if err != nil {
		return nil, err
	}

	if err := rules.CheckTimecard(s.now(), start.Time, end.Time, existing); err != nil {
		return nil, err
	}

	var tc *domain.Timecard
	for i := range existing {
		if existing[i].ID == in.TimecardID {
			tc = &existing[i]
			break
		}
	}
	if tc == nil {
		return nil, apperr.NotFound("timecard_id",
			fmt.Sprintf("No matching timecard_id %d found", in.TimecardID))
	}

	tc.EmpID = in.EmpID
	tc.StartTime = start
	tc.EndTime = end

	if err := s.store.UpdateTimecard(ctx, tc); err != nil {
		if isDuplicateKey(err) {
			return nil, apperr.Conflict("start_time", "Exiting record with same start day")
		}
		return nil, storeFailure("UpdateTimecard", err)
	}
	return tc, nil
}

// DeleteTimecard removes one timecard. Zero rows means it never existed.
func (s *Service) DeleteTimecard(ctx context.Context, timecardID int) (string, error) {
	if err := validation.ID("timecard_id", timecardID); err != nil {
		return "", err
	}

	rows, err := s.store.DeleteTimecard(ctx, timecardID)
	if err != nil {
		return "", storeFailure("DeleteTimecard", err)
	}
	if rows == 0 {
		return "", apperr.NotFound("timecard_id",
			fmt.Sprintf("Timecard %d does not exist.", timecardID))
	}

	s.logger.Info("timecard deleted", "timecard_id", timecardID)
	return fmt.Sprintf("Timecard %d deleted.", timecardID), nil
}

// timecardContext resolves the owning employee and loads its cards for the
// temporal rules.
func (s *Service) timecardContext(ctx context.Context, empID int) ([]domain.Timecard, error) {
	if _, err := s.store.GetEmployee(ctx, empID); err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound("emp_id", "No matching emp_Id found")
		}
		return nil, storeFailure("timecardContext", err)
	}
	cards, err := s.store.GetAllTimecards(ctx, empID)
	if err != nil {
		return nil, storeFailure("timecardContext", err)
	}
	return cards, nil
}

// parseInterval parses the two timestamp strings of a timecard request.
// The error labels say start_date/end_date, not start_time/end_time; the
// wire contract has always used the date names here.
func parseInterval(startRaw, endRaw string) (domain.Timestamp, domain.Timestamp, error) {
	start, err := domain.ParseTimestamp(startRaw)
	if err != nil {
		return domain.Timestamp{}, domain.Timestamp{},
			apperr.BadFormat("start_date", domain.TimestampLayoutName)
	}
	end, err := domain.ParseTimestamp(endRaw)
	if err != nil {
		return domain.Timestamp{}, domain.Timestamp{},
			apperr.BadFormat("end_date", domain.TimestampLayoutName)
	}
	return start, end, nil
}
