package scheduling

import (
	"time"

	"maidly/models"
)

// ValidateWeeklySchedule checks a full weekly template before it replaces a
// maid's stored schedule. Each row needs a weekday in [0,6] (unique within
// the payload) and, when available, well-formed HH:MM times with start
// strictly before end.
func ValidateWeeklySchedule(rows []models.WeeklyAvailability) error {
	seen := make(map[int]bool)
	for _, row := range rows {
		if row.DayOfWeek < 0 || row.DayOfWeek > 6 {
			return NewValidationError("dayOfWeek %d is out of range (want 0-6)", row.DayOfWeek)
		}
		if seen[row.DayOfWeek] {
			return NewValidationError("duplicate entry for %s", WeekdayName(row.DayOfWeek))
		}
		seen[row.DayOfWeek] = true

		if !row.IsAvailable {
			continue
		}
		if err := validateRange(row.StartTime, row.EndTime, WeekdayName(row.DayOfWeek)); err != nil {
			return err
		}
	}
	return nil
}

// ValidateBlock checks a new blocked interval against the rules: well-formed
// times with start before end, date not in the past (calendar-day comparison
// against today), and no existing block with the identical
// (date, startTime, endTime) triple. Partially overlapping but non-identical
// blocks may coexist.
func ValidateBlock(existing []models.BlockedInterval, date, startTime, endTime string, now time.Time) error {
	day, err := ParseDate(date)
	if err != nil {
		return NewValidationError("invalid date %q: want YYYY-MM-DD", date)
	}
	// Compare calendar days in UTC on both sides; ParseDate yields UTC
	// midnight, so the wall-clock zone of now must not leak into today.
	nowUTC := now.UTC()
	today := time.Date(nowUTC.Year(), nowUTC.Month(), nowUTC.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(today) {
		return NewValidationError("cannot block a past date (%s)", date)
	}

	if err := validateRange(startTime, endTime, date); err != nil {
		return err
	}

	for _, blk := range existing {
		if blk.Date == date && blk.StartTime == startTime && blk.EndTime == endTime {
			return NewValidationError("an identical block already exists for %s %s-%s", date, startTime, endTime)
		}
	}
	return nil
}

func validateRange(startTime, endTime, scope string) error {
	if startTime == "" || endTime == "" {
		return NewValidationError("startTime and endTime are required for %s", scope)
	}
	start, err := MinuteOfDay(startTime)
	if err != nil {
		return NewValidationError("invalid startTime %q for %s", startTime, scope)
	}
	end, err := MinuteOfDay(endTime)
	if err != nil {
		return NewValidationError("invalid endTime %q for %s", endTime, scope)
	}
	if start >= end {
		return NewValidationError("startTime must be before endTime for %s", scope)
	}
	return nil
}
