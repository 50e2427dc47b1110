package scheduling

import (
	"errors"
	"strings"
	"testing"
	"time"

	"maidly/models"
)

func mustBeValidation(t *testing.T, err error) *ValidationError {
	t.Helper()
	if err == nil {
		t.Fatal("expected a ValidationError, got nil")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected a ValidationError, got %T: %v", err, err)
	}
	return ve
}

func TestValidateWeeklyScheduleAccepts(t *testing.T) {
	rows := []models.WeeklyAvailability{
		{DayOfWeek: 0, IsAvailable: true, StartTime: "08:00", EndTime: "16:00"},
		{DayOfWeek: 5, IsAvailable: false},
		{DayOfWeek: 6, IsAvailable: true, StartTime: "10:00", EndTime: "14:00"},
	}
	if err := ValidateWeeklySchedule(rows); err != nil {
		t.Fatalf("valid schedule rejected: %v", err)
	}
}

func TestValidateWeeklyScheduleWeekdayRange(t *testing.T) {
	for _, day := range []int{-1, 7, 12} {
		rows := []models.WeeklyAvailability{{DayOfWeek: day, IsAvailable: false}}
		mustBeValidation(t, ValidateWeeklySchedule(rows))
	}
}

func TestValidateWeeklyScheduleNamesWeekday(t *testing.T) {
	rows := []models.WeeklyAvailability{
		{DayOfWeek: 2, IsAvailable: true, StartTime: "9:00", EndTime: "12:00"},
	}
	ve := mustBeValidation(t, ValidateWeeklySchedule(rows))
	if !strings.Contains(ve.Message, "Wednesday") {
		t.Fatalf("message should name the offending weekday, got %q", ve.Message)
	}
}

func TestValidateWeeklyScheduleMissingTimes(t *testing.T) {
	rows := []models.WeeklyAvailability{{DayOfWeek: 1, IsAvailable: true}}
	mustBeValidation(t, ValidateWeeklySchedule(rows))
}

func TestValidateWeeklyScheduleInvertedRange(t *testing.T) {
	for _, tc := range [][2]string{{"12:00", "09:00"}, {"09:00", "09:00"}} {
		rows := []models.WeeklyAvailability{
			{DayOfWeek: 3, IsAvailable: true, StartTime: tc[0], EndTime: tc[1]},
		}
		mustBeValidation(t, ValidateWeeklySchedule(rows))
	}
}

func TestValidateWeeklyScheduleDuplicateDay(t *testing.T) {
	rows := []models.WeeklyAvailability{
		{DayOfWeek: 1, IsAvailable: false},
		{DayOfWeek: 1, IsAvailable: true, StartTime: "09:00", EndTime: "12:00"},
	}
	mustBeValidation(t, ValidateWeeklySchedule(rows))
}

func TestValidateBlockPastDate(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)
	err := ValidateBlock(nil, "2025-06-09", "09:00", "10:00", now)
	mustBeValidation(t, err)

	// Same calendar day is allowed regardless of time of day.
	if err := ValidateBlock(nil, "2025-06-10", "09:00", "10:00", now); err != nil {
		t.Fatalf("blocking today must be allowed: %v", err)
	}
}

func TestValidateBlockNonUTCClock(t *testing.T) {
	// Shortly past local midnight in UTC+13 it is still 2025-06-10 in UTC.
	// The comparison must use the UTC calendar day, not the wall clock's.
	now := time.Date(2025, 6, 11, 0, 30, 0, 0, time.FixedZone("UTC+13", 13*3600))
	if err := ValidateBlock(nil, "2025-06-10", "09:00", "10:00", now); err != nil {
		t.Fatalf("blocking the current UTC day must be allowed: %v", err)
	}

	// The mirror case: late evening in UTC-11 is already the next day in
	// UTC, so the local date counts as past.
	now = time.Date(2025, 6, 9, 23, 30, 0, 0, time.FixedZone("UTC-11", -11*3600))
	mustBeValidation(t, ValidateBlock(nil, "2025-06-09", "09:00", "10:00", now))
}

func TestValidateBlockDuplicateTriple(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	existing := []models.BlockedInterval{
		{Date: "2025-06-10", StartTime: "09:00", EndTime: "10:00"},
	}
	mustBeValidation(t, ValidateBlock(existing, "2025-06-10", "09:00", "10:00", now))

	// Overlapping but non-identical blocks may coexist.
	if err := ValidateBlock(existing, "2025-06-10", "09:30", "10:30", now); err != nil {
		t.Fatalf("non-identical overlapping block rejected: %v", err)
	}
}

func TestValidateBlockBadInput(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	mustBeValidation(t, ValidateBlock(nil, "June 10", "09:00", "10:00", now))
	mustBeValidation(t, ValidateBlock(nil, "2025-06-10", "25:00", "10:00", now))
	mustBeValidation(t, ValidateBlock(nil, "2025-06-10", "09:00", "09:60", now))
	mustBeValidation(t, ValidateBlock(nil, "2025-06-10", "10:00", "09:00", now))
}
