package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"

	fullDayStart = "00:00"
	fullDayEnd   = "23:59"
)

// MinuteOfDay converts an "HH:MM" wall-clock string to minutes from
// midnight. Hour must be 0-23 and minute 0-59.
func MinuteOfDay(clock string) (int, error) {
	h, m, err := splitClock(clock)
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// FormatMinute renders minutes from midnight as a zero-padded "HH:MM"
// string, so lexical ordering matches time ordering.
func FormatMinute(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// IsValidClock reports whether clock is a well-formed "HH:MM" string.
func IsValidClock(clock string) bool {
	_, _, err := splitClock(clock)
	return err == nil
}

func splitClock(clock string) (int, int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q: want HH:MM", clock)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", clock)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", clock)
	}
	return h, m, nil
}

// ParseDate parses a "YYYY-MM-DD" calendar day.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}

// WeekdayIndex maps a date to the Monday=0..Sunday=6 convention used by
// WeeklyAvailability rows. Go's native weekday is Sunday=0, hence the
// rotation.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// WeekdayName returns the English name for a Monday=0 weekday index.
func WeekdayName(dayOfWeek int) string {
	names := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	if dayOfWeek < 0 || dayOfWeek >= len(names) {
		return fmt.Sprintf("day %d", dayOfWeek)
	}
	return names[dayOfWeek]
}

// IsFullDayBlock reports whether the interval spans the whole day.
func IsFullDayBlock(startTime, endTime string) bool {
	return startTime == fullDayStart && endTime == fullDayEnd
}
