package scheduling

import (
	"sort"

	"maidly/models"
)

// Default working window for maids without a configured weekly schedule:
// hourly slots from 09:00 up to but excluding 18:00.
const (
	defaultDayStartHour = 9
	defaultDayEndHour   = 18

	slotLengthMinutes = 60
)

// SimpleDaySlots enumerates the fixed 09:00-17:00 hourly candidates and
// removes any slot whose start time exactly matches an active booking's
// start. Note this is a membership test, not an interval-overlap test: a
// 90-minute booking at 09:30 does not remove the 10:00 slot here. The
// schedule-aware path does full overlap checks; this weaker check is kept
// deliberately for the generic lookup.
func SimpleDaySlots(bookings []models.Booking) (available, booked []string) {
	taken := make(map[string]bool)
	for _, b := range bookings {
		if b.IsActive() {
			taken[b.StartTime] = true
		}
	}

	available = []string{}
	booked = []string{}
	for h := defaultDayStartHour; h < defaultDayEndHour; h++ {
		slot := FormatMinute(h * 60)
		if taken[slot] {
			booked = append(booked, slot)
			continue
		}
		available = append(available, slot)
	}
	sort.Strings(booked)
	return available, booked
}

// ScheduleDaySlots enumerates hourly candidates within the maid's weekly
// window for the day, removing slots that start at an active booking's start
// time or whose 60-minute window overlaps a partial blocked interval.
//
// It returns an empty list plus an explanatory message when the maid has no
// row for the weekday, the row is marked unavailable, or a block spans the
// full day.
func ScheduleDaySlots(row *models.WeeklyAvailability, blocks []models.BlockedInterval, bookings []models.Booking) ([]string, string) {
	if row == nil || !row.IsAvailable {
		return []string{}, "maid not available on this day"
	}

	for _, blk := range blocks {
		if IsFullDayBlock(blk.StartTime, blk.EndTime) {
			return []string{}, "maid has blocked this entire day"
		}
	}

	startMin, err := MinuteOfDay(row.StartTime)
	if err != nil {
		return []string{}, "maid schedule is misconfigured for this day"
	}
	endMin, err := MinuteOfDay(row.EndTime)
	if err != nil {
		return []string{}, "maid schedule is misconfigured for this day"
	}

	taken := make(map[string]bool)
	for _, b := range bookings {
		if b.IsActive() {
			taken[b.StartTime] = true
		}
	}

	// Candidates run from the startTime hour up to excluding the endTime hour.
	slots := []string{}
	for h := startMin / 60; h < endMin/60; h++ {
		min := h * 60
		slot := FormatMinute(min)
		if taken[slot] {
			continue
		}
		if overlapsAnyBlock(min, min+slotLengthMinutes, blocks) {
			continue
		}
		slots = append(slots, slot)
	}
	return slots, ""
}

func overlapsAnyBlock(start, end int, blocks []models.BlockedInterval) bool {
	for _, blk := range blocks {
		bs, err := MinuteOfDay(blk.StartTime)
		if err != nil {
			continue
		}
		be, err := MinuteOfDay(blk.EndTime)
		if err != nil {
			continue
		}
		if Overlaps(start, end, bs, be) {
			return true
		}
	}
	return false
}
