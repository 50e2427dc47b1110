package scheduling

import "maidly/models"

// Overlaps reports whether the half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect. Touching endpoints (one ends at 10:00, the other
// starts at 10:00) do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// HasConflict reports whether a candidate window [startMin, startMin+duration)
// overlaps any active booking in the given same-day set. excludeBookingID,
// when non-empty, omits that booking from the comparison (reschedule flows).
// Non-active bookings never conflict regardless of time overlap.
func HasConflict(bookings []models.Booking, startMin, duration int, excludeBookingID string) bool {
	if duration <= 0 {
		return false
	}
	endMin := startMin + duration
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if excludeBookingID != "" && b.ID == excludeBookingID {
			continue
		}
		if Overlaps(startMin, endMin, b.StartMin, b.EndMin) {
			return true
		}
	}
	return false
}
