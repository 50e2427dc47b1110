package models

// SlotList is the availability response for the simple booking lookup.
type SlotList struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
	BookedSlots    []string `json:"bookedSlots"`
}

// ScheduleSlotList is the availability response for the schedule-aware
// lookup. When the maid is unavailable, AvailableSlots is empty and Message
// explains why.
type ScheduleSlotList struct {
	Date           string              `json:"date"`
	MaidSchedule   *WeeklyAvailability `json:"maidSchedule,omitempty"`
	AvailableSlots []string            `json:"availableSlots"`
	BookedSlots    []string            `json:"bookedSlots,omitempty"`
	BlockedSlots   []BlockedInterval   `json:"blockedSlots,omitempty"`
	Message        string              `json:"message,omitempty"`
}
