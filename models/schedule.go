package models

import "time"

// WeeklyAvailability is one row of a maid's recurring weekly template.
// DayOfWeek uses the Monday=0..Sunday=6 convention.
type WeeklyAvailability struct {
	DayOfWeek   int    `bson:"day_of_week" json:"dayOfWeek"`
	IsAvailable bool   `bson:"is_available" json:"isAvailable"`
	StartTime   string `bson:"start_time,omitempty" json:"startTime,omitempty"` // "HH:MM", required when available
	EndTime     string `bson:"end_time,omitempty" json:"endTime,omitempty"`
}

// BlockedInterval is a one-off unavailable window on a specific date,
// independent of the weekly template. A 00:00-23:59 interval blocks the
// whole day.
type BlockedInterval struct {
	SlotID    string    `bson:"slot_id" json:"slotId"`
	Date      string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	StartTime string    `bson:"start_time" json:"startTime"`
	EndTime   string    `bson:"end_time" json:"endTime"`
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// MaidSchedule is the schedule document for one maid: the weekly template
// plus the list of blocked intervals. Kept in its own collection rather than
// embedded in the maid profile so schedule writes never touch profile data.
type MaidSchedule struct {
	MaidID    string               `bson:"maid_id" json:"maidId"`
	Weekly    []WeeklyAvailability `bson:"weekly" json:"weeklySchedule"`
	Blocked   []BlockedInterval    `bson:"blocked" json:"blockedSlots"`
	UpdatedAt time.Time            `bson:"updated_at" json:"updatedAt"`
}

// WeeklyRow returns the template row for the given Monday=0 weekday, or nil
// when the maid has not configured that day.
func (s *MaidSchedule) WeeklyRow(dayOfWeek int) *WeeklyAvailability {
	if s == nil {
		return nil
	}
	for i := range s.Weekly {
		if s.Weekly[i].DayOfWeek == dayOfWeek {
			return &s.Weekly[i]
		}
	}
	return nil
}

// BlocksOn returns the blocked intervals that fall on the given date.
func (s *MaidSchedule) BlocksOn(date string) []BlockedInterval {
	if s == nil {
		return nil
	}
	var out []BlockedInterval
	for _, b := range s.Blocked {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out
}

// WeeklyScheduleInput is the payload for replacing a maid's weekly template.
type WeeklyScheduleInput struct {
	WeeklySchedule []WeeklyAvailability `json:"weeklySchedule" binding:"required"`
}

// BlockSlotInput is the payload for blocking a slot. Omitted times default
// to a full-day block.
type BlockSlotInput struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Reason    string `json:"reason"`
}
