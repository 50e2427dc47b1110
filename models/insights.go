package models

// BookingStats summarizes a maid's booking activity over a period; the
// insights service feeds these numbers to the summary generator.
type BookingStats struct {
	MaidID         string         `json:"maidId"`
	From           string         `json:"from"`
	To             string         `json:"to"`
	Total          int            `json:"total"`
	ByStatus       map[string]int `json:"byStatus"`
	BusiestWeekday string         `json:"busiestWeekday,omitempty"`
	TotalHours     float64        `json:"totalHours"`
}

// InsightContext carries the recent exchange history for a maid's insights
// conversation, cached in Redis with a TTL.
type InsightContext struct {
	History []string `json:"history,omitempty"`
}
