package insights

import (
	"context"
	"fmt"
	"strings"

	bookingRepo "maidly/database/repository/booking"
	maidRepo "maidly/database/repository/maid"
	"maidly/models"
	"maidly/services/scheduling"
	"maidly/utils"

	"go.uber.org/zap"
)

// InsightsService computes booking statistics for a maid and renders them as
// a short summary, preferring the generative model and falling back to the
// rule-based renderer when it is unavailable.
type InsightsService interface {
	ComputeStats(ctx context.Context, maidID, from, to string) (*models.BookingStats, error)
	Summary(ctx context.Context, maidID, from, to string) (string, *models.BookingStats, error)
}

// DefaultInsightsService is the production implementation.
type DefaultInsightsService struct {
	Bookings  bookingRepo.BookingRepository
	MaidRepo  maidRepo.MaidRepository
	Generator SummaryGenerator
	Context   ContextStore
}

func (s *DefaultInsightsService) ComputeStats(ctx context.Context, maidID, from, to string) (*models.BookingStats, error) {
	maid, err := s.MaidRepo.GetByID(ctx, maidID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch maid: %w", err)
	}
	if maid == nil {
		return nil, scheduling.NewNotFoundError("maid %s not found", maidID)
	}
	if _, err := scheduling.ParseDate(from); err != nil {
		return nil, scheduling.NewValidationError("invalid from date %q: want YYYY-MM-DD", from)
	}
	if _, err := scheduling.ParseDate(to); err != nil {
		return nil, scheduling.NewValidationError("invalid to date %q: want YYYY-MM-DD", to)
	}

	bookings, err := s.Bookings.ListByMaidBetween(ctx, maidID, from, to)
	if err != nil {
		return nil, err
	}

	stats := &models.BookingStats{
		MaidID:   maidID,
		From:     from,
		To:       to,
		Total:    len(bookings),
		ByStatus: map[string]int{},
	}
	weekdayCounts := map[int]int{}
	for _, b := range bookings {
		stats.ByStatus[b.Status]++
		if b.Status == models.BookingStatusAccepted || b.Status == models.BookingStatusCompleted {
			stats.TotalHours += float64(b.Duration) / 60
		}
		if day, err := scheduling.ParseDate(b.Date); err == nil {
			weekdayCounts[scheduling.WeekdayIndex(day)]++
		}
	}
	best, bestCount := -1, 0
	for day, count := range weekdayCounts {
		if count > bestCount || (count == bestCount && best >= 0 && day < best) {
			best, bestCount = day, count
		}
	}
	if best >= 0 {
		stats.BusiestWeekday = scheduling.WeekdayName(best)
	}
	return stats, nil
}

func (s *DefaultInsightsService) Summary(ctx context.Context, maidID, from, to string) (string, *models.BookingStats, error) {
	stats, err := s.ComputeStats(ctx, maidID, from, to)
	if err != nil {
		return "", nil, err
	}

	summary := ""
	if s.Generator != nil {
		summary, err = s.Generator.Generate(ctx, statsPrompt(stats))
		if err != nil {
			utils.GetLogger().Warn("generative summary failed, using rule-based fallback",
				zap.String("maidID", maidID), zap.Error(err))
			summary = ""
		}
	}
	if summary == "" {
		summary = ruleBasedSummary(stats)
	}

	if s.Context != nil {
		if err := s.Context.Append(ctx, maidID, summary); err != nil {
			utils.GetLogger().Warn("failed to store insight context",
				zap.String("maidID", maidID), zap.Error(err))
		}
	}
	return summary, stats, nil
}

func statsPrompt(stats *models.BookingStats) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Write a short, friendly performance summary for a home-services provider covering %s to %s. ", stats.From, stats.To)
	fmt.Fprintf(&sb, "Total bookings: %d. ", stats.Total)
	for status, count := range stats.ByStatus {
		fmt.Fprintf(&sb, "%s: %d. ", status, count)
	}
	fmt.Fprintf(&sb, "Hours worked or scheduled: %.1f. ", stats.TotalHours)
	if stats.BusiestWeekday != "" {
		fmt.Fprintf(&sb, "Busiest weekday: %s. ", stats.BusiestWeekday)
	}
	sb.WriteString("Keep it under three sentences and do not invent numbers.")
	return sb.String()
}

// ruleBasedSummary renders the stats without the generative model.
func ruleBasedSummary(stats *models.BookingStats) string {
	if stats.Total == 0 {
		return fmt.Sprintf("No bookings between %s and %s.", stats.From, stats.To)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "You had %d bookings between %s and %s", stats.Total, stats.From, stats.To)
	if completed := stats.ByStatus[models.BookingStatusCompleted]; completed > 0 {
		fmt.Fprintf(&sb, ", %d of them completed", completed)
	}
	fmt.Fprintf(&sb, ", totalling %.1f hours.", stats.TotalHours)
	if stats.BusiestWeekday != "" {
		fmt.Fprintf(&sb, " %s was your busiest day.", stats.BusiestWeekday)
	}
	return sb.String()
}
