package insights

import (
	"context"
	"strings"
	"testing"

	"maidly/models"
)

type fakeBookingRepo struct {
	bookings []models.Booking
}

func (f *fakeBookingRepo) CreateIfFree(ctx context.Context, b *models.Booking) error { return nil }
func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) GetActiveByMaidAndDate(ctx context.Context, maidID, date string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) ListByMaid(ctx context.Context, maidID string, limit int64) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) ListByCustomer(ctx context.Context, customerID string, limit int64) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) ListByMaidBetween(ctx context.Context, maidID, from, to string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.MaidID == maidID && b.Date >= from && b.Date <= to {
			out = append(out, b)
		}
	}
	return out, nil
}
func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id, status string) error { return nil }
func (f *fakeBookingRepo) SetPaymentStatus(ctx context.Context, id, status string) error {
	return nil
}

type fakeMaidRepo struct{}

func (f *fakeMaidRepo) Create(ctx context.Context, m *models.Maid) error { return nil }
func (f *fakeMaidRepo) GetByID(ctx context.Context, id string) (*models.Maid, error) {
	if id == "maid-1" {
		return &models.Maid{ID: id}, nil
	}
	return nil, nil
}
func (f *fakeMaidRepo) GetByEmail(ctx context.Context, email string) (*models.Maid, error) {
	return nil, nil
}
func (f *fakeMaidRepo) Update(ctx context.Context, m *models.Maid) error { return nil }
func (f *fakeMaidRepo) Delete(ctx context.Context, id string) error     { return nil }
func (f *fakeMaidRepo) ListActive(ctx context.Context, categoryID string) ([]models.Maid, error) {
	return nil, nil
}
func (f *fakeMaidRepo) IncrementCompleted(ctx context.Context, id string) error { return nil }

func TestComputeStats(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []models.Booking{
		// 2025-06-09 and 2025-06-16 are Mondays, 2025-06-11 a Wednesday.
		{MaidID: "maid-1", Date: "2025-06-09", Duration: 120, Status: models.BookingStatusCompleted},
		{MaidID: "maid-1", Date: "2025-06-16", Duration: 60, Status: models.BookingStatusAccepted},
		{MaidID: "maid-1", Date: "2025-06-11", Duration: 90, Status: models.BookingStatusCancelled},
	}}
	svc := &DefaultInsightsService{Bookings: repo, MaidRepo: &fakeMaidRepo{}}

	stats, err := svc.ComputeStats(context.Background(), "maid-1", "2025-06-01", "2025-06-30")
	if err != nil {
		t.Fatalf("ComputeStats failed: %v", err)
	}
	if stats.Total != 3 {
		t.Fatalf("Total = %d, want 3", stats.Total)
	}
	if stats.ByStatus[models.BookingStatusCompleted] != 1 || stats.ByStatus[models.BookingStatusCancelled] != 1 {
		t.Fatalf("ByStatus = %v", stats.ByStatus)
	}
	// Cancelled hours do not count.
	if stats.TotalHours != 3 {
		t.Fatalf("TotalHours = %v, want 3", stats.TotalHours)
	}
	if stats.BusiestWeekday != "Monday" {
		t.Fatalf("BusiestWeekday = %q, want Monday", stats.BusiestWeekday)
	}
}

func TestSummaryFallsBackWithoutGenerator(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []models.Booking{
		{MaidID: "maid-1", Date: "2025-06-09", Duration: 60, Status: models.BookingStatusCompleted},
	}}
	svc := &DefaultInsightsService{Bookings: repo, MaidRepo: &fakeMaidRepo{}}

	summary, stats, err := svc.Summary(context.Background(), "maid-1", "2025-06-01", "2025-06-30")
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if stats.Total != 1 {
		t.Fatalf("Total = %d, want 1", stats.Total)
	}
	if !strings.Contains(summary, "1 bookings") {
		t.Fatalf("unexpected summary: %q", summary)
	}
}

func TestRuleBasedSummaryEmpty(t *testing.T) {
	got := ruleBasedSummary(&models.BookingStats{From: "2025-06-01", To: "2025-06-30"})
	if !strings.Contains(got, "No bookings") {
		t.Fatalf("unexpected summary: %q", got)
	}
}
