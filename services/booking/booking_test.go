package booking

import (
	"context"
	"errors"
	"testing"

	bookingRepo "maidly/database/repository/booking"
	"maidly/models"
	"maidly/services/scheduling"
)

type fakeBookingRepo struct {
	bookings  map[string]*models.Booking
	takenErr  bool
	statusLog []string
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*models.Booking{}}
}

func (f *fakeBookingRepo) CreateIfFree(ctx context.Context, b *models.Booking) error {
	if f.takenErr {
		return bookingRepo.ErrSlotTaken
	}
	for _, existing := range f.bookings {
		if existing.MaidID == b.MaidID && existing.Date == b.Date && existing.IsActive() &&
			scheduling.Overlaps(b.StartMin, b.EndMin, existing.StartMin, existing.EndMin) {
			return bookingRepo.ErrSlotTaken
		}
	}
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if b, ok := f.bookings[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeBookingRepo) GetActiveByMaidAndDate(ctx context.Context, maidID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.MaidID == maidID && b.Date == date && b.IsActive() {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByMaid(ctx context.Context, maidID string, limit int64) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.MaidID == maidID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByCustomer(ctx context.Context, customerID string, limit int64) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByMaidBetween(ctx context.Context, maidID, from, to string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.MaidID == maidID && b.Date >= from && b.Date <= to {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	b, ok := f.bookings[id]
	if !ok {
		return errors.New("not found")
	}
	b.Status = status
	f.statusLog = append(f.statusLog, status)
	return nil
}

func (f *fakeBookingRepo) SetPaymentStatus(ctx context.Context, id, paymentStatus string) error {
	b, ok := f.bookings[id]
	if !ok {
		return errors.New("not found")
	}
	b.PaymentStatus = paymentStatus
	return nil
}

type fakeMaidRepo struct {
	maids     map[string]*models.Maid
	completed int
}

func (f *fakeMaidRepo) Create(ctx context.Context, m *models.Maid) error { return nil }
func (f *fakeMaidRepo) GetByID(ctx context.Context, id string) (*models.Maid, error) {
	if m, ok := f.maids[id]; ok {
		return m, nil
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
func (f *fakeMaidRepo) IncrementCompleted(ctx context.Context, id string) error {
	f.completed++
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*models.ServiceCategory
}

func (f *fakeCategoryRepo) Create(ctx context.Context, c *models.ServiceCategory) error { return nil }
func (f *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*models.ServiceCategory, error) {
	if c, ok := f.categories[id]; ok {
		return c, nil
	}
	return nil, nil
}
func (f *fakeCategoryRepo) GetByCode(ctx context.Context, code string) (*models.ServiceCategory, error) {
	return nil, nil
}
func (f *fakeCategoryRepo) List(ctx context.Context, activeOnly bool) ([]models.ServiceCategory, error) {
	return nil, nil
}
func (f *fakeCategoryRepo) Update(ctx context.Context, c *models.ServiceCategory) error { return nil }
func (f *fakeCategoryRepo) Delete(ctx context.Context, id string) error                 { return nil }

type fakeScheduleRepo struct {
	doc *models.MaidSchedule
}

func (f *fakeScheduleRepo) Get(ctx context.Context, maidID string) (*models.MaidSchedule, error) {
	return f.doc, nil
}
func (f *fakeScheduleRepo) ReplaceWeekly(ctx context.Context, maidID string, rows []models.WeeklyAvailability) error {
	return nil
}
func (f *fakeScheduleRepo) AddBlock(ctx context.Context, maidID string, block models.BlockedInterval) error {
	return nil
}
func (f *fakeScheduleRepo) RemoveBlock(ctx context.Context, maidID, slotID string) error {
	return nil
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeMaidRepo) {
	bookings := newFakeBookingRepo()
	maids := &fakeMaidRepo{maids: map[string]*models.Maid{
		"maid-1": {ID: "maid-1", Name: "Jane", HourlyRate: 10, Status: "active"},
	}}
	categories := &fakeCategoryRepo{categories: map[string]*models.ServiceCategory{
		"cat-1": {ID: "cat-1", Name: "Deep cleaning", BasePrice: 25, Active: true},
	}}
	svc := &DefaultBookingService{
		Repo:         bookings,
		MaidRepo:     maids,
		CategoryRepo: categories,
		ScheduleRepo: &fakeScheduleRepo{},
	}
	return svc, bookings, maids
}

func validInput() models.BookingRequestInput {
	return models.BookingRequestInput{
		MaidID:     "maid-1",
		CategoryID: "cat-1",
		Date:       "2025-06-10",
		StartTime:  "10:00",
		Duration:   120,
		Address:    "12 Rose Lane",
	}
}

func TestCreateBooking(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.CreateBooking(context.Background(), "cust-1", validInput())
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if created.Status != models.BookingStatusPending {
		t.Fatalf("new booking status = %q, want pending", created.Status)
	}
	if created.StartMin != 600 || created.EndMin != 720 {
		t.Fatalf("derived window = [%d, %d), want [600, 720)", created.StartMin, created.EndMin)
	}
	if created.TotalPrice != 20 {
		t.Fatalf("TotalPrice = %v, want 20 (10/hr for 2h)", created.TotalPrice)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*models.BookingRequestInput)
	}{
		{"short duration", func(in *models.BookingRequestInput) { in.Duration = 15 }},
		{"bad time", func(in *models.BookingRequestInput) { in.StartTime = "9am" }},
		{"bad date", func(in *models.BookingRequestInput) { in.Date = "10/06/2025" }},
		{"past midnight", func(in *models.BookingRequestInput) { in.StartTime = "23:00"; in.Duration = 120 }},
	}
	for _, tc := range cases {
		in := validInput()
		tc.mutate(&in)
		_, err := svc.CreateBooking(ctx, "cust-1", in)
		var ve *scheduling.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: got %v, want ValidationError", tc.name, err)
		}
	}
}

func TestCreateBookingUnknownMaid(t *testing.T) {
	svc, _, _ := newTestService()
	in := validInput()
	in.MaidID = "nobody"

	_, err := svc.CreateBooking(context.Background(), "cust-1", in)
	var nf *scheduling.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("got %v, want NotFoundError", err)
	}
}

func TestCreateBookingConflict(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.CreateBooking(ctx, "cust-1", validInput()); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	// Overlapping window for the same maid and date.
	in := validInput()
	in.StartTime = "11:00"
	in.Duration = 60
	_, err := svc.CreateBooking(ctx, "cust-2", in)
	var ce *scheduling.ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v, want ConflictError", err)
	}

	// Touching window is fine.
	in.StartTime = "12:00"
	if _, err := svc.CreateBooking(ctx, "cust-2", in); err != nil {
		t.Fatalf("back-to-back booking failed: %v", err)
	}
}

func TestCreateBookingFullDayBlock(t *testing.T) {
	svc, _, _ := newTestService()
	svc.ScheduleRepo = &fakeScheduleRepo{doc: &models.MaidSchedule{
		MaidID: "maid-1",
		Blocked: []models.BlockedInterval{
			{SlotID: "s1", Date: "2025-06-10", StartTime: "00:00", EndTime: "23:59"},
		},
	}}

	_, err := svc.CreateBooking(context.Background(), "cust-1", validInput())
	var ce *scheduling.ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v, want ConflictError for a fully blocked day", err)
	}
}

func TestCreateBookingPartialBlock(t *testing.T) {
	svc, _, _ := newTestService()
	svc.ScheduleRepo = &fakeScheduleRepo{doc: &models.MaidSchedule{
		MaidID: "maid-1",
		Blocked: []models.BlockedInterval{
			{SlotID: "s1", Date: "2025-06-10", StartTime: "11:00", EndTime: "13:00"},
		},
	}}
	ctx := context.Background()

	// 10:00-12:00 overlaps the 11:00-13:00 block.
	_, err := svc.CreateBooking(ctx, "cust-1", validInput())
	var ce *scheduling.ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v, want ConflictError for a blocked window", err)
	}

	// 09:00-11:00 touches the block's start and is allowed.
	in := validInput()
	in.StartTime = "09:00"
	if _, err := svc.CreateBooking(ctx, "cust-1", in); err != nil {
		t.Fatalf("booking before the block failed: %v", err)
	}
}

func TestCreateBookingOutsideWeeklyWindow(t *testing.T) {
	svc, _, _ := newTestService()
	// 2025-06-10 is a Tuesday (dayOfWeek 1).
	svc.ScheduleRepo = &fakeScheduleRepo{doc: &models.MaidSchedule{
		MaidID: "maid-1",
		Weekly: []models.WeeklyAvailability{
			{DayOfWeek: 1, IsAvailable: true, StartTime: "09:00", EndTime: "12:00"},
		},
	}}
	ctx := context.Background()

	// 11:00-13:00 runs past the 12:00 end of the window.
	in := validInput()
	in.StartTime = "11:00"
	_, err := svc.CreateBooking(ctx, "cust-1", in)
	var ve *scheduling.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("got %v, want ValidationError for a window past the weekly hours", err)
	}

	// 10:00-12:00 ends exactly at the window's end and is allowed.
	if _, err := svc.CreateBooking(ctx, "cust-1", validInput()); err != nil {
		t.Fatalf("booking inside the weekly window failed: %v", err)
	}
}

func TestCreateBookingUnavailableWeekday(t *testing.T) {
	svc, _, _ := newTestService()
	svc.ScheduleRepo = &fakeScheduleRepo{doc: &models.MaidSchedule{
		MaidID: "maid-1",
		Weekly: []models.WeeklyAvailability{
			{DayOfWeek: 1, IsAvailable: false},
		},
	}}

	_, err := svc.CreateBooking(context.Background(), "cust-1", validInput())
	var ve *scheduling.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("got %v, want ValidationError for an unavailable weekday", err)
	}
}

func TestCreateBookingNoWeeklyRowIsBookable(t *testing.T) {
	svc, _, _ := newTestService()
	// A schedule that only configures Monday leaves Tuesday unconstrained.
	svc.ScheduleRepo = &fakeScheduleRepo{doc: &models.MaidSchedule{
		MaidID: "maid-1",
		Weekly: []models.WeeklyAvailability{
			{DayOfWeek: 0, IsAvailable: true, StartTime: "09:00", EndTime: "12:00"},
		},
	}}

	if _, err := svc.CreateBooking(context.Background(), "cust-1", validInput()); err != nil {
		t.Fatalf("booking an unconfigured weekday failed: %v", err)
	}
}

func TestCreateBookingLosesRace(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.takenErr = true

	_, err := svc.CreateBooking(context.Background(), "cust-1", validInput())
	var ce *scheduling.ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v, want ConflictError from transactional insert", err)
	}
}

func TestStatusTransitions(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name      string
		from      string
		to        string
		actorID   string
		actorRole string
		wantErr   string // "", "conflict" or "validation"
	}{
		{"maid accepts pending", models.BookingStatusPending, models.BookingStatusAccepted, "maid-1", "maid", ""},
		{"maid rejects pending", models.BookingStatusPending, models.BookingStatusRejected, "maid-1", "maid", ""},
		{"customer cancels pending", models.BookingStatusPending, models.BookingStatusCancelled, "cust-1", "user", ""},
		{"maid cancels pending", models.BookingStatusPending, models.BookingStatusCancelled, "maid-1", "maid", ""},
		{"maid completes accepted", models.BookingStatusAccepted, models.BookingStatusCompleted, "maid-1", "maid", ""},
		{"customer cancels accepted", models.BookingStatusAccepted, models.BookingStatusCancelled, "cust-1", "user", ""},
		{"pending cannot complete", models.BookingStatusPending, models.BookingStatusCompleted, "maid-1", "maid", "conflict"},
		{"completed is terminal", models.BookingStatusCompleted, models.BookingStatusCancelled, "cust-1", "user", "conflict"},
		{"rejected is terminal", models.BookingStatusRejected, models.BookingStatusAccepted, "maid-1", "maid", "conflict"},
		{"cancelled is terminal", models.BookingStatusCancelled, models.BookingStatusAccepted, "maid-1", "maid", "conflict"},
		{"customer cannot accept", models.BookingStatusPending, models.BookingStatusAccepted, "cust-1", "user", "validation"},
		{"stranger cannot cancel", models.BookingStatusPending, models.BookingStatusCancelled, "cust-9", "user", "validation"},
		{"unknown status", models.BookingStatusPending, "archived", "maid-1", "maid", "validation"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, _ := newTestService()
			repo.bookings["b-1"] = &models.Booking{
				ID: "b-1", MaidID: "maid-1", CustomerID: "cust-1",
				Date: "2025-06-10", StartTime: "10:00", Duration: 60,
				StartMin: 600, EndMin: 660, Status: tc.from,
			}

			_, err := svc.UpdateStatus(ctx, "b-1", tc.to, tc.actorID, tc.actorRole)
			switch tc.wantErr {
			case "":
				if err != nil {
					t.Fatalf("UpdateStatus failed: %v", err)
				}
				if got := repo.bookings["b-1"].Status; got != tc.to {
					t.Fatalf("status = %q, want %q", got, tc.to)
				}
			case "conflict":
				var ce *scheduling.ConflictError
				if !errors.As(err, &ce) {
					t.Fatalf("got %v, want ConflictError", err)
				}
			case "validation":
				var ve *scheduling.ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("got %v, want ValidationError", err)
				}
			}
		})
	}
}

func TestCompleteIncrementsMaidCounter(t *testing.T) {
	svc, repo, maids := newTestService()
	repo.bookings["b-1"] = &models.Booking{
		ID: "b-1", MaidID: "maid-1", CustomerID: "cust-1",
		Date: "2025-06-10", Status: models.BookingStatusAccepted,
	}

	if _, err := svc.UpdateStatus(context.Background(), "b-1", models.BookingStatusCompleted, "maid-1", "maid"); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if maids.completed != 1 {
		t.Fatalf("completed counter = %d, want 1", maids.completed)
	}
}

func TestCancelFreesWindow(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	first, err := svc.CreateBooking(ctx, "cust-1", validInput())
	if err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, first.ID, models.BookingStatusCancelled, "cust-1", "user"); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	if _, err := svc.CreateBooking(ctx, "cust-2", validInput()); err != nil {
		t.Fatalf("rebooking cancelled window failed: %v", err)
	}
}

func TestMarkPaid(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.bookings["b-1"] = &models.Booking{
		ID: "b-1", MaidID: "maid-1", CustomerID: "cust-1",
		Status: models.BookingStatusAccepted, PaymentStatus: "pending",
	}

	updated, err := svc.MarkPaid(context.Background(), "b-1")
	if err != nil {
		t.Fatalf("MarkPaid failed: %v", err)
	}
	if updated.PaymentStatus != "paid" {
		t.Fatalf("PaymentStatus = %q, want paid", updated.PaymentStatus)
	}

	// Second call is a no-op.
	if _, err := svc.MarkPaid(context.Background(), "b-1"); err != nil {
		t.Fatalf("repeat MarkPaid failed: %v", err)
	}
}

func TestGetSimpleAvailability(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.bookings["b-1"] = &models.Booking{
		ID: "b-1", MaidID: "maid-1", CustomerID: "cust-1",
		Date: "2025-06-10", StartTime: "10:00", Duration: 60,
		StartMin: 600, EndMin: 660, Status: models.BookingStatusAccepted,
	}

	slots, err := svc.GetSimpleAvailability(context.Background(), "maid-1", "2025-06-10")
	if err != nil {
		t.Fatalf("GetSimpleAvailability failed: %v", err)
	}
	for _, s := range slots.AvailableSlots {
		if s == "10:00" {
			t.Fatalf("10:00 should not be available: %v", slots.AvailableSlots)
		}
	}
	if len(slots.BookedSlots) != 1 || slots.BookedSlots[0] != "10:00" {
		t.Fatalf("BookedSlots = %v, want [10:00]", slots.BookedSlots)
	}
}

func TestPriceFallsBackToBasePrice(t *testing.T) {
	svc, _, maids := newTestService()
	maids.maids["maid-1"].HourlyRate = 0

	created, err := svc.CreateBooking(context.Background(), "cust-1", validInput())
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if created.TotalPrice != 25 {
		t.Fatalf("TotalPrice = %v, want category base price 25", created.TotalPrice)
	}
}
