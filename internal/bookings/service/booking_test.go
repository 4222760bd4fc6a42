package service

import (
	"context"
	"io"
	"sync"
	"testing"

	apperrors "venuehall/pkg/errors"
	"venuehall/pkg/kafka"

	"venuehall/internal/bookings/repository"
	bookingvalidator "venuehall/internal/bookings/validator"
	"venuehall/internal/catalog"
	"venuehall/pkg/config"
	"venuehall/pkg/logger"
	"venuehall/pkg/model"
)

func testConfig() *config.Config {
	return &config.Config{
		DefaultPricePerHour: 150,
		Log:                 logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard}),
	}
}

type mockPublisher struct {
	mu       sync.Mutex
	messages []kafka.Message
}

func (p *mockPublisher) Publish(_ context.Context, msg kafka.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return nil
}

type fixture struct {
	svc    BookingService
	repo   *repository.MemoryReservationRepository
	events *mockPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := testConfig()
	repo := repository.NewMemoryReservationRepository()
	events := &mockPublisher{}
	svc := NewBookingService(
		repo,
		repository.NewMemorySlotLocker(),
		catalog.NewStaticHallCatalog(catalog.SeedHalls()...),
		bookingvalidator.NewBookingValidator(cfg.Log),
		events,
		cfg,
	)
	return &fixture{svc: svc, repo: repo, events: events}
}

func validRequest() *model.BookingRequest {
	return &model.BookingRequest{
		VenueID:    "v_1",
		HallID:     "h_1",
		Date:       "2026-06-01",
		StartTime:  "10:00",
		EndTime:    "12:00",
		GuestCount: 50,
		CustomerDetails: model.CustomerDetails{
			Name:  "Jane Smith",
			Phone: "+15550100200",
			Email: "jane@example.com",
		},
	}
}

func TestBook_Success(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.Book(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Book() returned error: %v", err)
	}

	if res.ID == "" {
		t.Error("expected a generated reservation ID")
	}
	if res.Status != model.StatusConfirmed {
		t.Errorf("expected status %q, got %q", model.StatusConfirmed, res.Status)
	}
	// 2h * 150/h + 50 guests * 1.50
	if res.TotalAmount != 375.00 {
		t.Errorf("expected total 375.00, got %v", res.TotalAmount)
	}
	if res.Note != "" {
		t.Errorf("expected no note on a persisted booking, got %q", res.Note)
	}

	stored, err := f.repo.FindByID(context.Background(), res.ID)
	if err != nil {
		t.Fatalf("reservation was not persisted: %v", err)
	}
	if stored.TotalAmount != res.TotalAmount {
		t.Errorf("stored total %v does not match returned %v", stored.TotalAmount, res.TotalAmount)
	}

	if len(f.events.messages) != 1 {
		t.Errorf("expected 1 published event, got %d", len(f.events.messages))
	}
}

func TestBook_UnknownHallUsesDefaultRate(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.HallID = "h_unknown"
	req.GuestCount = 10

	res, err := f.svc.Book(context.Background(), req)
	if err != nil {
		t.Fatalf("Book() returned error: %v", err)
	}

	// 2h * default 150/h + 10 guests * 1.50
	if res.TotalAmount != 315.00 {
		t.Errorf("expected total 315.00, got %v", res.TotalAmount)
	}
}

func TestBook_FractionalHoursRounding(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.HallID = "h_2" // 300/h
	req.StartTime = "10:00"
	req.EndTime = "11:30"
	req.GuestCount = 3

	res, err := f.svc.Book(context.Background(), req)
	if err != nil {
		t.Fatalf("Book() returned error: %v", err)
	}

	// 1.5h * 300/h + 3 * 1.50 = 454.50
	if res.TotalAmount != 454.50 {
		t.Errorf("expected total 454.50, got %v", res.TotalAmount)
	}
}

func TestBook_OverlapRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Book(ctx, validRequest()); err != nil {
		t.Fatalf("first Book() returned error: %v", err)
	}

	second := validRequest()
	second.StartTime = "11:00"
	second.EndTime = "13:00"

	_, err := f.svc.Book(ctx, second)
	if err == nil {
		t.Fatal("expected conflict error for overlapping booking")
	}
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeConflict {
		t.Errorf("expected code %q, got %q", apperrors.CodeConflict, appErr.Code)
	}

	count, err := f.repo.CountByHallAndDate(ctx, "h_1", "2026-06-01")
	if err != nil {
		t.Fatalf("CountByHallAndDate() returned error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 stored reservation, got %d", count)
	}
}

func TestBook_AdjacentWindowsAllowed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Book(ctx, validRequest()); err != nil {
		t.Fatalf("first Book() returned error: %v", err)
	}

	second := validRequest()
	second.StartTime = "12:00"
	second.EndTime = "14:00"

	if _, err := f.svc.Book(ctx, second); err != nil {
		t.Fatalf("back-to-back Book() returned error: %v", err)
	}
}

func TestBook_PendingDoesNotBlock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	pending := &model.Reservation{
		ID:        "r_pending",
		HallID:    "h_1",
		Date:      "2026-06-01",
		StartTime: "10:00",
		EndTime:   "12:00",
		Status:    model.StatusPending,
	}
	if err := f.repo.Create(ctx, pending); err != nil {
		t.Fatalf("seeding pending reservation failed: %v", err)
	}

	if _, err := f.svc.Book(ctx, validRequest()); err != nil {
		t.Fatalf("Book() over a pending reservation returned error: %v", err)
	}
}

func TestBook_DifferentHallOrDateUnaffected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Book(ctx, validRequest()); err != nil {
		t.Fatalf("first Book() returned error: %v", err)
	}

	otherHall := validRequest()
	otherHall.HallID = "h_2"
	if _, err := f.svc.Book(ctx, otherHall); err != nil {
		t.Errorf("same window in another hall returned error: %v", err)
	}

	otherDate := validRequest()
	otherDate.Date = "2026-06-02"
	if _, err := f.svc.Book(ctx, otherDate); err != nil {
		t.Errorf("same window on another date returned error: %v", err)
	}
}

func TestBook_ValidationFailures(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		mutate func(*model.BookingRequest)
	}{
		{"missing hall", func(r *model.BookingRequest) { r.HallID = "" }},
		{"bad date", func(r *model.BookingRequest) { r.Date = "06/01/2026" }},
		{"unpadded hour", func(r *model.BookingRequest) { r.StartTime = "9:00" }},
		{"end before start", func(r *model.BookingRequest) { r.StartTime = "14:00"; r.EndTime = "12:00" }},
		{"zero duration", func(r *model.BookingRequest) { r.EndTime = r.StartTime }},
		{"zero guests", func(r *model.BookingRequest) { r.GuestCount = 0 }},
		{"bad email", func(r *model.BookingRequest) { r.CustomerDetails.Email = "not-an-email" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := f.svc.Book(context.Background(), req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeValidation {
				t.Errorf("expected code %q, got %q", apperrors.CodeValidation, appErr.Code)
			}
		})
	}
}

func TestBook_SanitizesCustomerDetails(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.CustomerDetails.Name = "  Jane   Smith "
	req.CustomerDetails.Email = " JANE@Example.COM "
	req.CustomerDetails.Phone = "+1 (555) 010-0200"

	res, err := f.svc.Book(context.Background(), req)
	if err != nil {
		t.Fatalf("Book() returned error: %v", err)
	}

	if res.Customer.Name != "Jane Smith" {
		t.Errorf("expected cleaned name, got %q", res.Customer.Name)
	}
	if res.Customer.Email != "jane@example.com" {
		t.Errorf("expected lowercased email, got %q", res.Customer.Email)
	}
	if res.Customer.Phone != "+15550100200" {
		t.Errorf("expected digit-only phone, got %q", res.Customer.Phone)
	}
}

// Racing identical requests must yield exactly one confirmation. The
// rest observe the winner's reservation and fail with a conflict.
func TestBook_ConcurrentCommitsOneWinner(t *testing.T) {
	f := newFixture(t)
	const racers = 16

	var wg sync.WaitGroup
	errs := make([]error, racers)

	wg.Add(racers)
	for i := 0; i < racers; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.Book(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case apperrors.AsAppError(err).Code == apperrors.CodeConflict:
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	if wins != 1 {
		t.Errorf("expected exactly 1 winner, got %d", wins)
	}
	if conflicts != racers-1 {
		t.Errorf("expected %d conflicts, got %d", racers-1, conflicts)
	}

	count, err := f.repo.CountByHallAndDate(context.Background(), "h_1", "2026-06-01")
	if err != nil {
		t.Fatalf("CountByHallAndDate() returned error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 stored reservation, got %d", count)
	}
}

func TestBook_DemoMode(t *testing.T) {
	cfg := testConfig()
	svc := NewDemoBookingService(
		catalog.NewStaticHallCatalog(catalog.SeedHalls()...),
		bookingvalidator.NewBookingValidator(cfg.Log),
		cfg,
	)

	res, err := svc.Book(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Book() returned error: %v", err)
	}

	if res.Note == "" {
		t.Error("expected demo note on synthetic booking")
	}
	if res.TotalAmount != 375.00 {
		t.Errorf("expected total 375.00, got %v", res.TotalAmount)
	}
	if res.Status != model.StatusConfirmed {
		t.Errorf("expected status %q, got %q", model.StatusConfirmed, res.Status)
	}
}

func TestGetByID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Book(ctx, validRequest())
	if err != nil {
		t.Fatalf("Book() returned error: %v", err)
	}

	found, err := f.svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() returned error: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("expected ID %q, got %q", created.ID, found.ID)
	}

	_, err = f.svc.GetByID(ctx, "r_missing")
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeNotFound {
		t.Errorf("expected code %q, got %q", apperrors.CodeNotFound, appErr.Code)
	}

	_, err = f.svc.GetByID(ctx, "")
	if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeInvalidInput {
		t.Errorf("expected code %q, got %q", apperrors.CodeInvalidInput, appErr.Code)
	}
}

func TestListByHallAndDate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Book(ctx, validRequest()); err != nil {
		t.Fatalf("Book() returned error: %v", err)
	}

	list, err := f.svc.ListByHallAndDate(ctx, "h_1", "2026-06-01")
	if err != nil {
		t.Fatalf("ListByHallAndDate() returned error: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("expected 1 reservation, got %d", len(list))
	}

	empty, err := f.svc.ListByHallAndDate(ctx, "h_2", "2026-06-01")
	if err != nil {
		t.Fatalf("ListByHallAndDate() returned error: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", empty)
	}
}
