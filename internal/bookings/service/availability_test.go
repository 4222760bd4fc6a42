package service

import (
	"context"
	"testing"

	bookingvalidator "venuehall/internal/bookings/validator"
	"venuehall/internal/catalog"
	apperrors "venuehall/pkg/errors"
	"venuehall/pkg/model"
)

func validQuery() *model.AvailabilityQuery {
	return &model.AvailabilityQuery{
		HallID:    "h_1",
		Date:      "2026-06-01",
		StartTime: "10:00",
		EndTime:   "12:00",
	}
}

func TestCheckAvailability_Free(t *testing.T) {
	f := newFixture(t)

	out, err := f.svc.CheckAvailability(context.Background(), validQuery())
	if err != nil {
		t.Fatalf("CheckAvailability() returned error: %v", err)
	}

	if !out.Available {
		t.Error("expected the window to be available")
	}
	if out.Conflicts == nil {
		t.Error("expected non-nil conflicts slice")
	}
	if len(out.Conflicts) != 0 {
		t.Errorf("expected no conflicts, got %d", len(out.Conflicts))
	}
	if out.Note != "" {
		t.Errorf("expected no note outside demo mode, got %q", out.Note)
	}
}

func TestCheckAvailability_ReportsConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Book(ctx, validRequest()); err != nil {
		t.Fatalf("Book() returned error: %v", err)
	}

	query := validQuery()
	query.StartTime = "11:00"
	query.EndTime = "13:00"

	out, err := f.svc.CheckAvailability(ctx, query)
	if err != nil {
		t.Fatalf("CheckAvailability() returned error: %v", err)
	}

	if out.Available {
		t.Error("expected the window to be unavailable")
	}
	if len(out.Conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(out.Conflicts))
	}
	if out.Conflicts[0].StartTime != "10:00" || out.Conflicts[0].EndTime != "12:00" {
		t.Errorf("unexpected conflict window: %+v", out.Conflicts[0])
	}
}

func TestCheckAvailability_AdjacentIsFree(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Book(ctx, validRequest()); err != nil {
		t.Fatalf("Book() returned error: %v", err)
	}

	query := validQuery()
	query.StartTime = "12:00"
	query.EndTime = "14:00"

	out, err := f.svc.CheckAvailability(ctx, query)
	if err != nil {
		t.Fatalf("CheckAvailability() returned error: %v", err)
	}
	if !out.Available {
		t.Error("expected a back-to-back window to be available")
	}
}

func TestCheckAvailability_IgnoresPending(t *testing.T) {
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

	out, err := f.svc.CheckAvailability(ctx, validQuery())
	if err != nil {
		t.Fatalf("CheckAvailability() returned error: %v", err)
	}
	if !out.Available {
		t.Error("expected pending reservations to be ignored")
	}
}

func TestCheckAvailability_ValidationFailures(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		mutate func(*model.AvailabilityQuery)
	}{
		{"missing hall", func(q *model.AvailabilityQuery) { q.HallID = "" }},
		{"bad date", func(q *model.AvailabilityQuery) { q.Date = "June 1st" }},
		{"bad time", func(q *model.AvailabilityQuery) { q.EndTime = "25:00" }},
		{"reversed window", func(q *model.AvailabilityQuery) { q.StartTime = "14:00"; q.EndTime = "10:00" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := validQuery()
			tt.mutate(query)

			_, err := f.svc.CheckAvailability(context.Background(), query)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if appErr := apperrors.AsAppError(err); appErr.Code != apperrors.CodeValidation {
				t.Errorf("expected code %q, got %q", apperrors.CodeValidation, appErr.Code)
			}
		})
	}
}

func TestCheckAvailability_DemoModeAlwaysNoted(t *testing.T) {
	cfg := testConfig()
	svc := NewDemoBookingService(
		catalog.NewStaticHallCatalog(catalog.SeedHalls()...),
		bookingvalidator.NewBookingValidator(cfg.Log),
		cfg,
	)

	for i := 0; i < 20; i++ {
		out, err := svc.CheckAvailability(context.Background(), validQuery())
		if err != nil {
			t.Fatalf("CheckAvailability() returned error: %v", err)
		}
		if out.Note == "" {
			t.Fatal("expected demo note on synthetic availability")
		}
		if out.Available && len(out.Conflicts) != 0 {
			t.Fatal("available result must not carry conflicts")
		}
		if !out.Available && len(out.Conflicts) == 0 {
			t.Fatal("unavailable result must carry at least one conflict")
		}
	}
}
