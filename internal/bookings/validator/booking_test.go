package validator

import (
	"testing"

	"venuehall/pkg/logger"
	"venuehall/pkg/model"
)

func newTestValidator() *BookingValidator {
	log := logger.New(logger.Config{Level: logger.ERROR, Service: "test"})
	return NewBookingValidator(log)
}

func validBooking() *model.BookingRequest {
	return &model.BookingRequest{
		VenueID:    "v_1",
		HallID:     "h_1",
		Date:       "2025-06-01",
		StartTime:  "10:00",
		EndTime:    "12:00",
		GuestCount: 50,
		CustomerDetails: model.CustomerDetails{
			Name:  "Ada Lovelace",
			Phone: "+15551234567",
			Email: "ada@example.com",
		},
	}
}

func TestValidateBookingAcceptsWellFormed(t *testing.T) {
	v := newTestValidator()
	if err := v.ValidateBooking(validBooking()); err != nil {
		t.Fatalf("valid booking rejected: %v", err)
	}
}

func TestValidateBookingRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *model.BookingRequest)
		field   string
	}{
		{"missing hall", func(r *model.BookingRequest) { r.HallID = "" }, "HallID"},
		{"bad date format", func(r *model.BookingRequest) { r.Date = "01-06-2025" }, "Date"},
		{"bad start format", func(r *model.BookingRequest) { r.StartTime = "10am" }, "StartTime"},
		{"unpadded hour", func(r *model.BookingRequest) { r.StartTime = "9:00" }, "StartTime"},
		{"hour out of range", func(r *model.BookingRequest) { r.EndTime = "25:00" }, "EndTime"},
		{"minute out of range", func(r *model.BookingRequest) { r.EndTime = "12:60" }, "EndTime"},
		{"zero guests", func(r *model.BookingRequest) { r.GuestCount = 0 }, "GuestCount"},
		{"negative guests", func(r *model.BookingRequest) { r.GuestCount = -3 }, "GuestCount"},
		{"short name", func(r *model.BookingRequest) { r.CustomerDetails.Name = "A" }, "Name"},
		{"short phone", func(r *model.BookingRequest) { r.CustomerDetails.Phone = "555" }, "Phone"},
		{"bad email", func(r *model.BookingRequest) { r.CustomerDetails.Email = "not-an-email" }, "Email"},
		{"end equals start", func(r *model.BookingRequest) { r.EndTime = r.StartTime }, "EndTime"},
		{"end before start", func(r *model.BookingRequest) { r.StartTime = "12:00"; r.EndTime = "10:00" }, "EndTime"},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBooking()
			tt.mutate(req)

			err := v.ValidateBooking(req)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}

			verrs, ok := err.(ValidationErrors)
			if !ok {
				t.Fatalf("expected ValidationErrors, got %T: %v", err, err)
			}

			found := false
			for _, ve := range verrs {
				if ve.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected error on field %s, got %v", tt.field, verrs)
			}
		})
	}
}

func TestValidateQuery(t *testing.T) {
	v := newTestValidator()

	good := &model.AvailabilityQuery{
		HallID:    "h_1",
		Date:      "2025-06-01",
		StartTime: "10:00",
		EndTime:   "12:00",
	}
	if err := v.ValidateQuery(good); err != nil {
		t.Fatalf("valid query rejected: %v", err)
	}

	bad := &model.AvailabilityQuery{
		HallID:    "h_1",
		Date:      "2025/06/01",
		StartTime: "10:00",
		EndTime:   "12:00",
	}
	if err := v.ValidateQuery(bad); err == nil {
		t.Fatal("malformed date must be a validation failure, not an availability result")
	}
}
