package model

import "time"

const (
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
)

// Reservation is created exclusively by the booking committer and never
// mutated afterwards. Date is ISO YYYY-MM-DD; times are zero-padded
// 24h HH:MM wall-clock strings, compared lexicographically.
type Reservation struct {
	ID          string          `json:"id" bson:"_id"`
	VenueID     string          `json:"venueId" bson:"venue_id"`
	HallID      string          `json:"hallId" bson:"hall_id"`
	Date        string          `json:"date" bson:"event_date"`
	StartTime   string          `json:"startTime" bson:"start_time"`
	EndTime     string          `json:"endTime" bson:"end_time"`
	GuestCount  int             `json:"guestCount" bson:"guest_count"`
	TotalAmount float64         `json:"totalAmount" bson:"total_amount"`
	Status      string          `json:"status" bson:"status"`
	Customer    CustomerDetails `json:"customerDetails" bson:"customer"`
	CreatedAt   time.Time       `json:"createdAt" bson:"created_at"`

	// Note flags synthetic demo-mode confirmations. Never persisted.
	Note string `json:"note,omitempty" bson:"-"`
}

type CustomerDetails struct {
	Name  string `json:"name" bson:"name" validate:"required,min=2"`
	Phone string `json:"phone" bson:"phone" validate:"required,min=7"`
	Email string `json:"email" bson:"email" validate:"required,email"`
}

// BookingRequest is the inbound shape for CreateBooking.
type BookingRequest struct {
	VenueID         string          `json:"venueId" validate:"required"`
	HallID          string          `json:"hallId" validate:"required"`
	Date            string          `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime       string          `json:"startTime" validate:"required,clock"`
	EndTime         string          `json:"endTime" validate:"required,clock"`
	GuestCount      int             `json:"guestCount" validate:"required,min=1"`
	CustomerDetails CustomerDetails `json:"customerDetails" validate:"required"`
}

// AvailabilityQuery is ephemeral; it is validated, answered and dropped.
type AvailabilityQuery struct {
	HallID    string `json:"hallId" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" validate:"required,clock"`
	EndTime   string `json:"endTime" validate:"required,clock"`
}

type TimeWindow struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Availability is the checker's answer. Note is set only for synthetic
// demo-mode results so they are never mistaken for authoritative ones.
type Availability struct {
	Available bool         `json:"available"`
	Conflicts []TimeWindow `json:"conflicts"`
	Note      string       `json:"note,omitempty"`
}
