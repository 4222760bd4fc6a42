package service

import (
	"context"
	"encoding/json"

	"venuehall/pkg/kafka"
	"venuehall/pkg/model"
)

const eventReservationConfirmed = "reservation.confirmed"

type reservationEvent struct {
	Event       string  `json:"event"`
	ID          string  `json:"id"`
	VenueID     string  `json:"venue_id"`
	HallID      string  `json:"hall_id"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	GuestCount  int     `json:"guest_count"`
	TotalAmount float64 `json:"total_amount"`
}

// publishConfirmed is best effort. The reservation is already committed;
// a broker hiccup must not fail the request.
func (s *bookingService) publishConfirmed(ctx context.Context, res *model.Reservation) {
	if s.events == nil {
		return
	}

	payload, err := json.Marshal(reservationEvent{
		Event:       eventReservationConfirmed,
		ID:          res.ID,
		VenueID:     res.VenueID,
		HallID:      res.HallID,
		Date:        res.Date,
		StartTime:   res.StartTime,
		EndTime:     res.EndTime,
		GuestCount:  res.GuestCount,
		TotalAmount: res.TotalAmount,
	})
	if err != nil {
		s.cfg.Log.Warn("Failed to encode reservation event", "id", res.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   res.HallID,
		Value: payload,
	}
	if err := s.events.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish reservation event", "id", res.ID, "error", err)
	}
}
