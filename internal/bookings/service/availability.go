package service

import (
	"context"
	"math/rand"

	apperrors "venuehall/pkg/errors"
	"venuehall/pkg/model"
	"venuehall/pkg/timerange"
)

const (
	demoAvailabilityNote = "Demo response (set MONGO_URI to query real availability)"
	demoBookingNote      = "Demo booking (set MONGO_URI to persist)"
)

func (s *bookingService) CheckAvailability(ctx context.Context, query *model.AvailabilityQuery) (*model.Availability, error) {
	if err := s.validator.ValidateQuery(query); err != nil {
		s.cfg.Log.Warn("Availability query validation failed", "error", err)
		return nil, apperrors.Validation("Availability query validation failed", validationDetails(err))
	}

	if s.demo {
		return s.syntheticAvailability(), nil
	}

	existing, err := s.repo.FindByHallAndDate(ctx, query.HallID, query.Date)
	if err != nil {
		s.cfg.Log.Error("Failed to check availability",
			"hall_id", query.HallID,
			"date", query.Date,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to check availability", err)
	}

	conflicts := conflictWindows(existing, query.StartTime, query.EndTime)

	return &model.Availability{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}

// conflictWindows lists the confirmed windows overlapping the requested
// one. The slice is never nil so it serializes as [].
func conflictWindows(existing []*model.Reservation, startTime, endTime string) []model.TimeWindow {
	conflicts := make([]model.TimeWindow, 0)
	for _, res := range existing {
		if res.Status != model.StatusConfirmed {
			continue
		}
		if timerange.Overlaps(startTime, endTime, res.StartTime, res.EndTime) {
			conflicts = append(conflicts, model.TimeWindow{
				StartTime: res.StartTime,
				EndTime:   res.EndTime,
			})
		}
	}
	return conflicts
}

// syntheticAvailability reports busy roughly once in five calls so demo
// clients can exercise both branches.
func (s *bookingService) syntheticAvailability() *model.Availability {
	out := &model.Availability{
		Available: true,
		Conflicts: make([]model.TimeWindow, 0),
		Note:      demoAvailabilityNote,
	}
	if rand.Float64() < 0.2 {
		out.Available = false
		out.Conflicts = append(out.Conflicts, model.TimeWindow{
			StartTime: "10:00",
			EndTime:   "12:00",
		})
	}
	return out
}
