package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	bookingserrors "venuehall/internal/bookings/errors"
	"venuehall/internal/bookings/repository"
	bookingvalidator "venuehall/internal/bookings/validator"
	"venuehall/internal/catalog"
	"venuehall/pkg/config"
	apperrors "venuehall/pkg/errors"
	"venuehall/pkg/kafka"
	"venuehall/pkg/model"
	"venuehall/pkg/pricing"
	"venuehall/pkg/sanitizer"
	"venuehall/pkg/timerange"
)

type BookingService interface {
	CheckAvailability(ctx context.Context, query *model.AvailabilityQuery) (*model.Availability, error)
	Book(ctx context.Context, req *model.BookingRequest) (*model.Reservation, error)
	GetByID(ctx context.Context, id string) (*model.Reservation, error)
	ListByHallAndDate(ctx context.Context, hallID, date string) ([]*model.Reservation, error)
}

// EventPublisher is satisfied by kafka.Producer. Nil disables publishing.
type EventPublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type bookingService struct {
	repo      repository.ReservationRepository
	locker    repository.SlotLocker
	catalog   catalog.HallCatalog
	validator *bookingvalidator.BookingValidator
	events    EventPublisher
	cfg       *config.Config
	demo      bool
}

func NewBookingService(
	repo repository.ReservationRepository,
	locker repository.SlotLocker,
	hallCatalog catalog.HallCatalog,
	validator *bookingvalidator.BookingValidator,
	events EventPublisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		locker:    locker,
		catalog:   hallCatalog,
		validator: validator,
		events:    events,
		cfg:       cfg,
	}
}

// NewDemoBookingService builds the engine without a backing store. All
// results are synthetic, labeled with a note, and nothing is persisted.
func NewDemoBookingService(
	hallCatalog catalog.HallCatalog,
	validator *bookingvalidator.BookingValidator,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		catalog:   hallCatalog,
		validator: validator,
		cfg:       cfg,
		demo:      true,
	}
}

func (s *bookingService) Book(ctx context.Context, req *model.BookingRequest) (*model.Reservation, error) {
	s.sanitize(req)

	if err := s.validator.ValidateBooking(req); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return nil, apperrors.Validation("Booking validation failed", validationDetails(err))
	}

	hours := timerange.DurationHours(req.StartTime, req.EndTime)
	total := pricing.Total(hours, s.resolveHourlyRate(ctx, req.HallID), req.GuestCount)

	res := &model.Reservation{
		ID:          uuid.NewString(),
		VenueID:     req.VenueID,
		HallID:      req.HallID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		GuestCount:  req.GuestCount,
		TotalAmount: total,
		Status:      model.StatusConfirmed,
		Customer:    req.CustomerDetails,
	}

	if s.demo {
		res.CreatedAt = time.Now().UTC()
		res.Note = demoBookingNote
		return res, nil
	}

	// The advisory lock serializes check+commit per (hall, date); the
	// transaction keeps the re-check and the insert atomic against the
	// store. Between the two, overlapping concurrent commits cannot
	// both succeed.
	release, err := s.locker.Acquire(ctx, req.HallID, req.Date)
	if err != nil {
		return nil, err
	}
	defer func() {
		if releaseErr := release(ctx); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release slot lock",
				"hall_id", req.HallID,
				"date", req.Date,
				"error", releaseErr,
			)
		}
	}()

	err = s.repo.InTransaction(ctx, func(txCtx context.Context) error {
		if err := s.verifyNoOverlap(txCtx, req.HallID, req.Date, req.StartTime, req.EndTime); err != nil {
			return err
		}
		if err := s.repo.Create(txCtx, res); err != nil {
			return apperrors.Internal("Failed to create reservation", err)
		}
		return nil
	})
	if err != nil {
		if apperrors.AsAppError(err).Code != apperrors.CodeConflict {
			s.cfg.Log.Error("Failed to commit reservation", "hall_id", req.HallID, "date", req.Date, "error", err)
		}
		return nil, err
	}

	s.cfg.Log.Info("Reservation committed",
		"id", res.ID,
		"hall_id", res.HallID,
		"date", res.Date,
		"start_time", res.StartTime,
		"end_time", res.EndTime,
		"total_amount", res.TotalAmount,
	)

	s.publishConfirmed(ctx, res)

	return res, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Reservation ID cannot be empty")
	}
	if s.demo {
		return nil, apperrors.NotFoundWithID("Reservation", id)
	}

	res, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Reservation", id)
		}
		return nil, apperrors.Internal("Failed to retrieve reservation", err)
	}

	return res, nil
}

func (s *bookingService) ListByHallAndDate(ctx context.Context, hallID, date string) ([]*model.Reservation, error) {
	if hallID == "" || date == "" {
		return nil, apperrors.InvalidInput("hall_id and date are required")
	}
	if s.demo {
		return []*model.Reservation{}, nil
	}

	reservations, err := s.repo.FindByHallAndDate(ctx, hallID, date)
	if err != nil {
		s.cfg.Log.Error("Failed to list reservations", "hall_id", hallID, "date", date, "error", err)
		return nil, apperrors.Internal("Failed to retrieve reservations", err)
	}
	if reservations == nil {
		reservations = []*model.Reservation{}
	}

	return reservations, nil
}

// --- Helpers ---

func (s *bookingService) sanitize(req *model.BookingRequest) {
	req.CustomerDetails.Name = sanitizer.CleanName(req.CustomerDetails.Name)
	req.CustomerDetails.Phone = sanitizer.CleanPhone(req.CustomerDetails.Phone)
	req.CustomerDetails.Email = sanitizer.CleanEmail(req.CustomerDetails.Email)
}

// resolveHourlyRate falls back to the configured default when the hall
// is missing from the catalog, so demo venues still price consistently.
func (s *bookingService) resolveHourlyRate(ctx context.Context, hallID string) float64 {
	hall, err := s.catalog.HallByID(ctx, hallID)
	if err != nil {
		if !errors.Is(err, catalog.ErrHallNotFound) {
			s.cfg.Log.Warn("Hall catalog lookup failed, using default rate", "hall_id", hallID, "error", err)
		}
		return s.cfg.DefaultPricePerHour
	}
	return hall.PricePerHour
}

// verifyNoOverlap enforces the non-overlap invariant: only confirmed
// reservations block, pending ones do not.
func (s *bookingService) verifyNoOverlap(ctx context.Context, hallID, date, startTime, endTime string) error {
	existing, err := s.repo.FindByHallAndDate(ctx, hallID, date)
	if err != nil {
		return apperrors.Internal("Failed to check existing reservations", err)
	}

	for _, other := range existing {
		if other.Status != model.StatusConfirmed {
			continue
		}
		if timerange.Overlaps(startTime, endTime, other.StartTime, other.EndTime) {
			return apperrors.Conflict(fmt.Sprintf(
				"Time conflicts with existing booking (%s - %s)",
				other.StartTime,
				other.EndTime,
			))
		}
	}
	return nil
}

func validationDetails(err error) map[string]any {
	var verrs bookingvalidator.ValidationErrors
	if errors.As(err, &verrs) {
		return map[string]any{"fields": verrs}
	}
	return map[string]any{"error": err.Error()}
}
