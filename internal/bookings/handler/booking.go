package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"venuehall/internal/bookings/service"
	"venuehall/pkg/config"
	apperrors "venuehall/pkg/errors"
	httpresponse "venuehall/pkg/http"
	"venuehall/pkg/middleware"
	"venuehall/pkg/model"
)

const anonymousUser = "guest"

// BookingHandler exposes the availability checker and the booking
// committer over HTTP, each behind its own rate gate.
type BookingHandler struct {
	service service.BookingService
	limiter *middleware.RouteLimiter
	cfg     *config.Config
}

func NewBookingHandler(svc service.BookingService, limiter *middleware.RouteLimiter, cfg *config.Config) *BookingHandler {
	return &BookingHandler{
		service: svc,
		limiter: limiter,
		cfg:     cfg,
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	availabilityGate := h.limiter.Limit("avail", middleware.Profile{
		MaxTokens: h.cfg.AvailabilityRateLimit.MaxTokens,
		Window:    h.cfg.AvailabilityRateLimit.Window,
	})
	bookingGate := h.limiter.Limit("book", middleware.Profile{
		MaxTokens: h.cfg.BookingRateLimit.MaxTokens,
		Window:    h.cfg.BookingRateLimit.Window,
	})

	router.POST("/api/v1/venues/:id/availability", availabilityGate(h.CheckAvailability))
	router.POST("/api/v1/bookings", bookingGate(h.Create))
	router.GET("/api/v1/bookings/id/:id", h.GetByID)
	router.GET("/api/v1/bookings", h.List)
}

func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var query model.AvailabilityQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		_ = httpresponse.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	availability, err := h.service.CheckAvailability(r.Context(), &query)
	if err != nil {
		_ = httpresponse.WriteError(w, err)
		return
	}

	_ = httpresponse.WriteJSON(w, http.StatusOK, availability)
}

// createBookingResponse pairs the committed reservation with the caller
// identity it was booked under.
type createBookingResponse struct {
	*model.Reservation
	User string `json:"user"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpresponse.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	reservation, err := h.service.Book(r.Context(), &req)
	if err != nil {
		_ = httpresponse.WriteError(w, err)
		return
	}

	user := middleware.Subject(r.Context())
	if user == "" {
		user = anonymousUser
	}

	_ = httpresponse.WriteJSON(w, http.StatusCreated, createBookingResponse{
		Reservation: reservation,
		User:        user,
	})
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	reservation, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		_ = httpresponse.WriteError(w, err)
		return
	}

	_ = httpresponse.WriteSuccess(w, reservation)
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	hallID := r.URL.Query().Get("hall_id")
	date := r.URL.Query().Get("date")

	reservations, err := h.service.ListByHallAndDate(r.Context(), hallID, date)
	if err != nil {
		_ = httpresponse.WriteError(w, err)
		return
	}

	_ = httpresponse.WriteSuccess(w, reservations)
}
