package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"TRIPVANA_BACK-END/internal/core"
	"TRIPVANA_BACK-END/internal/dto"
	"TRIPVANA_BACK-END/internal/utils"
)

// BookingsHandler serves end-user booking endpoints
type BookingsHandler struct {
	bookings *core.BookingService
}

// NewBookingsHandler creates a new BookingsHandler
func NewBookingsHandler(bookings *core.BookingService) *BookingsHandler {
	return &BookingsHandler{bookings: bookings}
}

// Bookings dispatches /api/bookings requests by path shape
func (h *BookingsHandler) Bookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetIdentityID(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid identity context")
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/bookings"), "/")
	if rest == "" {
		switch r.Method {
		case http.MethodPost:
			h.SubmitBooking(w, r, userID)
		case http.MethodGet:
			h.ListBookings(w, r, userID)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	parts := strings.Split(rest, "/")
	switch {
	case len(parts) == 2 && parts[0] == "trip":
		h.BookingForTrip(w, r, userID, parts[1])
	case len(parts) == 1:
		h.GetBooking(w, r, userID, parts[0])
	default:
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Unknown bookings path")
	}
}

// SubmitBooking handles POST /api/bookings
// @Summary Submit a booking request for a published trip
// @Tags bookings
// @Accept json
// @Produce json
// @Param payload body dto.SubmitBookingRequest true "Booking request"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/bookings [post]
func (h *BookingsHandler) SubmitBooking(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	email, ok := utils.GetEmail(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid identity context")
		return
	}

	var req dto.SubmitBookingRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	tripID, err := uuid.Parse(req.TripID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid trip id", "trip_id must be UUID")
		return
	}

	booking, err := h.bookings.SubmitRequest(r.Context(), userID, email, core.SubmitBookingInput{
		TripID:         tripID,
		NumTravelers:   req.NumTravelers,
		Travelers:      toTravelers(req.Travelers),
		ContactName:    req.ContactName,
		ContactPhone:   req.ContactPhone,
		ContactEmail:   req.ContactEmail,
		PricePerPerson: req.PricePerPerson,
		TotalPrice:     req.TotalPrice,
		Currency:       req.Currency,
	})
	if err != nil {
		utils.WriteCoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, toBookingResponse(booking))
}

// ListBookings handles GET /api/bookings
// @Summary List own bookings
// @Tags bookings
// @Produce json
// @Param limit query int false "items per page"
// @Param offset query int false "offset"
// @Success 200 {object} dto.BookingListResponse
// @Router /api/bookings [get]
func (h *BookingsHandler) ListBookings(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	limit, offset := pageParams(r, 20)
	bookings, err := h.bookings.ListForUser(r.Context(), userID, limit, offset)
	if err != nil {
		utils.WriteCoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, toBookingListResponse(bookings, limit, offset))
}

// GetBooking handles GET /api/bookings/{booking_id}
// @Summary Get one of your bookings
// @Tags bookings
// @Produce json
// @Param booking_id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/bookings/{booking_id} [get]
func (h *BookingsHandler) GetBooking(w http.ResponseWriter, r *http.Request, userID uuid.UUID, rawID string) {
	bookingID, err := uuid.Parse(rawID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid booking id", "booking_id must be UUID")
		return
	}
	booking, err := h.bookings.GetForUser(r.Context(), userID, bookingID)
	if err != nil {
		utils.WriteCoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, toBookingResponse(booking))
}

// BookingForTrip handles GET /api/bookings/trip/{trip_id}
// @Summary Get your most recent booking for a trip
// @Tags bookings
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/bookings/trip/{trip_id} [get]
func (h *BookingsHandler) BookingForTrip(w http.ResponseWriter, r *http.Request, userID uuid.UUID, rawTripID string) {
	tripID, err := uuid.Parse(rawTripID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid trip id", "trip_id must be UUID")
		return
	}
	booking, err := h.bookings.UserBookingForTrip(r.Context(), userID, tripID)
	if err != nil {
		utils.WriteCoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, toBookingResponse(booking))
}
