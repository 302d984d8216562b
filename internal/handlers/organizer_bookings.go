package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"TRIPVANA_BACK-END/internal/core"
	"TRIPVANA_BACK-END/internal/models"
	"TRIPVANA_BACK-END/internal/utils"
)

// OrganizerBookingsHandler serves booking review endpoints for
// organizers: listing requests and the approve/reject transitions.
type OrganizerBookingsHandler struct {
	bookings *core.BookingService
}

// NewOrganizerBookingsHandler creates a new OrganizerBookingsHandler
func NewOrganizerBookingsHandler(bookings *core.BookingService) *OrganizerBookingsHandler {
	return &OrganizerBookingsHandler{bookings: bookings}
}

// Bookings dispatches /api/organizer/bookings requests by path shape
func (h *OrganizerBookingsHandler) Bookings(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := utils.GetIdentityID(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid identity context")
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/organizer/bookings"), "/")
	if rest == "" {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.ListBookings(w, r, organizerID)
		return
	}

	parts := strings.Split(rest, "/")
	if len(parts) != 2 || r.Method != http.MethodPost {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Unknown organizer bookings path")
		return
	}
	bookingID, err := uuid.Parse(parts[0])
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid booking id", "booking_id must be UUID")
		return
	}

	switch parts[1] {
	case "approve":
		h.ApproveBooking(w, r, organizerID, bookingID)
	case "reject":
		h.RejectBooking(w, r, organizerID, bookingID)
	default:
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Unknown organizer bookings path")
	}
}

// ListBookings handles GET /api/organizer/bookings
// @Summary List booking requests across owned trips
// @Tags organizer-bookings
// @Produce json
// @Param status query string false "PENDING|APPROVED|REJECTED"
// @Param limit query int false "items per page"
// @Param offset query int false "offset"
// @Success 200 {object} dto.BookingListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/organizer/bookings [get]
func (h *OrganizerBookingsHandler) ListBookings(w http.ResponseWriter, r *http.Request, organizerID uuid.UUID) {
	limit, offset := pageParams(r, 20)
	filter := core.BookingFilter{Limit: limit, Offset: offset}
	if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
		status := models.BookingStatus(strings.ToUpper(raw))
		switch status {
		case models.BookingStatusPending, models.BookingStatusApproved, models.BookingStatusRejected:
			filter.Status = status
		default:
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "status must be PENDING, APPROVED, or REJECTED")
			return
		}
	}

	bookings, err := h.bookings.ListForOrganizer(r.Context(), organizerID, filter)
	if err != nil {
		utils.WriteCoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, toBookingListResponse(bookings, limit, offset))
}

// ApproveBooking handles POST /api/organizer/bookings/{booking_id}/approve
// @Summary Approve a pending booking request
// @Tags organizer-bookings
// @Produce json
// @Param booking_id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/organizer/bookings/{booking_id}/approve [post]
func (h *OrganizerBookingsHandler) ApproveBooking(w http.ResponseWriter, r *http.Request, organizerID, bookingID uuid.UUID) {
	booking, err := h.bookings.Approve(r.Context(), organizerID, bookingID)
	if err != nil {
		utils.WriteCoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, toBookingResponse(booking))
}

// RejectBooking handles POST /api/organizer/bookings/{booking_id}/reject
// @Summary Reject a pending booking request
// @Tags organizer-bookings
// @Produce json
// @Param booking_id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/organizer/bookings/{booking_id}/reject [post]
func (h *OrganizerBookingsHandler) RejectBooking(w http.ResponseWriter, r *http.Request, organizerID, bookingID uuid.UUID) {
	booking, err := h.bookings.Reject(r.Context(), organizerID, bookingID)
	if err != nil {
		utils.WriteCoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, toBookingResponse(booking))
}
