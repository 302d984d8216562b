package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"TRIPVANA_BACK-END/internal/core"
	"TRIPVANA_BACK-END/internal/dto"
	"TRIPVANA_BACK-END/internal/models"
	"TRIPVANA_BACK-END/internal/utils"
)

// OrganizerTripsHandler serves the organizer's own trip management
// endpoints, including lifecycle transitions, image metadata and
// offline bookings.
type OrganizerTripsHandler struct {
	trips    *core.TripService
	bookings *core.BookingService
}

// NewOrganizerTripsHandler creates a new OrganizerTripsHandler
func NewOrganizerTripsHandler(trips *core.TripService, bookings *core.BookingService) *OrganizerTripsHandler {
	return &OrganizerTripsHandler{trips: trips, bookings: bookings}
}

// Trips dispatches /api/organizer/trips requests by path shape
func (h *OrganizerTripsHandler) Trips(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := utils.GetIdentityID(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid identity context")
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/organizer/trips"), "/")
	if rest == "" {
		switch r.Method {
		case http.MethodPost:
			h.CreateTrip(w, r, organizerID)
		case http.MethodGet:
			h.ListTrips(w, r, organizerID)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	parts := strings.Split(rest, "/")
	tripID, err := uuid.Parse(parts[0])
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid trip id", "trip_id must be UUID")
		return
	}

	switch {
	case len(parts) == 1 && (r.Method == http.MethodPut || r.Method == http.MethodPatch):
		h.UpdateTrip(w, r, organizerID, tripID)
	case len(parts) == 1 && r.Method == http.MethodDelete:
		h.DeleteTrip(w, r, organizerID, tripID)
	case len(parts) == 2 && r.Method == http.MethodPost && parts[1] == "publish":
		h.transition(w, r, organizerID, tripID, models.TripStatusPublished)
	case len(parts) == 2 && r.Method == http.MethodPost && parts[1] == "archive":
		h.transition(w, r, organizerID, tripID, models.TripStatusArchived)
	case len(parts) == 2 && r.Method == http.MethodPost && parts[1] == "reopen":
		h.transition(w, r, organizerID, tripID, models.TripStatusDraft)
	case len(parts) == 2 && r.Method == http.MethodPost && parts[1] == "images":
		h.AddImage(w, r, organizerID, tripID)
	case len(parts) == 3 && r.Method == http.MethodDelete && parts[1] == "images":
		h.DeleteImage(w, r, organizerID, tripID, parts[2])
	case len(parts) == 2 && r.Method == http.MethodPost && parts[1] == "offline-booking":
		h.AddOfflineBooking(w, r, organizerID, tripID)
	default:
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "Unknown organizer trips path")
	}
}

// CreateTrip handles POST /api/organizer/trips
// @Summary Create a new trip (starts in DRAFT)
// @Tags organizer-trips
// @Accept json
// @Produce json
// @Param payload body dto.CreateTripRequest true "Trip payload"
// @Success 201 {object} dto.TripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/organizer/trips [post]
func (h *OrganizerTripsHandler) CreateTrip(w http.ResponseWriter, r *http.Request, organizerID uuid.UUID) {
	var req dto.CreateTripRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "start_date must be ISO 8601 format")
		return
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "end_date must be ISO 8601 format")
		return
	}

	trip, err := h.trips.CreateTrip(r.Context(), organizerID, core.CreateTripInput{
		Title:         req.Title,
		Description:   req.Description,
		Destination:   req.Destination,
		Price:         req.Price,
		StartDate:     startDate,
		EndDate:       endDate,
		TotalSeats:    req.TotalSeats,
		Tags:          req.Tags,
		CoverImageURL: req.CoverImageURL,
		Itinerary:     req.Itinerary,
	})
	if err != nil {
		utils.WriteCoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, toTripResponse(trip))
}

// ListTrips handles GET /api/organizer/trips
// @Summary List own trips (all lifecycle states)
// @Tags organizer-trips
// @Produce json
// @Param limit query int false "items per page"
// @Param offset query int false "offset"
// @Success 200 {object} dto.TripListResponse
// @Router /api/organizer/trips [get]
func (h *OrganizerTripsHandler) ListTrips(w http.ResponseWriter, r *http.Request, organizerID uuid.UUID) {
	limit, offset := pageParams(r, 20)
	trips, err := h.trips.ListForOrganizer(r.Context(), organizerID, limit, offset)
	if err != nil {
		utils.WriteCoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, toTripListResponse(trips, limit, offset))
}

// UpdateTrip handles PUT/PATCH /api/organizer/trips/{trip_id}
// @Summary Update a DRAFT trip
// @Tags organizer-trips
// @Accept json
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Param payload body dto.UpdateTripRequest true "Update payload"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/organizer/trips/{trip_id} [put]
func (h *OrganizerTripsHandler) UpdateTrip(w http.ResponseWriter, r *http.Request, organizerID, tripID uuid.UUID) {
	var req dto.UpdateTripRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	input := core.UpdateTripInput{
		Title:         req.Title,
		Description:   req.Description,
		Destination:   req.Destination,
		Price:         req.Price,
		TotalSeats:    req.TotalSeats,
		Tags:          req.Tags,
		CoverImageURL: req.CoverImageURL,
		Itinerary:     req.Itinerary,
	}
	if req.StartDate != nil {
		t, err := utils.ParseDate(*req.StartDate)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "start_date must be ISO 8601 format")
			return
		}
		input.StartDate = &t
	}
	if req.EndDate != nil {
		t, err := utils.ParseDate(*req.EndDate)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "end_date must be ISO 8601 format")
			return
		}
		input.EndDate = &t
	}

	trip, err := h.trips.UpdateTrip(r.Context(), organizerID, tripID, input)
	if err != nil {
		utils.WriteCoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, toTripResponse(trip))
}

// DeleteTrip handles DELETE /api/organizer/trips/{trip_id} (soft delete)
// @Summary Soft-delete a trip
// @Tags organizer-trips
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/organizer/trips/{trip_id} [delete]
func (h *OrganizerTripsHandler) DeleteTrip(w http.ResponseWriter, r *http.Request, organizerID, tripID uuid.UUID) {
	if err := h.trips.SoftDelete(r.Context(), organizerID, tripID); err != nil {
		utils.WriteCoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Trip deleted successfully"})
}

// transition handles the lifecycle endpoints publish/archive/reopen
// @Summary Move a trip through its lifecycle
// @Tags organizer-trips
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/organizer/trips/{trip_id}/publish [post]
func (h *OrganizerTripsHandler) transition(w http.ResponseWriter, r *http.Request, organizerID, tripID uuid.UUID, target models.TripStatus) {
	trip, err := h.trips.Transition(r.Context(), organizerID, tripID, target)
	if err != nil {
		utils.WriteCoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, toTripResponse(trip))
}

// AddImage handles POST /api/organizer/trips/{trip_id}/images
// @Summary Attach an image URL record to a DRAFT trip
// @Tags organizer-trips
// @Accept json
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Param payload body dto.AddTripImageRequest true "Image payload"
// @Success 201 {object} dto.TripImageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/organizer/trips/{trip_id}/images [post]
func (h *OrganizerTripsHandler) AddImage(w http.ResponseWriter, r *http.Request, organizerID, tripID uuid.UUID) {
	var req dto.AddTripImageRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	image, err := h.trips.AddImage(r.Context(), organizerID, tripID, req.ImageURL, req.Position)
	if err != nil {
		utils.WriteCoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, toImageResponse(image))
}

// DeleteImage handles DELETE /api/organizer/trips/{trip_id}/images/{image_id}
func (h *OrganizerTripsHandler) DeleteImage(w http.ResponseWriter, r *http.Request, organizerID, tripID uuid.UUID, rawImageID string) {
	imageID, err := uuid.Parse(rawImageID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid image id", "image_id must be UUID")
		return
	}
	if err := h.trips.DeleteImage(r.Context(), organizerID, tripID, imageID); err != nil {
		utils.WriteCoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Image deleted"})
}

// AddOfflineBooking handles POST /api/organizer/trips/{trip_id}/offline-booking
// @Summary Record an organizer-entered booking that consumes seats immediately
// @Tags organizer-bookings
// @Accept json
// @Produce json
// @Param trip_id path string true "Trip ID"
// @Param payload body dto.OfflineBookingRequest true "Seats payload"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/organizer/trips/{trip_id}/offline-booking [post]
func (h *OrganizerTripsHandler) AddOfflineBooking(w http.ResponseWriter, r *http.Request, organizerID, tripID uuid.UUID) {
	var req dto.OfflineBookingRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}
	booking, err := h.bookings.AddOfflineBooking(r.Context(), organizerID, tripID, req.Seats)
	if err != nil {
		utils.WriteCoreError(w, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, toBookingResponse(booking))
}

// pageParams reads limit/offset query parameters with a default page
// size.
func pageParams(r *http.Request, defaultLimit int) (int, int) {
	limit, offset := defaultLimit, 0
	if n, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && n > 0 {
		limit = n
	}
	if n, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && n >= 0 {
		offset = n
	}
	return limit, offset
}
